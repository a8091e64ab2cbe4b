package model

import "inn/shared/model"

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID              = "id"
	FieldGRCNo           = "grc_no"
	FieldReferenceNumber = "reference_number"
	FieldReservationID   = "reservation_id"
	FieldCategoryID      = "category_id"
	FieldRoomNumber      = "room_number"
	FieldIsActive        = "is_active"
	FieldNumberOfRooms   = "number_of_rooms"
	FieldVIP             = "vip"
	FieldGuestDetails    = "guest_details"
	FieldContactDetails  = "contact_details"
	FieldIdentityDetails = "identity_details"
	FieldBookingInfo     = "booking_info"
	FieldPaymentDetails  = "payment_details"
	FieldVehicleDetails  = "vehicle_details"
	FieldExtensionHist   = "extension_history"
)

// Keys inside the booking_info, payment_details and identity_details JSON
// documents. They stay camelCase on the wire.
const (
	InfoKeyCheckIn            = "checkIn"
	InfoKeyCheckOut           = "checkOut"
	InfoKeyActualCheckInTime  = "actualCheckInTime"
	InfoKeyActualCheckOutTime = "actualCheckOutTime"
	PaymentKeyTotalAmount     = "totalAmount"
	IdentityKeyDocumentURL    = "documentUrl"
)

// CategoryNamePlaceholder is shown when the joined category row is gone.
const CategoryNamePlaceholder = "Unknown"

type Booking struct {
	ID              string `db:"id"`
	GRCNo           string `db:"grc_no"`
	ReferenceNumber string `db:"reference_number"`
	ReservationID   string `db:"reservation_id"`
	CategoryID      string `db:"category_id"`
	CategoryName    string `db:"category_name" table:"categories" column:"name"`
	RoomNumber      string `db:"room_number"`
	IsActive        bool   `db:"is_active"`
	NumberOfRooms   int    `db:"number_of_rooms"`
	VIP             bool   `db:"vip"`

	GuestDetails     JSONMap          `db:"guest_details"`
	ContactDetails   JSONMap          `db:"contact_details"`
	IdentityDetails  JSONMap          `db:"identity_details"`
	BookingInfo      JSONMap          `db:"booking_info"`
	PaymentDetails   JSONMap          `db:"payment_details"`
	VehicleDetails   JSONMap          `db:"vehicle_details"`
	ExtensionHistory ExtensionHistory `db:"extension_history"`

	model.Metadata
}

func (Booking) GetJoinQuery() string {
	return "LEFT JOIN categories ON categories.id = bookings.category_id"
}

// TotalAmount reads paymentDetails.totalAmount, tolerating the numeric types
// encoding/json produces.
func (b *Booking) TotalAmount() float64 {
	if b.PaymentDetails == nil {
		return 0
	}

	switch v := b.PaymentDetails[PaymentKeyTotalAmount].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	default:
		return 0
	}
}

package dto

import (
	"math"
	"mime/multipart"

	"inn/internal/domains/booking/model"
	"inn/shared"
	"inn/shared/constant"
	gDto "inn/shared/dto"
	gModel "inn/shared/model"
	"inn/shared/timezone"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	CategoryID      string         `json:"category_id"      validate:"required"`
	Count           float64        `json:"count"            validate:"omitempty"`
	ReservationID   string         `json:"reservation_id"   validate:"omitempty,max=100"`
	VIP             bool           `json:"vip"              validate:"omitempty"`
	GuestDetails    map[string]any `json:"guest_details"    validate:"omitempty"`
	ContactDetails  map[string]any `json:"contact_details"  validate:"omitempty"`
	IdentityDetails map[string]any `json:"identity_details" validate:"omitempty"`
	BookingInfo     map[string]any `json:"booking_info"     validate:"omitempty"`
	PaymentDetails  map[string]any `json:"payment_details"  validate:"omitempty"`
	VehicleDetails  map[string]any `json:"vehicle_details"  validate:"omitempty"`
}

// RoomCount normalizes the requested room count; absent, non-positive or
// fractional counts all mean one room.
func (c *CreateBookingRequest) RoomCount() int {
	if c.Count < 1 || c.Count != math.Trunc(c.Count) {
		return 1
	}

	return int(c.Count)
}

// ToModel builds one booking record for one allocated room. Multi-room
// requests produce one record per room, each with its own GRC code.
func (c *CreateBookingRequest) ToModel(user, grcNo, referenceNumber, roomNumber string) model.Booking {
	return model.Booking{
		ID:               uuid.NewString(),
		GRCNo:            grcNo,
		ReferenceNumber:  referenceNumber,
		ReservationID:    c.ReservationID,
		CategoryID:       c.CategoryID,
		RoomNumber:       roomNumber,
		IsActive:         true,
		NumberOfRooms:    1,
		VIP:              c.VIP,
		GuestDetails:     model.JSONMap(c.GuestDetails),
		ContactDetails:   model.JSONMap(c.ContactDetails),
		IdentityDetails:  model.JSONMap(c.IdentityDetails),
		BookingInfo:      model.JSONMap(c.BookingInfo),
		PaymentDetails:   model.JSONMap(c.PaymentDetails),
		VehicleDetails:   model.JSONMap(c.VehicleDetails),
		ExtensionHistory: model.ExtensionHistory{},
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type CreateBookingsRequest struct {
	Bookings []CreateBookingRequest `json:"bookings" validate:"required,min=1,dive"`
}

type UploadIdentityDocumentRequest struct {
	Document     *multipart.FileHeader `json:"document" swaggerignore:"true" validate:"required,mimetypes=image/png image/jpg image/jpeg application/pdf,maxfilesize=5"`
	DocumentFile multipart.File        `json:"-"`
}

type ExtendBookingRequest struct {
	ExtendedCheckOut string  `json:"extended_check_out" validate:"required"`
	Reason           string  `json:"reason"             validate:"omitempty,max=500"`
	AdditionalAmount float64 `json:"additional_amount"  validate:"omitempty,min=0"`
	PaymentMode      string  `json:"payment_mode"       validate:"omitempty,max=50"`
	ApprovedBy       string  `json:"approved_by"        validate:"omitempty,max=100"`
}

type UpdateBookingRequest struct {
	ReservationID   string         `json:"reservation_id"   db:"reservation_id"   validate:"omitempty,max=100"`
	RoomNumber      string         `json:"room_number"      db:"room_number"      validate:"omitempty,max=20"`
	NumberOfRooms   int            `json:"number_of_rooms"  db:"number_of_rooms"  validate:"omitempty,min=1"`
	VIP             *bool          `json:"vip"              validate:"omitempty"`
	GuestDetails    map[string]any `json:"guest_details"    validate:"omitempty"`
	ContactDetails  map[string]any `json:"contact_details"  validate:"omitempty"`
	IdentityDetails map[string]any `json:"identity_details" validate:"omitempty"`
	BookingInfo     map[string]any `json:"booking_info"     validate:"omitempty"`
	PaymentDetails  map[string]any `json:"payment_details"  validate:"omitempty"`
	VehicleDetails  map[string]any `json:"vehicle_details"  validate:"omitempty"`

	ActualCheckInTime  string `json:"actual_check_in_time"  validate:"omitempty"`
	ActualCheckOutTime string `json:"actual_check_out_time" validate:"omitempty"`

	Extension *ExtendBookingRequest `json:"extension" validate:"omitempty"`
}

// IsEmpty reports whether the request carries nothing to change.
func (u *UpdateBookingRequest) IsEmpty() bool {
	return u.ReservationID == constant.Empty &&
		u.RoomNumber == constant.Empty &&
		u.NumberOfRooms == 0 &&
		u.VIP == nil &&
		u.GuestDetails == nil &&
		u.ContactDetails == nil &&
		u.IdentityDetails == nil &&
		u.BookingInfo == nil &&
		u.PaymentDetails == nil &&
		u.VehicleDetails == nil &&
		u.ActualCheckInTime == constant.Empty &&
		u.ActualCheckOutTime == constant.Empty &&
		u.Extension == nil
}

type BookingResponse struct {
	ID               string                  `json:"id"`
	GRCNo            string                  `json:"grc_no"`
	ReferenceNumber  string                  `json:"reference_number"`
	ReservationID    string                  `json:"reservation_id"`
	CategoryID       string                  `json:"category_id"`
	CategoryName     string                  `json:"category_name"`
	RoomNumber       string                  `json:"room_number"`
	IsActive         bool                    `json:"is_active"`
	NumberOfRooms    int                     `json:"number_of_rooms"`
	VIP              bool                    `json:"vip"`
	GuestDetails     map[string]any          `json:"guest_details"`
	ContactDetails   map[string]any          `json:"contact_details"`
	IdentityDetails  map[string]any          `json:"identity_details"`
	BookingInfo      map[string]any          `json:"booking_info"`
	PaymentDetails   map[string]any          `json:"payment_details"`
	VehicleDetails   map[string]any          `json:"vehicle_details"`
	ExtensionHistory []model.ExtensionRecord `json:"extension_history"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(mod model.Booking) {
	r.ID = mod.ID
	r.GRCNo = mod.GRCNo
	r.ReferenceNumber = mod.ReferenceNumber
	r.ReservationID = mod.ReservationID
	r.CategoryID = mod.CategoryID
	r.CategoryName = mod.CategoryName
	r.RoomNumber = mod.RoomNumber
	r.IsActive = mod.IsActive
	r.NumberOfRooms = mod.NumberOfRooms
	r.VIP = mod.VIP
	r.GuestDetails = mod.GuestDetails
	r.ContactDetails = mod.ContactDetails
	r.IdentityDetails = mod.IdentityDetails
	r.BookingInfo = mod.BookingInfo
	r.PaymentDetails = mod.PaymentDetails
	r.VehicleDetails = mod.VehicleDetails
	r.ExtensionHistory = mod.ExtensionHistory
	r.Metadata.FromModel(mod.Metadata)

	if r.CategoryName == constant.Empty {
		r.CategoryName = model.CategoryNamePlaceholder
	}
}

type CreateBookingResponse struct {
	Success bool              `json:"success"`
	Booked  []BookingResponse `json:"booked"`
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

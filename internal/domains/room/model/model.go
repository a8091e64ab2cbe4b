package model

import "inn/shared/model"

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID         = "id"
	FieldRoomNumber = "room_number"
	FieldCategoryID = "category_id"
	FieldStatus     = "status"

	StatusAvailable   = "available"
	StatusBooked      = "booked"
	StatusMaintenance = "maintenance"
	StatusCleaning    = "cleaning"
)

type Room struct {
	ID         string `db:"id"`
	RoomNumber string `db:"room_number"`
	CategoryID string `db:"category_id"`
	Status     string `db:"status"`
	model.Metadata
}

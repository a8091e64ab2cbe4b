package model

import "inn/shared/model"

const (
	TableName  = "housekeeping_tasks"
	EntityName = "housekeeping_task"

	FieldID           = "id"
	FieldRoomID       = "room_id"
	FieldCleaningType = "cleaning_type"
	FieldNotes        = "notes"
	FieldPriority     = "priority"
	FieldStatus       = "status"

	CleaningTypeCheckout = "checkout"

	PriorityHigh = "high"

	StatusPending    = "pending"
	StatusInProgress = "in-progress"
	StatusCompleted  = "completed"

	CheckoutNotes = "Room needs cleaning after checkout"
)

type Task struct {
	ID           string `db:"id"`
	RoomID       string `db:"room_id"`
	CleaningType string `db:"cleaning_type"`
	Notes        string `db:"notes"`
	Priority     string `db:"priority"`
	Status       string `db:"status"`
	model.Metadata
}

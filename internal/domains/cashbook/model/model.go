package model

import (
	gModel "inn/shared/model"
)

const (
	TableName  = "cash_transactions"
	EntityName = "cash_transaction"

	FieldID             = "id"
	FieldAmount         = "amount"
	FieldType           = "type"
	FieldSource         = "source"
	FieldDescription    = "description"
	FieldReceptionistID = "receptionist_id"
	FieldCreatedAt      = "created_at"

	// TypeKeep is money entering the reception drawer, TypeSent is money
	// handed over out of it.
	TypeKeep = "KEEP"
	TypeSent = "SENT"

	SourceRestaurant   = "RESTAURANT"
	SourceRoomBooking  = "ROOM_BOOKING"
	SourceBanquetParty = "BANQUET + PARTY"
	SourceOther        = "OTHER"
)

// Sources lists every revenue source in report card order.
var Sources = []string{SourceRestaurant, SourceRoomBooking, SourceBanquetParty, SourceOther}

type Transaction struct {
	ID             string  `db:"id"`
	Amount         float64 `db:"amount"`
	Type           string  `db:"type"`
	Source         string  `db:"source"`
	Description    string  `db:"description"`
	ReceptionistID string  `db:"receptionist_id"`
	gModel.Metadata
}

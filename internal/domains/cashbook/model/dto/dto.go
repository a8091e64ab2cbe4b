package dto

import (
	"strings"

	"inn/internal/domains/cashbook/model"
	"inn/shared"
	gDto "inn/shared/dto"
	gModel "inn/shared/model"
	"inn/shared/timezone"

	"github.com/google/uuid"
)

type AddTransactionRequest struct {
	Amount      float64 `json:"amount"      validate:"required,gt=0"`
	Type        string  `json:"type"        validate:"required,oneof=KEEP SENT"`
	Source      string  `json:"source"      validate:"required,oneof=RESTAURANT ROOM_BOOKING 'BANQUET + PARTY' OTHER"`
	Description string  `json:"description" validate:"omitempty,max=500"`
}

// Normalize upper-cases the enum fields before validation so "keep" and
// "restaurant" are accepted the same as their canonical forms.
func (a *AddTransactionRequest) Normalize() {
	a.Type = strings.ToUpper(strings.TrimSpace(a.Type))
	a.Source = strings.ToUpper(strings.TrimSpace(a.Source))
}

func (a *AddTransactionRequest) ToModel(user string) model.Transaction {
	return model.Transaction{
		ID:             uuid.NewString(),
		Amount:         a.Amount,
		Type:           a.Type,
		Source:         a.Source,
		Description:    a.Description,
		ReceptionistID: user,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type TransactionResponse struct {
	ID             string  `json:"id"`
	Amount         float64 `json:"amount"`
	Type           string  `json:"type"`
	Source         string  `json:"source"`
	Description    string  `json:"description"`
	ReceptionistID string  `json:"receptionist_id"`
	gDto.Metadata
}

func (r *TransactionResponse) FromModel(mod model.Transaction) {
	r.ID = mod.ID
	r.Amount = mod.Amount
	r.Type = mod.Type
	r.Source = mod.Source
	r.Description = mod.Description
	r.ReceptionistID = mod.ReceptionistID
	r.Metadata.FromModel(mod.Metadata)
}

type GetTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	TotalPage    int                   `json:"total_page"`
	TotalData    int                   `json:"total_data"`
}

func (r *GetTransactionsResponse) FromModels(models []model.Transaction, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Transactions = make([]TransactionResponse, len(models))
	for i, mod := range models {
		r.Transactions[i].FromModel(mod)
	}
}

// SourceCard summarizes one revenue source over the reporting period and
// carries that source's own paginated transaction listing.
// CashInReception is what the drawer should physically hold for that source.
type SourceCard struct {
	Source          string                  `json:"source"`
	TotalReceived   float64                 `json:"total_received"`
	TotalSent       float64                 `json:"total_sent"`
	CashInReception float64                 `json:"cash_in_reception"`
	Transactions    GetTransactionsResponse `json:"transactions"`
}

type ReportResponse struct {
	FilterApplied string       `json:"filter_applied"`
	Cards         []SourceCard `json:"cards"`
}

package cashbook

import (
	"encoding/json"
	"fmt"
	"net/http"

	"inn/infras/otel"
	"inn/internal/domains/cashbook/model"
	"inn/internal/domains/cashbook/model/dto"
	"inn/internal/domains/cashbook/service"
	"inn/shared/constant"
	gDto "inn/shared/dto"
	"inn/shared/failure"
	"inn/shared/validator"
	"inn/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Cashbook
	otel    otel.Otel
}

func New(service service.Cashbook, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/cash", func(routerGroup chi.Router) {
		routerGroup.Post("/transactions", handler.AddTransaction)
		routerGroup.Get("/transactions", handler.GetTransactions)
		routerGroup.Get("/reception", handler.GetReceptionReport)
	})
}

// AddTransaction records a cash movement at the reception drawer.
// @Summary Add a cash transaction
// @Description Record a KEEP or SENT cash movement for one revenue source.
// @Tags Cashbook
// @Accept json
// @Produce json
// @Param request body dto.AddTransactionRequest true "Add Transaction Request"
// @Success 201 {object} response.Data[dto.TransactionResponse] "Transaction recorded successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/cash/transactions [post]
// @Security BearerAuth
func (handler *Handler) AddTransaction(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AddTransaction")
	defer scope.End()

	req := dto.AddTransactionRequest{}
	if err := json.NewDecoder(request.Body).Decode(&req); err != nil {
		err = failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err))
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to decode request body")

		response.WithError(writer, err)

		return
	}

	req.Normalize()

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Add(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to add cash transaction")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Cash transaction recorded successfully by user " + user)

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetTransactions lists cash transactions, newest first.
// @Summary Get cash transactions
// @Description Retrieve cash transactions with optional type and source filtering.
// @Tags Cashbook
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param type query string false "Filter by type (KEEP, SENT)"
// @Param source query string false "Filter by source"
// @Success 200 {object} response.Data[dto.GetTransactionsResponse] "List of transactions"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/cash/transactions [get]
// @Security BearerAuth
func (handler *Handler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTransactions")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	transactionType := r.URL.Query().Get(model.FieldType)
	source := r.URL.Query().Get(model.FieldSource)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if transactionType != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldType,
			Operator: gDto.FilterOperatorEq,
			Value:    transactionType,
			Table:    model.TableName,
		})
	}

	if source != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldSource,
			Operator: gDto.FilterOperatorEq,
			Value:    source,
			Table:    model.TableName,
		})
	}

	transactions, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get cash transactions")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Cash transactions retrieved successfully")

	response.WithJSON(w, http.StatusOK, transactions)
}

// GetReceptionReport reconciles the reception drawer per revenue source.
// @Summary Get the reception cash report
// @Description Aggregate received, sent and in-drawer cash per source over a period. Filter is one of today, week, month, year or date (with date=YYYY-MM-DD); omit it for an all-time report.
// @Tags Cashbook
// @Accept json
// @Produce json
// @Param filter query string false "Report period (today, week, month, year, date); all-time when omitted"
// @Param date query string false "Specific date when filter=date (YYYY-MM-DD)"
// @Param pagination query gDto.QueryParams false "Pagination for the transaction list"
// @Success 200 {object} response.Data[dto.ReportResponse] "Reception cash report"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/cash/reception [get]
// @Security BearerAuth
func (handler *Handler) GetReceptionReport(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReceptionReport")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterName := r.URL.Query().Get(constant.RequestParamFilter)
	date := r.URL.Query().Get(constant.RequestParamDate)

	report, err := handler.service.Report(ctx, filterName, date, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to build reception cash report")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Reception cash report built successfully")

	response.WithJSON(w, http.StatusOK, report)
}

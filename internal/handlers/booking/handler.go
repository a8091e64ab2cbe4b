package booking

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"inn/infras/otel"
	"inn/internal/domains/booking/model"
	"inn/internal/domains/booking/model/dto"
	"inn/internal/domains/booking/service"
	"inn/shared"
	"inn/shared/constant"
	gDto "inn/shared/dto"
	"inn/shared/validator"
	"inn/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateBooking)
		routerGroup.Get("/", handler.GetBookings)
		routerGroup.Get("/category/{categoryId}", handler.GetBookingsByCategory)
		routerGroup.Get("/grc/{grcNo}", handler.GetBookingByGRC)
		routerGroup.Get("/{id}", handler.GetBookingByID)
		routerGroup.Put("/{id}", handler.UpdateBooking)
		routerGroup.Post("/extend/{id}", handler.ExtendBooking)
		routerGroup.Delete("/unbook/{id}", handler.UnbookBooking)
		routerGroup.Delete("/{id}", handler.DeleteBooking)
		routerGroup.Post("/{id}/identity-document", handler.UploadIdentityDocument)
	})
}

// CreateBooking books rooms from a single entry or a batch envelope.
// @Summary Create bookings
// @Description Book one or more rooms. Accepts either a single booking entry or a {"bookings": [...]} batch.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Create Booking Request"
// @Success 201 {object} response.Data[dto.CreateBookingResponse] "Bookings created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings [post]
// @Security BearerAuth
func (handler *Handler) CreateBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	body, err := io.ReadAll(request.Body)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to read request body")

		response.WithError(writer, err)

		return
	}

	var res dto.CreateBookingResponse

	// A body carrying a bookings array is a batch, anything else is one entry.
	var envelope struct {
		Bookings []json.RawMessage `json:"bookings"`
	}
	_ = json.Unmarshal(body, &envelope)

	if len(envelope.Bookings) > 0 {
		req := dto.CreateBookingsRequest{}
		if err = validator.Validate(bytes.NewReader(body), &req); err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Msg("failed to validate request body")

			response.WithError(writer, err)

			return
		}

		res, err = handler.service.CreateBatch(ctx, req)
	} else {
		req := dto.CreateBookingRequest{}
		if err = validator.Validate(bytes.NewReader(body), &req); err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Msg("failed to validate request body")

			response.WithError(writer, err)

			return
		}

		res, err = handler.service.Create(ctx, req)
	}

	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create booking")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Booking created successfully by user " + user)

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetBookings retrieves bookings based on query parameters.
// @Summary Get all bookings
// @Description Retrieve active bookings with pagination. Pass all=true to include checked-out bookings.
// @Tags Booking
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param all query string false "Include inactive bookings (true/false)"
// @Success 200 {object} response.Data[dto.GetBookingsResponse] "List of bookings"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings [get]
// @Security BearerAuth
func (handler *Handler) GetBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookings")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	all := shared.ConvertStringToBool(r.URL.Query().Get(constant.RequestParamAll))

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if all == nil || !*all {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldIsActive,
			Operator: gDto.FilterOperatorEq,
			Value:    true,
			Table:    model.TableName,
		})
	}

	bookings, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Bookings retrieved successfully")

	response.WithJSON(w, http.StatusOK, bookings)
}

// GetBookingsByCategory retrieves bookings for one room category.
// @Summary Get bookings by category
// @Description Retrieve bookings for the given category with pagination.
// @Tags Booking
// @Accept json
// @Produce json
// @Param categoryId path string true "Category ID"
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetBookingsResponse] "List of bookings"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/category/{categoryId} [get]
// @Security BearerAuth
func (handler *Handler) GetBookingsByCategory(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingsByCategory")
	defer scope.End()

	categoryID := chi.URLParam(r, constant.RequestParamCategoryID)

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldCategoryID,
				Operator: gDto.FilterOperatorEq,
				Value:    categoryID,
				Table:    model.TableName,
			},
		},
	}

	bookings, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings by category")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Bookings retrieved successfully for category " + categoryID)

	response.WithJSON(w, http.StatusOK, bookings)
}

// GetBookingByGRC retrieves a booking by its GRC code.
// @Summary Get a booking by GRC number
// @Description Retrieve a booking by its guest registration card code.
// @Tags Booking
// @Accept json
// @Produce json
// @Param grcNo path string true "GRC number"
// @Success 200 {object} response.Data[dto.BookingResponse] "Booking details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/grc/{grcNo} [get]
// @Security BearerAuth
func (handler *Handler) GetBookingByGRC(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingByGRC")
	defer scope.End()

	grcNo := chi.URLParam(r, constant.RequestParamGRCNo)

	booking, err := handler.service.GetByGRC(ctx, grcNo)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booking by GRC")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking retrieved successfully")

	response.WithJSON(w, http.StatusOK, booking)
}

// GetBookingByID retrieves a booking by its ID.
// @Summary Get a booking by ID
// @Description Retrieve a booking by its unique identifier.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.BookingResponse] "Booking details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetBookingByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	booking, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booking by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking retrieved successfully")

	response.WithJSON(w, http.StatusOK, booking)
}

// UpdateBooking applies a partial update to a booking.
// @Summary Update a booking by ID
// @Description Update booking details. Guest, contact, identity, payment, vehicle and booking info documents merge shallowly.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.UpdateBookingRequest true "Update Booking Request"
// @Success 200 {object} response.Message "Booking updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id} [put]
// @Security BearerAuth
func (handler *Handler) UpdateBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateBooking")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateBookingRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update booking")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Booking updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Booking updated successfully")
}

// ExtendBooking extends the stay of an active booking.
// @Summary Extend a booking
// @Description Push out the checkout date of an active booking and record the extension.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.ExtendBookingRequest true "Extend Booking Request"
// @Success 200 {object} response.Message "Booking extended successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/extend/{id} [post]
// @Security BearerAuth
func (handler *Handler) ExtendBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ExtendBooking")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.ExtendBookingRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Extend(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to extend booking")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Booking extended successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Booking extended successfully")
}

// UnbookBooking checks a guest out and frees the room.
// @Summary Unbook a booking
// @Description Deactivate a booking, flip its room to maintenance and queue a checkout cleaning task. Safe to retry.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Message "Booking unbooked successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/unbook/{id} [delete]
// @Security BearerAuth
func (handler *Handler) UnbookBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UnbookBooking")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Unbook(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to unbook booking")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Booking unbooked successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Booking unbooked successfully")
}

// DeleteBooking permanently removes a booking record.
// @Summary Delete a booking by ID
// @Description Permanently delete a booking. Admin only.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Message "Booking deleted successfully"
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteBooking")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete booking")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Booking deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Booking deleted successfully")
}

// UploadIdentityDocument attaches a scanned guest ID to a booking.
// @Summary Upload an identity document
// @Description Store a scanned identity document for the booking and record its URL.
// @Tags Booking
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Booking ID"
// @Param file formData file true "Identity document"
// @Success 200 {object} response.Data[string] "Document URL"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/identity-document [post]
// @Security BearerAuth
func (handler *Handler) UploadIdentityDocument(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadIdentityDocument")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")

		response.WithError(w, err)

		return
	}

	file, fileHeader, err := r.FormFile(constant.FormFile)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get file from form")

		response.WithError(w, err)

		return
	}
	defer file.Close()

	req := dto.UploadIdentityDocumentRequest{Document: fileHeader, DocumentFile: file}
	if err = validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate identity document")

		response.WithError(w, err)

		return
	}

	url, err := handler.service.UploadIdentityDocument(ctx, id, req.DocumentFile, req.Document)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to upload identity document")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Identity document uploaded successfully by user " + user)

	response.WithJSON(w, http.StatusOK, url)
}

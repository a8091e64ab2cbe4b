package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Booking=MockBookingService

import (
	"context"
	"fmt"
	"math/rand/v2"
	"mime/multipart"
	"strings"

	"inn/config"
	"inn/infras/kafka"
	"inn/infras/otel"
	"inn/infras/s3"
	"inn/internal/domains/booking/model"
	"inn/internal/domains/booking/model/dto"
	"inn/internal/domains/booking/repository"
	categoryModel "inn/internal/domains/category/model"
	categoryRepo "inn/internal/domains/category/repository"
	roomService "inn/internal/domains/room/service"
	hkService "inn/internal/domains/housekeeping/service"
	"inn/shared"
	"inn/shared/cache"
	"inn/shared/constant"
	gDto "inn/shared/dto"
	"inn/shared/failure"
	"inn/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetGRCBooking = "booking:grc"
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"

	eventBookingCreated  = "booking.created"
	eventBookingUnbooked = "booking.unbooked"
)

type lifecycleEvent struct {
	Event      string `json:"event"`
	BookingID  string `json:"booking_id"`
	GRCNo      string `json:"grc_no"`
	RoomNumber string `json:"room_number"`
	OccurredAt string `json:"occurred_at"`
}

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.CreateBookingResponse, error)
	CreateBatch(ctx context.Context, req dto.CreateBookingsRequest) (dto.CreateBookingResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	GetByGRC(ctx context.Context, grcNo string) (dto.BookingResponse, error)
	Update(ctx context.Context, req dto.UpdateBookingRequest, id string) error
	Extend(ctx context.Context, req dto.ExtendBookingRequest, id string) error
	Unbook(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	UploadIdentityDocument(ctx context.Context, id string, file multipart.File, fileHeader *multipart.FileHeader) (string, error)
}

type serviceImpl struct {
	repo         repository.Booking
	categoryRepo categoryRepo.Category
	roomSvc      roomService.Room
	housekeeping hkService.Housekeeping
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
	kafka        kafka.Client
	s3           s3.S3
}

func New(
	repo repository.Booking,
	categoryRepo categoryRepo.Category,
	roomSvc roomService.Room,
	housekeeping hkService.Housekeeping,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
	kafkaClient kafka.Client,
	s3Client s3.S3,
) Booking {
	return &serviceImpl{
		repo:         repo,
		categoryRepo: categoryRepo,
		roomSvc:      roomSvc,
		housekeeping: housekeeping,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
		kafka:        kafkaClient,
		s3:           s3Client,
	}
}

// Create books count rooms in one category. Availability is checked up front
// so an entry never partially allocates, then every room is reserved through
// a conditional status flip. One booking record is created per room.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.CreateBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	category, err := s.categoryRepo.Get(ctx, shared.FilterByID(req.CategoryID, categoryModel.FieldID, categoryModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to resolve category")

		return res, fmt.Errorf("failed to resolve category: %w", err)
	}

	if category.ID == constant.Empty {
		return res, failure.BadRequestFromString("category does not exist") // nolint:wrapcheck
	}

	count := req.RoomCount()

	rooms, err := s.roomSvc.FindAvailable(ctx, req.CategoryID, count)
	if err != nil {
		return res, err
	}

	if len(rooms) < count {
		return res, failure.BadRequestFromString(fmt.Sprintf("only %d rooms available in this category", len(rooms))) // nolint:wrapcheck
	}

	booked := make([]model.Booking, 0, count)

	for _, room := range rooms[:count] {
		if err = s.roomSvc.Reserve(ctx, room.ID); err != nil {
			log.Error().Err(err).Str("roomID", room.ID).Msg("failed to reserve room")

			return res, err
		}

		grcNo, grcErr := s.generateGRCNo(ctx)
		if grcErr != nil {
			s.releaseRoom(ctx, room.ID)

			return res, grcErr
		}

		booking := req.ToModel(user, grcNo, generateReferenceNumber(), room.RoomNumber)
		booking.CategoryName = category.Name

		if err = s.repo.Insert(ctx, booking); err != nil {
			log.Error().Err(err).Msg("failed to create booking")
			s.releaseRoom(ctx, room.ID)

			return res, fmt.Errorf("failed to create booking: %w", err)
		}

		booked = append(booked, booking)
		s.publishLifecycleEvent(ctx, eventBookingCreated, booking)
	}

	s.invalidateListCaches(ctx)

	res.Success = true
	res.Booked = make([]dto.BookingResponse, len(booked))

	for i, booking := range booked {
		res.Booked[i].FromModel(booking)
	}

	return res, nil
}

// CreateBatch processes entries in order and aborts on the first failure.
// Earlier entries stay committed; there is no cross-entry rollback.
func (s *serviceImpl) CreateBatch(ctx context.Context, req dto.CreateBookingsRequest) (res dto.CreateBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateBatch")
	defer scope.End()
	defer scope.TraceIfError(err)

	res.Booked = []dto.BookingResponse{}

	for i, entry := range req.Bookings {
		entryRes, entryErr := s.Create(ctx, entry)
		if entryErr != nil {
			log.Error().Err(entryErr).Int("entry", i).Msg("batch booking aborted")

			return res, entryErr
		}

		res.Booked = append(res.Booked, entryRes.Booked...)
	}

	res.Success = true

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	booking, err := s.getByID(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetByGRC(ctx context.Context, grcNo string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetByGRC")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetGRCBooking, grcNo)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking by GRC")

		return res, nil
	}

	booking, err := s.repo.Get(ctx, shared.FilterByID(grcNo, model.FieldGRCNo, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking by GRC")

		return res, fmt.Errorf("failed to get booking by GRC: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

// Update applies a partial update. Every JSON sub-record is merged shallowly
// over the stored one, scalars overwrite only when present, and an embedded
// extension goes through the same path as Extend. isActive, referenceNumber,
// createdAt, id, grcNo and the category reference are not representable here
// at all.
func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateBookingRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req.IsEmpty() {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	booking, err := s.getByID(ctx, id)
	if err != nil {
		return err
	}

	updatedFields := shared.TransformFields(req, user)

	if req.VIP != nil {
		updatedFields[model.FieldVIP] = *req.VIP
	}

	s.mergeSubRecords(&booking, req, updatedFields)

	if req.Extension != nil {
		if !booking.IsActive {
			return failure.BadRequestFromString("cannot extend an inactive booking") // nolint:wrapcheck
		}

		if err = s.applyExtension(&booking, *req.Extension, user, updatedFields); err != nil {
			return err
		}
	}

	if err = s.repo.Update(ctx, updatedFields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update booking")

		return fmt.Errorf("failed to update booking: %w", err)
	}

	s.invalidateBookingCaches(ctx, booking)

	return nil
}

// Extend appends one extension record and accumulates the additional amount
// into the payment total. Inactive bookings cannot be extended.
func (s *serviceImpl) Extend(ctx context.Context, req dto.ExtendBookingRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Extend")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	booking, err := s.getByID(ctx, id)
	if err != nil {
		return err
	}

	if !booking.IsActive {
		return failure.BadRequestFromString("cannot extend an inactive booking") // nolint:wrapcheck
	}

	updatedFields := map[string]any{}
	if err = s.applyExtension(&booking, req, user, updatedFields); err != nil {
		return err
	}

	updatedFields[constant.FieldModifiedAt] = timezone.Now()
	updatedFields[constant.FieldModifiedBy] = user

	if err = s.repo.Update(ctx, updatedFields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to extend booking")

		return fmt.Errorf("failed to extend booking: %w", err)
	}

	s.invalidateBookingCaches(ctx, booking)

	return nil
}

// Unbook deactivates a booking. The flip happens at most once, but the room
// side effects always run so a retry can finish an interrupted checkout. A
// failed room lookup is logged and swallowed; the booking still deactivates.
func (s *serviceImpl) Unbook(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Unbook")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	booking, err := s.getByID(ctx, id)
	if err != nil {
		return err
	}

	if booking.IsActive {
		updatedFields := map[string]any{
			model.FieldIsActive: false,
			model.FieldBookingInfo: booking.BookingInfo.Merge(model.JSONMap{
				model.InfoKeyActualCheckOutTime: timezone.Format(timezone.Now(), constant.DateFormat),
			}),
			constant.FieldModifiedAt: timezone.Now(),
			constant.FieldModifiedBy: user,
		}

		if err = s.repo.Update(ctx, updatedFields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
			log.Error().Err(err).Msg("failed to deactivate booking")

			return fmt.Errorf("failed to deactivate booking: %w", err)
		}

		s.publishLifecycleEvent(ctx, eventBookingUnbooked, booking)
	}

	s.runCheckoutCascade(ctx, booking)
	s.invalidateBookingCaches(ctx, booking)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.getByID(ctx, id)
	if err != nil {
		return err
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete booking")

		return fmt.Errorf("failed to delete booking: %w", err)
	}

	s.invalidateBookingCaches(ctx, booking)

	return nil
}

// UploadIdentityDocument stores a scanned guest ID in S3 and records its URL
// in identity_details. A previously stored document is removed best-effort.
func (s *serviceImpl) UploadIdentityDocument(ctx context.Context, id string, file multipart.File, fileHeader *multipart.FileHeader) (url string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UploadIdentityDocument")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	booking, err := s.getByID(ctx, id)
	if err != nil {
		return constant.Empty, err
	}

	bucketName := s.cfg.External.S3.BucketName
	filename := uuid.NewString()

	parts := strings.Split(fileHeader.Filename, ".")
	if len(parts) > 1 {
		filename = fmt.Sprintf("%s.%s", filename, parts[len(parts)-1])
	}

	url, err = s.s3.UploadFile(ctx, bucketName, model.EntityName, file, fileHeader, filename)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload identity document")

		return constant.Empty, fmt.Errorf("failed to upload identity document: %w", err)
	}

	oldURL, _ := booking.IdentityDetails[model.IdentityKeyDocumentURL].(string)

	updatedFields := map[string]any{
		model.FieldIdentityDetails: booking.IdentityDetails.Merge(model.JSONMap{
			model.IdentityKeyDocumentURL: url,
		}),
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err = s.repo.Update(ctx, updatedFields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to record identity document")
		_ = s.s3.DeleteFile(ctx, bucketName, model.EntityName, filename)

		return constant.Empty, fmt.Errorf("failed to record identity document: %w", err)
	}

	if oldURL != constant.Empty {
		oldObjectName := s.s3.GetObjectNameFromURL(bucketName, oldURL)
		if oldObjectName != constant.Empty {
			_ = s.s3.DeleteFile(ctx, bucketName, model.EntityName, oldObjectName)
		}
	}

	s.invalidateBookingCaches(ctx, booking)

	return url, nil
}

func (s *serviceImpl) getByID(ctx context.Context, id string) (model.Booking, error) {
	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return booking, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return booking, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	return booking, nil
}

// generateGRCNo draws 4 digit codes until one is absent among all bookings.
// A unique index on grc_no backs this up against concurrent generators.
func (s *serviceImpl) generateGRCNo(ctx context.Context) (string, error) {
	for {
		grcNo := fmt.Sprintf("GRC-%04d", rand.IntN(10000))

		exist, err := s.repo.Exist(ctx, shared.FilterByID(grcNo, model.FieldGRCNo, model.TableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to check GRC number")

			return constant.Empty, fmt.Errorf("failed to check GRC number: %w", err)
		}

		if !exist {
			return grcNo, nil
		}
	}
}

// Reference numbers are not checked for uniqueness; collisions are accepted.
func generateReferenceNumber() string {
	return fmt.Sprintf("REF-%06d", rand.IntN(1000000))
}

func (s *serviceImpl) mergeSubRecords(booking *model.Booking, req dto.UpdateBookingRequest, updatedFields map[string]any) {
	if req.GuestDetails != nil {
		updatedFields[model.FieldGuestDetails] = booking.GuestDetails.Merge(req.GuestDetails)
	}

	if req.ContactDetails != nil {
		updatedFields[model.FieldContactDetails] = booking.ContactDetails.Merge(req.ContactDetails)
	}

	if req.IdentityDetails != nil {
		updatedFields[model.FieldIdentityDetails] = booking.IdentityDetails.Merge(req.IdentityDetails)
	}

	if req.PaymentDetails != nil {
		updatedFields[model.FieldPaymentDetails] = booking.PaymentDetails.Merge(req.PaymentDetails)
	}

	if req.VehicleDetails != nil {
		updatedFields[model.FieldVehicleDetails] = booking.VehicleDetails.Merge(req.VehicleDetails)
	}

	info := booking.BookingInfo
	infoChanged := false

	if req.BookingInfo != nil {
		info = info.Merge(req.BookingInfo)
		infoChanged = true
	}

	if req.ActualCheckInTime != constant.Empty {
		info = info.Merge(model.JSONMap{model.InfoKeyActualCheckInTime: req.ActualCheckInTime})
		infoChanged = true
	}

	if req.ActualCheckOutTime != constant.Empty {
		info = info.Merge(model.JSONMap{model.InfoKeyActualCheckOutTime: req.ActualCheckOutTime})
		infoChanged = true
	}

	if infoChanged {
		booking.BookingInfo = info
		updatedFields[model.FieldBookingInfo] = info
	}
}

func (s *serviceImpl) applyExtension(booking *model.Booking, req dto.ExtendBookingRequest, user string, updatedFields map[string]any) error {
	if !validExtensionDate(req.ExtendedCheckOut) {
		return failure.BadRequestFromString("invalid extended checkout date") // nolint:wrapcheck
	}

	originalCheckIn, _ := booking.BookingInfo[model.InfoKeyCheckIn].(string)
	originalCheckOut, _ := booking.BookingInfo[model.InfoKeyCheckOut].(string)

	approvedBy := req.ApprovedBy
	if approvedBy == constant.Empty {
		approvedBy = user
	}

	record := model.ExtensionRecord{
		OriginalCheckIn:  originalCheckIn,
		OriginalCheckOut: originalCheckOut,
		ExtendedCheckOut: req.ExtendedCheckOut,
		Reason:           req.Reason,
		AdditionalAmount: req.AdditionalAmount,
		PaymentMode:      req.PaymentMode,
		ApprovedBy:       approvedBy,
		ExtendedAt:       timezone.Format(timezone.Now(), constant.DateFormat),
	}

	info := booking.BookingInfo
	if existing, ok := updatedFields[model.FieldBookingInfo].(model.JSONMap); ok {
		info = existing
	}

	payment := booking.PaymentDetails
	if existing, ok := updatedFields[model.FieldPaymentDetails].(model.JSONMap); ok {
		payment = existing
	}

	booking.PaymentDetails = payment

	updatedFields[model.FieldBookingInfo] = info.Merge(model.JSONMap{model.InfoKeyCheckOut: req.ExtendedCheckOut})
	updatedFields[model.FieldPaymentDetails] = payment.Merge(model.JSONMap{
		model.PaymentKeyTotalAmount: booking.TotalAmount() + req.AdditionalAmount,
	})
	updatedFields[model.FieldExtensionHist] = append(booking.ExtensionHistory, record)

	return nil
}

func validExtensionDate(value string) bool {
	if _, err := timezone.Parse(constant.DateFormat, value); err == nil {
		return true
	}

	if _, err := timezone.Parse(constant.DateOnlyFormat, value); err == nil {
		return true
	}

	return false
}

// runCheckoutCascade frees up the physical room after an unbook. The 3-tier
// number lookup tolerates rooms renumbered since the booking was created.
func (s *serviceImpl) runCheckoutCascade(ctx context.Context, booking model.Booking) {
	room, err := s.roomSvc.FindByNumber(ctx, booking.RoomNumber, booking.CategoryID)
	if err != nil {
		log.Error().Err(err).Str("roomNumber", booking.RoomNumber).Msg("room lookup failed during unbook, skipping cascade")

		return
	}

	if room.ID == constant.Empty {
		log.Warn().Str("roomNumber", booking.RoomNumber).Msg("no room matched during unbook, skipping cascade")

		return
	}

	if err := s.roomSvc.SetMaintenance(ctx, room.ID); err != nil {
		log.Error().Err(err).Str("roomID", room.ID).Msg("failed to flip room to maintenance")
	}

	if err := s.housekeeping.EnsureCheckoutTask(ctx, room.ID); err != nil {
		log.Error().Err(err).Str("roomID", room.ID).Msg("failed to ensure housekeeping task")
	}
}

func (s *serviceImpl) releaseRoom(ctx context.Context, roomID string) {
	if err := s.roomSvc.Release(ctx, roomID); err != nil {
		log.Error().Err(err).Str("roomID", roomID).Msg("failed to release reserved room")
	}
}

func (s *serviceImpl) publishLifecycleEvent(ctx context.Context, event string, booking model.Booking) {
	go func() {
		c := context.WithoutCancel(ctx)

		payload := lifecycleEvent{
			Event:      event,
			BookingID:  booking.ID,
			GRCNo:      booking.GRCNo,
			RoomNumber: booking.RoomNumber,
			OccurredAt: timezone.Format(timezone.Now(), constant.DateFormat),
		}

		if err := s.kafka.SendMessages(c, s.cfg.Kafka.Topics.BookingLifecycle, kafka.Message{Key: booking.ID, Value: payload}); err != nil {
			log.Error().Err(err).Str("event", event).Str("bookingID", booking.ID).Msg("failed to publish booking event")
		}
	}()
}

func (s *serviceImpl) invalidateBookingCaches(ctx context.Context, booking model.Booking) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, booking.ID)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking from cache")
		}

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetGRCBooking, booking.GRCNo)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()
}

func (s *serviceImpl) invalidateListCaches(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()
}

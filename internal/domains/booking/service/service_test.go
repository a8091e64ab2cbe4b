package service_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"inn/config"
	kafkaMocks "inn/infras/kafka/mocks"
	"inn/infras/otel/mocks"
	s3Mocks "inn/infras/s3/mocks"
	bookingMocks "inn/internal/domains/booking/mocks"
	"inn/internal/domains/booking/model"
	"inn/internal/domains/booking/model/dto"
	"inn/internal/domains/booking/service"
	categoryMocks "inn/internal/domains/category/mocks"
	categoryModel "inn/internal/domains/category/model"
	hkMocks "inn/internal/domains/housekeeping/mocks"
	roomMocks "inn/internal/domains/room/mocks"
	roomModel "inn/internal/domains/room/model"
	cacheMocks "inn/shared/cache/mocks"
	"inn/shared/constant"
	"inn/shared/failure"
)

type bookingServiceMocks struct {
	repo         *bookingMocks.MockBooking
	categoryRepo *categoryMocks.MockCategory
	roomSvc      *roomMocks.MockRoomService
	housekeeping *hkMocks.MockHousekeepingService
	cache        *cacheMocks.MockRedisCache
	kafka        *kafkaMocks.MockClient
	s3           *s3Mocks.MockS3
}

func newBookingService(t *testing.T) (service.Booking, bookingServiceMocks) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := bookingServiceMocks{
		repo:         bookingMocks.NewMockBooking(ctrl),
		categoryRepo: categoryMocks.NewMockCategory(ctrl),
		roomSvc:      roomMocks.NewMockRoomService(ctrl),
		housekeeping: hkMocks.NewMockHousekeepingService(ctrl),
		cache:        cacheMocks.NewMockRedisCache(ctrl),
		kafka:        kafkaMocks.NewMockClient(ctrl),
		s3:           s3Mocks.NewMockS3(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.Kafka.Topics.BookingLifecycle = "bookings.lifecycle"
	cfg.External.S3.BucketName = "inn-bucket"

	svc := service.New(m.repo, m.categoryRepo, m.roomSvc, m.housekeeping, cfg, m.cache, mocks.NewOtel(), m.kafka, m.s3)

	return svc, m
}

func allowAsyncSideEffects(m bookingServiceMocks) {
	m.kafka.EXPECT().SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
}

func userCtx() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
}

var grcPattern = regexp.MustCompile(`^GRC-\d{4}$`)

func TestBookingService_Create(t *testing.T) {
	category := categoryModel.Category{ID: "cat-1", Name: "Deluxe"}
	rooms := []roomModel.Room{
		{ID: "room-1", RoomNumber: "101", CategoryID: "cat-1", Status: roomModel.StatusAvailable},
		{ID: "room-2", RoomNumber: "102", CategoryID: "cat-1", Status: roomModel.StatusAvailable},
	}

	t.Run("books one record per room", func(t *testing.T) {
		svc, m := newBookingService(t)
		allowAsyncSideEffects(m)

		m.categoryRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(category, nil)
		m.roomSvc.EXPECT().FindAvailable(gomock.Any(), "cat-1", 2).Return(rooms, nil)
		m.roomSvc.EXPECT().Reserve(gomock.Any(), "room-1").Return(nil)
		m.roomSvc.EXPECT().Reserve(gomock.Any(), "room-2").Return(nil)
		m.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil).Times(2)

		inserted := make([]model.Booking, 0, 2)
		m.repo.EXPECT().
			Insert(gomock.Any(), gomock.AssignableToTypeOf(model.Booking{})).
			DoAndReturn(func(_ context.Context, booking model.Booking) error {
				inserted = append(inserted, booking)
				return nil
			}).
			Times(2)

		res, err := svc.Create(userCtx(), dto.CreateBookingRequest{CategoryID: "cat-1", Count: 2})

		assert.NoError(t, err)
		assert.True(t, res.Success)
		assert.Len(t, res.Booked, 2)
		assert.Len(t, inserted, 2)

		for _, booking := range inserted {
			assert.Regexp(t, grcPattern, booking.GRCNo)
			assert.True(t, booking.IsActive)
			assert.Equal(t, 1, booking.NumberOfRooms)
			assert.Equal(t, "Deluxe", booking.CategoryName)
		}

		assert.Equal(t, "101", inserted[0].RoomNumber)
		assert.Equal(t, "102", inserted[1].RoomNumber)
		assert.NotEqual(t, inserted[0].GRCNo+inserted[0].ID, inserted[1].GRCNo+inserted[1].ID)
	})

	t.Run("unknown category", func(t *testing.T) {
		svc, m := newBookingService(t)

		m.categoryRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(categoryModel.Category{}, nil)

		_, err := svc.Create(userCtx(), dto.CreateBookingRequest{CategoryID: "cat-x"})

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("not enough rooms leaves inventory untouched", func(t *testing.T) {
		svc, m := newBookingService(t)

		m.categoryRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(category, nil)
		m.roomSvc.EXPECT().FindAvailable(gomock.Any(), "cat-1", 3).Return(rooms, nil)

		_, err := svc.Create(userCtx(), dto.CreateBookingRequest{CategoryID: "cat-1", Count: 3})

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
		assert.Contains(t, err.Error(), "only 2 rooms available")
	})

	t.Run("lost reservation race", func(t *testing.T) {
		svc, m := newBookingService(t)

		m.categoryRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(category, nil)
		m.roomSvc.EXPECT().FindAvailable(gomock.Any(), "cat-1", 1).Return(rooms[:1], nil)
		m.roomSvc.EXPECT().Reserve(gomock.Any(), "room-1").Return(failure.BadRequestFromString("room is no longer available"))

		_, err := svc.Create(userCtx(), dto.CreateBookingRequest{CategoryID: "cat-1"})

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("insert failure releases the reserved room", func(t *testing.T) {
		svc, m := newBookingService(t)
		allowAsyncSideEffects(m)

		m.categoryRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(category, nil)
		m.roomSvc.EXPECT().FindAvailable(gomock.Any(), "cat-1", 1).Return(rooms[:1], nil)
		m.roomSvc.EXPECT().Reserve(gomock.Any(), "room-1").Return(nil)
		m.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
		m.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("insert error"))
		m.roomSvc.EXPECT().Release(gomock.Any(), "room-1").Return(nil)

		_, err := svc.Create(userCtx(), dto.CreateBookingRequest{CategoryID: "cat-1"})

		assert.Error(t, err)
	})

	t.Run("retries GRC code until unused", func(t *testing.T) {
		svc, m := newBookingService(t)
		allowAsyncSideEffects(m)

		m.categoryRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(category, nil)
		m.roomSvc.EXPECT().FindAvailable(gomock.Any(), "cat-1", 1).Return(rooms[:1], nil)
		m.roomSvc.EXPECT().Reserve(gomock.Any(), "room-1").Return(nil)

		m.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		m.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		m.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		m.repo.EXPECT().
			Insert(gomock.Any(), gomock.AssignableToTypeOf(model.Booking{})).
			DoAndReturn(func(_ context.Context, booking model.Booking) error {
				assert.Regexp(t, grcPattern, booking.GRCNo)
				return nil
			})

		res, err := svc.Create(userCtx(), dto.CreateBookingRequest{CategoryID: "cat-1"})

		assert.NoError(t, err)
		assert.True(t, res.Success)
	})
}

func TestBookingService_Get(t *testing.T) {
	booking := model.Booking{ID: "booking-1", GRCNo: "GRC-0001", CategoryName: "Deluxe", IsActive: true}

	t.Run("cache miss then db hit", func(t *testing.T) {
		svc, m := newBookingService(t)

		m.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(booking, nil)
		m.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		res, err := svc.Get(context.Background(), "booking-1")

		assert.NoError(t, err)
		assert.Equal(t, "booking-1", res.ID)
		assert.Equal(t, "Deluxe", res.CategoryName)
	})

	t.Run("not found", func(t *testing.T) {
		svc, m := newBookingService(t)

		m.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{}, nil)

		_, err := svc.Get(context.Background(), "booking-x")

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})

	t.Run("unnamed category falls back to placeholder", func(t *testing.T) {
		svc, m := newBookingService(t)

		orphan := booking
		orphan.CategoryName = ""

		m.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(orphan, nil)
		m.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		res, err := svc.Get(context.Background(), "booking-1")

		assert.NoError(t, err)
		assert.Equal(t, model.CategoryNamePlaceholder, res.CategoryName)
	})
}

func TestBookingService_GetByGRC(t *testing.T) {
	svc, m := newBookingService(t)

	booking := model.Booking{ID: "booking-1", GRCNo: "GRC-0042"}

	m.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss")).Times(2)
	m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(booking, nil)
	m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{}, nil)
	m.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	res, err := svc.GetByGRC(context.Background(), "GRC-0042")
	assert.NoError(t, err)
	assert.Equal(t, "booking-1", res.ID)

	_, err = svc.GetByGRC(context.Background(), "GRC-9999")
	assert.Error(t, err)
	assert.Equal(t, 404, failure.GetCode(err))
}

func TestBookingService_Update(t *testing.T) {
	stored := model.Booking{
		ID:       "booking-1",
		GRCNo:    "GRC-0001",
		IsActive: true,
		GuestDetails: model.JSONMap{
			"firstName": "Asep",
			"lastName":  "Sunandar",
		},
		BookingInfo: model.JSONMap{
			model.InfoKeyCheckIn:  "2026-08-01",
			model.InfoKeyCheckOut: "2026-08-05",
		},
		PaymentDetails:   model.JSONMap{model.PaymentKeyTotalAmount: 500.0},
		ExtensionHistory: model.ExtensionHistory{},
	}

	t.Run("empty request", func(t *testing.T) {
		svc, _ := newBookingService(t)

		err := svc.Update(userCtx(), dto.UpdateBookingRequest{}, "booking-1")

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("merges sub records shallowly", func(t *testing.T) {
		svc, m := newBookingService(t)
		allowAsyncSideEffects(m)

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(stored, nil)
		m.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
				guest, ok := fields[model.FieldGuestDetails].(model.JSONMap)
				assert.True(t, ok)
				assert.Equal(t, "Cecep", guest["firstName"])
				assert.Equal(t, "Sunandar", guest["lastName"])

				info, ok := fields[model.FieldBookingInfo].(model.JSONMap)
				assert.True(t, ok)
				assert.Equal(t, "2026-08-01T14:00:00+07:00", info[model.InfoKeyActualCheckInTime])
				assert.Equal(t, "2026-08-01", info[model.InfoKeyCheckIn])

				assert.NotContains(t, fields, model.FieldIsActive)
				assert.NotContains(t, fields, model.FieldGRCNo)
				assert.NotContains(t, fields, model.FieldCategoryID)

				return nil
			})

		err := svc.Update(userCtx(), dto.UpdateBookingRequest{
			GuestDetails:      map[string]any{"firstName": "Cecep"},
			ActualCheckInTime: "2026-08-01T14:00:00+07:00",
		}, "booking-1")

		assert.NoError(t, err)
	})

	t.Run("embedded extension on inactive booking", func(t *testing.T) {
		svc, m := newBookingService(t)

		inactive := stored
		inactive.IsActive = false

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(inactive, nil)

		err := svc.Update(userCtx(), dto.UpdateBookingRequest{
			Extension: &dto.ExtendBookingRequest{ExtendedCheckOut: "2026-08-07"},
		}, "booking-1")

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})
}

func TestBookingService_Extend(t *testing.T) {
	stored := model.Booking{
		ID:       "booking-1",
		GRCNo:    "GRC-0001",
		IsActive: true,
		BookingInfo: model.JSONMap{
			model.InfoKeyCheckIn:  "2026-08-01",
			model.InfoKeyCheckOut: "2026-08-05",
		},
		PaymentDetails: model.JSONMap{model.PaymentKeyTotalAmount: 500.0},
		ExtensionHistory: model.ExtensionHistory{
			{OriginalCheckOut: "2026-08-03", ExtendedCheckOut: "2026-08-05"},
		},
	}

	t.Run("accumulates amount and appends history", func(t *testing.T) {
		svc, m := newBookingService(t)
		allowAsyncSideEffects(m)

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(stored, nil)
		m.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
				info := fields[model.FieldBookingInfo].(model.JSONMap)
				assert.Equal(t, "2026-08-07", info[model.InfoKeyCheckOut])

				payment := fields[model.FieldPaymentDetails].(model.JSONMap)
				assert.InDelta(t, 650.0, payment[model.PaymentKeyTotalAmount], 0.001)

				history := fields[model.FieldExtensionHist].(model.ExtensionHistory)
				assert.Len(t, history, 2)
				assert.Equal(t, "2026-08-01", history[1].OriginalCheckIn)
				assert.Equal(t, "2026-08-05", history[1].OriginalCheckOut)
				assert.Equal(t, "2026-08-07", history[1].ExtendedCheckOut)
				assert.Equal(t, "test-user-id", history[1].ApprovedBy)

				return nil
			})

		err := svc.Extend(userCtx(), dto.ExtendBookingRequest{
			ExtendedCheckOut: "2026-08-07",
			Reason:           "guest request",
			AdditionalAmount: 150,
		}, "booking-1")

		assert.NoError(t, err)
	})

	t.Run("explicit approver overrides authenticated user", func(t *testing.T) {
		svc, m := newBookingService(t)
		allowAsyncSideEffects(m)

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(stored, nil)
		m.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
				history := fields[model.FieldExtensionHist].(model.ExtensionHistory)
				assert.Equal(t, "front-office-manager", history[1].ApprovedBy)

				return nil
			})

		err := svc.Extend(userCtx(), dto.ExtendBookingRequest{
			ExtendedCheckOut: "2026-08-07",
			ApprovedBy:       "front-office-manager",
		}, "booking-1")

		assert.NoError(t, err)
	})

	t.Run("inactive booking", func(t *testing.T) {
		svc, m := newBookingService(t)

		inactive := stored
		inactive.IsActive = false

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(inactive, nil)

		err := svc.Extend(userCtx(), dto.ExtendBookingRequest{ExtendedCheckOut: "2026-08-07"}, "booking-1")

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("invalid date", func(t *testing.T) {
		svc, m := newBookingService(t)

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(stored, nil)

		err := svc.Extend(userCtx(), dto.ExtendBookingRequest{ExtendedCheckOut: "next friday"}, "booking-1")

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("booking not found", func(t *testing.T) {
		svc, m := newBookingService(t)

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{}, nil)

		err := svc.Extend(userCtx(), dto.ExtendBookingRequest{ExtendedCheckOut: "2026-08-07"}, "booking-x")

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestBookingService_Unbook(t *testing.T) {
	active := model.Booking{
		ID:          "booking-1",
		GRCNo:       "GRC-0001",
		CategoryID:  "cat-1",
		RoomNumber:  "101",
		IsActive:    true,
		BookingInfo: model.JSONMap{model.InfoKeyCheckIn: "2026-08-01"},
	}
	room := roomModel.Room{ID: "room-1", RoomNumber: "101", CategoryID: "cat-1", Status: roomModel.StatusBooked}

	t.Run("deactivates and cascades", func(t *testing.T) {
		svc, m := newBookingService(t)
		allowAsyncSideEffects(m)

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(active, nil)
		m.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
				assert.Equal(t, false, fields[model.FieldIsActive])

				info := fields[model.FieldBookingInfo].(model.JSONMap)
				assert.NotEmpty(t, info[model.InfoKeyActualCheckOutTime])

				return nil
			})
		m.roomSvc.EXPECT().FindByNumber(gomock.Any(), "101", "cat-1").Return(room, nil)
		m.roomSvc.EXPECT().SetMaintenance(gomock.Any(), "room-1").Return(nil)
		m.housekeeping.EXPECT().EnsureCheckoutTask(gomock.Any(), "room-1").Return(nil)

		err := svc.Unbook(userCtx(), "booking-1")

		assert.NoError(t, err)
	})

	t.Run("already inactive still runs cascade", func(t *testing.T) {
		svc, m := newBookingService(t)
		allowAsyncSideEffects(m)

		inactive := active
		inactive.IsActive = false

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(inactive, nil)
		m.roomSvc.EXPECT().FindByNumber(gomock.Any(), "101", "cat-1").Return(room, nil)
		m.roomSvc.EXPECT().SetMaintenance(gomock.Any(), "room-1").Return(nil)
		m.housekeeping.EXPECT().EnsureCheckoutTask(gomock.Any(), "room-1").Return(nil)

		err := svc.Unbook(userCtx(), "booking-1")

		assert.NoError(t, err)
	})

	t.Run("room lookup failure does not fail the unbook", func(t *testing.T) {
		svc, m := newBookingService(t)
		allowAsyncSideEffects(m)

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(active, nil)
		m.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		m.roomSvc.EXPECT().FindByNumber(gomock.Any(), "101", "cat-1").Return(roomModel.Room{}, errors.New("database error"))

		err := svc.Unbook(userCtx(), "booking-1")

		assert.NoError(t, err)
	})

	t.Run("no matching room skips cascade", func(t *testing.T) {
		svc, m := newBookingService(t)
		allowAsyncSideEffects(m)

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(active, nil)
		m.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		m.roomSvc.EXPECT().FindByNumber(gomock.Any(), "101", "cat-1").Return(roomModel.Room{}, nil)

		err := svc.Unbook(userCtx(), "booking-1")

		assert.NoError(t, err)
	})

	t.Run("booking not found", func(t *testing.T) {
		svc, m := newBookingService(t)

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{}, nil)

		err := svc.Unbook(userCtx(), "booking-x")

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestBookingService_Delete(t *testing.T) {
	svc, m := newBookingService(t)
	allowAsyncSideEffects(m)

	booking := model.Booking{ID: "booking-1", GRCNo: "GRC-0001"}

	m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(booking, nil)
	m.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)

	err := svc.Delete(userCtx(), "booking-1")
	assert.NoError(t, err)

	m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{}, nil)

	err = svc.Delete(userCtx(), "booking-x")
	assert.Error(t, err)
	assert.Equal(t, 404, failure.GetCode(err))
}

func TestBookingService_CreateBatch(t *testing.T) {
	category := categoryModel.Category{ID: "cat-1", Name: "Deluxe"}
	rooms := []roomModel.Room{
		{ID: "room-1", RoomNumber: "101", CategoryID: "cat-1", Status: roomModel.StatusAvailable},
	}

	t.Run("aborts on first failing entry", func(t *testing.T) {
		svc, m := newBookingService(t)
		allowAsyncSideEffects(m)

		m.categoryRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(category, nil)
		m.roomSvc.EXPECT().FindAvailable(gomock.Any(), "cat-1", 1).Return(rooms, nil)
		m.roomSvc.EXPECT().Reserve(gomock.Any(), "room-1").Return(nil)
		m.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
		m.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)

		m.categoryRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(categoryModel.Category{}, nil)

		res, err := svc.CreateBatch(userCtx(), dto.CreateBookingsRequest{
			Bookings: []dto.CreateBookingRequest{
				{CategoryID: "cat-1"},
				{CategoryID: "cat-x"},
				{CategoryID: "cat-1"},
			},
		})

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
		assert.False(t, res.Success)
		assert.Len(t, res.Booked, 1)
	})
}

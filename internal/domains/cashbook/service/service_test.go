package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"inn/config"
	"inn/infras/otel/mocks"
	cashbookMocks "inn/internal/domains/cashbook/mocks"
	"inn/internal/domains/cashbook/model"
	"inn/internal/domains/cashbook/model/dto"
	"inn/internal/domains/cashbook/service"
	cacheMocks "inn/shared/cache/mocks"
	"inn/shared/constant"
	gDto "inn/shared/dto"
	"inn/shared/failure"
)

func newCashbookService(t *testing.T) (service.Cashbook, *cashbookMocks.MockCashbook, *cacheMocks.MockRedisCache) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := cashbookMocks.NewMockCashbook(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	return service.New(mockRepo, cfg, mockCache, mocks.NewOtel()), mockRepo, mockCache
}

func filterValue(filter gDto.FilterGroup, argName string) any {
	for _, f := range filter.Filters {
		if typed, ok := f.(gDto.Filter); ok && typed.ArgName == argName {
			return typed.Value
		}
	}

	return nil
}

func TestCashbookService_Add(t *testing.T) {
	t.Run("records transaction with receptionist", func(t *testing.T) {
		svc, mockRepo, mockCache := newCashbookService(t)

		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.AssignableToTypeOf(model.Transaction{})).
			DoAndReturn(func(_ context.Context, transaction model.Transaction) error {
				assert.NotEmpty(t, transaction.ID)
				assert.Equal(t, model.TypeKeep, transaction.Type)
				assert.Equal(t, model.SourceRoomBooking, transaction.Source)
				assert.Equal(t, "test-user-id", transaction.ReceptionistID)

				return nil
			})
		mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
		res, err := svc.Add(ctx, dto.AddTransactionRequest{
			Amount: 750000,
			Type:   model.TypeKeep,
			Source: model.SourceRoomBooking,
		})

		assert.NoError(t, err)
		assert.InDelta(t, 750000.0, res.Amount, 0.001)
		assert.Equal(t, "test-user-id", res.ReceptionistID)
	})

	t.Run("insert error", func(t *testing.T) {
		svc, mockRepo, _ := newCashbookService(t)

		mockRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("insert error"))

		_, err := svc.Add(context.Background(), dto.AddTransactionRequest{
			Amount: 100,
			Type:   model.TypeSent,
			Source: model.SourceOther,
		})

		assert.Error(t, err)
	})
}

func TestCashbookService_GetAll(t *testing.T) {
	svc, mockRepo, mockCache := newCashbookService(t)

	transactions := []model.Transaction{
		{ID: "tx-1", Amount: 100, Type: model.TypeKeep, Source: model.SourceRestaurant},
		{ID: "tx-2", Amount: 50, Type: model.TypeSent, Source: model.SourceOther},
	}

	mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss")).Times(2)
	mockRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(2, nil)
	mockRepo.EXPECT().
		GetAll(gomock.Any(), gomock.AssignableToTypeOf(gDto.QueryParams{}), gomock.Any()).
		DoAndReturn(func(_ context.Context, params gDto.QueryParams, _ gDto.FilterGroup, _ ...string) ([]model.Transaction, error) {
			assert.Equal(t, model.FieldCreatedAt, params.SortBy)
			assert.Equal(t, gDto.SortDirDesc, params.SortDir)

			return transactions, nil
		})
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	res, err := svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, gDto.FilterGroup{})

	assert.NoError(t, err)
	assert.Len(t, res.Transactions, 2)
	assert.Equal(t, 2, res.TotalData)
}

func TestCashbookService_Report(t *testing.T) {
	sums := map[string]map[string]float64{
		model.SourceRestaurant:   {model.TypeKeep: 300, model.TypeSent: 100},
		model.SourceRoomBooking:  {model.TypeKeep: 1000, model.TypeSent: 0},
		model.SourceBanquetParty: {model.TypeKeep: 0, model.TypeSent: 0},
		model.SourceOther:        {model.TypeKeep: 50, model.TypeSent: 75},
	}

	t.Run("cards per source over today", func(t *testing.T) {
		svc, mockRepo, mockCache := newCashbookService(t)

		mockRepo.EXPECT().
			SumAmount(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, filter gDto.FilterGroup) (float64, error) {
				source, _ := filterValue(filter, "source").(string)
				transactionType, _ := filterValue(filter, "type").(string)

				from, ok := filterValue(filter, "period_from").(time.Time)
				assert.True(t, ok)
				assert.Zero(t, from.Hour())

				return sums[source][transactionType], nil
			}).
			Times(8)

		mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss")).Times(8)
		mockRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(0, nil).Times(4)
		mockRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.Transaction{}, nil).Times(4)
		mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		res, err := svc.Report(context.Background(), service.ReportFilterToday, "", gDto.QueryParams{Page: 1, Limit: 10})

		assert.NoError(t, err)
		assert.Equal(t, service.ReportFilterToday, res.FilterApplied)
		assert.Len(t, res.Cards, 4)

		assert.Equal(t, model.SourceRestaurant, res.Cards[0].Source)
		assert.InDelta(t, 300.0, res.Cards[0].TotalReceived, 0.001)
		assert.InDelta(t, 100.0, res.Cards[0].TotalSent, 0.001)
		assert.InDelta(t, 200.0, res.Cards[0].CashInReception, 0.001)

		assert.Equal(t, model.SourceOther, res.Cards[3].Source)
		assert.InDelta(t, -25.0, res.Cards[3].CashInReception, 0.001)
	})

	t.Run("each card lists only its own source", func(t *testing.T) {
		svc, mockRepo, mockCache := newCashbookService(t)

		bySource := map[string][]model.Transaction{
			model.SourceRestaurant:  {{ID: "tx-rest", Amount: 300, Type: model.TypeKeep, Source: model.SourceRestaurant}},
			model.SourceRoomBooking: {{ID: "tx-room", Amount: 1000, Type: model.TypeKeep, Source: model.SourceRoomBooking}},
		}

		mockRepo.EXPECT().SumAmount(gomock.Any(), gomock.Any()).Return(0.0, nil).Times(8)
		mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss")).Times(8)
		mockRepo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, filter gDto.FilterGroup) (int, error) {
				source, _ := filterValue(filter, "source").(string)

				return len(bySource[source]), nil
			}).
			Times(4)
		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.Transaction, error) {
				source, _ := filterValue(filter, "source").(string)

				return bySource[source], nil
			}).
			Times(4)
		mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		res, err := svc.Report(context.Background(), service.ReportFilterToday, "", gDto.QueryParams{Page: 1, Limit: 10})

		assert.NoError(t, err)

		for _, card := range res.Cards {
			for _, transaction := range card.Transactions.Transactions {
				assert.Equal(t, card.Source, transaction.Source)
			}
		}

		assert.Equal(t, model.SourceRestaurant, res.Cards[0].Source)
		assert.Len(t, res.Cards[0].Transactions.Transactions, 1)
		assert.Equal(t, "tx-rest", res.Cards[0].Transactions.Transactions[0].ID)
		assert.Equal(t, 1, res.Cards[0].Transactions.TotalData)

		assert.Equal(t, model.SourceRoomBooking, res.Cards[1].Source)
		assert.Equal(t, "tx-room", res.Cards[1].Transactions.Transactions[0].ID)

		assert.Empty(t, res.Cards[2].Transactions.Transactions)
	})

	t.Run("week window starts on sunday", func(t *testing.T) {
		svc, mockRepo, mockCache := newCashbookService(t)

		mockRepo.EXPECT().
			SumAmount(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, filter gDto.FilterGroup) (float64, error) {
				from, ok := filterValue(filter, "period_from").(time.Time)
				assert.True(t, ok)
				assert.Equal(t, time.Sunday, from.Weekday())

				return 0, nil
			}).
			Times(8)

		mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss")).Times(8)
		mockRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(0, nil).Times(4)
		mockRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.Transaction{}, nil).Times(4)
		mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		_, err := svc.Report(context.Background(), service.ReportFilterWeek, "", gDto.QueryParams{Page: 1, Limit: 10})

		assert.NoError(t, err)
	})

	t.Run("specific date window", func(t *testing.T) {
		svc, mockRepo, mockCache := newCashbookService(t)

		mockRepo.EXPECT().
			SumAmount(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, filter gDto.FilterGroup) (float64, error) {
				from, _ := filterValue(filter, "period_from").(time.Time)
				to, _ := filterValue(filter, "period_to").(time.Time)

				assert.Equal(t, 2026, from.Year())
				assert.Equal(t, time.August, from.Month())
				assert.Equal(t, 15, from.Day())
				assert.True(t, to.Before(from.AddDate(0, 0, 1)))

				return 0, nil
			}).
			Times(8)

		mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss")).Times(8)
		mockRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(0, nil).Times(4)
		mockRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.Transaction{}, nil).Times(4)
		mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		_, err := svc.Report(context.Background(), service.ReportFilterDate, "2026-08-15", gDto.QueryParams{Page: 1, Limit: 10})

		assert.NoError(t, err)
	})

	t.Run("no filter means all time", func(t *testing.T) {
		svc, mockRepo, mockCache := newCashbookService(t)

		mockRepo.EXPECT().
			SumAmount(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, filter gDto.FilterGroup) (float64, error) {
				assert.Nil(t, filterValue(filter, "period_from"))
				assert.Nil(t, filterValue(filter, "period_to"))

				return 0, nil
			}).
			Times(8)

		mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss")).Times(8)
		mockRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(0, nil).Times(4)
		mockRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.Transaction{}, nil).Times(4)
		mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		res, err := svc.Report(context.Background(), "", "", gDto.QueryParams{Page: 1, Limit: 10})

		assert.NoError(t, err)
		assert.Equal(t, service.ReportFilterAll, res.FilterApplied)
	})

	t.Run("invalid date", func(t *testing.T) {
		svc, _, _ := newCashbookService(t)

		_, err := svc.Report(context.Background(), service.ReportFilterDate, "15/08/2026", gDto.QueryParams{})

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("unknown filter", func(t *testing.T) {
		svc, _, _ := newCashbookService(t)

		_, err := svc.Report(context.Background(), "fortnight", "", gDto.QueryParams{})

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("sum error", func(t *testing.T) {
		svc, mockRepo, _ := newCashbookService(t)

		mockRepo.EXPECT().SumAmount(gomock.Any(), gomock.Any()).Return(0.0, errors.New("database error"))

		_, err := svc.Report(context.Background(), service.ReportFilterToday, "", gDto.QueryParams{})

		assert.Error(t, err)
	})
}

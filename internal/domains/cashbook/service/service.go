package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Cashbook=MockCashbookService

import (
	"context"
	"fmt"
	"time"

	"inn/config"
	"inn/infras/otel"
	"inn/internal/domains/cashbook/model"
	"inn/internal/domains/cashbook/model/dto"
	"inn/internal/domains/cashbook/repository"
	"inn/shared"
	"inn/shared/cache"
	"inn/shared/constant"
	gDto "inn/shared/dto"
	"inn/shared/failure"
	"inn/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetAllTransaction = "cashbook:gets"
	cacheCountTransaction  = "cashbook:count"

	ReportFilterAll   = "all"
	ReportFilterToday = "today"
	ReportFilterWeek  = "week"
	ReportFilterMonth = "month"
	ReportFilterYear  = "year"
	ReportFilterDate  = "date"
)

type Cashbook interface {
	Add(ctx context.Context, req dto.AddTransactionRequest) (dto.TransactionResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetTransactionsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Report(ctx context.Context, filterName, date string, req gDto.QueryParams) (dto.ReportResponse, error)
}

type serviceImpl struct {
	repo  repository.Cashbook
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Cashbook, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Cashbook {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Add(ctx context.Context, req dto.AddTransactionRequest) (res dto.TransactionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Add")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	transaction := req.ToModel(user)

	if err = s.repo.Insert(ctx, transaction); err != nil {
		log.Error().Err(err).Msg("failed to add cash transaction")

		return res, fmt.Errorf("failed to add cash transaction: %w", err)
	}

	s.invalidateTransactionCaches(ctx)

	res.FromModel(transaction)

	return res, nil
}

// GetAll lists transactions, newest first unless the caller sorts otherwise.
func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetTransactionsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req.SortBy == constant.Empty {
		req.SortBy = model.FieldCreatedAt
		req.SortDir = gDto.SortDirDesc
	}

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllTransaction, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for cash transactions")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count cash transactions")

		return res, fmt.Errorf("failed to count cash transactions: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get cash transactions")

		return res, fmt.Errorf("failed to get cash transactions: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save cash transactions to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountTransaction, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for cash transaction count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count cash transactions")

		return res, fmt.Errorf("failed to count cash transactions: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save cash transaction count to cache")
		}
	}()

	return res, nil
}

// Report aggregates the drawer per revenue source over the chosen period.
// Results are computed live so a reconciliation never shows stale totals.
func (s *serviceImpl) Report(ctx context.Context, filterName, date string, req gDto.QueryParams) (res dto.ReportResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Report")
	defer scope.End()
	defer scope.TraceIfError(err)

	from, to, err := periodRange(filterName, date)
	if err != nil {
		return res, err
	}

	if filterName == constant.Empty {
		filterName = ReportFilterAll
	}

	res.FilterApplied = filterName
	res.Cards = make([]dto.SourceCard, 0, len(model.Sources))

	for _, source := range model.Sources {
		received, sumErr := s.repo.SumAmount(ctx, sumFilter(from, to, source, model.TypeKeep))
		if sumErr != nil {
			log.Error().Err(sumErr).Str("source", source).Msg("failed to sum received amount")

			return res, fmt.Errorf("failed to build cash report: %w", sumErr)
		}

		sent, sumErr := s.repo.SumAmount(ctx, sumFilter(from, to, source, model.TypeSent))
		if sumErr != nil {
			log.Error().Err(sumErr).Str("source", source).Msg("failed to sum sent amount")

			return res, fmt.Errorf("failed to build cash report: %w", sumErr)
		}

		transactions, listErr := s.GetAll(ctx, req, sourceFilter(from, to, source))
		if listErr != nil {
			return res, listErr
		}

		res.Cards = append(res.Cards, dto.SourceCard{
			Source:          source,
			TotalReceived:   received,
			TotalSent:       sent,
			CashInReception: received - sent,
			Transactions:    transactions,
		})
	}

	return res, nil
}

// periodRange resolves a report filter to a half-open time window in the
// application timezone. Weeks start on Sunday. Zero times mean the report
// is unbounded.
func periodRange(filterName, date string) (time.Time, time.Time, error) {
	now := timezone.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, timezone.GetLocation())

	switch filterName {
	case constant.Empty, ReportFilterAll:
		return time.Time{}, time.Time{}, nil
	case ReportFilterToday:
		return startOfDay, startOfDay.AddDate(0, 0, 1), nil
	case ReportFilterWeek:
		start := startOfDay.AddDate(0, 0, -int(startOfDay.Weekday()))

		return start, start.AddDate(0, 0, 7), nil
	case ReportFilterMonth:
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, timezone.GetLocation())

		return start, start.AddDate(0, 1, 0), nil
	case ReportFilterYear:
		start := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, timezone.GetLocation())

		return start, start.AddDate(1, 0, 0), nil
	case ReportFilterDate:
		day, err := timezone.Parse(constant.DateOnlyFormat, date)
		if err != nil {
			return time.Time{}, time.Time{}, failure.BadRequestFromString("invalid date format") // nolint:wrapcheck
		}

		return day, day.AddDate(0, 0, 1), nil
	default:
		return time.Time{}, time.Time{}, failure.BadRequestFromString("invalid report filter") // nolint:wrapcheck
	}
}

func periodFilter(from, to time.Time) gDto.FilterGroup {
	if from.IsZero() {
		return gDto.FilterGroup{
			Operator: gDto.FilterGroupOperatorAnd,
			Filters:  []any{},
		}
	}

	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				ArgName:  "period_from",
				Field:    model.FieldCreatedAt,
				Operator: gDto.FilterOperatorGreaterEq,
				Value:    from,
				Table:    model.TableName,
			},
			gDto.Filter{
				ArgName:  "period_to",
				Field:    model.FieldCreatedAt,
				Operator: gDto.FilterOperatorLessEq,
				Value:    to.Add(-time.Nanosecond),
				Table:    model.TableName,
			},
		},
	}
}

func sourceFilter(from, to time.Time, source string) gDto.FilterGroup {
	filter := periodFilter(from, to)
	filter.Filters = append(filter.Filters, gDto.Filter{
		ArgName:  "source",
		Field:    model.FieldSource,
		Operator: gDto.FilterOperatorEq,
		Value:    source,
		Table:    model.TableName,
	})

	return filter
}

func sumFilter(from, to time.Time, source, transactionType string) gDto.FilterGroup {
	filter := sourceFilter(from, to, source)
	filter.Filters = append(filter.Filters, gDto.Filter{
		ArgName:  "type",
		Field:    model.FieldType,
		Operator: gDto.FilterOperatorEq,
		Value:    transactionType,
		Table:    model.TableName,
	})

	return filter
}

func (s *serviceImpl) invalidateTransactionCaches(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllTransaction)
		shared.InvalidateCaches(c, s.cache, cacheCountTransaction)
	}()
}

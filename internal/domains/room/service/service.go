package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Room=MockRoomService

import (
	"context"
	"fmt"
	"strconv"

	"inn/config"
	"inn/infras/otel"
	"inn/internal/domains/room/model"
	"inn/internal/domains/room/model/dto"
	"inn/internal/domains/room/repository"
	"inn/shared"
	"inn/shared/cache"
	"inn/shared/constant"
	gDto "inn/shared/dto"
	"inn/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetRoom    = "room:get"
	cacheGetAllRoom = "room:gets"
	cacheCountRoom  = "room:count"
)

type Room interface {
	FindAvailable(ctx context.Context, categoryID string, count int) ([]model.Room, error)
	Reserve(ctx context.Context, roomID string) error
	Release(ctx context.Context, roomID string) error
	SetMaintenance(ctx context.Context, roomID string) error
	FindByNumber(ctx context.Context, roomNumber, categoryID string) (model.Room, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetRoomsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.RoomResponse, error)
}

type serviceImpl struct {
	repo  repository.Room
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Room, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Room {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

// FindAvailable returns up to count available rooms of the given category, in
// natural query order.
func (s *serviceImpl) FindAvailable(ctx context.Context, categoryID string, count int) (rooms []model.Room, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".FindAvailable")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldCategoryID,
				Operator: gDto.FilterOperatorEq,
				Value:    categoryID,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldStatus,
				Operator: gDto.FilterOperatorEq,
				Value:    model.StatusAvailable,
				Table:    model.TableName,
			},
		},
	}

	rooms, err = s.repo.GetAll(ctx, gDto.QueryParams{Limit: count}, filter)
	if err != nil {
		log.Error().Err(err).Str("categoryID", categoryID).Msg("failed to find available rooms")

		return rooms, fmt.Errorf("failed to find available rooms: %w", err)
	}

	return rooms, nil
}

// Reserve flips an available room to booked. Losing the race to another
// request is a client-visible allocation failure, not a retry loop.
func (s *serviceImpl) Reserve(ctx context.Context, roomID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Reserve")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	reserved, err := s.repo.UpdateStatusIf(ctx, roomID, model.StatusAvailable, model.StatusBooked, user)
	if err != nil {
		log.Error().Err(err).Str("roomID", roomID).Msg("failed to reserve room")

		return fmt.Errorf("failed to reserve room: %w", err)
	}

	if !reserved {
		return failure.BadRequestFromString("room is no longer available") // nolint:wrapcheck
	}

	s.invalidateRoomCaches(ctx, roomID)

	return nil
}

// Release undoes a reservation that never got its booking record. A room that
// already moved on to another status is left alone.
func (s *serviceImpl) Release(ctx context.Context, roomID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Release")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	_, err = s.repo.UpdateStatusIf(ctx, roomID, model.StatusBooked, model.StatusAvailable, user)
	if err != nil {
		log.Error().Err(err).Str("roomID", roomID).Msg("failed to release room")

		return fmt.Errorf("failed to release room: %w", err)
	}

	s.invalidateRoomCaches(ctx, roomID)

	return nil
}

func (s *serviceImpl) SetMaintenance(ctx context.Context, roomID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SetMaintenance")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	updatedFields := map[string]any{model.FieldStatus: model.StatusMaintenance}
	updatedFields[constant.FieldModifiedBy] = user

	err = s.repo.Update(ctx, updatedFields, shared.FilterByID(roomID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("roomID", roomID).Msg("failed to set room to maintenance")

		return fmt.Errorf("failed to set room to maintenance: %w", err)
	}

	s.invalidateRoomCaches(ctx, roomID)

	return nil
}

// FindByNumber resolves a room through three fallbacks: exact number within
// the category, exact number across categories, then the normalized numeric
// value. First match wins; an empty room means no tier matched.
func (s *serviceImpl) FindByNumber(ctx context.Context, roomNumber, categoryID string) (room model.Room, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".FindByNumber")
	defer scope.End()
	defer scope.TraceIfError(err)

	if categoryID != constant.Empty {
		room, err = s.repo.Get(ctx, s.numberFilter(roomNumber, categoryID))
		if err != nil {
			return room, fmt.Errorf("failed to find room by number: %w", err)
		}

		if room.ID != constant.Empty {
			return room, nil
		}
	}

	room, err = s.repo.Get(ctx, s.numberFilter(roomNumber, constant.Empty))
	if err != nil {
		return room, fmt.Errorf("failed to find room by number: %w", err)
	}

	if room.ID != constant.Empty {
		return room, nil
	}

	numeric, convErr := strconv.Atoi(roomNumber)
	if convErr != nil {
		return model.Room{}, nil
	}

	room, err = s.repo.Get(ctx, s.numberFilter(strconv.Itoa(numeric), constant.Empty))
	if err != nil {
		return room, fmt.Errorf("failed to find room by number: %w", err)
	}

	return room, nil
}

func (s *serviceImpl) numberFilter(roomNumber, categoryID string) gDto.FilterGroup {
	filters := []any{
		gDto.Filter{
			Field:    model.FieldRoomNumber,
			Operator: gDto.FilterOperatorEq,
			Value:    roomNumber,
			Table:    model.TableName,
		},
	}

	if categoryID != constant.Empty {
		filters = append(filters, gDto.Filter{
			Field:    model.FieldCategoryID,
			Operator: gDto.FilterOperatorEq,
			Value:    categoryID,
			Table:    model.TableName,
		})
	}

	return gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd, Filters: filters}
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetRoomsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllRoom, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for rooms")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count rooms")

		return res, fmt.Errorf("failed to count rooms: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get rooms")

		return res, fmt.Errorf("failed to get rooms: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save rooms to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountRoom, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for room count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count rooms")

		return res, fmt.Errorf("failed to count rooms: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save room count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetRoom, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for room")

		return res, nil
	}

	room, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return res, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty {
		return res, failure.NotFound("room not found") // nolint:wrapcheck
	}

	res.FromModel(room)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save room to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) invalidateRoomCaches(ctx context.Context, roomID string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetRoom, roomID)); err != nil {
			log.Error().Err(err).Msg("failed to delete room from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllRoom)
		shared.InvalidateCaches(c, s.cache, cacheCountRoom)
	}()
}

package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Housekeeping=MockHousekeepingService

import (
	"context"
	"errors"
	"fmt"

	"inn/config"
	"inn/infras/kafka"
	"inn/infras/otel"
	"inn/internal/domains/housekeeping/model"
	"inn/internal/domains/housekeeping/repository"
	"inn/shared/constant"
	gDto "inn/shared/dto"
	gModel "inn/shared/model"
	"inn/shared/timezone"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const eventTaskCreated = "housekeeping.task.created"

type taskEvent struct {
	Event      string `json:"event"`
	TaskID     string `json:"task_id"`
	RoomID     string `json:"room_id"`
	OccurredAt string `json:"occurred_at"`
}

type Housekeeping interface {
	EnsureCheckoutTask(ctx context.Context, roomID string) error
}

type serviceImpl struct {
	repo  repository.Housekeeping
	cfg   *config.Config
	otel  otel.Otel
	kafka kafka.Client
}

func New(repo repository.Housekeeping, cfg *config.Config, otel otel.Otel, kafka kafka.Client) Housekeeping {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		otel:  otel,
		kafka: kafka,
	}
}

// EnsureCheckoutTask creates the post-checkout cleaning task for a room if no
// open task exists yet. A partial unique index backs the check, so a
// concurrent duplicate insert surfaces as a unique violation and is treated
// as already-exists.
func (s *serviceImpl) EnsureCheckoutTask(ctx context.Context, roomID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".EnsureCheckoutTask")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	exist, err := s.repo.Exist(ctx, openTaskFilter(roomID))
	if err != nil {
		log.Error().Err(err).Str("roomID", roomID).Msg("failed to check for open housekeeping task")

		return fmt.Errorf("failed to check for open housekeeping task: %w", err)
	}

	if exist {
		log.Info().Str("roomID", roomID).Msg("open housekeeping task already exists")

		return nil
	}

	task := model.Task{
		ID:           uuid.NewString(),
		RoomID:       roomID,
		CleaningType: model.CleaningTypeCheckout,
		Notes:        model.CheckoutNotes,
		Priority:     model.PriorityHigh,
		Status:       model.StatusPending,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}

	if err = s.repo.Insert(ctx, task); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeUniqueViolation {
			log.Info().Str("roomID", roomID).Msg("lost race creating housekeeping task, open task already exists")

			return nil
		}

		log.Error().Err(err).Str("roomID", roomID).Msg("failed to create housekeeping task")

		return fmt.Errorf("failed to create housekeeping task: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		event := taskEvent{
			Event:      eventTaskCreated,
			TaskID:     task.ID,
			RoomID:     roomID,
			OccurredAt: timezone.Format(timezone.Now(), constant.DateFormat),
		}

		if err := s.kafka.SendMessages(c, s.cfg.Kafka.Topics.HousekeepingTask, kafka.Message{Key: task.ID, Value: event}); err != nil {
			log.Error().Err(err).Str("taskID", task.ID).Msg("failed to publish housekeeping task event")
		}
	}()

	return nil
}

func openTaskFilter(roomID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldRoomID,
				Operator: gDto.FilterOperatorEq,
				Value:    roomID,
				Table:    model.TableName,
			},
			gDto.Filter{
				ArgName:  "open_status",
				Field:    model.FieldStatus,
				Operator: gDto.FilterOperatorIn,
				Value:    []string{model.StatusPending, model.StatusInProgress},
				Table:    model.TableName,
			},
		},
	}
}

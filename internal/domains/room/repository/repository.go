package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"inn/infras/otel"
	"inn/infras/postgres"
	"inn/internal/domains/room/model"
	"inn/shared/constant"
	gDto "inn/shared/dto"
	"inn/shared/logger"
	gRepo "inn/shared/repository"
	"inn/shared/timezone"
)

type Room interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Room, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Room, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	UpdateStatusIf(ctx context.Context, id, fromStatus, toStatus, user string) (bool, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Room]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Room {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Room](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// UpdateStatusIf flips the room status only when the current status still
// matches fromStatus. The returned bool reports whether a row was changed,
// which makes the flip safe against concurrent allocations.
func (repo *repositoryImpl) UpdateStatusIf(ctx context.Context, id, fromStatus, toStatus, user string) (bool, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room.UpdateStatusIf")
	defer scope.End()

	query := fmt.Sprintf(
		"UPDATE %s SET %s = :to_status, modified_at = :modified_at, modified_by = :modified_by WHERE %s = :id AND %s = :from_status",
		model.TableName, model.FieldStatus, model.FieldID, model.FieldStatus,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	args := map[string]any{
		"id":          id,
		"from_status": fromStatus,
		"to_status":   toStatus,
		"modified_at": timezone.Now(),
		"modified_by": user,
	}

	result, err := repo.db.Write.NamedExecContext(ctx, query, args)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to update room status: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}

	return affected > 0, nil
}

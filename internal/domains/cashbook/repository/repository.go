package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"inn/infras/otel"
	"inn/infras/postgres"
	"inn/internal/domains/cashbook/model"
	"inn/shared/constant"
	gDto "inn/shared/dto"
	"inn/shared/logger"
	gRepo "inn/shared/repository"
)

type Cashbook interface {
	Insert(ctx context.Context, model model.Transaction) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Transaction, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Transaction, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	SumAmount(ctx context.Context, filter gDto.FilterGroup) (float64, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Transaction]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Cashbook {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Transaction](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// SumAmount totals the amount column over the filtered rows. An empty result
// set sums to zero, not an error.
func (repo *repositoryImpl) SumAmount(ctx context.Context, filter gDto.FilterGroup) (float64, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".SumAmount")
	defer scope.End()

	where, args := repo.BuildWhereClause(ctx, filter)

	query := fmt.Sprintf("SELECT COALESCE(SUM(%s.%s), 0) FROM %s %s", model.TableName, model.FieldAmount, model.TableName, where)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var sum float64

	prepare, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to prepare statement (%s): %w", model.EntityName, err)
	}
	defer prepare.Close()

	err = prepare.GetContext(ctx, &sum, args)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to sum transactions (%s): %w", model.EntityName, err)
	}

	return sum, nil
}

package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"inn/infras/otel"
	"inn/infras/postgres"
	"inn/internal/domains/housekeeping/model"
	gDto "inn/shared/dto"
	gRepo "inn/shared/repository"
)

type Housekeeping interface {
	Insert(ctx context.Context, model model.Task) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Task, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Task]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Housekeeping {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Task](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

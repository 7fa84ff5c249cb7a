package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"rental/infras/mongodb"
	"rental/infras/otel"
	"rental/internal/domains/booking/model"
	gRepo "rental/shared/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Booking interface {
	Insert(ctx context.Context, model model.Booking) (primitive.ObjectID, error)
	GetAll(ctx context.Context) ([]model.Booking, error)
	Count(ctx context.Context) (int64, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
}

func New(db *mongodb.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.CollectionName, db, otel),
	}
}

func (repo *repositoryImpl) GetAll(ctx context.Context) ([]model.Booking, error) {
	return repo.Repository.GetAll(ctx, bson.M{})
}

func (repo *repositoryImpl) Count(ctx context.Context) (int64, error) {
	return repo.Repository.Count(ctx, bson.M{})
}

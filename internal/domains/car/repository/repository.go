package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"rental/infras/mongodb"
	"rental/infras/otel"
	"rental/internal/domains/car/model"
	gRepo "rental/shared/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Car interface {
	Insert(ctx context.Context, model model.Car) (primitive.ObjectID, error)
	InsertBulk(ctx context.Context, models []model.Car) (int, error)
	Get(ctx context.Context, id primitive.ObjectID) (model.Car, bool, error)
	GetAll(ctx context.Context) ([]model.Car, error)
	ExistByID(ctx context.Context, id primitive.ObjectID) (bool, error)
	Count(ctx context.Context) (int64, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Car]
}

func New(db *mongodb.Connection, otel otel.Otel) Car {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Car](model.CollectionName, db, otel),
	}
}

func (repo *repositoryImpl) Get(ctx context.Context, id primitive.ObjectID) (model.Car, bool, error) {
	return repo.Repository.Get(ctx, bson.M{model.FieldID: id})
}

func (repo *repositoryImpl) GetAll(ctx context.Context) ([]model.Car, error) {
	return repo.Repository.GetAll(ctx, bson.M{})
}

func (repo *repositoryImpl) ExistByID(ctx context.Context, id primitive.ObjectID) (bool, error) {
	return repo.Repository.Exist(ctx, bson.M{model.FieldID: id})
}

func (repo *repositoryImpl) Count(ctx context.Context) (int64, error) {
	return repo.Repository.Count(ctx, bson.M{})
}

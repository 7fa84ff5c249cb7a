package repository

import (
	"context"
	"errors"
	"fmt"
	"rental/infras/mongodb"
	"rental/infras/otel"
	"rental/shared/constant"
	"rental/shared/logger"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Repository is a generic accessor for one Mongo collection holding documents
// of type T. Typed per-entity repositories embed it behind their own
// interfaces so a collection name can never drift per call site.
type Repository[T any] struct {
	collection *mongo.Collection
	entitas    string
	otel       otel.Otel
}

func NewRepository[T any](entitasName string, db *mongodb.Connection, otl otel.Otel) Repository[T] {
	return Repository[T]{
		collection: db.Database.Collection(entitasName),
		entitas:    entitasName,
		otel:       otl,
	}
}

// Insert stores one document and returns the store-assigned identifier.
func (repo *Repository[T]) Insert(ctx context.Context, model T) (primitive.ObjectID, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Insert", constant.OtelRepositoryScopeName, repo.entitas))
	defer scope.End()

	scope.SetAttribute(constant.OtelCollectionAttributeKey, repo.entitas)

	result, err := repo.collection.InsertOne(ctx, model)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return primitive.NilObjectID, fmt.Errorf("failed to insert data (%s): %w", repo.entitas, err)
	}

	id, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		err = fmt.Errorf("unexpected inserted id type %T (%s)", result.InsertedID, repo.entitas)
		scope.TraceError(err)

		return primitive.NilObjectID, err
	}

	return id, nil
}

// InsertBulk stores many documents at once and returns how many were inserted.
func (repo *Repository[T]) InsertBulk(ctx context.Context, models []T) (int, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.InsertBulk", constant.OtelRepositoryScopeName, repo.entitas))
	defer scope.End()

	scope.SetAttribute(constant.OtelCollectionAttributeKey, repo.entitas)

	docs := make([]any, len(models))
	for i, model := range models {
		docs[i] = model
	}

	result, err := repo.collection.InsertMany(ctx, docs)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to bulk insert data (%s): %w", repo.entitas, err)
	}

	return len(result.InsertedIDs), nil
}

// Get fetches a single document matching the filter. The second return value
// reports whether a document was found at all.
func (repo *Repository[T]) Get(ctx context.Context, filter bson.M) (T, bool, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Get", constant.OtelRepositoryScopeName, repo.entitas))
	defer scope.End()

	scope.SetAttribute(constant.OtelCollectionAttributeKey, repo.entitas)
	scope.SetAttribute(constant.OtelFilterAttributeKey, fmt.Sprintf("%v", filter))

	var model T

	err := repo.collection.FindOne(ctx, filter).Decode(&model)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model, false, nil
	}

	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return model, false, fmt.Errorf("failed to get data (%s): %w", repo.entitas, err)
	}

	return model, true, nil
}

// GetAll fetches every document matching the filter, in store iteration order.
func (repo *Repository[T]) GetAll(ctx context.Context, filter bson.M) ([]T, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.GetAll", constant.OtelRepositoryScopeName, repo.entitas))
	defer scope.End()

	scope.SetAttribute(constant.OtelCollectionAttributeKey, repo.entitas)
	scope.SetAttribute(constant.OtelFilterAttributeKey, fmt.Sprintf("%v", filter))

	cursor, err := repo.collection.Find(ctx, filter)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to get all data (%s): %w", repo.entitas, err)
	}

	models := []T{}

	if err := cursor.All(ctx, &models); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to decode data (%s): %w", repo.entitas, err)
	}

	return models, nil
}

// Exist reports whether at least one document matches the filter.
func (repo *Repository[T]) Exist(ctx context.Context, filter bson.M) (bool, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Exist", constant.OtelRepositoryScopeName, repo.entitas))
	defer scope.End()

	scope.SetAttribute(constant.OtelCollectionAttributeKey, repo.entitas)
	scope.SetAttribute(constant.OtelFilterAttributeKey, fmt.Sprintf("%v", filter))

	count, err := repo.collection.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to check exist data (%s): %w", repo.entitas, err)
	}

	return count > 0, nil
}

// Count returns how many documents match the filter.
func (repo *Repository[T]) Count(ctx context.Context, filter bson.M) (int64, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Count", constant.OtelRepositoryScopeName, repo.entitas))
	defer scope.End()

	scope.SetAttribute(constant.OtelCollectionAttributeKey, repo.entitas)

	count, err := repo.collection.CountDocuments(ctx, filter)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to count data (%s): %w", repo.entitas, err)
	}

	return count, nil
}

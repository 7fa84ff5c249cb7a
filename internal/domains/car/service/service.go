package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Car=MockCarService

import (
	"context"
	"fmt"
	"rental/config"
	"rental/infras/otel"
	"rental/internal/domains/car/model"
	"rental/internal/domains/car/model/dto"
	"rental/internal/domains/car/repository"
	"rental/shared"
	"rental/shared/cache"
	"rental/shared/constant"
	gModel "rental/shared/model"
	"rental/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetAllCar = "car:gets"
)

type Car interface {
	Create(ctx context.Context, req dto.CreateCarRequest) (dto.CreateCarResponse, error)
	GetAll(ctx context.Context) ([]dto.CarResponse, error)
	Seed(ctx context.Context) (dto.SeedCarsResponse, error)
}

type serviceImpl struct {
	repo  repository.Car
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Car, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Car {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateCarRequest) (res dto.CreateCarResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	id, err := s.repo.Insert(ctx, req.ToModel())
	if err != nil {
		log.Error().Err(err).Msg("failed to create car")

		return res, fmt.Errorf("failed to create car: %w", err)
	}

	// Invalidate before returning so a create followed by a list reads its own write.
	shared.InvalidateCaches(ctx, s.cache, cacheGetAllCar)

	scope.AddEvent("Car created with id " + id.Hex())

	return dto.CreateCarResponse{ID: id.Hex()}, nil
}

func (s *serviceImpl) GetAll(ctx context.Context) (res []dto.CarResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Get(ctx, cacheGetAllCar, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheGetAllCar).Msg("cache hit for cars")

		return res, nil
	}

	models, err := s.repo.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get cars")

		return res, fmt.Errorf("failed to get cars: %w", err)
	}

	res = dto.FromModels(models)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheGetAllCar, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save cars to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Seed(ctx context.Context) (res dto.SeedCarsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Seed")
	defer scope.End()
	defer scope.TraceIfError(err)

	count, err := s.repo.Count(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to count cars")

		return res, fmt.Errorf("failed to count cars: %w", err)
	}

	if count > 0 {
		return dto.SeedCarsResponse{Inserted: 0, Message: "Cars already seeded"}, nil
	}

	inserted, err := s.repo.InsertBulk(ctx, sampleCars())
	if err != nil {
		log.Error().Err(err).Msg("failed to seed cars")

		return res, fmt.Errorf("failed to seed cars: %w", err)
	}

	shared.InvalidateCaches(ctx, s.cache, cacheGetAllCar)

	scope.AddEvent("Car collection seeded")

	return dto.SeedCarsResponse{Inserted: inserted}, nil
}

func sampleCars() []model.Car {
	now := timezone.Now()
	meta := gModel.Metadata{CreatedAt: now, UpdatedAt: now}

	return []model.Car{
		{
			Make:         "Tesla",
			Model:        "Model 3",
			Year:         2023,
			Image:        "https://images.unsplash.com/photo-1549924231-f129b911e442?q=80&w=1200&auto=format&fit=crop",
			DailyRate:    129,
			Transmission: "Automatic",
			Fuel:         "Electric",
			Seats:        5,
			Available:    true,
			Metadata:     meta,
		},
		{
			Make:         "BMW",
			Model:        "M4",
			Year:         2022,
			Image:        "https://images.unsplash.com/photo-1617814074183-9110b50a2b50?q=80&w=1200&auto=format&fit=crop",
			DailyRate:    159,
			Transmission: "Automatic",
			Fuel:         "Gas",
			Seats:        4,
			Available:    true,
			Metadata:     meta,
		},
		{
			Make:         "Toyota",
			Model:        "RAV4",
			Year:         2021,
			Image:        "https://images.unsplash.com/photo-1590362891991-f776e747a588?q=80&w=1200&auto=format&fit=crop",
			DailyRate:    79,
			Transmission: "Automatic",
			Fuel:         "Hybrid",
			Seats:        5,
			Available:    true,
			Metadata:     meta,
		},
	}
}

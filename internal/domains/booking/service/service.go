package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Booking=MockBookingService

import (
	"context"
	"fmt"
	"rental/config"
	"rental/infras/kafka"
	"rental/infras/otel"
	"rental/internal/domains/booking/model/dto"
	"rental/internal/domains/booking/repository"
	carRepository "rental/internal/domains/car/repository"
	"rental/internal/notify"
	"rental/shared"
	"rental/shared/cache"
	"rental/shared/constant"
	"rental/shared/failure"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	cacheGetAllBooking = "booking:gets"

	confirmationMessage = "Booking confirmed"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.CreateBookingResponse, error)
	GetAll(ctx context.Context) ([]dto.BookingResponse, error)
}

type serviceImpl struct {
	repo    repository.Booking
	carRepo carRepository.Car
	cfg     *config.Config
	cache   cache.RedisCache
	kafka   kafka.Client
	mailer  notify.Mailer
	otel    otel.Otel
}

func New(
	repo repository.Booking,
	carRepo carRepository.Car,
	cfg *config.Config,
	cache cache.RedisCache,
	kafka kafka.Client,
	mailer notify.Mailer,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:    repo,
		carRepo: carRepo,
		cfg:     cfg,
		cache:   cache,
		kafka:   kafka,
		mailer:  mailer,
		otel:    otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.CreateBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	carID, err := primitive.ObjectIDFromHex(req.CarID)
	if err != nil {
		log.Warn().Str("carID", req.CarID).Msg("malformed car id on booking request")

		return res, failure.BadRequestFromString("invalid car id")
	}

	exist, err := s.carRepo.ExistByID(ctx, carID)
	if err != nil {
		log.Error().Err(err).Str("carID", req.CarID).Msg("failed to check car existence")

		return res, fmt.Errorf("failed to check car existence: %w", err)
	}

	if !exist {
		return res, failure.NotFound("car not found")
	}

	booking, err := req.ToModel()
	if err != nil {
		return res, failure.BadRequestFromString("invalid booking dates")
	}

	id, err := s.repo.Insert(ctx, booking)
	if err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	// Invalidate before returning so a create followed by a list reads its own write.
	shared.InvalidateCaches(ctx, s.cache, cacheGetAllBooking)

	s.publishCreated(ctx, dto.BookingCreatedEvent{
		ID:        id.Hex(),
		CarID:     req.CarID,
		Name:      req.Name,
		Email:     req.Email,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	})

	scope.AddEvent("Booking created with id " + id.Hex())

	return dto.CreateBookingResponse{ID: id.Hex(), Message: confirmationMessage}, nil
}

func (s *serviceImpl) GetAll(ctx context.Context) (res []dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Get(ctx, cacheGetAllBooking, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheGetAllBooking).Msg("cache hit for bookings")

		return res, nil
	}

	models, err := s.repo.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res = dto.FromModels(models)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheGetAllBooking, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

// publishCreated fans out the side effects of a new booking. Failures are
// logged and never surfaced to the caller, the booking is already stored.
func (s *serviceImpl) publishCreated(ctx context.Context, event dto.BookingCreatedEvent) {
	c := context.WithoutCancel(ctx)

	if s.cfg.Kafka.Enable {
		go func() {
			message := kafka.Message{Key: event.ID, Value: event}

			if err := s.kafka.SendMessages(c, s.cfg.Kafka.BookingsTopic, message); err != nil {
				log.Error().Err(err).Str("bookingID", event.ID).Msg("failed to publish booking created event")
			}
		}()
	}

	if s.cfg.Mail.Enable {
		go func() {
			body := fmt.Sprintf(
				"Hi %s, your booking %s from %s to %s is confirmed.",
				event.Name, event.ID, event.StartDate, event.EndDate,
			)

			if err := s.mailer.SendBookingConfirmation(c, event.Name, event.Email, confirmationMessage, body); err != nil {
				log.Error().Err(err).Str("bookingID", event.ID).Msg("failed to send booking confirmation email")
			}
		}()
	}
}

package car

import (
	"net/http"
	"rental/infras/otel"
	"rental/internal/domains/car/model/dto"
	"rental/internal/domains/car/service"
	"rental/shared/constant"
	"rental/shared/validator"
	"rental/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Car
	otel    otel.Otel
}

func New(service service.Car, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/cars", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateCar)
		routerGroup.Get("/", handler.GetCars)
	})
}

// CreateCar handles the creation of a new car.
func (handler *Handler) CreateCar(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateCar")
	defer scope.End()

	req := dto.CreateCarRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create car")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Car created successfully")

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetCars retrieves all cars.
func (handler *Handler) GetCars(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCars")
	defer scope.End()

	cars, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get cars")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Cars retrieved successfully")

	response.WithJSON(w, http.StatusOK, cars)
}

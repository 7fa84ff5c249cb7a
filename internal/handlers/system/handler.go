package system

import (
	"net/http"
	"rental/infras/mongodb"
	"rental/infras/otel"
	carService "rental/internal/domains/car/service"
	"rental/shared/constant"
	"rental/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

const listCollectionsLimit = 10

type Handler struct {
	db     *mongodb.Connection
	carSvc carService.Car
	otel   otel.Otel
}

func New(db *mongodb.Connection, carSvc carService.Car, otel otel.Otel) Handler {
	return Handler{
		db:     db,
		carSvc: carSvc,
		otel:   otel,
	}
}

// Router registers the operational endpoints. These live at the root of the
// mux, outside the versioned API group.
func (handler *Handler) Router(router chi.Router) {
	router.Get("/", handler.Root)
	router.Get("/test", handler.Test)
	router.Post("/seed", handler.Seed)
}

// Root reports that the service is up.
func (handler *Handler) Root(w http.ResponseWriter, r *http.Request) {
	_, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Root")
	defer scope.End()

	response.WithMessage(w, http.StatusOK, "Car Rental API is running")
}

// Test checks database connectivity and reports the visible collections.
func (handler *Handler) Test(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Test")
	defer scope.End()

	if err := handler.db.Ping(ctx); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("database ping failed")

		response.WithUnhealthy(w)

		return
	}

	collections, err := handler.db.ListCollections(ctx, listCollectionsLimit)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list collections")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, map[string]any{
		"status":      "ok",
		"database":    handler.db.Database.Name(),
		"collections": collections,
	})
}

// Seed populates the car collection with sample data when it is empty.
func (handler *Handler) Seed(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Seed")
	defer scope.End()

	res, err := handler.carSvc.Seed(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to seed cars")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Seed completed")

	response.WithJSON(w, http.StatusOK, res)
}

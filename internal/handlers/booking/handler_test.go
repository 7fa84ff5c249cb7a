package booking_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"

	"rental/infras/otel/mocks"
	bookingMocks "rental/internal/domains/booking/mocks"
	"rental/internal/domains/booking/model/dto"
	"rental/internal/handlers/booking"
	"rental/shared/failure"
)

func newRouter(t *testing.T) (*chi.Mux, *bookingMocks.MockBookingService) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockService := bookingMocks.NewMockBookingService(ctrl)

	handler := booking.New(mockService, mocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return router, mockService
}

func TestHandler_CreateBooking(t *testing.T) {
	bookingID := primitive.NewObjectID().Hex()

	tests := []struct {
		name      string
		body      string
		setupMock func(svc *bookingMocks.MockBookingService)
		wantCode  int
	}{
		{
			name: "successful creation",
			body: `{"car_id":"` + primitive.NewObjectID().Hex() + `","name":"Jane Renter","email":"jane@example.com","start_date":"2026-09-01","end_date":"2026-09-05"}`,
			setupMock: func(svc *bookingMocks.MockBookingService) {
				svc.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(dto.CreateBookingResponse{ID: bookingID, Message: "Booking confirmed"}, nil)
			},
			wantCode: http.StatusCreated,
		},
		{
			name:      "missing required fields",
			body:      `{"car_id":"abc"}`,
			setupMock: func(svc *bookingMocks.MockBookingService) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:      "malformed JSON",
			body:      `{"car_id":`,
			setupMock: func(svc *bookingMocks.MockBookingService) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "malformed car id",
			body: `{"car_id":"not-an-id","name":"Jane Renter","email":"jane@example.com","start_date":"2026-09-01","end_date":"2026-09-05"}`,
			setupMock: func(svc *bookingMocks.MockBookingService) {
				svc.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(dto.CreateBookingResponse{}, failure.BadRequestFromString("invalid car id"))
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "car not found",
			body: `{"car_id":"` + primitive.NewObjectID().Hex() + `","name":"Jane Renter","email":"jane@example.com","start_date":"2026-09-01","end_date":"2026-09-05"}`,
			setupMock: func(svc *bookingMocks.MockBookingService) {
				svc.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(dto.CreateBookingResponse{}, failure.NotFound("car not found"))
			},
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, mockService := newRouter(t)
			tt.setupMock(mockService)

			req := httptest.NewRequest(http.MethodPost, "/bookings/", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestHandler_GetBookings(t *testing.T) {
	router, mockService := newRouter(t)

	mockService.EXPECT().
		GetAll(gomock.Any()).
		Return([]dto.BookingResponse{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/bookings/", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")
}

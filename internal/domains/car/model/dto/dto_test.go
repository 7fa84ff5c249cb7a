package dto_test

import (
	"testing"

	"rental/internal/domains/car/model"
	"rental/internal/domains/car/model/dto"
	gModel "rental/shared/model"
	"rental/shared/timezone"
	"rental/shared/validator"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestCreateCarRequest_ToModel(t *testing.T) {
	seats := 5
	dailyRate := 129.0
	req := dto.CreateCarRequest{
		Make:         "Tesla",
		Model:        "Model 3",
		Year:         2023,
		Image:        "https://example.com/model3.jpg",
		DailyRate:    &dailyRate,
		Transmission: "Automatic",
		Fuel:         "Electric",
		Seats:        &seats,
	}

	carModel := req.ToModel()

	assert.Equal(t, req.Make, carModel.Make)
	assert.Equal(t, req.Model, carModel.Model)
	assert.Equal(t, req.Year, carModel.Year)
	assert.Equal(t, req.Image, carModel.Image)
	assert.Equal(t, dailyRate, carModel.DailyRate)
	assert.Equal(t, req.Transmission, carModel.Transmission)
	assert.Equal(t, req.Fuel, carModel.Fuel)
	assert.Equal(t, seats, carModel.Seats)
	assert.True(t, carModel.Available, "expected availability to default to true")
	assert.False(t, carModel.CreatedAt.IsZero(), "expected CreatedAt to be set")
	assert.False(t, carModel.UpdatedAt.IsZero(), "expected UpdatedAt to be set")
}

func TestCreateCarRequest_ToModel_ExplicitAvailability(t *testing.T) {
	available := false
	dailyRate := 159.0
	req := dto.CreateCarRequest{
		Make:      "BMW",
		Model:     "M4",
		Year:      2022,
		DailyRate: &dailyRate,
		Available: &available,
	}

	carModel := req.ToModel()

	assert.False(t, carModel.Available)
}

func TestCreateCarRequest_Validation(t *testing.T) {
	validRequest := func() dto.CreateCarRequest {
		dailyRate := 129.0

		return dto.CreateCarRequest{
			Make:      "Tesla",
			Model:     "Model 3",
			Year:      2023,
			DailyRate: &dailyRate,
		}
	}

	tests := []struct {
		name        string
		mutate      func(req *dto.CreateCarRequest)
		expectError bool
	}{
		{
			name:        "valid request",
			mutate:      func(req *dto.CreateCarRequest) {},
			expectError: false,
		},
		{
			name: "year below range",
			mutate: func(req *dto.CreateCarRequest) {
				req.Year = 1989
			},
			expectError: true,
		},
		{
			name: "year above range",
			mutate: func(req *dto.CreateCarRequest) {
				req.Year = 2101
			},
			expectError: true,
		},
		{
			name: "seats below range",
			mutate: func(req *dto.CreateCarRequest) {
				seats := 0
				req.Seats = &seats
			},
			expectError: true,
		},
		{
			name: "seats above range",
			mutate: func(req *dto.CreateCarRequest) {
				seats := 10
				req.Seats = &seats
			},
			expectError: true,
		},
		{
			name: "negative daily rate",
			mutate: func(req *dto.CreateCarRequest) {
				dailyRate := -1.0
				req.DailyRate = &dailyRate
			},
			expectError: true,
		},
		{
			name: "missing daily rate",
			mutate: func(req *dto.CreateCarRequest) {
				req.DailyRate = nil
			},
			expectError: true,
		},
		{
			name: "zero daily rate is accepted",
			mutate: func(req *dto.CreateCarRequest) {
				dailyRate := 0.0
				req.DailyRate = &dailyRate
			},
			expectError: false,
		},
		{
			name: "missing make",
			mutate: func(req *dto.CreateCarRequest) {
				req.Make = ""
			},
			expectError: true,
		},
		{
			name: "invalid image url",
			mutate: func(req *dto.CreateCarRequest) {
				req.Image = "not-a-url"
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)

			err := validator.ValidateStruct(&req)

			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCarResponse_FromModel(t *testing.T) {
	now := timezone.Now()
	carModel := model.Car{
		ID:        primitive.NewObjectID(),
		Make:      "Toyota",
		Model:     "RAV4",
		Year:      2021,
		DailyRate: 79,
		Seats:     5,
		Available: true,
		Metadata: gModel.Metadata{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	var response dto.CarResponse
	response.FromModel(carModel)

	assert.Equal(t, carModel.ID.Hex(), response.ID)
	assert.Equal(t, carModel.Make, response.Make)
	assert.Equal(t, carModel.Model, response.Model)
	assert.Equal(t, carModel.Year, response.Year)
	assert.Equal(t, carModel.DailyRate, response.DailyRate)
	assert.Equal(t, carModel.Seats, response.Seats)
	assert.Equal(t, carModel.Available, response.Available)
}

func TestFromModels(t *testing.T) {
	now := timezone.Now()
	cars := []model.Car{
		{
			ID:    primitive.NewObjectID(),
			Make:  "Tesla",
			Model: "Model 3",
			Metadata: gModel.Metadata{
				CreatedAt: now,
				UpdatedAt: now,
			},
		},
		{
			ID:    primitive.NewObjectID(),
			Make:  "BMW",
			Model: "M4",
			Metadata: gModel.Metadata{
				CreatedAt: now,
				UpdatedAt: now,
			},
		},
	}

	responses := dto.FromModels(cars)

	assert.Len(t, responses, len(cars))

	for i, response := range responses {
		assert.Equal(t, cars[i].ID.Hex(), response.ID)
		assert.Equal(t, cars[i].Make, response.Make)
	}
}

func TestFromModels_EmptyList(t *testing.T) {
	responses := dto.FromModels(nil)

	assert.NotNil(t, responses)
	assert.Len(t, responses, 0)
}

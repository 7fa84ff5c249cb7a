package dto

import (
	"rental/internal/domains/car/model"
	gDto "rental/shared/dto"
	gModel "rental/shared/model"
	"rental/shared/timezone"
)

type CreateCarRequest struct {
	Make         string   `json:"make"         validate:"required,max=100"`
	Model        string   `json:"model"        validate:"required,max=100"`
	Year         int      `json:"year"         validate:"required,gte=1990,lte=2100"`
	Image        string   `json:"image"        validate:"omitempty,url,max=500"`
	DailyRate    *float64 `json:"daily_rate"   validate:"required,gte=0"`
	Transmission string   `json:"transmission" validate:"omitempty,max=50"`
	Fuel         string   `json:"fuel"         validate:"omitempty,max=50"`
	Seats        *int     `json:"seats"        validate:"omitempty,gte=1,lte=9"`
	Available    *bool    `json:"available"    validate:"omitempty"`
}

func (c *CreateCarRequest) ToModel() model.Car {
	available := true
	if c.Available != nil {
		available = *c.Available
	}

	seats := 0
	if c.Seats != nil {
		seats = *c.Seats
	}

	dailyRate := 0.0
	if c.DailyRate != nil {
		dailyRate = *c.DailyRate
	}

	return model.Car{
		Make:         c.Make,
		Model:        c.Model,
		Year:         c.Year,
		Image:        c.Image,
		DailyRate:    dailyRate,
		Transmission: c.Transmission,
		Fuel:         c.Fuel,
		Seats:        seats,
		Available:    available,
		Metadata: gModel.Metadata{
			CreatedAt: timezone.Now(),
			UpdatedAt: timezone.Now(),
		},
	}
}

type CreateCarResponse struct {
	ID string `json:"id"`
}

type CarResponse struct {
	ID           string  `json:"id"`
	Make         string  `json:"make"`
	Model        string  `json:"model"`
	Year         int     `json:"year"`
	Image        string  `json:"image,omitempty"`
	DailyRate    float64 `json:"daily_rate"`
	Transmission string  `json:"transmission,omitempty"`
	Fuel         string  `json:"fuel,omitempty"`
	Seats        int     `json:"seats,omitempty"`
	Available    bool    `json:"available"`
	gDto.Metadata
}

func (r *CarResponse) FromModel(model model.Car) {
	r.ID = model.ID.Hex()
	r.Make = model.Make
	r.Model = model.Model
	r.Year = model.Year
	r.Image = model.Image
	r.DailyRate = model.DailyRate
	r.Transmission = model.Transmission
	r.Fuel = model.Fuel
	r.Seats = model.Seats
	r.Available = model.Available
	r.Metadata.FromModel(model.Metadata)
}

func FromModels(models []model.Car) []CarResponse {
	cars := make([]CarResponse, len(models))
	for i, mod := range models {
		cars[i].FromModel(mod)
	}

	return cars
}

type SeedCarsResponse struct {
	Inserted int    `json:"inserted"`
	Message  string `json:"message,omitempty"`
}

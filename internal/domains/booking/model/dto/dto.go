package dto

import (
	"rental/internal/domains/booking/model"
	"rental/shared/constant"
	gDto "rental/shared/dto"
	gModel "rental/shared/model"
	"rental/shared/timezone"
	"time"
)

type CreateBookingRequest struct {
	CarID          string `json:"car_id"          validate:"required"`
	Name           string `json:"name"            validate:"required,max=100"`
	Email          string `json:"email"           validate:"required,email,max=100"`
	StartDate      string `json:"start_date"      validate:"required,datetime=2006-01-02"`
	EndDate        string `json:"end_date"        validate:"required,datetime=2006-01-02"`
	PickupLocation string `json:"pickup_location" validate:"omitempty,max=100"`
	Notes          string `json:"notes"           validate:"omitempty,max=500"`
}

func (c *CreateBookingRequest) ToModel() (model.Booking, error) {
	startDate, err := time.Parse(constant.DateOnlyFormat, c.StartDate)
	if err != nil {
		return model.Booking{}, err
	}

	endDate, err := time.Parse(constant.DateOnlyFormat, c.EndDate)
	if err != nil {
		return model.Booking{}, err
	}

	pickupLocation := model.DefaultPickupLocation
	if c.PickupLocation != "" {
		pickupLocation = c.PickupLocation
	}

	return model.Booking{
		CarID:          c.CarID,
		Name:           c.Name,
		Email:          c.Email,
		StartDate:      startDate,
		EndDate:        endDate,
		PickupLocation: pickupLocation,
		Notes:          c.Notes,
		Metadata: gModel.Metadata{
			CreatedAt: timezone.Now(),
			UpdatedAt: timezone.Now(),
		},
	}, nil
}

type CreateBookingResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

type BookingResponse struct {
	ID             string `json:"id"`
	CarID          string `json:"car_id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	StartDate      string `json:"start_date"`
	EndDate        string `json:"end_date"`
	PickupLocation string `json:"pickup_location"`
	Notes          string `json:"notes,omitempty"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID.Hex()
	r.CarID = model.CarID
	r.Name = model.Name
	r.Email = model.Email
	r.StartDate = model.StartDate.Format(constant.DateOnlyFormat)
	r.EndDate = model.EndDate.Format(constant.DateOnlyFormat)
	r.PickupLocation = model.PickupLocation
	r.Notes = model.Notes
	r.Metadata.FromModel(model.Metadata)
}

func FromModels(models []model.Booking) []BookingResponse {
	bookings := make([]BookingResponse, len(models))
	for i, mod := range models {
		bookings[i].FromModel(mod)
	}

	return bookings
}

// BookingCreatedEvent is the payload published to the bookings topic after a
// successful insert.
type BookingCreatedEvent struct {
	ID        string `json:"id"`
	CarID     string `json:"car_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

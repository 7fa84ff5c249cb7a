package model

import (
	"rental/shared/model"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	CollectionName = "booking"
	EntityName     = "booking"

	FieldID             = "_id"
	FieldCarID          = "car_id"
	FieldName           = "name"
	FieldEmail          = "email"
	FieldStartDate      = "start_date"
	FieldEndDate        = "end_date"
	FieldPickupLocation = "pickup_location"
	FieldNotes          = "notes"
)

// DefaultPickupLocation is applied when a booking request leaves the pickup
// location unset.
const DefaultPickupLocation = "Downtown"

type Booking struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	CarID          string             `bson:"car_id"`
	Name           string             `bson:"name"`
	Email          string             `bson:"email"`
	StartDate      time.Time          `bson:"start_date"`
	EndDate        time.Time          `bson:"end_date"`
	PickupLocation string             `bson:"pickup_location"`
	Notes          string             `bson:"notes,omitempty"`
	model.Metadata `bson:",inline"`
}

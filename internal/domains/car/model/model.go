package model

import (
	"rental/shared/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	CollectionName = "car"
	EntityName     = "car"

	FieldID           = "_id"
	FieldMake         = "make"
	FieldModel        = "model"
	FieldYear         = "year"
	FieldImage        = "image"
	FieldDailyRate    = "daily_rate"
	FieldTransmission = "transmission"
	FieldFuel         = "fuel"
	FieldSeats        = "seats"
	FieldAvailable    = "available"
)

type Car struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	Make           string             `bson:"make"`
	Model          string             `bson:"model"`
	Year           int                `bson:"year"`
	Image          string             `bson:"image,omitempty"`
	DailyRate      float64            `bson:"daily_rate"`
	Transmission   string             `bson:"transmission,omitempty"`
	Fuel           string             `bson:"fuel,omitempty"`
	Seats          int                `bson:"seats,omitempty"`
	Available      bool               `bson:"available"`
	model.Metadata `bson:",inline"`
}

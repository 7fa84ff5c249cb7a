package model

import "time"

// Metadata carries the store-assigned timestamps set at insert time.
type Metadata struct {
	CreatedAt time.Time `bson:"created_at"`
	UpdatedAt time.Time `bson:"updated_at"`
}

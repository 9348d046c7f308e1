package models

import (
	"time"

	"github.com/google/uuid"
)

// OwnedVehicle is a car registered to a user. At most one of a user's cars
// is primary; it is used when a ride is posted without a vehicle.
type OwnedVehicle struct {
	ID        uuid.UUID `json:"id" db:"id"`
	OwnerID   string    `json:"owner_id" db:"owner_id"`
	Make      string    `json:"make" db:"make"`
	Model     string    `json:"model" db:"model"`
	Year      int       `json:"year" db:"year"`
	Color     string    `json:"color" db:"color"`
	Plate     string    `json:"plate" db:"plate"`
	VIN       string    `json:"vin" db:"vin"`
	IsPrimary bool      `json:"is_primary" db:"is_primary"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Snapshot is the part of the car copied onto a posted ride
func (v *OwnedVehicle) Snapshot() Vehicle {
	return Vehicle{Make: v.Make, Model: v.Model, Color: v.Color, Plate: v.Plate}
}

// AddVehicleRequest is the payload for registering a car
type AddVehicleRequest struct {
	OwnerID   string `json:"-"`
	Make      string `json:"make"`
	Model     string `json:"model"`
	Year      int    `json:"year"`
	Color     string `json:"color"`
	Plate     string `json:"plate"`
	VIN       string `json:"vin"`
	IsPrimary bool   `json:"is_primary"`
}

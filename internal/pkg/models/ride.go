package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// RideState represents the lifecycle state of a ride
type RideState string

const (
	RideStateOpen      RideState = "open"
	RideStateFull      RideState = "full"
	RideStateCancelled RideState = "cancelled"
	RideStateDeleted   RideState = "deleted"
)

// MinCostPerSeatCents is the lowest seat price a ride can be posted with
const MinCostPerSeatCents int64 = 50

// Cancelled means deletion has started: the roster is frozen while the owner
// fee and the refunds settle. Only Deleted may follow it.
var rideTransitions = map[RideState][]RideState{
	RideStateOpen:      {RideStateFull, RideStateCancelled, RideStateDeleted},
	RideStateFull:      {RideStateOpen, RideStateCancelled, RideStateDeleted},
	RideStateCancelled: {RideStateDeleted},
	RideStateDeleted:   {},
}

// CanTransitionTo reports whether the state machine allows s -> next
func (s RideState) CanTransitionTo(next RideState) bool {
	for _, allowed := range rideTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// ActiveRideStates are the states that still accept roster changes
var ActiveRideStates = []RideState{RideStateOpen, RideStateFull}

// Vehicle is the snapshot of the owner's car taken when the ride is posted
type Vehicle struct {
	Make  string `json:"make" db:"vehicle_make"`
	Model string `json:"model" db:"vehicle_model"`
	Color string `json:"color" db:"vehicle_color"`
	Plate string `json:"plate" db:"vehicle_plate"`
}

// Ride represents a posted carpool ride and its passenger roster
type Ride struct {
	ID            uuid.UUID `json:"id" db:"id"`
	OwnerID       string    `json:"owner_id" db:"owner_id"`
	OwnerName     string    `json:"owner_name" db:"owner_name"`
	Origin        string    `json:"origin" db:"origin"`
	Destination   string    `json:"destination" db:"destination"`
	Date          string    `json:"date" db:"ride_date"`
	DepartureTime string    `json:"departure_time" db:"departure_time"`
	DepartureAt   time.Time `json:"departure_at" db:"departure_at"`
	CostPerSeat   int64     `json:"cost_per_seat_cents" db:"cost_per_seat"`
	MaxPassengers int       `json:"max_passengers" db:"max_passengers"`
	Passengers    []string  `json:"passengers" db:"passengers"`
	State         RideState `json:"state" db:"state"`
	Vehicle       Vehicle   `json:"vehicle"`
	Version       int64     `json:"version" db:"version"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
}

// IsActive reports whether the ride still accepts bookings or cancellations
func (r *Ride) IsActive() bool {
	return r.State == RideStateOpen || r.State == RideStateFull
}

// HasPassenger reports whether passengerID holds a seat
func (r *Ride) HasPassenger(passengerID string) bool {
	for _, p := range r.Passengers {
		if p == passengerID {
			return true
		}
	}
	return false
}

// SeatsLeft returns the number of unreserved seats
func (r *Ride) SeatsLeft() int {
	left := r.MaxPassengers - len(r.Passengers)
	if left < 0 {
		return 0
	}
	return left
}

// HasDeparted reports whether the departure instant is at or before now
func (r *Ride) HasDeparted(now time.Time) bool {
	return !r.DepartureAt.After(now)
}

// CostOf is the price of the given number of seats, in cents
func (r *Ride) CostOf(seats int) int64 {
	return r.CostPerSeat * int64(seats)
}

// Clone returns a deep copy so callers can mutate without sharing the roster
func (r *Ride) Clone() *Ride {
	c := *r
	c.Passengers = append(make([]string, 0, len(r.Passengers)), r.Passengers...)
	return &c
}

func (r *Ride) transition(next RideState) error {
	if r.State == next {
		return nil
	}
	if !r.State.CanTransitionTo(next) {
		return fmt.Errorf("%w: cannot move ride from %s to %s", ErrRideUnavailable, r.State, next)
	}
	r.State = next
	return nil
}

// Reserve appends passengerID to the roster and returns the 1-based seat number.
// The ride flips to Full when the last seat is taken.
func (r *Ride) Reserve(passengerID string) (int, error) {
	if !r.IsActive() {
		return 0, fmt.Errorf("%w: ride is %s", ErrRideUnavailable, r.State)
	}
	if r.HasPassenger(passengerID) {
		return 0, ErrAlreadyBooked
	}
	if r.State == RideStateFull || len(r.Passengers) >= r.MaxPassengers {
		return 0, ErrRideFull
	}

	r.Passengers = append(r.Passengers, passengerID)
	if len(r.Passengers) == r.MaxPassengers {
		if err := r.transition(RideStateFull); err != nil {
			return 0, err
		}
	}
	return len(r.Passengers), nil
}

// Release drops passengerID from the roster. It returns false when nothing
// changed: the passenger held no seat or the roster is frozen.
func (r *Ride) Release(passengerID string) bool {
	if !r.IsActive() || !r.HasPassenger(passengerID) {
		return false
	}
	r.dropPassenger(passengerID)
	return true
}

// RemovePassenger is the passenger-initiated counterpart of Release; it
// reports why nothing could be removed.
func (r *Ride) RemovePassenger(passengerID string) error {
	if !r.IsActive() {
		return fmt.Errorf("%w: ride is %s", ErrRideUnavailable, r.State)
	}
	if !r.HasPassenger(passengerID) {
		return fmt.Errorf("%w: %s is not a passenger of this ride", ErrRideUnavailable, passengerID)
	}
	r.dropPassenger(passengerID)
	return nil
}

func (r *Ride) dropPassenger(passengerID string) {
	kept := r.Passengers[:0]
	for _, p := range r.Passengers {
		if p != passengerID {
			kept = append(kept, p)
		}
	}
	r.Passengers = kept
	if r.State == RideStateFull && len(r.Passengers) < r.MaxPassengers {
		r.State = RideStateOpen
	}
}

// Freeze moves an active ride to Cancelled; the roster no longer changes
func (r *Ride) Freeze() error {
	if r.State == RideStateCancelled {
		return nil
	}
	return r.transition(RideStateCancelled)
}

// MarkDeleted moves the ride to its terminal state
func (r *Ride) MarkDeleted() error {
	return r.transition(RideStateDeleted)
}

// CreateRideRequest is the payload for posting a ride
type CreateRideRequest struct {
	OwnerID       string  `json:"-"`
	OwnerName     string  `json:"-"`
	Origin        string  `json:"origin"`
	Destination   string  `json:"destination"`
	Date          string  `json:"date"`
	DepartureTime string  `json:"departure_time"`
	CostPerSeat   float64 `json:"cost_per_seat"`
	MaxPassengers int     `json:"max_passengers"`
	Vehicle       Vehicle `json:"vehicle"`
}

// ReservationToken proves a seat was taken on a ride
type ReservationToken struct {
	RideID      string    `json:"ride_id"`
	PassengerID string    `json:"passenger_id"`
	Seat        int       `json:"seat"`
	State       RideState `json:"state"`
}

// BookingConfirmation is returned once a seat is reserved and paid for
type BookingConfirmation struct {
	Ride            *Ride     `json:"ride"`
	PassengerID     string    `json:"passenger_id"`
	Seat            int       `json:"seat"`
	Amount          int64     `json:"amount_cents"`
	PaymentRecordID uuid.UUID `json:"payment_record_id"`
}

// RefundLine describes one passenger refund made while deleting a ride
type RefundLine struct {
	PassengerID string    `json:"passenger_id"`
	Amount      int64     `json:"amount_cents"`
	RecordID    uuid.UUID `json:"record_id"`
}

// DeletionReceipt summarises the money moved to delete a ride
type DeletionReceipt struct {
	RideID      string       `json:"ride_id"`
	State       RideState    `json:"state"`
	Fee         int64        `json:"fee_cents"`
	RefundTotal int64        `json:"refund_total_cents"`
	Refunds     []RefundLine `json:"refunds"`
}

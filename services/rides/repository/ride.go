package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/piresc/roadbuddy/internal/pkg/models"
)

const rideColumns = `id, owner_id, owner_name, origin, destination, ride_date, departure_time,
	departure_at, cost_per_seat, max_passengers, passengers, state,
	vehicle_make, vehicle_model, vehicle_color, vehicle_plate,
	version, created_at, updated_at`

// rideRow is the flat database shape of models.Ride
type rideRow struct {
	ID            uuid.UUID      `db:"id"`
	OwnerID       string         `db:"owner_id"`
	OwnerName     string         `db:"owner_name"`
	Origin        string         `db:"origin"`
	Destination   string         `db:"destination"`
	Date          string         `db:"ride_date"`
	DepartureTime string         `db:"departure_time"`
	DepartureAt   time.Time      `db:"departure_at"`
	CostPerSeat   int64          `db:"cost_per_seat"`
	MaxPassengers int            `db:"max_passengers"`
	Passengers    pq.StringArray `db:"passengers"`
	State         string         `db:"state"`
	VehicleMake   string         `db:"vehicle_make"`
	VehicleModel  string         `db:"vehicle_model"`
	VehicleColor  string         `db:"vehicle_color"`
	VehiclePlate  string         `db:"vehicle_plate"`
	Version       int64          `db:"version"`
	CreatedAt     time.Time      `db:"created_at"`
	UpdatedAt     time.Time      `db:"updated_at"`
}

func toRow(r *models.Ride) rideRow {
	passengers := pq.StringArray(r.Passengers)
	if passengers == nil {
		passengers = pq.StringArray{}
	}
	return rideRow{
		ID:            r.ID,
		OwnerID:       r.OwnerID,
		OwnerName:     r.OwnerName,
		Origin:        r.Origin,
		Destination:   r.Destination,
		Date:          r.Date,
		DepartureTime: r.DepartureTime,
		DepartureAt:   r.DepartureAt,
		CostPerSeat:   r.CostPerSeat,
		MaxPassengers: r.MaxPassengers,
		Passengers:    passengers,
		State:         string(r.State),
		VehicleMake:   r.Vehicle.Make,
		VehicleModel:  r.Vehicle.Model,
		VehicleColor:  r.Vehicle.Color,
		VehiclePlate:  r.Vehicle.Plate,
		Version:       r.Version,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

func (row rideRow) toRide() *models.Ride {
	passengers := []string(row.Passengers)
	if passengers == nil {
		passengers = []string{}
	}
	return &models.Ride{
		ID:            row.ID,
		OwnerID:       row.OwnerID,
		OwnerName:     row.OwnerName,
		Origin:        row.Origin,
		Destination:   row.Destination,
		Date:          row.Date,
		DepartureTime: row.DepartureTime,
		DepartureAt:   row.DepartureAt,
		CostPerSeat:   row.CostPerSeat,
		MaxPassengers: row.MaxPassengers,
		Passengers:    passengers,
		State:         models.RideState(row.State),
		Vehicle: models.Vehicle{
			Make:  row.VehicleMake,
			Model: row.VehicleModel,
			Color: row.VehicleColor,
			Plate: row.VehiclePlate,
		},
		Version:   row.Version,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}

func activeStates() pq.StringArray {
	states := make(pq.StringArray, 0, len(models.ActiveRideStates))
	for _, s := range models.ActiveRideStates {
		states = append(states, string(s))
	}
	return states
}

// RideRepo stores rides in Postgres. UpdateRide holds a row lock for the
// length of its transaction, which serialises roster changes across instances.
type RideRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

func NewRideRepository(
	cfg *models.Config,
	db *sqlx.DB,
) *RideRepo {
	return &RideRepo{
		cfg: cfg,
		db:  db,
	}
}

func (r *RideRepo) CreateRide(ctx context.Context, ride *models.Ride) error {
	query := `
		INSERT INTO rides (
			id, owner_id, owner_name, origin, destination, ride_date, departure_time,
			departure_at, cost_per_seat, max_passengers, passengers, state,
			vehicle_make, vehicle_model, vehicle_color, vehicle_plate,
			version, created_at, updated_at
		) VALUES (
			:id, :owner_id, :owner_name, :origin, :destination, :ride_date, :departure_time,
			:departure_at, :cost_per_seat, :max_passengers, :passengers, :state,
			:vehicle_make, :vehicle_model, :vehicle_color, :vehicle_plate,
			:version, :created_at, :updated_at
		)
	`
	if _, err := r.db.NamedExecContext(ctx, query, toRow(ride)); err != nil {
		return fmt.Errorf("failed to insert ride: %w", err)
	}
	return nil
}

func (r *RideRepo) GetRide(ctx context.Context, rideID string) (*models.Ride, error) {
	id, err := uuid.Parse(rideID)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", models.ErrRideNotFound, rideID)
	}

	var row rideRow
	if err := r.db.GetContext(ctx, &row, `SELECT `+rideColumns+` FROM rides WHERE id = $1`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", models.ErrRideNotFound, rideID)
		}
		return nil, fmt.Errorf("failed to get ride: %w", err)
	}
	return row.toRide(), nil
}

func (r *RideRepo) UpdateRide(ctx context.Context, rideID string, fn func(ride *models.Ride) error) (*models.Ride, error) {
	id, err := uuid.Parse(rideID)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", models.ErrRideNotFound, rideID)
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var row rideRow
	if err := tx.GetContext(ctx, &row, `SELECT `+rideColumns+` FROM rides WHERE id = $1 FOR UPDATE`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", models.ErrRideNotFound, rideID)
		}
		return nil, fmt.Errorf("failed to lock ride: %w", err)
	}

	ride := row.toRide()
	if err := fn(ride); err != nil {
		return nil, err
	}
	ride.Version++
	ride.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE rides
		SET passengers = $1, state = $2, version = $3, updated_at = $4
		WHERE id = $5
	`
	if _, err := tx.ExecContext(ctx, query, pq.Array(ride.Passengers), string(ride.State), ride.Version, ride.UpdatedAt, id); err != nil {
		return nil, fmt.Errorf("failed to update ride: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit ride update: %w", err)
	}
	return ride, nil
}

func (r *RideRepo) ExistsActive(ctx context.Context, ride *models.Ride) (bool, error) {
	query := `
		SELECT EXISTS(
			SELECT 1 FROM rides
			WHERE state = ANY($1) AND owner_id = $2 AND origin = $3
				AND destination = $4 AND ride_date = $5 AND departure_time = $6
		)
	`
	var exists bool
	err := r.db.GetContext(ctx, &exists, query,
		activeStates(), ride.OwnerID, ride.Origin, ride.Destination, ride.Date, ride.DepartureTime)
	if err != nil {
		return false, fmt.Errorf("failed to check duplicate ride: %w", err)
	}
	return exists, nil
}

func (r *RideRepo) ListAvailable(ctx context.Context, userID string, now time.Time) ([]*models.Ride, error) {
	query := `SELECT ` + rideColumns + `
		FROM rides
		WHERE state = $1 AND departure_at > $2
			AND owner_id <> $3 AND NOT ($3 = ANY(passengers))
		ORDER BY departure_at ASC`
	return r.list(ctx, query, string(models.RideStateOpen), now, userID)
}

func (r *RideRepo) ListUpcoming(ctx context.Context, userID string, now time.Time) ([]*models.Ride, error) {
	query := `SELECT ` + rideColumns + `
		FROM rides
		WHERE state = ANY($1) AND departure_at > $2
			AND (owner_id = $3 OR $3 = ANY(passengers))
		ORDER BY departure_at ASC`
	return r.list(ctx, query, activeStates(), now, userID)
}

func (r *RideRepo) ListDeparted(ctx context.Context, now time.Time) ([]*models.Ride, error) {
	query := `SELECT ` + rideColumns + `
		FROM rides
		WHERE state = ANY($1) AND departure_at <= $2
		ORDER BY departure_at ASC`
	return r.list(ctx, query, activeStates(), now)
}

func (r *RideRepo) list(ctx context.Context, query string, args ...interface{}) ([]*models.Ride, error) {
	var rows []rideRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list rides: %w", err)
	}

	rides := make([]*models.Ride, 0, len(rows))
	for _, row := range rows {
		rides = append(rides, row.toRide())
	}
	return rides, nil
}

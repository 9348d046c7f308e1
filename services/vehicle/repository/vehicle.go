package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/piresc/roadbuddy/internal/pkg/database"
	"github.com/piresc/roadbuddy/internal/pkg/models"
)

const vehicleColumns = `id, owner_id, make, model, year, color, plate, vin, is_primary, created_at`

// VehicleRepo stores cars in Postgres. A partial unique index keeps one
// primary car per owner.
type VehicleRepo struct {
	db *sqlx.DB
}

func NewVehicleRepository(db *sqlx.DB) *VehicleRepo {
	return &VehicleRepo{db: db}
}

func (r *VehicleRepo) AddVehicle(ctx context.Context, v *models.OwnedVehicle) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	if v.CreatedAt.IsZero() {
		v.CreatedAt = time.Now().UTC()
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if v.IsPrimary {
		if _, err := tx.ExecContext(ctx,
			`UPDATE vehicles SET is_primary = FALSE WHERE owner_id = $1 AND is_primary`, v.OwnerID); err != nil {
			return fmt.Errorf("failed to clear primary vehicle: %w", err)
		}
	}

	query := `
		INSERT INTO vehicles (` + vehicleColumns + `)
		VALUES (:id, :owner_id, :make, :model, :year, :color, :plate, :vin, :is_primary, :created_at)
	`
	if _, err := tx.NamedExecContext(ctx, query, v); err != nil {
		if database.IsUniqueViolation(err) {
			return fmt.Errorf("%w: VIN %s", models.ErrDuplicateVehicle, v.VIN)
		}
		return fmt.Errorf("failed to insert vehicle: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit vehicle: %w", err)
	}
	return nil
}

func (r *VehicleRepo) ListVehicles(ctx context.Context, ownerID string) ([]*models.OwnedVehicle, error) {
	var vehicles []*models.OwnedVehicle
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE owner_id = $1 ORDER BY created_at ASC, id ASC`
	if err := r.db.SelectContext(ctx, &vehicles, query, ownerID); err != nil {
		return nil, fmt.Errorf("failed to list vehicles: %w", err)
	}
	if vehicles == nil {
		vehicles = []*models.OwnedVehicle{}
	}
	return vehicles, nil
}

func (r *VehicleRepo) SetPrimary(ctx context.Context, ownerID string, vehicleID uuid.UUID) (*models.OwnedVehicle, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var v models.OwnedVehicle
	err = tx.GetContext(ctx, &v,
		`SELECT `+vehicleColumns+` FROM vehicles WHERE id = $1 AND owner_id = $2 FOR UPDATE`, vehicleID, ownerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", models.ErrVehicleNotFound, vehicleID)
		}
		return nil, fmt.Errorf("failed to lock vehicle: %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE vehicles SET is_primary = FALSE WHERE owner_id = $1 AND is_primary AND id <> $2`, ownerID, vehicleID); err != nil {
		return nil, fmt.Errorf("failed to clear primary vehicle: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `UPDATE vehicles SET is_primary = TRUE WHERE id = $1`, vehicleID); err != nil {
		return nil, fmt.Errorf("failed to set primary vehicle: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit primary vehicle: %w", err)
	}
	v.IsPrimary = true
	return &v, nil
}

package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/roadbuddy/internal/pkg/models"
)

// MemoryVehicleRepo keeps cars in process, in registration order per owner
type MemoryVehicleRepo struct {
	mu      sync.RWMutex
	byOwner map[string][]*models.OwnedVehicle
}

func NewMemoryVehicleRepository() *MemoryVehicleRepo {
	return &MemoryVehicleRepo{byOwner: make(map[string][]*models.OwnedVehicle)}
}

func (r *MemoryVehicleRepo) AddVehicle(ctx context.Context, v *models.OwnedVehicle) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	owned := r.byOwner[v.OwnerID]
	for _, existing := range owned {
		if existing.VIN == v.VIN {
			return fmt.Errorf("%w: VIN %s", models.ErrDuplicateVehicle, v.VIN)
		}
	}

	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	if v.CreatedAt.IsZero() {
		v.CreatedAt = time.Now().UTC()
	}
	if v.IsPrimary {
		for _, existing := range owned {
			existing.IsPrimary = false
		}
	}

	stored := *v
	r.byOwner[v.OwnerID] = append(owned, &stored)
	return nil
}

func (r *MemoryVehicleRepo) ListVehicles(ctx context.Context, ownerID string) ([]*models.OwnedVehicle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*models.OwnedVehicle, 0, len(r.byOwner[ownerID]))
	for _, v := range r.byOwner[ownerID] {
		c := *v
		out = append(out, &c)
	}
	return out, nil
}

func (r *MemoryVehicleRepo) SetPrimary(ctx context.Context, ownerID string, vehicleID uuid.UUID) (*models.OwnedVehicle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var target *models.OwnedVehicle
	for _, v := range r.byOwner[ownerID] {
		if v.ID == vehicleID {
			target = v
		}
	}
	if target == nil {
		return nil, fmt.Errorf("%w: %s", models.ErrVehicleNotFound, vehicleID)
	}

	for _, v := range r.byOwner[ownerID] {
		v.IsPrimary = v == target
	}
	c := *target
	return &c, nil
}

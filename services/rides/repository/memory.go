package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/piresc/roadbuddy/internal/pkg/models"
)

// MemoryRideRepo keeps rides in process; UpdateRide runs under a single
// write lock, so fn must not call back into the repository
type MemoryRideRepo struct {
	mu    sync.RWMutex
	rides map[string]*models.Ride
}

func NewMemoryRideRepository() *MemoryRideRepo {
	return &MemoryRideRepo{rides: make(map[string]*models.Ride)}
}

func (r *MemoryRideRepo) CreateRide(ctx context.Context, ride *models.Ride) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := ride.ID.String()
	if _, ok := r.rides[id]; ok {
		return fmt.Errorf("ride %s already exists", id)
	}
	r.rides[id] = ride.Clone()
	return nil
}

func (r *MemoryRideRepo) GetRide(ctx context.Context, rideID string) (*models.Ride, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ride, ok := r.rides[rideID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", models.ErrRideNotFound, rideID)
	}
	return ride.Clone(), nil
}

func (r *MemoryRideRepo) UpdateRide(ctx context.Context, rideID string, fn func(ride *models.Ride) error) (*models.Ride, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.rides[rideID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", models.ErrRideNotFound, rideID)
	}

	ride := stored.Clone()
	if err := fn(ride); err != nil {
		return nil, err
	}
	ride.Version++
	ride.UpdatedAt = time.Now().UTC()

	r.rides[rideID] = ride
	return ride.Clone(), nil
}

func (r *MemoryRideRepo) ExistsActive(ctx context.Context, ride *models.Ride) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, existing := range r.rides {
		if existing.IsActive() && existing.OwnerID == ride.OwnerID &&
			existing.Origin == ride.Origin && existing.Destination == ride.Destination &&
			existing.Date == ride.Date && existing.DepartureTime == ride.DepartureTime {
			return true, nil
		}
	}
	return false, nil
}

func (r *MemoryRideRepo) ListAvailable(ctx context.Context, userID string, now time.Time) ([]*models.Ride, error) {
	return r.filter(func(ride *models.Ride) bool {
		return ride.State == models.RideStateOpen && ride.DepartureAt.After(now) &&
			ride.OwnerID != userID && !ride.HasPassenger(userID)
	}), nil
}

func (r *MemoryRideRepo) ListUpcoming(ctx context.Context, userID string, now time.Time) ([]*models.Ride, error) {
	return r.filter(func(ride *models.Ride) bool {
		return ride.IsActive() && ride.DepartureAt.After(now) &&
			(ride.OwnerID == userID || ride.HasPassenger(userID))
	}), nil
}

func (r *MemoryRideRepo) ListDeparted(ctx context.Context, now time.Time) ([]*models.Ride, error) {
	return r.filter(func(ride *models.Ride) bool {
		return ride.IsActive() && ride.HasDeparted(now)
	}), nil
}

func (r *MemoryRideRepo) filter(keep func(*models.Ride) bool) []*models.Ride {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*models.Ride, 0)
	for _, ride := range r.rides {
		if keep(ride) {
			out = append(out, ride.Clone())
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].DepartureAt.Before(out[j].DepartureAt)
	})
	return out
}

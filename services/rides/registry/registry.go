package registry

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/roadbuddy/internal/pkg/lock"
	"github.com/piresc/roadbuddy/internal/pkg/logger"
	"github.com/piresc/roadbuddy/internal/pkg/models"
	"github.com/piresc/roadbuddy/internal/utils"
	"github.com/piresc/roadbuddy/services/rides"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

var acceptedTimeLayouts = []string{timeLayout, "3:04 PM", "3:04PM", "03:04 PM"}

// errUnchanged aborts an update that would not modify the ride
var errUnchanged = errors.New("ride unchanged")

type rideRegistry struct {
	cfg     *models.Config
	repo    rides.RideRepo
	locks   *lock.Keyed
	loc     *time.Location
	minCost int64
	now     func() time.Time
}

type Option func(*rideRegistry)

// WithClock replaces time.Now, for tests
func WithClock(now func() time.Time) Option {
	return func(r *rideRegistry) { r.now = now }
}

// NewRideRegistry creates the registry. Departure dates and times are read
// in cfg.Rides.Timezone.
func NewRideRegistry(
	cfg *models.Config,
	repo rides.RideRepo,
	opts ...Option,
) (rides.RideRegistry, error) {
	if cfg == nil {
		cfg = &models.Config{}
	}

	loc := time.UTC
	if tz := cfg.Rides.Timezone; tz != "" {
		l, err := time.LoadLocation(tz)
		if err != nil {
			return nil, fmt.Errorf("invalid rides timezone %q: %w", tz, err)
		}
		loc = l
	}

	minCost := cfg.Rides.MinCostCents
	if minCost < models.MinCostPerSeatCents {
		minCost = models.MinCostPerSeatCents
	}

	r := &rideRegistry{
		cfg:     cfg,
		repo:    repo,
		locks:   lock.NewKeyed(),
		loc:     loc,
		minCost: minCost,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

func (r *rideRegistry) CreateRide(ctx context.Context, req models.CreateRideRequest) (*models.Ride, error) {
	ride, err := r.validate(req)
	if err != nil {
		return nil, err
	}

	duplicate, err := r.repo.ExistsActive(ctx, ride)
	if err != nil {
		return nil, err
	}
	if duplicate {
		return nil, fmt.Errorf("%w: you already posted this ride", models.ErrValidation)
	}

	if err := r.repo.CreateRide(ctx, ride); err != nil {
		return nil, err
	}

	logger.Info("Ride created",
		logger.RideID(ride.ID.String()),
		logger.String("owner_id", ride.OwnerID),
		logger.Int("max_passengers", ride.MaxPassengers),
		logger.Cents("cost_per_seat", ride.CostPerSeat))
	return ride, nil
}

func (r *rideRegistry) validate(req models.CreateRideRequest) (*models.Ride, error) {
	var problems []string

	ownerID := strings.TrimSpace(req.OwnerID)
	origin := utils.SanitizeString(req.Origin)
	destination := utils.SanitizeString(req.Destination)
	if ownerID == "" {
		problems = append(problems, "owner is required")
	}
	if origin == "" {
		problems = append(problems, "origin is required")
	}
	if destination == "" {
		problems = append(problems, "destination is required")
	}
	if req.MaxPassengers < 1 {
		problems = append(problems, "max passengers must be at least 1")
	}

	// the minimum applies to the unrounded amount
	cost := utils.DollarsToCents(req.CostPerSeat)
	if math.IsNaN(req.CostPerSeat) || math.IsInf(req.CostPerSeat, 0) || req.CostPerSeat < float64(r.minCost)/100 {
		problems = append(problems, fmt.Sprintf("cost per seat must be at least %s", utils.FormatCents(r.minCost)))
	}

	departure, depTime, err := r.parseDeparture(req.Date, req.DepartureTime)
	if err != nil {
		problems = append(problems, err.Error())
	} else if !departure.After(r.now()) {
		problems = append(problems, "departure must be in the future")
	}

	if len(problems) > 0 {
		return nil, fmt.Errorf("%w: %s", models.ErrValidation, strings.Join(problems, "; "))
	}

	now := r.now().UTC()
	return &models.Ride{
		ID:            uuid.New(),
		OwnerID:       ownerID,
		OwnerName:     utils.SanitizeString(req.OwnerName),
		Origin:        origin,
		Destination:   destination,
		Date:          req.Date,
		DepartureTime: depTime,
		DepartureAt:   departure,
		CostPerSeat:   cost,
		MaxPassengers: req.MaxPassengers,
		Passengers:    []string{},
		State:         models.RideStateOpen,
		Vehicle: models.Vehicle{
			Make:  utils.SanitizeString(req.Vehicle.Make),
			Model: utils.SanitizeString(req.Vehicle.Model),
			Color: utils.SanitizeString(req.Vehicle.Color),
			Plate: utils.SanitizeString(req.Vehicle.Plate),
		},
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// parseDeparture returns the departure instant and the time normalised to 15:04
func (r *rideRegistry) parseDeparture(date, clock string) (time.Time, string, error) {
	day, err := time.ParseInLocation(dateLayout, strings.TrimSpace(date), r.loc)
	if err != nil {
		return time.Time{}, "", fmt.Errorf("date must look like %s", dateLayout)
	}

	clock = strings.ToUpper(strings.TrimSpace(clock))
	for _, layout := range acceptedTimeLayouts {
		t, err := time.Parse(layout, clock)
		if err != nil {
			continue
		}
		departure := time.Date(day.Year(), day.Month(), day.Day(), t.Hour(), t.Minute(), 0, 0, r.loc)
		return departure, t.Format(timeLayout), nil
	}
	return time.Time{}, "", fmt.Errorf("departure time must look like %s or 3:04 PM", timeLayout)
}

func (r *rideRegistry) GetRide(ctx context.Context, rideID string) (*models.Ride, error) {
	return r.repo.GetRide(ctx, rideID)
}

// update runs fn against the ride while holding the ride's lock. errUnchanged
// from fn returns the current ride without writing.
func (r *rideRegistry) update(ctx context.Context, rideID string, fn func(ride *models.Ride) error) (*models.Ride, error) {
	unlock := r.locks.Lock(rideID)
	defer unlock()

	ride, err := r.repo.UpdateRide(ctx, rideID, fn)
	if errors.Is(err, errUnchanged) {
		return r.repo.GetRide(ctx, rideID)
	}
	return ride, err
}

func (r *rideRegistry) ReserveSeat(ctx context.Context, rideID, passengerID string) (*models.ReservationToken, error) {
	var seat int
	ride, err := r.update(ctx, rideID, func(ride *models.Ride) error {
		if ride.OwnerID == passengerID {
			return fmt.Errorf("%w: you cannot book your own ride", models.ErrRideUnavailable)
		}
		if ride.IsActive() && ride.HasDeparted(r.now()) {
			return fmt.Errorf("%w: ride has already departed", models.ErrRideUnavailable)
		}
		var err error
		seat, err = ride.Reserve(passengerID)
		return err
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Seat reserved",
		logger.RideID(rideID),
		logger.PassengerID(passengerID),
		logger.Int("seat", seat),
		logger.String("state", string(ride.State)))

	return &models.ReservationToken{
		RideID:      rideID,
		PassengerID: passengerID,
		Seat:        seat,
		State:       ride.State,
	}, nil
}

func (r *rideRegistry) ReleaseSeat(ctx context.Context, rideID, passengerID string) (*models.Ride, error) {
	return r.update(ctx, rideID, func(ride *models.Ride) error {
		if !ride.Release(passengerID) {
			return errUnchanged
		}
		return nil
	})
}

func (r *rideRegistry) CancelRide(ctx context.Context, rideID, passengerID string) (*models.Ride, error) {
	return r.update(ctx, rideID, func(ride *models.Ride) error {
		return ride.RemovePassenger(passengerID)
	})
}

func (r *rideRegistry) FreezeRide(ctx context.Context, rideID, ownerID string, expected []string) (*models.Ride, error) {
	return r.update(ctx, rideID, func(ride *models.Ride) error {
		if ride.OwnerID != ownerID {
			return fmt.Errorf("%w: only the owner can delete this ride", models.ErrAuthorization)
		}
		if ride.State == models.RideStateCancelled {
			return errUnchanged
		}
		if !sameRoster(ride.Passengers, expected) {
			return fmt.Errorf("%w: %d passengers now, %d expected", models.ErrRosterChanged, len(ride.Passengers), len(expected))
		}
		return ride.Freeze()
	})
}

func sameRoster(current, expected []string) bool {
	if len(current) != len(expected) {
		return false
	}
	seen := make(map[string]struct{}, len(expected))
	for _, id := range expected {
		seen[id] = struct{}{}
	}
	for _, id := range current {
		if _, ok := seen[id]; !ok {
			return false
		}
	}
	return true
}

func (r *rideRegistry) DeleteRide(ctx context.Context, rideID, ownerID string) (*models.Ride, error) {
	ride, err := r.update(ctx, rideID, func(ride *models.Ride) error {
		if ride.OwnerID != ownerID {
			return fmt.Errorf("%w: only the owner can delete this ride", models.ErrAuthorization)
		}
		if ride.State == models.RideStateDeleted {
			return errUnchanged
		}
		return ride.MarkDeleted()
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Ride deleted", logger.RideID(rideID), logger.String("owner_id", ownerID))
	return ride, nil
}

func (r *rideRegistry) ExpireRide(ctx context.Context, rideID string) (*models.Ride, error) {
	return r.update(ctx, rideID, func(ride *models.Ride) error {
		if !ride.IsActive() || !ride.HasDeparted(r.now()) {
			return errUnchanged
		}
		return ride.MarkDeleted()
	})
}

func (r *rideRegistry) ListAvailable(ctx context.Context, userID string) ([]*models.Ride, error) {
	return r.repo.ListAvailable(ctx, userID, r.now())
}

func (r *rideRegistry) ListUpcoming(ctx context.Context, userID string) ([]*models.Ride, error) {
	return r.repo.ListUpcoming(ctx, userID, r.now())
}

func (r *rideRegistry) ListDeparted(ctx context.Context) ([]*models.Ride, error) {
	return r.repo.ListDeparted(ctx, r.now())
}

package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/piresc/roadbuddy/internal/pkg/logger"
	"github.com/piresc/roadbuddy/internal/pkg/models"
	"github.com/piresc/roadbuddy/internal/utils"
	"github.com/piresc/roadbuddy/services/payment"
	"github.com/piresc/roadbuddy/services/rides"
)

const (
	defaultPenaltyPercent    int64 = 20
	defaultRefundConcurrency       = 4
)

// rideUC implements rides.RideUC
type rideUC struct {
	cfg      *models.Config
	registry rides.RideRegistry
	ledger   payment.LedgerUC
	notifier rides.NotificationGW
	chat     rides.ChatGW
	vehicles rides.VehicleGW

	penaltyPercent    int64
	refundConcurrency int
	now               func() time.Time
}

type Option func(*rideUC)

// WithClock replaces time.Now, for tests
func WithClock(now func() time.Time) Option {
	return func(uc *rideUC) { uc.now = now }
}

// WithVehicles lets rides posted without a car use the owner's primary car
func WithVehicles(vehicles rides.VehicleGW) Option {
	return func(uc *rideUC) { uc.vehicles = vehicles }
}

// NewRideUC wires the ride lifecycle to its collaborators
func NewRideUC(
	cfg *models.Config,
	registry rides.RideRegistry,
	ledger payment.LedgerUC,
	notifier rides.NotificationGW,
	chat rides.ChatGW,
	opts ...Option,
) (rides.RideUC, error) {
	if registry == nil || ledger == nil {
		return nil, errors.New("ride registry and payment ledger are required")
	}
	if cfg == nil {
		cfg = &models.Config{}
	}

	penalty := cfg.Payment.PenaltyPercent
	if penalty <= 0 {
		penalty = defaultPenaltyPercent
	}
	concurrency := cfg.Rides.RefundConcurrency
	if concurrency <= 0 {
		concurrency = defaultRefundConcurrency
	}

	uc := &rideUC{
		cfg:               cfg,
		registry:          registry,
		ledger:            ledger,
		notifier:          notifier,
		chat:              chat,
		penaltyPercent:    penalty,
		refundConcurrency: concurrency,
		now:               time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc, nil
}

func (uc *rideUC) CreateRide(ctx context.Context, req models.CreateRideRequest) (*models.Ride, error) {
	if req.Vehicle == (models.Vehicle{}) && uc.vehicles != nil {
		primary, err := uc.vehicles.PrimaryVehicle(ctx, req.OwnerID)
		switch {
		case err == nil:
			req.Vehicle = primary.Snapshot()
		case !errors.Is(err, models.ErrVehicleNotFound):
			return nil, fmt.Errorf("failed to look up primary car: %w", err)
		}
	}

	ride, err := uc.registry.CreateRide(ctx, req)
	if err != nil {
		return nil, err
	}

	if uc.chat != nil {
		if err := uc.chat.EnsureRoom(ctx, ride); err != nil {
			logger.Warn("Failed to create chat room", logger.RideID(ride.ID.String()), logger.Err(err))
		}
	}
	return ride, nil
}

func (uc *rideUC) GetRide(ctx context.Context, rideID string) (*models.Ride, error) {
	return uc.registry.GetRide(ctx, rideID)
}

func (uc *rideUC) ListAvailable(ctx context.Context, userID string) ([]*models.Ride, error) {
	return uc.registry.ListAvailable(ctx, userID)
}

func (uc *rideUC) ListUpcoming(ctx context.Context, userID string) ([]*models.Ride, error) {
	return uc.registry.ListUpcoming(ctx, userID)
}

func (uc *rideUC) GetChatRoom(ctx context.Context, rideID, userID string) (*models.ChatRoom, error) {
	if uc.chat == nil {
		return nil, fmt.Errorf("%w: %s", models.ErrChatRoomNotFound, rideID)
	}
	return uc.chat.GetRoom(ctx, rideID, userID)
}

// ListChatRooms is empty while chat is disabled
func (uc *rideUC) ListChatRooms(ctx context.Context, userID string) ([]*models.ChatRoom, error) {
	if uc.chat == nil {
		return []*models.ChatRoom{}, nil
	}
	return uc.chat.ListRooms(ctx, userID)
}

// notify hands a message to the dispatcher; it never fails the caller
func (uc *rideUC) notify(recipientID, rideID, message string) {
	if uc.notifier == nil {
		return
	}
	uc.notifier.Publish(recipientID, rideID, message)
}

func bookedMessage(name string, ride *models.Ride) string {
	return fmt.Sprintf("%s has booked a ride with you\nFrom: %s\nTo: %s", name, ride.Origin, ride.Destination)
}

func cancelledMessage(name string, ride *models.Ride) string {
	return fmt.Sprintf("%s has cancelled a ride with you.\nFrom: %s\nTo: %s", name, ride.Origin, ride.Destination)
}

func deletedMessage(refund int64, ownerName string, ride *models.Ride) string {
	return fmt.Sprintf("%s has been refunded to you.\n%s (ride's owner) has deleted this ride.\nFrom: %s\nTo: %s\nDate: %s",
		utils.FormatCents(refund), ownerName, ride.Origin, ride.Destination, ride.Date)
}

func displayName(name, fallback string) string {
	if name == "" {
		return fallback
	}
	return name
}

package logger

import (
	"time"

	"go.uber.org/zap"
)

// Field type alias so callers don't import zap directly
type Field = zap.Field

// String constructs a field that carries a string value
func String(key, val string) Field {
	return zap.String(key, val)
}

// Err constructs a field that carries an error
func Err(err error) Field {
	return zap.Error(err)
}

// Int constructs a field that carries an int value
func Int(key string, val int) Field {
	return zap.Int(key, val)
}

// Uint32 constructs a field that carries a uint32 value
func Uint32(key string, val uint32) Field {
	return zap.Uint32(key, val)
}

// Bool constructs a field that carries a boolean value
func Bool(key string, val bool) Field {
	return zap.Bool(key, val)
}

// Any constructs a field that carries an arbitrary value
func Any(key string, val interface{}) Field {
	return zap.Any(key, val)
}

// Duration constructs a field that carries a time.Duration value
func Duration(key string, val time.Duration) Field {
	return zap.Duration(key, val)
}

// Strings constructs a field that carries a slice of strings
func Strings(key string, val []string) Field {
	return zap.Strings(key, val)
}

// RideID tags an entry with the ride it concerns
func RideID(id string) Field {
	return zap.String("ride_id", id)
}

// UserID tags an entry with the acting user
func UserID(id string) Field {
	return zap.String("user_id", id)
}

// PassengerID tags an entry with a booked or booking passenger
func PassengerID(id string) Field {
	return zap.String("passenger_id", id)
}

// IdempotencyKey tags an entry with a payment idempotency key
func IdempotencyKey(key string) Field {
	return zap.String("idempotency_key", key)
}

// Cents logs a money amount in cents
func Cents(key string, amount int64) Field {
	return zap.Int64(key+"_cents", amount)
}

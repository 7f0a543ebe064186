package booking

import (
	"context"
	"errors"
)

var ErrCarNotAvailable = errors.New("this car is not available for rental")

// CarStatusSource answers whether a car is open for booking. It returns
// domain.ErrCarNotFound when the car does not exist.
type CarStatusSource interface {
	IsActive(ctx context.Context, carID int32) (bool, error)
}

// CheckCarAvailable gates a booking on the car's active flag.
func CheckCarAvailable(ctx context.Context, cars CarStatusSource, carID int32) error {
	active, err := cars.IsActive(ctx, carID)
	if err != nil {
		return err
	}
	if !active {
		return ErrCarNotAvailable
	}
	return nil
}

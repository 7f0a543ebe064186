package booking

import (
	"context"
	"errors"
	"time"

	"rentacar-backend/internal/domain"
)

// ModificationCutoff is the trailing window before a rental's start in
// which non-admin edits and cancellations are blocked.
const ModificationCutoff = 24 * time.Hour

var ErrTooCloseToStart = errors.New("rentals can only be modified more than 24 hours before the start date")

// Requester identifies the authenticated caller of a guarded operation.
type Requester struct {
	ID   int32
	Role domain.UserRole
}

func (r Requester) IsAdmin() bool { return r.Role == domain.UserRoleAdmin }

// CanAccess is the shared ownership rule: a requester may act on a
// resource it owns or when holding the Admin role.
func CanAccess(r Requester, ownerID int32) bool {
	return r.IsAdmin() || r.ID == ownerID
}

// RentalMetaSource supplies the two rental attributes the guards need.
// Both return domain.ErrRentalNotFound when the rental does not exist.
type RentalMetaSource interface {
	GetOwnerID(ctx context.Context, rentalID int32) (int32, error)
	GetStartDate(ctx context.Context, rentalID int32) (time.Time, error)
}

// Guard holds the authorization and time-window checks for a rental.
type Guard struct {
	rentals RentalMetaSource
	clock   Clock
}

func NewGuard(rentals RentalMetaSource, clock Clock) *Guard {
	return &Guard{rentals: rentals, clock: clock}
}

// CheckRentalAccess allows admins and the rental's owner through.
// A missing rental surfaces as domain.ErrRentalNotFound, distinct from
// domain.ErrNoRights, so absence is never reported as denial.
func (g *Guard) CheckRentalAccess(ctx context.Context, r Requester, rentalID int32) error {
	ownerID, err := g.rentals.GetOwnerID(ctx, rentalID)
	if err != nil {
		return err
	}
	if !CanAccess(r, ownerID) {
		return domain.ErrNoRights
	}
	return nil
}

// CheckModifiable enforces the cutoff window on non-admin mutation.
// Admins bypass without a lookup. Exactly 24 hours before start is
// already inside the window and is denied.
func (g *Guard) CheckModifiable(ctx context.Context, r Requester, rentalID int32) error {
	if r.IsAdmin() {
		return nil
	}
	start, err := g.rentals.GetStartDate(ctx, rentalID)
	if err != nil {
		return err
	}
	if start.Sub(g.clock.Now()) <= ModificationCutoff {
		return ErrTooCloseToStart
	}
	return nil
}

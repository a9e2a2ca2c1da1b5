package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/aussiebroadwan/cofound/internal/matchmaker/domain"
	"github.com/aussiebroadwan/cofound/internal/matchmaker/store"
)

var (
	ErrInvalidArgument   = errors.New("invalid argument")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrPermissionDenied  = errors.New("permission denied")
	ErrUnavailable       = errors.New("store unavailable")

	ErrProfileNotFound    = errors.New("profile not found")
	ErrMatchNotFound      = errors.New("match not found")
	ErrSubmissionNotFound = errors.New("submission not found")
)

// IsNotFound reports any of the not-found errors.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrProfileNotFound) ||
		errors.Is(err, ErrMatchNotFound) ||
		errors.Is(err, ErrSubmissionNotFound)
}

// mapStoreErr lifts a store error into the service taxonomy. notFound is
// returned for store.ErrNotFound.
func mapStoreErr(err, notFound error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, store.ErrNotFound):
		return notFound
	case errors.Is(err, store.ErrUnavailable), errors.Is(err, store.ErrIndexUnavailable):
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	case errors.Is(err, store.ErrPermissionDenied):
		return fmt.Errorf("%w: %w", ErrPermissionDenied, err)
	case errors.Is(err, domain.ErrValidation), errors.Is(err, store.ErrMalformed):
		return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	return err
}

// degradable reports store failures an aggregate read may report as zero.
func degradable(err error) bool {
	return errors.Is(err, store.ErrPermissionDenied) ||
		errors.Is(err, store.ErrUnavailable) ||
		errors.Is(err, store.ErrIndexUnavailable)
}

func invalidArgument(err error) error {
	return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
}

// now is truncated to the millisecond precision the stores keep.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

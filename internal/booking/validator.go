package booking

import (
	"time"

	"github.com/vvbakhanovich/shareit/internal/pkg/apperror"
)

// ValidateRange checks a proposed booking period against now. Missing bounds
// are reported per field before any ordering check.
func ValidateRange(start, end *time.Time, now time.Time) error {
	missing := map[string]string{}
	if start == nil {
		missing["start"] = "is required"
	}
	if end == nil {
		missing["end"] = "is required"
	}
	if len(missing) > 0 {
		return apperror.WithFields(ErrMissingField, missing)
	}

	switch {
	case !start.After(now):
		return apperror.WithFields(ErrInvalidRange, map[string]string{"start": "must be in the future"})
	case !end.After(*start):
		return apperror.WithFields(ErrInvalidRange, map[string]string{"end": "must be after start"})
	case end.Equal(now):
		return apperror.WithFields(ErrInvalidRange, map[string]string{"end": "must not be the current instant"})
	}
	return nil
}

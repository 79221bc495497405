package engine

import "fmt"

// ValidationError names the first report field that failed validation.
// Recoverable: the user corrects the field and resubmits.
type ValidationError struct {
	Field  string
	Reason string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// RateLimitError is returned when the daily report cap for a calendar
// date is already used up. Recoverable the next day.
type RateLimitError struct {
	Date  string
	Limit int
}

func (e RateLimitError) Error() string {
	return fmt.Sprintf("daily quest limit reached (%d/day) on %s", e.Limit, e.Date)
}

// InvalidTransitionError is returned when a mission operation is
// attempted from the wrong state or by the wrong actor. Callers should
// refresh state and re-check eligibility.
type InvalidTransitionError struct {
	Op     string
	Reason string
}

func (e InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot %s: %s", e.Op, e.Reason)
}

// MissingPhotoError is returned when a completion has no after photo.
type MissingPhotoError struct {
	MissionID string
}

func (e MissingPhotoError) Error() string {
	return fmt.Sprintf("mission %s needs at least one after photo", e.MissionID)
}

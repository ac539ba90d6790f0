package usecase

import (
	"context"
	"time"
)

const (
	shortDateLayout = "02/01/2006"
	longDateLayout  = "Monday, 2 January 2006"
	unknownDate     = "N/A"
)

// Paths the screens link to.
const (
	historyPath = "/candidate/interviews"
	reportPath  = "/report/"
)

// PhotoResolver turns a stored photo reference into a loadable URL.
type PhotoResolver interface {
	Resolve(ctx context.Context, ref string) string
}

// ToggleGuard serialises status changes per account.
type ToggleGuard interface {
	Acquire(ctx context.Context, key string) (release func(), err error)
}

func timePtr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	u := t.UTC()
	return &u
}

func shortDate(t time.Time) string {
	if t.IsZero() {
		return unknownDate
	}
	return t.UTC().Format(shortDateLayout)
}

func longDate(t time.Time) string {
	if t.IsZero() {
		return unknownDate
	}
	return t.UTC().Format(longDateLayout)
}

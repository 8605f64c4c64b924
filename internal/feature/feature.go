// Package feature holds the request plumbing shared by the tracked features:
// owner lookup, window query parameters, entry normalization and error responses.
package feature

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/2beens/fitrollup/internal/rollup"

	log "github.com/sirupsen/logrus"
)

var (
	ErrInvalidEntry  = errors.New("invalid entry")
	ErrInvalidParams = errors.New("invalid params")
	ErrNoOwner       = errors.New("no owner")
)

type ownerKey struct{}

func WithOwner(ctx context.Context, owner string) context.Context {
	return context.WithValue(ctx, ownerKey{}, owner)
}

func Owner(ctx context.Context) (string, bool) {
	owner, ok := ctx.Value(ownerKey{}).(string)
	return owner, ok && owner != ""
}

type WindowParams struct {
	Ref  time.Time
	Size int
}

func (p WindowParams) RefKey() rollup.DayKey {
	return rollup.ToDayKey(p.Ref)
}

// ParseWindowParams reads the optional date (YYYY-MM-DD, default today) and days
// (default defaultSize, at most maxSize) query parameters.
func ParseWindowParams(q url.Values, defaultSize, maxSize int) (WindowParams, error) {
	params := WindowParams{
		Ref:  time.Now(),
		Size: defaultSize,
	}

	if date := q.Get("date"); date != "" {
		key, err := rollup.ParseDayKey(date)
		if err != nil {
			return WindowParams{}, fmt.Errorf("%w: date: %s", ErrInvalidParams, err)
		}
		params.Ref = key.Time()
	}

	if days := q.Get("days"); days != "" {
		size, err := strconv.Atoi(days)
		if err != nil {
			return WindowParams{}, fmt.Errorf("%w: days: %s", ErrInvalidParams, err)
		}
		if size <= 0 {
			return WindowParams{}, fmt.Errorf("%w: days must be positive", rollup.ErrInvalidWindowSize)
		}
		params.Size = size
	}

	if maxSize > 0 && params.Size > maxSize {
		return WindowParams{}, fmt.Errorf("%w: days must be at most %d", ErrInvalidParams, maxSize)
	}

	return params, nil
}

// NonNegative rejects negative or non-finite metrics.
func NonNegative(name string, v float64) error {
	if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%w: %s must be a non-negative number", ErrInvalidEntry, name)
	}
	return nil
}

// Bounded rejects metrics that are negative, non-finite or above max.
func Bounded(name string, v, max float64) error {
	if err := NonNegative(name, v); err != nil {
		return err
	}
	if v > max {
		return fmt.Errorf("%w: %s must be at most %g", ErrInvalidEntry, name, max)
	}
	return nil
}

func FirstError(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

// Category trims and lower-cases a categorical field.
func Category(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Categories normalizes a tag list, dropping blanks and duplicates. Never returns nil.
func Categories(tags []string) []string {
	normalized := make([]string, 0, len(tags))
	seen := make(map[string]bool, len(tags))
	for _, t := range tags {
		t = Category(t)
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		normalized = append(normalized, t)
	}
	return normalized
}

func TimestampOrNow(t *time.Time) time.Time {
	if t == nil || t.IsZero() {
		return time.Now()
	}
	return *t
}

// WriteError maps domain errors to client errors and everything else to 500.
func WriteError(w http.ResponseWriter, msg string, err error) {
	switch {
	case errors.Is(err, ErrInvalidEntry),
		errors.Is(err, ErrInvalidParams),
		errors.Is(err, rollup.ErrInvalidWindowSize),
		errors.Is(err, rollup.ErrDomain):
		http.Error(w, fmt.Sprintf("%s: %s", msg, err), http.StatusBadRequest)
	case errors.Is(err, ErrNoOwner):
		http.Error(w, "no owner", http.StatusUnauthorized)
	default:
		log.Errorf("%s: %s", msg, err)
		http.Error(w, msg, http.StatusInternalServerError)
	}
}

package store

import (
	"context"

	"github.com/2beens/fitrollup/internal/rollup"
)

// Entry is a persisted record that belongs to a single local day.
type Entry[E any] interface {
	DayKey() rollup.DayKey
	WithID(id int) E
}

// Source is where a feature reads its raw entries from and writes new ones to.
// Implementations are chosen once, when the server is composed.
type Source[E any] interface {
	// Read returns the owner's entries whose day falls inside the window.
	Read(ctx context.Context, owner string, w rollup.Window) ([]E, error)
	Write(ctx context.Context, owner string, e E) (E, error)
}

type Kind string

const (
	KindPostgres Kind = "postgres"
	KindMemory   Kind = "memory"
)

func ParseKind(s string) (Kind, bool) {
	switch Kind(s) {
	case KindPostgres, "":
		return KindPostgres, true
	case KindMemory:
		return KindMemory, true
	default:
		return "", false
	}
}

package cardio

import (
	"context"
	"fmt"

	"github.com/2beens/fitrollup/internal/rollup"
	"github.com/2beens/fitrollup/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Write(ctx context.Context, owner string, s Session) (_ Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.cardio.write")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	var id int
	if err := r.db.QueryRow(
		ctx,
		`INSERT INTO cardio_session
				(owner_id, kind, minutes, distance_km, calories, created_at)
				VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id;`,
		owner, s.Kind, s.Minutes, s.DistanceKm, s.Calories, s.CreatedAt,
	).Scan(&id); err != nil {
		return Session{}, fmt.Errorf("insert cardio session: %w", err)
	}

	s.OwnerID = owner
	return s.WithID(id), nil
}

func (r *Repo) Read(ctx context.Context, owner string, w rollup.Window) (_ []Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.cardio.read")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.String("owner", owner))

	if len(w) == 0 {
		return []Session{}, nil
	}

	from, to := w.Bounds()
	rows, err := r.db.Query(
		ctx,
		`SELECT id, owner_id, kind, minutes, distance_km, calories, created_at
			FROM cardio_session
			WHERE owner_id = $1 AND created_at >= $2 AND created_at < $3
			ORDER BY created_at, id;`,
		owner, from, to,
	)
	if err != nil {
		return nil, fmt.Errorf("query cardio sessions: %w", err)
	}

	sessions, err := pgx.CollectRows(rows, pgx.RowToStructByPos[Session])
	if err != nil {
		return nil, fmt.Errorf("collect cardio sessions: %w", err)
	}

	span.SetAttributes(attribute.Int("entries", len(sessions)))
	return sessions, nil
}

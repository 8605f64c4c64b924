package gym

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

func (r *Repo) Write(ctx context.Context, owner string, s Set) (_ Set, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gym.write")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	var id int
	if err := r.db.QueryRow(
		ctx,
		`INSERT INTO gym_set
				(owner_id, exercise, tags, marker, kilos, reps, created_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id;`,
		owner, s.Exercise, s.Tags, s.Marker, s.Kilos, s.Reps, s.CreatedAt,
	).Scan(&id); err != nil {
		return Set{}, fmt.Errorf("insert gym set: %w", err)
	}

	s.OwnerID = owner
	return s.WithID(id), nil
}

func (r *Repo) Read(ctx context.Context, owner string, w rollup.Window) (_ []Set, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gym.read")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.String("owner", owner))

	if len(w) == 0 {
		return []Set{}, nil
	}

	from, to := w.Bounds()
	rows, err := r.db.Query(
		ctx,
		`SELECT id, owner_id, exercise, tags, marker, kilos, reps, created_at
			FROM gym_set
			WHERE owner_id = $1 AND created_at >= $2 AND created_at < $3
			ORDER BY created_at, id;`,
		owner, from, to,
	)
	if err != nil {
		return nil, fmt.Errorf("query gym sets: %w", err)
	}

	sets, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (Set, error) {
		var s Set
		err := row.Scan(&s.ID, &s.OwnerID, &s.Exercise, &s.Tags, &s.Marker, &s.Kilos, &s.Reps, &s.CreatedAt)
		if s.Tags == nil {
			s.Tags = []string{}
		}
		return s, err
	})
	if err != nil {
		return nil, fmt.Errorf("collect gym sets: %w", err)
	}

	span.SetAttributes(attribute.Int("entries", len(sets)))
	return sets, nil
}

package nutrition

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

func (r *Repo) Write(ctx context.Context, owner string, m Meal) (_ Meal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutrition.write")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	var id int
	if err := r.db.QueryRow(
		ctx,
		`INSERT INTO meal
				(owner_id, name, kcal, protein, carbs, fat, eaten_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id;`,
		owner, m.Name, m.Kcal, m.Protein, m.Carbs, m.Fat, m.EatenAt,
	).Scan(&id); err != nil {
		return Meal{}, fmt.Errorf("insert meal: %w", err)
	}

	m.OwnerID = owner
	return m.WithID(id), nil
}

func (r *Repo) Read(ctx context.Context, owner string, w rollup.Window) (_ []Meal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutrition.read")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.String("owner", owner))

	if len(w) == 0 {
		return []Meal{}, nil
	}

	from, to := w.Bounds()
	rows, err := r.db.Query(
		ctx,
		`SELECT id, owner_id, name, kcal, protein, carbs, fat, eaten_at
			FROM meal
			WHERE owner_id = $1 AND eaten_at >= $2 AND eaten_at < $3
			ORDER BY eaten_at, id;`,
		owner, from, to,
	)
	if err != nil {
		return nil, fmt.Errorf("query meals: %w", err)
	}

	meals, err := pgx.CollectRows(rows, pgx.RowToStructByPos[Meal])
	if err != nil {
		return nil, fmt.Errorf("collect meals: %w", err)
	}

	span.SetAttributes(attribute.Int("entries", len(meals)))
	return meals, nil
}

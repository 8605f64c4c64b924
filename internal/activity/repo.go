package activity

import (
	"context"
	"fmt"

	"github.com/2beens/fitrollup/internal/rollup"
	"github.com/2beens/fitrollup/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

// Repo is the postgres backed source of activity entries.
type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Write(ctx context.Context, owner string, d Day) (_ Day, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.activity.write")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	var id int
	if err := r.db.QueryRow(
		ctx,
		`INSERT INTO activity_day (owner_id, day, steps, minutes, calories)
			VALUES ($1, $2::date, $3, $4, $5)
		RETURNING id;`,
		owner, d.Date.String(), d.Steps, d.Minutes, d.Calories,
	).Scan(&id); err != nil {
		return Day{}, fmt.Errorf("insert activity day: %w", err)
	}

	d.OwnerID = owner
	return d.WithID(id), nil
}

func (r *Repo) Read(ctx context.Context, owner string, w rollup.Window) (_ []Day, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.activity.read")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(
		attribute.String("owner", owner),
		attribute.Int("window.size", len(w)),
	)

	if len(w) == 0 {
		return []Day{}, nil
	}

	rows, err := r.db.Query(
		ctx,
		`SELECT id, owner_id, to_char(day, 'YYYY-MM-DD'), steps, minutes, calories
			FROM activity_day
			WHERE owner_id = $1 AND day BETWEEN $2::date AND $3::date
			ORDER BY day, id;`,
		owner, w.First().String(), w.Last().String(),
	)
	if err != nil {
		return nil, fmt.Errorf("query activity days: %w", err)
	}

	days, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (Day, error) {
		var (
			d    Day
			date string
		)
		if err := row.Scan(&d.ID, &d.OwnerID, &date, &d.Steps, &d.Minutes, &d.Calories); err != nil {
			return Day{}, err
		}
		d.Date = rollup.DayKey(date)
		return d, nil
	})
	if err != nil {
		return nil, fmt.Errorf("collect activity days: %w", err)
	}

	span.SetAttributes(attribute.Int("entries", len(days)))
	return days, nil
}

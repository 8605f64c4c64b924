package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/fitrollup/internal/telemetry/tracing"
	"github.com/2beens/fitrollup/pkg"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrUserExists   = errors.New("user already exists")
)

// User owns the tracked entries. ID is what entries are keyed by.
type User struct {
	ID           string
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}

type PgUserRepo struct {
	db *pgxpool.Pool
}

func NewPgUserRepo(db *pgxpool.Pool) *PgUserRepo {
	return &PgUserRepo{
		db: db,
	}
}

func (r *PgUserRepo) ByUsername(ctx context.Context, username string) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.user.byUsername")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	var u User
	if err := r.db.QueryRow(
		ctx,
		`SELECT id, username, password_hash, created_at FROM app_user WHERE username = $1;`,
		username,
	).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get user [%s]: %w", username, err)
	}

	return &u, nil
}

func (r *PgUserRepo) Add(ctx context.Context, username, passwordHash string) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.user.add")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	u := &User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	}
	if _, err := r.db.Exec(
		ctx,
		`INSERT INTO app_user (id, username, password_hash, created_at) VALUES ($1, $2, $3, $4);`,
		u.ID, u.Username, u.PasswordHash, u.CreatedAt,
	); err != nil {
		if pkg.IsUniqueViolationError(err) {
			return nil, ErrUserExists
		}
		return nil, fmt.Errorf("insert user [%s]: %w", username, err)
	}

	return u, nil
}

// StaticUserRepo serves a single, preconfigured user. Used when there is no database.
type StaticUserRepo struct {
	user User
}

func NewStaticUserRepo(username, passwordHash string) *StaticUserRepo {
	return &StaticUserRepo{
		user: User{
			ID:           uuid.NewSHA1(uuid.NameSpaceOID, []byte(username)).String(),
			Username:     username,
			PasswordHash: passwordHash,
		},
	}
}

func (r *StaticUserRepo) ByUsername(_ context.Context, username string) (*User, error) {
	if username == "" || username != r.user.Username {
		return nil, ErrUserNotFound
	}
	u := r.user
	return &u, nil
}

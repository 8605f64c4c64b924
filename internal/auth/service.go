package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/2beens/fitrollup/pkg"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
)

const (
	DefaultTTL       = 24 * 7 * time.Hour
	sessionKeyPrefix = "fitrollup-session||"
	tokensSetKey     = "fitrollup-sessions"
	tokenLength      = 35

	fieldOwner     = "owner"
	fieldCreatedAt = "created_at"
)

var (
	ErrWrongCredentials = errors.New("wrong credentials")
	ErrNotLogged        = errors.New("not logged in")
)

type Credentials struct {
	Username string
	Password string
}

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=auth_test

type userRepo interface {
	ByUsername(ctx context.Context, username string) (*User, error)
}

// Service keeps login sessions in redis: token -> owner id and creation time.
type Service struct {
	users       userRepo
	redisClient *redis.Client
	ttl         time.Duration
	// ability to inject random string generator func for tokens (for unit and dev testing)
	RandStringFunc func(s int) (string, error)
}

func NewService(users userRepo, ttl time.Duration, redisClient *redis.Client) *Service {
	return &Service{
		users:          users,
		ttl:            ttl,
		redisClient:    redisClient,
		RandStringFunc: pkg.GenerateRandomString,
	}
}

func sessionKey(token string) string {
	return sessionKeyPrefix + token
}

func (s *Service) Login(ctx context.Context, creds Credentials, createdAt time.Time) (string, error) {
	user, err := s.users.ByUsername(ctx, creds.Username)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return "", ErrWrongCredentials
		}
		return "", err
	}
	if !pkg.CheckPasswordHash(creds.Password, user.PasswordHash) {
		return "", ErrWrongCredentials
	}

	token, err := s.RandStringFunc(tokenLength)
	if err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}

	key := sessionKey(token)
	if err := s.redisClient.HSet(ctx, key, fieldOwner, user.ID, fieldCreatedAt, createdAt.Unix()).Err(); err != nil {
		return "", fmt.Errorf("store session: %w", err)
	}
	if err := s.redisClient.Expire(ctx, key, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("set session ttl: %w", err)
	}
	// add token to the set of sessions, for cleanup
	if err := s.redisClient.SAdd(ctx, tokensSetKey, token).Err(); err != nil {
		return "", fmt.Errorf("register session: %w", err)
	}

	return token, nil
}

// Owner resolves a session token into the owner id it was issued for.
func (s *Service) Owner(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", ErrNotLogged
	}

	fields, err := s.redisClient.HGetAll(ctx, sessionKey(token)).Result()
	if err != nil {
		return "", fmt.Errorf("get session: %w", err)
	}

	owner, createdAt, ok := parseSession(fields)
	if !ok || time.Since(createdAt) > s.ttl {
		return "", ErrNotLogged
	}
	return owner, nil
}

func (s *Service) Logout(ctx context.Context, token string) (bool, error) {
	deleted, err := s.redisClient.Del(ctx, sessionKey(token)).Result()
	if err != nil {
		return false, err
	}

	// remove token from the set of sessions
	if err := s.redisClient.SRem(ctx, tokensSetKey, token).Err(); err != nil {
		return false, err
	}

	return deleted > 0, nil
}

// ScanAndClean runs through all sessions and drops the expired or broken ones.
func (s *Service) ScanAndClean(ctx context.Context) {
	tokens, err := s.redisClient.SMembers(ctx, tokensSetKey).Result()
	if err != nil {
		log.Errorf("auth service, scan and clean, get sessions: %s", err)
		return
	}

	if len(tokens) == 0 {
		log.Debugln("auth service, scan and clean abort, no sessions")
		return
	}

	log.Infof("auth service, scan and clean [%d sessions] start", len(tokens))
	var toRemove []string
	for _, token := range tokens {
		fields, err := s.redisClient.HGetAll(ctx, sessionKey(token)).Result()
		if err != nil {
			log.Errorf("auth service, scan and clean token %s: %s", token, err)
			continue
		}

		_, createdAt, ok := parseSession(fields)
		if !ok || time.Since(createdAt) > s.ttl {
			toRemove = append(toRemove, token)
		}
	}

	for _, token := range toRemove {
		if err := s.redisClient.Del(ctx, sessionKey(token)).Err(); err != nil {
			log.Errorf("auth service, clean token %s: %s", token, err)
			continue
		}
		if err := s.redisClient.SRem(ctx, tokensSetKey, token).Err(); err != nil {
			log.Errorf("auth service, clean token %s: %s", token, err)
		}
	}

	log.Infof("auth service, scan and clean done, removed %d sessions", len(toRemove))
}

func parseSession(fields map[string]string) (owner string, createdAt time.Time, ok bool) {
	owner = fields[fieldOwner]
	createdAtUnix, err := strconv.ParseInt(fields[fieldCreatedAt], 10, 64)
	if owner == "" || err != nil {
		return "", time.Time{}, false
	}
	return owner, time.Unix(createdAtUnix, 0), true
}

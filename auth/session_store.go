package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

var ErrSessionNotFound = errors.New("sesi tidak ditemukan")

// RefreshEntry disimpan di balik refresh token.
type RefreshEntry struct {
	UserID uuid.UUID `json:"user_id"`
	Email  string    `json:"email"`
	JTI    string    `json:"jti"`
}

// SessionStore menyimpan sesi aktif (jti access token) dan refresh token.
type SessionStore interface {
	SaveSession(ctx context.Context, jti, refreshToken string, ttl time.Duration) error
	SessionRefreshToken(ctx context.Context, jti string) (string, error)
	DeleteSession(ctx context.Context, jti string) error
	SaveRefresh(ctx context.Context, token string, entry RefreshEntry, ttl time.Duration) error
	TakeRefresh(ctx context.Context, token string) (RefreshEntry, error)
}

type RedisSessionStore struct {
	rdb *redis.Client
}

func NewRedisSessionStore(rdb *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{rdb: rdb}
}

func sessionKey(jti string) string { return "session:" + jti }
func refreshKey(token string) string { return "refresh:" + token }

func (s *RedisSessionStore) SaveSession(ctx context.Context, jti, refreshToken string, ttl time.Duration) error {
	if err := s.rdb.Set(ctx, sessionKey(jti), refreshToken, ttl).Err(); err != nil {
		return fmt.Errorf("simpan sesi: %w", err)
	}
	return nil
}

func (s *RedisSessionStore) SessionRefreshToken(ctx context.Context, jti string) (string, error) {
	v, err := s.rdb.Get(ctx, sessionKey(jti)).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrSessionNotFound
	}
	if err != nil {
		return "", fmt.Errorf("ambil sesi: %w", err)
	}
	return v, nil
}

func (s *RedisSessionStore) DeleteSession(ctx context.Context, jti string) error {
	refresh, err := s.SessionRefreshToken(ctx, jti)
	if err != nil && !errors.Is(err, ErrSessionNotFound) {
		return err
	}
	keys := []string{sessionKey(jti)}
	if refresh != "" {
		keys = append(keys, refreshKey(refresh))
	}
	if err := s.rdb.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("hapus sesi: %w", err)
	}
	return nil
}

func (s *RedisSessionStore) SaveRefresh(ctx context.Context, token string, entry RefreshEntry, ttl time.Duration) error {
	b, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	if err := s.rdb.Set(ctx, refreshKey(token), b, ttl).Err(); err != nil {
		return fmt.Errorf("simpan refresh token: %w", err)
	}
	return nil
}

// TakeRefresh mengambil sekaligus menghapus refresh token (sekali pakai).
func (s *RedisSessionStore) TakeRefresh(ctx context.Context, token string) (RefreshEntry, error) {
	v, err := s.rdb.GetDel(ctx, refreshKey(token)).Result()
	if errors.Is(err, redis.Nil) {
		return RefreshEntry{}, ErrSessionNotFound
	}
	if err != nil {
		return RefreshEntry{}, fmt.Errorf("ambil refresh token: %w", err)
	}
	var entry RefreshEntry
	if err := json.Unmarshal([]byte(v), &entry); err != nil {
		return RefreshEntry{}, fmt.Errorf("decode refresh token: %w", err)
	}
	return entry, nil
}

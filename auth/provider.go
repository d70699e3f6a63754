// Package auth adalah identity provider aplikasi: sign-in dengan email + password,
// sign-out, dan verifikasi access token terhadap sesi yang tersimpan di Redis.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/raflyryhnsyh/ApotekQu-sub001/config"
	"github.com/raflyryhnsyh/ApotekQu-sub001/models"
	"github.com/raflyryhnsyh/ApotekQu-sub001/service"
	"github.com/raflyryhnsyh/ApotekQu-sub001/utils"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	RoleAuthenticated = "authenticated"
	DefaultRefreshTTL = 7 * 24 * time.Hour
)

var ErrInvalidCredentials = errors.New("email atau password salah")

// dummyHash dipakai saat email tidak terdaftar supaya waktu respon tetap sama.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("apotekqu-dummy-password"), bcrypt.DefaultCost)

type User struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}

type Session struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
	ExpiresAt    int64  `json:"expires_at"`
	User         User   `json:"user"`
}

type Provider interface {
	SignInWithPassword(ctx context.Context, email, password string) (*Session, error)
	SignOut(ctx context.Context, accessToken string) error
	Refresh(ctx context.Context, refreshToken string) (*Session, error)
	Verify(ctx context.Context, accessToken string) (*utils.SessionClaims, error)
}

type PasswordProvider struct {
	users      service.AuthUserStore
	sessions   SessionStore
	secret     []byte
	ttl        time.Duration
	refreshTTL time.Duration
	now        func() time.Time
}

// NewPasswordProvider gagal kalau secret kosong: tanpa secret tidak ada token yang bisa dipercaya.
func NewPasswordProvider(users service.AuthUserStore, sessions SessionStore, secret string, ttl time.Duration) (*PasswordProvider, error) {
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET: %w", config.ErrMissingConfig)
	}
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &PasswordProvider{
		users:      users,
		sessions:   sessions,
		secret:     []byte(secret),
		ttl:        ttl,
		refreshTTL: DefaultRefreshTTL,
		now:        time.Now,
	}, nil
}

func (p *PasswordProvider) SignInWithPassword(ctx context.Context, email, password string) (*Session, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	u, err := p.users.AuthUserByEmail(ctx, email)
	if errors.Is(err, service.ErrNotFound) {
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return p.issue(ctx, u)
}

func (p *PasswordProvider) issue(ctx context.Context, u models.AuthUser) (*Session, error) {
	now := p.now()
	access, claims, err := utils.GenerateAccessToken(p.secret, u.ID, u.Email, RoleAuthenticated, p.ttl, now)
	if err != nil {
		return nil, err
	}
	refresh := uuid.NewString()

	if err := p.sessions.SaveSession(ctx, claims.ID, refresh, p.ttl); err != nil {
		return nil, err
	}
	entry := RefreshEntry{UserID: u.ID, Email: u.Email, JTI: claims.ID}
	if err := p.sessions.SaveRefresh(ctx, refresh, entry, p.refreshTTL); err != nil {
		return nil, err
	}

	return &Session{
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    "bearer",
		ExpiresIn:    int64(p.ttl / time.Second),
		ExpiresAt:    claims.ExpiresAt.Unix(),
		User:         User{ID: u.ID, Email: u.Email},
	}, nil
}

func (p *PasswordProvider) SignOut(ctx context.Context, accessToken string) error {
	claims, err := utils.VerifyToken(p.secret, accessToken)
	if err != nil {
		return err
	}
	return p.sessions.DeleteSession(ctx, claims.ID)
}

// Refresh menukar refresh token (sekali pakai) dengan sesi baru; sesi lama ikut dicabut.
func (p *PasswordProvider) Refresh(ctx context.Context, refreshToken string) (*Session, error) {
	entry, err := p.sessions.TakeRefresh(ctx, refreshToken)
	if errors.Is(err, ErrSessionNotFound) {
		return nil, utils.ErrInvalidToken
	}
	if err != nil {
		return nil, err
	}
	if err := p.sessions.DeleteSession(ctx, entry.JTI); err != nil {
		return nil, err
	}
	return p.issue(ctx, models.AuthUser{ID: entry.UserID, Email: entry.Email})
}

func (p *PasswordProvider) Verify(ctx context.Context, accessToken string) (*utils.SessionClaims, error) {
	claims, err := utils.VerifyToken(p.secret, accessToken)
	if err != nil {
		return nil, err
	}
	if _, err := p.sessions.SessionRefreshToken(ctx, claims.ID); err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return nil, utils.ErrInvalidToken
		}
		return nil, err
	}
	return claims, nil
}

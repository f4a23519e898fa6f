package auth

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/mesikahq/family-health/internal/activity"
	"github.com/mesikahq/family-health/internal/profile"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrNotLoggedIn        = errors.New("not logged in")
)

type Claims struct {
	jwt.RegisteredClaims
	ProfileID string `json:"profile_id"`
	Email     string `json:"email"`
}

type LoginResponse struct {
	Token   string               `json:"token"`
	Profile *profile.UserProfile `json:"profile"`
}

type Service interface {
	Login(ctx context.Context, email, password string) (*LoginResponse, error)
	Logout(ctx context.Context) error
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
	Session() *Session
}

// Config carries the demo account and token settings. The credential check
// is a fixed single-account comparison; there is no user registry behind
// it. LoginDelay mimics the UI's simulated latency and defaults to zero.
type Config struct {
	DemoEmail        string
	DemoPasswordHash string
	JWTSecret        string
	TokenExpiry      time.Duration
	LoginDelay       time.Duration
}

type service struct {
	cfg      Config
	session  *Session
	profiles profile.Service
	activity activity.Service
}

func NewService(cfg Config, session *Session, profiles profile.Service, act activity.Service) Service {
	if cfg.TokenExpiry == 0 {
		cfg.TokenExpiry = 24 * time.Hour
	}
	return &service{cfg: cfg, session: session, profiles: profiles, activity: act}
}

// Login checks the submitted credentials against the configured demo
// account. Failure leaves all prior state untouched and returns a
// user-visible error.
func (s *service) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	if s.cfg.LoginDelay > 0 {
		select {
		case <-time.After(s.cfg.LoginDelay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	if email != s.cfg.DemoEmail {
		s.logAuthEvent(ctx, activity.EventLogin, "failure")
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.cfg.DemoPasswordHash), []byte(password)); err != nil {
		s.logAuthEvent(ctx, activity.EventLogin, "failure")
		return nil, ErrInvalidCredentials
	}

	p, err := s.profiles.Get(ctx)
	if err != nil {
		return nil, err
	}

	token, err := s.generateToken(p)
	if err != nil {
		return nil, err
	}

	s.session.set(p.ID, p.Email)
	s.logAuthEvent(ctx, activity.EventLogin, "success")

	return &LoginResponse{Token: token, Profile: p}, nil
}

func (s *service) Logout(ctx context.Context) error {
	if !s.session.Active() {
		return ErrNotLoggedIn
	}
	s.session.clear()
	s.logAuthEvent(ctx, activity.EventLogout, "success")
	return nil
}

func (s *service) generateToken(p *profile.UserProfile) (string, error) {
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.cfg.TokenExpiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ID:        uuid.New().String(),
			Subject:   p.ID,
		},
		ProfileID: p.ID,
		Email:     p.Email,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

// ValidateToken verifies the signature and expiry, and additionally
// requires the process-wide session to still be active, so logout
// invalidates outstanding tokens.
func (s *service) ValidateToken(ctx context.Context, tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	if !s.session.Active() || s.session.ProfileID() != claims.ProfileID {
		return nil, ErrNotLoggedIn
	}
	return claims, nil
}

func (s *service) Session() *Session {
	return s.session
}

func (s *service) logAuthEvent(ctx context.Context, eventType activity.EventType, status string) {
	s.activity.LogEvent(ctx, &activity.Event{
		EventType: eventType,
		Action:    string(eventType),
		Resource:  "session",
		Details:   status,
	})
}

// HashPassword generates the bcrypt hash carried in configuration for the
// demo account.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

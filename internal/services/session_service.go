package services

import (
	"strings"
	"time"

	"Shelved/internal/apierror"
	"Shelved/internal/config"
	"Shelved/internal/models"
	"Shelved/internal/repository"

	"github.com/golang-jwt/jwt/v5"
)

const SessionCookieName = "shelved_session"

// Claims is the signed session payload carried in the cookie.
type Claims struct {
	UserID            uint   `json:"uid"`
	Email             string `json:"email"`
	Role              string `json:"role"`
	MaxClearanceLevel *int   `json:"max_clearance_level,omitempty"`
	jwt.RegisteredClaims
}

// MaxClearance returns the clearance ceiling for filtering, nil meaning
// unlimited. Admins are never clearance-gated.
func (c *Claims) MaxClearance() *int {
	if c == nil || c.Role == models.RoleAdmin {
		return nil
	}
	return c.MaxClearanceLevel
}

type SessionService interface {
	Login(email, password string) (*models.User, string, error)
	Parse(token string) (*Claims, error)
	TTL() time.Duration
}

type sessionServiceImpl struct {
	userRepo      repository.UserRepository
	configuration *config.Configuration
}

func NewSessionService(userRepository repository.UserRepository, configuration *config.Configuration) SessionService {
	return &sessionServiceImpl{userRepo: userRepository, configuration: configuration}
}

func (s *sessionServiceImpl) TTL() time.Duration {
	return time.Duration(s.configuration.Session.TTLMinutes) * time.Minute
}

func (s *sessionServiceImpl) Login(email, password string) (*models.User, string, error) {
	user, err := s.userRepo.FindByEmail(strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, "", err
	}
	if user == nil {
		return nil, "", apierror.Unauthorized("invalid credentials")
	}
	if user.Active != 1 {
		return nil, "", apierror.Forbidden("account disabled")
	}
	if !CheckPassword(user.PasswordHash, password) {
		return nil, "", apierror.Unauthorized("invalid credentials")
	}

	now := time.Now()
	claims := &Claims{
		UserID:            user.ID,
		Email:             user.Email,
		Role:              user.Role,
		MaxClearanceLevel: user.MaxClearanceLevel,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.TTL())),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(s.configuration.Session.Secret))
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *sessionServiceImpl) Parse(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, apierror.Unauthorized("unexpected signing method")
		}
		return []byte(s.configuration.Session.Secret), nil
	})
	if err != nil || !token.Valid {
		return nil, apierror.Unauthorized("invalid session")
	}
	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, apierror.Unauthorized("invalid session")
	}
	return claims, nil
}

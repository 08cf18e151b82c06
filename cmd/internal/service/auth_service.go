package service

import (
	"crypto/subtle"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/gommon/log"
	"github.com/thandap/great-looks-checkin-self/cmd/internal/utils/apierror"
)

// Authorizer answers the only question privileged operations ask. How
// credentials are issued lives behind it, so call sites never change
// when the scheme does.
type Authorizer interface {
	IsAuthorized(credential string) bool
}

type LoginRequest struct {
	Token string `json:"token" validate:"required"`
}

type LoginResponse struct {
	SessionToken string `json:"session_token"`
	ExpiresAt    string `json:"expires_at"`
}

// DefaultAuthService authorizes against a single shared admin secret.
// It also issues short-lived HS256 session tokens signed with that
// secret, and accepts either form as a credential.
type DefaultAuthService struct {
	secret     string
	sessionTTL time.Duration
}

func NewAuthService(secret string, sessionTTL time.Duration) *DefaultAuthService {
	return &DefaultAuthService{secret: secret, sessionTTL: sessionTTL}
}

func (a *DefaultAuthService) IsAuthorized(credential string) bool {
	if a.secret == "" || credential == "" {
		return false
	}
	if subtle.ConstantTimeCompare([]byte(credential), []byte(a.secret)) == 1 {
		return true
	}
	return a.isValidSession(credential)
}

func (a *DefaultAuthService) Login(req *LoginRequest) (*LoginResponse, apierror.ErrorResponse) {
	if !a.IsAuthorized(req.Token) {
		return nil, apierror.ForbiddenError
	}

	expiresAt := time.Now().UTC().Add(a.sessionTTL)
	claims := jwt.RegisteredClaims{
		Subject:   "admin",
		IssuedAt:  jwt.NewNumericDate(time.Now().UTC()),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(a.secret))
	if err != nil {
		log.Errorf("failed to sign admin session token: %v", err)
		return nil, apierror.InternalServerError
	}

	return &LoginResponse{
		SessionToken: signed,
		ExpiresAt:    expiresAt.Format(time.RFC3339),
	}, nil
}

func (a *DefaultAuthService) isValidSession(credential string) bool {
	token, err := jwt.ParseWithClaims(credential, &jwt.RegisteredClaims{},
		func(t *jwt.Token) (any, error) {
			return []byte(a.secret), nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	return err == nil && token.Valid
}

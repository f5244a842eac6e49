package session

import (
	"net/http"
	"time"

	"github.com/go-chi/jwtauth/v5"
)

// CookieName is the cookie carrying the admin session token
const CookieName = "admin_session"

type Service interface {
	// Generate issues a signed admin session token
	Generate() (token string, expiresAt int64, err error)
	// JWTAuth exposes the verifier used by the router middleware
	JWTAuth() *jwtauth.JWTAuth
	// Cookie wraps a token into the http-only session cookie
	Cookie(token string, expiresAt int64) *http.Cookie
	// ClearCookie returns an expired cookie that logs the operator out
	ClearCookie() *http.Cookie
}

type sessionService struct {
	expiration string
	tokenAuth  *jwtauth.JWTAuth
}

func NewSessionService(secretKey string, expiration string) Service {
	return &sessionService{
		expiration: expiration,
		tokenAuth:  jwtauth.New("HS256", []byte(secretKey), nil),
	}
}

func (s *sessionService) JWTAuth() *jwtauth.JWTAuth {
	return s.tokenAuth
}

func (s *sessionService) Generate() (string, int64, error) {
	expDuration, err := time.ParseDuration(s.expiration)
	if err != nil {
		return "", 0, err
	}
	expiresAt := time.Now().Add(expDuration).Unix()

	_, tokenString, err := s.tokenAuth.Encode(map[string]interface{}{
		"role": "admin",
		"type": "session",
		"exp":  expiresAt,
	})
	return tokenString, expiresAt, err
}

func (s *sessionService) Cookie(token string, expiresAt int64) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Unix(expiresAt, 0),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	}
}

func (s *sessionService) ClearCookie() *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	}
}

// FromCookie extracts the session token for jwtauth.Verify
func FromCookie(r *http.Request) string {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

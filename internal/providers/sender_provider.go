package providers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
	"wxledger/internal/models"
	"wxledger/internal/structures"

	"github.com/golang-jwt/jwt/v5"
)

const (
	SenderHeader        = "X-Sender"
	authorizationHeader = "Authorization"
	bearerPrefix        = "Bearer "
)

var ErrInvalidToken = errors.New("invalid token")

// SenderProviderInterface establishes the caller identity of an HTTP request.
type SenderProviderInterface interface {
	Resolve(r *http.Request) (models.Identity, error)
	IssueToken(identity models.Identity) (string, error)
}

// headerSender trusts the X-Sender header. Used when auth is disabled.
type headerSender struct{}

func (h *headerSender) Resolve(r *http.Request) (models.Identity, error) {
	return models.Identity(r.Header.Get(SenderHeader)), nil
}

func (h *headerSender) IssueToken(_ models.Identity) (string, error) {
	return "", errors.New("token auth is disabled")
}

// JWTSender reads the identity from the subject of an HS256 bearer token.
type JWTSender struct {
	secret []byte
	ttl    time.Duration
}

func NewSenderProvider(conf *structures.Config) SenderProviderInterface {
	if !conf.Auth.Enabled {
		return &headerSender{}
	}
	return &JWTSender{
		secret: []byte(conf.Auth.Secret),
		ttl:    conf.Auth.TokenTTL,
	}
}

func (j *JWTSender) IssueToken(identity models.Identity) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:  string(identity),
		IssuedAt: jwt.NewNumericDate(time.Now()),
	}
	if j.ttl != 0 {
		claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(j.ttl))
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(j.secret)
}

// Resolve returns Anonymous when no bearer token is sent. A token that is
// present but does not verify is an error.
func (j *JWTSender) Resolve(r *http.Request) (models.Identity, error) {
	header := r.Header.Get(authorizationHeader)
	if header == "" {
		return models.Anonymous, nil
	}
	if !strings.HasPrefix(header, bearerPrefix) {
		return models.Anonymous, ErrInvalidToken
	}

	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(strings.TrimPrefix(header, bearerPrefix), claims, func(t *jwt.Token) (interface{}, error) {
		return j.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return models.Anonymous, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if !token.Valid || claims.Subject == "" {
		return models.Anonymous, ErrInvalidToken
	}

	return models.Identity(claims.Subject), nil
}

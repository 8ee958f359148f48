package jwt

//go:generate go run go.uber.org/mock/mockgen -source=./jwt.go -destination=./mocks/jwt_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"beautyhub/config"
	"beautyhub/infras/otel"
	"beautyhub/shared/constant"
	"beautyhub/shared/timezone"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
	ErrInvalidClaim = errors.New("invalid token claim")
)

const (
	bearerScheme = "Bearer"
	leeway       = 30 * time.Second
)

type Kind string

const (
	AccessToken  Kind = "access"
	RefreshToken Kind = "refresh"
)

// Identity is what a token asserts about its holder.
type Identity struct {
	AccountID string
	Email     string
	Role      string
}

// Claims carries the account id in the standard subject claim.
type Claims struct {
	Email string `json:"email"`
	Role  string `json:"role,omitempty"`
	Kind  Kind   `json:"kind"`
	jwt.RegisteredClaims
}

func (c *Claims) Identity() Identity {
	return Identity{AccountID: c.Subject, Email: c.Email, Role: c.Role}
}

type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
}

type JWT interface {
	Issue(ctx context.Context, identity Identity) (*TokenPair, error)
	Verify(ctx context.Context, token string, kind Kind) (*Claims, error)
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)
}

type signer struct {
	secret []byte
	ttl    time.Duration
}

type jwtImpl struct {
	issuer  string
	otel    otel.Otel
	signers map[Kind]signer
}

func New(cfg *config.Config, otl otel.Otel) JWT {
	return &jwtImpl{
		issuer: cfg.App.Name,
		otel:   otl,
		signers: map[Kind]signer{
			AccessToken:  {secret: []byte(cfg.JWT.AccessSecret), ttl: time.Duration(cfg.JWT.AccessExpireMin) * time.Minute},
			RefreshToken: {secret: []byte(cfg.JWT.RefreshSecret), ttl: time.Duration(cfg.JWT.RefreshExpireMin) * time.Minute},
		},
	}
}

func (s *jwtImpl) Issue(ctx context.Context, identity Identity) (pair *TokenPair, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".jwt.Issue")
	defer scope.End()
	defer scope.TraceIfError(&err)

	now := timezone.Now()

	access, err := s.sign(identity, AccessToken, now)
	if err != nil {
		return nil, err
	}

	refresh, err := s.sign(identity, RefreshToken, now)
	if err != nil {
		return nil, err
	}

	return &TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    bearerScheme,
		ExpiresIn:    int64(s.signers[AccessToken].ttl.Seconds()),
	}, nil
}

func (s *jwtImpl) sign(identity Identity, kind Kind, now time.Time) (string, error) {
	key := s.signers[kind]

	claims := Claims{
		Email: identity.Email,
		Role:  identity.Role,
		Kind:  kind,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   identity.AccountID,
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(key.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(key.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign %s token: %w", kind, err)
	}

	return signed, nil
}

func (s *jwtImpl) Verify(ctx context.Context, token string, kind Kind) (*Claims, error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".jwt.Verify")
	defer scope.End()

	key, ok := s.signers[kind]
	if !ok {
		return nil, fmt.Errorf("%w: unknown kind %q", ErrInvalidClaim, kind)
	}

	claims := &Claims{}

	_, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return key.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(leeway),
		jwt.WithTimeFunc(timezone.Now),
	)

	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, ErrExpiredToken
	case err != nil:
		return nil, ErrInvalidToken
	case claims.Kind != kind, claims.Subject == "", claims.Email == "":
		return nil, ErrInvalidClaim
	}

	return claims, nil
}

func (s *jwtImpl) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := s.Verify(ctx, refreshToken, RefreshToken)
	if err != nil {
		return nil, fmt.Errorf("invalid refresh token: %w", err)
	}

	return s.Issue(ctx, claims.Identity())
}

// BearerToken pulls the token out of an Authorization header value.
func BearerToken(header string) (string, bool) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, bearerScheme) {
		return "", false
	}

	token = strings.TrimSpace(token)

	return token, token != ""
}

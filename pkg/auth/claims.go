// Package auth reads the identity of the person submitting a request from
// the bearer token set by the front end.
package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/golang-jwt/jwt/v4"
)

var (
	ErrNoToken        = errors.New("no bearer token in request")
	ErrMalformedToken = errors.New("malformed bearer token")
)

// Claims are the identity claims we care about.
type Claims struct {
	Name              string `json:"name"`
	Email             string `json:"email"`
	PreferredUsername string `json:"preferred_username"`
}

// EmailShort is the short principal, falling back to the email when the
// token carries no preferred username.
func (c *Claims) EmailShort() string {
	if c.PreferredUsername != "" {
		return c.PreferredUsername
	}

	return c.Email
}

type ClaimsReader interface {
	Read(ctx context.Context, rawToken string) (*Claims, error)
}

// UnverifiedReader decodes the token without checking the signature, the
// token is only used to fill in who submitted the request.
type UnverifiedReader struct {
	parser *jwt.Parser
}

var _ ClaimsReader = &UnverifiedReader{}

func (u *UnverifiedReader) Read(_ context.Context, rawToken string) (*Claims, error) {
	claims := jwt.MapClaims{}

	_, _, err := u.parser.ParseUnverified(rawToken, claims)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMalformedToken, err)
	}

	return &Claims{
		Name:              stringClaim(claims, "name"),
		Email:             stringClaim(claims, "email"),
		PreferredUsername: stringClaim(claims, "preferred_username"),
	}, nil
}

func stringClaim(claims jwt.MapClaims, key string) string {
	s, _ := claims[key].(string)

	return s
}

func NewUnverifiedReader() *UnverifiedReader {
	return &UnverifiedReader{
		parser: jwt.NewParser(),
	}
}

// OIDCReader verifies the token against the issuer before reading it.
type OIDCReader struct {
	verifier *oidc.IDTokenVerifier
}

var _ ClaimsReader = &OIDCReader{}

func (o *OIDCReader) Read(ctx context.Context, rawToken string) (*Claims, error) {
	token, err := o.verifier.Verify(ctx, rawToken)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMalformedToken, err)
	}

	claims := &Claims{}

	err = token.Claims(claims)
	if err != nil {
		return nil, fmt.Errorf("reading claims: %w", err)
	}

	return claims, nil
}

func NewOIDCReader(ctx context.Context, issuerURL, clientID string) (*OIDCReader, error) {
	provider, err := oidc.NewProvider(ctx, issuerURL)
	if err != nil {
		return nil, fmt.Errorf("discovering issuer %s: %w", issuerURL, err)
	}

	return NewOIDCReaderFromVerifier(provider.Verifier(&oidc.Config{ClientID: clientID})), nil
}

func NewOIDCReaderFromVerifier(verifier *oidc.IDTokenVerifier) *OIDCReader {
	return &OIDCReader{
		verifier: verifier,
	}
}

// BearerToken returns the token from the Authorization header, or
// ErrNoToken if the header is missing.
func BearerToken(r *http.Request) (string, error) {
	header := strings.TrimSpace(r.Header.Get("Authorization"))
	if header == "" {
		return "", ErrNoToken
	}

	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
		return "", ErrMalformedToken
	}

	return strings.TrimSpace(token), nil
}

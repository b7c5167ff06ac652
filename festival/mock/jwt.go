package mock

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// createJWT creates a signed access token for username
func (s *Service) createJWT(username string, roles []string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"iss":   s.Issuer,
		"sub":   username,
		"exp":   now.Add(s.TokenTTL).Unix(),
		"iat":   now.Unix(),
		"roles": roles,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	return token.SignedString(s.PrivateKey)
}

// authenticate returns the subject of a valid bearer token
func (s *Service) authenticate(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	raw, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || raw == "" {
		return "", errors.New("no auth")
	}
	token, err := jwt.Parse(raw, func(token *jwt.Token) (interface{}, error) {
		return &s.PrivateKey.PublicKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}), jwt.WithIssuer(s.Issuer))
	if err != nil {
		return "", err
	}
	return token.Claims.GetSubject()
}

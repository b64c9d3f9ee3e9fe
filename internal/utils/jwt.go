package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTTL is how long an issued access token stays valid.
const TokenTTL = time.Hour

// SignClaims signs an arbitrary claim payload with HS256 and a fixed
// expiry. The payload is embedded as-is; callers are expected to include
// at least an "email" claim but nothing is enforced here.
func SignClaims(payload map[string]interface{}, secret []byte) (string, error) {
	if len(secret) == 0 {
		return "", errors.New("signing secret is not configured")
	}

	claims := jwt.MapClaims{}
	for k, v := range payload {
		claims[k] = v
	}
	claims["exp"] = jwt.NewNumericDate(time.Now().Add(TokenTTL))

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// ParseClaims verifies a token string against the secret and returns the
// decoded claims. Expired or tampered tokens come back as errors.
func ParseClaims(tokenStr string, secret []byte) (jwt.MapClaims, error) {
	if len(secret) == 0 {
		return nil, errors.New("signing secret is not configured")
	}

	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		return secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}

// ClaimEmail pulls the subject email out of decoded claims. Returns an
// empty string when the claim is absent or not a string.
func ClaimEmail(claims jwt.MapClaims) string {
	email, _ := claims["email"].(string)
	return email
}

// Package auth mints and verifies device tokens: HS256 JWTs naming the
// scanner device and the events it may work on.
package auth

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dmitrijs2005/gophscan/internal/common"
)

// DeviceClaims are the claims of a device token. An empty Events list grants
// every event.
type DeviceClaims struct {
	jwt.RegisteredClaims
	DeviceID string   `json:"device"`
	Events   []string `json:"events,omitempty"`
}

// AllowsEvent reports whether the token covers the event slug.
func (c *DeviceClaims) AllowsEvent(slug string) bool {
	return len(c.Events) == 0 || slices.Contains(c.Events, slug)
}

// GenerateToken signs a token for deviceID valid from now for validity. A
// zero validity issues a token without expiry.
func GenerateToken(deviceID string, events []string, secretKey []byte, now time.Time, validity time.Duration) (string, error) {
	claims := DeviceClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  deviceID,
			IssuedAt: jwt.NewNumericDate(now),
		},
		DeviceID: deviceID,
		Events:   events,
	}
	if validity > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(validity))
	}

	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return s, nil
}

// ParseToken verifies tokenString and returns its claims. Expired tokens
// yield common.ErrTokenExpired, anything else unusable common.ErrInvalidToken.
func ParseToken(tokenString string, secretKey []byte) (*DeviceClaims, error) {
	claims := &DeviceClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, common.ErrTokenExpired
	case err != nil:
		return nil, fmt.Errorf("%w: %v", common.ErrInvalidToken, err)
	case !token.Valid || claims.DeviceID == "":
		return nil, common.ErrInvalidToken
	}
	return claims, nil
}

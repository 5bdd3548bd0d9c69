package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/lumyn/showdown/internal/config"
	"github.com/lumyn/showdown/internal/game"
	"github.com/lumyn/showdown/internal/pkg/security"
)

// CustomClaims is the wire form of a seat ticket.
type CustomClaims struct {
	jwt.RegisteredClaims

	Room string `json:"room"`
	Role string `json:"role"`
}

// golangJWTSigner implements the Signer interface using the golang-jwt library.
type golangJWTSigner struct {
	method jwt.SigningMethod
	key    string
	jtiLen uint32
	issuer string
}

var _ Signer = (*golangJWTSigner)(nil)

// NewGolangJWTSigner creates a new signer with the provided JWT config and signing key.
func NewGolangJWTSigner(cfg *config.JWT, key string) Signer {
	return &golangJWTSigner{
		method: jwt.SigningMethodHS256,
		key:    key,
		jtiLen: cfg.JTILength,
		issuer: cfg.Issuer,
	}
}

// Sign generates a signed seat ticket valid for the given duration.
func (s *golangJWTSigner) Sign(claims Claims, duration time.Duration) (string, error) {
	jti, err := security.GenerateRandomBytesURLEncoded(s.jtiLen)
	if err != nil {
		return "", fmt.Errorf("generate jti with length %d: %w", s.jtiLen, err)
	}

	custom := &CustomClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(duration)),
			Issuer:    s.issuer,
			Subject:   claims.PlayerID,
			ID:        jti,
		},
		Room: claims.Room,
		Role: string(claims.Role),
	}

	token := jwt.NewWithClaims(s.method, custom)
	signedToken, err := token.SignedString([]byte(s.key))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signedToken, nil
}

// Verify parses and validates a ticket string and returns the associated Claims if valid.
func (s *golangJWTSigner) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &CustomClaims{}, func(_ *jwt.Token) (any, error) {
		return []byte(s.key), nil
	}, jwt.WithValidMethods([]string{s.method.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("parse with claims: %w", err)
	}

	customClaims, ok := token.Claims.(*CustomClaims)
	if !ok {
		return nil, fmt.Errorf("unknown claims type: %T", token.Claims)
	}

	role := game.Role(customClaims.Role)
	if !role.Valid() {
		return nil, fmt.Errorf("invalid role claim: %q", customClaims.Role)
	}

	claims := &Claims{
		PlayerID: customClaims.Subject,
		Room:     customClaims.Room,
		Role:     role,
	}

	return claims, nil
}

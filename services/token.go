package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

var (
	ErrInvalidToken     = errors.New("invalid token")
	ErrWrongTokenType   = errors.New("invalid token type")
	ErrTokenExpired     = errors.New("token has expired")
	ErrInvalidTokenUser = errors.New("invalid user ID in token")
)

// TokenClaims is what a verified bearer credential yields.
type TokenClaims struct {
	UserID    string
	SessionID string
	Type      string
}

// TokenService signs and verifies HS256 JWTs carrying the user identity and
// the session the token was issued under.
type TokenService struct {
	secret     []byte
	issuer     string
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewTokenService(secret, issuer string, accessTTL, refreshTTL time.Duration) *TokenService {
	return &TokenService{
		secret:     []byte(secret),
		issuer:     issuer,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

// GenerateAccessToken issues a short-lived access token.
func (s *TokenService) GenerateAccessToken(userID, sessionID string) (string, error) {
	return s.generate(userID, sessionID, TokenTypeAccess, s.accessTTL)
}

// GenerateRefreshToken issues a long-lived refresh token.
func (s *TokenService) GenerateRefreshToken(userID, sessionID string) (string, error) {
	return s.generate(userID, sessionID, TokenTypeRefresh, s.refreshTTL)
}

func (s *TokenService) generate(userID, sessionID, tokenType string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id":    userID,
		"session_id": sessionID,
		"type":       tokenType,
		"iss":        s.issuer,
		"iat":        now.Unix(),
		"exp":        now.Add(ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ValidateToken parses and verifies a token of the wanted type.
func (s *TokenService) ValidateToken(tokenString, wantType string) (*TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithIssuer(s.issuer), jwt.WithExpirationRequired())
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	if tokenType, _ := claims["type"].(string); tokenType != wantType {
		return nil, ErrWrongTokenType
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return nil, ErrInvalidTokenUser
	}

	sessionID, _ := claims["session_id"].(string)

	return &TokenClaims{
		UserID:    userID,
		SessionID: sessionID,
		Type:      wantType,
	}, nil
}

package service_jwt_auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var ErrInvalidToken = errors.New("invalid token")

// Claims is the subset of the token the service cares about.
type Claims struct {
	Username  string
	JTI       string
	ExpiresAt time.Time
}

// Service issues and verifies HS256 tokens. Every token carries a jti so a
// logout can revoke it individually.
type Service struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

func New(secret string, issuer string, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = 6 * time.Hour
	}
	return &Service{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    ttl,
	}
}

func (s *Service) Issue(username string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"iss":      s.issuer,
		"username": username,
		"jti":      uuid.New().String(),
		"iat":      now.Unix(),
		"exp":      now.Add(s.ttl).Unix(),
	})
	return token.SignedString(s.secret)
}

func (s *Service) Parse(tokenString string) (Claims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return Claims{}, ErrInvalidToken
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, ErrInvalidToken
	}

	username, _ := mapClaims["username"].(string)
	jti, _ := mapClaims["jti"].(string)
	if username == "" || jti == "" {
		return Claims{}, ErrInvalidToken
	}

	exp, err := mapClaims.GetExpirationTime()
	if err != nil || exp == nil {
		return Claims{}, ErrInvalidToken
	}

	return Claims{
		Username:  username,
		JTI:       jti,
		ExpiresAt: exp.Time,
	}, nil
}

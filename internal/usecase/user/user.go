package usecase_user

import (
	"context"
	"errors"
	"time"

	"github.com/mblais/connect4/core/internal/model"
	service_jwt_auth "github.com/mblais/connect4/core/internal/service/auth/jwt"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUnauthorized = errors.New("invalid username or password")
	ErrUserNotFound = errors.New("user not found")
	ErrInternal     = errors.New("internal error")
)

//go:generate mockery --name=UserQueryRepository --output=./mocks --filename=user_query_repository.go
type UserQueryRepository interface {
	GetByUsername(ctx context.Context, username string) (model.User, error)
}

//go:generate mockery --name=TokenService --output=./mocks --filename=token_service.go
type TokenService interface {
	Issue(username string) (string, error)
	Parse(token string) (service_jwt_auth.Claims, error)
}

// TokenBlacklist revokes token ids until their natural expiry.
//
//go:generate mockery --name=TokenBlacklist --output=./mocks --filename=token_blacklist.go
type TokenBlacklist interface {
	Blacklist(jti string, ttl time.Duration) error
	IsBlacklisted(jti string) (bool, error)
}

type Usecase struct {
	users     UserQueryRepository
	tokens    TokenService
	blacklist TokenBlacklist
}

func New(users UserQueryRepository, tokens TokenService, blacklist TokenBlacklist) *Usecase {
	return &Usecase{
		users:     users,
		tokens:    tokens,
		blacklist: blacklist,
	}
}

// Login verifies the password and returns a fresh token. Unknown users and
// wrong passwords are indistinguishable to the caller.
func (u *Usecase) Login(ctx context.Context, username, password string) (string, error) {
	user, err := u.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return "", ErrUnauthorized
		}
		return "", errors.Join(ErrInternal, err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.HashPwd), []byte(password)) != nil {
		return "", ErrUnauthorized
	}

	token, err := u.tokens.Issue(user.Username)
	if err != nil {
		return "", errors.Join(ErrInternal, err)
	}
	return token, nil
}

// Logout revokes the token by blacklisting its jti until the token would
// have expired anyway.
func (u *Usecase) Logout(ctx context.Context, token string) error {
	claims, err := u.tokens.Parse(token)
	if err != nil {
		return ErrUnauthorized
	}

	ttl := time.Until(claims.ExpiresAt)
	if ttl <= 0 {
		return nil
	}
	if err := u.blacklist.Blacklist(claims.JTI, ttl); err != nil {
		return errors.Join(ErrInternal, err)
	}
	return nil
}

// Validate parses the token and rejects revoked ones. Returns the username
// the token was issued to.
func (u *Usecase) Validate(ctx context.Context, token string) (string, error) {
	claims, err := u.tokens.Parse(token)
	if err != nil {
		return "", ErrUnauthorized
	}

	revoked, err := u.blacklist.IsBlacklisted(claims.JTI)
	if err != nil {
		return "", errors.Join(ErrInternal, err)
	}
	if revoked {
		return "", ErrUnauthorized
	}
	return claims.Username, nil
}

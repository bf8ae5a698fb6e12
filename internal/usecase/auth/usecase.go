package auth

import (
	"context"
	"errors"
	"time"

	"corporate-loan-backend/internal/domain/user"
	"corporate-loan-backend/pkg/id"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidRole        = errors.New("role must be USER or ADMIN")
)

type Usecase struct {
	users  user.Repository
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewUsecase(users user.Repository, secret string, ttl time.Duration) *Usecase {
	return &Usecase{
		users:  users,
		secret: []byte(secret),
		ttl:    ttl,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (u *Usecase) WithClock(now func() time.Time) *Usecase {
	u.now = now
	return u
}

type claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

func (u *Usecase) Login(ctx context.Context, in LoginInput) (*LoginResponse, error) {
	usr, err := u.users.GetByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, user.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !usr.Active {
		return nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(in.Password)) != nil {
		return nil, ErrInvalidCredentials
	}
	tok, err := u.issue(usr)
	if err != nil {
		return nil, err
	}
	return &LoginResponse{Token: tok, Role: string(usr.Role)}, nil
}

func (u *Usecase) Register(ctx context.Context, email, password, role string) (*UserDTO, error) {
	r := user.Role(role)
	if r != user.RoleUser && r != user.RoleAdmin {
		return nil, ErrInvalidRole
	}

	_, err := u.users.GetByEmail(ctx, email)
	switch {
	case err == nil:
		return nil, user.ErrEmailTaken
	case !errors.Is(err, gorm.ErrRecordNotFound) && !errors.Is(err, user.ErrNotFound):
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	usr := &user.User{
		UserID:       id.NewID32(),
		Email:        email,
		PasswordHash: string(hash),
		Role:         r,
		Active:       true,
	}
	if err := u.users.Create(ctx, usr); err != nil {
		return nil, err
	}
	return &UserDTO{
		UserID:    usr.UserID,
		Email:     usr.Email,
		Role:      string(usr.Role),
		Active:    usr.Active,
		CreatedAt: usr.CreatedAt,
	}, nil
}

func (u *Usecase) issue(usr *user.User) (string, error) {
	now := u.now()
	c := claims{
		Role: string(usr.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   usr.Email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(u.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(u.secret)
}

// ParseToken verifies the bearer token and returns the actor identity
// (email) and role for the request context.
func (u *Usecase) ParseToken(raw string) (subject, role string, err error) {
	var c claims
	tok, err := jwt.ParseWithClaims(raw, &c, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return u.secret, nil
	})
	if err != nil || !tok.Valid {
		return "", "", ErrInvalidCredentials
	}
	return c.Subject, c.Role, nil
}

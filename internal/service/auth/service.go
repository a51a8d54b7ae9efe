package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"cinetix/internal/config"
	"cinetix/internal/domain"
	"cinetix/internal/repository"
)

// UserStore persists and looks up accounts.
type UserStore interface {
	CreateUser(ctx context.Context, username, passwordHash string, role domain.Role) (*domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
}

type Service struct {
	users      UserStore
	jwtSecret  string
	accessTTL  time.Duration
	bcryptCost int
}

func New(users UserStore, cfg config.AuthConfig) *Service {
	ttl := time.Duration(cfg.AccessTTLMin) * time.Minute
	if ttl <= 0 {
		ttl = time.Hour
	}

	cost := cfg.BcryptCost
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	return &Service{
		users:      users,
		jwtSecret:  cfg.JWTSecret,
		accessTTL:  ttl,
		bcryptCost: cost,
	}
}

// Register creates an account with a bcrypt-hashed password. An empty role
// defaults to the regular user role.
//
// Returns:
//   - *domain.User: the created account (password hash cleared).
//   - error: ErrUsernameTaken if the username exists, ErrInvalidRole for an
//     unknown role.
func (s *Service) Register(
	ctx context.Context,
	username, password string,
	role domain.Role,
) (*domain.User, error) {
	const op = "service.auth.Register"

	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, fmt.Errorf("%s:%w", op, ErrInvalidCredentials)
	}

	if role == "" {
		role = domain.RoleUser
	}
	if !role.Valid() {
		return nil, fmt.Errorf("%s:%w", op, ErrInvalidRole)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	u, err := s.users.CreateUser(ctx, username, string(hash), role)
	if err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, fmt.Errorf("%s:%w", op, ErrUsernameTaken)
		}

		return nil, fmt.Errorf("%s:%w", op, err)
	}

	u.PasswordHash = ""

	return u, nil
}

// Login checks credentials and issues a signed access token. Unknown
// usernames and wrong passwords are indistinguishable to the caller.
//
// Returns:
//   - string: the signed token.
//   - *domain.User: the authenticated account (password hash cleared).
//   - error: ErrInvalidCredentials on any authentication failure.
func (s *Service) Login(
	ctx context.Context,
	username, password string,
) (string, *domain.User, error) {
	const op = "service.auth.Login"

	u, err := s.users.GetUserByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", nil, fmt.Errorf("%s:%w", op, ErrInvalidCredentials)
		}

		return "", nil, fmt.Errorf("%s:%w", op, err)
	}

	if err := bcrypt.CompareHashAndPassword(
		[]byte(u.PasswordHash),
		[]byte(password),
	); err != nil {
		return "", nil, fmt.Errorf("%s:%w", op, ErrInvalidCredentials)
	}

	token, err := s.issueToken(u, time.Now())
	if err != nil {
		return "", nil, fmt.Errorf("%s:%w", op, err)
	}

	u.PasswordHash = ""

	return token, u, nil
}

package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"cinetix/internal/domain"
)

type UserRepo struct {
	pool *pgxpool.Pool
	db   DB
}

func (r *UserRepo) With(db DB) *UserRepo {
	cp := *r
	cp.db = db
	return &cp
}

func (r *UserRepo) handle() DB {
	if r.db != nil {
		return r.db
	}
	return r.pool
}

// CreateUser inserts a user with a pre-hashed password.
//
// Returns:
//   - *domain.User: the created user.
//   - error: repository.ErrConflict if the username is taken.
func (r *UserRepo) CreateUser(
	ctx context.Context,
	username, passwordHash string,
	role domain.Role,
) (*domain.User, error) {
	const op = "postgres.UserRepo.CreateUser"

	db := r.handle()

	u := domain.User{
		Username:     username,
		PasswordHash: passwordHash,
		Role:         role,
	}
	err := db.QueryRow(ctx,
		`INSERT INTO users(username, password_hash, role)
       	 VALUES ($1, $2, $3)
     	 RETURNING id, created_at`,
		username, passwordHash, string(role),
	).Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	return &u, nil
}

// GetUserByUsername retrieves a user by username.
//
// Returns:
//   - *domain.User: the user when found.
//   - error: repository.ErrNotFound if the user is not found.
func (r *UserRepo) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	const op = "postgres.UserRepo.GetUserByUsername"

	db := r.handle()

	var u domain.User
	var role string
	err := db.QueryRow(ctx,
		`SELECT id, username, password_hash, role, created_at
       	 FROM users WHERE username = $1`,
		username,
	).Scan(&u.ID, &u.Username, &u.PasswordHash, &role, &u.CreatedAt)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	u.Role = domain.Role(role)

	return &u, nil
}

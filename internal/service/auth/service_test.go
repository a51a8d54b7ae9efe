package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"cinetix/internal/config"
	"cinetix/internal/domain"
	"cinetix/internal/repository"
)

type fakeUserStore struct {
	users  map[string]*domain.User
	nextID int64
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[string]*domain.User)}
}

func (f *fakeUserStore) CreateUser(
	_ context.Context,
	username, passwordHash string,
	role domain.Role,
) (*domain.User, error) {
	if _, exists := f.users[username]; exists {
		return nil, repository.ErrConflict
	}

	f.nextID++
	u := &domain.User{
		ID:           f.nextID,
		Username:     username,
		PasswordHash: passwordHash,
		Role:         role,
		CreatedAt:    time.Now(),
	}
	f.users[username] = u

	cp := *u
	return &cp, nil
}

func (f *fakeUserStore) GetUserByUsername(_ context.Context, username string) (*domain.User, error) {
	u, ok := f.users[username]
	if !ok {
		return nil, repository.ErrNotFound
	}

	cp := *u
	return &cp, nil
}

func newTestService(store *fakeUserStore) *Service {
	return New(store, config.AuthConfig{
		JWTSecret:    "test-secret",
		AccessTTLMin: 5,
		BcryptCost:   bcrypt.MinCost,
	})
}

func TestRegister_HashesPasswordAndDefaultsRole(t *testing.T) {
	store := newFakeUserStore()
	svc := newTestService(store)

	u, err := svc.Register(context.Background(), "alice", "s3cret", "")
	require.NoError(t, err)

	assert.Equal(t, domain.RoleUser, u.Role)
	assert.Empty(t, u.PasswordHash)

	stored := store.users["alice"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "s3cret", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword(
		[]byte(stored.PasswordHash), []byte("s3cret")))
}

func TestRegister_DuplicateUsername(t *testing.T) {
	svc := newTestService(newFakeUserStore())

	_, err := svc.Register(context.Background(), "alice", "one", "")
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), "alice", "two", "")
	require.ErrorIs(t, err, ErrUsernameTaken)
}

func TestRegister_UnknownRole(t *testing.T) {
	svc := newTestService(newFakeUserStore())

	_, err := svc.Register(context.Background(), "bob", "pw", "superuser")
	require.ErrorIs(t, err, ErrInvalidRole)
}

func TestLogin_RoundTripsClaims(t *testing.T) {
	svc := newTestService(newFakeUserStore())

	_, err := svc.Register(context.Background(), "carol", "pw", domain.RoleAdmin)
	require.NoError(t, err)

	token, u, err := svc.Login(context.Background(), "carol", "pw")
	require.NoError(t, err)
	assert.Empty(t, u.PasswordHash)

	claims, err := svc.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, u.ID, claims.UserID)
	assert.Equal(t, domain.RoleAdmin, claims.Role)
}

func TestLogin_WrongPasswordAndUnknownUserLookAlike(t *testing.T) {
	svc := newTestService(newFakeUserStore())

	_, err := svc.Register(context.Background(), "dave", "right", "")
	require.NoError(t, err)

	_, _, errWrong := svc.Login(context.Background(), "dave", "wrong")
	_, _, errMissing := svc.Login(context.Background(), "nobody", "whatever")

	require.ErrorIs(t, errWrong, ErrInvalidCredentials)
	require.ErrorIs(t, errMissing, ErrInvalidCredentials)
}

func TestParseToken_RejectsTampering(t *testing.T) {
	svc := newTestService(newFakeUserStore())

	_, err := svc.Register(context.Background(), "eve", "pw", "")
	require.NoError(t, err)

	token, _, err := svc.Login(context.Background(), "eve", "pw")
	require.NoError(t, err)

	_, err = svc.ParseToken(token + "x")
	require.ErrorIs(t, err, ErrInvalidToken)

	_, err = svc.ParseToken("not-a-token")
	require.ErrorIs(t, err, ErrInvalidToken)

	other := New(newFakeUserStore(), config.AuthConfig{
		JWTSecret:    "different-secret",
		AccessTTLMin: 5,
		BcryptCost:   bcrypt.MinCost,
	})
	_, err = other.ParseToken(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

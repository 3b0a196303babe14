package server

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jcmanalo/barangay-records/internal/config"
	"github.com/jcmanalo/barangay-records/internal/db"
	"github.com/jcmanalo/barangay-records/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeUserStore is an in-memory userStore for unit tests.
type fakeUserStore struct {
	byUsername map[string]*db.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{byUsername: make(map[string]*db.User)}
}

func (f *fakeUserStore) GetUserByUsername(_ context.Context, username string) (*db.User, error) {
	return f.byUsername[username], nil
}

func (f *fakeUserStore) GetUserByID(_ context.Context, id uuid.UUID) (*db.User, error) {
	for _, u := range f.byUsername {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserStore) CreateUser(_ context.Context, username, passwordHash, fullName, role string) (*db.User, error) {
	u := &db.User{
		ID:           uuid.New(),
		Username:     username,
		PasswordHash: passwordHash,
		FullName:     fullName,
		Role:         role,
		CreatedAt:    time.Now(),
	}
	f.byUsername[username] = u
	return u, nil
}

func testUserService() (*UserService, *fakeUserStore) {
	store := newFakeUserStore()
	// Minimum cost keeps the bcrypt work factor out of test runtime
	return NewUserService(store, &config.PasswordConfig{BcryptCost: 10}), store
}

func TestUserService_Register(t *testing.T) {
	service, store := testUserService()

	user, err := service.Register(context.Background(), &types.RegisterRequest{
		Username: "chairman",
		Password: "long-enough-password",
		FullName: "Danilo A. San Bueno",
		Role:     "Chairman",
	})
	require.NoError(t, err)
	assert.Equal(t, "chairman", user.Username)
	assert.Equal(t, "Danilo A. San Bueno", user.FullName)
	assert.Equal(t, "Chairman", user.Role)
	assert.NotEqual(t, uuid.Nil, user.ID)

	// The stored hash must not be the plaintext password
	stored := store.byUsername["chairman"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "long-enough-password", stored.PasswordHash)
	assert.NotEmpty(t, stored.PasswordHash)
}

func TestUserService_Register_UsernameTaken(t *testing.T) {
	service, _ := testUserService()

	req := &types.RegisterRequest{
		Username: "chairman",
		Password: "long-enough-password",
		FullName: "Danilo A. San Bueno",
		Role:     "Chairman",
	}
	_, err := service.Register(context.Background(), req)
	require.NoError(t, err)

	_, err = service.Register(context.Background(), req)
	require.Error(t, err)
	assert.IsType(t, &ErrUsernameAlreadyExists{}, err)
	assert.Equal(t, 409, HTTPStatus(err))
}

func TestUserService_Login(t *testing.T) {
	service, _ := testUserService()

	_, err := service.Register(context.Background(), &types.RegisterRequest{
		Username: "secretary01",
		Password: "correct-password",
		FullName: "Paula Marie D. Bailon",
		Role:     "Secretary",
	})
	require.NoError(t, err)

	user, err := service.Login(context.Background(), &types.LoginRequest{
		Username: "secretary01",
		Password: "correct-password",
	})
	require.NoError(t, err)
	assert.Equal(t, "secretary01", user.Username)
	assert.Equal(t, "Secretary", user.Role)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	service, _ := testUserService()

	_, err := service.Register(context.Background(), &types.RegisterRequest{
		Username: "secretary01",
		Password: "correct-password",
		FullName: "Paula Marie D. Bailon",
		Role:     "Secretary",
	})
	require.NoError(t, err)

	_, err = service.Login(context.Background(), &types.LoginRequest{
		Username: "secretary01",
		Password: "wrong-password",
	})
	require.Error(t, err)
	assert.IsType(t, &ErrInvalidCredentials{}, err)
}

func TestUserService_Login_UnknownUser(t *testing.T) {
	service, _ := testUserService()

	_, err := service.Login(context.Background(), &types.LoginRequest{
		Username: "nobody",
		Password: "whatever-password",
	})
	require.Error(t, err)
	// Unknown user and wrong password are indistinguishable to the caller
	assert.IsType(t, &ErrInvalidCredentials{}, err)
}

func TestUserService_GetByID(t *testing.T) {
	service, _ := testUserService()

	created, err := service.Register(context.Background(), &types.RegisterRequest{
		Username: "staff01",
		Password: "long-enough-password",
		FullName: "Test Staff",
		Role:     "Staff",
	})
	require.NoError(t, err)

	user, err := service.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)
	assert.Equal(t, "staff01", user.Username)

	_, err = service.GetByID(context.Background(), uuid.New())
	require.Error(t, err)
	assert.IsType(t, &ErrUserNotFound{}, err)
}

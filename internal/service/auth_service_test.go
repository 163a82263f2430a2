package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/kranthi-07/Dab/internal/repository"
)

func newTestAuthService(repo *mockRepository) *AuthService {
	svc := NewAuthService(repo, missCache{}, testLogger())
	// Low cost keeps the test suite fast.
	svc.hashCost = bcrypt.MinCost
	return svc
}

func TestRegister_Success(t *testing.T) {
	repo := newMockRepository()
	svc := newTestAuthService(repo)
	ctx := context.Background()

	account, err := svc.Register(ctx, "Kranthi", "9876543210", "secret123")
	require.NoError(t, err)

	assert.NotEmpty(t, account.ID)
	assert.Equal(t, "Kranthi", account.Name)
	assert.NotEqual(t, "secret123", account.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte("secret123")))
	assert.Empty(t, account.Cart)
	assert.Empty(t, account.Favorites)
}

func TestRegister_DuplicateMobile(t *testing.T) {
	repo := newMockRepository()
	svc := newTestAuthService(repo)
	ctx := context.Background()

	_, err := svc.Register(ctx, "Kranthi", "9876543210", "secret123")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "Someone Else", "9876543210", "other")
	assert.ErrorIs(t, err, repository.ErrDuplicateUser)
}

func TestRegister_MissingFields(t *testing.T) {
	svc := newTestAuthService(newMockRepository())
	ctx := context.Background()

	cases := []struct {
		name, mobile, password string
	}{
		{"", "9876543210", "secret"},
		{"Kranthi", "", "secret"},
		{"Kranthi", "9876543210", ""},
	}

	for _, tc := range cases {
		_, err := svc.Register(ctx, tc.name, tc.mobile, tc.password)
		assert.ErrorIs(t, err, ErrInvalidInput)
	}
}

func TestVerify_Success(t *testing.T) {
	repo := newMockRepository()
	svc := newTestAuthService(repo)
	ctx := context.Background()

	_, err := svc.Register(ctx, "Kranthi", "9876543210", "secret123")
	require.NoError(t, err)

	account, err := svc.Verify(ctx, "9876543210", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "Kranthi", account.Name)
}

func TestVerify_WrongPassword(t *testing.T) {
	repo := newMockRepository()
	svc := newTestAuthService(repo)
	ctx := context.Background()

	_, err := svc.Register(ctx, "Kranthi", "9876543210", "secret123")
	require.NoError(t, err)

	_, err = svc.Verify(ctx, "9876543210", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestVerify_UnknownMobile(t *testing.T) {
	svc := newTestAuthService(newMockRepository())

	_, err := svc.Verify(context.Background(), "0000000000", "whatever")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestUpdateProfile_NameOnly(t *testing.T) {
	repo := newMockRepository()
	svc := newTestAuthService(repo)
	ctx := context.Background()

	created, err := svc.Register(ctx, "Kranthi", "9876543210", "secret123")
	require.NoError(t, err)

	updated, err := svc.UpdateProfile(ctx, created.ID, "Kranthi Kumar", "")
	require.NoError(t, err)
	assert.Equal(t, "Kranthi Kumar", updated.Name)

	// Credential untouched: old password still verifies.
	_, err = svc.Verify(ctx, "9876543210", "secret123")
	assert.NoError(t, err)
}

func TestUpdateProfile_RehashesPassword(t *testing.T) {
	repo := newMockRepository()
	svc := newTestAuthService(repo)
	ctx := context.Background()

	created, err := svc.Register(ctx, "Kranthi", "9876543210", "secret123")
	require.NoError(t, err)

	_, err = svc.UpdateProfile(ctx, created.ID, "", "newsecret")
	require.NoError(t, err)

	_, err = svc.Verify(ctx, "9876543210", "secret123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Verify(ctx, "9876543210", "newsecret")
	assert.NoError(t, err)
}

func TestUpdateProfile_BlankPasswordIgnored(t *testing.T) {
	repo := newMockRepository()
	svc := newTestAuthService(repo)
	ctx := context.Background()

	created, err := svc.Register(ctx, "Kranthi", "9876543210", "secret123")
	require.NoError(t, err)

	_, err = svc.UpdateProfile(ctx, created.ID, "New Name", "   ")
	require.NoError(t, err)

	_, err = svc.Verify(ctx, "9876543210", "secret123")
	assert.NoError(t, err)
}

func TestUpdateProfile_UnknownUser(t *testing.T) {
	svc := newTestAuthService(newMockRepository())

	_, err := svc.UpdateProfile(context.Background(), "missing", "Name", "")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

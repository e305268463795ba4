package shop

import (
	"context"
	"testing"

	"github.com/bogdan-mardyshev/Mini-Amazon/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestRegisterHashesPassword(t *testing.T) {
	db := newTestDB(t)
	identity := NewIdentity(db)

	user, err := identity.Register(context.Background(), "alice", "pw1")
	require.NoError(t, err)
	assert.NotEqual(t, "pw1", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("pw1")))
}

func TestRegisterDuplicateUsername(t *testing.T) {
	db := newTestDB(t)
	identity := NewIdentity(db)

	_, err := identity.Register(context.Background(), "alice", "pw1")
	require.NoError(t, err)

	_, err = identity.Register(context.Background(), "alice", "pw2")
	assert.ErrorIs(t, err, ErrDuplicateUsername)

	var count int64
	require.NoError(t, db.Model(&domain.User{}).Where("username = ?", "alice").Count(&count).Error)
	assert.EqualValues(t, 1, count, "exactly one alice row")
}

func TestRegisterRejectsBlankInput(t *testing.T) {
	db := newTestDB(t)
	identity := NewIdentity(db)

	_, err := identity.Register(context.Background(), "  ", "pw")
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = identity.Register(context.Background(), "bob", "")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestAuthenticate(t *testing.T) {
	db := newTestDB(t)
	identity := NewIdentity(db)
	_, err := identity.Register(context.Background(), "gina", "secret")
	require.NoError(t, err)

	user, err := identity.Authenticate(context.Background(), "gina", "secret")
	require.NoError(t, err)
	assert.Equal(t, "gina", user.Username)

	_, err = identity.Authenticate(context.Background(), "gina", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = identity.Authenticate(context.Background(), "nobody", "secret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

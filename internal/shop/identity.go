package shop

import (
	"context"
	"strings"
	"time"

	"github.com/bogdan-mardyshev/Mini-Amazon/internal/domain"
	"github.com/bogdan-mardyshev/Mini-Amazon/pkg/common"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Identity registers users and verifies credentials. Session establishment is
// the web layer's concern.
type Identity struct {
	db *gorm.DB
}

func NewIdentity(db *gorm.DB) *Identity {
	return &Identity{db: db}
}

// Register creates a user with a bcrypt-hashed password. The username is
// trimmed; a taken username yields ErrDuplicateUsername.
func (s *Identity) Register(ctx context.Context, username, password string) (*domain.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, ErrInvalidInput
	}

	var count int64
	if err := s.db.WithContext(ctx).Model(&domain.User{}).
		Where("username = ?", username).Count(&count).Error; err != nil {
		return nil, errors.Wrap(err, "query username")
	}
	if count > 0 {
		return nil, ErrDuplicateUsername
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.Wrap(err, "hash password")
	}

	user := &domain.User{
		ID:        common.UUIDint64(),
		Username:  username,
		Password:  string(hashed),
		LastLogin: time.Now(),
	}
	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		return nil, errors.Wrap(err, "create user")
	}
	zap.L().Info("user registered", zap.String("username", username))
	return user, nil
}

// Authenticate verifies a username/password pair and touches last_login.
func (s *Identity) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	var user domain.User
	err := s.db.WithContext(ctx).Where("username = ?", strings.TrimSpace(username)).First(&user).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, ErrInvalidCredentials
	case err != nil:
		return nil, errors.Wrap(err, "query user")
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	s.db.WithContext(ctx).Model(&domain.User{}).Where("id = ?", user.ID).
		Update("last_login", time.Now())
	return &user, nil
}

// Get resolves a user id, typically the one stored in the session.
func (s *Identity) Get(ctx context.Context, id int64) (*domain.User, error) {
	var user domain.User
	err := s.db.WithContext(ctx).First(&user, id).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, ErrNotFound
	case err != nil:
		return nil, errors.Wrap(err, "query user")
	}
	return &user, nil
}

package app

import (
	"errors"
	"time"

	"github.com/bogdan-mardyshev/Mini-Amazon/internal/domain"
	"github.com/bogdan-mardyshev/Mini-Amazon/pkg/common"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func (a *Application) checkSuper() {
	const superUsername = "admin"
	const defaultPassword = "admin123"

	var admin domain.User
	err := a.gormDB.Where("username = ?", superUsername).First(&admin).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		hashed, herr := bcrypt.GenerateFromPassword([]byte(defaultPassword), bcrypt.DefaultCost)
		if herr != nil {
			zap.L().Error("failed to hash default admin password", zap.Error(herr))
			return
		}
		if err := a.gormDB.Create(&domain.User{
			ID:        common.UUIDint64(),
			Username:  superUsername,
			Password:  string(hashed),
			IsAdmin:   true,
			LastLogin: time.Now(),
		}).Error; err != nil {
			zap.L().Error("failed to create default admin", zap.Error(err))
		} else {
			zap.L().Info("initialized default admin account", zap.String("username", superUsername))
		}
	case err != nil:
		zap.L().Error("failed to query admin account", zap.Error(err))
	case !admin.IsAdmin:
		if err := a.gormDB.Model(&domain.User{}).Where("id = ?", admin.ID).
			Update("is_admin", true).Error; err != nil {
			zap.L().Error("failed to repair admin flag", zap.Error(err))
			return
		}
		zap.L().Warn("repaired default admin account", zap.String("username", superUsername))
	}
}

// checkProducts seeds the starter catalog when the product table is empty.
func (a *Application) checkProducts() {
	var count int64
	a.gormDB.Model(&domain.Product{}).Count(&count)
	if count > 0 {
		return
	}

	defaultProducts := []domain.Product{
		{Name: "iPhone 15", Price: 999.00, Stock: 10},
		{Name: "MacBook Air", Price: 1200.50, Stock: 5},
		{Name: "Sony Headphones", Price: 199.99, Stock: 20},
		{Name: "Gaming Mouse", Price: 59.90, Stock: 50},
		{Name: "Mechanical Keyboard", Price: 149.00, Stock: 15},
	}

	for _, p := range defaultProducts {
		p.ID = common.UUIDint64()
		p.CreatedAt = time.Now()
		p.UpdatedAt = time.Now()
		if err := a.gormDB.Create(&p).Error; err != nil {
			zap.L().Error("failed to create default product", zap.String("name", p.Name), zap.Error(err))
		} else {
			zap.L().Info("initialized default product", zap.String("name", p.Name))
		}
	}
}

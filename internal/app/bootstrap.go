package app

import (
	"context"
	"time"

	"github.com/glowandgather/storefront/internal/accounts"
	"github.com/glowandgather/storefront/internal/catalog"
	"github.com/glowandgather/storefront/internal/domain"
	"github.com/glowandgather/storefront/pkg/common"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func (a *Application) checkSuper() {
	ensureDefaultAdmin(context.Background(), accounts.NewGormAdminRepository(a.gormDB))
}

// ensureDefaultAdmin bootstraps the default dashboard account into an
// empty admin table. Any existing admin, default or not, suppresses the
// bootstrap so a deliberately removed default account stays removed.
func ensureDefaultAdmin(ctx context.Context, repo accounts.AdminRepository) {
	const superEmail = "admin@glowandgather.com"
	const defaultPassword = "admin123"

	total, err := repo.Count(ctx)
	if err != nil {
		zap.L().Error("failed to count admins", zap.Error(err))
		return
	}
	if total > 0 {
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(defaultPassword), bcrypt.DefaultCost)
	if err != nil {
		zap.L().Error("failed to hash default admin password", zap.Error(err))
		return
	}
	if err := repo.Create(ctx, &domain.Admin{
		ID:        common.UUIDint64(),
		Email:     superEmail,
		Password:  string(hashed),
		Name:      "Admin",
		LastLogin: time.Now(),
	}); err != nil {
		zap.L().Error("failed to create default admin", zap.Error(err))
		return
	}
	zap.L().Warn("initialized default admin account, change the password after first login",
		zap.String("email", superEmail))
}

// checkProducts seeds the starter catalog into an empty product table.
func (a *Application) checkProducts() {
	var count int64
	if err := a.gormDB.Model(&domain.Product{}).Count(&count).Error; err != nil {
		zap.L().Error("failed to count products", zap.Error(err))
		return
	}
	if count > 0 {
		return
	}

	repo := catalog.NewGormProductRepository(a.gormDB)
	service := catalog.NewService(repo)
	if err := service.Seed(context.Background(), catalog.SampleProducts()); err != nil {
		zap.L().Error("failed to seed starter catalog", zap.Error(err))
		return
	}
	zap.L().Info("initialized starter catalog", zap.Int("products", len(catalog.SampleProducts())))
}

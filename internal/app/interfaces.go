package app

import (
	"github.com/asaskevich/EventBus"
	"github.com/glowandgather/storefront/config"
	"github.com/glowandgather/storefront/internal/mailer"
	"github.com/glowandgather/storefront/internal/ratelimit"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// DBProvider provides database access
type DBProvider interface {
	DB() *gorm.DB
}

// ConfigProvider provides application configuration
type ConfigProvider interface {
	Config() *config.AppConfig
}

// SchedulerProvider provides task scheduling capability
type SchedulerProvider interface {
	Scheduler() *cron.Cron
}

// BusProvider provides the in-process event bus
type BusProvider interface {
	Bus() EventBus.Bus
}

// AppContext combines all provider interfaces for full application context
// Handlers should depend on specific providers or this combined interface
type AppContext interface {
	DBProvider
	ConfigProvider
	SchedulerProvider
	BusProvider

	Limiter() *ratelimit.Limiter
	Mailer() *mailer.Mailer

	// Application lifecycle methods
	MigrateDB(track bool) error
	InitDb()
	DropAll()
}

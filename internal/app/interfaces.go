package app

import (
	"github.com/robfig/cron/v3"

	"github.com/Kajalkumari31/ministore/config"
	"github.com/Kajalkumari31/ministore/internal/catalog"
)

// StoreProvider provides product store access
type StoreProvider interface {
	Store() catalog.ProductStore
}

// ConfigProvider provides application configuration
type ConfigProvider interface {
	Config() *config.AppConfig
}

// ServiceProvider provides the catalog service
type ServiceProvider interface {
	Service() *catalog.Service
}

// SchedulerProvider provides task scheduling capability
type SchedulerProvider interface {
	Scheduler() *cron.Cron
}

// AppContext combines all provider interfaces for full application context
// Consumers should depend on specific providers or this combined interface
type AppContext interface {
	StoreProvider
	ConfigProvider
	ServiceProvider
	SchedulerProvider
}

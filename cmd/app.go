package cmd

import (
	"context"
	"database/sql"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/vibast-solutions/ms-go-website/app/content"
	"github.com/vibast-solutions/ms-go-website/app/metrics"
	"github.com/vibast-solutions/ms-go-website/app/pricing"
	"github.com/vibast-solutions/ms-go-website/app/ratelimit"
	"github.com/vibast-solutions/ms-go-website/app/repository"
	"github.com/vibast-solutions/ms-go-website/app/service"
	"github.com/vibast-solutions/ms-go-website/config"

	_ "github.com/go-sql-driver/mysql"
)

type application struct {
	cfg            *config.Config
	catalog        *content.Catalog
	db             *sql.DB
	redis          *redis.Client
	metrics        *metrics.SiteMetrics
	pricingService *service.PricingService
	contactService *service.ContactService
	pageService    *service.PageService
}

// mustCreateApplication wires the services. MySQL and Redis are only opened when
// configured; reg may be nil to skip metrics registration.
func mustCreateApplication(reg prometheus.Registerer) (*application, func()) {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load configuration")
	}
	if err := configureLogging(cfg); err != nil {
		logrus.WithError(err).Fatal("Failed to configure logging")
	}

	catalog, err := content.Load(cfg.Site.ContentPath)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load site content")
	}
	formatter, err := pricing.NewFormatter(catalog.Currency.Symbol, catalog.Currency.Locale)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to configure price formatting")
	}

	app := &application{cfg: cfg, catalog: catalog, metrics: metrics.New(reg)}

	if cfg.MySQL.Enabled() {
		app.db = mustOpenDatabase(cfg.MySQL)
	}

	var limiter ratelimit.Limiter = ratelimit.Noop{}
	if cfg.Redis.Enabled() {
		app.redis = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := app.redis.Ping(pingCtx).Err(); err != nil {
			logrus.WithError(err).WithField("addr", cfg.Redis.Addr).Warn("Redis is not reachable, contact rate limiting will fail open")
		}
		cancel()
		limiter = ratelimit.NewRedisLimiter(app.redis, cfg.Contact.RateLimit, cfg.Contact.RateLimitWindow)
	}

	var plans service.PlanSource = catalog
	var contactStore service.ContactMessageStore
	if app.db != nil {
		contactStore = repository.NewContactMessageRepository(app.db)
		if cfg.Site.PlanSource == config.PlanSourceMySQL {
			plans = repository.NewPlanRepository(app.db)
		}
	}

	app.pricingService = service.NewPricingService(plans, catalog.Pricing.Comparison, formatter, app.metrics)
	app.contactService = service.NewContactService(contactStore, catalog, limiter, cfg.Contact, app.metrics)
	app.pageService = service.NewPageService(catalog, app.pricingService, cfg.Site.TestimonialRotation, app.metrics)

	cleanup := func() {
		if app.redis != nil {
			if err := app.redis.Close(); err != nil {
				logrus.WithError(err).Warn("Failed to close redis client")
			}
		}
		if app.db != nil {
			if err := app.db.Close(); err != nil {
				logrus.WithError(err).Warn("Failed to close database")
			}
		}
	}

	return app, cleanup
}

func mustOpenDatabase(cfg config.MySQLConfig) *sql.DB {
	db, err := sql.Open("mysql", cfg.DSN)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to connect to database")
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		logrus.WithError(err).Fatal("Failed to ping database")
	}
	return db
}

package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vibast-solutions/ms-go-website/app/metrics"
)

var purgeWorker bool

var contactCmd = &cobra.Command{
	Use:   "contact",
	Short: "Contact message maintenance commands",
}

var contactPurgeCmd = &cobra.Command{
	Use:   "purge",
	Short: "Delete stored contact messages older than the retention period",
	Run: func(_ *cobra.Command, _ []string) {
		app, cleanup := mustCreateApplication(nil)
		defer cleanup()

		if app.db == nil {
			logrus.Fatal("MYSQL_DSN is required to purge contact messages")
		}

		purge := func(ctx context.Context) error {
			deleted, err := app.contactService.PurgeExpired(ctx)
			if err == nil {
				logrus.WithField("job", "contact_purge").WithField("deleted", deleted).Debug("Purged contact messages")
			}
			return err
		}

		if purgeWorker {
			runWorker("contact_purge", app.cfg.Jobs.ContactPurgeInterval, app.metrics, purge)
			return
		}
		runJob("contact_purge", app.metrics, func() error { return purge(context.Background()) })
	},
}

func init() {
	rootCmd.AddCommand(contactCmd)
	contactCmd.AddCommand(contactPurgeCmd)

	contactPurgeCmd.Flags().BoolVar(&purgeWorker, "worker", false, "Run continuously using configured interval")
}

func runWorker(name string, interval time.Duration, siteMetrics *metrics.SiteMetrics, fn func(ctx context.Context) error) {
	if interval <= 0 {
		logrus.WithField("job", name).Fatal("invalid worker interval")
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	runJob(name, siteMetrics, func() error { return fn(ctx) })

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	for {
		select {
		case <-quit:
			logrus.WithField("job", name).Info("Worker shutdown requested")
			return
		case <-ticker.C:
			runJob(name, siteMetrics, func() error { return fn(ctx) })
		}
	}
}

func runJob(name string, siteMetrics *metrics.SiteMetrics, fn func() error) {
	start := time.Now()
	err := fn()
	latency := time.Since(start)
	siteMetrics.ObserveJob(name, latency, err)
	if err != nil {
		logrus.WithError(err).WithField("job", name).WithField("latency", latency.String()).Error("job_failed")
		return
	}
	logrus.WithField("job", name).WithField("latency", latency.String()).Info("job_completed")
}

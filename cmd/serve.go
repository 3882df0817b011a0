package cmd

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	authclient "github.com/vibast-solutions/lib-go-auth/client"
	authmiddleware "github.com/vibast-solutions/lib-go-auth/middleware"
	authlibservice "github.com/vibast-solutions/lib-go-auth/service"
	"github.com/vibast-solutions/ms-go-website/app/controller"
	grpcserver "github.com/vibast-solutions/ms-go-website/app/grpc"
	"github.com/vibast-solutions/ms-go-website/app/view"
	"github.com/vibast-solutions/ms-go-website/config"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP and gRPC servers",
	Long:  "Start the website (Echo) and the pricing gRPC API.",
	Run:   runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

type internalAuth struct {
	echo echo.MiddlewareFunc
	grpc grpc.UnaryServerInterceptor
}

func runServe(_ *cobra.Command, _ []string) {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	app, cleanup := mustCreateApplication(registry)
	defer cleanup()
	cfg := app.cfg

	var auth *internalAuth
	if cfg.InternalEndpoints.AuthGRPCAddr != "" {
		authGRPCClient, err := authclient.NewGRPCClientFromAddr(context.Background(), cfg.InternalEndpoints.AuthGRPCAddr)
		if err != nil {
			logrus.WithError(err).Fatal("Failed to initialize auth gRPC client")
		}
		defer authGRPCClient.Close()
		internalAuthService := authlibservice.NewInternalAuthService(authGRPCClient)
		auth = &internalAuth{
			echo: authmiddleware.NewEchoInternalAuthMiddleware(internalAuthService).RequireInternalAccess(cfg.App.ServiceName),
			grpc: authmiddleware.NewGRPCInternalAuthMiddleware(internalAuthService).UnaryRequireInternalAccess(cfg.App.ServiceName),
		}
	} else {
		logrus.Warn("AUTH_SERVICE_GRPC_ADDR is not set, internal endpoints are disabled")
	}

	renderer, err := view.NewRenderer()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to parse page templates")
	}

	pageController := controller.NewPageController(app.pageService, app.contactService)
	pricingController := controller.NewPricingController(app.pricingService)
	contactController := controller.NewContactController(app.contactService)

	e := setupHTTPServer(renderer, pageController, pricingController, contactController, registry, auth)
	grpcSrv, healthSrv, lis := setupGRPCServer(cfg, grpcserver.NewServer(app.pricingService), auth)

	go func() {
		httpAddr := net.JoinHostPort(cfg.HTTP.Host, cfg.HTTP.Port)
		logrus.WithField("addr", httpAddr).Info("Starting HTTP server")
		if err := e.Start(httpAddr); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Fatal("HTTP server error")
		}
	}()

	go func() {
		logrus.WithField("addr", lis.Addr().String()).Info("Starting gRPC server")
		if err := grpcSrv.Serve(lis); err != nil {
			logrus.WithError(err).Fatal("gRPC server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logrus.Info("Shutting down...")
	healthSrv.Shutdown()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Warn("HTTP shutdown error")
	}
	grpcSrv.GracefulStop()

	logrus.Info("Server stopped")
}

func setupHTTPServer(
	renderer echo.Renderer,
	pageController *controller.PageController,
	pricingController *controller.PricingController,
	contactController *controller.ContactController,
	gatherer prometheus.Gatherer,
	auth *internalAuth,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Renderer = renderer
	e.IPExtractor = echo.ExtractIPFromXFFHeader()

	e.Use(echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		LogMethod:    true,
		LogRemoteIP:  true,
		LogLatency:   true,
		LogUserAgent: true,
		LogError:     true,
		HandleError:  true,
		LogRequestID: true,
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics" || c.Path() == "/health"
		},
		LogValuesFunc: func(_ echo.Context, v echomiddleware.RequestLoggerValues) error {
			fields := logrus.Fields{
				"request_id": v.RequestID,
				"remote_ip":  v.RemoteIP,
				"host":       v.Host,
				"method":     v.Method,
				"uri":        v.URI,
				"status":     v.Status,
				"latency":    v.Latency.String(),
				"latency_ns": v.Latency.Nanoseconds(),
				"user_agent": v.UserAgent,
			}
			entry := logrus.WithFields(fields)
			if v.Error != nil {
				entry = entry.WithError(v.Error)
			}
			entry.Info("http_request")
			return nil
		},
	}))
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.Secure())
	e.Use(echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{
		Generator: func() string {
			return fmt.Sprintf("rest-%s", uuid.New().String())
		},
	}))

	e.GET("/health", pricingController.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	e.GET("/", pageController.Home)
	e.GET("/about", pageController.About)
	e.GET("/services", pageController.Services)
	e.GET("/pricing", pageController.Pricing)
	e.GET("/contact", pageController.Contact)
	e.POST("/contact", pageController.SubmitContact)

	api := e.Group("/api", echomiddleware.CORS())
	api.GET("/pricing/plans", pricingController.ListPlans)
	api.GET("/pricing/plans/:name", pricingController.GetPlan)
	api.GET("/pricing/comparison", pricingController.Comparison)
	api.POST("/contact", contactController.Submit)

	if auth != nil {
		internal := e.Group("/internal", auth.echo)
		internal.GET("/contact-messages", contactController.ListMessages)
	}

	return e
}

func setupGRPCServer(
	cfg *config.Config,
	pricingServer *grpcserver.Server,
	auth *internalAuth,
) (*grpc.Server, *health.Server, net.Listener) {
	grpcAddr := net.JoinHostPort(cfg.GRPC.Host, cfg.GRPC.Port)
	lis, err := net.Listen("tcp", grpcAddr)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to listen on gRPC port")
	}

	interceptors := []grpc.UnaryServerInterceptor{
		grpcserver.RecoveryInterceptor(),
		grpcserver.RequestIDInterceptor(),
		grpcserver.LoggingInterceptor(),
	}
	if auth != nil {
		interceptors = append(interceptors, auth.grpc)
	}

	grpcSrv := grpc.NewServer(grpc.ChainUnaryInterceptor(interceptors...))
	grpcserver.RegisterPricingServiceServer(grpcSrv, pricingServer)

	healthSrv := health.NewServer()
	healthSrv.SetServingStatus(grpcserver.PricingServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(grpcSrv, healthSrv)

	return grpcSrv, healthSrv, lis
}

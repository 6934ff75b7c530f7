package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/segmentio/kafka-go"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/sbilibin2017/sliced-pix-gateway/docs"
	"github.com/sbilibin2017/sliced-pix-gateway/internal/facades"
	"github.com/sbilibin2017/sliced-pix-gateway/internal/handlers"
	"github.com/sbilibin2017/sliced-pix-gateway/internal/logger"
	"github.com/sbilibin2017/sliced-pix-gateway/internal/metrics"
	"github.com/sbilibin2017/sliced-pix-gateway/internal/middlewares"
	"github.com/sbilibin2017/sliced-pix-gateway/internal/services"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

var errMissingAccessToken = errors.New("MERCADO_PAGO_ACCESS_TOKEN is not set")

// config holds everything read from the environment.
type config struct {
	AppHost     string
	AppPort     string
	LogLevel    string
	MetricsPort string
	SiteRoot    string
	BaseURL     string

	MercadoPagoAccessToken string
	MercadoPagoAPIBase     string
	MercadoPagoTimeout     time.Duration

	KafkaBrokers []string
	KafkaTopic   string

	CORSAllowedOrigins []string
}

// @title SLICED PIX Gateway API
// @version 1.0.0
// @description Website server and Mercado Pago PIX deposit proxy for SLICED
// @host localhost:3000
// @BasePath /api
// @schemes http https
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns the application configuration.
// A missing file is not an error; the process environment is used as is.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	cfg.AppHost = getEnv("APP_HOST", "0.0.0.0")
	cfg.AppPort = getEnv("APP_PORT", getEnv("PORT", "3000"))
	cfg.LogLevel = getEnv("APP_LOG_LEVEL", "info")
	cfg.MetricsPort = os.Getenv("METRICS_PORT")
	if _, ok := os.LookupEnv("METRICS_PORT"); !ok {
		cfg.MetricsPort = "9095"
	}
	cfg.SiteRoot = getEnv("SITE_ROOT", ".")
	cfg.BaseURL = strings.TrimRight(getEnv("BASE_URL", "http://localhost:"+cfg.AppPort), "/")

	// Mercado Pago config
	cfg.MercadoPagoAccessToken = os.Getenv("MERCADO_PAGO_ACCESS_TOKEN")
	cfg.MercadoPagoAPIBase = getEnv("MERCADO_PAGO_API_BASE", facades.DefaultMercadoPagoBaseURL)
	timeoutSecond, err := strconv.Atoi(getEnv("MERCADO_PAGO_TIMEOUT_SECOND", "30"))
	if err != nil {
		return cfg, fmt.Errorf("parse MERCADO_PAGO_TIMEOUT_SECOND: %w", err)
	}
	if timeoutSecond <= 0 {
		return cfg, fmt.Errorf("MERCADO_PAGO_TIMEOUT_SECOND must be positive, got %d", timeoutSecond)
	}
	cfg.MercadoPagoTimeout = time.Duration(timeoutSecond) * time.Second

	// Kafka config
	cfg.KafkaBrokers = splitList(os.Getenv("KAFKA_BROKERS"))
	cfg.KafkaTopic = getEnv("KAFKA_TOPIC", "payment-events")

	// CORS config
	cfg.CORSAllowedOrigins = splitList(getEnv("CORS_ALLOWED_ORIGINS", "*"))

	return cfg, nil
}

func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// newKafkaWriter returns an asynchronous writer, or nil when no brokers are configured.
func newKafkaWriter(brokers []string, topic string) *kafka.Writer {
	if len(brokers) == 0 {
		return nil
	}
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
		BatchTimeout:           10 * time.Millisecond,
		WriteTimeout:           10 * time.Second,
		Async:                  true,
		Completion: func(messages []kafka.Message, err error) {
			if err != nil {
				logger.Log.Errorw("failed to deliver payment events", "count", len(messages), "error", err)
			}
		},
	}
}

// newRouter wires middleware, API handlers, API docs and the website routes.
func newRouter(cfg config, svc *services.PaymentService, site *handlers.StaticSite, m *metrics.Metrics) chi.Router {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))
	r.Use(middlewares.MetricsMiddleware(m))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSAllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodHead, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{middlewares.RequestIDHeader},
		MaxAge:         300,
	}))
	r.Use(chimiddleware.GetHead)

	// API routes
	handlers.RegisterDepositHandler(r, handlers.NewDepositHandler(svc))
	handlers.RegisterWithdrawHandler(r, handlers.NewWithdrawHandler(svc))
	handlers.RegisterGetBalanceHandler(r, handlers.NewGetBalanceHandler(svc))
	handlers.RegisterWebhookHandler(r, handlers.NewWebhookHandler(svc))

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	// Website
	handlers.RegisterStaticRoutes(r, site)

	return r
}

// run initializes the logger, the Mercado Pago client, the event writer and the HTTP servers.
// It blocks until ctx is cancelled or a shutdown signal is received.
func run(ctx context.Context, cfg config) error {
	if cfg.MercadoPagoAccessToken == "" {
		return errMissingAccessToken
	}

	if err := logger.Initialize(cfg.LogLevel); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()
	log := logger.Log
	log.Infof("Logger initialized with level %s", cfg.LogLevel)

	site, err := handlers.NewStaticSite(cfg.SiteRoot)
	if err != nil {
		return err
	}
	if err := site.Check(ctx); err != nil {
		log.Warnw("site index page is not readable", "root", site.Root(), "error", err)
	}

	m := metrics.New()

	// Mercado Pago client
	client := &http.Client{
		Timeout:   cfg.MercadoPagoTimeout,
		Transport: m.InstrumentRoundTripper(http.DefaultTransport),
	}
	facade := facades.NewMercadoPagoFacade(cfg.MercadoPagoAPIBase, cfg.MercadoPagoAccessToken, client)

	// Kafka writer
	var eventWriter services.KafkaWriter
	if kw := newKafkaWriter(cfg.KafkaBrokers, cfg.KafkaTopic); kw != nil {
		log.Infow("publishing payment events", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaTopic)
		eventWriter = kw
		defer func() {
			if err := kw.Close(); err != nil {
				log.Errorw("failed to close kafka writer", "error", err)
			}
		}()
	} else {
		log.Warn("KAFKA_BROKERS not set, payment events will not be published")
	}

	svc := services.NewPaymentService(facade, eventWriter, services.PaymentConfig{BaseURL: cfg.BaseURL})

	r := newRouter(cfg, svc, site, m)
	_ = chi.Walk(r, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		log.Infow("route registered", "method", method, "route", route)
		return nil
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	var metricsSrv *http.Server
	if cfg.MetricsPort != "" {
		metricsSrv = &http.Server{
			Addr:              fmt.Sprintf("%s:%s", cfg.AppHost, cfg.MetricsPort),
			Handler:           m.NewServeMux(site.Check),
			ReadHeaderTimeout: 10 * time.Second,
		}
	}

	// Graceful shutdown
	errChan := make(chan error, 2)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		log.Infof("HTTP server listening on %s", srv.Addr)
		log.Infof("Site root: %s", site.Root())
		log.Infof("Webhook URL: %s", svc.NotificationURL())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	if metricsSrv != nil {
		go func() {
			log.Infof("Metrics server listening on %s", metricsSrv.Addr)
			if err := metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errChan <- fmt.Errorf("metrics server failed: %w", err)
			}
		}()
	}

	select {
	case <-ctxShutdown.Done():
		log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("HTTP server shutdown error", "error", err)
	}
	if metricsSrv != nil {
		if err := metricsSrv.Shutdown(shutdownCtx); err != nil {
			log.Errorw("metrics server shutdown error", "error", err)
		}
	}

	log.Info("HTTP server stopped gracefully")
	return nil
}

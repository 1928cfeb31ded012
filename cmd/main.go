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
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/sbilibin2017/qr-drive-cashier/docs"
	"github.com/sbilibin2017/qr-drive-cashier/internal/events"
	"github.com/sbilibin2017/qr-drive-cashier/internal/facades"
	"github.com/sbilibin2017/qr-drive-cashier/internal/handlers"
	"github.com/sbilibin2017/qr-drive-cashier/internal/logger"
	"github.com/sbilibin2017/qr-drive-cashier/internal/middlewares"
	"github.com/sbilibin2017/qr-drive-cashier/internal/reference"
	"github.com/sbilibin2017/qr-drive-cashier/internal/repositories"
	"github.com/sbilibin2017/qr-drive-cashier/internal/seeders"
	"github.com/sbilibin2017/qr-drive-cashier/internal/services"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// config holds every setting read from the environment.
type config struct {
	AppHost       string
	AppPort       string
	LogLevel      string
	LogEncoding   string
	PublicBaseURL string

	OutletCode      string
	ReferenceTTL    time.Duration
	SSEKeepAlive    time.Duration
	SeedDemoData    bool
	ShutdownTimeout time.Duration

	RedisHost         string
	RedisPort         int
	RedisDB           int
	RedisPassword     string
	RedisPoolSize     int
	RedisMinIdleConns int

	KafkaBrokers []string
	KafkaTopic   string
}

// @title qr-drive-cashier API
// @version 1.0.0
// @description Drive-through cashier back end: transaction lifecycle and QR scan notifications
// @host localhost:8080
// @BasePath /
// @schemes http
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
	fmt.Printf("Build version: %s\nBuild date: %s\nBuild commit: %s\n", buildVersion, buildDate, buildCommit)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns
// the application, QR, Redis, Kafka and logging configuration.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}
	getInt := func(key, defaultValue string) (int, error) {
		v, err := strconv.Atoi(getEnv(key, defaultValue))
		if err != nil {
			return 0, fmt.Errorf("%s: %w", key, err)
		}
		return v, nil
	}
	getSeconds := func(key, defaultValue string) (time.Duration, error) {
		v, err := getInt(key, defaultValue)
		return time.Duration(v) * time.Second, err
	}

	// Application config
	cfg.AppHost = getEnv("APP_HOST", "localhost")
	cfg.AppPort = getEnv("APP_PORT", "8080")
	cfg.LogLevel = getEnv("APP_LOG_LEVEL", "info")
	cfg.LogEncoding = getEnv("APP_LOG_ENCODING", "json")
	cfg.PublicBaseURL = getEnv("PUBLIC_BASE_URL", "")
	if cfg.ShutdownTimeout, err = getSeconds("APP_SHUTDOWN_TIMEOUT_SECOND", "10"); err != nil {
		return
	}

	// QR config
	cfg.OutletCode = getEnv("OUTLET_CODE", reference.DefaultOutletCode)
	if cfg.ReferenceTTL, err = getSeconds("QR_REFERENCE_TTL_SECOND", "120"); err != nil {
		return
	}
	if cfg.SSEKeepAlive, err = getSeconds("SSE_KEEPALIVE_SECOND", "15"); err != nil {
		return
	}
	if cfg.SeedDemoData, err = strconv.ParseBool(getEnv("SEED_DEMO_DATA", "true")); err != nil {
		err = fmt.Errorf("SEED_DEMO_DATA: %w", err)
		return
	}

	// Redis config
	cfg.RedisHost = getEnv("REDIS_HOST", "")
	if cfg.RedisPort, err = getInt("REDIS_PORT", "6379"); err != nil {
		return
	}
	if cfg.RedisDB, err = getInt("REDIS_DB", "0"); err != nil {
		return
	}
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")
	if cfg.RedisPoolSize, err = getInt("REDIS_POOL_SIZE", "10"); err != nil {
		return
	}
	if cfg.RedisMinIdleConns, err = getInt("REDIS_MIN_IDLE_CONNS", "2"); err != nil {
		return
	}

	// Kafka config
	for _, b := range strings.Split(getEnv("KAFKA_BROKERS", ""), ",") {
		if b = strings.TrimSpace(b); b != "" {
			cfg.KafkaBrokers = append(cfg.KafkaBrokers, b)
		}
	}
	cfg.KafkaTopic = getEnv("KAFKA_TOPIC", "transactions")

	return
}

// run initializes the logger, stores, optional Redis and Kafka clients and the
// HTTP server. It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.LogLevel, cfg.LogEncoding); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	generator, err := reference.NewGenerator(cfg.OutletCode)
	if err != nil {
		return fmt.Errorf("invalid outlet code %q: %w", cfg.OutletCode, err)
	}

	// Reference cache: Redis when configured, in-process otherwise
	var cache services.ReferenceCache
	if cfg.RedisHost != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:         fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
			Password:     cfg.RedisPassword,
			DB:           cfg.RedisDB,
			PoolSize:     cfg.RedisPoolSize,
			MinIdleConns: cfg.RedisMinIdleConns,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			rdb.Close()
			return fmt.Errorf("redis connection error: %w", err)
		}
		defer rdb.Close()
		logger.Log.Infow("using redis reference cache", "addr", rdb.Options().Addr)
		cache = repositories.NewReferenceRedisRepository(rdb, cfg.ReferenceTTL)
	} else {
		logger.Log.Infow("using in-memory reference cache")
		cache = repositories.NewReferenceMemoryRepository(cfg.ReferenceTTL)
	}

	// Transaction lifecycle events: Kafka when configured
	var publisher services.TransactionEventPublisher
	if len(cfg.KafkaBrokers) > 0 {
		writer := &kafka.Writer{
			Addr:                   kafka.TCP(cfg.KafkaBrokers...),
			Topic:                  cfg.KafkaTopic,
			Balancer:               &kafka.Hash{},
			BatchTimeout:           10 * time.Millisecond,
			AllowAutoTopicCreation: true,
		}
		facade := facades.NewTransactionEventKafkaFacade(writer)
		defer facade.Close()
		publisher = facade
		logger.Log.Infow("publishing transaction events to kafka", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaTopic)
	}

	// Core state
	store := repositories.NewTransactionMemoryRepository()
	bus := events.NewScanBus(events.DefaultBufferSize)

	// Initialize services
	transactionService := services.NewTransactionService(store, bus, publisher)
	qrService := services.NewQRService(transactionService, generator, cache, cfg.PublicBaseURL, cfg.ReferenceTTL)

	if cfg.SeedDemoData {
		if err := seeders.Seed(ctx, transactionService); err != nil {
			return fmt.Errorf("failed to seed demo data: %w", err)
		}
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler:           newRouter(cfg, transactionService, qrService, bus),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		bus.Close()
		return serveErr
	}

	// Ends open event streams so Shutdown does not wait on them.
	bus.Close()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Infow("HTTP server stopped gracefully", "transactions", store.Len())
	return nil
}

// newRouter mounts every endpoint on a chi router.
func newRouter(
	cfg config,
	transactionService *services.TransactionService,
	qrService *services.QRService,
	bus *events.ScanBus,
) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))
	r.Use(middlewares.MetricsMiddleware)

	r.Get("/health", handlers.NewHealthHandler())

	r.Route("/transactions", func(r chi.Router) {
		r.Post("/", handlers.NewCreateTransactionHandler(transactionService))
		r.Get("/", handlers.NewListTransactionsHandler(transactionService))
		r.Get("/summary", handlers.NewSummaryHandler(transactionService))
		r.Get("/{id}", handlers.NewGetTransactionHandler(transactionService))
		r.Put("/{id}", handlers.NewUpdateTransactionHandler(transactionService))
	})

	r.Post("/t/{id}/notify-view", handlers.NewNotifyViewHandler(transactionService))

	r.Post("/qr", handlers.NewGenerateQRHandler(qrService))
	r.Get("/qr/events", handlers.NewQREventsHandler(bus, cfg.SSEKeepAlive))
	r.Get("/qr/references/{reference}", handlers.NewResolveReferenceHandler(qrService))

	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.AppHost, cfg.AppPort)),
	))

	return r
}

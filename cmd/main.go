package main

import (
	"context"
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
	"github.com/segmentio/kafka-go"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"

	_ "github.com/sbilibin2017/gw-ticket-registry/docs"
	"github.com/sbilibin2017/gw-ticket-registry/internal/clock"
	"github.com/sbilibin2017/gw-ticket-registry/internal/credentials"
	"github.com/sbilibin2017/gw-ticket-registry/internal/docstore"
	"github.com/sbilibin2017/gw-ticket-registry/internal/handlers"
	"github.com/sbilibin2017/gw-ticket-registry/internal/jwt"
	"github.com/sbilibin2017/gw-ticket-registry/internal/logger"
	"github.com/sbilibin2017/gw-ticket-registry/internal/middlewares"
	"github.com/sbilibin2017/gw-ticket-registry/internal/models"
	"github.com/sbilibin2017/gw-ticket-registry/internal/notifier"
	"github.com/sbilibin2017/gw-ticket-registry/internal/repositories"
	"github.com/sbilibin2017/gw-ticket-registry/internal/services"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title gw-ticket-registry API
// @version 1.0.0
// @description Service for user accounts and event ticket inventory backed by JSON documents
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel,
		usersFile, eventsFile,
		jwtSecret, jwtExp,
		resetTTL, bcryptCost,
		kafkaBrokers, kafkaResetTopic, kafkaInventoryTopic,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel,
		usersFile, eventsFile,
		jwtSecret, jwtExp,
		resetTTL, bcryptCost,
		kafkaBrokers, kafkaResetTopic, kafkaInventoryTopic,
	); err != nil {
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

// parseConfig loads environment variables from a file and returns the
// application, storage, JWT, password reset and Kafka configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel string,
	usersFile, eventsFile string,
	jwtSecretKey string, jwtExpSecond int,
	resetTTLSecond, bcryptCost int,
	kafkaBrokers []string, kafkaResetTopic, kafkaInventoryTopic string,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// Document files
	usersFile = getEnv("USERS_FILE", "data/users.json")
	eventsFile = getEnv("EVENTS_FILE", "data/events.json")

	// JWT config
	jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if jwtExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "3600")); err != nil {
		return
	}

	// Credentials config
	if resetTTLSecond, err = strconv.Atoi(getEnv("RESET_TOKEN_TTL_SECOND", "3600")); err != nil {
		return
	}
	if bcryptCost, err = strconv.Atoi(getEnv("BCRYPT_COST", "10")); err != nil {
		return
	}

	// Kafka config
	kafkaBrokers = splitList(getEnv("KAFKA_BROKERS", ""))
	kafkaResetTopic = getEnv("KAFKA_RESET_TOPIC", "password-resets")
	kafkaInventoryTopic = getEnv("KAFKA_INVENTORY_TOPIC", "stock-changes")

	return
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// newKafkaWriter returns a writer for topic, or nil when no brokers are
// configured.
func newKafkaWriter(brokers []string, topic string) *kafka.Writer {
	if len(brokers) == 0 {
		return nil
	}
	return &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    topic,
		Balancer: &kafka.LeastBytes{},
	}
}

// newRouter wires repositories, services and handlers into the HTTP router.
func newRouter(
	log *zap.SugaredLogger,
	appHost, appPort string,
	users *services.UserService,
	inventory *services.InventoryService,
	tokener middlewares.Tokener,
) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(log))

	// Public routes
	r.Post("/register", handlers.NewRegisterHandler(users))
	r.Post("/login", handlers.NewLoginHandler(users))
	r.Post("/password/forgot", handlers.NewForgotPasswordHandler(users))
	r.Post("/password/reset", handlers.NewResetPasswordHandler(users))
	r.Get("/events", handlers.NewListEventsHandler(inventory))

	// Protected routes with JWT middleware
	r.Group(func(r chi.Router) {
		r.Use(middlewares.AuthMiddleware(tokener))
		r.Post("/events/tiers", handlers.NewAddTierHandler(inventory))

		r.Group(func(r chi.Router) {
			r.Use(middlewares.RequireRole(models.RoleAdmin))
			r.Get("/users", handlers.NewListUsersHandler(users))
			r.Post("/users/{username}/promote", handlers.NewPromoteUserHandler(users))
			r.Delete("/users/{username}", handlers.NewDeleteUserHandler(users))
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	return r
}

// run initializes the logger, document stores, Kafka writers and HTTP
// server. It sets up routes, applies middleware, and handles graceful
// shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel string,
	usersFile, eventsFile string,
	jwtSecretKey string, jwtExpSecond int,
	resetTTLSecond, bcryptCost int,
	kafkaBrokers []string, kafkaResetTopic, kafkaInventoryTopic string,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	log := logger.Log
	log.Infof("Logger initialized with level %s", logLevel)

	// Initialize document stores
	userRepo := repositories.NewUserFileRepository(docstore.New[models.User](usersFile))
	eventRepo := repositories.NewEventFileRepository(docstore.New[models.Event](eventsFile))
	log.Infow("Document stores configured", "users", usersFile, "events", eventsFile)

	// Initialize Kafka writers
	var (
		resetNotifier services.ResetNotifier = notifier.NewLogResetNotifier()
		stockWriter   services.KafkaWriter
	)
	if resetWriter := newKafkaWriter(kafkaBrokers, kafkaResetTopic); resetWriter != nil {
		defer resetWriter.Close()
		resetNotifier = notifier.NewKafkaResetNotifier(resetWriter)
	}
	if w := newKafkaWriter(kafkaBrokers, kafkaInventoryTopic); w != nil {
		defer w.Close()
		stockWriter = w
	}
	if len(kafkaBrokers) > 0 {
		log.Infow("Kafka publishing enabled", "brokers", kafkaBrokers,
			"reset_topic", kafkaResetTopic, "inventory_topic", kafkaInventoryTopic)
	} else {
		log.Warn("KAFKA_BROKERS not set, reset tokens are written to the log")
	}

	// Initialize JWT service
	tokens := jwt.New(
		jwt.WithSecretKey(jwtSecretKey),
		jwt.WithExpiration(time.Duration(jwtExpSecond)*time.Second),
	)

	// Initialize services
	userService := services.NewUserService(
		userRepo,
		credentials.NewBcryptHasher(bcryptCost),
		credentials.NewRandomTokenGenerator(0),
		resetNotifier,
		tokens,
		services.WithResetTTL(time.Duration(resetTTLSecond)*time.Second),
	)
	inventoryService := services.NewInventoryService(eventRepo, stockWriter, clock.Real())

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: newRouter(log, appHost, appPort, userService, inventoryService, tokens),
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		log.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

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

	log.Info("HTTP server stopped gracefully")
	return nil
}

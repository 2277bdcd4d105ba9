package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"syscall"
	"time"

	"github.com/alexedwards/scs/goredisstore"
	"github.com/alexedwards/scs/v2"
	"github.com/exaring/otelpgx"
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/metinatakli/planetarium-reservation-system/api"
	"github.com/metinatakli/planetarium-reservation-system/internal/domain"
	"github.com/metinatakli/planetarium-reservation-system/internal/events"
	"github.com/metinatakli/planetarium-reservation-system/internal/mailer"
	"github.com/metinatakli/planetarium-reservation-system/internal/repository"
	"github.com/metinatakli/planetarium-reservation-system/internal/storage"
	appvalidator "github.com/metinatakli/planetarium-reservation-system/internal/validator"
	"github.com/metinatakli/planetarium-reservation-system/internal/vcs"
	"github.com/metinatakli/planetarium-reservation-system/migrations"
	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/bridges/otelslog"
	"go.opentelemetry.io/otel"
)

const serviceName = "planetarium-reservation-api"

var (
	version = vcs.Version()
)

type Application struct {
	config         Config
	logger         *slog.Logger
	db             *pgxpool.Pool
	redis          redis.UniversalClient
	validator      *validator.Validate
	mailer         mailer.Mailer
	publisher      events.Publisher
	images         storage.ImageStore
	openapi        *openapi3.T
	sessionManager *scs.SessionManager
	metrics        *bookingMetrics
	wg             sync.WaitGroup

	userRepo        domain.UserRepository
	themeRepo       domain.ShowThemeRepository
	showRepo        domain.AstronomyShowRepository
	domeRepo        domain.PlanetariumDomeRepository
	sessionRepo     domain.ShowSessionRepository
	reservationRepo domain.ReservationRepository
}

type Config struct {
	Port             int
	Env              string
	OtelCollectorUrl string
	OtelSampleRatio  float64
	DB               DBConfig
	Redis            RedisConfig
	SMTP             SMTPConfig
	AMQP             AMQPConfig
	Storage          StorageConfig
}

type DBConfig struct {
	DSN          string
	MaxOpenConns int
	MaxIdleTime  time.Duration
	AutoMigrate  bool
}

type RedisConfig struct {
	URL          string
	MaxOpenConns int
	MaxIdleConns int
	MaxIdleTime  time.Duration
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	Sender   string
}

type AMQPConfig struct {
	URL string
}

type StorageConfig struct {
	Driver        string
	Dir           string
	BaseURL       string
	CloudinaryURL string
}

// NewApp wires an Application from already constructed dependencies.
func NewApp(
	cfg Config,
	logger *slog.Logger,
	db *pgxpool.Pool,
	redisClient redis.UniversalClient,
	sessionManager *scs.SessionManager,
	mailer mailer.Mailer,
	publisher events.Publisher,
	images storage.ImageStore,
) (*Application, error) {
	spec, err := api.GetSpec()
	if err != nil {
		return nil, err
	}

	metrics, err := newBookingMetrics(otel.Meter(serviceName))
	if err != nil {
		return nil, err
	}

	return &Application{
		config:          cfg,
		logger:          logger,
		db:              db,
		redis:           redisClient,
		validator:       appvalidator.NewValidator(),
		mailer:          mailer,
		publisher:       publisher,
		images:          images,
		openapi:         spec,
		sessionManager:  sessionManager,
		metrics:         metrics,
		userRepo:        repository.NewPostgresUserRepository(db),
		themeRepo:       repository.NewPostgresShowThemeRepository(db),
		showRepo:        repository.NewPostgresAstronomyShowRepository(db),
		domeRepo:        repository.NewPostgresPlanetariumDomeRepository(db),
		sessionRepo:     repository.NewPostgresShowSessionRepository(db),
		reservationRepo: repository.NewPostgresReservationRepository(db),
	}, nil
}

func Run() error {
	// a missing .env file is fine, the environment and flags still apply
	_ = godotenv.Load()

	var cfg Config

	flag.IntVar(&cfg.Port, "port", envInt("PORT", 3000), "server port")
	flag.StringVar(&cfg.Env, "env", envString("APP_ENV", "dev"), "Environment (dev|staging|prod)")
	flag.StringVar(&cfg.OtelCollectorUrl, "otel-collector-url", os.Getenv("OTEL_COLLECTOR_URL"), "OpenTelemetry collector gRPC endpoint")
	flag.Float64Var(&cfg.OtelSampleRatio, "otel-sample-ratio", 1, "Share of new traces to sample (0..1)")

	flag.StringVar(&cfg.DB.DSN, "db-dsn", os.Getenv("DB_DSN"), "PostgreSQL DSN")
	flag.IntVar(&cfg.DB.MaxOpenConns, "db-max-open-conns", 25, "PostgreSQL max open connections")
	flag.DurationVar(&cfg.DB.MaxIdleTime, "db-max-idle-time", 15*time.Minute, "PostgreSQL max idle time for connections")
	flag.BoolVar(&cfg.DB.AutoMigrate, "db-migrate", true, "Apply database migrations on startup")

	flag.StringVar(&cfg.Redis.URL, "redis-url", os.Getenv("REDIS_URL"), "Redis URL")
	flag.IntVar(&cfg.Redis.MaxOpenConns, "redis-max-open-conns", 25, "Redis max open connections")
	flag.IntVar(&cfg.Redis.MaxIdleConns, "redis-max-idle-conns", 10, "Redis max idle connections")
	flag.DurationVar(&cfg.Redis.MaxIdleTime, "redis-max-idle-time", 2*time.Minute, "Redis max idle time for connections")

	flag.StringVar(&cfg.SMTP.Host, "smtp-host", envString("SMTP_HOST", "sandbox.smtp.mailtrap.io"), "SMTP host")
	flag.IntVar(&cfg.SMTP.Port, "smtp-port", envInt("SMTP_PORT", 2525), "SMTP port")
	flag.StringVar(&cfg.SMTP.Username, "smtp-username", os.Getenv("SMTP_USERNAME"), "SMTP username")
	flag.StringVar(&cfg.SMTP.Password, "smtp-password", os.Getenv("SMTP_PASSWORD"), "SMTP password")
	flag.StringVar(&cfg.SMTP.Sender, "smtp-sender", envString("SMTP_SENDER", "Planetarium <no-reply@planetarium.local>"), "SMTP sender")

	flag.StringVar(&cfg.AMQP.URL, "amqp-url", os.Getenv("AMQP_URL"), "RabbitMQ URL, events are dropped when empty")

	flag.StringVar(&cfg.Storage.Driver, "storage-driver", envString("STORAGE_DRIVER", "local"), "Image storage (local|cloudinary)")
	flag.StringVar(&cfg.Storage.Dir, "storage-dir", envString("STORAGE_DIR", "./media"), "Local image storage directory")
	flag.StringVar(&cfg.Storage.BaseURL, "storage-base-url", envString("STORAGE_BASE_URL", "/media"), "Base URL of locally stored images")
	flag.StringVar(&cfg.Storage.CloudinaryURL, "cloudinary-url", os.Getenv("CLOUDINARY_URL"), "Cloudinary URL")

	displayVersion := flag.Bool("version", false, "Display version and exit")

	flag.Parse()

	if *displayVersion {
		fmt.Printf("Version:\t%s\n", version)
		os.Exit(0)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	shutdownTelemetry, err := InitTelemetry(cfg, logger)
	if err != nil {
		return err
	}
	defer shutdownTelemetry(context.Background())

	if cfg.OtelCollectorUrl != "" {
		logger = slog.New(NewMultiHandler(
			slog.NewTextHandler(os.Stdout, nil),
			otelslog.NewHandler(serviceName),
		))
	}

	if cfg.DB.AutoMigrate {
		err = migrations.Up(cfg.DB.DSN)
		if err != nil {
			return err
		}
		logger.Info("database migrations applied")
	}

	db, err := NewDatabasePool(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	redisClient, err := NewRedisClient(cfg)
	if err != nil {
		return err
	}
	defer redisClient.Close()

	publisher, err := newPublisher(cfg)
	if err != nil {
		return err
	}
	defer publisher.Close()

	images, err := newImageStore(cfg)
	if err != nil {
		return err
	}

	app, err := NewApp(
		cfg,
		logger,
		db,
		redisClient,
		NewSessionManager(redisClient),
		mailer.NewSMTPMailer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Username, cfg.SMTP.Password, cfg.SMTP.Sender),
		publisher,
		images,
	)
	if err != nil {
		return err
	}

	return app.run()
}

func envString(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}

	return fallback
}

func envInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}

	return v
}

func NewSessionManager(client *redis.Client) *scs.SessionManager {
	sessionManager := scs.New()

	sessionManager.Store = goredisstore.New(client)
	sessionManager.IdleTimeout = 20 * time.Minute
	sessionManager.Cookie.Name = "session_id"

	return sessionManager
}

func NewRedisClient(cfg Config) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:            cfg.Redis.URL,
		MaxIdleConns:    cfg.Redis.MaxIdleConns,
		MaxActiveConns:  cfg.Redis.MaxOpenConns,
		ConnMaxIdleTime: cfg.Redis.MaxIdleTime,
	})

	if err := redisotel.InstrumentTracing(rdb); err != nil {
		return nil, err
	}

	if err := redisotel.InstrumentMetrics(rdb); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err := rdb.Ping(ctx).Err()
	if err != nil {
		return nil, err
	}

	return rdb, nil
}

func NewDatabasePool(cfg Config) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(cfg.DB.DSN)
	if err != nil {
		return nil, err
	}

	config.MaxConnIdleTime = cfg.DB.MaxIdleTime
	config.MaxConns = int32(cfg.DB.MaxOpenConns)
	config.ConnConfig.Tracer = otelpgx.NewTracer()

	db, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err = db.Ping(ctx)
	if err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

func newPublisher(cfg Config) (events.Publisher, error) {
	if cfg.AMQP.URL == "" {
		return events.NoopPublisher{}, nil
	}

	return events.NewAMQPPublisher(cfg.AMQP.URL)
}

func newImageStore(cfg Config) (storage.ImageStore, error) {
	switch cfg.Storage.Driver {
	case "local":
		return storage.NewLocalImageStore(cfg.Storage.Dir, cfg.Storage.BaseURL), nil
	case "cloudinary":
		return storage.NewCloudinaryImageStore(cfg.Storage.CloudinaryURL)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}

func (app *Application) run() error {
	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%d", app.config.Port),
		Handler:      app.Routes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		ErrorLog:     slog.NewLogLogger(app.logger.Handler(), slog.LevelDebug),
	}

	shutdownError := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		app.logger.Info("shutting down server", "signal", s.String())

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		err := srv.Shutdown(ctx)
		if err != nil {
			shutdownError <- err
			return
		}

		app.logger.Info("completing background tasks", "addr", srv.Addr)

		app.Wait()
		shutdownError <- nil
	}()

	app.logger.Info("starting server", "addr", srv.Addr, "env", app.config.Env)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdownError
	if err != nil {
		return err
	}

	app.logger.Info("stopped server", "addr", srv.Addr)

	return nil
}

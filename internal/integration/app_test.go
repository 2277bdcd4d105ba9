package integration_test

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"github.com/alexedwards/scs/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/planetarium-reservation-system/internal/app"
	"github.com/metinatakli/planetarium-reservation-system/internal/events"
	"github.com/metinatakli/planetarium-reservation-system/internal/mailer"
	"github.com/metinatakli/planetarium-reservation-system/internal/mocks"
	"github.com/redis/go-redis/v9"
)

type TestApp struct {
	App            *app.Application
	Handler        http.Handler
	DB             *pgxpool.Pool
	Redis          *redis.Client
	SessionManager *scs.SessionManager
	Mailer         *mailer.MockMailer
	Publisher      *events.MockPublisher
	Images         *mocks.MockImageStore
}

func newTestApp(cfg app.Config) (*TestApp, error) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelWarn}))

	db, err := app.NewDatabasePool(cfg)
	if err != nil {
		return nil, err
	}

	redisClient, err := app.NewRedisClient(cfg)
	if err != nil {
		db.Close()
		return nil, err
	}

	sessionManager := app.NewSessionManager(redisClient)
	mockMailer := mailer.NewMockMailer()
	publisher := &events.MockPublisher{}
	images := &mocks.MockImageStore{BaseURL: "http://media.test"}

	application, err := app.NewApp(cfg, logger, db, redisClient, sessionManager, mockMailer, publisher, images)
	if err != nil {
		db.Close()
		redisClient.Close()
		return nil, err
	}

	return &TestApp{
		App:            application,
		Handler:        application.Routes(),
		DB:             db,
		Redis:          redisClient,
		SessionManager: sessionManager,
		Mailer:         mockMailer,
		Publisher:      publisher,
		Images:         images,
	}, nil
}

func (a *TestApp) Close() {
	a.App.Wait()
	a.DB.Close()
	a.Redis.Close()
}

func (a *TestApp) flushSessions() error {
	return a.Redis.FlushDB(context.Background()).Err()
}

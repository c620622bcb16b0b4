// Package app wires configuration, storage, the ledger, and services into
// one shared core used by cmd/varlik-server.
package app

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/varlikapp/varlik/internal/clients/gemini"
	"github.com/varlikapp/varlik/internal/common"
	"github.com/varlikapp/varlik/internal/interfaces"
	"github.com/varlikapp/varlik/internal/ledger"
	"github.com/varlikapp/varlik/internal/services/advisor"
	"github.com/varlikapp/varlik/internal/services/reminder"
	"github.com/varlikapp/varlik/internal/storage/badger"
)

// App holds all initialized services and storage.
type App struct {
	Config      *common.Config
	Logger      *common.Logger
	KV          interfaces.KeyValueStorage
	Ledger      *ledger.Store
	Gemini      interfaces.GeminiClient // nil when no API key is configured
	Advisor     interfaces.AdvisorService
	Reminders   *reminder.Service
	StartupTime time.Time
}

// NewApp initializes storage, loads the balance book, and wires services.
// configPath may be empty, in which case VARLIK_CONFIG and the default
// location are tried.
func NewApp(configPath string) (*App, error) {
	if configPath == "" {
		configPath = os.Getenv("VARLIK_CONFIG")
	}
	if configPath == "" {
		configPath = "config/varlik.toml"
	}

	config, err := common.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger := common.NewLoggerFromConfig(config.Logging)

	kv, err := badger.NewStore(logger, config.Storage.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	book := ledger.NewStore(kv, logger)
	// Rehydration failures leave an empty book; they are logged, never fatal.
	book.Load(context.Background())

	var geminiClient interfaces.GeminiClient
	if key := config.Clients.Gemini.APIKey; key != "" {
		client, err := gemini.NewClient(context.Background(), key,
			gemini.WithModel(config.Clients.Gemini.Model),
			gemini.WithLogger(logger),
		)
		if err != nil {
			logger.Warn().Err(err).Msg("Gemini client unavailable, advisor runs offline")
		} else {
			geminiClient = client
		}
	} else {
		logger.Info().Msg("No Gemini API key configured, advisor runs offline")
	}

	advisorSvc := advisor.NewService(book, geminiClient, config.DisplayCurrency, logger)
	reminderSvc := reminder.NewService(book, config.Reminders, logger)

	return &App{
		Config:      config,
		Logger:      logger,
		KV:          kv,
		Ledger:      book,
		Gemini:      geminiClient,
		Advisor:     advisorSvc,
		Reminders:   reminderSvc,
		StartupTime: time.Now(),
	}, nil
}

// StartReminders starts the due-date scheduler when enabled.
func (a *App) StartReminders() {
	if !a.Config.Reminders.Enabled {
		return
	}
	if err := a.Reminders.Start(); err != nil {
		a.Logger.Warn().Err(err).Msg("Reminder scheduler not started")
	}
}

// Close flushes pending writes and shuts down services and storage.
func (a *App) Close() {
	if a.Config.Reminders.Enabled {
		a.Reminders.Stop()
	}
	a.Ledger.Flush()
	if a.Gemini != nil {
		if err := a.Gemini.Close(); err != nil {
			a.Logger.Warn().Err(err).Msg("Gemini client close failed")
		}
	}
	if err := a.KV.Close(); err != nil {
		a.Logger.Warn().Err(err).Msg("Storage close failed")
	}
}

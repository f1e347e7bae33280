package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hance08/atm/internal/config"
	"github.com/hance08/atm/internal/constants"
	"github.com/hance08/atm/internal/logger"
	"github.com/hance08/atm/internal/service"
	"github.com/hance08/atm/internal/store"
	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

type App struct {
	Config    *config.Config
	Service   *service.Service
	Store     store.Repository
	Logger    zerolog.Logger
	SessionID string
}

// NewApp builds logger, in-memory database and teller for one session and
// opens the account with its fixed starting balance and PIN.
func NewApp(cfg *config.Config) (*App, func(), error) {
	log, closeLog, err := logger.New(cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	sessionID := ulid.Make().String()
	log = log.With().Str("session_id", sessionID).Logger()

	dbStore, err := store.NewStore(store.MemoryDSN(constants.AppName+"-"+sessionID), store.Migrations)
	if err != nil {
		_ = closeLog()
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	svc := service.NewService(dbStore, service.Config{
		DefaultCurrency: cfg.Defaults.Currency,
	}, log)

	cleanup := func() {
		if err := dbStore.Close(); err != nil {
			log.Error().Err(err).Msg("error closing database")
		}
		log.Debug().Msg("session closed")
		if err := closeLog(); err != nil {
			fmt.Fprintf(os.Stderr, "Error closing log file: %v\n", err)
		}
	}

	if err := svc.Teller.Open(decimal.NewFromInt(constants.StartingBalance), constants.InitialPIN); err != nil {
		cleanup()
		return nil, nil, err
	}

	log.Info().Msg("session started")

	return &App{
		Config:    cfg,
		Service:   svc,
		Store:     dbStore,
		Logger:    log,
		SessionID: sessionID,
	}, cleanup, nil
}

// AppDataDir is where the optional config.yaml is looked up.
func AppDataDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("unable to determine user home directory: %w", err)
		}
		return filepath.Join(home, "."+constants.AppName), nil
	}

	return filepath.Join(configDir, constants.AppName), nil
}

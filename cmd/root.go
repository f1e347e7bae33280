package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/hance08/atm/internal/app"
	"github.com/hance08/atm/internal/config"
	"github.com/hance08/atm/internal/constants"
	"github.com/hance08/atm/internal/errhandler"
	"github.com/hance08/atm/internal/validation"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func Execute() {
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " ERROR ",
		Style: pterm.NewStyle(pterm.BgLightRed, pterm.FgBlack),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := NewRootCmd().ExecuteContext(ctx)
	stop()

	if err != nil {
		errhandler.HandleError(err)
	}
}

func NewRootCmd() *cobra.Command {
	var (
		cfgFile string
		cfg     *config.Config
	)
	v := viper.New()

	rootCmd := &cobra.Command{
		Use:   constants.AppName,
		Short: "atm is a terminal ATM simulator",
		Long: `atm is a terminal ATM simulator.

	It opens a single in-memory account (starting balance 1000, PIN 1234) and lets
	you check the balance, deposit, withdraw, change the PIN and view the history.
	Nothing is saved: the account is gone when the program exits.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := loadConfig(v, cfgFile)
			if err != nil {
				return err
			}
			cfg = loaded
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &sessionRunner{
				cfg: cfg,
			}
			return runner.Run(cmd.Context())
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&cfgFile, "config", "c", "", "set the config file path")
	flags.String("log-level", "", "log level: debug, info, warn, error or disabled")
	flags.String("currency", "", "currency code used to display amounts (e.g. USD)")

	_ = v.BindPFlag("log.level", flags.Lookup("log-level"))
	_ = v.BindPFlag("defaults.currency", flags.Lookup("currency"))

	rootCmd.AddCommand(NewInfoCmd(func() *config.Config { return cfg }))

	return rootCmd
}

func loadConfig(v *viper.Viper, cfgFile string) (*config.Config, error) {
	defaults := config.NewDefault()
	v.SetDefault("defaults.currency", defaults.Defaults.Currency)
	v.SetDefault("log.level", defaults.Log.Level)
	v.SetDefault("log.format", defaults.Log.Format)
	v.SetDefault("log.file", defaults.Log.File)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		appDir, err := app.AppDataDir()
		if err != nil {
			return nil, fmt.Errorf("error getting app dir: %w", err)
		}

		v.AddConfigPath(appDir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("ATM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv() // allow using environment variables to override

	if err := v.ReadInConfig(); err != nil {

		if cfgFile != "" {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return nil, fmt.Errorf("config file error: %w", err)
		}
	}

	cfg := config.NewDefault()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %v", err)
	}

	if err := validation.ValidateCurrency(cfg.Defaults.Currency); err != nil {
		return nil, fmt.Errorf("invalid defaults.currency: %w", err)
	}
	cfg.Defaults.Currency = strings.ToUpper(strings.TrimSpace(cfg.Defaults.Currency))
	if cfg.Defaults.Currency == "" {
		cfg.Defaults.Currency = constants.DefaultCurrency
	}

	if cfg.Log.File != "" {
		path, err := expandPath(cfg.Log.File)
		if err != nil {
			return nil, fmt.Errorf("invalid log.file: %w", err)
		}
		cfg.Log.File = path
	}

	cfg.ConfigPath = v.ConfigFileUsed()

	return cfg, nil
}

func expandPath(path string) (string, error) {
	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		if path == "~" {
			return home, nil
		}
		if strings.HasPrefix(path, "~/") || strings.HasPrefix(path, "~\\") {
			return filepath.Join(home, path[2:]), nil
		}
	}
	return path, nil
}

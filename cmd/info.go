package cmd

import (
	"github.com/hance08/atm/internal/app"
	"github.com/hance08/atm/internal/config"
	"github.com/hance08/atm/internal/constants"
	"github.com/hance08/atm/internal/ui"
	"github.com/hance08/atm/internal/ui/views"
	"github.com/hance08/atm/internal/utils"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

type infoRunner struct {
	cfg *config.Config
}

func NewInfoCmd(cfg func() *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Display application information",
		Long:  `Display current configuration and how the simulated account is set up.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &infoRunner{
				cfg: cfg(),
			}

			return runner.Run()
		},
	}
}

func (r *infoRunner) Run() error {
	configPath := r.cfg.ConfigPath
	if configPath == "" {
		configPath = "(None, using defaults)"
	}

	items := views.SystemInfoItem{
		ConfigPath:      configPath,
		DefaultCurrency: r.cfg.Defaults.Currency,
		LogLevel:        r.cfg.Log.Level,
		LogFile:         r.cfg.Log.File,
		AppDataDir:      getAppDataDirOrUnknown(),
		StartingBalance: utils.FormatMoney(decimal.NewFromInt(constants.StartingBalance), r.cfg.Defaults.Currency),
	}

	ui.PrintL2Title("System Info")
	return views.RenderSystemInfo(items)
}

func getAppDataDirOrUnknown() string {
	dir, err := app.AppDataDir()
	if err != nil {
		return "Unknown"
	}
	return dir
}

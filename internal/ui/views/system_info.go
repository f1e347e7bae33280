package views

import "github.com/pterm/pterm"

type SystemInfoItem struct {
	ConfigPath      string
	DefaultCurrency string
	LogLevel        string
	LogFile         string
	AppDataDir      string
	StartingBalance string
}

func RenderSystemInfo(data SystemInfoItem) error {
	logFile := data.LogFile
	if logFile == "" {
		logFile = "(stderr)"
	}

	tableData := pterm.TableData{
		{"Configuration File", data.ConfigPath},
		{"Default Currency", data.DefaultCurrency},
		{"Log Level", data.LogLevel},
		{"Log File", logFile},
		{"Account Storage", pterm.Yellow("In-memory (discarded on exit)")},
		{"Starting Balance", data.StartingBalance},
		{"AppData Directory", data.AppDataDir},
	}

	return pterm.DefaultTable.WithData(tableData).Render()
}

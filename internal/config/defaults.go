package config

const (
	defaultLogDir                = "~/.local/share/gstsort/logs"
	defaultRunLogPath            = "~/.local/share/gstsort/history.db"
	defaultMode                  = "fresh"
	defaultClientFolderMaxLength = 35
	defaultLogFormat             = "console"
	defaultLogLevel              = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			LogDir: defaultLogDir,
		},
		Organize: Organize{
			Mode:                  defaultMode,
			ClientFolderMaxLength: defaultClientFolderMaxLength,
			ClientOverrides:       map[string]bool{},
		},
		RunLog: RunLog{
			Enabled: true,
			Path:    defaultRunLogPath,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}

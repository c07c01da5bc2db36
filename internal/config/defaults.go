package config

const (
	defaultConfigPath = "~/.config/talknotes/config.toml"
	projectConfigName = "talknotes.toml"
	defaultEditor     = "vi"
	defaultLogFormat  = "console"
	defaultLogLevel   = "warn"
	defaultStoreLock  = true
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
		Store: Store{
			Lock: defaultStoreLock,
		},
	}
}

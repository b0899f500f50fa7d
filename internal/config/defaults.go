package config

const (
	defaultConfigPath        = "~/.config/beatinfo/config.toml"
	defaultCustomSongsDir    = "~/BeatSaber/Beat Saber_Data/CustomLevels"
	defaultCustomWIPSongsDir = "~/BeatSaber/Beat Saber_Data/CustomWIPLevels"
	defaultLogDir            = "~/.local/share/beatinfo/logs"
	defaultLogFormat         = "console"
	defaultLogLevel          = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			CustomSongsDir:    defaultCustomSongsDir,
			CustomWIPSongsDir: defaultCustomWIPSongsDir,
			LogDir:            defaultLogDir,
			LockDir:           defaultLockDir(),
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}

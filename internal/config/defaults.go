package config

const (
	defaultConfigPath     = "~/.config/sabhook/config.toml"
	projectConfigName     = "sabhook.toml"
	defaultUsername       = "SABnzbd"
	defaultAvatarURL      = "https://github.com/sabnzbd.png"
	defaultRequestTimeout = 10
	maxRequestTimeout     = 300
	defaultSourceName     = "SABnzbd"
	defaultIconURL        = "https://github.com/sabnzbd.png"
	defaultFooter         = "SABnzbd Notification"
	defaultLogFormat      = "console"
	defaultLogLevel       = "info"
	maxUsernameLength     = 80
	dotEnvName            = ".env"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Discord: Discord{
			Username:       defaultUsername,
			AvatarURL:      defaultAvatarURL,
			RequestTimeout: defaultRequestTimeout,
		},
		Embed: Embed{
			SourceName: defaultSourceName,
			IconURL:    defaultIconURL,
			Footer:     defaultFooter,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}

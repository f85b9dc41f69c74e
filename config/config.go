package config

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server      Server
	Email       Email
	Env         string
	FrontendURL string
}

type Server struct {
	Port string
}

type Email struct {
	Provider     string
	User         string
	Password     string
	Recipient    string
	SMTPHost     string
	SMTPPort     int
	ResendAPIKey string
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()

	viper.SetDefault("PORT", "3000")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("EMAIL_PROVIDER", "smtp")
	viper.SetDefault("RECIPIENT_EMAIL", "shikhirev.nn@phystech.edu")
	viper.SetDefault("SMTP_HOST", "smtp.gmail.com")
	viper.SetDefault("SMTP_PORT", 587)
	viper.SetDefault("FRONTEND_URL", "https://nicshik.github.io/mathstat-exam-quiz/")

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	var config Config

	config.Server.Port = viper.GetString("PORT")
	config.Env = viper.GetString("APP_ENV")
	config.FrontendURL = viper.GetString("FRONTEND_URL")

	config.Email.Provider = viper.GetString("EMAIL_PROVIDER")
	config.Email.User = viper.GetString("EMAIL_USER")
	config.Email.Password = viper.GetString("EMAIL_PASSWORD")
	config.Email.Recipient = viper.GetString("RECIPIENT_EMAIL")
	config.Email.SMTPHost = viper.GetString("SMTP_HOST")
	config.Email.SMTPPort = viper.GetInt("SMTP_PORT")
	config.Email.ResendAPIKey = viper.GetString("RESEND_API_KEY")

	log.Info().
		Str("env", config.Env).
		Str("port", config.Server.Port).
		Str("emailProvider", config.Email.Provider).
		Str("recipient", config.Email.Recipient).
		Msg("Config loaded")
	return &config, nil
}

// IsProduction gates how much error detail reaches API clients.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

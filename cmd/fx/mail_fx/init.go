package mail_fx

import (
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"

	"holiday-api/internal/config"
	"holiday-api/internal/services"
)

var Module = fx.Provide(provideMailService)

func provideMailService(cfg *config.Config) services.IMailService {
	s := cfg.SMTP
	if !s.Enabled() {
		log.Warn().Msg("SMTP not configured, invitation emails are disabled")
		return services.NewNoopMailService()
	}

	return services.NewSMTPMailService(services.SMTPConfig{
		Host:       s.Host,
		Port:       s.Port,
		Username:   s.Username,
		Password:   s.Password,
		From:       s.From,
		AppName:    "Holiday Planner",
		AppBaseURL: s.AppBaseURL,
	})
}

package wizard_fx

import (
	"time"

	"go.uber.org/fx"

	"weddy/internal/config"
	"weddy/internal/services"
)

var Module = fx.Provide(provideWizardService)

func provideWizardService(cfg *config.Config) services.WizardServiceInterface {
	return services.NewWizardService(time.Duration(cfg.Wizard.SessionTTLMinutes) * time.Minute)
}

package controllers_fx

import (
	"go.uber.org/fx"

	"weddy/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewCatalogController),
	fx.Provide(controllers.NewWizardController),
	fx.Provide(controllers.NewSearchController),
	fx.Provide(controllers.NewSelectionController),
	fx.Provide(controllers.NewPlaceController),
	fx.Provide(controllers.NewEventController))

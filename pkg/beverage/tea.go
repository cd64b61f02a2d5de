package beverage

import (
	"context"

	"github.com/w-029/DP-TemplatePattern/pkg/recipe"
)

// Tea is steeped and served with lemon.
// It does not override the hook, so the recipe default applies.
type Tea struct{}

func (Tea) Name() string {
	return "Tea"
}

func (Tea) Brew(_ context.Context, n recipe.Notifier) error {
	return n.Notify("Steeping the tea")
}

func (Tea) AddCondiments(_ context.Context, n recipe.Notifier) error {
	return n.Notify("Adding Lemon")
}

var _ recipe.Beverage = Tea{}

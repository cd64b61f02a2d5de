package beverage

import (
	"context"

	"github.com/w-029/DP-TemplatePattern/pkg/recipe"
)

// Coffee is a filter coffee served with sugar and milk.
type Coffee struct {
	recipe.DefaultHook
}

func (Coffee) Name() string {
	return "Coffee"
}

func (Coffee) Brew(_ context.Context, n recipe.Notifier) error {
	return n.Notify("Dripping Coffee through filter")
}

func (Coffee) AddCondiments(_ context.Context, n recipe.Notifier) error {
	return n.Notify("Adding Sugar and Milk")
}

// BlackCoffee is a Coffee served without condiments.
type BlackCoffee struct {
	Coffee
}

func (BlackCoffee) Name() string {
	return "BlackCoffee"
}

// CustomerWantsCondiments always returns false.
func (BlackCoffee) CustomerWantsCondiments() bool {
	return false
}

var (
	_ recipe.Beverage      = Coffee{}
	_ recipe.CondimentHook = BlackCoffee{}
)

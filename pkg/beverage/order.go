package beverage

import (
	"github.com/w-029/DP-TemplatePattern/pkg/recipe"
)

// Order is a beverage whose condiments are decided by the customer rather than by the beverage.
type Order struct {
	recipe.Beverage
	Condiments bool
}

// WithCondiments wraps bev so that condiments are added only when wants is true.
func WithCondiments(bev recipe.Beverage, wants bool) *Order {
	return &Order{Beverage: bev, Condiments: wants}
}

// Name returns the name of the wrapped beverage.
func (o *Order) Name() string {
	return recipe.BeverageName(o.Beverage)
}

func (o *Order) CustomerWantsCondiments() bool {
	return o.Condiments
}

var _ recipe.CondimentHook = (*Order)(nil)

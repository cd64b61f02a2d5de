package recipe

import (
	"context"
	"fmt"
	"strings"
)

// Beverage supplies the steps the recipe delegates. Both steps are required.
type Beverage interface {
	// Brew describes how the beverage is brewed.
	Brew(ctx context.Context, n Notifier) error
	// AddCondiments adds the beverage condiments. It only runs when the hook allows it.
	AddCondiments(ctx context.Context, n Notifier) error
}

// CondimentHook lets a beverage decide whether condiments are added.
// Beverages that do not implement it get the DefaultHook behaviour.
type CondimentHook interface {
	CustomerWantsCondiments() bool
}

// DefaultHook is the hook used when a beverage does not provide its own.
// It can be embedded in a beverage to make the default explicit.
type DefaultHook struct{}

// CustomerWantsCondiments always returns true.
func (DefaultHook) CustomerWantsCondiments() bool {
	return true
}

var _ CondimentHook = DefaultHook{}

// WantsCondiments evaluates the hook of bev, falling back to DefaultHook.
func WantsCondiments(bev Beverage) bool {
	if hook, ok := bev.(CondimentHook); ok {
		return hook.CustomerWantsCondiments()
	}

	return DefaultHook{}.CustomerWantsCondiments()
}

// BeverageName returns the name of the beverage, as given by a Name method
// when the beverage has one, or its type name otherwise.
func BeverageName(bev Beverage) string {
	if named, ok := bev.(interface{ Name() string }); ok {
		return named.Name()
	}

	name := strings.TrimLeft(fmt.Sprintf("%T", bev), "*")
	if idx := strings.LastIndex(name, "."); idx >= 0 {
		name = name[idx+1:]
	}

	return name
}

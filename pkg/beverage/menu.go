package beverage

import (
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/w-029/DP-TemplatePattern/pkg/recipe"
)

var ErrUnknownBeverage = errors.New("unknown beverage")

// MenuItem describes a beverage that can be ordered by name.
type MenuItem struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Condiments  bool   `yaml:"condiments"`
}

type menuEntry struct {
	description string
	newBeverage func() recipe.Beverage
}

var menu = map[string]menuEntry{
	"coffee": {
		description: "filter coffee with sugar and milk",
		newBeverage: func() recipe.Beverage { return Coffee{} },
	},
	"black-coffee": {
		description: "filter coffee, no condiments",
		newBeverage: func() recipe.Beverage { return BlackCoffee{} },
	},
	"tea": {
		description: "steeped tea with lemon",
		newBeverage: func() recipe.Beverage { return Tea{} },
	},
}

// Lookup returns the beverage registered under name. Names are case insensitive.
func Lookup(name string) (recipe.Beverage, error) {
	entry, ok := menu[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownBeverage, "%q", name)
	}

	return entry.newBeverage(), nil
}

// Menu returns every beverage that can be ordered, sorted by name.
func Menu() []MenuItem {
	items := make([]MenuItem, 0, len(menu))
	for name, entry := range menu {
		items = append(items, MenuItem{
			Name:        name,
			Description: entry.description,
			Condiments:  recipe.WantsCondiments(entry.newBeverage()),
		})
	}

	sort.Slice(items, func(i, j int) bool {
		return items[i].Name < items[j].Name
	})

	return items
}

// Package recipe provides the fixed preparation algorithm of a caffeine beverage.
//
// A Recipe always runs the same sequence: boil water, brew, pour into the cup and,
// when the customer wants them, add condiments. Boiling and pouring are identical for
// every beverage and cannot be replaced. Brewing and adding condiments are delegated
// to the Beverage being prepared, and whether condiments are added at all is decided
// by a hook the beverage may override. The recipe alone decides when each step runs;
// beverages never call back into the recipe.
//
// Every executed step writes one line to the recipe's Notifier. Options implementing
// model.RecipeOption observe the preparation and can measure it, log it or draw it.
//
// A Recipe holds no state between preparations, so the same recipe can prepare many
// beverages one after the other or concurrently with PrepareAll.
package recipe

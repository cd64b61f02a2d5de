// Package model provides the data structures shared by the recipe package and its options.
// It describes the steps of a recipe, a single preparation of a beverage,
// and the contract recipe options implement to observe a preparation.
package model

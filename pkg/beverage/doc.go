// Package beverage provides the beverages prepared by the recipe package.
package beverage

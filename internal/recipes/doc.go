// Package recipes defines the recipe record shared by the catalog loader,
// the favorites overlay, and the browse engine.
package recipes

// Package library composes the catalog loader and the favorites store into
// the recipe repository.
//
// Every read re-parses the catalog asset and overlays the saved flag per
// recipe, so callers always observe fresh data; nothing is cached between
// calls. Toggling a favorite flips the current flag rather than setting it,
// mirroring a favorite-button tap, and is therefore deliberately not
// idempotent.
package library

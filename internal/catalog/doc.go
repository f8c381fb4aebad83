// Package catalog reads the static recipe catalog asset.
//
// The asset is a JSON array of recipe records and is the source of truth for
// every recipe field except the saved flag. Load re-reads the file on every
// call; callers that want caching must provide it themselves (the repository
// deliberately does not, trading efficiency for freshness over a bounded
// catalog).
package catalog

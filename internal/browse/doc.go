// Package browse derives the visible recipe list from three independent
// filter criteria.
//
// The engine holds a category, a free-text query, and a vegetarian flag.
// Changing any criterion re-reads the repository, filters the full list with
// all three predicates ANDed, and broadcasts the result to subscribers.
// Delivery is latest-value-wins: a subscriber that falls behind sees only the
// newest snapshot, never a backlog of superseded intermediate lists.
package browse

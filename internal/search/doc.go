// Package search implements the address search coordinator: it owns the
// search term, the debounce timer and the request lifecycle, and derives the
// observable [models.SearchState] consumed by the presentation layer.
//
// All handlers are safe for concurrent use. Failures of the lookup client are
// never returned to callers; they are surfaced through the state's Error field
// and the [Notifier] collaborator.
package search

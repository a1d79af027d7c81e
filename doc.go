// Package paiman is the headless core of a painting-collection manager.
//
// Layout:
//   - di: scoped providers (singleton memoization cells, transients) and a
//     name-keyed registry with scope tags
//   - internal/app: composition root; wire builds the leaf services,
//     ControllerModule builds the controllers on top of them
//   - internal/ui/*: overview, entry and add-painting controllers and views
//   - internal/services/*: web view and picture selector implementations
//   - cmd/paiman: CLI that assembles and drives the graph
package paiman

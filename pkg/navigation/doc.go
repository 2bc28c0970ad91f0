// Package navigation implements the page state machine of a multi-page form.
//
// A Controller owns the current page index and the answers accepted so far.
// Forward transitions are gated by a validator; history events restore a
// page unconditionally. The rendering surface and the browser history are
// injected (document.Document and history.History) so a controller can run
// against an in-memory tree, a terminal, or a live page.
//
//	ctrl := navigation.New(cat, doc, stack, navigation.WithLogger(logger))
//	_ = ctrl.Load(ctx, "/form?name&page=2") // always lands on page 1
//	if fieldErr, err := ctrl.Advance(ctx); fieldErr != nil { ... }
package navigation

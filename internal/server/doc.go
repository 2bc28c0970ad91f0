// Package server exposes the form over HTTP. GET /form renders every page in
// one document; the embedded runtime then reports Next clicks, history
// navigation and, under the strict policy, keystrokes to the JSON endpoints,
// and applies the view each one returns. Each browser gets a session, keyed by
// cookie, holding its own navigation controller over an in-memory document.
package server

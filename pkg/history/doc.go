// Package history models the browser navigation history the wizard keeps in
// sync with its current page. Each forward transition pushes an opaque state
// ({"page": n}) together with a readable address of the form
// "?<pageIdentifier>&page=<pageIndex>". Stack is an in-memory history used by
// the server sessions, the terminal runner, and tests.
package history

// Package document describes the rendering surface the navigation controller
// drives. The controller never touches markup directly: it looks elements up
// by id, sets their text and visibility, and reads the inputs of a page back
// as model.FieldRecord values. Memory is an in-process element tree used by
// the HTTP sessions and tests; other packages back the same interface with a
// terminal or a live browser page.
package document

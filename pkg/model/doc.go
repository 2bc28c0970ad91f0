// Package model defines the data shared by the wizard packages: page
// descriptors and their static field definitions, the transient field records
// read back from a rendered page, and the answers accepted while moving
// forward through the form. Labels double as answer keys, so every label must
// be unique across the whole form.
package model

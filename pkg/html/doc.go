// Package html provides the small markup tree used by the form builder.
//
// Nodes are built in memory and serialised in one pass. Attribute names are
// written in alphabetical order so rendered markup is stable across runs and
// can be compared byte for byte in tests.
package html

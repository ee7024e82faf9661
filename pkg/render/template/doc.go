// Package template defines the renderer contract used to wrap rendered
// controls in layout templates. The gotemplate subpackage implements it on
// top of pongo2.
package template

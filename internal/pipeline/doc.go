// Package pipeline renders the generated README to a standalone HTML page so
// the result can be previewed in a browser before it is committed.
//
// Conversion uses Goldmark with the GitHub Flavored Markdown extensions and
// Chroma syntax highlighting with inline styles, so the page needs no
// external stylesheet.
package pipeline

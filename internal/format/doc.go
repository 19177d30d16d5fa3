// Package format holds the pure parsing, validation and formatting helpers
// shared by every front end: purchase dates, prices and quantities typed
// with either decimal separator, Brazilian currency rendering and the
// "Name (Brand)" product labels used by autocomplete.
package format

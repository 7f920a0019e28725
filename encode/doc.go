// Package encode renders projected row lists as indented text for
// terminals, optionally colored per row kind.
package encode

// Package term adapts desktop terminal input, received through tcell, into
// the key event model the session consumes.
package term

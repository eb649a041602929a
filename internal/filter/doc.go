// Package filter provides the shadow blur used to build decoration
// templates.
//
// The blur is separable: a horizontal pass into a scratch pixmap followed by
// a vertical pass back into the source. Only pixels within the margin of an
// edge are convolved; the rest are copied unchanged.
//
// Weights are integers and every channel is divided with truncation, so the
// output is bit-exact across platforms.
package filter

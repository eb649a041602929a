// Package cache provides a small thread-safe LRU cache.
//
// The text package uses it to keep the shaped runs of recently drawn
// strings, since window titles are redrawn on every frame but rarely
// change.
package cache

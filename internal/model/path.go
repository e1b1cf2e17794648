// Package model defines the data structures shared by the search layers.
package model

// Path represents a file system path.
type Path string

// String returns the path as printed in search output.
func (p Path) String() string {
	return string(p)
}

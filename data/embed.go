// Package data provides the embedded text maps.
package data

import "embed"

// dataFS embeds all text maps from the data directory at build time.
//
//go:embed *.txt
var dataFS embed.FS

// FS returns the embedded filesystem containing the maps.
func FS() embed.FS {
	return dataFS
}

// Package web holds the host document and stylesheet served with the site.
package web

import (
	"embed"
	"io/fs"
)

// Index is the host shell the app is mounted into.
//
//go:embed index.html
var Index []byte

//go:embed static
var static embed.FS

// Static returns the stylesheet tree rooted at static/
func Static() fs.FS {
	sub, err := fs.Sub(static, "static")
	if err != nil {
		panic("embedded static dir missing: " + err.Error())
	}
	return sub
}

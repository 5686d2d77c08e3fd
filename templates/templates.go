// Package templates embeds the server-rendered HTML pages so the binary
// runs standalone.
package templates

import "embed"

//go:embed *.html
var FS embed.FS

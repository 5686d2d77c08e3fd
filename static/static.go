// Package static embeds the dashboard's JS and CSS assets.
package static

import "embed"

//go:embed *.js *.css
var FS embed.FS

// Package html holds the capture page templates and the static files served next to it.
package html

import (
	"embed"
	"fmt"
	"io/fs"
	"os"

	"github.com/selebrow/wdlauncher/pkg/config"
)

const (
	StaticDir     = "static"
	templatesGlob = "templates/*.tmpl"
)

//go:embed templates static
var embedded embed.FS

// DevMode is set when assets should be read from the working tree on every request
var DevMode bool

func init() {
	_, DevMode = os.LookupEnv(fmt.Sprintf("_%s_DEV_MODE", config.ConfigPrefix))
}

// Assets returns file system with templates/ and static/ directories
func Assets(dev bool) fs.FS {
	if dev {
		return os.DirFS("html")
	}
	return embedded
}

// Static returns file system rooted at static/ directory
func Static(assets fs.FS) (fs.FS, error) {
	return fs.Sub(assets, StaticDir)
}

package main

import (
	"github.com/selebrow/wdlauncher/pkg/app"
)

const appName = "wdlauncher"

var (
	GitSha = "unknown"
	GitRef = "unknown"
)

func main() {
	app.Run(GitRef, GitSha, appName)
}

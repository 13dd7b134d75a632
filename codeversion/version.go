package codeversion

import (
	"fmt"
	"runtime"
)

// set with -ldflags "-X github.com/Mirantis/pelagia-dashboard/codeversion.<Var>=..."
var (
	Version string
	// Build is a build flavor the binary is packaged for, used as
	// default build variant if configuration does not override it
	Build string
)

func GetGoRuntimeVersion() string {
	return fmt.Sprintf("Go version: %s %s/%s", runtime.Version(), runtime.GOOS, runtime.GOARCH)
}

func GetCodeVersion(app string) string {
	if app == "" {
		app = "App"
	}
	if Build != "" {
		return fmt.Sprintf("%s version: %s (build: %s)", app, Version, Build)
	}
	return fmt.Sprintf("%s version: %s", app, Version)
}

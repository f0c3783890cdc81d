// <xbar.title>App Group Launcher</xbar.title>
// <xbar.version>v1.0</xbar.version>
// <xbar.desc>Launch predefined groups of applications. Allows easy configuration of app groups.</xbar.desc>
// <xbar.dependencies>go</xbar.dependencies>

package main

import (
	"fmt"
	"os"

	_ "github.com/lvim-tech/appgroup/pkg/commands/create"
	_ "github.com/lvim-tech/appgroup/pkg/commands/launch"
	_ "github.com/lvim-tech/appgroup/pkg/commands/list"
	_ "github.com/lvim-tech/appgroup/pkg/commands/remove"
	_ "github.com/lvim-tech/appgroup/pkg/commands/render"
)

// version is set at build time with -ldflags "-X main.version=..."
var version = "0.1.0"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Exit(0)
}

func run() error {
	return newRootCmd(version).Execute()
}

package cmd

import (
	"github.com/urfave/cli/v2"
)

// App is the main urfave/cli.App for archmate
var App = &cli.App{
	Name:  "archmate",
	Usage: "Arch Linux desktop provisioning tool",
	Flags: []cli.Flag{
		debugFlag,
		traceFlag,
	},
	Commands: []*cli.Command{
		versionCommand,
		installCommand,
		configureCommand,
		initCommand,
	},
}

const logo = `
    ____ _______________  ____ ___  ____ _/ /____
   / __ '/ ___/ ___/ __ \/ __ '__ \/ __ '/ __/ _ \
  / /_/ / /  / /__/ / / / / / / / / /_/ / /_/  __/
  \__,_/_/   \___/_/ /_/_/ /_/ /_/\__,_/\__/\___/
`

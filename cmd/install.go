package cmd

import (
	"github.com/archmate/archmate/action"
	"github.com/archmate/archmate/config"
	"github.com/archmate/archmate/phase"

	"github.com/urfave/cli/v2"
)

var installCommand = &cli.Command{
	Name:  "install",
	Usage: "Install the system from the live environment (run as root)",
	Flags: []cli.Flag{
		configFlag,
		forceFlag,
		debugFlag,
		traceFlag,
	},
	Before: actions(initLogging, initConfig, displayLogo),
	Action: func(ctx *cli.Context) error {
		cfg, err := collectConfig(ctx, true)
		if err != nil {
			return err
		}

		host := config.NewLocalHost()
		if err := host.Connect(); err != nil {
			return err
		}
		defer host.Disconnect()

		installAction := action.Install{
			Manager: &phase.Manager{Config: cfg, Host: host},
			Force:   ctx.Bool("force"),
		}

		return installAction.Run()
	},
}

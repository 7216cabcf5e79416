package cmd

import (
	"github.com/archmate/archmate/action"
	"github.com/archmate/archmate/config"
	"github.com/archmate/archmate/phase"

	"github.com/urfave/cli/v2"
)

var configureCommand = &cli.Command{
	Name:  "configure",
	Usage: "Configure the installed system after first boot (run as your user)",
	Flags: []cli.Flag{
		configFlag,
		&cli.BoolFlag{
			Name:  "no-reboot",
			Usage: "Do not offer to reboot when finished",
		},
		debugFlag,
		traceFlag,
	},
	Before: actions(initLogging, initConfig, displayLogo),
	Action: func(ctx *cli.Context) error {
		cfg, err := collectConfig(ctx, false)
		if err != nil {
			return err
		}

		host := config.NewLocalHost()
		if err := host.Connect(); err != nil {
			return err
		}
		defer host.Disconnect()

		configureAction := action.Configure{
			Manager:  &phase.Manager{Config: cfg, Host: host},
			NoReboot: ctx.Bool("no-reboot"),
		}

		return configureAction.Run()
	},
}

package cmd

import (
	"os"

	"github.com/archmate/archmate/config"
	"github.com/creasty/defaults"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v2"
)

var initCommand = &cli.Command{
	Name:  "init",
	Usage: "Create a preseed answers template",
	Action: func(ctx *cli.Context) error {
		cfg := config.Config{
			Disk:     "/dev/sda",
			Username: "user",
		}

		if err := defaults.Set(&cfg); err != nil {
			return err
		}

		encoder := yaml.NewEncoder(os.Stdout)
		return encoder.Encode(&cfg)
	},
}

package cmd

import (
	"fmt"

	"github.com/archmate/archmate/version"
	"github.com/urfave/cli/v2"
)

var versionCommand = &cli.Command{
	Name:  "version",
	Usage: "Output archmate version",
	Action: func(ctx *cli.Context) error {
		fmt.Printf("version: %s\n", version.Version)
		fmt.Printf("commit: %s\n", version.GitCommit)
		fmt.Printf("environment: %s\n", version.Environment)
		if version.IsPre() {
			fmt.Println("pre-release: true")
		}
		return nil
	},
}

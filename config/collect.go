package config

import (
	"fmt"
	"os"
	"os/user"

	"github.com/AlecAivazis/survey/v2"
	"github.com/creasty/defaults"
	validator "github.com/go-playground/validator/v10"
	"github.com/mattn/go-isatty"
	log "github.com/sirupsen/logrus"
)

// CollectInstall asks for every install-mode value that wasn't preseeded
// and always asks for the secrets. After it returns without an error the
// config is complete; no phase prompts for anything afterwards.
func (c *Config) CollectInstall() error {
	if err := requireTerminal(); err != nil {
		return err
	}

	if c.Disk == "" {
		if err := survey.AskOne(&survey.Input{
			Message: "Target disk device:",
			Help:    "The whole device will be repartitioned, for example /dev/sda or /dev/nvme0n1",
		}, &c.Disk, survey.WithValidator(survey.Required)); err != nil {
			return err
		}
	}

	if c.Hostname == "" {
		if err := survey.AskOne(&survey.Input{
			Message: "Hostname:",
			Default: "archlinux",
		}, &c.Hostname); err != nil {
			return err
		}
	}

	if c.Username == "" {
		if err := survey.AskOne(&survey.Input{
			Message: "Username for the primary account:",
		}, &c.Username, survey.WithValidator(survey.Required)); err != nil {
			return err
		}
	}

	if c.CPUVendor == "" {
		choice, err := askSelect("CPU vendor:", CPUVendors, string(CPUNone))
		if err != nil {
			return err
		}
		c.CPUVendor = CPUVendor(choice)
	}

	if c.GPUVendor == "" {
		choice, err := askSelect("GPU vendor:", GPUVendors, string(GPUNone))
		if err != nil {
			return err
		}
		c.GPUVendor = GPUVendor(choice)
	}

	if err := defaults.Set(c); err != nil {
		return err
	}

	pw, err := askSecret(fmt.Sprintf("Password for %s", c.Username))
	if err != nil {
		return err
	}
	c.UserPassword = pw

	pp, err := askSecret("Disk encryption passphrase")
	if err != nil {
		return err
	}
	c.DiskPassphrase = pp

	return nil
}

// CollectConfigure asks for the configure-mode values: the account is the
// invoking user and only the gpu vendor needs answering
func (c *Config) CollectConfigure() error {
	if c.Username == "" {
		u, err := user.Current()
		if err != nil {
			return fmt.Errorf("failed to resolve the current user: %w", err)
		}
		c.Username = u.Username
	}

	if c.GPUVendor == "" {
		if err := requireTerminal(); err != nil {
			return err
		}
		choice, err := askSelect("GPU vendor:", GPUVendors, string(GPUNone))
		if err != nil {
			return err
		}
		c.GPUVendor = GPUVendor(choice)
	}

	return defaults.Set(c)
}

// ValidateConfigure checks the subset of fields the configure run uses
func (c *Config) ValidateConfigure() error {
	v := validator.New()
	if err := v.RegisterValidation("unixname", func(fl validator.FieldLevel) bool {
		return validUnixName(fl.Field().String())
	}); err != nil {
		return err
	}
	return v.StructPartial(c, "Username", "GPUVendor")
}

func requireTerminal() error {
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		return fmt.Errorf("standard output is not a terminal, non-interactive runs need a preseed --config")
	}
	return nil
}

func askSelect(message string, options []string, def string) (string, error) {
	var choice string
	err := survey.AskOne(&survey.Select{
		Message: message,
		Options: options,
		Default: def,
	}, &choice)
	return choice, err
}

// askSecret prompts for a value and its confirmation until the two match.
// The terminal never echoes either of them.
func askSecret(label string) (Secret, error) {
	for {
		var value, confirm string
		if err := survey.AskOne(&survey.Password{
			Message: label + ":",
		}, &value, survey.WithValidator(survey.MinLength(1))); err != nil {
			return "", err
		}
		if err := survey.AskOne(&survey.Password{
			Message: label + " (again):",
		}, &confirm); err != nil {
			return "", err
		}
		if value == confirm {
			return Secret(value), nil
		}
		log.Warnf("the values do not match, try again")
	}
}

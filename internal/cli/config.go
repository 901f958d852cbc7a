package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/isbnkit/internal/config"
	errs "github.com/matzehuels/isbnkit/pkg/errors"
)

// configCommand creates the config management command.
func (c *CLI) configCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
		// Skip loading so a broken file can still be located and replaced.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	cmd.AddCommand(c.configPathCommand())
	cmd.AddCommand(c.configInitCommand())
	cmd.AddCommand(c.configShowCommand())

	return cmd
}

// configFile returns --config or the default location.
func (c *CLI) configFile() (string, error) {
	if c.configPath != "" {
		return c.configPath, nil
	}
	path, err := config.Path()
	if err != nil {
		return "", errs.Wrap(errs.ErrCodeInvalidConfig, err, "get config path")
	}
	return path, nil
}

// configPathCommand creates the "config path" subcommand.
func (c *CLI) configPathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the config file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := c.configFile()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
}

// configInitCommand creates the "config init" subcommand.
func (c *CLI) configInitCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with the default settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := c.configFile()
			if err != nil {
				return err
			}
			if err := config.Write(path, config.Defaults(), force); err != nil {
				return err
			}
			printSuccess(cmd.ErrOrStderr(), "Wrote default configuration")
			printFile(cmd.ErrOrStderr(), path)
			printDetail(cmd.ErrOrStderr(), "ISBN_* environment variables override the file")
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	return cmd
}

// configShowCommand creates the "config show" subcommand.
func (c *CLI) configShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := c.configFile()
			if err != nil {
				return err
			}
			if _, statErr := os.Stat(path); os.IsNotExist(statErr) && c.configPath == "" {
				printInfo(cmd.ErrOrStderr(), "No config file at %s; showing defaults", path)
			}
			cfg, err := config.Load(c.configPath)
			if err != nil {
				return err
			}
			data, err := cfg.Encode()
			if err != nil {
				return errs.Wrap(errs.ErrCodeInternal, err, "encode config")
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}

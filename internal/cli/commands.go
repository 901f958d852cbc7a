package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/isbnkit/internal/config"
	errs "github.com/matzehuels/isbnkit/pkg/errors"
	"github.com/matzehuels/isbnkit/pkg/isbn"
)

// outputFormat resolves the --output flag against the configured default.
func (c *CLI) outputFormat(flag string) (string, error) {
	format := c.cfg.Output
	if flag != "" {
		format = flag
	}
	format = strings.ToLower(strings.TrimSpace(format))
	if err := errs.ValidateOption("output format", format, config.OutputFormats); err != nil {
		return "", err
	}
	return format, nil
}

func addOutputFlag(cmd *cobra.Command, output *string) {
	cmd.Flags().StringVarP(output, "output", "o", "", "output format: text, json or yaml (default from config)")
}

// checkCommand creates the check command.
func (c *CLI) checkCommand() *cobra.Command {
	var family, output string

	cmd := &cobra.Command{
		Use:   "check <isbn>",
		Short: "Validate the check digit of a complete ISBN",
		Long: `Validate the check digit of a complete ISBN-10 or ISBN-13.

An identifier without its check digit is rejected; use fix to complete it.
A wrong check digit is reported but is not an error.`,
		Example: `  isbn check 0-306-40615-2
  isbn check 9780306406157 --family 13 -o json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := isbn.ParseFamily(family)
			if err != nil {
				return err
			}
			format, err := c.outputFormat(output)
			if err != nil {
				return err
			}

			loggerFromContext(cmd.Context()).Debug("checking", "isbn", args[0], "family", f)
			res, err := checkResult(args[0], f)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), format, res)
		},
	}

	cmd.Flags().StringVar(&family, "family", "auto", "expected family: auto, 10 or 13")
	addOutputFlag(cmd, &output)
	return cmd
}

// fixCommand creates the fix command.
func (c *CLI) fixCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "fix <isbn>",
		Short: "Append the check digit to an ISBN that lacks one",
		Long: `Append the check digit to 9 digits (ISBN-10) or 12 digits (ISBN-13)
and print the hyphenated result.`,
		Example: `  isbn fix 030640615          # 0-306-40615-2
  isbn fix 978-0-30640-615    # 978-0-30640-615-7`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := c.outputFormat(output)
			if err != nil {
				return err
			}

			loggerFromContext(cmd.Context()).Debug("fixing", "isbn", args[0])
			res, err := fixResult(args[0])
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), format, res)
		},
	}

	addOutputFlag(cmd, &output)
	return cmd
}

// randomCommand creates the random command.
func (c *CLI) randomCommand() *cobra.Command {
	var (
		output, entropy, prefix string
		seed                    uint64
		thirteen                bool
	)

	cmd := &cobra.Command{
		Use:   "random",
		Short: "Generate a random valid ISBN",
		Long: `Generate a random valid ISBN-10, or ISBN-13 with --isbn13.

Entropy sources:
  system   runtime-seeded pseudo-random generator (default)
  secure   operating system CSPRNG
  pseudo   deterministic generator seeded with --seed`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := c.outputFormat(output)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("entropy") {
				entropy = c.cfg.Entropy
			}
			if !cmd.Flags().Changed("seed") {
				seed = c.cfg.Seed
			}
			src, err := isbn.ParseEntropy(entropy, seed)
			if err != nil {
				return err
			}

			loggerFromContext(cmd.Context()).Debug("generating", "entropy", entropy, "isbn13", thirteen)
			res, err := randomResult(src, thirteen, prefix)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), format, res)
		},
	}

	cmd.Flags().BoolVar(&thirteen, "isbn13", false, "generate an ISBN-13 instead of an ISBN-10")
	cmd.Flags().StringVar(&prefix, "prefix", "978", "ISBN-13 prefix: 978 or 979")
	cmd.Flags().StringVar(&entropy, "entropy", isbn.EntropySystem, "entropy source: "+strings.Join(isbn.EntropyNames, ", "))
	cmd.Flags().Uint64Var(&seed, "seed", 0, "seed for the pseudo entropy source")
	addOutputFlag(cmd, &output)
	return cmd
}

// convertCommand creates the convert command.
func (c *CLI) convertCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "convert <isbn>",
		Short: "Convert between ISBN-10 and 978 ISBN-13",
		Example: `  isbn convert 0-306-40615-2        # 978-0-30640-615-7
  isbn convert 978-0-30640-615-7    # 0-306-40615-2`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := c.outputFormat(output)
			if err != nil {
				return err
			}

			loggerFromContext(cmd.Context()).Debug("converting", "isbn", args[0])
			res, err := convertResult(args[0])
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), format, res)
		},
	}

	addOutputFlag(cmd, &output)
	return cmd
}

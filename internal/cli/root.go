package cli

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/matzehuels/isbnkit/internal/config"
	"github.com/matzehuels/isbnkit/pkg/isbn"
)

type actionKind int

const (
	actionCheck actionKind = iota
	actionFix
	actionRandom
	actionHelp
)

// action is one -c, -f, -r or -h occurrence on the root command.
type action struct {
	kind actionKind
	arg  string
}

// actionFlag is a pflag.Value that queues every occurrence, so repeated
// and interleaved flags run in command-line order.
type actionFlag struct {
	kind  actionKind
	queue *[]action
	typ   string
}

func (f *actionFlag) String() string {
	if f.switchOnly() {
		return "false"
	}
	return ""
}

func (f *actionFlag) Type() string { return f.typ }

// switchOnly reports whether the flag takes no value.
func (f *actionFlag) switchOnly() bool {
	return f.kind == actionRandom || f.kind == actionHelp
}

func (f *actionFlag) Set(s string) error {
	if f.switchOnly() {
		on, err := strconv.ParseBool(s)
		if err != nil {
			return err
		}
		if !on {
			return nil
		}
	}
	*f.queue = append(*f.queue, action{kind: f.kind, arg: s})
	return nil
}

func registerActionFlags(root *cobra.Command, queue *[]action) {
	fs := root.Flags()
	fs.VarP(&actionFlag{kind: actionCheck, queue: queue, typ: "isbn"}, "check", "c", "check an ISBN-10 or ISBN-13")
	fs.VarP(&actionFlag{kind: actionFix, queue: queue, typ: "isbn"}, "fix", "f", "append the check digit to an ISBN missing it")
	r := fs.VarPF(&actionFlag{kind: actionRandom, queue: queue, typ: "bool"}, "random", "r", "create a random ISBN-10")
	r.NoOptDefVal = "true"
	// Replaces cobra's default help flag so -h runs in order with the rest.
	h := fs.VarPF(&actionFlag{kind: actionHelp, queue: queue, typ: "bool"}, "help", "h", "show help and stop")
	h.NoOptDefVal = "true"
}

// runActions executes the queued root flags. The first malformed identifier
// aborts the run; results already printed stay printed. -h prints help and
// ends the run successfully.
func (c *CLI) runActions(cmd *cobra.Command, actions []action, extra []string) error {
	logger := loggerFromContext(cmd.Context())
	out := cmd.OutOrStdout()

	for _, a := range actions {
		var (
			res Result
			err error
		)
		switch a.kind {
		case actionCheck:
			logger.Debug("checking", "isbn", a.arg)
			res, err = checkResult(a.arg, isbn.AnyFamily)
		case actionFix:
			logger.Debug("fixing", "isbn", a.arg)
			res, err = fixResult(a.arg)
		case actionHelp:
			return cmd.Help()
		case actionRandom:
			var src isbn.Entropy
			if src, err = isbn.ParseEntropy(c.cfg.Entropy, c.cfg.Seed); err == nil {
				logger.Debug("generating", "entropy", c.cfg.Entropy)
				res, err = randomResult(src, false, "")
			}
		}
		if err != nil {
			return err
		}
		if err := render(out, config.OutputText, res); err != nil {
			return err
		}
	}

	for _, arg := range extra {
		printWarning(cmd.ErrOrStderr(), "extra argument: %s", arg)
	}
	return nil
}

// splitUnknownFlags removes flags the root command does not define, so
// they can be reported instead of aborting the parse. A flag's separate
// value argument stays with it.
func splitUnknownFlags(cmd *cobra.Command, args []string) (known, unknown []string) {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--":
			return append(known, args[i:]...), unknown

		case strings.HasPrefix(arg, "--"):
			name, _, inline := strings.Cut(arg[2:], "=")
			f := lookupFlag(cmd, name, false)
			if f == nil {
				unknown = append(unknown, arg)
				continue
			}
			known = append(known, arg)
			if !inline && f.NoOptDefVal == "" && i+1 < len(args) {
				i++
				known = append(known, args[i])
			}

		case len(arg) > 1 && arg[0] == '-':
			kept, bad, needsValue := scanShorthands(cmd, arg[1:])
			for _, b := range bad {
				unknown = append(unknown, "-"+b)
			}
			if kept == "" {
				continue
			}
			known = append(known, "-"+kept)
			if needsValue && i+1 < len(args) {
				i++
				known = append(known, args[i])
			}

		default:
			known = append(known, arg)
		}
	}
	return known, unknown
}

// scanShorthands splits a cluster such as "rqc" into the letters the
// command knows ("rc") and those it does not ("q"). Scanning stops at the
// first flag that takes a value: the rest of the cluster is that value, or
// needsValue reports that it is the next argument.
func scanShorthands(cmd *cobra.Command, cluster string) (kept string, unknown []string, needsValue bool) {
	var b strings.Builder
	for j, r := range cluster {
		letter := string(r)
		f := lookupFlag(cmd, letter, true)
		if f == nil {
			unknown = append(unknown, letter)
			continue
		}
		b.WriteString(letter)
		if f.NoOptDefVal == "" {
			rest := cluster[j+len(letter):]
			b.WriteString(rest)
			return b.String(), unknown, rest == ""
		}
	}
	return b.String(), unknown, false
}

func lookupFlag(cmd *cobra.Command, name string, short bool) *pflag.Flag {
	for _, fs := range []*pflag.FlagSet{cmd.Flags(), cmd.PersistentFlags()} {
		var f *pflag.Flag
		if short {
			f = fs.ShorthandLookup(name)
		} else {
			f = fs.Lookup(name)
		}
		if f != nil {
			return f
		}
	}
	return nil
}

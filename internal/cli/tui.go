package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	errs "github.com/matzehuels/isbnkit/pkg/errors"
	"github.com/matzehuels/isbnkit/pkg/isbn"
)

// historySize is how many entered identifiers the checker keeps.
const historySize = 8

var (
	promptStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	cursorStyle = lipgloss.NewStyle().Reverse(true)
	headerStyle = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
)

// =============================================================================
// CheckerModel - Interactive ISBN checker
// =============================================================================

// verdict is the live evaluation of the typed identifier.
type verdict struct {
	Input  string
	Status string
	Result string
	OK     bool
}

// evaluate validates a complete identifier or fixes a partial one.
func evaluate(raw string) verdict {
	v := verdict{Input: raw}
	d, err := isbn.Normalize(raw)
	if err != nil {
		v.Status = errs.UserMessage(err)
		return v
	}
	variant, err := isbn.Classify(d)
	if err != nil {
		v.Status = errs.UserMessage(err)
		return v
	}

	if !variant.Complete() {
		fixed, err := isbn.Fix(raw)
		if err != nil {
			v.Status = errs.UserMessage(err)
			return v
		}
		v.Status = fmt.Sprintf("%s, check digit missing", variant.Family())
		v.Result = fixed
		v.OK = true
		return v
	}

	r, err := isbn.Validate(raw, isbn.AnyFamily)
	if err != nil {
		v.Status = errs.UserMessage(err)
		return v
	}
	formatted, _ := isbn.Format(r.Normalized)
	v.Result = formatted
	if r.Valid {
		v.Status = fmt.Sprintf("valid %s", variant.Family())
		v.OK = true
	} else {
		v.Status = fmt.Sprintf("invalid %s, check digit should be %s", variant.Family(), r.Check)
	}
	return v
}

// CheckerModel is the bubbletea model for the interactive checker.
type CheckerModel struct {
	Input   []rune
	History []verdict
}

// NewCheckerModel creates an empty checker.
func NewCheckerModel() CheckerModel {
	return CheckerModel{}
}

func (m CheckerModel) Init() tea.Cmd {
	return nil
}

func (m CheckerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return m, tea.Quit
	case tea.KeyEnter:
		if len(m.Input) == 0 {
			return m, nil
		}
		m.History = append([]verdict{evaluate(string(m.Input))}, m.History...)
		if len(m.History) > historySize {
			m.History = m.History[:historySize]
		}
		m.Input = nil
	case tea.KeyBackspace:
		if len(m.Input) > 0 {
			m.Input = m.Input[:len(m.Input)-1]
		}
	case tea.KeyCtrlU:
		m.Input = nil
	case tea.KeySpace:
		m.Input = append(m.Input, ' ')
	case tea.KeyRunes:
		m.Input = append(m.Input, key.Runes...)
	}
	return m, nil
}

func (m CheckerModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("ISBN Checker"))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("type an ISBN  ⏎ keep  ctrl+u clear  esc quit"))
	b.WriteString("\n\n")

	b.WriteString(promptStyle.Render("> "))
	b.WriteString(string(m.Input))
	b.WriteString(cursorStyle.Render(" "))
	b.WriteString("\n")

	if len(m.Input) > 0 {
		b.WriteString(renderVerdict(evaluate(string(m.Input))))
		b.WriteString("\n")
	}

	if len(m.History) > 0 {
		b.WriteString("\n")
		b.WriteString(m.historyTable())
		b.WriteString("\n")
	}
	return b.String()
}

func renderVerdict(v verdict) string {
	icon, style := styleIconError.Render(iconError), StyleError
	if v.OK {
		icon, style = styleIconSuccess.Render(iconSuccess), StyleSuccess
	}
	line := icon + " " + style.Render(v.Status)
	if v.Result != "" {
		line += " " + StyleDim.Render(iconArrow) + " " + StyleValue.Render(v.Result)
	}
	return line
}

func (m CheckerModel) historyTable() string {
	rows := make([][]string, len(m.History))
	for i, v := range m.History {
		rows[i] = []string{v.Input, v.Status, v.Result}
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Input", "Status", "ISBN").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if row < 0 || row >= len(m.History) {
				return lipgloss.NewStyle()
			}
			if m.History[row].OK {
				return lipgloss.NewStyle().Foreground(colorGreen)
			}
			return lipgloss.NewStyle().Foreground(colorRed)
		}).
		Render()
}

// interactiveCommand creates the interactive command.
func (c *CLI) interactiveCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "interactive",
		Aliases: []string{"i"},
		Short:   "Check and fix identifiers as you type",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := []tea.ProgramOption{
				tea.WithContext(cmd.Context()),
				tea.WithOutput(cmd.OutOrStdout()),
			}
			if c.in != nil {
				opts = append(opts, tea.WithInput(c.in))
			}

			final, err := tea.NewProgram(NewCheckerModel(), opts...).Run()
			if err != nil {
				return errs.Wrap(errs.ErrCodeInternal, err, "interactive session")
			}
			if m, ok := final.(CheckerModel); ok {
				loggerFromContext(cmd.Context()).Debug("interactive session ended", "checked", len(m.History))
			}
			return nil
		},
	}
}

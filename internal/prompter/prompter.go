package prompter

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7aa2f7"))
	hintStyle  = lipgloss.NewStyle().Faint(true)
	boxStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#7aa2f7")).
			Padding(1, 2)
)

// IsInteractiveTerminal reports whether stdin and stdout are attached to a
// terminal, so interactive prompts can actually be shown.
func IsInteractiveTerminal() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) && isatty.IsTerminal(os.Stdout.Fd())
}

// TerminalPrompter asks the user for a genre through a full-screen text input.
type TerminalPrompter struct{}

// NewTerminalPrompter constructs a prompter for an interactive terminal.
func NewTerminalPrompter() *TerminalPrompter {
	return &TerminalPrompter{}
}

// AskGenre shows the prompt for one book title. The second return value is
// false when the user dismissed the prompt without entering a genre.
func (p *TerminalPrompter) AskGenre(ctx context.Context, title string) (string, bool, error) {
	m := newModel(title)
	program := tea.NewProgram(m, tea.WithContext(ctx))
	final, err := program.Run()
	if err != nil {
		return "", false, fmt.Errorf("run genre prompt: %w", err)
	}
	result, ok := final.(model)
	if !ok || !result.answered {
		return "", false, nil
	}
	return strings.TrimSpace(result.input.Value()), true, nil
}

type model struct {
	title    string
	input    textinput.Model
	answered bool
}

func newModel(title string) model {
	input := textinput.New()
	input.Placeholder = "e.g. Science Fiction, History, Philosophy"
	input.CharLimit = 80
	input.Width = 50
	input.Focus()
	return model{title: title, input: input}
}

func (m model) Init() tea.Cmd { return textinput.Blink }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEnter:
			m.answered = true
			return m, tea.Quit
		case tea.KeyEsc, tea.KeyCtrlC:
			m.answered = false
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Unable to determine genre for:"))
	b.WriteByte('\n')
	b.WriteString(m.title)
	b.WriteString("\n\n")
	b.WriteString("Enter a specific genre:\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(hintStyle.Render("enter: accept • type SKIP to send to the unsorted folder • esc: leave unclassified"))
	return boxStyle.Render(b.String())
}

package cli

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/admiralsuez/shakshuka/internal/core"
)

// watchModel drives the live dashboard: one evaluation per poll tick plus
// manual refresh. The tick keeps firing so reset-hour crossings are caught
// while the process stays open; evaluation is idempotent within a minute.
type watchModel struct {
	result      core.EvalResult
	celebration string
	recap       string
	width       int
}

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(core.PollInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m watchModel) Init() tea.Cmd {
	return tick()
}

func (m watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "r":
			return m.evaluate(), nil
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tickMsg:
		return m.evaluate(), tick()
	}
	return m, nil
}

func (m watchModel) evaluate() watchModel {
	m.result = Engine.Evaluate(nowFn())

	if c := m.result.Celebration; c != nil {
		m.celebration = c.Message
		Engine.AcknowledgeCelebration()
		notifyCelebration(*c)
	}
	if r := m.result.Recap; r != nil {
		m.recap = renderRecap(*r)
		notifyRecap(*r)
	}
	return m
}

func (m watchModel) View() string {
	if m.result.Date == "" {
		return helpStyle.Render("loading...")
	}

	out := renderPartition(m.result)
	if m.celebration != "" {
		out += "\n" + celebrationStyle.Render(m.celebration) + "\n"
	}
	if m.recap != "" {
		out += "\n" + m.recap + "\n"
	}
	out += "\n" + helpStyle.Render("r refresh - q quit")
	return out
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Live dashboard re-evaluating every minute",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if Engine == nil {
			return fmt.Errorf("engine not initialized")
		}

		model := watchModel{}.evaluate()
		p := tea.NewProgram(model, tea.WithAltScreen())
		_, err := p.Run()
		return err
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

package cli

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/kailas-cloud/catalookup/internal/presenter"
	"github.com/kailas-cloud/catalookup/internal/tui"
)

var typingDelay time.Duration

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start the interactive assistant",
	Long: `Start the interactive assistant in the terminal.

Suggestions in a reply are numbered: pick one with the arrow keys and
Enter, or type #N. Esc or Ctrl+C quits.`,
	Args: cobra.NoArgs,
	RunE: runChat,
}

func init() {
	chatCmd.Flags().DurationVar(&typingDelay, "typing-delay", tui.DefaultTypingDelay,
		"pause before each answer (0 disables)")
}

func runChat(cmd *cobra.Command, _ []string) error {
	a, err := newApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	answer := func(raw string) presenter.Reply {
		_, reply := a.ask(cmd.Context(), raw)
		return reply
	}

	m := tui.NewModel(answer, typingDelay, presenter.Greeting(a.available()))
	p := tea.NewProgram(m,
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
		tea.WithContext(cmd.Context()),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("chat: %w", err)
	}
	return nil
}

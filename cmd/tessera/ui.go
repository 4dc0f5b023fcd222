package main

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"tessera/internal/ui"
)

type uiMode string

const (
	uiModeAuto uiMode = "auto"
	uiModeOn   uiMode = "on"
	uiModeOff  uiMode = "off"
)

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Interactive state evaluation",
	Long:  `UI opens an interactive evaluator: type a state, switch mode, charset and encoding, toggle wrap adjacency, and inspect the resulting tile grid`,
	Args:  cobra.NoArgs,
	RunE:  runUI,
}

func init() {
	uiCmd.Flags().String("ui", "auto", "force or disable the interactive interface (auto|on|off)")
}

func readUIMode(value string) (uiMode, error) {
	switch strings.TrimSpace(strings.ToLower(value)) {
	case "", "auto":
		return uiModeAuto, nil
	case "on":
		return uiModeOn, nil
	case "off":
		return uiModeOff, nil
	default:
		return "", fmt.Errorf("invalid --ui value %q (expected auto|on|off)", value)
	}
}

func shouldUseTUI(mode uiMode) bool {
	switch mode {
	case uiModeOn:
		return true
	case uiModeOff:
		return false
	default:
		return isTerminal(os.Stdout)
	}
}

func runUI(cmd *cobra.Command, args []string) error {
	value, err := cmd.Flags().GetString("ui")
	if err != nil {
		return fmt.Errorf("failed to get ui flag: %w", err)
	}
	mode, err := readUIMode(value)
	if err != nil {
		return err
	}
	if !shouldUseTUI(mode) {
		return fmt.Errorf("interactive mode needs a terminal (use --ui on to force, or eval for one-shot use)")
	}

	program := tea.NewProgram(ui.NewModel(), tea.WithOutput(os.Stdout), tea.WithAltScreen())
	_, err = program.Run()
	return err
}

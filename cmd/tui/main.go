package main

import (
	"fmt"
	"os"

	"mundell-fleming/internal/model"
	"mundell-fleming/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	if _, err := tui.Run(model.DefaultInputs(), tea.WithAltScreen()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/maslabs/chatwidget/internal/config"
	"github.com/maslabs/chatwidget/internal/tui"
	"github.com/maslabs/chatwidget/internal/widget"
	"github.com/rs/zerolog"
)

func main() {
	_ = godotenv.Load()

	// Log output would corrupt the terminal UI.
	zerolog.SetGlobalLevel(zerolog.Disabled)

	serverURL := config.GetEnvOrDefault("CHATWIDGET_SERVER_URL", "http://localhost:8080")

	w := widget.New(widget.NewClient(serverURL))
	program := tea.NewProgram(tui.NewModel(w), tea.WithAltScreen())

	if _, err := program.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running widget:", err)
		os.Exit(1)
	}
}

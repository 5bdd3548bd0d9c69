package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lumyn/showdown/internal/client"
	"github.com/lumyn/showdown/internal/tui"
)

func main() {
	server := flag.String("server", "http://localhost:8501", "base URL of the showdown server")
	flag.Parse()

	api := client.New(*server)

	p := tea.NewProgram(tui.NewModel(api), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error running client: %v\n", err)
		os.Exit(1)
	}
}

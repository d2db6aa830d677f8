package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/pooja2309/portfolio/internal/client"
	"github.com/pooja2309/portfolio/internal/form"
	"github.com/pooja2309/portfolio/internal/tui"
)

func newContactCmd() *cobra.Command {
	var endpoint string
	cmd := &cobra.Command{
		Use:   "contact",
		Short: "Fill in and send the contact form from the terminal",
		Long: `contact opens an interactive form and posts it to a running portfolio
server's /api/contact endpoint.

Example:
  portfolio contact --endpoint https://example.com`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := form.New(client.New(endpoint, nil))
			p := tea.NewProgram(tui.NewModel(cmd.Context(), f))
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("contact: %w", err)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&endpoint, "endpoint", "http://localhost:8080", "base URL of the portfolio server")
	return cmd
}

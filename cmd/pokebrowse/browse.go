package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/pokebrowse/internal/logger"
	"github.com/alexisbeaulieu97/pokebrowse/internal/tui/browser"
)

func newBrowseCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Launch the interactive browser",
		Long:  `Launch the interactive TUI: page through Pokémon, search by name and toggle the light/dark theme.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrowse(cmd, flags)
		},
	}

	return cmd
}

func runBrowse(cmd *cobra.Command, flags *rootFlags) error {
	cfg, err := loadConfig(flags)
	if err != nil {
		return err
	}

	// The terminal belongs to the UI, so logs go to a file.
	logFile, err := logger.OpenFile(cfg.LogFilePath())
	if err != nil {
		return newCommandError("open log file", cfg.LogFilePath(), err, "Check data_dir permissions or set log.file.")
	}
	defer logFile.Close()

	app, err := buildAppContext(cfg, flags, logFile)
	if err != nil {
		return err
	}

	themes, closeStore, err := app.openThemes(browser.ApplyTheme)
	if err != nil {
		app.log.Warn(err, "preference store unavailable; theme changes will not persist")
	}
	defer closeStore()

	app.log.Info("launching browser")

	m := browser.NewModel(cmd.Context(), app.loader(), themes, app.log)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		app.log.Error(err, "browser execution failed")
		return fmt.Errorf("failed to run browser: %w", err)
	}

	app.log.Info("browser closed")
	return nil
}

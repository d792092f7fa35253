package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/pokebrowse/internal/theme"
)

func newThemeCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:       "theme [light|dark|toggle]",
		Short:     "Show or change the persisted theme",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"light", "dark", "toggle"},
		RunE: func(cmd *cobra.Command, args []string) error {
			action := ""
			if len(args) == 1 {
				action = args[0]
			}
			return runTheme(cmd, flags, action)
		},
	}

	return cmd
}

func runTheme(cmd *cobra.Command, flags *rootFlags, action string) error {
	app, err := newAppContext(flags, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	themes, closeStore, err := app.openThemes(nil)
	if err != nil {
		return newCommandError("open preferences", app.cfg.StorePath(), err, "Close any running 'pokebrowse browse' session and try again.")
	}
	defer closeStore()

	current := themes.Restore()
	out := cmd.OutOrStdout()

	switch strings.ToLower(strings.TrimSpace(action)) {
	case "":
		fmt.Fprintf(out, "Current theme: %s\n", current)
		return nil
	case "toggle":
		fmt.Fprintf(out, "Theme set to %s\n", themes.Toggle())
		return nil
	}

	next, err := theme.Parse(action)
	if err != nil {
		return newCommandError("set theme", fmt.Sprintf("%q", action), err, "Use light, dark or toggle.")
	}
	themes.Set(next)
	fmt.Fprintf(out, "Theme set to %s\n", next)
	return nil
}

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/pokebrowse/internal/catalog"
	"github.com/alexisbeaulieu97/pokebrowse/internal/view"
)

type searchOptions struct {
	jsonOutput bool
}

func newSearchCmd(flags *rootFlags) *cobra.Command {
	opts := &searchOptions{}

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search the catalog by name",
		Long:  `Load the catalog and print every Pokémon whose name contains the query, ignoring case.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, flags, opts, args[0])
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func runSearch(cmd *cobra.Command, flags *rootFlags, opts *searchOptions, query string) error {
	app, err := newAppContext(flags, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	var loaderOpts []catalog.LoaderOption
	bar := newCatalogBar(cmd.ErrOrStderr())
	if bar != nil {
		loaderOpts = append(loaderOpts, catalog.WithProgress(func(int, int) {
			_ = bar.Add(1)
		}))
	}

	entities, err := app.loader(loaderOpts...).FetchCatalog(cmd.Context())
	if bar != nil {
		_ = bar.Finish()
	}
	if err != nil {
		return newCommandError("search", "loading the catalog", err, "Check your network connection and api.base_url, then try again.")
	}

	ready := catalog.LoadState{Status: catalog.StatusReady}
	v := view.Compose(view.Input{
		CatalogState: ready,
		PageState:    ready,
		Catalog:      entities,
		PageLoaded:   true,
		Query:        query,
		CurrentPage:  1,
	})

	if opts.jsonOutput {
		return renderPokemonJSON(cmd.OutOrStdout(), pokemonPayload{
			Query:   query,
			Count:   v.MatchCount,
			Pokemon: v.Entities,
		})
	}

	out := cmd.OutOrStdout()
	if v.Empty() {
		fmt.Fprintln(out, v.EmptyMessage())
		fmt.Fprintln(out, view.EmptyHint)
		return nil
	}

	fmt.Fprintln(out, v.Summary())
	fmt.Fprintln(out)
	return renderPokemonTable(out, v.Entities)
}

// newCatalogBar returns a progress bar when w is an interactive terminal.
func newCatalogBar(w io.Writer) *progressbar.ProgressBar {
	file, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(file.Fd())) {
		return nil
	}

	return progressbar.NewOptions(catalog.CatalogCeiling,
		progressbar.OptionSetWriter(file),
		progressbar.OptionSetDescription("Loading catalog"),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
}

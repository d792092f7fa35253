package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/pokebrowse/internal/catalog"
	"github.com/alexisbeaulieu97/pokebrowse/internal/pokeapi"
)

type pageOptions struct {
	jsonOutput bool
}

func newPageCmd(flags *rootFlags) *cobra.Command {
	opts := &pageOptions{}

	cmd := &cobra.Command{
		Use:   "page <n>",
		Short: "Print one page of Pokémon",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPage(cmd, flags, opts, args[0])
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func runPage(cmd *cobra.Command, flags *rootFlags, opts *pageOptions, arg string) error {
	totalPages := catalog.TotalPages(catalog.CatalogCeiling, catalog.PageSize)
	suggestion := fmt.Sprintf("Choose a page between 1 and %d.", totalPages)

	page, err := strconv.Atoi(arg)
	if err != nil {
		return newCommandError("fetch page", fmt.Sprintf("parsing %q", arg), err, suggestion)
	}
	if page < 1 || page > totalPages {
		return newCommandError("fetch page", fmt.Sprintf("page %d", page), catalog.ErrPageOutOfRange, suggestion)
	}

	app, err := newAppContext(flags, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	entities, err := app.loader().FetchPage(cmd.Context(), page)
	if err != nil {
		return newCommandError("fetch page", fmt.Sprintf("page %d", page), err, "Check your network connection and api.base_url, then try again.")
	}

	if opts.jsonOutput {
		return renderPokemonJSON(cmd.OutOrStdout(), pokemonPayload{
			Page:       page,
			TotalPages: totalPages,
			Count:      len(entities),
			Pokemon:    entities,
		})
	}

	if err := renderPokemonTable(cmd.OutOrStdout(), entities); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "\nPage %d of %d\n", page, totalPages)
	return nil
}

type pokemonPayload struct {
	Query      string            `json:"query,omitempty"`
	Page       int               `json:"page,omitempty"`
	TotalPages int               `json:"total_pages,omitempty"`
	Count      int               `json:"count"`
	Pokemon    []pokeapi.Pokemon `json:"pokemon"`
}

func renderPokemonJSON(w io.Writer, payload pokemonPayload) error {
	if payload.Pokemon == nil {
		payload.Pokemon = []pokeapi.Pokemon{}
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}

func renderPokemonTable(w io.Writer, entities []pokeapi.Pokemon) error {
	writer := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintln(writer, "ID\tNAME\tTYPES\tHEIGHT\tWEIGHT\tBASE EXP\tATK\tDEF\tSPD")
	for _, p := range entities {
		fmt.Fprintf(writer, "%d\t%s\t%s\t%.1f m\t%.1f kg\t%d\t%d\t%d\t%d\n",
			p.ID,
			p.Name,
			strings.Join(p.TypeNames(), "/"),
			float64(p.Height)/10,
			float64(p.Weight)/10,
			p.BaseExperience,
			p.Stat("attack"),
			p.Stat("defense"),
			p.Stat("speed"),
		)
	}

	return writer.Flush()
}

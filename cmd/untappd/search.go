package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/gosuri/uitable"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/kbukum/untappd/untappd"
	"github.com/kbukum/untappd/util"
)

const maxColWidth = 60

func newSearchCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search breweries or beers",
	}
	cmd.AddCommand(newBreweriesCmd(a), newBeersCmd(a))
	return cmd
}

func newBreweriesCmd(a *app) *cobra.Command {
	var page paging
	cmd := &cobra.Command{
		Use:   "breweries <query>",
		Short: "Search breweries by name",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.searchService()
			if err != nil {
				return err
			}
			b := svc.Breweries(util.NormalizeQuery(args...)).Offset(page.offset).Limit(page.limit)
			if a.dryRun {
				return b.Print(a.out)
			}
			resp, err := b.Fire(cmd.Context())
			if err != nil {
				return err
			}
			return writeBreweries(a.out, resp.Results)
		},
	}
	page.register(cmd)
	return cmd
}

func newBeersCmd(a *app) *cobra.Command {
	var (
		sort string
		page paging
	)
	cmd := &cobra.Command{
		Use:   "beers <query>",
		Short: "Search beers by name",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			order, err := untappd.ParseSortOrder(sort)
			if err != nil {
				return err
			}
			svc, err := a.searchService()
			if err != nil {
				return err
			}
			b := svc.Beers(util.NormalizeQuery(args...)).Sort(order).Offset(page.offset).Limit(page.limit)
			if a.dryRun {
				return b.Print(a.out)
			}
			resp, err := b.Fire(cmd.Context())
			if err != nil {
				return err
			}
			return writeBeers(a.out, resp.Results)
		},
	}
	cmd.Flags().StringVar(&sort, "sort", "", "result order: count or name")
	page.register(cmd)
	return cmd
}

type paging struct {
	offset, limit int
}

func (p *paging) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&p.offset, "offset", 0, "skip this many results")
	cmd.Flags().IntVar(&p.limit, "limit", 0, fmt.Sprintf("return at most this many results (max %d)", untappd.MaxLimit))
}

func newTable(header ...any) *uitable.Table {
	t := uitable.New()
	t.MaxColWidth = maxColWidth
	t.Separator = "  "
	t.AddRow(header...)
	return t
}

func writeTable(w io.Writer, t *uitable.Table, rows [][]any) error {
	if len(rows) == 0 {
		_, err := fmt.Fprintln(w, "No results.")
		return err
	}
	for _, row := range rows {
		t.AddRow(row...)
	}
	_, err := fmt.Fprintln(w, t)
	return err
}

func writeBreweries(w io.Writer, breweries []untappd.Brewery) error {
	rows := lo.Map(breweries, func(b untappd.Brewery, _ int) []any {
		return []any{strconv.Itoa(b.ID), b.Name, lo.CoalesceOrEmpty(b.CountryName, "-")}
	})
	return writeTable(w, newTable("ID", "NAME", "COUNTRY"), rows)
}

func writeBeers(w io.Writer, beers []untappd.Beer) error {
	rows := lo.Map(beers, func(b untappd.Beer, _ int) []any {
		created := "-"
		if !b.Created.IsZero() {
			created = b.Created.UTC().Format("2006-01-02")
		}
		return []any{strconv.Itoa(b.ID), b.Name, lo.CoalesceOrEmpty(b.Style, "-"), lo.CoalesceOrEmpty(b.BreweryName, "-"), created}
	})
	return writeTable(w, newTable("ID", "NAME", "STYLE", "BREWERY", "CREATED"), rows)
}

// Package render writes mining results as tables, JSON or YAML.
package render

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	jsoniter "github.com/json-iterator/go"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/fpgrowth/fptree"
	"github.com/katalvlaran/fpgrowth/mining"
)

// ErrUnknownFormat is returned for a format other than table, json or yaml.
var ErrUnknownFormat = errors.New("render: unknown format")

// Output formats.
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

const msgNoItemsets = "No frequent itemsets."

// Report is the serialized form of a mining result.
type Report struct {
	MinSupport   float64                  `json:"min_support" yaml:"min_support"`
	Transactions int                      `json:"transactions" yaml:"transactions"`
	Items        []string                 `json:"items" yaml:"items"`
	Itemsets     []mining.Itemset[string] `json:"itemsets" yaml:"itemsets"`
	Groups       []Group                  `json:"groups" yaml:"groups"`
}

// Group lists the itemsets containing one item.
type Group struct {
	Item     string     `json:"item" yaml:"item"`
	Itemsets [][]string `json:"itemsets" yaml:"itemsets"`
}

// HeaderRow describes one header table entry.
type HeaderRow struct {
	Item    string `json:"item" yaml:"item"`
	Support int    `json:"support" yaml:"support"`
	Nodes   int    `json:"nodes" yaml:"nodes"`
}

// HeaderReport is the serialized form of a top-level tree summary.
type HeaderReport struct {
	MinSupport float64     `json:"min_support" yaml:"min_support"`
	TreeNodes  int         `json:"tree_nodes" yaml:"tree_nodes"`
	Items      []HeaderRow `json:"items" yaml:"items"`
}

// NewReport converts res into a Report over n transactions.
func NewReport(res *mining.Result[string], n int) Report {
	r := Report{
		MinSupport:   res.MinSupport,
		Transactions: n,
		Items:        res.Items(),
		Itemsets:     res.Itemsets,
	}
	for _, g := range res.ByItem() {
		group := Group{Item: g.Item}
		for _, s := range g.Itemsets {
			group.Itemsets = append(group.Itemsets, s.Items)
		}
		r.Groups = append(r.Groups, group)
	}
	return r
}

// NewHeaderReport summarizes tree's header table in canonical order.
func NewHeaderReport(tree *fptree.Tree[string]) HeaderReport {
	h := tree.Header()
	r := HeaderReport{MinSupport: tree.MinSupport(), TreeNodes: tree.Len()}
	for _, item := range h.Items() {
		r.Items = append(r.Items, HeaderRow{Item: item, Support: h.Support(item), Nodes: h.ChainLength(item)})
	}
	return r
}

// Result writes res (mined from n transactions) to w in format.
func Result(w io.Writer, res *mining.Result[string], n int, format string) error {
	report := NewReport(res, n)
	switch format {
	case FormatTable:
		return resultTable(w, report)
	case FormatJSON:
		return writeJSON(w, report)
	case FormatYAML:
		return writeYAML(w, report)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// Header writes the header summary of tree to w in format.
func Header(w io.Writer, tree *fptree.Tree[string], format string) error {
	report := NewHeaderReport(tree)
	switch format {
	case FormatTable:
		return headerTable(w, report)
	case FormatJSON:
		return writeJSON(w, report)
	case FormatYAML:
		return writeYAML(w, report)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

func resultTable(w io.Writer, r Report) error {
	if len(r.Itemsets) == 0 {
		_, err := fmt.Fprintln(w, msgNoItemsets)
		return err
	}

	sets := table.NewWriter()
	sets.SetStyle(table.StyleLight)
	sets.SetTitle("Frequent itemsets")
	sets.AppendHeader(table.Row{"#", "Itemset", "Size", "Support"})
	for i, s := range r.Itemsets {
		sets.AppendRow(table.Row{i + 1, formatItems(s.Items), s.Len(), s.Support})
	}
	sets.AppendFooter(table.Row{"", fmt.Sprintf("Total: %s itemsets", humanize.Comma(int64(len(r.Itemsets)))), "", ""})

	groups := table.NewWriter()
	groups.SetStyle(table.StyleLight)
	groups.SetTitle("Frequent pattern growth")
	groups.AppendHeader(table.Row{"Item", "Itemsets"})
	for _, g := range r.Groups {
		formatted := make([]string, len(g.Itemsets))
		for i, items := range g.Itemsets {
			formatted[i] = formatItems(items)
		}
		groups.AppendRow(table.Row{g.Item, strings.Join(formatted, " ")})
	}

	_, err := fmt.Fprintf(w, "%s\n\n%s\n", sets.Render(), groups.Render())
	return err
}

func headerTable(w io.Writer, r HeaderReport) error {
	if len(r.Items) == 0 {
		_, err := fmt.Fprintln(w, msgNoItemsets)
		return err
	}

	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.SetTitle("Header table")
	tbl.AppendHeader(table.Row{"Item", "Support", "Nodes"})
	for _, row := range r.Items {
		tbl.AppendRow(table.Row{row.Item, humanize.Comma(int64(row.Support)), humanize.Comma(int64(row.Nodes))})
	}
	tbl.AppendFooter(table.Row{"Tree", "", humanize.Comma(int64(r.TreeNodes))})

	_, err := fmt.Fprintln(w, tbl.Render())
	return err
}

func writeJSON(w io.Writer, v any) error {
	json := jsoniter.ConfigCompatibleWithStandardLibrary
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("render: encoding json: %w", err)
	}
	return nil
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("render: encoding yaml: %w", err)
	}
	return enc.Close()
}

// formatItems renders items as {a, b, c}.
func formatItems(items []string) string {
	return "{" + strings.Join(items, ", ") + "}"
}

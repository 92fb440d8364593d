package render_test

import (
	"bytes"
	"strings"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/fpgrowth/fptree"
	"github.com/katalvlaran/fpgrowth/internal/render"
	"github.com/katalvlaran/fpgrowth/mining"
)

func baskets() [][]string {
	return [][]string{
		{"milk", "bread"},
		{"bread", "butter", "jam"},
		{"butter", "milk", "bread"},
		{"bread", "milk"},
	}
}

func mined(t *testing.T) *mining.Result[string] {
	t.Helper()
	res, err := mining.Mine(baskets(), 2)
	require.NoError(t, err)
	return res
}

func TestResult_Table(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.Result(&buf, mined(t), 4, render.FormatTable))

	// go-pretty upper-cases headers and footers
	out := strings.ToLower(buf.String())
	assert.Contains(t, out, "frequent itemsets")
	assert.Contains(t, out, "frequent pattern growth")
	assert.Contains(t, out, "{bread, milk}")
	assert.Contains(t, out, "total: 5 itemsets")
	assert.NotContains(t, out, "jam")
}

func TestResult_TableEmpty(t *testing.T) {
	res, err := mining.Mine[string](nil, 1)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, render.Result(&buf, res, 0, render.FormatTable))
	assert.Equal(t, "No frequent itemsets.\n", buf.String())
}

func TestResult_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.Result(&buf, mined(t), 4, render.FormatJSON))

	var got render.Report
	require.NoError(t, jsoniter.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, 2.0, got.MinSupport)
	assert.Equal(t, 4, got.Transactions)
	assert.Equal(t, []string{"bread", "butter", "milk"}, got.Items)
	require.Len(t, got.Itemsets, 5)
	assert.Equal(t, []string{"bread", "butter"}, got.Itemsets[2].Items)
	assert.Equal(t, 2, got.Itemsets[2].Support)
	require.Len(t, got.Groups, 3)
	assert.Equal(t, [][]string{{"butter"}, {"bread", "butter"}}, got.Groups[1].Itemsets)
}

func TestResult_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.Result(&buf, mined(t), 4, render.FormatYAML))

	var got render.Report
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, 4, got.Transactions)
	assert.Len(t, got.Itemsets, 5)
	assert.Equal(t, "milk", got.Groups[2].Item)
}

func TestResult_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := render.Result(&buf, mined(t), 4, "xml")
	assert.ErrorIs(t, err, render.ErrUnknownFormat)
	err = render.Header(&buf, nil, "xml")
	assert.ErrorIs(t, err, render.ErrUnknownFormat)
}

func TestHeader(t *testing.T) {
	tree, err := fptree.Build(baskets(), 2)
	require.NoError(t, err)

	report := render.NewHeaderReport(tree)
	assert.Equal(t, 4, report.TreeNodes)
	assert.Equal(t, []render.HeaderRow{
		{Item: "bread", Support: 4, Nodes: 1},
		{Item: "milk", Support: 3, Nodes: 1},
		{Item: "butter", Support: 2, Nodes: 2},
	}, report.Items)

	var buf bytes.Buffer
	require.NoError(t, render.Header(&buf, tree, render.FormatTable))
	assert.Contains(t, strings.ToLower(buf.String()), "header table")
	assert.Contains(t, buf.String(), "butter")

	buf.Reset()
	require.NoError(t, render.Header(&buf, nil, render.FormatTable))
	assert.Equal(t, "No frequent itemsets.\n", buf.String())
}

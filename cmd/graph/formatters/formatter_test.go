package formatters_test

import (
	"encoding/json"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wuihee/c-rust-program-pairs/closure"
	"github.com/wuihee/c-rust-program-pairs/cmd/graph/formatters"
)

func fixtureGraph() closure.IncludeGraph {
	return closure.IncludeGraph{
		"src/diff.c": {"src/diff.h", "src/util.h"},
		"src/diff.h": {},
		"src/util.c": {"src/util.h"},
		"src/util.h": {"src/diff.h"},
	}
}

func formatterGoldie(t *testing.T) *goldie.Goldie {
	return goldie.New(t, goldie.WithNameSuffix(".gold.txt"))
}

func TestDOTFormatter_Format(t *testing.T) {
	formatter := &formatters.DOTFormatter{}

	output, err := formatter.Format(fixtureGraph(), formatters.FormatOptions{})

	require.NoError(t, err)
	formatterGoldie(t).Assert(t, "dot_basic", []byte(output))
}

func TestDOTFormatter_WithLabelAndCycles(t *testing.T) {
	formatter := &formatters.DOTFormatter{}
	opts := formatters.FormatOptions{
		Label:  "diffutils • 4 files",
		Cycles: [][]string{{"src/diff.h", "src/util.h"}},
	}

	output, err := formatter.Format(fixtureGraph(), opts)

	require.NoError(t, err)
	formatterGoldie(t).Assert(t, "dot_cycles", []byte(output))
}

func TestMermaidFormatter_Format(t *testing.T) {
	formatter := &formatters.MermaidFormatter{}

	output, err := formatter.Format(fixtureGraph(), formatters.FormatOptions{})

	require.NoError(t, err)
	formatterGoldie(t).Assert(t, "mermaid_basic", []byte(output))
}

func TestMermaidFormatter_WithLabelAndCycles(t *testing.T) {
	formatter := &formatters.MermaidFormatter{}
	opts := formatters.FormatOptions{
		Label:  "diffutils",
		Cycles: [][]string{{"src/diff.h", "src/util.h"}},
	}

	output, err := formatter.Format(fixtureGraph(), opts)

	require.NoError(t, err)
	formatterGoldie(t).Assert(t, "mermaid_cycles", []byte(output))
}

func TestJSONFormatter_Format(t *testing.T) {
	formatter := &formatters.JSONFormatter{}

	output, err := formatter.Format(fixtureGraph(), formatters.FormatOptions{})

	require.NoError(t, err)
	formatterGoldie(t).Assert(t, "json_basic", []byte(output))
}

func TestJSONFormatter_RoundTrips(t *testing.T) {
	formatter := &formatters.JSONFormatter{}

	output, err := formatter.Format(fixtureGraph(), formatters.FormatOptions{})
	require.NoError(t, err)

	var decoded closure.IncludeGraph
	require.NoError(t, json.Unmarshal([]byte(output), &decoded))
	assert.Equal(t, fixtureGraph(), decoded)
}

func TestNewFormatter(t *testing.T) {
	testCases := []struct {
		format string
		want   interface{}
	}{
		{format: "dot", want: &formatters.DOTFormatter{}},
		{format: "json", want: &formatters.JSONFormatter{}},
		{format: "mermaid", want: &formatters.MermaidFormatter{}},
	}

	for _, tc := range testCases {
		formatter, err := formatters.NewFormatter(tc.format)
		require.NoError(t, err)
		assert.IsType(t, tc.want, formatter)
	}
}

func TestNewFormatter_UnknownFormat(t *testing.T) {
	_, err := formatters.NewFormatter("yaml")

	assert.ErrorContains(t, err, "unknown format")
}

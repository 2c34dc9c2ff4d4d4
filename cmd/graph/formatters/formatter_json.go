package formatters

import (
	"encoding/json"

	"github.com/wuihee/c-rust-program-pairs/closure"
)

// JSONFormatter formats include graphs as JSON adjacency lists.
type JSONFormatter struct{}

// Format converts the include graph to JSON.
// The opts parameter is accepted for interface compatibility but not used.
func (f *JSONFormatter) Format(g closure.IncludeGraph, opts FormatOptions) (string, error) {
	data, err := json.MarshalIndent(g, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data) + "\n", nil
}

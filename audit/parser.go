package audit

import (
	"context"
	"fmt"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/c"
)

// IncludeKind distinguishes between quoted and system includes.
type IncludeKind int

const (
	IncludeQuoted IncludeKind = iota
	IncludeSystem
)

// Include is one include directive found by the C grammar.
type Include struct {
	Path string
	Kind IncludeKind
}

// ParseIncludes parses C source code and extracts every include
// directive the grammar recognizes, in document order.
func ParseIncludes(source []byte) ([]Include, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(c.GetLanguage())

	tree, err := parser.ParseCtx(context.Background(), nil, source)
	if err != nil {
		return nil, fmt.Errorf("failed to parse C code: %w", err)
	}
	defer tree.Close()

	return collectIncludes(tree.RootNode(), source), nil
}

func collectIncludes(root *sitter.Node, source []byte) []Include {
	var includes []Include

	var walk func(*sitter.Node)
	walk = func(n *sitter.Node) {
		if n == nil {
			return
		}

		if n.Type() == "preproc_include" {
			if inc, ok := includeFromNode(n, source); ok {
				includes = append(includes, inc)
			}
		}

		for i := 0; i < int(n.ChildCount()); i++ {
			walk(n.Child(i))
		}
	}

	walk(root)
	return includes
}

// includeFromNode reads the include target from a preproc_include
// node. Directives whose target is a macro have neither a string
// literal nor a system path child and are skipped.
func includeFromNode(node *sitter.Node, source []byte) (Include, bool) {
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		if child == nil {
			continue
		}
		switch child.Type() {
		case "string_literal":
			return Include{Path: cleanQuoted(child.Content(source)), Kind: IncludeQuoted}, true
		case "system_lib_string":
			return Include{Path: cleanSystem(child.Content(source)), Kind: IncludeSystem}, true
		}
	}
	return Include{}, false
}

func cleanQuoted(raw string) string {
	return strings.Trim(raw, "\"' ")
}

func cleanSystem(raw string) string {
	trimmed := strings.TrimSpace(raw)
	trimmed = strings.TrimPrefix(trimmed, "<")
	trimmed = strings.TrimSuffix(trimmed, ">")
	return strings.TrimSpace(trimmed)
}

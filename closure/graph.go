package closure

import (
	"sort"

	"github.com/dominikbraun/graph"
)

// IncludeGraph maps every file in a program's source closure to the files its
// quoted includes resolve to. All paths are slash-separated and relative to
// the repository root; files without includes map to an empty list.
type IncludeGraph map[string][]string

// BuildIncludeGraph resolves program the same way Resolve does, but returns
// the include relationships between the files of the closure instead of the
// flat file set. Error semantics match Resolve.
func (r *Resolver) BuildIncludeGraph(program, repoRoot string) (IncludeGraph, error) {
	edges := make(map[string]map[string]bool)

	visited, err := r.expandClosure(program, repoRoot, func(from, to string) {
		if edges[from] == nil {
			edges[from] = make(map[string]bool)
		}
		edges[from][to] = true
	})
	if err != nil {
		return nil, err
	}

	g := make(IncludeGraph, len(visited))
	for path := range visited {
		targets := make([]string, 0, len(edges[path]))
		for to := range edges[path] {
			targets = append(targets, to)
		}
		sort.Strings(targets)
		g[path] = targets
	}

	return g, nil
}

// Files returns the graph's nodes in sorted order.
func (g IncludeGraph) Files() []string {
	files := make([]string, 0, len(g))
	for path := range g {
		files = append(files, path)
	}
	sort.Strings(files)
	return files
}

// Cycles returns the include cycles in g. Each cycle is reported once as a
// sorted group of files: a strongly connected component with more than one
// member, or a single file that includes itself.
func Cycles(g IncludeGraph) [][]string {
	dg := graph.New(graph.StringHash, graph.Directed())
	for from := range g {
		_ = dg.AddVertex(from)
	}
	for from, targets := range g {
		for _, to := range targets {
			_ = dg.AddVertex(to)
			_ = dg.AddEdge(from, to)
		}
	}

	sccs, err := graph.StronglyConnectedComponents(dg)
	if err != nil {
		return nil
	}

	var cycles [][]string
	for _, scc := range sccs {
		if len(scc) > 1 {
			sort.Strings(scc)
			cycles = append(cycles, scc)
			continue
		}

		node := scc[0]
		for _, to := range g[node] {
			if to == node {
				cycles = append(cycles, []string{node})
				break
			}
		}
	}

	sort.Slice(cycles, func(i, j int) bool { return cycles[i][0] < cycles[j][0] })
	return cycles
}

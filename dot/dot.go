// Package dot renders a project.Graph as Graphviz DOT source, clustering
// activities into dashed rank subgraphs and labeling each node with its
// duration.
package dot

import (
	"fmt"
	"io"
	"text/template"

	"github.com/rcpsp-go/rcpsp/project"
)

const graphTemplate = `digraph "{{.Name}}" {
  rankdir=LR;
  node [shape=box];
{{range .Ranks}}  subgraph cluster_rank_{{.Rank}} {
    label="rank {{.Rank}}";
    style=dashed;
{{range .Nodes}}    N{{.ID}} [label="{{.ID}} ({{.Duration}})"];
{{end}}  }
{{end}}{{range .Edges}}  N{{.From}} -> N{{.To}};
{{end}}}
`

type nodeView struct {
	ID       int
	Duration int
}

type rankView struct {
	Rank  int
	Nodes []nodeView
}

type edgeView struct {
	From, To int
}

type graphView struct {
	Name  string
	Ranks []rankView
	Edges []edgeView
}

// Write renders g to w as a DOT graph named name. Activities are grouped
// into dashed rank subgraphs, one per execution rank (project.Graph.Rank),
// each node labeled "id (duration)".
func Write(w io.Writer, g *project.Graph, name string) error {
	tmpl, err := template.New("dot").Parse(graphTemplate)
	if err != nil {
		return fmt.Errorf("dot: parse template: %w", err)
	}

	n := g.N()
	maxRank := 0
	for a := 0; a < n; a++ {
		if r := g.Rank(a); r > maxRank {
			maxRank = r
		}
	}

	ranks := make([]rankView, maxRank+1)
	for r := range ranks {
		ranks[r].Rank = r
	}
	for a := 0; a < n; a++ {
		r := g.Rank(a)
		ranks[r].Nodes = append(ranks[r].Nodes, nodeView{ID: a, Duration: g.Duration(a)})
	}

	var edges []edgeView
	for a := 0; a < n; a++ {
		for _, s := range g.Successors(a) {
			edges = append(edges, edgeView{From: a, To: s})
		}
	}

	view := graphView{Name: name, Ranks: ranks, Edges: edges}

	return tmpl.Execute(w, view)
}

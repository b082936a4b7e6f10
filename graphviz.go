package machina

import (
	"github.com/enetx/g"
	"github.com/enetx/g/cmp"
)

// ToDOT generates a DOT language string representation of the state graph
// for visualization.
func (e *Engine) ToDOT() g.String {
	b := g.NewBuilder()

	b.WriteString("digraph machina {\n")
	b.WriteString("  rankdir=LR;\n")
	b.WriteString(
		"  node [shape=circle, style=filled, fillcolor=\"#f8f8f8\", color=\"#444444\", fontname=\"Helvetica\"];\n",
	)
	b.WriteString("  edge [fontname=\"Helvetica\", fontsize=10];\n\n")

	if e.root != nil {
		b.WriteString("  __start [shape=point, style=invis];\n")
		b.WriteString(g.Format("  __start -> \"{}\" [label=\" initial\"];\n\n", e.root.name))
	}

	grouped := g.NewMap[g.Pair[g.String, g.String], g.Slice[g.String]]()

	for from, s := range e.states.Iter() {
		for t := range s.transitions.Iter() {
			key := g.Pair[g.String, g.String]{Key: from, Value: t.Target}

			var label g.String
			if t.isLiteral {
				label = g.Format("{}", t.literal)
			} else {
				label = "(guarded)"
			}

			if t.Accept != nil {
				label += " *"
			}

			grouped.Entry(key).
				AndModify(func(s *g.Slice[g.String]) { s.Push(label) }).
				OrInsert(g.SliceOf(label))
		}
	}

	names := e.states.Keys()
	names.SortBy(cmp.Cmp)

	for name := range names.Iter() {
		s := e.states.Get(name).Some()

		var attrs g.Slice[g.String]
		attrs.Push(g.Format("label=\"{}\"", name))

		switch {
		case e.current != nil && name == e.current.name:
			attrs.Push("fillcolor=\"#90ee90\"", "shape=doublecircle")
		case s.terminal:
			attrs.Push("fillcolor=\"#d3d3d3\"", "shape=doublecircle")
		}

		if s.accept != nil {
			attrs.Push("tooltip=\"Accept\"")
		}

		b.WriteString(g.Format("  \"{}\" [{}];\n", name, attrs.Join(", ")))
	}

	b.WriteByte('\n')

	for pair, labels := range grouped.Iter() {
		from, to := pair.Key, pair.Value

		var edge g.Slice[g.String]
		label := labels.Join("\\n")

		edge.Push(g.Format("label=\" {} \"", label))

		if label.Contains("(guarded)") {
			edge.Push("style=dashed", "color=red", "arrowhead=odiamond")
		}

		b.WriteString(g.Format("  \"{}\" -> \"{}\" [{}];\n", from, to, edge.Join(", ")))
	}

	b.WriteString("\n  subgraph cluster_legend {\n")
	b.WriteString("    label = \"Legend\";\n")
	b.WriteString("    style = dashed;\n")
	b.WriteString(`    key [label=<
      <table border="0" cellpadding="4" cellspacing="0" cellborder="0">
        <tr><td align="right">●</td><td>Regular state</td></tr>
        <tr><td align="right"><font color="green">◎</font></td><td>Current state</td></tr>
        <tr><td align="right"><font color="gray">◎</font></td><td>Terminal state</td></tr>
        <tr><td align="right"><font color="red">→</font></td><td>Guarded transition</td></tr>
        <tr><td align="right">*</td><td>Transition accept</td></tr>
      </table>
    >, shape=none];`)

	b.WriteString("  }\n")
	b.WriteString("}\n")

	return b.String()
}

package handlers

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/imamik/wizflow/internal/definition"
)

// Graph prints the steps and transitions of a wizard as text or Graphviz
// dot source.
func Graph(path, format string) error {
	def, err := loadDefinition(path)
	if err != nil {
		return fmt.Errorf("failed to load wizard: %w", err)
	}

	switch format {
	case "", "text":
		fmt.Print(renderGraphText(def))
	case "dot":
		fmt.Print(renderGraphDot(def))
	default:
		return fmt.Errorf("unknown graph format %q (use text or dot)", format)
	}
	return nil
}

func renderGraphText(def *definition.Definition) string {
	var b strings.Builder

	edges := def.Edges()
	terminal := def.Terminal()
	unreachable := def.Unreachable()

	for _, step := range def.Steps {
		name := stepStyle.Render(step.ID)
		if step.ID == def.InitialStep() {
			name += " " + initialStyle.Render("(start)")
		}
		if step.Title != "" {
			name += " " + dimStyle.Render(step.Title)
		}
		if slices.Contains(unreachable, step.ID) {
			name += " " + warnStyle.Render("unreachable")
		}
		b.WriteString(name)
		b.WriteString("\n")

		for _, e := range edges {
			if e.From != step.ID {
				continue
			}
			if e.Condition != "" {
				fmt.Fprintf(&b, "  → %s %s\n", e.To, dimStyle.Render("when "+e.Condition))
			} else {
				fmt.Fprintf(&b, "  → %s\n", e.To)
			}
		}
		if slices.Contains(terminal, step.ID) {
			fmt.Fprintf(&b, "  %s\n", okStyle.Render("■ finish"))
		}
	}
	return b.String()
}

func renderGraphDot(def *definition.Definition) string {
	var b strings.Builder

	fmt.Fprintf(&b, "digraph %s {\n", strconv.Quote(def.Name))
	b.WriteString("  rankdir=LR;\n")
	for _, step := range def.Steps {
		attrs := []string{"label=" + strconv.Quote(stepLabel(step))}
		if step.ID == def.InitialStep() {
			attrs = append(attrs, "penwidth=2")
		}
		if step.Next == "" {
			attrs = append(attrs, "shape=doublecircle")
		}
		fmt.Fprintf(&b, "  %s [%s];\n", strconv.Quote(step.ID), strings.Join(attrs, ", "))
	}
	for _, e := range def.Edges() {
		if e.Condition != "" {
			fmt.Fprintf(&b, "  %s -> %s [label=%s];\n", strconv.Quote(e.From), strconv.Quote(e.To), strconv.Quote(e.Condition))
		} else {
			fmt.Fprintf(&b, "  %s -> %s;\n", strconv.Quote(e.From), strconv.Quote(e.To))
		}
	}
	b.WriteString("}\n")
	return b.String()
}

func stepLabel(step definition.Step) string {
	if step.Title == "" {
		return step.ID
	}
	return step.Title
}

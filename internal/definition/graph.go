package definition

// Edge is one possible transition between steps.
type Edge struct {
	From string
	To   string
	// Condition is empty for the unconditional next step.
	Condition string
}

// Edges lists every declared transition in declaration order. Branch edges
// come before the step's fallback edge.
func (d *Definition) Edges() []Edge {
	var edges []Edge
	for _, step := range d.Steps {
		for _, b := range step.Branches {
			edges = append(edges, Edge{From: step.ID, To: b.Goto, Condition: b.When.String()})
		}
		if step.Next != "" {
			edges = append(edges, Edge{From: step.ID, To: step.Next})
		}
	}
	return edges
}

// Reachable returns the steps reachable from the initial step, in
// breadth-first order.
func (d *Definition) Reachable() []string {
	start := d.InitialStep()
	if _, ok := d.Step(start); !ok {
		return nil
	}

	adj := make(map[string][]string)
	for _, e := range d.Edges() {
		adj[e.From] = append(adj[e.From], e.To)
	}

	visited := map[string]bool{start: true}
	order := []string{start}
	for i := 0; i < len(order); i++ {
		for _, next := range adj[order[i]] {
			if !visited[next] {
				visited[next] = true
				order = append(order, next)
			}
		}
	}
	return order
}

// Unreachable returns the declared steps no path from the initial step
// leads to.
func (d *Definition) Unreachable() []string {
	reached := make(map[string]bool)
	for _, id := range d.Reachable() {
		reached[id] = true
	}

	var out []string
	for _, step := range d.Steps {
		if !reached[step.ID] {
			out = append(out, step.ID)
		}
	}
	return out
}

// Terminal returns the steps on which the wizard can finish: steps with no
// fallback next step.
func (d *Definition) Terminal() []string {
	var out []string
	for _, step := range d.Steps {
		if step.Next == "" {
			out = append(out, step.ID)
		}
	}
	return out
}

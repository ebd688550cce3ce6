package navigator

import "slices"

// history is the stack of visited steps. The top is the current step.
type history struct {
	steps []StepID
}

func (h *history) push(s StepID) {
	h.steps = append(h.steps, s)
}

// pop removes the top step unless only the root remains.
func (h *history) pop() bool {
	if len(h.steps) <= 1 {
		return false
	}
	h.steps = h.steps[:len(h.steps)-1]
	return true
}

func (h *history) top() StepID {
	if len(h.steps) == 0 {
		return ""
	}
	return h.steps[len(h.steps)-1]
}

func (h *history) len() int {
	return len(h.steps)
}

func (h *history) snapshot() []StepID {
	return slices.Clone(h.steps)
}

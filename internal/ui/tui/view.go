package tui

import (
	"fmt"
	"strings"
)

func renderView(m *Model) string {
	var b strings.Builder

	renderHeader(&b, m)
	renderProgressBar(&b, m)
	renderStep(&b, m)

	if m.validation != "" {
		renderValidation(&b, m)
	}

	renderFooter(&b, m)

	return b.String()
}

func renderHeader(b *strings.Builder, m *Model) {
	title := m.def.Title
	if title == "" {
		title = m.def.Name
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString(" ")
	b.WriteString(subtitleStyle.Render(m.labels.Position(m.nav.Depth(), totalSteps(m))))
	b.WriteString("\n")
}

// totalSteps estimates the length of the run: every reachable step, but
// never fewer than the steps already visited.
func totalSteps(m *Model) int {
	return max(len(m.def.Reachable()), m.nav.Depth())
}

func renderProgressBar(b *strings.Builder, m *Model) {
	progress := float64(m.nav.Depth()) / float64(totalSteps(m))
	barWidth := 40
	if m.width > 0 && m.width < 60 {
		barWidth = max(m.width-20, 10)
	}
	filled := min(int(float64(barWidth)*progress), barWidth)

	bar := progressBarFull.Render(strings.Repeat("█", filled)) +
		progressBarEmpty.Render(strings.Repeat("░", barWidth-filled))

	fmt.Fprintf(b, "  %s %d%%\n", bar, int(progress*100))
}

func renderStep(b *strings.Builder, m *Model) {
	step := m.currentStep()

	heading := m.stepTitle
	if heading == "" {
		heading = step.ID
	}
	b.WriteString(sectionStyle.Render(heading))
	b.WriteString("\n")

	if step.Description != "" {
		b.WriteString(dimStyle.Render(step.Description))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if m.form != nil {
		b.WriteString(m.form.View())
		b.WriteString("\n")
	}
}

func renderValidation(b *strings.Builder, m *Model) {
	for _, line := range strings.Split(m.validation, "\n") {
		fmt.Fprintf(b, "%s %s\n", failedStyle.Render(crossMark), failedStyle.Render(line))
	}
}

func renderFooter(b *strings.Builder, m *Model) {
	back := fmt.Sprintf("%s: %s", keyBack, m.labels.Back())
	if m.nav.IsAtRoot() {
		back = dimStyle.Strikethrough(true).Render(back)
	} else {
		back = activeStyle.Render(back)
	}

	parts := []string{
		activeStyle.Render(fmt.Sprintf("%s: %s", keyNext, m.forward)),
		back,
		fmt.Sprintf("%s: %s", keyQuit, m.labels.Quit()),
	}
	b.WriteString(footerStyle.Render(strings.Join(parts, "  ")))
	b.WriteString("\n")
}

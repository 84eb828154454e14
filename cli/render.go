package cli

import (
	"fmt"
	"strconv"
	"strings"

	"searchagent/experiments/metrics"
	"searchagent/searcher"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	failureStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	faintStyle   = lipgloss.NewStyle().Faint(true)
)

func renderPath[S comparable](result searcher.Result[S]) string {
	rows := make([][]string, 0, len(result.Path))
	for _, step := range result.Path {
		rows = append(rows, []string{
			strconv.Itoa(step.Depth),
			fmt.Sprint(step.State),
			formatFloat(step.Cost),
			formatFloat(step.Heuristic),
			formatFloat(step.Evaluation),
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("depth", "state", "g(n)", "h(n)", "f(n)").
		Rows(rows...)

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Solution path (cost %s)", formatFloat(result.Cost()))))
	b.WriteString("\n")
	b.WriteString(t.Render())
	b.WriteString("\n")
	b.WriteString(faintStyle.Render(renderMetrics(result.Metrics)))
	return b.String()
}

func renderFailure[S comparable](result searcher.Result[S]) string {
	message := "No solution reachable"
	if result.Truncated {
		message += " within the cutoff"
	}
	return failureStyle.Render(message) + "\n" + faintStyle.Render(renderMetrics(result.Metrics))
}

func renderMetrics(m metrics.SearchMetric) string {
	return fmt.Sprintf("generated %d nodes, expanded %d, max frontier %d, took %s",
		m.Generated, m.Expanded, m.MaxFrontier, m.Duration)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

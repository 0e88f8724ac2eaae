package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dd0wney/cluso-covermetrics/pkg/cover"
	"github.com/dd0wney/cluso-covermetrics/pkg/graph"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF00FF")).
			MarginLeft(2).
			MarginTop(1)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00FFFF")).
			MarginLeft(2)

	tableStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#00FFFF")).
			MarginLeft(2)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			MarginTop(1).
			MarginLeft(2)
)

type keyMap struct {
	Prev key.Binding
	Next key.Binding
	Aggr key.Binding
	Quit key.Binding
}

var keys = keyMap{
	Prev: key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "previous cluster")),
	Next: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next cluster")),
	Aggr: key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "toggle aggregations")),
	Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

type model struct {
	c         *cover.Cover
	report    *cover.Report
	cluster   int
	aggregate bool
	table     table.Model
	coverPath string
}

func newModel(c *cover.Cover, report *cover.Report, coverPath string) model {
	m := model{c: c, report: report, coverPath: coverPath}
	m.table = table.New(
		table.WithColumns(metricColumns(false)),
		table.WithFocused(true),
		table.WithHeight(len(report.Names())+1),
	)
	m.refresh()
	return m
}

func metricColumns(aggregate bool) []table.Column {
	if aggregate {
		return []table.Column{
			{Title: "Metric", Width: 32},
			{Title: "Min", Width: 10},
			{Title: "Max", Width: 10},
			{Title: "Mean", Width: 10},
			{Title: "StdDev", Width: 10},
		}
	}
	return []table.Column{
		{Title: "Metric", Width: 32},
		{Title: "Value", Width: 12},
	}
}

// refresh rebuilds the table rows for the current view
func (m *model) refresh() {
	m.table.SetColumns(metricColumns(m.aggregate))

	rows := make([]table.Row, 0, len(m.report.Names()))
	for _, name := range m.report.Names() {
		metric := m.report.Metric(name)
		if m.aggregate {
			agg := metric.Aggregation
			rows = append(rows, table.Row{
				name,
				fmt.Sprintf("%.4f", agg.Min),
				fmt.Sprintf("%.4f", agg.Max),
				fmt.Sprintf("%.4f", agg.Mean),
				fmt.Sprintf("%.4f", agg.StdDev),
			})
		} else if m.cluster < len(metric.Results) {
			rows = append(rows, table.Row{name, fmt.Sprintf("%.6f", metric.Results[m.cluster])})
		}
	}
	m.table.SetRows(rows)
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Prev):
			if m.cluster > 0 {
				m.cluster--
				m.refresh()
			}
		case key.Matches(msg, keys.Next):
			if m.cluster < m.c.Len()-1 {
				m.cluster++
				m.refresh()
			}
		case key.Matches(msg, keys.Aggr):
			m.aggregate = !m.aggregate
			m.refresh()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m model) View() string {
	title := titleStyle.Render("Cover Metrics — " + m.coverPath)

	var status string
	if m.aggregate {
		status = statusStyle.Render(fmt.Sprintf("Aggregations over %d clusters", m.c.Len()))
	} else {
		status = statusStyle.Render(fmt.Sprintf("Cluster %d of %d (%d vertices)",
			m.cluster+1, m.c.Len(), m.c.Size(m.cluster)))
	}

	help := helpStyle.Render("←/→ cluster · a aggregations · q quit")

	return title + "\n" + status + "\n" + tableStyle.Render(m.table.View()) + "\n" + help + "\n"
}

func main() {
	graphPath := flag.String("graph", "", "Edge list file")
	coverPath := flag.String("cover", "", "Cover file, one cluster per line")
	weightAttr := flag.String("weights", "", "Edge weight attribute name")
	allowNaN := flag.Bool("allow-nan", false, "Report NaN instead of 0 on zero denominators")
	flag.Parse()

	if *graphPath == "" || *coverPath == "" {
		fmt.Fprintln(os.Stderr, "❌ Both -graph and -cover are required")
		flag.Usage()
		os.Exit(1)
	}

	g, err := graph.LoadEdgeList(*graphPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(1)
	}
	c, err := cover.Load(*coverPath, g)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(1)
	}

	weights := cover.Unweighted()
	if *weightAttr != "" {
		weights = cover.NamedWeights(*weightAttr)
	}
	report, err := c.ComputeMetrics(weights, *allowNaN)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(1)
	}

	if _, err := tea.NewProgram(newModel(c, report, *coverPath)).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "❌ TUI failed: %v\n", err)
		os.Exit(1)
	}
}

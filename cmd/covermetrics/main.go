package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/dd0wney/cluso-covermetrics/pkg/cover"
	"github.com/dd0wney/cluso-covermetrics/pkg/graph"
	"github.com/dd0wney/cluso-covermetrics/pkg/logging"
	"github.com/dd0wney/cluso-covermetrics/pkg/metrics"
	"github.com/dd0wney/cluso-covermetrics/pkg/render"
)

func main() {
	configPath := flag.String("config", "", "YAML config file")
	graphPath := flag.String("graph", "", "Edge list file (.snappy/.sz for compressed)")
	coverPath := flag.String("cover", "", "Cover file, one cluster per line")
	comparePath := flag.String("compare", "", "Second cover file for omega comparison")
	weightAttr := flag.String("weights", "", "Edge weight attribute name (empty for unweighted)")
	allowNaN := flag.Bool("allow-nan", false, "Report NaN instead of 0 on zero denominators")
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	dumpMetrics := flag.Bool("dump-metrics", false, "Print instrumentation counters at exit")
	flag.Parse()

	cfg := &Config{LogLevel: *logLevel}
	if *configPath != "" {
		loaded, err := LoadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "❌ %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if *graphPath != "" {
		cfg.GraphPath = *graphPath
	}
	if *coverPath != "" {
		cfg.CoverPath = *coverPath
	}
	if *comparePath != "" {
		cfg.ComparePath = *comparePath
	}
	if *weightAttr != "" {
		cfg.WeightAttribute = *weightAttr
	}
	if *allowNaN {
		cfg.AllowNaN = true
	}
	if *dumpMetrics {
		cfg.DumpMetrics = true
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "❌ A graph and a cover are required (flags or config file)")
		flag.Usage()
		os.Exit(1)
	}

	logger := logging.NewJSONLogger(os.Stderr, logging.ParseLevel(cfg.LogLevel))
	registry := metrics.DefaultRegistry()

	if err := run(cfg, logger, registry); err != nil {
		logger.Error("run failed", logging.Error(err))
		os.Exit(1)
	}

	if cfg.DumpMetrics {
		dumpRegistry(registry)
	}
}

func run(cfg *Config, logger logging.Logger, registry *metrics.Registry) error {
	g, err := graph.LoadEdgeList(cfg.GraphPath)
	if err != nil {
		return err
	}
	logger.Info("graph loaded",
		logging.Path(cfg.GraphPath),
		logging.Vertices(g.VertexCount()),
		logging.Edges(g.EdgeCount()))
	registry.SetGraphSize(g.VertexCount(), g.EdgeCount())

	c, err := cover.Load(cfg.CoverPath, g)
	if err != nil {
		return err
	}
	logger.Info("cover loaded", logging.Path(cfg.CoverPath), logging.Clusters(c.Len()))
	registry.RecordCoverLoaded(c.Len())

	weights := cover.Unweighted()
	if cfg.WeightAttribute != "" {
		weights = cover.NamedWeights(cfg.WeightAttribute)
	}

	start := time.Now()
	report, err := c.ComputeMetrics(weights, cfg.AllowNaN)
	elapsed := time.Since(start)
	if err != nil {
		registry.RecordReport("error", elapsed, 0)
		return err
	}

	boundaryEdges := 0
	for _, edges := range c.BoundaryEdges() {
		boundaryEdges += len(edges)
	}
	registry.RecordReport("success", elapsed, boundaryEdges)
	logger.Info("report computed",
		logging.Clusters(c.Len()),
		logging.Duration("elapsed", elapsed),
		logging.Int("boundary_edges", boundaryEdges))

	fmt.Print(render.Report(report, c.Len()))
	fmt.Print(render.Summary(report))

	if cfg.ComparePath != "" {
		other, err := cover.Load(cfg.ComparePath, g)
		if err != nil {
			return err
		}
		registry.RecordCoverLoaded(other.Len())
		if score, ok := c.CompareOmega(other); ok {
			fmt.Printf("\nOmega index vs %s: %.6f\n", cfg.ComparePath, score)
		} else {
			fmt.Printf("\nOmega index vs %s: not comparable\n", cfg.ComparePath)
		}
	}
	return nil
}

// dumpRegistry prints the gathered instrumentation values, one family
// per line
func dumpRegistry(registry *metrics.Registry) {
	families, err := registry.GetPrometheusRegistry().Gather()
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ Failed to gather metrics: %v\n", err)
		return
	}
	fmt.Println("\nInstrumentation:")
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			switch {
			case m.GetCounter() != nil:
				fmt.Printf("  %s %v\n", mf.GetName(), m.GetCounter().GetValue())
			case m.GetGauge() != nil:
				fmt.Printf("  %s %v\n", mf.GetName(), m.GetGauge().GetValue())
			case m.GetHistogram() != nil:
				fmt.Printf("  %s count=%d sum=%v\n", mf.GetName(),
					m.GetHistogram().GetSampleCount(), m.GetHistogram().GetSampleSum())
			}
		}
	}
}

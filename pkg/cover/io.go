package cover

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/dd0wney/cluso-covermetrics/pkg/graph"
)

// Load reads a cover from a cluster file: one cluster per line listing
// its vertex ids, '#' starting a comment. Vertices may appear on
// several lines (overlapping cover) or on none.
func Load(path string, g *graph.Graph) (*Cover, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open cover file %s: %w", path, err)
	}
	defer f.Close()

	c, err := Parse(f, g)
	if err != nil {
		return nil, fmt.Errorf("failed to parse cover file %s: %w", path, err)
	}
	return c, nil
}

// Parse reads cluster lines from r and builds a cover over g.
func Parse(r io.Reader, g *graph.Graph) (*Cover, error) {
	var clusters [][]int
	lineNo := 0

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		vertices := make([]int, 0, len(fields))
		for _, field := range fields {
			v, err := strconv.Atoi(field)
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid vertex id %q", lineNo, field)
			}
			vertices = append(vertices, v)
		}
		clusters = append(clusters, vertices)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan cover file: %w", err)
	}

	return FromClusters(g, clusters)
}

package graph

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/golang/snappy"
)

// WeightAttribute is the attribute name edge-list weights are stored
// under when the third column is present.
const WeightAttribute = "weight"

// LoadEdgeList reads a graph from a whitespace-separated edge-list
// file: one "source target [weight]" triple per line, '#' starting a
// comment. Files ending in ".snappy" or ".sz" are snappy
// block-compressed. The vertex count is the largest id seen plus one.
func LoadEdgeList(path string) (*Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read edge list %s: %w", path, err)
	}

	if strings.HasSuffix(path, ".snappy") || strings.HasSuffix(path, ".sz") {
		data, err = snappy.Decode(nil, data)
		if err != nil {
			return nil, fmt.Errorf("failed to decompress edge list %s: %w", path, err)
		}
	}

	g, err := ParseEdgeList(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse edge list %s: %w", path, err)
	}
	return g, nil
}

// ParseEdgeList parses edge-list text from r. Either every edge carries
// a weight column or none does; mixing the two is an error.
func ParseEdgeList(r io.Reader) (*Graph, error) {
	type rawEdge struct {
		source, target int
		weight         float64
	}

	var (
		edges    []rawEdge
		maxID    = -1
		weighted bool
		lineNo   int
	)

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
		if len(fields) != 2 && len(fields) != 3 {
			return nil, fmt.Errorf("line %d: expected 2 or 3 columns, got %d", lineNo, len(fields))
		}

		src, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid source vertex %q", lineNo, fields[0])
		}
		dst, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid target vertex %q", lineNo, fields[1])
		}
		if src < 0 || dst < 0 {
			return nil, fmt.Errorf("line %d: negative vertex id", lineNo)
		}

		e := rawEdge{source: src, target: dst, weight: 1.0}
		hasWeight := len(fields) == 3
		if hasWeight {
			e.weight, err = strconv.ParseFloat(fields[2], 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid weight %q", lineNo, fields[2])
			}
		}
		if len(edges) == 0 {
			weighted = hasWeight
		} else if hasWeight != weighted {
			return nil, fmt.Errorf("line %d: mixed weighted and unweighted edges", lineNo)
		}

		if src > maxID {
			maxID = src
		}
		if dst > maxID {
			maxID = dst
		}
		edges = append(edges, e)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan edge list: %w", err)
	}

	g, err := New(maxID + 1)
	if err != nil {
		return nil, err
	}
	for _, e := range edges {
		if _, err := g.AddEdge(e.source, e.target); err != nil {
			return nil, err
		}
	}

	if weighted {
		weights := make([]float64, len(edges))
		for i, e := range edges {
			weights[i] = e.weight
		}
		if err := g.SetEdgeAttribute(WeightAttribute, weights); err != nil {
			return nil, err
		}
	}
	return g, nil
}

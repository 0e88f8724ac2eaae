package logging

import "time"

// Common field constructors
func String(key, value string) Field {
	return Field{Key: key, Value: value}
}

func Int(key string, value int) Field {
	return Field{Key: key, Value: value}
}

func Float64(key string, value float64) Field {
	return Field{Key: key, Value: value}
}

func Bool(key string, value bool) Field {
	return Field{Key: key, Value: value}
}

func Duration(key string, value time.Duration) Field {
	return Field{Key: key, Value: value.String()}
}

func Error(err error) Field {
	if err == nil {
		return Field{Key: "error", Value: nil}
	}
	return Field{Key: "error", Value: err.Error()}
}

// Domain field helpers

// Metric names the metric being computed
func Metric(name string) Field {
	return String("metric", name)
}

// Clusters carries a cover's cluster count
func Clusters(k int) Field {
	return Int("clusters", k)
}

// Vertices carries a graph's vertex count
func Vertices(n int) Field {
	return Int("vertices", n)
}

// Edges carries a graph's edge count
func Edges(m int) Field {
	return Int("edges", m)
}

// Path carries a file path
func Path(p string) Field {
	return String("path", p)
}

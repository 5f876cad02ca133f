package distance

import (
	"fmt"

	"github.com/hupe1980/dynvec"
	"github.com/hupe1980/dynvec/internal/kernel"
)

// Dot calculates the dot product of two vectors.
func Dot[T dynvec.Element](a, b *dynvec.Vector[T]) (T, error) {
	return a.Dot(b)
}

// SquaredL2 calculates the squared L2 (Euclidean) distance between two vectors.
func SquaredL2[T dynvec.Element](a, b *dynvec.Vector[T]) (T, error) {
	if a == nil || b == nil || a.Len() != b.Len() {
		var zero T
		return zero, &dynvec.ErrSizeMismatch{Expected: a.Len(), Actual: b.Len()}
	}

	return kernel.SquaredL2(a.Values(), b.Values()), nil
}

// Metric represents the distance metric used for vector comparison.
type Metric int

const (
	MetricL2 Metric = iota
	MetricDot
)

func (m Metric) String() string {
	switch m {
	case MetricL2:
		return "L2"
	case MetricDot:
		return "Dot"
	default:
		return fmt.Sprintf("Unknown(%d)", m)
	}
}

// ParseMetric returns the metric named by s. Both the String form and its
// lower-case spelling are accepted.
func ParseMetric(s string) (Metric, error) {
	switch s {
	case "L2", "l2":
		return MetricL2, nil
	case "Dot", "dot":
		return MetricDot, nil
	default:
		return 0, fmt.Errorf("unknown metric: %q", s)
	}
}

// Func is a function type for distance calculation.
type Func[T dynvec.Element] func(a, b *dynvec.Vector[T]) (T, error)

// Provider returns the distance function for the given metric.
func Provider[T dynvec.Element](m Metric) (Func[T], error) {
	switch m {
	case MetricL2:
		return SquaredL2[T], nil
	case MetricDot:
		return Dot[T], nil
	default:
		return nil, fmt.Errorf("unsupported metric: %v", m)
	}
}

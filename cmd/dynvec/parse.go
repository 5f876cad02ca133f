package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hupe1980/dynvec"
	"github.com/hupe1980/dynvec/matrix"
)

// parseVector reads a comma separated list of numbers, e.g. "1,2.5,-3".
func parseVector(s string) (*dynvec.Vector[float64], error) {
	vals, err := parseFloats(s)
	if err != nil {
		return nil, err
	}
	return dynvec.FromSlice(vals)
}

// parseMatrix reads rows separated by ';', e.g. "1,0;0,1".
func parseMatrix(s string) (*matrix.Matrix[float64], error) {
	parts := strings.Split(s, ";")
	rows := make([][]float64, len(parts))
	for i, p := range parts {
		vals, err := parseFloats(p)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		rows[i] = vals
	}
	return matrix.FromRows(rows)
}

func parseFloats(s string) ([]float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	fields := strings.Split(s, ",")
	vals := make([]float64, len(fields))
	for i, f := range fields {
		x, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		vals[i] = x
	}
	return vals, nil
}

func formatScalar(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}

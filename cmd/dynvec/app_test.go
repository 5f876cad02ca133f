package main

import (
	"bytes"
	"testing"

	"github.com/hupe1980/dynvec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	err := newApp(&out, &errOut).Run(append([]string{"dynvec"}, args...))
	return out.String(), errOut.String(), err
}

func TestCommands(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{"Add", []string{"add", "1,2,3", "4,5,6"}, "[5 7 9]\n"},
		{"Sub", []string{"sub", "10,0", "5,0"}, "[5 0]\n"},
		{"Dot", []string{"dot", "0,0,0,3,0", "0,0,0,3,0"}, "9\n"},
		{"DistL2", []string{"dist", "1,2,3", "4,5,6"}, "27\n"},
		{"DistDot", []string{"dist", "--metric", "dot", "1,2", "3,4"}, "11\n"},
		{"ScalarAdd", []string{"scalar", "--op", "add", "--by", "3", "3,3,3"}, "[6 6 6]\n"},
		{"ScalarSub", []string{"scalar", "--op", "sub", "--by", "3", "3,3,3"}, "[0 0 0]\n"},
		{"ScalarMul", []string{"scalar", "--by", "3", "3,3,3"}, "[9 9 9]\n"},
		{"Equal", []string{"equal", "1,2", "1,2"}, "true\n"},
		{"NotEqual", []string{"equal", "1,2", "1,2,3"}, "false\n"},
		{"MatVec", []string{"matvec", "1,2;3,4", "1,1"}, "[3 7]\n"},
		{"MatMul", []string{"matmul", "1,2;3,4", "5,6;7,8"}, "[19 22]\n[43 50]\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out, _, err := run(t, tc.args...)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, out)
		})
	}
}

func TestSizeMismatch(t *testing.T) {
	for _, cmd := range []string{"add", "sub", "dot"} {
		t.Run(cmd, func(t *testing.T) {
			_, errOut, err := run(t, "--log-format", "json", cmd, "1,2,3,4,5", "1,2,3,4,5,6,7,8,9,10")
			assert.ErrorIs(t, err, dynvec.ErrMismatch)
			assert.Contains(t, errOut, `"msg":"operation failed"`)
			assert.Contains(t, errOut, `"op":"`+cmd+`"`)
		})
	}
}

func TestErrors(t *testing.T) {
	t.Run("WrongArgCount", func(t *testing.T) {
		_, _, err := run(t, "add", "1,2")
		assert.EqualError(t, err, "add: expected 2 arguments, got 1")
	})

	t.Run("BadNumber", func(t *testing.T) {
		_, _, err := run(t, "add", "1,x", "1,2")
		assert.ErrorContains(t, err, "first operand")
	})

	t.Run("EmptyVector", func(t *testing.T) {
		_, _, err := run(t, "equal", "", "1")
		assert.ErrorIs(t, err, dynvec.ErrSize)
	})

	t.Run("NonSquareMatrix", func(t *testing.T) {
		_, _, err := run(t, "matvec", "1,2,3;4,5,6", "1,1")
		assert.ErrorIs(t, err, dynvec.ErrMismatch)
	})

	t.Run("UnknownScalarOp", func(t *testing.T) {
		_, _, err := run(t, "scalar", "--op", "div", "--by", "2", "1,2")
		assert.EqualError(t, err, `scalar: unknown op "div"`)
	})

	t.Run("UnknownMetric", func(t *testing.T) {
		_, _, err := run(t, "dist", "--metric", "cosine", "1", "1")
		assert.Error(t, err)
	})

	t.Run("BadLogLevel", func(t *testing.T) {
		_, _, err := run(t, "--log-level", "loud", "add", "1", "1")
		assert.ErrorContains(t, err, "invalid log level")
	})

	t.Run("BadLogFormat", func(t *testing.T) {
		_, _, err := run(t, "--log-format", "xml", "add", "1", "1")
		assert.ErrorContains(t, err, "invalid log format")
	})
}

func TestLogging(t *testing.T) {
	_, errOut, err := run(t, "--log-level", "debug", "add", "1", "1")
	require.NoError(t, err)
	assert.Contains(t, errOut, "operation completed")
	assert.Contains(t, errOut, "op=add")
}

func TestLogLevelFromEnv(t *testing.T) {
	t.Setenv("DYNVEC_LOG_LEVEL", "debug")

	_, errOut, err := run(t, "dot", "1", "1")
	require.NoError(t, err)
	assert.Contains(t, errOut, "op=dot")
}

func TestStats(t *testing.T) {
	out, _, err := run(t, "--stats", "add", "1", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "[2]\n")
	assert.Contains(t, out, "ops=1 errors=0")
}

func TestParse(t *testing.T) {
	v, err := parseVector(" 1, 2.5 ,-3 ")
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2.5, -3}, v.Values())

	m, err := parseMatrix("1,0;0,1")
	require.NoError(t, err)
	assert.Equal(t, 2, m.Size())

	_, err = parseMatrix("1,0;0,z")
	assert.ErrorContains(t, err, "row 1")

	assert.Equal(t, "2.5", formatScalar(2.5))
}

func TestStatsDisabled(t *testing.T) {
	out, _, err := run(t, "add", "1", "1")
	require.NoError(t, err)
	assert.Equal(t, "[2]\n", out)
}

func TestStatsCountsFailures(t *testing.T) {
	out, _, err := run(t, "--stats", "dot", "1,2", "1")
	assert.ErrorIs(t, err, dynvec.ErrMismatch)
	assert.Contains(t, out, "ops=1 errors=1")
}

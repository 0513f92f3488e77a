package utils

import (
	"context"
	"math"
	"testing"

	"go.uber.org/zap"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

func TestFormatFloat(t *testing.T) {
	assert.Check(t, is.Equal(FormatFloat(1.23456, 3), 1.235))
	assert.Check(t, is.Equal(FormatFloat(1.23456, 1), 1.2))
	assert.Check(t, is.Equal(FormatFloat(2.5, 0), 3.0))
	assert.Check(t, math.IsNaN(FormatFloat(math.NaN(), 2)))
	assert.Check(t, math.IsInf(FormatFloat(math.Inf(1), 2), 1))
}

func TestGetLoggerFromContext(t *testing.T) {
	assert.Check(t, GetLogger(context.Background()) == zap.L())

	logger := zap.NewNop()
	ctx := WithLogger(context.Background(), logger)
	assert.Check(t, GetLogger(ctx) == logger)
}

func TestSetLevel(t *testing.T) {
	defer func() { assert.NilError(t, SetLevel("info")) }()

	assert.NilError(t, SetLevel("debug"))
	assert.Check(t, zap.L().Core().Enabled(zap.DebugLevel))
	assert.Check(t, SetLevel("loud") != nil)
}

package physunit_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/physunit"
	"github.com/hupe1980/physunit/dimension"
	"github.com/hupe1980/physunit/scale"
)

func TestBasicMetricsCollector(t *testing.T) {
	mc := &physunit.BasicMetricsCollector{}
	sys := physunit.NewSystemBuilder().
		Base("length", "L").
		Base("time", "T").
		Metrics(mc).
		MustBuild()

	m := sys.MustBase("length")
	s := sys.MustBase("time")
	km := physunit.Must(m.Derive(scale.Kilo))
	minute := physunit.Must(s.DeriveRatio(60, 1))

	_, err := m.Derive(scale.Factor{})
	require.Error(t, err)

	_, err = physunit.New(km, 1.0).In(m)
	require.NoError(t, err)

	_, err = physunit.New(m, 1.0).In(m)
	require.NoError(t, err)

	_, err = physunit.New(s, 90).In(minute)
	require.Error(t, err)

	_, err = physunit.New(m, 1.0).Add(physunit.New(s, 1.0))
	require.Error(t, err)

	assert.Equal(t, physunit.BasicMetricsStats{
		DefinitionCount:  5,
		DefinitionErrors: 1,
		ConversionCount:  2,
		ConversionErrors: 1,
		MismatchCount:    1,
	}, mc.GetStats())
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := physunit.NewLogger(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	set, err := dimension.NewSet(dimension.Base{Name: "length", Symbol: "L"}, dimension.Base{Name: "time", Symbol: "T"})
	require.NoError(t, err)
	sys, err := physunit.NewSystem(set, physunit.WithLogger(logger))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"msg":"base dimensions declared"`)

	m := sys.MustBase("length")
	s := sys.MustBase("time")
	assert.Contains(t, buf.String(), `"msg":"unit defined"`)

	_, err = physunit.New(m, 1.0).Add(physunit.New(s, 1.0))
	require.Error(t, err)
	assert.Contains(t, buf.String(), `"msg":"dimension mismatch"`)
	assert.Contains(t, buf.String(), `"op":"add"`)

	minute := physunit.Must(s.DeriveRatio(60, 1))
	_, err = physunit.New(s, 90).In(minute)
	require.Error(t, err)
	assert.Contains(t, buf.String(), `"msg":"conversion failed"`)

	_, err = m.DeriveRatio(1, 0)
	require.Error(t, err)
	assert.Contains(t, buf.String(), `"msg":"unit definition failed"`)
}

func TestOptions_NilDisables(t *testing.T) {
	set, err := dimension.NewSet(dimension.Base{Name: "length"})
	require.NoError(t, err)

	sys, err := physunit.NewSystem(set, physunit.WithLogger(nil), physunit.WithMetricsCollector(nil), nil)
	require.NoError(t, err)

	m := sys.MustBase("length")
	_, err = physunit.New(m, 1.0).Number()
	assert.Error(t, err)
}

func TestNoopLogger(t *testing.T) {
	l := physunit.NoopLogger()
	assert.False(t, l.Enabled(t.Context(), slog.LevelError))
}

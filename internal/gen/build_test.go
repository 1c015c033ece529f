package gen_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/on-the-ground/cie1931/internal/gen"
	"github.com/on-the-ground/cie1931/internal/log"
	"github.com/on-the-ground/cie1931/lut"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testConfig() gen.Config {
	return gen.Config{
		Package: "leds",
		Workers: 3,
		Tables: []gen.TableSpec{
			{InputMax: 1000, OutputMax: 255},
			{InputMax: 255, OutputMax: 255},
			{InputMax: 1023, OutputMax: 4095, Type: "uint16"},
			{InputMax: 100, OutputMax: 100000, Type: "uint32"},
			{InputMax: 32, OutputMax: 1 << 40, Type: "uint64"},
		},
	}
}

func TestBuild_ResultsInConfigOrder(t *testing.T) {
	results, err := gen.Build(context.Background(), testConfig(), zap.NewNop())
	require.NoError(t, err)
	require.Len(t, results, 5)

	wantNames := []string{
		"Lightness1000x255",
		"Lightness255x255",
		"Lightness1023x4095",
		"Lightness100x100000",
		"Lightness32x1099511627776",
	}
	for i, res := range results {
		assert.Equal(t, wantNames[i], res.Spec.Name)

		data, err := lut.Compile(res.Params)
		require.NoError(t, err)
		assert.Equal(t, lut.Digest(data), res.Digest)
		assert.Contains(t, string(res.Source), "var "+wantNames[i]+" = lut.MustNew[")
	}
}

func TestBuild_Deterministic(t *testing.T) {
	first, err := gen.Build(context.Background(), testConfig(), zap.NewNop())
	require.NoError(t, err)

	cfg := testConfig()
	cfg.Workers = 1
	second, err := gen.Build(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)

	for i := range first {
		assert.True(t, bytes.Equal(first[i].Source, second[i].Source), first[i].Spec.Name)
	}
}

func TestBuild_LogsEachTable(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(log.LogInfo, &buf)

	_, err := gen.Build(context.Background(), testConfig(), logger)
	require.NoError(t, err)
	log.Sync(logger)

	out := buf.String()
	assert.Equal(t, 5, bytes.Count(buf.Bytes(), []byte("generated table")))
	assert.Contains(t, out, "1000x255/uint8")
	assert.Contains(t, out, "1.0 kB")
}

func TestBuild_InvalidConfig(t *testing.T) {
	cfg := testConfig()
	cfg.Tables = append(cfg.Tables, gen.TableSpec{InputMax: 0, OutputMax: 10})

	_, err := gen.Build(context.Background(), cfg, zap.NewNop())
	assert.ErrorIs(t, err, gen.ErrInvalidConfig)
	assert.ErrorIs(t, err, lut.ErrEmptyDomain)
}

func TestBuild_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := gen.Build(ctx, testConfig(), zap.NewNop())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWriteAndCheck(t *testing.T) {
	dir := t.TempDir()
	results, err := gen.Build(context.Background(), testConfig(), zap.NewNop())
	require.NoError(t, err)

	assert.ErrorIs(t, gen.Check(dir, results, zap.NewNop()), gen.ErrStale)

	require.NoError(t, gen.Write(dir, results, zap.NewNop()))
	for _, res := range results {
		got, err := os.ReadFile(filepath.Join(dir, res.Spec.Output))
		require.NoError(t, err)
		assert.Equal(t, res.Source, got)
	}
	assert.NoError(t, gen.Check(dir, results, zap.NewNop()))

	// rewriting identical content is a no-op
	require.NoError(t, gen.Write(dir, results, zap.NewNop()))

	stale := filepath.Join(dir, results[2].Spec.Output)
	require.NoError(t, os.WriteFile(stale, []byte("package leds\n"), 0o644))
	err = gen.Check(dir, results, zap.NewNop())
	assert.ErrorIs(t, err, gen.ErrStale)
	assert.Contains(t, err.Error(), stale)
}

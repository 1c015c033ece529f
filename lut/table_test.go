package lut_test

import (
	"math"
	"sync"
	"testing"

	"github.com/on-the-ground/cie1931/lut"
	"github.com/on-the-ground/cie1931/pure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func compile[T lut.Unsigned](t *testing.T, inputMax uint, outputMax uint64) lut.Table[T] {
	t.Helper()
	data, err := lut.Compile(lut.Params{InputMax: inputMax, OutputMax: outputMax, Kind: lut.KindOf[T]()})
	require.NoError(t, err)
	table, err := lut.New[T](inputMax, outputMax, data)
	require.NoError(t, err)
	return table
}

func TestTable_ReferenceScenario(t *testing.T) {
	table := compile[uint8](t, 1000, 255)

	assert.Equal(t, 1001, table.Size())
	assert.Equal(t, uint8(0), table.Get(0))
	assert.Equal(t, uint8(2), table.Get(80))
	assert.Equal(t, uint8(255), table.Get(1000))
}

func TestTable_ClampsOutOfRangeIndex(t *testing.T) {
	table := compile[uint16](t, 1023, 4095)
	last := table.Get(1023)

	for _, index := range []uint{1024, 1025, 4096, math.MaxUint32, ^uint(0)} {
		assert.Equalf(t, last, table.Get(index), "index %d", index)
	}
}

func TestTable_MatchesFormulaForEveryKind(t *testing.T) {
	check := func(t *testing.T, inputMax uint, outputMax uint64, get func(uint) uint64) {
		for i := uint(0); i <= inputMax; i++ {
			require.Equalf(t, pure.Lightness(i, inputMax, outputMax), get(i), "index %d", i)
		}
	}

	t.Run("uint8", func(t *testing.T) {
		table := compile[uint8](t, 255, 255)
		check(t, 255, 255, func(i uint) uint64 { return uint64(table.Get(i)) })
	})
	t.Run("uint16", func(t *testing.T) {
		table := compile[uint16](t, 1023, 4095)
		check(t, 1023, 4095, func(i uint) uint64 { return uint64(table.Get(i)) })
	})
	t.Run("uint32", func(t *testing.T) {
		table := compile[uint32](t, 100, 100000)
		check(t, 100, 100000, func(i uint) uint64 { return uint64(table.Get(i)) })
	})
	t.Run("uint64", func(t *testing.T) {
		table := compile[uint64](t, 32, 1<<40)
		check(t, 32, 1<<40, func(i uint) uint64 { return table.Get(i) })
	})
}

func TestTable_MonotonicAndBounded(t *testing.T) {
	table := compile[uint16](t, 4095, 65535)

	var prev uint16
	for i, v := range table.All() {
		require.GreaterOrEqualf(t, v, prev, "index %d", i)
		prev = v
	}
	assert.Equal(t, uint16(0), table.Get(0))
	assert.Equal(t, uint16(65535), table.Get(4095))
}

func TestTable_AllStopsEarly(t *testing.T) {
	table := compile[uint8](t, 10, 100)

	var seen []uint
	for i := range table.All() {
		if i == 3 {
			break
		}
		seen = append(seen, i)
	}
	assert.Equal(t, []uint{0, 1, 2}, seen)
}

func TestTable_Deterministic(t *testing.T) {
	p := lut.Params{InputMax: 1000, OutputMax: 255, Kind: lut.KindUint8}
	first, err := lut.Compile(p)
	require.NoError(t, err)
	second, err := lut.Compile(p)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, lut.Digest(first), lut.Digest(second))
}

func TestTable_Introspection(t *testing.T) {
	table := compile[uint8](t, 1000, 255)
	p := lut.Params{InputMax: 1000, OutputMax: 255, Kind: lut.KindUint8}

	assert.Equal(t, p, table.Params())
	assert.Equal(t, p.ID(), table.ID())
	assert.Equal(t, "cie1931/1000x255/uint8", table.String())

	data, err := lut.Compile(p)
	require.NoError(t, err)
	assert.Equal(t, lut.Digest(data), table.Digest())
}

func TestTable_IdempotentConcurrentReads(t *testing.T) {
	table := compile[uint32](t, 1000, 1000000)
	want := make([]uint32, table.Size())
	for i, v := range table.All() {
		want[i] = v
	}

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range want {
				assert.Equal(t, want[i], table.Get(uint(i)))
			}
		}()
	}
	wg.Wait()
}

func TestNew_RejectsMismatchedData(t *testing.T) {
	_, err := lut.New[uint16](10, 100, "short")
	assert.ErrorIs(t, err, lut.ErrDataLength)

	_, err = lut.New[uint8](0, 100, "")
	assert.ErrorIs(t, err, lut.ErrEmptyDomain)

	_, err = lut.New[uint8](10, 1000, string(make([]byte, 11)))
	assert.ErrorIs(t, err, lut.ErrOutputOverflow)
}

func TestMustNew_PanicsOnInvalidData(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected panic on mismatched data, but didn't panic")
		}
	}()
	lut.MustNew[uint8](10, 100, "")
}

func TestCompile_RejectsInvalidParams(t *testing.T) {
	_, err := lut.Compile(lut.Params{InputMax: 0, OutputMax: 255, Kind: lut.KindUint8})
	assert.ErrorIs(t, err, lut.ErrEmptyDomain)
}

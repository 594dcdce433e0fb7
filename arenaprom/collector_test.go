package arenaprom

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/pavanmanishd/toparena"
)

func TestCollector(t *testing.T) {
	a := toparena.New[byte](toparena.WithChunkSize(8))

	_, err := a.Copy([]byte{1, 2, 3})
	require.NoError(t, err)

	top, err := a.Top()
	require.NoError(t, err)
	top.Extend(make([]byte, 10)...) // relocates past the 5 free bytes
	top.Discard()

	reg := prometheus.NewRegistry()
	require.NoError(t, reg.Register(NewCollector(a, prometheus.Labels{"arena": "test"})))

	expected := `
# HELP toparena_chunks The number of chunks held by the arena.
# TYPE toparena_chunks gauge
toparena_chunks{arena="test"} 2
# HELP toparena_discards_total The total number of discarded top allocations.
# TYPE toparena_discards_total counter
toparena_discards_total{arena="test"} 1
# HELP toparena_frozen_elements The number of elements frozen in the arena.
# TYPE toparena_frozen_elements gauge
toparena_frozen_elements{arena="test"} 3
# HELP toparena_freezes_total The total number of frozen top allocations.
# TYPE toparena_freezes_total counter
toparena_freezes_total{arena="test"} 1
# HELP toparena_relocations_total The total number of top allocation relocations.
# TYPE toparena_relocations_total counter
toparena_relocations_total{arena="test"} 1
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected),
		"toparena_chunks",
		"toparena_discards_total",
		"toparena_frozen_elements",
		"toparena_freezes_total",
		"toparena_relocations_total",
	))

	// 8 + max(8, 2*10) elements of one byte each.
	require.Equal(t, 28.0, gaugeValue(t, reg, "toparena_reserved_bytes"))
	require.Equal(t, 5.0, gaugeValue(t, reg, "toparena_wasted_elements"))
}

func TestCollectorSafeArena(t *testing.T) {
	s := toparena.NewSafeArena[uint32]()
	_, err := s.Copy([]uint32{1, 2})
	require.NoError(t, err)

	c := NewCollector(s, nil)
	require.Equal(t, 8, testutil.CollectAndCount(c))
}

func gaugeValue(t *testing.T, reg *prometheus.Registry, name string) float64 {
	t.Helper()
	mfs, err := reg.Gather()
	require.NoError(t, err)
	for _, mf := range mfs {
		if mf.GetName() == name {
			require.Len(t, mf.GetMetric(), 1)
			return mf.GetMetric()[0].GetGauge().GetValue()
		}
	}
	t.Fatalf("metric %s not found", name)
	return 0
}

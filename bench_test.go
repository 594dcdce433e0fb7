package toparena

import (
	"fmt"
	"slices"
	"testing"
)

// BenchmarkBuildValues builds many variable-length values, the case the
// top allocation is meant for, against the usual scratch-buffer-and-copy.
func BenchmarkBuildValues(b *testing.B) {
	parts := [][]byte{[]byte("tenant"), []byte("/"), []byte("service"), []byte("/"), []byte("0123456789")}

	b.Run("Arena", func(b *testing.B) {
		a := New[byte]()
		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			t, _ := a.Top()
			for _, p := range parts {
				t.Extend(p...)
			}
			_ = t.Freeze()
		}
	})

	b.Run("Builtin", func(b *testing.B) {
		b.ReportAllocs()
		b.ResetTimer()
		var scratch []byte
		for i := 0; i < b.N; i++ {
			scratch = scratch[:0]
			for _, p := range parts {
				scratch = append(scratch, p...)
			}
			_ = slices.Clone(scratch)
		}
	})
}

func BenchmarkTopPush(b *testing.B) {
	for _, chunkSize := range []int{64, 4096, DefaultChunkSize} {
		b.Run(fmt.Sprintf("chunk-%d", chunkSize), func(b *testing.B) {
			a := New[byte](WithChunkSize(chunkSize))
			t, _ := a.Top()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				t.Push(byte(i))
				if i%1000 == 999 {
					t.Freeze()
					t, _ = a.Top()
				}
			}
			t.Discard()
		})
	}
}

func BenchmarkCopy(b *testing.B) {
	sizes := []int{8, 64, 256, 1024}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("size-%d", size), func(b *testing.B) {
			a := New[byte](WithChunkSize(1 << 20))
			src := make([]byte, size)
			b.SetBytes(int64(size))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_, _ = a.Copy(src)
			}
		})
	}
}

func BenchmarkSafeArenaBuild(b *testing.B) {
	s := NewSafeArena[byte]()
	payload := []byte("payload")
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_, _ = s.Build(func(t *Top[byte]) error {
				t.Extend(payload...)
				return nil
			})
		}
	})
}

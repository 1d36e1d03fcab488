package soatest

import (
	"runtime"
	"testing"
)

// BenchmarkRealisticUsage compares the column layout against a plain slice
// of structs for access patterns where it should excel.
func BenchmarkRealisticUsage(b *testing.B) {
	const n = 4096

	soa := NewParticleVecWithCapacity(n)
	aos := make([]Particle, 0, n)
	for i := 0; i < n; i++ {
		p := Particle{ID: i, Name: "p", Pos: [3]float32{float32(i), 1, 2}}
		soa.Push(p)
		aos = append(aos, p)
	}

	// Test 1: Scan a single field
	b.Run("SingleField/SoA", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			var sum int
			for _, id := range soa.AsSlice().ID {
				sum += id
			}
			runtime.KeepAlive(sum)
		}
	})

	b.Run("SingleField/Builtin", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			var sum int
			for j := range aos {
				sum += aos[j].ID
			}
			runtime.KeepAlive(sum)
		}
	})

	// Test 2: Update positions in place
	b.Run("UpdatePositions/SoA", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			pos := soa.AsSliceMut().Pos
			for j := range pos {
				pos[j][0] += 0.5
			}
		}
	})

	b.Run("UpdatePositions/Builtin", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			for j := range aos {
				aos[j].Pos[0] += 0.5
			}
		}
	})

	// Test 3: Fill and clear with buffer reuse
	b.Run("PushClear/SoA", func(b *testing.B) {
		v := NewParticleVecWithCapacity(n)
		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			for j := 0; j < n; j++ {
				v.Push(Particle{ID: j})
			}
			v.Clear()
		}
	})

	b.Run("PushClear/Builtin", func(b *testing.B) {
		s := make([]Particle, 0, n)
		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			for j := 0; j < n; j++ {
				s = append(s, Particle{ID: j})
			}
			clear(s)
			s = s[:0]
		}
	})

	// Test 4: Iterate through references
	b.Run("All/SoA", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			var sum float32
			for _, r := range soa.All() {
				sum += r.Pos[1]
			}
			runtime.KeepAlive(sum)
		}
	})
}

func BenchmarkRetain(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		v := NewParticleVecWithCapacity(1024)
		for j := 0; j < 1024; j++ {
			v.Push(Particle{ID: j})
		}
		b.StartTimer()
		v.Retain(func(r ParticleRef) bool { return *r.ID%2 == 0 })
	}
}

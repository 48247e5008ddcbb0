package world

import "testing"

func BenchmarkNewWorld(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = New()
	}
}

func BenchmarkGetBlock(b *testing.B) {
	w := New()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = w.GetBlock(i%256-128, i%3, (i*31)%256-128)
	}
}

func BenchmarkHillsHeightAt(b *testing.B) {
	g := NewHillsGenerator(1337, 1, 6)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.HeightAt(i%1024, (i*31)%1024)
	}
}

package simulation

import "testing"

func TestRNG_Deterministic(t *testing.T) {
	a := NewRNG(7)
	b := NewRNG(7)

	for i := 0; i < 1000; i++ {
		if x, y := a.UniformFloat(0, 1), b.UniformFloat(0, 1); x != y {
			t.Fatalf("Draw %d diverged for the same seed: %v vs %v", i, x, y)
		}
	}
}

func TestRNG_UniformFloatRange(t *testing.T) {
	g := NewRNG(1)
	for i := 0; i < 10000; i++ {
		v := g.UniformFloat(0.5, 0.9)
		if v < 0.5 || v >= 0.9 {
			t.Fatalf("UniformFloat out of [0.5, 0.9): %v", v)
		}
	}
}

func TestRNG_UniformIntInclusive(t *testing.T) {
	g := NewRNG(1)
	seen := make(map[int]bool)
	for i := 0; i < 10000; i++ {
		v := g.UniformInt(3, 5)
		if v < 3 || v > 5 {
			t.Fatalf("UniformInt out of [3, 5]: %d", v)
		}
		seen[v] = true
	}
	for v := 3; v <= 5; v++ {
		if !seen[v] {
			t.Errorf("Expected value %d to appear in 10000 draws", v)
		}
	}
}

func TestRNG_UniformIntDegenerateRange(t *testing.T) {
	g := NewRNG(1)
	for i := 0; i < 100; i++ {
		if v := g.UniformInt(8, 8); v != 8 {
			t.Fatalf("Expected 8 from a degenerate range, got %d", v)
		}
	}
}

func TestRNG_CategoricalNormalizesInternally(t *testing.T) {
	// Scaling every weight by the same constant must not change the draw
	// sequence: selection depends only on relative weights.
	a := NewRNG(11)
	b := NewRNG(11)
	weights := []float64{50, 30, 20}
	scaled := []float64{150, 90, 60}

	for i := 0; i < 5000; i++ {
		if x, y := a.Categorical(weights), b.Categorical(scaled); x != y {
			t.Fatalf("Draw %d diverged under scaling: %d vs %d", i, x, y)
		}
	}
}

func TestRNG_CategoricalSkipsZeroWeights(t *testing.T) {
	g := NewRNG(3)
	weights := []float64{0, 1, 0}
	for i := 0; i < 5000; i++ {
		if idx := g.Categorical(weights); idx != 1 {
			t.Fatalf("Expected only index 1 under weights %v, got %d", weights, idx)
		}
	}
}

func TestRNG_CategoricalDistribution(t *testing.T) {
	g := NewRNG(5)
	weights := []float64{70, 30}
	counts := make([]int, 2)
	n := 100000
	for i := 0; i < n; i++ {
		counts[g.Categorical(weights)]++
	}

	frac := float64(counts[0]) / float64(n)
	if frac < 0.68 || frac > 0.72 {
		t.Errorf("Expected ~70%% of draws on index 0, got %.1f%%", frac*100)
	}
}

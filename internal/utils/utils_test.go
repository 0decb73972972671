package utils

import "testing"

func TestPRNGIsDeterministicForSeed(t *testing.T) {
	a := NewPRNGService(42)
	b := NewPRNGService(42)
	for i := 0; i < 100; i++ {
		if x, y := a.Float64(), b.Float64(); x != y {
			t.Fatalf("draw %d differs: %v vs %v", i, x, y)
		}
	}
	if a.Seed() != 42 {
		t.Errorf("Seed() = %d, want 42", a.Seed())
	}
	if NewPRNGService(0).Seed() == 0 {
		t.Error("zero seed was not replaced")
	}
}

func TestChooseWeighted(t *testing.T) {
	rng := NewPRNGService(7)

	if got := rng.ChooseWeighted(nil); got != -1 {
		t.Errorf("ChooseWeighted(nil) = %d, want -1", got)
	}
	if got := rng.ChooseWeighted([]int{0, 0}); got != 0 {
		t.Errorf("ChooseWeighted(zero weights) = %d, want 0", got)
	}
	for i := 0; i < 50; i++ {
		if got := rng.ChooseWeighted([]int{0, 5, 0}); got != 1 {
			t.Fatalf("ChooseWeighted picked %d, only index 1 has weight", got)
		}
	}

	counts := make([]int, 2)
	for i := 0; i < 4000; i++ {
		counts[rng.ChooseWeighted([]int{3, 1})]++
	}
	if counts[0] < 2700 || counts[0] > 3300 {
		t.Errorf("weight 3:1 produced %v", counts)
	}
}

func TestMathHelpers(t *testing.T) {
	if got := Lerp(0, 1, 0.35); got != 0.35 {
		t.Errorf("Lerp = %v", got)
	}
	if got := Clamp(-1, 0, 1); got != 0 {
		t.Errorf("Clamp low = %v", got)
	}
	if got := Clamp(2, 0, 1); got != 1 {
		t.Errorf("Clamp high = %v", got)
	}
	tests := []struct{ v, step, want float64 }{
		{10, 3, 7},
		{-10, 3, -7},
		{2, 3, 0},
		{-2, 3, 0},
	}
	for _, tt := range tests {
		if got := Approach(tt.v, tt.step); got != tt.want {
			t.Errorf("Approach(%v, %v) = %v, want %v", tt.v, tt.step, got, tt.want)
		}
	}
}

func TestTweenReachesTarget(t *testing.T) {
	tw := NewTween(1, 0.35)
	if tw.Value() != 1 || !tw.Done() {
		t.Fatalf("fresh tween = %v, done %v", tw.Value(), tw.Done())
	}

	tw.Set(0.9)
	if tw.Value() != 1 {
		t.Errorf("value right after Set = %v, want 1", tw.Value())
	}
	tw.Update(0.175)
	if v := tw.Value(); v < 0.949 || v > 0.951 {
		t.Errorf("value at half time = %v, want ~0.95", v)
	}
	tw.Update(0.2)
	if tw.Value() != 0.9 || !tw.Done() {
		t.Errorf("value after duration = %v, want 0.9", tw.Value())
	}

	// Новая цель посреди перехода стартует с текущего значения.
	tw.Set(0.5)
	tw.Update(0.175)
	tw.Set(0.1)
	if v := tw.Value(); v < 0.69 || v > 0.71 {
		t.Errorf("retargeted start = %v, want ~0.7", v)
	}
	if tw.Target() != 0.1 {
		t.Errorf("Target() = %v", tw.Target())
	}
}

package component

import "testing"

func TestHealthDamageDoesNotClamp(t *testing.T) {
	tests := []struct {
		name    string
		max     int
		hits    []int
		wantCur int
	}{
		{"no damage", 10, nil, 10},
		{"three single hits", 10, []int{1, 1, 1}, 7},
		{"mixed amounts", 10, []int{2, 3, 4}, 1},
		{"exactly zero", 3, []int{1, 2}, 0},
		{"below zero", 2, []int{1, 1, 5}, -5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHealth(tt.max)
			sum := 0
			for _, a := range tt.hits {
				h.Damage(a)
				sum += a
			}
			if h.Current != tt.wantCur {
				t.Errorf("Current = %d, want %d", h.Current, tt.wantCur)
			}
			if h.Current != h.Max-sum {
				t.Errorf("Current = %d, want Max-sum = %d", h.Current, h.Max-sum)
			}
		})
	}
}

func TestHealthFraction(t *testing.T) {
	h := NewHealth(10)
	h.Damage(3)
	if got := h.Fraction(); got != 0.7 {
		t.Errorf("Fraction() = %v, want 0.7", got)
	}
	if h.IsDepleted() {
		t.Error("IsDepleted() = true at 7/10")
	}
	h.Damage(7)
	if !h.IsDepleted() {
		t.Error("IsDepleted() = false at 0/10")
	}

	empty := &Health{}
	if got := empty.Fraction(); got != 0 {
		t.Errorf("Fraction() with Max=0 = %v, want 0", got)
	}
}

func TestFactionString(t *testing.T) {
	tests := []struct {
		f    Faction
		want string
	}{
		{FactionPlayer, "player"},
		{FactionEnemy, "enemy"},
		{FactionPlayerProjectile, "playerProjectile"},
		{FactionEnemyProjectile, "enemyProjectile"},
		{Faction(42), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.f.String(); got != tt.want {
			t.Errorf("Faction(%d).String() = %q, want %q", tt.f, got, tt.want)
		}
	}
	if !FactionEnemyProjectile.IsProjectile() || FactionEnemy.IsProjectile() {
		t.Error("IsProjectile() mismatch")
	}
}

func TestBurstAlpha(t *testing.T) {
	b := &Burst{Duration: 2, AlphaStart: 1, AlphaEnd: 0.2}
	if got := b.Alpha(); got != 1 {
		t.Errorf("Alpha() at start = %v, want 1", got)
	}
	b.Timer = 1
	if got := b.Alpha(); got < 0.599 || got > 0.601 {
		t.Errorf("Alpha() at half = %v, want 0.6", got)
	}
	b.Timer = 5
	if got := b.Alpha(); got != 0.2 {
		t.Errorf("Alpha() past end = %v, want 0.2", got)
	}
}

package clock

import (
	"reflect"
	"testing"
	"time"
)

func TestAfterFiresOnce(t *testing.T) {
	s := NewScheduler()
	calls := 0
	s.After(3500*time.Millisecond, func() { calls++ })

	s.Advance(3 * time.Second)
	if calls != 0 {
		t.Fatalf("fired early: calls = %d", calls)
	}
	s.Advance(500 * time.Millisecond)
	if calls != 1 {
		t.Fatalf("calls = %d after due time, want 1", calls)
	}
	s.Advance(time.Minute)
	if calls != 1 {
		t.Errorf("one-shot fired again: calls = %d", calls)
	}
	if s.Pending() != 0 {
		t.Errorf("Pending() = %d, want 0", s.Pending())
	}
}

func TestEveryCatchesUpOnLongFrames(t *testing.T) {
	s := NewScheduler()
	calls := 0
	s.Every(20*time.Second, func() { calls++ })

	if fired := s.Advance(19 * time.Second); fired != 0 {
		t.Fatalf("fired = %d before first period", fired)
	}
	s.Advance(time.Second)
	if calls != 1 {
		t.Fatalf("calls = %d at 20s, want 1", calls)
	}
	// Один длинный шаг покрывает три периода.
	if fired := s.Advance(60 * time.Second); fired != 3 {
		t.Errorf("fired = %d over 60s, want 3", fired)
	}
	if calls != 4 {
		t.Errorf("calls = %d, want 4", calls)
	}
	if s.Now() != 80*time.Second {
		t.Errorf("Now() = %v, want 80s", s.Now())
	}
}

func TestOrderingByDueThenRegistration(t *testing.T) {
	s := NewScheduler()
	var order []string
	s.After(2*time.Second, func() { order = append(order, "b") })
	s.After(time.Second, func() { order = append(order, "a") })
	s.After(2*time.Second, func() { order = append(order, "c") })
	s.Every(time.Second, func() { order = append(order, "tick") })

	s.Advance(2 * time.Second)

	want := []string{"a", "tick", "b", "c", "tick"}
	if !reflect.DeepEqual(order, want) {
		t.Errorf("order = %v, want %v", order, want)
	}
}

func TestCallbackSeesItsOwnDueTime(t *testing.T) {
	s := NewScheduler()
	var seen time.Duration
	s.After(time.Second, func() {
		seen = s.Now()
		// Вызов, запланированный из колбэка, отсчитывается от его срока.
		s.After(time.Second, func() { seen = s.Now() })
	})

	s.Advance(1500 * time.Millisecond)
	if seen != time.Second {
		t.Fatalf("Now() inside callback = %v, want 1s", seen)
	}
	s.Advance(500 * time.Millisecond)
	if seen != 2*time.Second {
		t.Errorf("nested callback Now() = %v, want 2s", seen)
	}
}

func TestEveryRejectsZeroPeriod(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Every(0) did not panic")
		}
	}()
	NewScheduler().Every(0, func() {})
}

package badges

import (
	"testing"
	"time"

	"github.com/julianstephens/studylit/internal/models"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestEvaluateThresholdBoundary(t *testing.T) {
	engine := New(withFixedClock(time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)))

	tests := []struct {
		name       string
		total      float64
		wantEarned []string
	}{
		{name: "zero hours", total: 0, wantEarned: nil},
		{name: "just below first threshold", total: 14.99, wantEarned: nil},
		{name: "exactly first threshold", total: 15, wantEarned: []string{"badge1"}},
		{name: "just below second threshold", total: 29.99, wantEarned: []string{"badge1"}},
		{name: "exactly second threshold", total: 30, wantEarned: []string{"badge1", "badge2"}},
		{name: "every threshold", total: 200, wantEarned: []string{"badge1", "badge2", "badge3", "badge4", "badge5"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, newly := engine.Evaluate(tt.total, models.DefaultBadges())
			if len(newly) != len(tt.wantEarned) {
				t.Fatalf("expected %d newly earned, got %d (%+v)", len(tt.wantEarned), len(newly), newly)
			}
			for i, id := range tt.wantEarned {
				if newly[i].ID != id {
					t.Errorf("newly earned[%d] = %s, want %s", i, newly[i].ID, id)
				}
			}
		})
	}
}

func withFixedClock(ts time.Time) Option {
	return WithClock(fixedClock(ts))
}

func TestEvaluateStampsAndDoesNotMutateInput(t *testing.T) {
	stamp := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	engine := New(withFixedClock(stamp))

	current := models.DefaultBadges()
	updated, newly := engine.Evaluate(50, current)

	for _, b := range current {
		if b.Earned() {
			t.Fatalf("input badge %s was mutated", b.ID)
		}
	}
	if len(newly) != 3 {
		t.Fatalf("expected 3 newly earned badges, got %d", len(newly))
	}

	want := stamp.Format(time.RFC3339)
	for _, b := range updated[:3] {
		if b.DateEarned != want {
			t.Errorf("badge %s: expected DateEarned %s, got %q", b.ID, want, b.DateEarned)
		}
	}
	for _, b := range updated[3:] {
		if b.Earned() {
			t.Errorf("badge %s should not be earned at 50 hours", b.ID)
		}
	}
}

func TestEvaluateIsMonotonic(t *testing.T) {
	first := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	second := first.Add(48 * time.Hour)
	clock := first
	engine := New(WithClock(func() time.Time { return clock }))

	badges, _ := engine.Evaluate(35, models.DefaultBadges())

	clock = second
	for _, total := range []float64{0, 10, 35, 14.99} {
		next, newly := engine.Evaluate(total, badges)
		if len(newly) != 0 {
			t.Errorf("total %v: expected no new badges, got %d", total, len(newly))
		}
		for i := range next {
			if next[i].DateEarned != badges[i].DateEarned {
				t.Errorf("total %v: badge %s changed from %q to %q", total, next[i].ID, badges[i].DateEarned, next[i].DateEarned)
			}
		}
		badges = next
	}

	if !badges[0].Earned() || !badges[1].Earned() {
		t.Error("badges earned earlier must stay earned after the total drops")
	}
}

func TestEvaluateIdempotent(t *testing.T) {
	engine := New()

	once, newly := engine.Evaluate(30, models.DefaultBadges())
	if len(newly) != 2 {
		t.Fatalf("expected 2 badges on first pass, got %d", len(newly))
	}

	_, again := engine.Evaluate(30, once)
	if len(again) != 0 {
		t.Errorf("expected no badges on second pass, got %d", len(again))
	}
}

func TestNext(t *testing.T) {
	engine := New()

	next, remaining, ok := engine.Next(12, models.DefaultBadges())
	if !ok || next.ID != "badge1" || remaining != 3 {
		t.Errorf("expected badge1 with 3 hours remaining, got %s %v %v", next.ID, remaining, ok)
	}

	earned, _ := engine.Evaluate(200, models.DefaultBadges())
	if _, _, ok := engine.Next(200, earned); ok {
		t.Error("expected no next badge once everything is earned")
	}

	if EarnedCount(earned) != 5 {
		t.Errorf("expected 5 earned, got %d", EarnedCount(earned))
	}
}

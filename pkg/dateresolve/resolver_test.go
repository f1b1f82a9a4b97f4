package dateresolve_test

import (
	"testing"
	"time"

	"academic-calendar-core/pkg/dateresolve"
)

func TestNewResolver(t *testing.T) {
	if _, err := dateresolve.NewResolver("UTC"); err != nil {
		t.Fatalf("unexpected error creating UTC resolver: %v", err)
	}
	if _, err := dateresolve.NewResolver("Not/AZone"); err == nil {
		t.Fatal("expected error for invalid timezone")
	}
}

func TestResolveChain(t *testing.T) {
	resolver, _ := dateresolve.NewResolver("UTC")
	// Monday, October 6, 2025, 09:00 UTC.
	now := time.Date(2025, 10, 6, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		text         string
		want         time.Time
		wantStrategy dateresolve.Strategy
		wantMiss     bool
	}{
		{
			name:         "Explicit date",
			text:         "submit before 2025-10-05",
			want:         time.Date(2025, 10, 5, 0, 0, 0, 0, time.UTC),
			wantStrategy: dateresolve.StrategyExplicit,
		},
		{
			name:         "Explicit date with time",
			text:         "MATH201 midterm on 2025-11-15 14:00",
			want:         time.Date(2025, 11, 15, 14, 0, 0, 0, time.UTC),
			wantStrategy: dateresolve.StrategyExplicit,
		},
		{
			name:         "Explicit with zone offset",
			text:         "call at 2025-11-15T09:30+02:00",
			want:         time.Date(2025, 11, 15, 9, 30, 0, 0, time.FixedZone("+02:00", 2*3600)),
			wantStrategy: dateresolve.StrategyExplicit,
		},
		{
			name:         "Explicit wins over natural regardless of position",
			text:         "tomorrow or maybe 2025-12-01 after all",
			want:         time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC),
			wantStrategy: dateresolve.StrategyExplicit,
		},
		{
			name:         "Traditional day month year with time",
			text:         "assignment due by 5 Oct 2025 at 11:59pm",
			want:         time.Date(2025, 10, 5, 23, 59, 0, 0, time.UTC),
			wantStrategy: dateresolve.StrategyTraditional,
		},
		{
			name:         "Traditional month day year",
			text:         "Oct 15 2025 exam",
			want:         time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
			wantStrategy: dateresolve.StrategyTraditional,
		},
		{
			name:         "Traditional slash date reads day first",
			text:         "final exam 12/12/25",
			want:         time.Date(2025, 12, 12, 0, 0, 0, 0, time.UTC),
			wantStrategy: dateresolve.StrategyTraditional,
		},
		{
			name:         "Traditional without year takes next occurrence",
			text:         "quiz on 3 March",
			want:         time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC),
			wantStrategy: dateresolve.StrategyTraditional,
		},
		{
			name:         "Natural tomorrow",
			text:         "quiz tomorrow",
			want:         time.Date(2025, 10, 7, 0, 0, 0, 0, time.UTC),
			wantStrategy: dateresolve.StrategyNatural,
		},
		{
			name:         "Natural tomorrow with time",
			text:         "quiz tomorrow at 5pm",
			want:         time.Date(2025, 10, 7, 17, 0, 0, 0, time.UTC),
			wantStrategy: dateresolve.StrategyNatural,
		},
		{
			name:         "Natural in three days",
			text:         "quiz in 3 days",
			want:         time.Date(2025, 10, 9, 0, 0, 0, 0, time.UTC),
			wantStrategy: dateresolve.StrategyNatural,
		},
		{
			name:         "Natural next monday lands next week",
			text:         "project meeting next monday 3pm",
			want:         time.Date(2025, 10, 13, 15, 0, 0, 0, time.UTC),
			wantStrategy: dateresolve.StrategyNatural,
		},
		{
			name:         "Bare weekday takes the upcoming one",
			text:         "meeting on Friday",
			want:         time.Date(2025, 10, 10, 0, 0, 0, 0, time.UTC),
			wantStrategy: dateresolve.StrategyNatural,
		},
		{
			name:         "Abbreviated weekday",
			text:         "report due fri",
			want:         time.Date(2025, 10, 10, 0, 0, 0, 0, time.UTC),
			wantStrategy: dateresolve.StrategyNatural,
		},
		{
			name:         "Abbreviated next weekday",
			text:         "demo next thurs 2pm",
			want:         time.Date(2025, 10, 9, 14, 0, 0, 0, time.UTC),
			wantStrategy: dateresolve.StrategyNatural,
		},
		{
			name:         "Yearless slash date reads day first",
			text:         "rematch on 12/12",
			want:         time.Date(2025, 12, 12, 0, 0, 0, 0, time.UTC),
			wantStrategy: dateresolve.StrategyTraditional,
		},
		{
			name:         "Yearless slash date already passed rolls a year",
			text:         "kickoff 1/3",
			want:         time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
			wantStrategy: dateresolve.StrategyTraditional,
		},
		{
			name:         "Bare weekday never resolves to the past",
			text:         "see you monday",
			want:         time.Date(2025, 10, 13, 0, 0, 0, 0, time.UTC),
			wantStrategy: dateresolve.StrategyNatural,
		},
		{
			name:         "Noon maps to twelve",
			text:         "lecture friday 12noon",
			want:         time.Date(2025, 10, 10, 12, 0, 0, 0, time.UTC),
			wantStrategy: dateresolve.StrategyNatural,
		},
		{
			name:         "Bare time later today",
			text:         "call me at 10:30",
			want:         time.Date(2025, 10, 6, 10, 30, 0, 0, time.UTC),
			wantStrategy: dateresolve.StrategyNatural,
		},
		{
			name:         "Bare time already passed rolls to tomorrow",
			text:         "standup at 8am",
			want:         time.Date(2025, 10, 7, 8, 0, 0, 0, time.UTC),
			wantStrategy: dateresolve.StrategyNatural,
		},
		{
			name:     "No date at all",
			text:     "course module review",
			wantMiss: true,
		},
		{
			name:     "Malformed explicit date falls through harmlessly",
			text:     "broken 2025-13-40 stamp",
			wantMiss: true,
		},
		{
			name:     "Empty input",
			text:     "",
			wantMiss: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, ok := resolver.Resolve(tt.text, now)
			if tt.wantMiss {
				if ok {
					t.Fatalf("Resolve(%q) = %v, want miss", tt.text, res.Time)
				}
				if res.Strategy != dateresolve.StrategyNone {
					t.Errorf("Resolve(%q) strategy = %q, want none", tt.text, res.Strategy)
				}
				return
			}
			if !ok {
				t.Fatalf("Resolve(%q) unexpectedly missed", tt.text)
			}
			if res.Strategy != tt.wantStrategy {
				t.Errorf("Resolve(%q) strategy = %q, want %q", tt.text, res.Strategy, tt.wantStrategy)
			}
			if !res.Time.Equal(tt.want) {
				t.Errorf("Resolve(%q) = %v, want %v", tt.text, res.Time, tt.want)
			}
		})
	}
}

func TestResolveFutureBiasFromDifferentWeekdays(t *testing.T) {
	resolver, _ := dateresolve.NewResolver("UTC")

	// Thursday, then Friday itself: a bare "friday" must never be in the past.
	thursday := time.Date(2025, 10, 9, 9, 0, 0, 0, time.UTC)
	friday := time.Date(2025, 10, 10, 9, 0, 0, 0, time.UTC)

	res, ok := resolver.Resolve("report due friday", thursday)
	if !ok || !res.Time.Equal(time.Date(2025, 10, 10, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("from Thursday: got %v, want Friday Oct 10", res.Time)
	}

	res, ok = resolver.Resolve("report due friday", friday)
	if !ok || res.Time.Before(friday.Add(-24*time.Hour)) {
		t.Errorf("from Friday: got %v, want a non-past Friday", res.Time)
	}
	if res.Time.Weekday() != time.Friday {
		t.Errorf("from Friday: got weekday %v, want Friday", res.Time.Weekday())
	}
}

package timerange

import (
	"testing"
	"time"
)

func TestCalculate_LabelByHour(t *testing.T) {
	for hour := 0; hour < 24; hour++ {
		want := LabelMorning
		switch {
		case hour >= 18:
			want = LabelEvening
		case hour >= 12:
			want = LabelDay
		}

		ts := time.Date(2025, 6, 1, hour, 30, 0, 0, time.UTC)
		got := Calculate(ts)
		if got.Label != want {
			t.Errorf("Calculate(hour=%d).Label = %q, want %q", hour, got.Label, want)
		}
		if !got.Contains(ts) {
			t.Errorf("Calculate(hour=%d) does not contain its own reference time", hour)
		}
	}
}

func TestCalculate_PartitionNoGapNoOverlap(t *testing.T) {
	day := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	w1 := Calculate(day.Add(3 * time.Hour))
	w2 := Calculate(day.Add(14 * time.Hour))
	w3 := Calculate(day.Add(20 * time.Hour))

	if !w1.End.Add(time.Microsecond).Equal(w2.Start) {
		t.Errorf("gap or overlap between window 1 and 2: %v -> %v", w1.End, w2.Start)
	}
	if !w2.End.Add(time.Microsecond).Equal(w3.Start) {
		t.Errorf("gap or overlap between window 2 and 3: %v -> %v", w2.End, w3.Start)
	}
	if !w1.Start.Equal(day) {
		t.Errorf("window 1 starts at %v, want midnight", w1.Start)
	}
	if !w3.End.Add(time.Microsecond).Equal(day.AddDate(0, 0, 1)) {
		t.Errorf("window 3 ends at %v, want last microsecond of the day", w3.End)
	}
}

func TestCalculate_Boundaries(t *testing.T) {
	tests := []struct {
		name string
		ts   time.Time
		want string
	}{
		{
			name: "noon belongs to the second window",
			ts:   time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
			want: LabelDay,
		},
		{
			name: "last microsecond of the morning",
			ts:   time.Date(2025, 6, 1, 11, 59, 59, 999999000, time.UTC),
			want: LabelMorning,
		},
		{
			name: "last microsecond of the day window",
			ts:   time.Date(2025, 6, 1, 17, 59, 59, 999999000, time.UTC),
			want: LabelDay,
		},
		{
			name: "evening start",
			ts:   time.Date(2025, 6, 1, 18, 0, 0, 0, time.UTC),
			want: LabelEvening,
		},
		{
			name: "last microsecond before midnight",
			ts:   time.Date(2025, 6, 1, 23, 59, 59, 999999000, time.UTC),
			want: LabelEvening,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Calculate(tt.ts)
			if got.Label != tt.want {
				t.Errorf("Calculate(%v).Label = %q, want %q", tt.ts, got.Label, tt.want)
			}
			if !got.Contains(tt.ts) {
				t.Errorf("Calculate(%v) does not contain the reference time", tt.ts)
			}
		})
	}
}

func TestRange_ContainsBounds(t *testing.T) {
	w := Calculate(time.Date(2025, 6, 1, 14, 0, 0, 0, time.UTC))

	if !w.Contains(w.Start) {
		t.Error("start bound must be inclusive")
	}
	if !w.Contains(w.End) {
		t.Error("end bound must be inclusive")
	}
	if w.Contains(w.Start.Add(-time.Microsecond)) {
		t.Error("moment before start must be outside the window")
	}
	if w.Contains(w.End.Add(time.Microsecond)) {
		t.Error("moment after end must be outside the window")
	}
}

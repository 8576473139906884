package datespan

import (
	"testing"
	"time"
)

func TestMonthSpan_BracketsInput(t *testing.T) {
	in := date(2023, time.August, 15, 10, 30, 0, 0)
	span := MonthSpan(in)

	if !span.Contains(in) {
		t.Errorf("span %v..%v does not contain %v", span.Start, span.End, in)
	}
	if !span.Contains(span.Start) || !span.Contains(span.End) {
		t.Error("span boundaries must be inclusive")
	}
	if span.Contains(span.Start.Add(-time.Nanosecond)) {
		t.Error("span contains instant before start")
	}
	if span.Contains(span.End.Add(time.Nanosecond)) {
		t.Error("span contains instant after end")
	}
}

func TestMonthSpan_Duration(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want time.Duration
	}{
		{"31-day month", date(2023, time.August, 15, 0, 0, 0, 0), 31*24*time.Hour - time.Nanosecond},
		{"30-day month", date(2023, time.April, 1, 0, 0, 0, 0), 30*24*time.Hour - time.Nanosecond},
		{"leap february", date(2024, time.February, 10, 0, 0, 0, 0), 29*24*time.Hour - time.Nanosecond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MonthSpan(tt.in).Duration(); got != tt.want {
				t.Errorf("MonthSpan(%v).Duration() = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestMonthSpanIn_DSTChangesAbsoluteLength(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatal(err)
	}

	// March 2023 loses an hour to spring-forward, November 2023 gains one.
	march := MonthSpanIn(date(2023, time.March, 15, 12, 0, 0, 0), ny)
	if got, want := march.Duration(), 31*24*time.Hour-time.Hour-time.Nanosecond; got != want {
		t.Errorf("March span duration = %v, want %v", got, want)
	}

	november := MonthSpanIn(date(2023, time.November, 15, 12, 0, 0, 0), ny)
	if got, want := november.Duration(), 30*24*time.Hour+time.Hour-time.Nanosecond; got != want {
		t.Errorf("November span duration = %v, want %v", got, want)
	}
}

func TestPreviousMonth(t *testing.T) {
	tests := []struct {
		year      int
		month     time.Month
		wantYear  int
		wantMonth time.Month
	}{
		{2026, time.June, 2026, time.May},
		{2026, time.December, 2026, time.November},
		{2026, time.January, 2025, time.December},
	}

	for _, tt := range tests {
		gotYear, gotMonth := PreviousMonth(tt.year, tt.month)
		if gotYear != tt.wantYear || gotMonth != tt.wantMonth {
			t.Errorf("PreviousMonth(%d, %v) = (%d, %v), want (%d, %v)",
				tt.year, tt.month, gotYear, gotMonth, tt.wantYear, tt.wantMonth)
		}
	}
}

func TestNextMonth(t *testing.T) {
	tests := []struct {
		year      int
		month     time.Month
		wantYear  int
		wantMonth time.Month
	}{
		{2026, time.June, 2026, time.July},
		{2026, time.December, 2027, time.January},
		{2026, time.January, 2026, time.February},
	}

	for _, tt := range tests {
		gotYear, gotMonth := NextMonth(tt.year, tt.month)
		if gotYear != tt.wantYear || gotMonth != tt.wantMonth {
			t.Errorf("NextMonth(%d, %v) = (%d, %v), want (%d, %v)",
				tt.year, tt.month, gotYear, gotMonth, tt.wantYear, tt.wantMonth)
		}
	}
}

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		in   time.Time
		want int
	}{
		{date(2024, time.February, 10, 0, 0, 0, 0), 29},
		{date(2023, time.February, 10, 0, 0, 0, 0), 28},
		{date(2023, time.April, 1, 0, 0, 0, 0), 30},
		{date(2023, time.August, 31, 23, 59, 59, 0), 31},
		{date(2023, time.December, 1, 0, 0, 0, 0), 31},
	}

	for _, tt := range tests {
		if got := DaysInMonth(tt.in); got != tt.want {
			t.Errorf("DaysInMonth(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestActualDate(t *testing.T) {
	tests := []struct {
		name      string
		year      int
		month     time.Month
		targetDay int
		want      time.Time
	}{
		{"day within month", 2023, time.August, 15, date(2023, time.August, 15, 0, 0, 0, 0)},
		{"day 31 in february", 2023, time.February, 31, date(2023, time.February, 28, 0, 0, 0, 0)},
		{"day 31 in leap february", 2024, time.February, 31, date(2024, time.February, 29, 0, 0, 0, 0)},
		{"day 31 in 30-day month", 2023, time.April, 31, date(2023, time.April, 30, 0, 0, 0, 0)},
		{"last day exact", 2023, time.August, 31, date(2023, time.August, 31, 0, 0, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ActualDate(tt.year, tt.month, tt.targetDay, time.UTC)
			if !got.Equal(tt.want) {
				t.Errorf("ActualDate(%d, %v, %d) = %v, want %v",
					tt.year, tt.month, tt.targetDay, got, tt.want)
			}
		})
	}
}

func TestActualDate_HonorsLocation(t *testing.T) {
	fixed := time.FixedZone("UTC+2", 2*3600)
	got := ActualDate(2023, time.February, 31, fixed)
	if got.Location() != fixed {
		t.Errorf("location = %v, want %v", got.Location(), fixed)
	}
	if got.Day() != 28 {
		t.Errorf("day = %d, want 28", got.Day())
	}
}

package rubytime_test

import (
	"testing"

	"github.com/embulk/embulk-util-rubytime-sub000"
)

func mustParse(t *testing.T, pattern, input string) *rubytime.Parsed {
	t.Helper()
	p, err := rubytime.ParseString(pattern, input)
	if err != nil {
		t.Fatalf("ParseString(%q, %q) error: %v", pattern, input, err)
	}
	return p
}

func TestParseCalendarFields(t *testing.T) {
	p := mustParse(t, "%Y-%m-%dT%H:%M:%S%Z", "2017-12-31T12:34:56PST")

	checkInt(t, "Year", p.Year, 2017)
	checkInt(t, "Month", p.Month, 12)
	checkInt(t, "Day", p.Day, 31)
	checkInt(t, "Hour", p.Hour, 12)
	checkInt(t, "Minute", p.Minute, 34)
	checkInt(t, "Second", p.Second, 56)

	zone, ok := p.Zone()
	if !ok || zone != "PST" {
		t.Errorf("Zone() = %q, %v; want %q, true", zone, ok, "PST")
	}
}

func checkInt(t *testing.T, name string, accessor func() (int, bool), want int) {
	t.Helper()
	got, ok := accessor()
	if !ok || got != want {
		t.Errorf("%s() = %d, %v; want %d, true", name, got, ok, want)
	}
}

func TestParseLeapSecond(t *testing.T) {
	p := mustParse(t, "%Y-%m-%dT%H:%M:%S", "2001-02-03T23:59:60")
	if !p.LeapSecond() {
		t.Fatal("LeapSecond() = false, want true")
	}
	checkInt(t, "Second", p.Second, 60)
}

func TestParseExcessDay(t *testing.T) {
	p := mustParse(t, "%H:%M:%S", "24:00:00")
	if !p.ExcessDay() {
		t.Fatal("ExcessDay() = false, want true")
	}
	checkInt(t, "Hour", p.Hour, 24)
}

func TestParseTwoDigitYearDefaultCentury(t *testing.T) {
	for _, tt := range []struct {
		input string
		want  int
	}{
		{"68", 2068},
		{"69", 1969},
		{"00", 2000},
	} {
		p := mustParse(t, "%y", tt.input)
		checkInt(t, "Year", p.Year, tt.want)
	}
}

func TestParseCenturyMergesWithYear(t *testing.T) {
	p := mustParse(t, "%C%y", "1969")
	checkInt(t, "Year", p.Year, 1969)
}

func TestParseHourMergesWithAmPm(t *testing.T) {
	p := mustParse(t, "%I:%M %p", "05:30 PM")
	checkInt(t, "Hour", p.Hour, 17)

	p = mustParse(t, "%I:%M %p", "12:00 AM")
	checkInt(t, "Hour", p.Hour, 0)
}

func TestParseEpochDirectivesIndependent(t *testing.T) {
	p := mustParse(t, "%s %Q", "123456789 12849124")

	secs, ok := p.InstantSeconds()
	if !ok || secs != 123456789 {
		t.Errorf("InstantSeconds() = %d, %v; want 123456789, true", secs, ok)
	}
	millis, ok := p.InstantMillis()
	if !ok || millis != 12849124 {
		t.Errorf("InstantMillis() = %d, %v; want 12849124, true", millis, ok)
	}
}

func TestParseFractionAdjacentDirective(t *testing.T) {
	p := mustParse(t, "%Q.%N", "1500000000456.111111111")

	millis, ok := p.InstantMillis()
	if !ok || millis != 1500000000456 {
		t.Errorf("InstantMillis() = %d, %v; want 1500000000456, true", millis, ok)
	}
	nsec, ok := p.Nanosecond()
	if !ok || nsec != 111111111 {
		t.Errorf("Nanosecond() = %d, %v; want 111111111, true", nsec, ok)
	}
}

func TestParseDayOfYearRejects366(t *testing.T) {
	if _, err := rubytime.ParseString("%j", "366"); err == nil {
		t.Fatal("ParseString(%j, 366) succeeded, want an out-of-range error")
	}
	p := mustParse(t, "%j", "128")
	checkInt(t, "YearDay", p.YearDay, 128)
}

func TestParseWeekdayAndMonthNames(t *testing.T) {
	p := mustParse(t, "%A, %B %d", "Saturday, January 09")
	wd, ok := p.WeekdaySun0()
	if !ok || wd != int(rubytime.Saturday) {
		t.Errorf("WeekdaySun0() = %d, %v; want %d, true", wd, ok, rubytime.Saturday)
	}
	checkInt(t, "Month", p.Month, int(rubytime.January))
}

func TestParseLeftover(t *testing.T) {
	p := mustParse(t, "%Y", "2020 trailing text")
	if got := p.Leftover(); got != " trailing text" {
		t.Errorf("Leftover() = %q, want %q", got, " trailing text")
	}
}

func TestParseLiteralWhitespaceRun(t *testing.T) {
	p := mustParse(t, "%Y  %m", "2020   12")
	checkInt(t, "Year", p.Year, 2020)
	checkInt(t, "Month", p.Month, 12)
}

func TestParseMismatchReturnsTypedError(t *testing.T) {
	_, err := rubytime.ParseString("%Y-%m-%d", "2020/01/02")
	if err == nil {
		t.Fatal("expected a parse error")
	}
	if _, ok := err.(*rubytime.ParseError); !ok {
		t.Errorf("error type = %T, want *rubytime.ParseError", err)
	}
}

package rubytime_test

import (
	"testing"

	"github.com/embulk/embulk-util-rubytime-sub000"
)

func TestFormatBasicFields(t *testing.T) {
	src := rubytime.Fields{
		Year: 2019, Month: 6, Day: 8, DateSet: true,
		Hour: 12, Minute: 34, Second: 56, Nsec: 789000000, ClockSet: true,
		OffsetSeconds: 9 * 3600, OffsetSet: true,
	}

	got, err := rubytime.FormatString("%Y-%m-%dT%H:%M:%S.%N %z", src)
	if err != nil {
		t.Fatalf("FormatString error: %v", err)
	}
	want := "2019-06-08T12:34:56.789000000 +0900"
	if got != want {
		t.Errorf("FormatString = %q, want %q", got, want)
	}
}

func TestFormatZoneOffsetShortestForm(t *testing.T) {
	for _, tt := range []struct {
		offset int
		want   string
	}{
		{9 * 3600, "+09"},
		{9*3600 + 1800, "+09:30"},
		{9*3600 + 1800 + 30, "+09:30:30"},
	} {
		src := rubytime.Fields{OffsetSeconds: tt.offset, OffsetSet: true}
		got, err := rubytime.FormatString("%:::z", src)
		if err != nil {
			t.Fatalf("FormatString error: %v", err)
		}
		if got != tt.want {
			t.Errorf("FormatString(%%:::z, offset=%d) = %q, want %q", tt.offset, got, tt.want)
		}
	}
}

func TestFormatTooManyColonsIsVerbatim(t *testing.T) {
	src := rubytime.Fields{OffsetSeconds: 0, OffsetSet: true}
	got, err := rubytime.FormatString("%::::z", src)
	if err != nil {
		t.Fatalf("FormatString error: %v", err)
	}
	if got != "%::::z" {
		t.Errorf("FormatString(%%::::z) = %q, want literal %%::::z", got)
	}
}

func TestFormatMissingFieldIsTypedError(t *testing.T) {
	src := rubytime.Fields{}
	_, err := rubytime.FormatString("%Y", src)
	if err == nil {
		t.Fatal("expected an error for a missing date field")
	}
	if _, ok := err.(*rubytime.FormatError); !ok {
		t.Errorf("error type = %T, want *rubytime.FormatError", err)
	}
}

func TestFormat12HourClock(t *testing.T) {
	for _, tt := range []struct {
		hour int
		want string
	}{
		{0, "12AM"},
		{1, "01AM"},
		{12, "12PM"},
		{13, "01PM"},
		{23, "11PM"},
	} {
		src := rubytime.Fields{Hour: tt.hour, ClockSet: true}
		got, err := rubytime.FormatString("%I%p", src)
		if err != nil {
			t.Fatalf("FormatString error: %v", err)
		}
		if got != tt.want {
			t.Errorf("hour=%d: FormatString(%%I%%p) = %q, want %q", tt.hour, got, tt.want)
		}
	}
}

func TestFormatWidthAndPadding(t *testing.T) {
	src := rubytime.Fields{Year: -5, Month: 3, Day: 1, DateSet: true}
	got, err := rubytime.FormatString("%Y", src)
	if err != nil {
		t.Fatalf("FormatString error: %v", err)
	}
	if got != "-0005" {
		t.Errorf("FormatString(%%Y) for year=-5 = %q, want %q", got, "-0005")
	}
}

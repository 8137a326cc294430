package rubytime

import "testing"

func TestWeekdayString(t *testing.T) {
	if got := Sunday.String(); got != "Sunday" {
		t.Errorf("Sunday.String() = %q, want %q", got, "Sunday")
	}
	if got := Saturday.String(); got != "Saturday" {
		t.Errorf("Saturday.String() = %q, want %q", got, "Saturday")
	}
	if got := Weekday(9).String(); got != "%!Weekday(9)" {
		t.Errorf("Weekday(9).String() = %q, want %q", got, "%!Weekday(9)")
	}
}

func TestMonthString(t *testing.T) {
	if got := January.String(); got != "January" {
		t.Errorf("January.String() = %q, want %q", got, "January")
	}
	if got := December.String(); got != "December" {
		t.Errorf("December.String() = %q, want %q", got, "December")
	}
	if got := Month(0).String(); got != "%!Month(0)" {
		t.Errorf("Month(0).String() = %q, want %q", got, "%!Month(0)")
	}
}

func TestNameLookupsAreCaseInsensitiveAndComplete(t *testing.T) {
	for name, want := range longDayNameLookup {
		_ = name
		if want < 0 || want > 6 {
			t.Errorf("longDayNameLookup entry out of range: %d", want)
		}
	}
	if v, ok := shortMonthNameLookup["jan"]; !ok || v != 1 {
		t.Errorf(`shortMonthNameLookup["jan"] = %d, %v; want 1, true`, v, ok)
	}
	if v, ok := longMonthNameLookup["december"]; !ok || v != 12 {
		t.Errorf(`longMonthNameLookup["december"] = %d, %v; want 12, true`, v, ok)
	}
}

func TestLookupLengthsDescendingAndComplete(t *testing.T) {
	lengths := lookupLengths(longDayNameLookup)
	if len(lengths) == 0 {
		t.Fatal("lookupLengths(longDayNameLookup) returned no lengths")
	}
	for i := 1; i < len(lengths); i++ {
		if lengths[i] > lengths[i-1] {
			t.Errorf("lookupLengths not descending: %v", lengths)
		}
	}
	want := map[int]bool{len("Sunday"): true, len("Wednesday"): true, len("Tuesday"): true}
	for _, n := range lengths {
		delete(want, n)
	}
	if len(want) != 0 {
		t.Errorf("lookupLengths(longDayNameLookup) = %v, missing lengths for %v", lengths, want)
	}

	shortLengths := lookupLengths(shortMonthNameLookup)
	if len(shortLengths) != 1 || shortLengths[0] != 3 {
		t.Errorf("lookupLengths(shortMonthNameLookup) = %v, want [3]", shortLengths)
	}
}

func TestMatchNameLookupWiredIntoParsing(t *testing.T) {
	p, err := ParseString("%A %B", "Saturday January")
	if err != nil {
		t.Fatalf("ParseString error: %v", err)
	}
	wd, ok := p.WeekdaySun0()
	if !ok || wd != int(Saturday) {
		t.Errorf("WeekdaySun0() = %d, %v; want %d, true", wd, ok, Saturday)
	}
	month, ok := p.Month()
	if !ok || month != int(January) {
		t.Errorf("Month() = %d, %v; want %d, true", month, ok, January)
	}
}

func TestAmpmNamesLongestFirst(t *testing.T) {
	if ampmNames[0].text != "a.m." || ampmNames[2].text != "am" {
		t.Errorf("ampmNames order = %+v, want a.m./p.m. before am/pm", ampmNames)
	}
}

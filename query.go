package rubytime

import "strconv"

// FractionConverter converts a sub-second fraction (always expressed as
// whole seconds plus nanos, zero whole seconds for a bare fraction)
// into a caller-chosen representation for the "sec_fraction" key.
type FractionConverter func(wholeSeconds int64, nanos int) any

// MillisConverter converts an epoch-millisecond value into a
// caller-chosen representation for the "seconds" key.
type MillisConverter func(millis int64) any

// KeyConverter converts a short textual key name into a caller-chosen
// key type for the returned map.
type KeyConverter func(string) any

// DefaultFractionConverter renders the fraction as "<secs>.<nanos>",
// nanos zero-padded to 9 digits, matching Ruby's Rational sec_fraction.
func DefaultFractionConverter(wholeSeconds int64, nanos int) any {
	return strconv.FormatInt(wholeSeconds, 10) + "." + padNanosString(nanos)
}

func padNanosString(nanos int) string {
	s := strconv.Itoa(nanos)
	if len(s) < 9 {
		s = repeatZero(9-len(s)) + s
	}
	return s
}

func repeatZero(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = '0'
	}
	return string(b)
}

// DefaultMillisConverter returns the millisecond value unchanged.
func DefaultMillisConverter(millis int64) any { return millis }

// DefaultKeyConverter returns the key string unchanged, so every key of
// the map[any]any ToMap returns is a string.
func DefaultKeyConverter(key string) any { return key }

// ToMap projects a Parsed into Date._strptime's keyed hash shape
// (component I, §4.7), using the supplied converters for the three
// fields whose Go representation isn't fixed by the Ruby original.
// Grounded on the teacher's preference for explicit function-typed
// parameters over ad hoc option structs (e.g. the fromDate/fromTime
// conversion functions format.go threads through by value).
func ToMap(p *Parsed, fraction FractionConverter, millis MillisConverter, key KeyConverter) map[any]any {
	out := make(map[any]any)

	set := func(k string, v any) { out[key(k)] = v }

	if d, ok := p.Day(); ok {
		set("mday", d)
	}
	if wy, ok := p.WeekBasedYear(); ok {
		set("cwyear", wy)
	}
	if h, ok := p.Hour(); ok {
		set("hour", h)
	}
	if yd, ok := p.YearDay(); ok {
		set("yday", yd)
	}
	if n, ok := p.Nanosecond(); ok {
		set("sec_fraction", fraction(0, n))
	}
	if mi, ok := p.Minute(); ok {
		set("min", mi)
	}
	if mo, ok := p.Month(); ok {
		set("mon", mo)
	}
	if s, ok := p.Second(); ok {
		set("sec", s)
	}
	if w, ok := p.WeekOfYearSunday(); ok {
		set("wnum0", w)
	}
	if w, ok := p.WeekOfYearMonday(); ok {
		set("wnum1", w)
	}
	if wd, ok := p.WeekdayMon1(); ok {
		set("cwday", wd)
	}
	if cw, ok := p.WeekOfWeekBasedYear(); ok {
		set("cweek", cw)
	}
	if wd, ok := p.WeekdaySun0(); ok {
		set("wday", wd)
	}
	if y, ok := p.Year(); ok {
		set("year", y)
	}
	if m, ok := p.InstantMillis(); ok {
		set("seconds", millis(m))
	} else if s, ok := p.InstantSeconds(); ok {
		set("seconds", s)
	}
	if zone, ok := p.Zone(); ok {
		if offset, found := lookupDateZone(zone); found {
			set("offset", offset)
		}
		set("zone", zone)
	}
	if leftover := p.Leftover(); leftover != "" {
		set("leftover", leftover)
	}

	return out
}

package rubytime

// ResolveOptions controls Resolve's calendar-fallback behavior (§4.5).
type ResolveOptions struct {
	// AcceptsEmpty allows resolving a Parsed with no calendar or
	// time-of-day field at all (defaulting every field), instead of
	// returning ErrNoTimeInformation.
	AcceptsEmpty bool

	// DefaultOffsetSeconds is used when the Parsed has no resolvable
	// zone, if HasDefaultOffset is true. Otherwise an unresolvable
	// zone (or no zone at all) is a ResolveError.
	DefaultOffsetSeconds int
	HasDefaultOffset     bool
}

// Resolved is Resolve's output: a Source that exposes the original
// Parsed fields preferentially, falling back to the computed
// date/time/offset for anything the Parsed didn't carry (§4.5's
// "synthetic accessor"). Its Instant always reports the computed,
// authoritative instant rather than any re-derivable parsed value.
type Resolved struct {
	parsed *Parsed

	year, month, day             int
	hour, minute, second, nsec   int
	offsetSeconds                int
	hasOffset                    bool
	instantSeconds               int64
	hasInstant                   bool
}

func (r *Resolved) Date() (year, month, day int, ok bool) {
	year, month, day = r.year, r.month, r.day
	if y, set := r.parsed.Year(); set {
		year = y
	}
	if m, set := r.parsed.Month(); set {
		month = m
	}
	if d, set := r.parsed.Day(); set {
		day = d
	}
	return year, month, day, true
}

func (r *Resolved) Clock() (hour, minute, second, nsec int, ok bool) {
	hour, minute, second, nsec = r.hour, r.minute, r.second, r.nsec
	if h, set := r.parsed.Hour(); set {
		hour = h
	}
	if m, set := r.parsed.Minute(); set {
		minute = m
	}
	if s, set := r.parsed.Second(); set {
		second = s
	}
	if n, set := r.parsed.Nanosecond(); set {
		nsec = n
	}
	return hour, minute, second, nsec, true
}

func (r *Resolved) Instant() (int64, bool) { return r.instantSeconds, r.hasInstant }
func (r *Resolved) Offset() (int, bool)    { return r.offsetSeconds, r.hasOffset }
func (r *Resolved) Zone() (string, bool)   { return r.parsed.Zone() }

// Resolve turns a Parsed field-bag into a point in time (component H).
// Grounded on spec.md §4.5's precedence rules (new logic; the teacher
// has no Ruby-specific resolver) and on calendar.go's carry arithmetic
// (itself reworked from the teacher's date.go) for the offset-
// subtraction step.
func Resolve(p *Parsed, opts ResolveOptions) (*Resolved, error) {
	if millis, ok := p.InstantMillis(); ok {
		return resolveFromInstant(p, millis, true)
	}
	if seconds, ok := p.InstantSeconds(); ok {
		return resolveFromInstant(p, seconds, false)
	}
	return resolveFromCalendar(p, opts)
}

func resolveFromInstant(p *Parsed, value int64, isMillis bool) (*Resolved, error) {
	var seconds int64
	var nanos int
	if isMillis {
		seconds = floorDivInt64(value, 1000)
		nanos = int(value-seconds*1000) * 1_000_000
	} else {
		seconds = value
	}

	if extra, ok := p.Nanosecond(); ok {
		if seconds >= 0 {
			nanos += extra
		} else {
			nanos -= extra
		}
	}
	for nanos < 0 {
		nanos += 1_000_000_000
		seconds--
	}
	for nanos >= 1_000_000_000 {
		nanos -= 1_000_000_000
		seconds++
	}

	year, month, day, hour, minute, second := civilFromInstant(seconds)
	return &Resolved{
		parsed: p,
		year: year, month: month, day: day,
		hour: hour, minute: minute, second: second, nsec: nanos,
		offsetSeconds: 0, hasOffset: true,
		instantSeconds: seconds, hasInstant: true,
	}, nil
}

func civilFromInstant(seconds int64) (year, month, day, hour, minute, second int) {
	days := floorDivInt64(seconds, 86400)
	secOfDay := int(seconds - days*86400)
	hour = secOfDay / 3600
	secOfDay -= hour * 3600
	minute = secOfDay / 60
	second = secOfDay - minute*60
	year, month, day = civilFromDays(int(days))
	return
}

func resolveFromCalendar(p *Parsed, opts ResolveOptions) (*Resolved, error) {
	if !opts.AcceptsEmpty && !p.hasAnyField() {
		return nil, ErrNoTimeInformation
	}

	year, month, day := 1970, 1, 1
	if y, ok := p.Year(); ok {
		year = y
	}
	if m, ok := p.Month(); ok {
		month = m
	}
	if d, ok := p.Day(); ok {
		day = d
	}

	hour, minute, second, nsec := 0, 0, 0, 0
	if h, ok := p.Hour(); ok {
		hour = h
	}
	if mi, ok := p.Minute(); ok {
		minute = mi
	}
	if s, ok := p.Second(); ok {
		second = s
	}
	if n, ok := p.Nanosecond(); ok {
		nsec = n
	}

	offset, err := resolveOffset(p, opts)
	if err != nil {
		return nil, err
	}

	// §4.5's apply_offset: leap-second and excess-day storage reduce
	// the stored second/hour, and the offset about to be subtracted
	// compensates by the same amount, rather than leaving the literal
	// 60/24 value in the calendar carry below.
	carryOffset := offset
	if p.LeapSecond() {
		second = 59
		carryOffset -= 1
	}
	if p.ExcessDay() {
		if hour != 24 {
			return nil, newResolveError("hour not in 0..24")
		}
		hour = 0
		carryOffset -= 86400
	}
	if month == 2 && day == 29 && !isLeapYear(year) {
		return nil, newResolveError("February 29 in a non-leap year")
	}

	utcYear, utcMonth, utcDay, utcHour, utcMinute, utcSecond :=
		addCalendarSeconds(year, month, day, hour, minute, second, -carryOffset)

	instantSeconds := int64(daysSinceEpoch(utcYear, utcMonth, utcDay))*86400 +
		int64(utcHour)*3600 + int64(utcMinute)*60 + int64(utcSecond)

	return &Resolved{
		parsed: p,
		year: year, month: month, day: day,
		hour: hour, minute: minute, second: second, nsec: nsec,
		offsetSeconds: offset, hasOffset: true,
		instantSeconds: instantSeconds, hasInstant: true,
	}, nil
}

// resolveOffset implements §4.5's zone-resolution step for the
// calendar-field path: look up the stored zone name, fall back to the
// caller-supplied default, or raise.
func resolveOffset(p *Parsed, opts ResolveOptions) (int, error) {
	zone, ok := p.Zone()
	if ok {
		if offset, found := lookupTimeZone(zone); found {
			return offset, nil
		}
	}
	if opts.HasDefaultOffset {
		return opts.DefaultOffsetSeconds, nil
	}
	if ok {
		return 0, newResolveError("unresolvable time zone %q", zone)
	}
	return 0, newResolveError("empty time zone ID")
}

func floorDivInt64(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

package rubytime

// Parsed is the immutable field-bag a successful Parse populates
// (component E, §3). Each field is either present (with a value) or
// absent; accessor methods report both via the (value, ok) idiom used
// throughout this library, mirroring the teacher's multi-return
// accessor convention (e.g. LocalTime.Clock()).
//
// A Parsed is sealed by the parser once built: nothing outside this
// package can mutate it, and the merge rules described in §3 (century
// folding, %I/%p folding, leap-second/excess-day storage) have already
// been applied by the time callers see it.
type Parsed struct {
	year    int
	yearSet bool

	month    int
	monthSet bool

	day    int
	daySet bool

	yday    int
	ydaySet bool

	hour    int
	hourSet bool

	minute    int
	minuteSet bool

	second    int
	secondSet bool

	nsec    int
	nsecSet bool

	instantSeconds    int64
	instantSecondsSet bool

	instantMillis    int64
	instantMillisSet bool

	weekYear    int
	weekYearSet bool

	weekOfWeekYear    int
	weekOfWeekYearSet bool

	weekOfYearSun    int
	weekOfYearSunSet bool

	weekOfYearMon    int
	weekOfYearMonSet bool

	weekdayMon1    int
	weekdayMon1Set bool

	weekdaySun0    int
	weekdaySun0Set bool

	zone    string
	zoneSet bool

	leftover string

	leapSecond bool
	excessDay  bool // one day, per §3/§4.5 ("Any other excess period raises")

	// Scratch state used only while the parser builds this value; resolved
	// and consumed by seal(), never read through the public accessors.
	century       int
	centurySet    bool
	yearTwoDigit  bool
	weekYearTwoDigit bool
	ampmValue     int
	ampmSet       bool
}

// seal applies the build-time merge rules from §3 and freezes the
// field-bag: century folding for year and week-based-year, %I/%p
// folding, leap-second storage, and excess-day storage. Called exactly
// once, by the parser, after every token has been applied.
func (p *Parsed) seal() {
	if p.yearSet {
		switch {
		case p.centurySet:
			p.year = p.century*100 + p.year
		case p.yearTwoDigit:
			p.year = defaultCentury(p.year)*100 + p.year
		}
	}

	if p.weekYearSet {
		switch {
		case p.centurySet:
			p.weekYear = p.century*100 + p.weekYear
		case p.weekYearTwoDigit:
			p.weekYear = defaultCentury(p.weekYear)*100 + p.weekYear
		}
	}

	if p.ampmSet && p.hourSet {
		p.hour = (p.hour % 12) + p.ampmValue
	}

	if p.secondSet && p.second == 60 {
		p.second = 59
		p.leapSecond = true
	}

	if p.hourSet && p.hour == 24 {
		p.hour = 0
		p.excessDay = true
	}
}

// defaultCentury infers the century (19 or 20) for a bare two-digit year
// per §3: "values ≥69 → 19, otherwise → 20".
func defaultCentury(twoDigitYear int) int {
	if twoDigitYear >= 69 {
		return 19
	}
	return 20
}

// Year returns the parsed year (%Y, or %C+%y merged per §3), if present.
func (p *Parsed) Year() (int, bool) { return p.year, p.yearSet }

// Month returns the parsed month of year (1..12), if present.
func (p *Parsed) Month() (int, bool) { return p.month, p.monthSet }

// Day returns the parsed day of month (1..31), if present.
func (p *Parsed) Day() (int, bool) { return p.day, p.daySet }

// YearDay returns the parsed day of year (1..365; %j rejects 366), if present. Per
// spec.md §1/§4.5, this is stored but never consulted by Resolve.
func (p *Parsed) YearDay() (int, bool) { return p.yday, p.ydaySet }

// Hour returns the parsed hour of day. It is in 0..24 inclusive: 24 is
// reported when ExcessDay is set, even though it is stored internally
// as 0 (§3's build invariant for %H==24).
func (p *Parsed) Hour() (int, bool) {
	if p.hourSet && p.excessDay {
		return 24, true
	}
	return p.hour, p.hourSet
}

// Minute returns the parsed minute of hour (0..59), if present.
func (p *Parsed) Minute() (int, bool) { return p.minute, p.minuteSet }

// Second returns the parsed second of minute. It is 60 when LeapSecond
// is also set, even though it is stored internally as 59 (§3's build
// invariant for %S==60).
func (p *Parsed) Second() (int, bool) {
	if p.secondSet && p.leapSecond {
		return 60, true
	}
	return p.second, p.secondSet
}

// Nanosecond returns the parsed sub-second value in nanoseconds, if
// present (from %L scaled by 10^6, or %N).
func (p *Parsed) Nanosecond() (int, bool) { return p.nsec, p.nsecSet }

// InstantSeconds returns the parsed %s epoch seconds, if present.
func (p *Parsed) InstantSeconds() (int64, bool) { return p.instantSeconds, p.instantSecondsSet }

// InstantMillis returns the parsed %Q epoch milliseconds, if present.
func (p *Parsed) InstantMillis() (int64, bool) { return p.instantMillis, p.instantMillisSet }

// WeekBasedYear returns the parsed ISO 8601 week-based year (%G, or
// %C+%g merged), if present.
func (p *Parsed) WeekBasedYear() (int, bool) { return p.weekYear, p.weekYearSet }

// WeekOfWeekBasedYear returns the parsed ISO 8601 week number (%V,
// 1..53), if present.
func (p *Parsed) WeekOfWeekBasedYear() (int, bool) { return p.weekOfWeekYear, p.weekOfWeekYearSet }

// WeekOfYearSunday returns the parsed Sunday-based week number (%U,
// 0..53), if present.
func (p *Parsed) WeekOfYearSunday() (int, bool) { return p.weekOfYearSun, p.weekOfYearSunSet }

// WeekOfYearMonday returns the parsed Monday-based week number (%W,
// 0..53), if present.
func (p *Parsed) WeekOfYearMonday() (int, bool) { return p.weekOfYearMon, p.weekOfYearMonSet }

// WeekdayMon1 returns the parsed day of week, Monday=1..Sunday=7 (%u),
// if present.
func (p *Parsed) WeekdayMon1() (int, bool) { return p.weekdayMon1, p.weekdayMon1Set }

// WeekdaySun0 returns the parsed day of week, Sunday=0..Saturday=6
// (%w, or %a/%A), if present.
func (p *Parsed) WeekdaySun0() (int, bool) { return p.weekdaySun0, p.weekdaySun0Set }

// Zone returns the raw, verbatim time zone text matched by %z/%Z, if
// present.
func (p *Parsed) Zone() (string, bool) { return p.zone, p.zoneSet }

// Leftover returns the unconsumed suffix of the input following the
// last directive. It is never an error condition (§3 glossary).
func (p *Parsed) Leftover() string { return p.leftover }

// LeapSecond reports whether %S matched the value 60.
func (p *Parsed) LeapSecond() bool { return p.leapSecond }

// ExcessDay reports whether %H (or %k) matched the value 24, meaning
// the calendar date must roll forward by one day once resolved.
func (p *Parsed) ExcessDay() bool { return p.excessDay }

// hasAnyField reports whether any calendar or time-of-day field was
// parsed, for Resolve's accepts_empty gate (§4.5). Epoch fields are
// checked separately by Resolve before this is consulted.
func (p *Parsed) hasAnyField() bool {
	return p.yearSet || p.monthSet || p.daySet || p.ydaySet ||
		p.hourSet || p.minuteSet || p.secondSet || p.nsecSet ||
		p.weekYearSet || p.weekOfWeekYearSet || p.weekOfYearSunSet ||
		p.weekOfYearMonSet || p.weekdayMon1Set || p.weekdaySun0Set
}

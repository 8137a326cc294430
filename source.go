package rubytime

// Source is the neutral accessor the formatter walks against (§1/§4.4):
// a calendar date, a clock time, an instant, a UTC offset, and a zone
// name or abbreviation, each reported with the same (value, ok) idiom
// Parsed uses. A directive whose required field comes back ok=false
// surfaces as a *FormatError rather than a zero value (§7.3).
type Source interface {
	// Date returns the calendar date, if known.
	Date() (year, month, day int, ok bool)
	// Clock returns the time of day, if known. nsec is nanosecond of second.
	Clock() (hour, minute, second, nsec int, ok bool)
	// Instant returns whole seconds since the Unix epoch, if known.
	Instant() (seconds int64, ok bool)
	// Offset returns the UTC offset in seconds east, if known.
	Offset() (seconds int, ok bool)
	// Zone returns a zone name or abbreviation, if known.
	Zone() (name string, ok bool)
}

// Fields is a plain, directly-constructible Source for callers who
// already have the values on hand and don't want to build a Parsed or
// a Resolved first. Any field left at its zero value with its
// matching *Set flag false is reported as absent.
type Fields struct {
	Year, Month, Day          int
	DateSet                   bool
	Hour, Minute, Second, Nsec int
	ClockSet                  bool
	InstantSeconds            int64
	InstantSet                bool
	OffsetSeconds             int
	OffsetSet                 bool
	ZoneName                  string
	ZoneSet                   bool
}

func (f Fields) Date() (int, int, int, bool) { return f.Year, f.Month, f.Day, f.DateSet }

func (f Fields) Clock() (int, int, int, int, bool) {
	return f.Hour, f.Minute, f.Second, f.Nsec, f.ClockSet
}

func (f Fields) Instant() (int64, bool)  { return f.InstantSeconds, f.InstantSet }
func (f Fields) Offset() (int, bool)     { return f.OffsetSeconds, f.OffsetSet }
func (f Fields) Zone() (string, bool)    { return f.ZoneName, f.ZoneSet }

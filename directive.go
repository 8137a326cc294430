package rubytime

// DirectiveKind is the closed enumeration of conversion specifiers this
// library recognizes (component A). Composite ("recurred") specifiers
// such as %F never appear as a DirectiveKind themselves: the compiler
// expands them into their literal template at compile time (§4.1), so
// downstream components only ever see primitive kinds.
type DirectiveKind int

const (
	DirNone DirectiveKind = iota
	DirYear               // %Y
	DirCentury            // %C
	DirYearNoCentury      // %y
	DirMonth              // %m
	DirMonthNameFull      // %B
	DirMonthNameAbbr      // %b, %h
	DirDayOfMonth         // %d
	DirDayOfMonthBlank    // %e
	DirDayOfYear          // %j
	DirHour24             // %H
	DirHour24Blank        // %k
	DirHour12             // %I
	DirHour12Blank        // %l
	DirAmPmUpper          // %p
	DirAmPmLower          // %P
	DirMinute             // %M
	DirSecond             // %S
	DirFracMilli          // %L
	DirFracNano           // %N
	DirZoneOffset         // %z
	DirZoneName           // %Z
	DirWeekdayFull        // %A
	DirWeekdayAbbr        // %a
	DirWeekdayMon1        // %u
	DirWeekdaySun0        // %w
	DirWeekBasedYear      // %G
	DirWeekBasedYear2     // %g
	DirWeekOfYearISO      // %V
	DirWeekOfYearSun      // %U
	DirWeekOfYearMon      // %W
	DirEpochSeconds       // %s
	DirEpochMillis        // %Q
	DirPercent            // %%
)

// directiveInfo describes one conversion character: whether it consumes
// a digit run (affecting the parser's greedy-width decision, §4.2), and,
// for recurred (composite) specifiers, the literal sub-pattern they
// expand to (§4.1).
type directiveInfo struct {
	kind       DirectiveKind
	numeric    bool
	recurred   bool
	expansion  string
}

// directiveTable maps a conversion character to its directiveInfo.
// Grounded on the teacher's format.go directive switch (one case per
// conversion character) and parseDateAndTime's mirrored switch, unified
// here into a single data-driven table per spec.md component A.
var directiveTable = map[byte]directiveInfo{
	'Y': {kind: DirYear, numeric: true},
	'C': {kind: DirCentury, numeric: true},
	'y': {kind: DirYearNoCentury, numeric: true},
	'm': {kind: DirMonth, numeric: true},
	'B': {kind: DirMonthNameFull},
	'b': {kind: DirMonthNameAbbr},
	'h': {kind: DirMonthNameAbbr},
	'd': {kind: DirDayOfMonth, numeric: true},
	'e': {kind: DirDayOfMonthBlank, numeric: true},
	'j': {kind: DirDayOfYear, numeric: true},

	'H': {kind: DirHour24, numeric: true},
	'k': {kind: DirHour24Blank, numeric: true},
	'I': {kind: DirHour12, numeric: true},
	'l': {kind: DirHour12Blank, numeric: true},
	'P': {kind: DirAmPmLower},
	'p': {kind: DirAmPmUpper},
	'M': {kind: DirMinute, numeric: true},
	'S': {kind: DirSecond, numeric: true},
	'L': {kind: DirFracMilli, numeric: true},
	'N': {kind: DirFracNano, numeric: true},

	'z': {kind: DirZoneOffset},
	'Z': {kind: DirZoneName},

	'A': {kind: DirWeekdayFull},
	'a': {kind: DirWeekdayAbbr},
	'u': {kind: DirWeekdayMon1, numeric: true},
	'w': {kind: DirWeekdaySun0, numeric: true},

	'G': {kind: DirWeekBasedYear, numeric: true},
	'g': {kind: DirWeekBasedYear2, numeric: true},
	'V': {kind: DirWeekOfYearISO, numeric: true},
	'U': {kind: DirWeekOfYearSun, numeric: true},
	'W': {kind: DirWeekOfYearMon, numeric: true},

	's': {kind: DirEpochSeconds, numeric: true},
	'Q': {kind: DirEpochMillis, numeric: true},

	'%': {kind: DirPercent},

	// Recurred (composite) directives: expanded inline at compile time (§4.1).
	'c': {recurred: true, expansion: "%a %b %e %H:%M:%S %Y"},
	'D': {recurred: true, expansion: "%m/%d/%y"},
	'x': {recurred: true, expansion: "%m/%d/%y"},
	'F': {recurred: true, expansion: "%Y-%m-%d"},
	'R': {recurred: true, expansion: "%H:%M"},
	'r': {recurred: true, expansion: "%I:%M:%S %p"},
	'T': {recurred: true, expansion: "%H:%M:%S"},
	'X': {recurred: true, expansion: "%H:%M:%S"},
	'v': {recurred: true, expansion: "%e-%b-%Y"},
	'+': {recurred: true, expansion: "%a %b %e %H:%M:%S %Z %Y"},

	// %n and %t are recurred in the sense that they expand to a fixed
	// literal, but that literal contains no further directives.
	'n': {recurred: true, expansion: "\n"},
	't': {recurred: true, expansion: "\t"},
}

// maxDigitsFor returns the default digit-run cap for a numeric directive
// kind per §4.3, or 0 if the directive has no fixed cap (tail-position
// directives get an enlarged cap; see parse.go's capFor).
func maxDigitsFor(kind DirectiveKind) int {
	switch kind {
	case DirDayOfMonth, DirDayOfMonthBlank, DirMonth, DirMinute, DirSecond,
		DirHour24, DirHour24Blank, DirHour12, DirHour12Blank,
		DirWeekOfYearISO, DirWeekOfYearSun, DirWeekOfYearMon, DirYearNoCentury,
		DirWeekBasedYear2, DirCentury:
		return 2
	case DirWeekdayMon1, DirWeekdaySun0:
		return 1
	case DirDayOfYear:
		return 3
	case DirYear, DirWeekBasedYear:
		return 4
	case DirFracMilli:
		return 3
	case DirFracNano:
		return 9
	default:
		return 0 // unbounded / directive-specific (epoch fields)
	}
}

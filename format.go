package rubytime

import (
	"strconv"
	"strings"
)

// Format walks a compiled token sequence against src and renders it
// (component G). Grounded on the teacher's formatDateTimeOffset: the
// same token-at-a-time loop and a padding closure, generalized from
// chrono's fixed %Y/%m/%d/%H/%M/%S set to the full directive table and
// from panic-on-unsupported to a typed *FormatError.
func Format(tokens []Token, src Source) (string, error) {
	var out strings.Builder
	for _, tok := range tokens {
		if tok.Kind == TokLiteral {
			out.WriteString(tok.Literal)
			continue
		}
		text, err := renderDirective(tok, src)
		if err != nil {
			return "", err
		}
		out.WriteString(text)
	}
	return out.String(), nil
}

// FormatString compiles pattern and formats src against it in one step.
func FormatString(pattern string, src Source) (string, error) {
	tokens, err := Compile(pattern)
	if err != nil {
		return "", err
	}
	return Format(tokens, src)
}

// pad applies §4.4's padding algorithm: compute the raw sign+digits
// text, then pad to opts.Precision (falling back to defaultWidth) with
// defaultPad unless opts overrides it; zero-padding keeps a leading '-'
// ahead of the inserted zeros, left-alignment always pads with spaces.
func pad(sign string, digits string, defaultWidth int, defaultPad Padding, opts Options) string {
	width := defaultWidth
	if opts.Precision > 0 {
		width = opts.Precision
	}
	padChar := byte(' ')
	if defaultPad == PadZero {
		padChar = '0'
	}
	if opts.Padding == PadZero {
		padChar = '0'
	} else if opts.Padding == PadSpace {
		padChar = ' '
	}

	total := len(sign) + len(digits)
	if opts.LeftAlign {
		s := sign + digits
		if total < width {
			s += strings.Repeat(" ", width-total)
		}
		return s
	}
	if total >= width {
		return sign + digits
	}
	padLen := width - total
	if padChar == '0' {
		return sign + strings.Repeat("0", padLen) + digits
	}
	return strings.Repeat(string(padChar), padLen) + sign + digits
}

func padInt(v int, defaultWidth int, defaultPad Padding, opts Options) string {
	sign := ""
	abs := v
	if v < 0 {
		sign = "-"
		abs = -v
	}
	return pad(sign, strconv.Itoa(abs), defaultWidth, defaultPad, opts)
}

// applyCase honors the ^ (upper-case) modifier for names. # (swap-case)
// only has defined meaning for %p/%P (applyCaseAmPm); for other names
// it has no effect, matching §4.4's "additionally swaps AM/PM case".
func applyCase(s string, opts Options) string {
	if opts.UpperCase {
		return strings.ToUpper(s)
	}
	return s
}

func renderDirective(tok Token, src Source) (string, error) {
	opts := tok.Options
	kind := tok.Directive

	switch kind {
	case DirYear:
		year, _, _, ok := src.Date()
		if !ok {
			return "", newFormatError("%%Y requires a date")
		}
		width := 4
		if year < 0 {
			width = 5
		}
		return padInt(year, width, PadZero, opts), nil

	case DirCentury:
		year, _, _, ok := src.Date()
		if !ok {
			return "", newFormatError("%%C requires a date")
		}
		return padInt(floorDiv(year, 100), 2, PadZero, opts), nil

	case DirYearNoCentury:
		year, _, _, ok := src.Date()
		if !ok {
			return "", newFormatError("%%y requires a date")
		}
		return padInt(((year % 100) + 100) % 100, 2, PadZero, opts), nil

	case DirMonth:
		_, month, _, ok := src.Date()
		if !ok {
			return "", newFormatError("%%m requires a date")
		}
		return padInt(month, 2, PadZero, opts), nil

	case DirMonthNameFull:
		_, month, _, ok := src.Date()
		if !ok || month < 1 || month > 12 {
			return "", newFormatError("%%B requires a date")
		}
		return applyCase(longMonthNames[month-1], opts), nil

	case DirMonthNameAbbr:
		_, month, _, ok := src.Date()
		if !ok || month < 1 || month > 12 {
			return "", newFormatError("%%b requires a date")
		}
		return applyCase(shortMonthNames[month-1], opts), nil

	case DirDayOfMonth:
		_, _, day, ok := src.Date()
		if !ok {
			return "", newFormatError("%%d requires a date")
		}
		return padInt(day, 2, PadZero, opts), nil

	case DirDayOfMonthBlank:
		_, _, day, ok := src.Date()
		if !ok {
			return "", newFormatError("%%e requires a date")
		}
		return padInt(day, 2, PadSpace, opts), nil

	case DirDayOfYear:
		year, month, day, ok := src.Date()
		if !ok {
			return "", newFormatError("%%j requires a date")
		}
		return padInt(dayOfYear(year, month, day), 3, PadZero, opts), nil

	case DirHour24:
		hour, _, _, _, ok := src.Clock()
		if !ok {
			return "", newFormatError("%%H requires a clock time")
		}
		return padInt(hour, 2, PadZero, opts), nil

	case DirHour24Blank:
		hour, _, _, _, ok := src.Clock()
		if !ok {
			return "", newFormatError("%%k requires a clock time")
		}
		return padInt(hour, 2, PadSpace, opts), nil

	case DirHour12:
		hour, _, _, _, ok := src.Clock()
		if !ok {
			return "", newFormatError("%%I requires a clock time")
		}
		return padInt(to12Hour(hour), 2, PadZero, opts), nil

	case DirHour12Blank:
		hour, _, _, _, ok := src.Clock()
		if !ok {
			return "", newFormatError("%%l requires a clock time")
		}
		return padInt(to12Hour(hour), 2, PadSpace, opts), nil

	case DirAmPmUpper:
		hour, _, _, _, ok := src.Clock()
		if !ok {
			return "", newFormatError("%%p requires a clock time")
		}
		if hour >= 12 {
			return applyCaseAmPm("PM", opts), nil
		}
		return applyCaseAmPm("AM", opts), nil

	case DirAmPmLower:
		hour, _, _, _, ok := src.Clock()
		if !ok {
			return "", newFormatError("%%P requires a clock time")
		}
		if hour >= 12 {
			return applyCaseAmPm("pm", opts), nil
		}
		return applyCaseAmPm("am", opts), nil

	case DirMinute:
		_, minute, _, _, ok := src.Clock()
		if !ok {
			return "", newFormatError("%%M requires a clock time")
		}
		return padInt(minute, 2, PadZero, opts), nil

	case DirSecond:
		_, _, second, _, ok := src.Clock()
		if !ok {
			return "", newFormatError("%%S requires a clock time")
		}
		return padInt(second, 2, PadZero, opts), nil

	case DirFracMilli:
		_, _, _, nsec, ok := src.Clock()
		if !ok {
			return "", newFormatError("%%L requires a clock time")
		}
		return padInt(nsec/1_000_000, 3, PadZero, opts), nil

	case DirFracNano:
		_, _, _, nsec, ok := src.Clock()
		if !ok {
			return "", newFormatError("%%N requires a clock time")
		}
		return renderNanoPrecision(nsec, opts), nil

	case DirZoneOffset:
		offset, ok := src.Offset()
		if !ok {
			return "", newFormatError("%%z requires an offset")
		}
		return renderZoneOffset(offset, opts)

	case DirZoneName:
		return renderZoneName(src, opts)

	case DirWeekdayFull:
		year, month, day, ok := src.Date()
		if !ok {
			return "", newFormatError("%%A requires a date")
		}
		return applyCase(longDayNames[weekdaySun0(year, month, day)], opts), nil

	case DirWeekdayAbbr:
		year, month, day, ok := src.Date()
		if !ok {
			return "", newFormatError("%%a requires a date")
		}
		return applyCase(shortDayNames[weekdaySun0(year, month, day)], opts), nil

	case DirWeekdayMon1:
		year, month, day, ok := src.Date()
		if !ok {
			return "", newFormatError("%%u requires a date")
		}
		wd := int(weekdaySun0(year, month, day))
		if wd == 0 {
			wd = 7
		}
		return padInt(wd, 1, PadUnspecified, opts), nil

	case DirWeekdaySun0:
		year, month, day, ok := src.Date()
		if !ok {
			return "", newFormatError("%%w requires a date")
		}
		return padInt(int(weekdaySun0(year, month, day)), 1, PadUnspecified, opts), nil

	case DirWeekBasedYear:
		year, month, day, ok := src.Date()
		if !ok {
			return "", newFormatError("%%G requires a date")
		}
		wy, _ := isoWeek(year, month, day)
		width := 4
		if wy < 0 {
			width = 5
		}
		return padInt(wy, width, PadZero, opts), nil

	case DirWeekBasedYear2:
		year, month, day, ok := src.Date()
		if !ok {
			return "", newFormatError("%%g requires a date")
		}
		wy, _ := isoWeek(year, month, day)
		return padInt(((wy % 100) + 100) % 100, 2, PadZero, opts), nil

	case DirWeekOfYearISO:
		year, month, day, ok := src.Date()
		if !ok {
			return "", newFormatError("%%V requires a date")
		}
		_, w := isoWeek(year, month, day)
		return padInt(w, 2, PadZero, opts), nil

	case DirWeekOfYearSun:
		year, month, day, ok := src.Date()
		if !ok {
			return "", newFormatError("%%U requires a date")
		}
		yday := dayOfYear(year, month, day)
		wd := int(weekdaySun0(year, month, day))
		week := (yday - 1 + 7 - wd) / 7
		return padInt(week, 2, PadZero, opts), nil

	case DirWeekOfYearMon:
		year, month, day, ok := src.Date()
		if !ok {
			return "", newFormatError("%%W requires a date")
		}
		yday := dayOfYear(year, month, day)
		wd := (int(weekdaySun0(year, month, day)) + 6) % 7 // Monday=0..Sunday=6
		week := (yday - 1 + 7 - wd) / 7
		return padInt(week, 2, PadZero, opts), nil

	case DirEpochSeconds:
		seconds, ok := src.Instant()
		if !ok {
			return "", newFormatError("%%s requires an instant")
		}
		return strconv.FormatInt(seconds, 10), nil

	case DirEpochMillis:
		// %Q has no sensible rendering without a millis-resolution
		// instant on Source; unsupported for formatting (§4.4).
		return "%Q", nil

	default:
		return "", newFormatError("unsupported directive for formatting")
	}
}

func applyCaseAmPm(s string, opts Options) string {
	switch {
	case opts.SwapCase:
		out := []byte(s)
		for i, c := range out {
			switch {
			case c >= 'a' && c <= 'z':
				out[i] = c - ('a' - 'A')
			case c >= 'A' && c <= 'Z':
				out[i] = c + ('a' - 'A')
			}
		}
		return string(out)
	case opts.UpperCase:
		return strings.ToUpper(s)
	default:
		return s
	}
}

func to12Hour(hour int) int {
	switch {
	case hour == 0:
		return 12
	case hour > 12:
		return hour - 12
	default:
		return hour
	}
}

// renderNanoPrecision implements %N (§4.4): right-pad with zeros or
// truncate to reach opts.Precision (default 9); beyond 9 digits, the
// extra width is filled with zeros.
func renderNanoPrecision(nsec int, opts Options) string {
	precision := 9
	if opts.Precision > 0 {
		precision = opts.Precision
	}
	digits := strconv.Itoa(nsec)
	if len(digits) < 9 {
		digits = strings.Repeat("0", 9-len(digits)) + digits
	}
	switch {
	case precision <= len(digits):
		return digits[:precision]
	default:
		return digits + strings.Repeat("0", precision-len(digits))
	}
}

// renderZoneOffset implements %z's colon-driven shape (§4.4).
func renderZoneOffset(offsetSeconds int, opts Options) (string, error) {
	sign := "+"
	abs := offsetSeconds
	if offsetSeconds < 0 {
		sign = "-"
		abs = -offsetSeconds
	}
	hh := abs / 3600
	mm := (abs % 3600) / 60
	ss := abs % 60

	switch opts.Colons {
	case 0:
		return sign + two(hh) + two(mm), nil
	case 1:
		return sign + two(hh) + ":" + two(mm), nil
	case 2:
		return sign + two(hh) + ":" + two(mm) + ":" + two(ss), nil
	case 3:
		switch {
		case mm == 0 && ss == 0:
			return sign + two(hh), nil
		case ss == 0:
			return sign + two(hh) + ":" + two(mm), nil
		default:
			return sign + two(hh) + ":" + two(mm) + ":" + two(ss), nil
		}
	default:
		return "%" + strings.Repeat(":", opts.Colons) + "z", nil
	}
}

func two(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}

// renderZoneName implements %Z's two styles (§4.4). This library
// selects between them with the %E localized-modifier prefix already
// present in the compiler's flag grammar (mirroring the teacher's use
// of the same prefix for %EY/%Ey/%EC's alternate renderings): plain
// %Z is the "None" style, %EZ is the "Short" style.
func renderZoneName(src Source, opts Options) (string, error) {
	offset, hasOffset := src.Offset()

	if !opts.Localized {
		if hasOffset && offset == 0 {
			return "UTC", nil
		}
		return "", nil
	}

	if hasOffset && offset == 0 {
		return "UTC", nil
	}
	if name, ok := src.Zone(); ok && name != "" {
		return strings.ToUpper(name), nil
	}
	return "", nil
}

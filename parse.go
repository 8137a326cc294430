package rubytime

import "strconv"

// Parse matches input against a compiled token sequence (component F).
// It never consumes trailing input it doesn't need to: whatever remains
// after the last token is reported as Parsed.Leftover rather than
// treated as an error (§3, §4.3).
//
// Grounded on the teacher's parseDateAndTime (the integer/alphas/
// casedAlpha closures and its buffer-position scan loop), generalized
// from the teacher's fixed Go-layout directives to this package's
// strptime-style directive table, and on the strptime parsers in
// other_examples/ (Equationzhao-strftime, micdijkstra-tuesday) for
// directives the teacher's layout parser never had to deal with at all
// (%j, %s/%Q, leap seconds, %H==24).
func Parse(tokens []Token, input string) (*Parsed, error) {
	c := &scanner{input: input}
	p := &Parsed{}

	for i, tok := range tokens {
		switch tok.Kind {
		case TokLiteral:
			if err := c.matchLiteral(tok.Literal); err != nil {
				return nil, err
			}
		case TokDirective:
			if err := applyDirective(c, p, tokens, i); err != nil {
				return nil, err
			}
		}
	}

	p.leftover = input[c.pos:]
	p.seal()
	return p, nil
}

// ParseString compiles pattern and parses input against it in one step.
func ParseString(pattern, input string) (*Parsed, error) {
	tokens, err := Compile(pattern)
	if err != nil {
		return nil, err
	}
	return Parse(tokens, input)
}

// scanner walks input left to right; its position never moves backward.
type scanner struct {
	input string
	pos   int
}

func (c *scanner) fail(format string, args ...any) error {
	return newParseError(c.input, c.pos, format, args...)
}

func (c *scanner) eof() bool { return c.pos >= len(c.input) }

// matchLiteral consumes a compiled literal run: a whitespace character
// in the pattern consumes a run (zero or more) of input whitespace;
// anything else must match byte-for-byte (§4.3).
func (c *scanner) matchLiteral(lit string) error {
	for i := 0; i < len(lit); i++ {
		ch := lit[i]
		if isSpaceByte(ch) {
			for !c.eof() && isSpaceByte(c.input[c.pos]) {
				c.pos++
			}
			continue
		}
		if c.eof() || c.input[c.pos] != ch {
			return c.fail("expected %q", string(ch))
		}
		c.pos++
	}
	return nil
}

func (c *scanner) skipOneSpace() {
	if !c.eof() && c.input[c.pos] == ' ' {
		c.pos++
	}
}

// consumeSign consumes a leading '+' or '-', returning +1 or -1.
func (c *scanner) consumeSign() int {
	if !c.eof() && (c.input[c.pos] == '+' || c.input[c.pos] == '-') {
		sign := 1
		if c.input[c.pos] == '-' {
			sign = -1
		}
		c.pos++
		return sign
	}
	return 1
}

// consumeDigits reads a run of ASCII digits. maxDigits < 0 means
// unbounded (limited only by the remaining input and a hard safety cap,
// used for %Y/%C/%G in tail position and for %s/%Q, §4.3).
func (c *scanner) consumeDigits(maxDigits int) (string, error) {
	limit := len(c.input)
	if maxDigits >= 0 && c.pos+maxDigits < limit {
		limit = c.pos + maxDigits
	}
	const safetyCap = 18
	if maxDigits < 0 && limit-c.pos > safetyCap {
		limit = c.pos + safetyCap
	}
	j := c.pos
	for j < limit && c.input[j] >= '0' && c.input[j] <= '9' {
		j++
	}
	if j == c.pos {
		return "", c.fail("expected digits")
	}
	s := c.input[c.pos:j]
	c.pos = j
	return s, nil
}

// consumeExactDigits requires exactly n digits, used by %L/%N when the
// following token is an adjacent numeric directive with no separator.
func (c *scanner) consumeExactDigits(n int) (string, error) {
	if c.pos+n > len(c.input) {
		return "", c.fail("expected %d digits", n)
	}
	for i := 0; i < n; i++ {
		ch := c.input[c.pos+i]
		if ch < '0' || ch > '9' {
			return "", c.fail("expected digit")
		}
	}
	s := c.input[c.pos : c.pos+n]
	c.pos += n
	return s, nil
}

// matchNameLookup matches the longest prefix of the remaining input
// whose lower-cased form is a key of lookup, trying lengths in the
// order given (longest first, per lengths' construction).
func (c *scanner) matchNameLookup(lookup map[string]int, lengths []int) (int, bool) {
	rem := c.input[c.pos:]
	for _, n := range lengths {
		if len(rem) < n {
			continue
		}
		if v, ok := lookup[toLowerASCII(rem[:n])]; ok {
			c.pos += n
			return v, true
		}
	}
	return 0, false
}

func equalFoldASCII(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		ca, cb := a[i], b[i]
		if ca >= 'A' && ca <= 'Z' {
			ca += 'a' - 'A'
		}
		if cb >= 'A' && cb <= 'Z' {
			cb += 'a' - 'A'
		}
		if ca != cb {
			return false
		}
	}
	return true
}

func isSpaceByte(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

func isAlphaByte(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isDigitByte(b byte) bool { return b >= '0' && b <= '9' }

// matchWeekdayName tries the full names, then the abbreviations, so
// "Saturday" isn't cut short at "Sat" (§4.3 "full then abbreviated").
// Ruby's strptime matches %A and %a against the same combined
// alternation, so both directive kinds use this one matcher. Matching
// goes through consts.go's lower-cased lookup tables rather than a
// linear scan over the name arrays.
func (c *scanner) matchWeekdayName() (Weekday, bool) {
	if idx, ok := c.matchNameLookup(longDayNameLookup, longDayNameLengths); ok {
		return Weekday(idx), true
	}
	if idx, ok := c.matchNameLookup(shortDayNameLookup, shortDayNameLengths); ok {
		return Weekday(idx), true
	}
	return 0, false
}

// matchMonthName mirrors matchWeekdayName for %B/%b/%h.
func (c *scanner) matchMonthName() (Month, bool) {
	if idx, ok := c.matchNameLookup(longMonthNameLookup, longMonthNameLengths); ok {
		return Month(idx), true
	}
	if idx, ok := c.matchNameLookup(shortMonthNameLookup, shortMonthNameLengths); ok {
		return Month(idx), true
	}
	return 0, false
}

func (c *scanner) matchAmPm() (pm bool, ok bool) {
	rem := c.input[c.pos:]
	for _, e := range ampmNames {
		if len(rem) >= len(e.text) && equalFoldASCII(rem[:len(e.text)], e.text) {
			c.pos += len(e.text)
			return e.pm, true
		}
	}
	return false, false
}

// matchZoneText consumes the longest prefix matching the zone grammar
// shared by %z and %Z (§4.3): a signed numeric offset (optionally
// preceded by gmt/utc/ut), or an alphabetic zone name optionally
// followed by "standard time"/"daylight time" or " dst". The matched
// text is stored verbatim on Parsed.Zone; interpreting it into a
// concrete offset is zones.go's job, during Resolve.
func (c *scanner) matchZoneText() (string, bool) {
	start := c.pos
	rem := c.input[c.pos:]

	prefixLen := 0
	for _, p := range []string{"gmt", "utc", "ut"} {
		if len(rem) >= len(p) && equalFoldASCII(rem[:len(p)], p) {
			prefixLen = len(p)
			break
		}
	}

	if p := c.pos + prefixLen; p < len(c.input) && (c.input[p] == '+' || c.input[p] == '-') {
		j := p + 1
		for j < len(c.input) && isDigitByte(c.input[j]) {
			j++
		}
		if j > p+1 {
			if j < len(c.input) && (c.input[j] == ',' || c.input[j] == '.' || c.input[j] == ':') {
				k := j + 1
				start2 := k
				for k < len(c.input) && isDigitByte(c.input[k]) {
					k++
				}
				if k > start2 {
					j = k
					if j < len(c.input) && c.input[j] == ':' {
						k = j + 1
						start3 := k
						for k < len(c.input) && isDigitByte(c.input[k]) {
							k++
						}
						if k > start3 {
							j = k
						}
					}
				}
			}
			c.pos = j
			return c.input[start:j], true
		}
	}

	j := c.pos
	for j < len(c.input) && (isAlphaByte(c.input[j]) || c.input[j] == '.' || c.input[j] == ' ') {
		j++
	}
	if j == c.pos {
		return "", false
	}
	name := c.input[c.pos:j]
	trimmed := trimTrailingSpace(name)
	lowerTrimmed := toLowerASCII(trimmed)
	if hasSuffixASCII(lowerTrimmed, "standard time") || hasSuffixASCII(lowerTrimmed, "daylight time") {
		c.pos = c.pos + len(trimmed)
		return trimmed, true
	}

	k := c.pos
	for k < len(c.input) && isAlphaByte(c.input[k]) {
		k++
	}
	if k == c.pos {
		return "", false
	}
	end := k
	if end+4 <= len(c.input) && equalFoldASCII(c.input[end:end+4], " dst") {
		end += 4
	}
	c.pos = end
	return c.input[start:end], true
}

func trimTrailingSpace(s string) string {
	end := len(s)
	for end > 0 && s[end-1] == ' ' {
		end--
	}
	return s[:end]
}

func hasSuffixASCII(s, suffix string) bool {
	return len(s) >= len(suffix) && s[len(s)-len(suffix):] == suffix
}

// isNumericDirective reports whether a directive's own text is made
// only of digits (plus an optional sign), which is what makes a
// preceding directive's digit run ambiguous without a cap (§4.3).
func isNumericDirective(kind DirectiveKind) bool {
	switch kind {
	case DirYear, DirCentury, DirYearNoCentury, DirMonth, DirDayOfMonth,
		DirDayOfMonthBlank, DirDayOfYear, DirHour24, DirHour24Blank,
		DirHour12, DirHour12Blank, DirMinute, DirSecond, DirFracMilli,
		DirFracNano, DirWeekdayMon1, DirWeekdaySun0, DirWeekBasedYear,
		DirWeekBasedYear2, DirWeekOfYearISO, DirWeekOfYearSun,
		DirWeekOfYearMon, DirEpochSeconds, DirEpochMillis:
		return true
	default:
		return false
	}
}

// isTailPosition reports whether the token at i has no numeric neighbor
// immediately following it: either it's the last token, the next token
// is a literal not starting with a digit, or the next token is a
// non-numeric directive. %Y/%C/%G/%s/%Q get an enlarged digit cap in
// this position (§4.3).
func isTailPosition(tokens []Token, i int) bool {
	if i+1 >= len(tokens) {
		return true
	}
	next := tokens[i+1]
	if next.Kind == TokLiteral {
		return len(next.Literal) == 0 || !isDigitByte(next.Literal[0])
	}
	return !isNumericDirective(next.Directive)
}

func capFor(kind DirectiveKind, tail bool) int {
	switch kind {
	case DirYear, DirWeekBasedYear:
		if tail {
			return -1
		}
		return 4
	case DirCentury:
		if tail {
			return -1
		}
		return 2
	case DirEpochSeconds, DirEpochMillis:
		return -1
	default:
		return maxDigitsFor(kind)
	}
}

func applyDirective(c *scanner, p *Parsed, tokens []Token, i int) error {
	tok := tokens[i]
	kind := tok.Directive

	switch kind {
	case DirYear:
		sign := c.consumeSign()
		digits, err := c.consumeDigits(capFor(kind, isTailPosition(tokens, i)))
		if err != nil {
			return err
		}
		n, _ := strconv.Atoi(digits)
		p.year, p.yearSet, p.yearTwoDigit = n*sign, true, false

	case DirCentury:
		digits, err := c.consumeDigits(capFor(kind, isTailPosition(tokens, i)))
		if err != nil {
			return err
		}
		n, _ := strconv.Atoi(digits)
		p.century, p.centurySet = n, true

	case DirYearNoCentury:
		digits, err := c.consumeDigits(maxDigitsFor(kind))
		if err != nil {
			return err
		}
		n, _ := strconv.Atoi(digits)
		if n < 0 || n > 99 {
			return c.fail("year-without-century %d out of range", n)
		}
		p.year, p.yearSet, p.yearTwoDigit = n, true, true

	case DirMonth:
		digits, err := c.consumeDigits(maxDigitsFor(kind))
		if err != nil {
			return err
		}
		n, _ := strconv.Atoi(digits)
		if n < 1 || n > 12 {
			return c.fail("month %d out of range", n)
		}
		p.month, p.monthSet = n, true

	case DirMonthNameFull, DirMonthNameAbbr:
		m, ok := c.matchMonthName()
		if !ok {
			return c.fail("expected a month name")
		}
		p.month, p.monthSet = int(m), true

	case DirDayOfMonth:
		digits, err := c.consumeDigits(maxDigitsFor(kind))
		if err != nil {
			return err
		}
		n, _ := strconv.Atoi(digits)
		if n < 1 || n > 31 {
			return c.fail("day of month %d out of range", n)
		}
		p.day, p.daySet = n, true

	case DirDayOfMonthBlank:
		c.skipOneSpace()
		digits, err := c.consumeDigits(maxDigitsFor(kind))
		if err != nil {
			return err
		}
		n, _ := strconv.Atoi(digits)
		if n < 1 || n > 31 {
			return c.fail("day of month %d out of range", n)
		}
		p.day, p.daySet = n, true

	case DirDayOfYear:
		digits, err := c.consumeDigits(maxDigitsFor(kind))
		if err != nil {
			return err
		}
		n, _ := strconv.Atoi(digits)
		if n < 1 || n > 365 {
			return c.fail("day of year %d out of range", n)
		}
		p.yday, p.ydaySet = n, true

	case DirHour24:
		digits, err := c.consumeDigits(maxDigitsFor(kind))
		if err != nil {
			return err
		}
		n, _ := strconv.Atoi(digits)
		if n < 0 || n > 24 {
			return c.fail("hour %d out of range", n)
		}
		p.hour, p.hourSet = n, true

	case DirHour24Blank:
		c.skipOneSpace()
		digits, err := c.consumeDigits(maxDigitsFor(kind))
		if err != nil {
			return err
		}
		n, _ := strconv.Atoi(digits)
		if n < 0 || n > 24 {
			return c.fail("hour %d out of range", n)
		}
		p.hour, p.hourSet = n, true

	case DirHour12:
		digits, err := c.consumeDigits(maxDigitsFor(kind))
		if err != nil {
			return err
		}
		n, _ := strconv.Atoi(digits)
		if n < 1 || n > 12 {
			return c.fail("hour %d out of range", n)
		}
		p.hour, p.hourSet = n, true

	case DirHour12Blank:
		c.skipOneSpace()
		digits, err := c.consumeDigits(maxDigitsFor(kind))
		if err != nil {
			return err
		}
		n, _ := strconv.Atoi(digits)
		if n < 1 || n > 12 {
			return c.fail("hour %d out of range", n)
		}
		p.hour, p.hourSet = n, true

	case DirAmPmUpper, DirAmPmLower:
		pm, ok := c.matchAmPm()
		if !ok {
			return c.fail("expected am/pm")
		}
		p.ampmSet = true
		if pm {
			p.ampmValue = 12
		} else {
			p.ampmValue = 0
		}

	case DirMinute:
		digits, err := c.consumeDigits(maxDigitsFor(kind))
		if err != nil {
			return err
		}
		n, _ := strconv.Atoi(digits)
		if n < 0 || n > 59 {
			return c.fail("minute %d out of range", n)
		}
		p.minute, p.minuteSet = n, true

	case DirSecond:
		digits, err := c.consumeDigits(maxDigitsFor(kind))
		if err != nil {
			return err
		}
		n, _ := strconv.Atoi(digits)
		if n < 0 || n > 60 {
			return c.fail("second %d out of range", n)
		}
		p.second, p.secondSet = n, true

	case DirFracMilli, DirFracNano:
		return applyFraction(c, p, tokens, i)

	case DirZoneOffset, DirZoneName:
		z, ok := c.matchZoneText()
		if !ok {
			return c.fail("expected a time zone")
		}
		p.zone, p.zoneSet = z, true

	case DirWeekdayFull, DirWeekdayAbbr:
		wd, ok := c.matchWeekdayName()
		if !ok {
			return c.fail("expected a weekday name")
		}
		p.weekdaySun0, p.weekdaySun0Set = int(wd), true

	case DirWeekdayMon1:
		digits, err := c.consumeDigits(maxDigitsFor(kind))
		if err != nil {
			return err
		}
		n, _ := strconv.Atoi(digits)
		if n < 1 || n > 7 {
			return c.fail("weekday %d out of range", n)
		}
		p.weekdayMon1, p.weekdayMon1Set = n, true

	case DirWeekdaySun0:
		digits, err := c.consumeDigits(maxDigitsFor(kind))
		if err != nil {
			return err
		}
		n, _ := strconv.Atoi(digits)
		if n < 0 || n > 6 {
			return c.fail("weekday %d out of range", n)
		}
		p.weekdaySun0, p.weekdaySun0Set = n, true

	case DirWeekBasedYear:
		sign := c.consumeSign()
		digits, err := c.consumeDigits(capFor(kind, isTailPosition(tokens, i)))
		if err != nil {
			return err
		}
		n, _ := strconv.Atoi(digits)
		p.weekYear, p.weekYearSet, p.weekYearTwoDigit = n*sign, true, false

	case DirWeekBasedYear2:
		digits, err := c.consumeDigits(maxDigitsFor(kind))
		if err != nil {
			return err
		}
		n, _ := strconv.Atoi(digits)
		if n < 0 || n > 99 {
			return c.fail("week-based year %d out of range", n)
		}
		p.weekYear, p.weekYearSet, p.weekYearTwoDigit = n, true, true

	case DirWeekOfYearISO:
		digits, err := c.consumeDigits(maxDigitsFor(kind))
		if err != nil {
			return err
		}
		n, _ := strconv.Atoi(digits)
		if n < 1 || n > 53 {
			return c.fail("week %d out of range", n)
		}
		p.weekOfWeekYear, p.weekOfWeekYearSet = n, true

	case DirWeekOfYearSun:
		digits, err := c.consumeDigits(maxDigitsFor(kind))
		if err != nil {
			return err
		}
		n, _ := strconv.Atoi(digits)
		if n < 0 || n > 53 {
			return c.fail("week %d out of range", n)
		}
		p.weekOfYearSun, p.weekOfYearSunSet = n, true

	case DirWeekOfYearMon:
		digits, err := c.consumeDigits(maxDigitsFor(kind))
		if err != nil {
			return err
		}
		n, _ := strconv.Atoi(digits)
		if n < 0 || n > 53 {
			return c.fail("week %d out of range", n)
		}
		p.weekOfYearMon, p.weekOfYearMonSet = n, true

	case DirEpochSeconds:
		sign := c.consumeSign()
		digits, err := c.consumeDigits(-1)
		if err != nil {
			return err
		}
		n, err := strconv.ParseInt(digits, 10, 64)
		if err != nil {
			return c.fail("epoch seconds overflow")
		}
		p.instantSeconds, p.instantSecondsSet = n*int64(sign), true

	case DirEpochMillis:
		sign := c.consumeSign()
		digits, err := c.consumeDigits(-1)
		if err != nil {
			return err
		}
		n, err := strconv.ParseInt(digits, 10, 64)
		if err != nil {
			return c.fail("epoch millis overflow")
		}
		p.instantMillis, p.instantMillisSet = n*int64(sign), true

	default:
		return c.fail("unsupported directive for parsing")
	}

	return nil
}

// applyFraction implements %L/%N (§4.3): a default precision (3 or 9
// digits) is read exactly when the following token is an adjacent
// numeric directive with no separator between them; otherwise any run
// of digits is accepted and scaled/truncated to nanoseconds.
func applyFraction(c *scanner, p *Parsed, tokens []Token, i int) error {
	kind := tokens[i].Directive
	defaultPrecision := 3
	if kind == DirFracNano {
		defaultPrecision = 9
	}

	sign := c.consumeSign()

	adjacent := i+1 < len(tokens) && tokens[i+1].Kind == TokDirective && isNumericDirective(tokens[i+1].Directive)

	var digits string
	var err error
	if adjacent {
		digits, err = c.consumeExactDigits(defaultPrecision)
	} else {
		digits, err = c.consumeDigits(-1)
	}
	if err != nil {
		return err
	}

	truncated := digits
	if len(truncated) > 9 {
		truncated = truncated[:9]
	}
	n, _ := strconv.Atoi(truncated)
	for d := len(truncated); d < 9; d++ {
		n *= 10
	}
	p.nsec, p.nsecSet = n*sign, true
	return nil
}

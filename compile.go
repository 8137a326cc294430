package rubytime

import (
	"fmt"
	"strconv"
)

// maxPrecision bounds a compiled width so it fits a 32-bit signed
// integer, per §4.2 ("conservatively: fit within a 32-bit signed
// integer").
const maxPrecision = 1<<31 - 1

// Compile scans a pattern string into an ordered token sequence
// (component D). The pattern is treated as a byte string (§6: "a
// pattern is a byte string, treated as ASCII for the directive
// syntax"). An unrecognized directive sequence is emitted as a literal
// '%' followed by ordinary text, mirroring Ruby's "keep going" handling
// of unknown conversions (§4.2) rather than failing to compile.
func Compile(pattern string) ([]Token, error) {
	var tokens []Token
	var lit []byte

	flush := func() {
		if len(lit) > 0 {
			tokens = append(tokens, Token{Kind: TokLiteral, Literal: string(lit)})
			lit = nil
		}
	}

	i := 0
	for i < len(pattern) {
		if pattern[i] != '%' {
			lit = append(lit, pattern[i])
			i++
			continue
		}

		next, opts, kind, expansion, ok, err := scanDirective(pattern, i+1)
		if err != nil {
			return nil, err
		}
		if !ok {
			// Unrecognized: the '%' itself becomes literal text, and
			// scanning resumes immediately after it (§4.2 "keep going").
			lit = append(lit, '%')
			i++
			continue
		}

		flush()

		if kind == DirPercent {
			tokens = append(tokens, Token{Kind: TokLiteral, Literal: "%"})
			i = next
			continue
		}

		if expansion != "" {
			sub, err := Compile(expansion)
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, sub...)
			i = next
			continue
		}

		opts.FormatterOnly = opts.Precision != 0 || opts.Padding != PadUnspecified ||
			opts.LeftAlign || opts.UpperCase || opts.SwapCase || opts.Colons > 3

		tokens = append(tokens, Token{Kind: TokDirective, Directive: kind, Options: opts})
		i = next
	}

	flush()
	return tokens, nil
}

// scanDirective attempts to parse one directive starting right after a
// '%' at pattern[start:]. It returns the index just past the consumed
// conversion character, the compiled options, the resolved kind, the
// recurred expansion template (non-empty iff the directive is
// recurred), and ok=false if no valid directive could be parsed (in
// which case the caller falls back to literal '%' handling).
func scanDirective(pattern string, start int) (next int, opts Options, kind DirectiveKind, expansion string, ok bool, err error) {
	i := start

	for i < len(pattern) {
		c := pattern[i]
		switch {
		case c == '-':
			opts.LeftAlign = true
			i++
		case c == '^':
			opts.UpperCase = true
			i++
		case c == '#':
			opts.SwapCase = true
			i++
		case c == '_':
			opts.Padding = PadSpace
			i++
		case c >= '0' && c <= '9':
			j := i
			for j < len(pattern) && pattern[j] >= '0' && pattern[j] <= '9' {
				j++
			}
			digits := pattern[i:j]
			if digits[0] == '0' {
				opts.Padding = PadZero
			}
			n, convErr := strconv.Atoi(digits)
			if convErr != nil || n > maxPrecision {
				return 0, Options{}, 0, "", false, fmt.Errorf("rubytime: compile: width %q exceeds maximum precision", digits)
			}
			opts.Precision = n
			i = j
		case c == ':':
			j := i
			for j < len(pattern) && pattern[j] == ':' {
				j++
			}
			opts.Colons = j - i
			i = j
		case c == 'E':
			opts.Localized = true
			i++
		case c == 'O':
			opts.OtherNumeric = true
			i++
		default:
			goto conversion
		}
	}

conversion:
	if i >= len(pattern) {
		return 0, Options{}, 0, "", false, nil
	}

	info, known := directiveTable[pattern[i]]
	if !known {
		return 0, Options{}, 0, "", false, nil
	}

	if info.recurred {
		return i + 1, Options{}, DirNone, info.expansion, true, nil
	}
	return i + 1, opts, info.kind, "", true, nil
}

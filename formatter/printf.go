package formatter

import (
	"bytes"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// Printf is the streaming printf engine. The zero value appends a line
// terminator to every message.
//
// Supported directives are those of fmt with flags, width and precision
// given as literal digits. Argument indexes ("%[1]d") and '*' widths are
// rejected with ErrBadVerb.
type Printf struct {
	// OmitNewline disables the line terminator appended to every message
	OmitNewline bool
}

// Format implements Formatter.
func (p Printf) Format(w Writer, format string, args []any) error {
	var scratch [64]byte
	argNum := 0
	end := len(format)
	for i := 0; i < end; {
		lasti := i
		for i < end && format[i] != '%' {
			i++
		}
		if i > lasti {
			if _, err := w.WriteString(format[lasti:i]); err != nil {
				return err
			}
		}
		if i >= end {
			break
		}

		start := i
		i++
		plain := true
	flags:
		for ; i < end; i++ {
			switch format[i] {
			case '+', '-', '#', ' ', '0':
				plain = false
			default:
				break flags
			}
		}
		for ; i < end && isDigit(format[i]); i++ {
			plain = false
		}
		if i < end && format[i] == '.' {
			plain = false
			for i++; i < end && isDigit(format[i]); i++ {
			}
		}
		if i >= end {
			return errors.Wrapf(ErrBadVerb, "truncated directive at offset %d", start)
		}

		verb, size := utf8.DecodeRuneInString(format[i:])
		i += size
		switch verb {
		case '%':
			if err := w.WriteByte('%'); err != nil {
				return err
			}
			continue
		case '*', '[':
			return errors.Wrapf(ErrBadVerb, "unsupported %q at offset %d", verb, start)
		}

		if argNum >= len(args) {
			return errors.Wrapf(ErrMissingArgument, "%s at offset %d", format[start:i], start)
		}
		arg := args[argNum]
		argNum++

		if plain {
			if out, ok := appendFast(scratch[:0], verb, arg); ok {
				if _, err := w.Write(out); err != nil {
					return err
				}
				continue
			}
		}

		directive := format[start:i]
		arg, err := resolveMethod(verb, directive, arg)
		if err != nil {
			return errors.Wrapf(ErrBadArgument, "%s at offset %d: %v", directive, start, err)
		}
		out := fmt.Appendf(scratch[:0], directive, arg)
		if mismatched(out, verb, arg) {
			return errors.Wrapf(ErrBadArgument, "%s with %T at offset %d", directive, arg, start)
		}
		if _, err := w.Write(out); err != nil {
			return err
		}
	}

	if argNum < len(args) {
		return errors.Wrapf(ErrExtraArgument, "%d unused", len(args)-argNum)
	}
	if p.OmitNewline {
		return nil
	}
	return w.WriteByte('\n')
}

// appendFast renders the common verb/type pairs without going through
// fmt. It reports false when fmt has to handle the directive.
func appendFast(dst []byte, verb rune, arg any) ([]byte, bool) {
	switch verb {
	case 'd', 'v':
		if n, ok := asInt64(arg); ok {
			return strconv.AppendInt(dst, n, 10), true
		}
		if n, ok := asUint64(arg); ok {
			return strconv.AppendUint(dst, n, 10), true
		}
		if verb == 'd' {
			return dst, false
		}
		switch v := arg.(type) {
		case string:
			return append(dst, v...), true
		case bool:
			return strconv.AppendBool(dst, v), true
		}
	case 's':
		switch v := arg.(type) {
		case string:
			return append(dst, v...), true
		case []byte:
			return append(dst, v...), true
		}
	case 'c':
		if n, ok := asInt64(arg); ok {
			return utf8.AppendRune(dst, toRune(n)), true
		}
		if n, ok := asUint64(arg); ok {
			if n > utf8.MaxRune {
				return utf8.AppendRune(dst, utf8.RuneError), true
			}
			return utf8.AppendRune(dst, rune(n)), true
		}
	case 'x':
		if n, ok := asInt64(arg); ok {
			return strconv.AppendInt(dst, n, 16), true
		}
		if n, ok := asUint64(arg); ok {
			return strconv.AppendUint(dst, n, 16), true
		}
	case 'q':
		if v, ok := arg.(string); ok {
			return strconv.AppendQuote(dst, v), true
		}
	case 't':
		if v, ok := arg.(bool); ok {
			return strconv.AppendBool(dst, v), true
		}
	}
	return dst, false
}

// toRune maps values outside the Unicode range to U+FFFD like fmt does.
func toRune(n int64) rune {
	if n < 0 || n > utf8.MaxRune {
		return utf8.RuneError
	}
	return rune(n)
}

// resolveMethod calls Error or String the way fmt would for verb and
// returns the result as a plain string, so the text a method produces is
// never mistaken for a mismatch marker. A panicking method is reported
// as an error; a nil pointer receiver renders as "<nil>".
func resolveMethod(verb rune, directive string, arg any) (resolved any, err error) {
	switch verb {
	case 'v', 's', 'q', 'x', 'X':
	default:
		return arg, nil
	}
	if _, ok := arg.(fmt.Formatter); ok {
		return arg, nil
	}
	if verb == 'v' && strings.Contains(directive, "#") {
		return arg, nil
	}

	var call func() string
	switch v := arg.(type) {
	case error:
		call = v.Error
	case fmt.Stringer:
		call = v.String
	default:
		return arg, nil
	}

	defer func() {
		if r := recover(); r != nil {
			if v := reflect.ValueOf(arg); v.Kind() == reflect.Pointer && v.IsNil() {
				resolved, err = "<nil>", nil
				return
			}
			resolved, err = nil, fmt.Errorf("%T method panicked: %v", arg, r)
		}
	}()
	return call(), nil
}

// mismatched reports whether out is fmt's rendering of a verb that does
// not fit arg: "%!verb(type=value)", or "%!verb(<nil>)" for nil. Output
// of fmt.Formatter and %#v GoStringer values is taken as is.
func mismatched(out []byte, verb rune, arg any) bool {
	if len(out) < 2 || out[0] != '%' || out[1] != '!' {
		return false
	}
	rest := out[2:]
	r, size := utf8.DecodeRune(rest)
	if r != verb {
		return false
	}
	rest = rest[size:]

	if arg == nil {
		return bytes.HasPrefix(rest, nilMismatch)
	}
	if _, ok := arg.(fmt.Formatter); ok {
		return false
	}
	if len(rest) == 0 || rest[0] != '(' {
		return false
	}
	rest = rest[1:]
	typ := reflect.TypeOf(arg).String()
	return len(rest) > len(typ) && string(rest[:len(typ)]) == typ && rest[len(typ)] == '='
}

var nilMismatch = []byte("(<nil>)")

func asInt64(arg any) (int64, bool) {
	switch v := arg.(type) {
	case int:
		return int64(v), true
	case int8:
		return int64(v), true
	case int16:
		return int64(v), true
	case int32:
		return int64(v), true
	case int64:
		return v, true
	}
	return 0, false
}

func asUint64(arg any) (uint64, bool) {
	switch v := arg.(type) {
	case uint:
		return uint64(v), true
	case uint8:
		return uint64(v), true
	case uint16:
		return uint64(v), true
	case uint32:
		return uint64(v), true
	case uint64:
		return v, true
	case uintptr:
		return uint64(v), true
	}
	return 0, false
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

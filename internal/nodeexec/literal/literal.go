// Package literal parses the structured values printed by the wallet tool.
//
// The accepted syntax is a superset of JSON that covers both JSON.stringify
// output and Node's object inspection format:
//
//   - null, true and false, plus their None, True, False and undefined spellings
//   - double- or single-quoted strings with JSON escapes
//   - bare identifier object keys
//   - trailing commas in objects and arrays
//
// Values decode to map[string]any, []any, string, int64 (integral literals
// that fit), float64, bool or nil. Parsing never evaluates its input.
package literal

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

// SyntaxError describes malformed input and the byte offset where parsing stopped.
type SyntaxError struct {
	Offset int
	Msg    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("literal: %s at offset %d", e.Msg, e.Offset)
}

// maxDepth bounds nesting so hostile input cannot exhaust the stack.
const maxDepth = 512

var words = map[string]any{
	"null":      nil,
	"None":      nil,
	"undefined": nil,
	"true":      true,
	"True":      true,
	"false":     false,
	"False":     false,
}

type parser struct {
	src   string
	pos   int
	depth int
}

// Parse decodes exactly one value from src. Surrounding whitespace is
// ignored; anything else after the value is an error.
func Parse(src string) (any, error) {
	p := &parser{src: src}

	p.skipSpace()
	if p.eof() {
		return nil, p.errorf("empty input")
	}

	v, err := p.value()
	if err != nil {
		return nil, err
	}

	p.skipSpace()
	if !p.eof() {
		return nil, p.errorf("unexpected %q after value", p.src[p.pos])
	}

	return v, nil
}

func (p *parser) eof() bool {
	return p.pos >= len(p.src)
}

func (p *parser) peek() byte {
	return p.src[p.pos]
}

func (p *parser) errorf(format string, args ...any) error {
	return &SyntaxError{Offset: p.pos, Msg: fmt.Sprintf(format, args...)}
}

func (p *parser) skipSpace() {
	for !p.eof() {
		switch p.peek() {
		case ' ', '\t', '\n', '\r':
			p.pos++
		default:
			return
		}
	}
}

func (p *parser) value() (any, error) {
	if p.eof() {
		return nil, p.errorf("unexpected end of input")
	}

	switch c := p.peek(); {
	case c == '{':
		return p.object()
	case c == '[':
		return p.array()
	case c == '"' || c == '\'':
		return p.quoted()
	case c == '-' || isDigit(c):
		return p.number()
	case isIdentStart(c):
		start := p.pos
		word := p.ident()
		if v, ok := words[word]; ok {
			return v, nil
		}
		p.pos = start
		return nil, p.errorf("unknown token %q", word)
	default:
		return nil, p.errorf("unexpected %q", c)
	}
}

func (p *parser) enter() error {
	p.depth++
	if p.depth > maxDepth {
		return p.errorf("nesting deeper than %d", maxDepth)
	}
	return nil
}

func (p *parser) object() (any, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer func() { p.depth-- }()

	p.pos++ // {
	obj := make(map[string]any)

	for {
		p.skipSpace()
		if p.eof() {
			return nil, p.errorf("unterminated object")
		}
		if p.peek() == '}' {
			p.pos++
			return obj, nil
		}

		key, err := p.key()
		if err != nil {
			return nil, err
		}

		p.skipSpace()
		if p.eof() || p.peek() != ':' {
			return nil, p.errorf("expected ':' after object key %q", key)
		}
		p.pos++

		p.skipSpace()
		v, err := p.value()
		if err != nil {
			return nil, err
		}
		obj[key] = v

		if err := p.separator('}'); err != nil {
			return nil, err
		}
	}
}

func (p *parser) key() (string, error) {
	switch c := p.peek(); {
	case c == '"' || c == '\'':
		return p.quoted()
	case isIdentStart(c):
		return p.ident(), nil
	default:
		return "", p.errorf("expected object key, found %q", c)
	}
}

func (p *parser) array() (any, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer func() { p.depth-- }()

	p.pos++ // [
	arr := make([]any, 0)

	for {
		p.skipSpace()
		if p.eof() {
			return nil, p.errorf("unterminated array")
		}
		if p.peek() == ']' {
			p.pos++
			return arr, nil
		}

		v, err := p.value()
		if err != nil {
			return nil, err
		}
		arr = append(arr, v)

		if err := p.separator(']'); err != nil {
			return nil, err
		}
	}
}

// separator consumes the ',' between elements, or leaves the closing
// delimiter in place for the caller's loop to consume.
func (p *parser) separator(closing byte) error {
	p.skipSpace()
	if p.eof() {
		return p.errorf("expected ',' or %q", closing)
	}

	switch p.peek() {
	case ',':
		p.pos++
		return nil
	case closing:
		return nil
	default:
		return p.errorf("expected ',' or %q, found %q", closing, p.peek())
	}
}

func (p *parser) ident() string {
	start := p.pos
	for !p.eof() && isIdentPart(p.peek()) {
		p.pos++
	}
	return p.src[start:p.pos]
}

func (p *parser) quoted() (string, error) {
	quote := p.peek()
	p.pos++

	var sb strings.Builder
	for {
		if p.eof() {
			return "", p.errorf("unterminated string")
		}

		c := p.peek()
		switch {
		case c == quote:
			p.pos++
			return sb.String(), nil
		case c == '\\':
			p.pos++
			if err := p.escape(&sb); err != nil {
				return "", err
			}
		case c < 0x20:
			return "", p.errorf("control character in string")
		default:
			r, size := utf8.DecodeRuneInString(p.src[p.pos:])
			sb.WriteRune(r)
			p.pos += size
		}
	}
}

func (p *parser) escape(sb *strings.Builder) error {
	if p.eof() {
		return p.errorf("unterminated escape")
	}

	c := p.peek()
	p.pos++

	switch c {
	case '"', '\'', '\\', '/':
		sb.WriteByte(c)
	case 'b':
		sb.WriteByte('\b')
	case 'f':
		sb.WriteByte('\f')
	case 'n':
		sb.WriteByte('\n')
	case 'r':
		sb.WriteByte('\r')
	case 't':
		sb.WriteByte('\t')
	case 'u':
		r, err := p.hex4()
		if err != nil {
			return err
		}

		if utf16.IsSurrogate(r) && strings.HasPrefix(p.src[p.pos:], `\u`) {
			save := p.pos
			p.pos += 2
			r2, err := p.hex4()
			if err != nil {
				return err
			}
			if dec := utf16.DecodeRune(r, r2); dec != utf8.RuneError {
				sb.WriteRune(dec)
				return nil
			}
			p.pos = save
		}
		sb.WriteRune(r)
	default:
		p.pos--
		return p.errorf("invalid escape %q", c)
	}

	return nil
}

func (p *parser) hex4() (rune, error) {
	if p.pos+4 > len(p.src) {
		return 0, p.errorf("short unicode escape")
	}

	n, err := strconv.ParseUint(p.src[p.pos:p.pos+4], 16, 32)
	if err != nil {
		return 0, p.errorf("invalid unicode escape")
	}

	p.pos += 4
	return rune(n), nil
}

func (p *parser) number() (any, error) {
	start := p.pos
	integral := true

	if p.peek() == '-' {
		p.pos++
	}
	if !p.digits() {
		return nil, p.errorf("invalid number")
	}

	if !p.eof() && p.peek() == '.' {
		integral = false
		p.pos++
		if !p.digits() {
			return nil, p.errorf("invalid number")
		}
	}

	if !p.eof() && (p.peek() == 'e' || p.peek() == 'E') {
		integral = false
		p.pos++
		if !p.eof() && (p.peek() == '+' || p.peek() == '-') {
			p.pos++
		}
		if !p.digits() {
			return nil, p.errorf("invalid number")
		}
	}

	text := p.src[start:p.pos]
	if integral {
		if n, err := strconv.ParseInt(text, 10, 64); err == nil {
			return n, nil
		}
	}

	f, err := strconv.ParseFloat(text, 64)
	if err != nil && !isRangeErr(err) {
		return nil, &SyntaxError{Offset: start, Msg: "invalid number " + strconv.Quote(text)}
	}

	return f, nil
}

// digits consumes one or more decimal digits and reports whether any were found.
func (p *parser) digits() bool {
	start := p.pos
	for !p.eof() && isDigit(p.peek()) {
		p.pos++
	}
	return p.pos > start
}

func isRangeErr(err error) bool {
	ne, ok := err.(*strconv.NumError)
	return ok && ne.Err == strconv.ErrRange
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isIdentStart(c byte) bool {
	return c == '_' || c == '$' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || isDigit(c)
}

// finite reports whether f is neither infinite nor NaN.
func finite(f float64) bool {
	return !math.IsInf(f, 0) && !math.IsNaN(f)
}

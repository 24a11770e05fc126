package resource

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ParseStrings reads an Apple .strings table:
//
//	/* Title of the chat list */
//	"Chat.Title" = "Chats";
//	// unquoted keys are accepted too
//	Chat.Search = "Search";
//
// Values support the \n \t \r \" \' \\ and \UXXXX escapes. A later entry
// with the same key replaces the earlier one.
func ParseStrings(r io.Reader) (map[string]string, error) {
	// BOMOverride switches to UTF-16 when the input starts with its byte
	// order mark and strips a UTF-8 one.
	src, err := io.ReadAll(transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder())))
	if err != nil {
		return nil, fmt.Errorf("failed to read strings table: %w", err)
	}

	p := &stringsParser{src: string(src), line: 1}
	entries := make(map[string]string)
	for {
		if err := p.skipSpace(); err != nil {
			return nil, err
		}
		if p.eof() {
			return entries, nil
		}

		key, err := p.token()
		if err != nil {
			return nil, err
		}
		if err := p.expect('='); err != nil {
			return nil, err
		}
		value, err := p.token()
		if err != nil {
			return nil, err
		}
		if err := p.expect(';'); err != nil {
			return nil, err
		}
		entries[key] = value
	}
}

type stringsParser struct {
	src  string
	pos  int
	line int
}

func (p *stringsParser) eof() bool {
	return p.pos >= len(p.src)
}

func (p *stringsParser) errorf(format string, args ...any) error {
	return &SyntaxError{Line: p.line, Msg: fmt.Sprintf(format, args...)}
}

// skipSpace skips whitespace and comments.
func (p *stringsParser) skipSpace() error {
	for !p.eof() {
		c := p.src[p.pos]
		switch {
		case c == '\n':
			p.line++
			p.pos++
		case c == ' ' || c == '\t' || c == '\r':
			p.pos++
		case strings.HasPrefix(p.src[p.pos:], "//"):
			end := strings.IndexByte(p.src[p.pos:], '\n')
			if end < 0 {
				p.pos = len(p.src)
				return nil
			}
			p.pos += end
		case strings.HasPrefix(p.src[p.pos:], "/*"):
			start := p.line
			end := strings.Index(p.src[p.pos+2:], "*/")
			if end < 0 {
				return &SyntaxError{Line: start, Msg: "unterminated comment"}
			}
			p.line += strings.Count(p.src[p.pos:p.pos+2+end], "\n")
			p.pos += end + 4
		default:
			return nil
		}
	}
	return nil
}

func (p *stringsParser) expect(c byte) error {
	if err := p.skipSpace(); err != nil {
		return err
	}
	if p.eof() {
		return p.errorf("expected %q, found end of input", c)
	}
	if p.src[p.pos] != c {
		r, _ := utf8.DecodeRuneInString(p.src[p.pos:])
		return p.errorf("expected %q, found %q", c, r)
	}
	p.pos++
	return nil
}

// token reads a quoted string or a bare word.
func (p *stringsParser) token() (string, error) {
	if err := p.skipSpace(); err != nil {
		return "", err
	}
	if p.eof() {
		return "", p.errorf("unexpected end of input")
	}
	if p.src[p.pos] == '"' {
		return p.quoted()
	}

	start := p.pos
	for !p.eof() && isBareChar(p.src[p.pos]) {
		p.pos++
	}
	if p.pos == start {
		r, _ := utf8.DecodeRuneInString(p.src[p.pos:])
		return "", p.errorf("unexpected %q", r)
	}
	return p.src[start:p.pos], nil
}

func (p *stringsParser) quoted() (string, error) {
	start := p.line
	p.pos++

	var b strings.Builder
	for !p.eof() {
		c := p.src[p.pos]
		switch c {
		case '"':
			p.pos++
			return b.String(), nil
		case '\n':
			p.line++
		case '\\':
			if err := p.escape(&b); err != nil {
				return "", err
			}
			continue
		}
		b.WriteByte(c)
		p.pos++
	}
	return "", &SyntaxError{Line: start, Msg: "unterminated string"}
}

// escape decodes the escape sequence at p.pos into b.
func (p *stringsParser) escape(b *strings.Builder) error {
	if p.pos+1 >= len(p.src) {
		return p.errorf("unterminated escape")
	}
	c := p.src[p.pos+1]
	p.pos += 2

	switch c {
	case 'n':
		b.WriteByte('\n')
	case 't':
		b.WriteByte('\t')
	case 'r':
		b.WriteByte('\r')
	case '"', '\'', '\\':
		b.WriteByte(c)
	case 'U', 'u':
		r, err := p.unicodeEscape()
		if err != nil {
			return err
		}
		b.WriteRune(r)
	case '\n':
		p.line++
		b.WriteByte('\n')
	default:
		b.WriteByte('\\')
		b.WriteByte(c)
	}
	return nil
}

// unicodeEscape reads the four hex digits of a \U escape. A high surrogate
// must be followed by a \U escape holding its low surrogate.
func (p *stringsParser) unicodeEscape() (rune, error) {
	r, err := p.hex4()
	if err != nil {
		return 0, err
	}
	if !utf16.IsSurrogate(r) {
		return r, nil
	}

	if p.pos+2 > len(p.src) || p.src[p.pos] != '\\' || (p.src[p.pos+1] != 'U' && p.src[p.pos+1] != 'u') {
		return 0, p.errorf("unpaired surrogate \\U%04X", r)
	}
	p.pos += 2
	low, err := p.hex4()
	if err != nil {
		return 0, err
	}
	pair := utf16.DecodeRune(r, low)
	if pair == utf8.RuneError {
		return 0, p.errorf("invalid surrogate pair \\U%04X\\U%04X", r, low)
	}
	return pair, nil
}

func (p *stringsParser) hex4() (rune, error) {
	if p.pos+4 > len(p.src) {
		return 0, p.errorf("short unicode escape")
	}
	v, err := strconv.ParseUint(p.src[p.pos:p.pos+4], 16, 16)
	if err != nil {
		return 0, p.errorf("invalid unicode escape %q", p.src[p.pos:p.pos+4])
	}
	p.pos += 4
	return rune(v), nil
}

func isBareChar(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	}
	return strings.IndexByte("_.$:/-", c) >= 0
}

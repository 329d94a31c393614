// Package scanner tokenizes the JavaScript subset understood by ifexpr.
// It tracks string, template, regular expression and comment boundaries
// plus escape sequences, so the parser only ever sees whole tokens and
// never has to re-implement quoting rules.
package scanner

import (
	"bytes"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Kind classifies a token.
type Kind int

const (
	EOF      Kind = iota
	Ident         // identifiers and keywords
	Number        // numeric literal, including bigint suffix
	String        // '...' or "..."
	Template      // `...`, interpolations included
	RegExp        // /pattern/flags
	Punct         // operators and punctuation
)

func (k Kind) String() string {
	switch k {
	case EOF:
		return "end of file"
	case Ident:
		return "identifier"
	case Number:
		return "number"
	case String:
		return "string"
	case Template:
		return "template"
	case RegExp:
		return "regular expression"
	case Punct:
		return "punctuation"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Token is one lexical token. Start and End are byte offsets into the
// source; NewlineBefore is set when a line break (in whitespace or a
// comment) separates the token from the previous one.
type Token struct {
	Kind          Kind
	Text          string
	Start         int
	End           int
	NewlineBefore bool
}

// Is reports whether the token is punctuation or an identifier spelled text.
func (t Token) Is(text string) bool {
	return (t.Kind == Punct || t.Kind == Ident) && t.Text == text
}

// Error is a lexical error at a byte offset.
type Error struct {
	Offset int
	Msg    string
}

func (e *Error) Error() string { return e.Msg }

// Scanner produces tokens from a source buffer.
type Scanner struct {
	src        []byte
	pos        int
	regexOK    bool // a '/' at this point starts a regular expression
	sawNewline bool
}

// New creates a Scanner for src. A leading #! line is skipped.
func New(src []byte) *Scanner {
	s := &Scanner{src: src, regexOK: true}
	if len(src) > 1 && src[0] == '#' && src[1] == '!' {
		for s.pos < len(src) && src[s.pos] != '\n' {
			s.pos++
		}
	}
	return s
}

// Tokenize scans all of src. The returned slice always ends with an EOF token.
func Tokenize(src []byte) ([]Token, error) {
	s := New(src)
	var toks []Token
	for {
		tok, err := s.Next()
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
		if tok.Kind == EOF {
			return toks, nil
		}
	}
}

// Next returns the next token.
func (s *Scanner) Next() (Token, error) {
	s.sawNewline = false
	if err := s.skipSpace(); err != nil {
		return Token{}, err
	}
	start := s.pos
	if s.pos >= len(s.src) {
		return Token{Kind: EOF, Start: start, End: start, NewlineBefore: s.sawNewline}, nil
	}

	var kind Kind
	var err error
	ch := s.src[s.pos]
	switch {
	case ch == '"' || ch == '\'':
		kind, err = String, s.scanString(ch)
	case ch == '`':
		kind, err = Template, s.scanTemplate()
	case isDigit(ch) || (ch == '.' && s.pos+1 < len(s.src) && isDigit(s.src[s.pos+1])):
		kind = Number
		s.scanNumber()
	case ch == '/' && s.regexOK:
		kind, err = RegExp, s.scanRegExp()
	case isIdentStart(s.rune()):
		kind = Ident
		s.scanIdent()
	default:
		kind = Punct
		if !s.scanPunct() {
			r, _ := utf8.DecodeRune(s.src[s.pos:])
			return Token{}, &Error{Offset: start, Msg: fmt.Sprintf("unexpected character %q", r)}
		}
	}
	if err != nil {
		return Token{}, err
	}

	tok := Token{Kind: kind, Text: string(s.src[start:s.pos]), Start: start, End: s.pos, NewlineBefore: s.sawNewline}
	s.regexOK = regexAllowedAfter(tok)
	return tok, nil
}

func (s *Scanner) skipSpace() error {
	for s.pos < len(s.src) {
		ch := s.src[s.pos]
		switch {
		case ch == '\n':
			s.sawNewline = true
			s.pos++
		case ch == ' ' || ch == '\t' || ch == '\r' || ch == '\f' || ch == '\v':
			s.pos++
		case ch == '/' && s.peek(1) == '/':
			for s.pos < len(s.src) && s.src[s.pos] != '\n' {
				s.pos++
			}
		case ch == '/' && s.peek(1) == '*':
			start := s.pos
			end := strings.Index(string(s.src[s.pos+2:]), "*/")
			if end < 0 {
				return &Error{Offset: start, Msg: "unterminated block comment"}
			}
			body := s.src[s.pos : s.pos+2+end+2]
			if strings.ContainsRune(string(body), '\n') {
				s.sawNewline = true
			}
			s.pos += len(body)
		case ch >= utf8.RuneSelf:
			r, size := utf8.DecodeRune(s.src[s.pos:])
			if r == '\u2028' || r == '\u2029' {
				s.sawNewline = true
			} else if !unicode.IsSpace(r) && r != '\ufeff' {
				return nil
			}
			s.pos += size
		default:
			return nil
		}
	}
	return nil
}

func (s *Scanner) peek(n int) byte {
	if s.pos+n < len(s.src) {
		return s.src[s.pos+n]
	}
	return 0
}

func (s *Scanner) rune() rune {
	r, _ := utf8.DecodeRune(s.src[s.pos:])
	return r
}

// scanString consumes a quoted string starting at the opening quote.
func (s *Scanner) scanString(quote byte) error {
	start := s.pos
	s.pos++
	for s.pos < len(s.src) {
		ch := s.src[s.pos]
		switch ch {
		case '\\':
			s.pos += 2
			continue
		case '\n':
			return &Error{Offset: start, Msg: "unterminated string literal"}
		case quote:
			s.pos++
			return nil
		}
		s.pos++
	}
	return &Error{Offset: start, Msg: "unterminated string literal"}
}

// scanTemplate consumes a template literal, including nested
// interpolations, starting at the opening backtick.
func (s *Scanner) scanTemplate() error {
	start := s.pos
	s.pos++
	for s.pos < len(s.src) {
		ch := s.src[s.pos]
		switch {
		case ch == '\\':
			s.pos += 2
		case ch == '`':
			s.pos++
			return nil
		case ch == '$' && s.peek(1) == '{':
			s.pos += 2
			if err := s.skipInterpolation(); err != nil {
				return err
			}
		default:
			s.pos++
		}
	}
	return &Error{Offset: start, Msg: "unterminated template literal"}
}

// skipInterpolation advances past the closing brace of a ${...} block.
func (s *Scanner) skipInterpolation() error {
	start := s.pos
	depth := 0
	newline := s.sawNewline
	defer func() { s.sawNewline = newline }()
	for s.pos < len(s.src) {
		ch := s.src[s.pos]
		switch {
		case ch == '"' || ch == '\'':
			if err := s.scanString(ch); err != nil {
				return err
			}
			continue
		case ch == '`':
			if err := s.scanTemplate(); err != nil {
				return err
			}
			continue
		case ch == '/' && (s.peek(1) == '/' || s.peek(1) == '*'):
			if err := s.skipSpace(); err != nil {
				return err
			}
			continue
		case IsOpenBracket(ch):
			depth++
		case IsCloseBracket(ch):
			if ch == '}' && depth == 0 {
				s.pos++
				return nil
			}
			depth--
		}
		s.pos++
	}
	return &Error{Offset: start, Msg: "unterminated template interpolation"}
}

// Interpolations returns the expression text of each ${...} in the
// template literal raw, as [start, end) offsets into raw that exclude the
// braces. Templates nested inside an interpolation are part of its extent.
func Interpolations(raw []byte) ([][2]int, error) {
	if len(raw) == 0 || raw[0] != '`' {
		return nil, &Error{Offset: 0, Msg: "not a template literal"}
	}
	s := &Scanner{src: raw, pos: 1}
	var out [][2]int
	for s.pos < len(s.src) {
		ch := s.src[s.pos]
		switch {
		case ch == '\\':
			s.pos += 2
		case ch == '`':
			return out, nil
		case ch == '$' && s.peek(1) == '{':
			s.pos += 2
			start := s.pos
			if err := s.skipInterpolation(); err != nil {
				return nil, err
			}
			out = append(out, [2]int{start, s.pos - 1})
		default:
			s.pos++
		}
	}
	return nil, &Error{Offset: 0, Msg: "unterminated template literal"}
}

// scanRegExp consumes /pattern/flags. Slashes inside character classes
// do not terminate the pattern.
func (s *Scanner) scanRegExp() error {
	start := s.pos
	s.pos++
	inClass := false
	for s.pos < len(s.src) {
		ch := s.src[s.pos]
		switch {
		case ch == '\\':
			s.pos += 2
			continue
		case ch == '\n':
			return &Error{Offset: start, Msg: "unterminated regular expression"}
		case ch == '[':
			inClass = true
		case ch == ']':
			inClass = false
		case ch == '/' && !inClass:
			s.pos++
			for s.pos < len(s.src) && isIdentPart(s.rune()) {
				s.pos++
			}
			return nil
		}
		s.pos++
	}
	return &Error{Offset: start, Msg: "unterminated regular expression"}
}

func (s *Scanner) scanNumber() {
	if s.src[s.pos] == '0' && strings.ContainsRune("xXbBoO", rune(s.peek(1))) {
		s.pos += 2
		for s.pos < len(s.src) && (isHexDigit(s.src[s.pos]) || s.src[s.pos] == '_') {
			s.pos++
		}
	} else {
		s.digits()
		if s.pos < len(s.src) && s.src[s.pos] == '.' {
			s.pos++
			s.digits()
		}
		if s.pos < len(s.src) && (s.src[s.pos] == 'e' || s.src[s.pos] == 'E') {
			s.pos++
			if s.pos < len(s.src) && (s.src[s.pos] == '+' || s.src[s.pos] == '-') {
				s.pos++
			}
			s.digits()
		}
	}
	if s.pos < len(s.src) && s.src[s.pos] == 'n' {
		s.pos++
	}
}

func (s *Scanner) digits() {
	for s.pos < len(s.src) && (isDigit(s.src[s.pos]) || s.src[s.pos] == '_') {
		s.pos++
	}
}

func (s *Scanner) scanIdent() {
	for s.pos < len(s.src) {
		r, size := utf8.DecodeRune(s.src[s.pos:])
		if !isIdentPart(r) {
			return
		}
		s.pos += size
	}
}

// puncts is ordered longest first so the first prefix match wins.
var puncts = []string{
	">>>=",
	"...", "===", "!==", "**=", "<<=", ">>=", ">>>", "&&=", "||=", "??=",
	"=>", "==", "!=", "<=", ">=", "&&", "||", "??", "?.", "++", "--",
	"+=", "-=", "*=", "/=", "%=", "&=", "|=", "^=", "**", "<<", ">>",
	"{", "}", "(", ")", "[", "]", ";", ",", "<", ">", "+", "-", "*", "/",
	"%", "&", "|", "^", "!", "~", "?", ":", "=", ".", "@", "#",
}

func (s *Scanner) scanPunct() bool {
	rest := s.src[s.pos:]
	for _, p := range puncts {
		if !bytes.HasPrefix(rest, []byte(p)) {
			continue
		}
		// a?.5:b is a conditional, not optional chaining.
		if p == "?." && len(rest) > 2 && isDigit(rest[2]) {
			continue
		}
		s.pos += len(p)
		return true
	}
	return false
}

// regexKeywords are the identifiers after which a slash begins a
// regular expression rather than a division.
var regexKeywords = map[string]bool{
	"return": true, "typeof": true, "instanceof": true, "in": true, "of": true,
	"new": true, "delete": true, "void": true, "throw": true, "case": true,
	"do": true, "else": true, "await": true, "yield": true,
}

func regexAllowedAfter(t Token) bool {
	switch t.Kind {
	case Ident:
		return regexKeywords[t.Text]
	case Punct:
		switch t.Text {
		case ")", "]", "++", "--":
			return false
		}
		return true
	}
	return false
}

// IsOpenBracket reports whether ch is an opening bracket/paren/brace.
func IsOpenBracket(ch byte) bool {
	return ch == '(' || ch == '[' || ch == '{'
}

// IsCloseBracket reports whether ch is a closing bracket/paren/brace.
func IsCloseBracket(ch byte) bool {
	return ch == ')' || ch == ']' || ch == '}'
}

func isDigit(ch byte) bool { return ch >= '0' && ch <= '9' }

func isHexDigit(ch byte) bool {
	return isDigit(ch) || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}

func isIdentStart(r rune) bool {
	return r == '$' || r == '_' || unicode.IsLetter(r)
}

func isIdentPart(r rune) bool {
	return isIdentStart(r) || unicode.IsDigit(r) || r == '\u200c' || r == '\u200d'
}

package parser

import (
	"unicode"
	"unicode/utf8"
)

type scanMode int

const (
	modeOutsideTag scanMode = iota
	modeAttributeName
	modeAttributeValue
)

type Scanner struct {
	input  string
	pos    int
	line   int
	column int
	mode   scanMode
}

func NewScanner(input string) *Scanner {
	return &Scanner{input: input}
}

func (s *Scanner) Position() Position {
	return Position{Line: s.line, Column: s.column}
}

func (s *Scanner) eof() bool {
	return s.pos >= len(s.input)
}

func (s *Scanner) peek() rune {
	if s.eof() {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(s.input[s.pos:])
	return r
}

func (s *Scanner) advance() rune {
	if s.eof() {
		return 0
	}
	r, size := utf8.DecodeRuneInString(s.input[s.pos:])
	s.pos += size
	if r == '\n' {
		s.line++
		s.column = 0
	} else {
		s.column++
	}
	return r
}

func (s *Scanner) skipWhitespace() {
	for !s.eof() && unicode.IsSpace(s.peek()) {
		s.advance()
	}
}

func (s *Scanner) NextToken() Token {
	switch s.mode {
	case modeAttributeName:
		return s.scanAttributeName()
	case modeAttributeValue:
		return s.scanAttributeValue()
	default:
		return s.scanOutsideTag()
	}
}

func (s *Scanner) scanOutsideTag() Token {
	if s.eof() {
		return s.pointToken(TokenEOF)
	}
	if s.peek() == '<' {
		s.advance()
		if s.peek() == '/' {
			s.advance()
			name := s.scanIdentifier(TokenTagEnd)
			if s.peek() == '>' {
				s.advance()
			}
			return name
		}
		name := s.scanIdentifier(TokenTagName)
		s.mode = modeAttributeName
		return name
	}
	start := s.Position()
	startOff := s.pos
	for !s.eof() && s.peek() != '<' {
		s.advance()
	}
	return s.token(TokenText, start, startOff)
}

func (s *Scanner) scanAttributeName() Token {
	s.skipWhitespace()
	if s.peek() == '/' {
		s.advance()
	}
	if s.peek() == '>' {
		start := s.Position()
		startOff := s.pos
		s.advance()
		s.mode = modeOutsideTag
		return s.token(TokenOpeningTagEnd, start, startOff)
	}
	name := s.scanIdentifier(TokenAttributeName)
	if name.Span.IsPoint() {
		return s.pointToken(TokenEOF)
	}
	s.mode = modeAttributeValue
	return name
}

func (s *Scanner) scanAttributeValue() Token {
	s.mode = modeAttributeName
	if s.peek() != '=' {
		return s.pointToken(TokenAttributeValue)
	}
	s.advance()
	quote := s.peek()
	if quote == '"' || quote == '\'' {
		s.advance()
		start := s.Position()
		startOff := s.pos
		for !s.eof() && s.peek() != quote {
			s.advance()
		}
		value := s.token(TokenAttributeValue, start, startOff)
		if !s.eof() {
			s.advance()
		}
		// An empty quoted value reports its position after the closing quote.
		if value.Span.IsPoint() {
			return s.pointToken(TokenAttributeValue)
		}
		return value
	}
	start := s.Position()
	startOff := s.pos
	for !s.eof() && !unicode.IsSpace(s.peek()) && s.peek() != '>' && s.peek() != '/' {
		s.advance()
	}
	return s.token(TokenAttributeValue, start, startOff)
}

func (s *Scanner) scanIdentifier(kind TokenKind) Token {
	s.skipWhitespace()
	start := s.Position()
	startOff := s.pos
	for !s.eof() && isIdentifierRune(s.peek()) {
		s.advance()
	}
	return s.token(kind, start, startOff)
}

func (s *Scanner) token(kind TokenKind, start Position, startOff int) Token {
	return Token{
		Kind:    kind,
		Span:    Span{Start: start, End: s.Position()},
		Literal: s.input[startOff:s.pos],
	}
}

func (s *Scanner) pointToken(kind TokenKind) Token {
	pos := s.Position()
	return Token{Kind: kind, Span: Span{Start: pos, End: pos}}
}

func isIdentifierRune(r rune) bool {
	return r != '=' && r != '/' && r != '>' && !unicode.IsSpace(r)
}

// Tokens drains a fresh Scanner over source and returns every token up to
// the first EOF. The input is not trimmed.
func Tokens(source string) []Token {
	scanner := NewScanner(source)
	var tokens []Token
	for {
		token := scanner.NextToken()
		if token.Kind == TokenEOF {
			return tokens
		}
		tokens = append(tokens, token)
	}
}

package svgpath

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrSyntax is the sentinel wrapped by every parse failure.
var ErrSyntax = errors.New("svgpath: syntax error")

// SyntaxError describes malformed path data.
type SyntaxError struct {
	Offset int
	Msg    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("svgpath: %s at offset %d", e.Msg, e.Offset)
}

func (e *SyntaxError) Unwrap() error {
	return ErrSyntax
}

// Parse parses SVG path data made of M, L, A and Z commands in either
// case. Implicit repetition of a command is accepted; an implicit
// repetition of a move is a line, as in SVG.
func Parse(d string) (*Path, error) {
	s := &scanner{src: d}
	p := New()
	var verb byte

	for {
		s.skipSeparators()
		if s.eof() {
			return p, nil
		}
		start := s.pos
		if c := s.src[s.pos]; isVerb(c) {
			verb = c
			s.pos++
		} else if !isNumberStart(c) {
			return nil, &SyntaxError{Offset: s.pos, Msg: fmt.Sprintf("unexpected character %q", c)}
		} else if verb == 0 || verb == 'z' || verb == 'Z' {
			return nil, &SyntaxError{Offset: s.pos, Msg: "number without command"}
		}

		switch verb {
		case 'z', 'Z':
			p.Close()
		case 'M', 'm', 'L', 'l':
			x, err := s.number()
			if err != nil {
				return nil, err
			}
			y, err := s.number()
			if err != nil {
				return nil, err
			}
			implicit := !isVerb(s.src[start])
			switch {
			case verb == 'M' && !implicit:
				p.MoveTo(x, y)
			case verb == 'm' && !implicit:
				p.MoveBy(x, y)
			case verb == 'M' || verb == 'L':
				p.LineTo(x, y)
			default:
				p.LineBy(x, y)
			}
		case 'A', 'a':
			var v [5]float64
			for i := range 3 {
				n, err := s.number()
				if err != nil {
					return nil, err
				}
				v[i] = n
			}
			large, err := s.flag()
			if err != nil {
				return nil, err
			}
			sweep, err := s.flag()
			if err != nil {
				return nil, err
			}
			for i := 3; i < 5; i++ {
				n, err := s.number()
				if err != nil {
					return nil, err
				}
				v[i] = n
			}
			if verb == 'A' {
				p.ArcTo(v[0], v[1], v[2], large, sweep, v[3], v[4])
			} else {
				p.ArcBy(v[0], v[1], v[2], large, sweep, v[3], v[4])
			}
		default:
			return nil, &SyntaxError{Offset: start, Msg: fmt.Sprintf("unsupported command %q", verb)}
		}
	}
}

// MustParse is like Parse but panics on malformed input.
// It is intended for constant path data in tests and tables.
func MustParse(d string) *Path {
	p, err := Parse(d)
	if err != nil {
		panic(err)
	}
	return p
}

type scanner struct {
	src string
	pos int
}

func (s *scanner) eof() bool { return s.pos >= len(s.src) }

func (s *scanner) skipSeparators() {
	for !s.eof() {
		switch s.src[s.pos] {
		case ' ', '\t', '\n', '\r', '\f', ',':
			s.pos++
		default:
			return
		}
	}
}

func (s *scanner) number() (float64, error) {
	s.skipSeparators()
	start := s.pos
	if !s.eof() && (s.src[s.pos] == '+' || s.src[s.pos] == '-') {
		s.pos++
	}
	digits := false
	dot := false
mantissa:
	for !s.eof() {
		c := s.src[s.pos]
		switch {
		case c >= '0' && c <= '9':
			digits = true
		case c == '.' && !dot:
			dot = true
		default:
			break mantissa
		}
		s.pos++
	}
	if digits && !s.eof() && (s.src[s.pos] == 'e' || s.src[s.pos] == 'E') {
		s.pos++
		if !s.eof() && (s.src[s.pos] == '+' || s.src[s.pos] == '-') {
			s.pos++
		}
		for !s.eof() && s.src[s.pos] >= '0' && s.src[s.pos] <= '9' {
			s.pos++
		}
	}
	if !digits {
		return 0, &SyntaxError{Offset: start, Msg: "expected number"}
	}
	v, err := strconv.ParseFloat(s.src[start:s.pos], 64)
	if err != nil {
		return 0, &SyntaxError{Offset: start, Msg: fmt.Sprintf("bad number %q", s.src[start:s.pos])}
	}
	return v, nil
}

func (s *scanner) flag() (bool, error) {
	s.skipSeparators()
	if s.eof() {
		return false, &SyntaxError{Offset: s.pos, Msg: "expected flag"}
	}
	switch s.src[s.pos] {
	case '0':
		s.pos++
		return false, nil
	case '1':
		s.pos++
		return true, nil
	}
	return false, &SyntaxError{Offset: s.pos, Msg: "expected flag"}
}

func isVerb(c byte) bool {
	switch c {
	case 'M', 'm', 'L', 'l', 'A', 'a', 'Z', 'z', 'H', 'h', 'V', 'v', 'C', 'c', 'S', 's', 'Q', 'q', 'T', 't':
		return true
	}
	return false
}

func isNumberStart(c byte) bool {
	return (c >= '0' && c <= '9') || c == '-' || c == '+' || c == '.'
}

// core/scorefile/parse.go
package scorefile

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// ResultPrefix is the fixed filename prefix of a search-result shard
// (hmmsearch.results.0, hmmsearch.results.1, ...).
const ResultPrefix = "hmmsearch.results."

// IsResult reports whether a filename looks like a search-result shard.
func IsResult(name string) bool {
	return strings.HasPrefix(name, ResultPrefix) && len(name) > len(ResultPrefix)
}

// Parse reads a search-result file: a serialized literal mapping from query
// identifier to a tuple of numbers whose element at position 1 is the
// bit-score. Exactly that shape is accepted; anything else is an error.
// The file content is parsed, never evaluated.
func Parse(path string) (map[string]float64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	scores, err := parseLiteral(string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %v", path, err)
	}
	return scores, nil
}

// parser walks a literal like {'q1': (1.2e-10, 55.2), "q2": [3e-5, 40.0]}.
type parser struct {
	s   string
	pos int
}

func parseLiteral(s string) (map[string]float64, error) {
	p := &parser{s: s}
	p.ws()
	if !p.eat('{') {
		return nil, p.errf("expected '{'")
	}
	out := map[string]float64{}
	p.ws()
	if p.eat('}') {
		return out, p.trailing()
	}
	for {
		key, err := p.str()
		if err != nil {
			return nil, err
		}
		p.ws()
		if !p.eat(':') {
			return nil, p.errf("expected ':' after key %q", key)
		}
		score, err := p.tuple()
		if err != nil {
			return nil, fmt.Errorf("query %q: %v", key, err)
		}
		out[key] = score
		p.ws()
		if p.eat(',') {
			p.ws()
			if p.eat('}') {
				return out, p.trailing()
			}
			continue
		}
		if p.eat('}') {
			return out, p.trailing()
		}
		return nil, p.errf("expected ',' or '}'")
	}
}

// tuple consumes a (...) or [...] of numbers and returns the element at
// position 1, the bit-score.
func (p *parser) tuple() (float64, error) {
	p.ws()
	var closer byte
	switch {
	case p.eat('('):
		closer = ')'
	case p.eat('['):
		closer = ']'
	default:
		return 0, p.errf("expected tuple")
	}
	var vals []float64
	p.ws()
	if p.eat(closer) {
		return 0, p.errf("empty tuple")
	}
	for {
		v, err := p.number()
		if err != nil {
			return 0, err
		}
		vals = append(vals, v)
		p.ws()
		if p.eat(',') {
			p.ws()
			if p.eat(closer) {
				break
			}
			continue
		}
		if p.eat(closer) {
			break
		}
		return 0, p.errf("expected ',' or '%c'", closer)
	}
	if len(vals) < 2 {
		return 0, fmt.Errorf("tuple has %d element(s), bit-score at position 1 missing", len(vals))
	}
	return vals[1], nil
}

func (p *parser) str() (string, error) {
	p.ws()
	if p.pos >= len(p.s) {
		return "", p.errf("expected string key")
	}
	quote := p.s[p.pos]
	if quote != '\'' && quote != '"' {
		return "", p.errf("expected string key")
	}
	p.pos++
	var b strings.Builder
	for p.pos < len(p.s) {
		c := p.s[p.pos]
		switch c {
		case quote:
			p.pos++
			return b.String(), nil
		case '\\':
			if p.pos+1 >= len(p.s) {
				return "", p.errf("unterminated escape")
			}
			p.pos++
			b.WriteByte(p.s[p.pos])
			p.pos++
		default:
			b.WriteByte(c)
			p.pos++
		}
	}
	return "", p.errf("unterminated string")
}

func (p *parser) number() (float64, error) {
	p.ws()
	start := p.pos
	for p.pos < len(p.s) {
		c := p.s[p.pos]
		if (c >= '0' && c <= '9') || c == '+' || c == '-' || c == '.' || c == 'e' || c == 'E' {
			p.pos++
			continue
		}
		break
	}
	if start == p.pos {
		return 0, p.errf("expected number")
	}
	v, err := strconv.ParseFloat(p.s[start:p.pos], 64)
	if err != nil {
		return 0, p.errf("bad number %q", p.s[start:p.pos])
	}
	return v, nil
}

// trailing verifies nothing but whitespace follows the closing brace.
func (p *parser) trailing() error {
	p.ws()
	if p.pos != len(p.s) {
		return p.errf("trailing content after mapping")
	}
	return nil
}

func (p *parser) ws() {
	for p.pos < len(p.s) {
		switch p.s[p.pos] {
		case ' ', '\t', '\n', '\r':
			p.pos++
		default:
			return
		}
	}
}

func (p *parser) eat(c byte) bool {
	if p.pos < len(p.s) && p.s[p.pos] == c {
		p.pos++
		return true
	}
	return false
}

func (p *parser) errf(format string, args ...any) error {
	return fmt.Errorf("offset %d: %s", p.pos, fmt.Sprintf(format, args...))
}

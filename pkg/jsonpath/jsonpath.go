package jsonpath

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/arthur-debert/dictator/pkg/errors"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

type segment struct {
	key     string
	index   int
	isIndex bool
}

// Path is a parsed JSONPath expression
type Path struct {
	raw      string
	segments []segment
}

// Parse parses a JSONPath expression
func Parse(expr string) (Path, error) {
	p := Path{raw: expr}
	s := strings.TrimSpace(expr)
	if s == "" {
		return p, invalid(expr, "empty path")
	}

	i := 0
	if s[0] == '$' {
		i = 1
	} else {
		// bare leading member name: "a.b" is read as "$.a.b"
		key, next, err := readName(s, 0)
		if err != nil {
			return p, invalid(expr, err.Error())
		}
		p.segments = append(p.segments, segment{key: key})
		i = next
	}

	for i < len(s) {
		switch s[i] {
		case '.':
			if i+1 < len(s) && s[i+1] == '.' {
				return p, invalid(expr, "recursive descent is not supported")
			}
			key, next, err := readName(s, i+1)
			if err != nil {
				return p, invalid(expr, err.Error())
			}
			p.segments = append(p.segments, segment{key: key})
			i = next
		case '[':
			seg, next, err := readBracket(s, i)
			if err != nil {
				return p, invalid(expr, err.Error())
			}
			p.segments = append(p.segments, seg)
			i = next
		default:
			return p, invalid(expr, "unexpected character "+strconv.Quote(string(s[i])))
		}
	}

	return p, nil
}

// MustParse is like Parse but panics on error
func MustParse(expr string) Path {
	p, err := Parse(expr)
	if err != nil {
		panic(err)
	}
	return p
}

// Valid reports whether expr is a supported JSONPath expression
func Valid(expr string) bool {
	_, err := Parse(expr)
	return err == nil
}

func invalid(expr, reason string) error {
	return errors.Newf(errors.ErrInvalidInput, "invalid JSON path %q: %s", expr, reason).
		WithDetail("path", expr)
}

type parseError string

func (e parseError) Error() string { return string(e) }

func readName(s string, start int) (string, int, error) {
	end := start
	for end < len(s) && s[end] != '.' && s[end] != '[' {
		end++
	}
	name := s[start:end]
	if name == "" {
		return "", end, parseError("empty member name")
	}
	if name == "*" {
		return "", end, parseError("wildcards are not supported")
	}
	return name, end, nil
}

func readBracket(s string, start int) (segment, int, error) {
	i := start + 1
	if i >= len(s) {
		return segment{}, i, parseError("unterminated bracket")
	}

	if q := s[i]; q == '\'' || q == '"' {
		var b strings.Builder
		i++
		for ; i < len(s) && s[i] != q; i++ {
			if s[i] == '\\' && i+1 < len(s) {
				i++
			}
			b.WriteByte(s[i])
		}
		if i+1 >= len(s) || s[i+1] != ']' {
			return segment{}, i, parseError("unterminated quoted name")
		}
		return segment{key: b.String()}, i + 2, nil
	}

	end := strings.IndexByte(s[i:], ']')
	if end < 0 {
		return segment{}, i, parseError("unterminated bracket")
	}
	body := strings.TrimSpace(s[i : i+end])
	n, err := strconv.Atoi(body)
	if err != nil || n < 0 {
		return segment{}, i, parseError("unsupported selector [" + body + "]")
	}
	return segment{index: n, isIndex: true}, i + end + 1, nil
}

// String returns the expression as written
func (p Path) String() string {
	return p.raw
}

// IsRoot reports whether the path addresses the whole document
func (p Path) IsRoot() bool {
	return len(p.segments) == 0
}

// GJSON returns the equivalent gjson query path
func (p Path) GJSON() string {
	parts := make([]string, len(p.segments))
	for i, seg := range p.segments {
		if seg.isIndex {
			parts[i] = strconv.Itoa(seg.index)
		} else {
			parts[i] = escape(seg.key)
		}
	}
	return strings.Join(parts, ".")
}

// SJSON returns the equivalent sjson path. Quoted names that look like
// numbers are forced to object keys.
func (p Path) SJSON() string {
	parts := make([]string, len(p.segments))
	for i, seg := range p.segments {
		switch {
		case seg.isIndex:
			parts[i] = strconv.Itoa(seg.index)
		case isNumeric(seg.key):
			parts[i] = ":" + seg.key
		default:
			parts[i] = escape(seg.key)
		}
	}
	return strings.Join(parts, ".")
}

func escape(key string) string {
	var b strings.Builder
	for i := 0; i < len(key); i++ {
		c := key[i]
		if !isSafe(c) {
			b.WriteByte('\\')
		}
		b.WriteByte(c)
	}
	return b.String()
}

func isSafe(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' ||
		c == '_' || c == '-' || c >= 0x80
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// Get returns the value at the path. Numbers decode as float64, objects
// as map[string]interface{} and arrays as []interface{}, the same shapes
// encoding/json produces.
func (p Path) Get(doc []byte) (interface{}, bool, error) {
	if !gjson.ValidBytes(doc) {
		return nil, false, errors.New(errors.ErrInvalidInput, "document is not valid JSON")
	}
	if p.IsRoot() {
		var v interface{}
		if err := json.Unmarshal(doc, &v); err != nil {
			return nil, false, errors.Wrap(err, errors.ErrInvalidInput, "document is not valid JSON")
		}
		return v, true, nil
	}

	res := gjson.GetBytes(doc, p.GJSON())
	if !res.Exists() {
		return nil, false, nil
	}
	return res.Value(), true, nil
}

// IsBlank reports whether doc holds nothing but whitespace. Writers treat
// a blank document as {}.
func IsBlank(doc []byte) bool {
	return len(bytes.TrimSpace(doc)) == 0
}

// Set writes value at the path, creating intermediate objects as needed.
// A blank document is treated as {}.
func (p Path) Set(doc []byte, value interface{}) ([]byte, error) {
	if IsBlank(doc) {
		doc = []byte("{}")
	}
	if !gjson.ValidBytes(doc) {
		return nil, errors.New(errors.ErrInvalidInput, "document is not valid JSON")
	}

	if p.IsRoot() {
		out, err := json.Marshal(value)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrInvalidInput, "value is not JSON encodable")
		}
		return out, nil
	}

	out, err := sjson.SetBytes(doc, p.SJSON(), value)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput, "failed to set %s", p.raw)
	}
	return out, nil
}

// Get parses expr and reads the value at it
func Get(doc []byte, expr string) (interface{}, bool, error) {
	p, err := Parse(expr)
	if err != nil {
		return nil, false, err
	}
	return p.Get(doc)
}

// Set parses expr and writes value at it
func Set(doc []byte, expr string, value interface{}) ([]byte, error) {
	p, err := Parse(expr)
	if err != nil {
		return nil, err
	}
	return p.Set(doc, value)
}

// Root returns the path addressing the whole document
func Root() Path {
	return Path{raw: "$"}
}

// Key returns the path of a member of the object at p
func (p Path) Key(name string) Path {
	segments := make([]segment, len(p.segments), len(p.segments)+1)
	copy(segments, p.segments)
	return Path{
		raw:      p.raw + "['" + strings.ReplaceAll(name, "'", `\'`) + "']",
		segments: append(segments, segment{key: name}),
	}
}

// Append appends value to the array at p
func (p Path) Append(doc []byte, value interface{}) ([]byte, error) {
	if p.IsRoot() {
		return nil, errors.New(errors.ErrInvalidInput, "cannot append to the document root")
	}
	out, err := sjson.SetBytes(doc, p.SJSON()+".-1", value)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput, "failed to append to %s", p.raw)
	}
	return out, nil
}

// Pretty re-indents a JSON document keeping key order
func Pretty(doc []byte) []byte {
	return []byte(gjson.GetBytes(doc, "@pretty").Raw)
}

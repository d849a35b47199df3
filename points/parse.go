package points

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// fieldCount is the number of comma separated integers per record.
const fieldCount = 3

// ParseString is Parse over an in-memory string.
func ParseString(s string) (*Points, error) {
	return Parse(strings.NewReader(s))
}

// Parse reads one "x,y,z" record per line from r into a Points store.
// Blank lines are skipped. Parsing stops at the first bad record, which is
// reported as a *ParseError; read failures from r are returned unwrapped.
func Parse(r io.Reader) (*Points, error) {
	var xs, ys, zs []int64

	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}

		fields := strings.Split(text, ",")
		if len(fields) != fieldCount {
			return nil, &ParseError{Line: line, Field: -1, Text: text, Err: ErrMalformed}
		}

		var v [fieldCount]int64
		for f, raw := range fields {
			raw = strings.TrimSpace(raw)
			n, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				return nil, &ParseError{Line: line, Field: f, Text: raw, Err: err}
			}
			if !inRange(n) {
				return nil, &ParseError{Line: line, Field: f, Text: raw, Err: ErrCoordinateRange}
			}
			v[f] = n
		}
		xs = append(xs, v[0])
		ys = append(ys, v[1])
		zs = append(zs, v[2])
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return &Points{X: xs, Y: ys, Z: zs}, nil
}

package tsplib

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/tspprune/geometry"
	"github.com/katalvlaran/tspprune/tsp"
)

// Problem is a parsed TSPLIB file.
type Problem struct {
	Name           string
	Comment        string
	Type           string
	EdgeWeightType string
	Dimension      int
	Points         []geometry.Point

	// Scaled is set when fractional coordinates were multiplied by 10.
	Scaled bool
}

// Instance builds a tsp.Instance from the problem's points.
func (p *Problem) Instance(opts ...tsp.Option) (*tsp.Instance, error) {
	return tsp.NewInstance(p.Name, p.Points, opts...)
}

// ReadFile parses the TSPLIB file at path.
func ReadFile(path string) (*Problem, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &ReadError{Kind: KindNoFile, Text: fmt.Sprintf("could not open %q", path), Err: err}
	}
	defer f.Close()
	return Read(f)
}

// lineReader yields trimmed, non-blank lines with their line numbers.
type lineReader struct {
	sc   *bufio.Scanner
	line int
}

func (lr *lineReader) next() (string, bool) {
	for lr.sc.Scan() {
		lr.line++
		if s := strings.TrimSpace(lr.sc.Text()); s != "" {
			return s, true
		}
	}
	return "", false
}

func (lr *lineReader) eofError() error {
	if err := lr.sc.Err(); err != nil {
		return &ReadError{Kind: KindWrongFormat, Line: lr.line, Err: err}
	}
	return formatError(lr.line, "unexpected end of input")
}

// Read parses a TSPLIB instance from r.
func Read(r io.Reader) (*Problem, error) {
	lr := &lineReader{sc: bufio.NewScanner(r)}
	p := &Problem{Dimension: -1}

	if err := readHeader(lr, p); err != nil {
		return nil, err
	}
	if p.Dimension < 1 {
		return nil, formatError(lr.line, "DIMENSION missing before NODE_COORD_SECTION")
	}
	if err := readCoordinates(lr, p); err != nil {
		return nil, err
	}

	s, ok := lr.next()
	if !ok {
		return nil, lr.eofError()
	}
	if s != "EOF" {
		return nil, formatError(lr.line, "expected \"EOF\", got %q", s)
	}
	return p, nil
}

func readHeader(lr *lineReader, p *Problem) error {
	for {
		s, ok := lr.next()
		if !ok {
			return lr.eofError()
		}
		if strings.TrimSuffix(s, ":") == "NODE_COORD_SECTION" {
			return nil
		}

		label, value, found := strings.Cut(s, ":")
		if !found {
			return formatError(lr.line, "expected \"LABEL: value\", got %q", s)
		}
		label, value = strings.TrimSpace(label), strings.TrimSpace(value)

		switch label {
		case "NAME":
			p.Name = value
		case "COMMENT":
			if p.Comment != "" {
				p.Comment += "\n"
			}
			p.Comment += value
		case "TYPE":
			if value != "TSP" {
				return &ReadError{Kind: KindWrongType, Line: lr.line, Text: fmt.Sprintf("expected TSP, got %q", value)}
			}
			p.Type = value
		case "DIMENSION":
			d, err := strconv.Atoi(value)
			if err != nil || d < 1 {
				return &ReadError{Kind: KindWrongFormat, Line: lr.line, Text: fmt.Sprintf("bad DIMENSION %q", value), Err: err}
			}
			p.Dimension = d
		case "EDGE_WEIGHT_TYPE":
			if value != "EUC_2D" {
				return &ReadError{Kind: KindWrongDistanceMeasure, Line: lr.line, Text: fmt.Sprintf("expected EUC_2D, got %q", value)}
			}
			p.EdgeWeightType = value
		default:
			return formatError(lr.line, "unexpected label %q", label)
		}
	}
}

func readCoordinates(lr *lineReader, p *Problem) error {
	ids := make([]int, 0, p.Dimension)
	xs := make([]float64, 0, p.Dimension)
	ys := make([]float64, 0, p.Dimension)
	integral := true

	for len(ids) < p.Dimension {
		s, ok := lr.next()
		if !ok {
			return lr.eofError()
		}
		fields := strings.Fields(s)
		if len(fields) != 3 {
			return formatError(lr.line, "expected \"id x y\", got %q", s)
		}
		id, err := strconv.Atoi(fields[0])
		if err != nil || id < 1 {
			return &ReadError{Kind: KindWrongFormat, Line: lr.line, Text: fmt.Sprintf("bad node id %q", fields[0]), Err: err}
		}
		x, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return &ReadError{Kind: KindWrongFormat, Line: lr.line, Text: "bad x coordinate", Err: err}
		}
		y, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return &ReadError{Kind: KindWrongFormat, Line: lr.line, Text: "bad y coordinate", Err: err}
		}
		if x != math.Trunc(x) || y != math.Trunc(y) {
			integral = false
		}
		ids = append(ids, id)
		xs = append(xs, x)
		ys = append(ys, y)
	}

	p.Scaled = !integral
	p.Points = make([]geometry.Point, len(ids))
	for i, id := range ids {
		if integral {
			p.Points[i] = geometry.NewPoint(id, int(xs[i]), int(ys[i]))
		} else {
			p.Points[i] = geometry.NewPoint(id, geometry.ApproximateAsInt(xs[i], 1), geometry.ApproximateAsInt(ys[i], 1))
		}
	}
	return nil
}

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gogpu/geom"
)

// parseOps builds a matrix from a semicolon-separated operation list.
// An empty list yields the identity.
func parseOps(s string) (geom.Matrix, error) {
	m := geom.Identity()
	for _, op := range strings.Split(s, ";") {
		op = strings.TrimSpace(op)
		if op == "" {
			continue
		}
		name, args, _ := strings.Cut(op, ":")
		if err := applyOp(&m, strings.ToLower(strings.TrimSpace(name)), args); err != nil {
			return geom.Matrix{}, fmt.Errorf("op %q: %w", op, err)
		}
	}
	return m, nil
}

func applyOp(m *geom.Matrix, name, args string) error {
	switch name {
	case "translate":
		v, err := parseFloats(args, 2, 2)
		if err != nil {
			return err
		}
		m.PostTranslate(v[0], v[1])
	case "scale":
		v, err := parseFloats(args, 2, 4)
		if err != nil {
			return err
		}
		if len(v) == 4 {
			m.PostScaleAbout(v[0], v[1], v[2], v[3])
		} else if len(v) == 2 {
			m.PostScale(v[0], v[1])
		} else {
			return fmt.Errorf("want 2 or 4 values, got %d", len(v))
		}
	case "rotate":
		v, err := parseFloats(args, 1, 3)
		if err != nil {
			return err
		}
		switch len(v) {
		case 1:
			m.PostRotate(v[0])
		case 3:
			m.PostRotateAbout(v[0], v[1], v[2])
		default:
			return fmt.Errorf("want 1 or 3 values, got %d", len(v))
		}
	case "skew":
		v, err := parseFloats(args, 2, 4)
		if err != nil {
			return err
		}
		if len(v) == 4 {
			m.PostSkewAbout(v[0], v[1], v[2], v[3])
		} else if len(v) == 2 {
			m.PostSkew(v[0], v[1])
		} else {
			return fmt.Errorf("want 2 or 4 values, got %d", len(v))
		}
	case "persp":
		v, err := parseFloats(args, 2, 2)
		if err != nil {
			return err
		}
		m.PostConcat(geom.MakeAll(1, 0, 0, 0, 1, 0, v[0], v[1], 1))
	default:
		return fmt.Errorf("unknown operation %q", name)
	}
	return nil
}

// parseFloats parses a comma-separated list of between lo and hi numbers.
func parseFloats(s string, lo, hi int) ([]float32, error) {
	fields := strings.Split(s, ",")
	if len(fields) < lo || len(fields) > hi {
		return nil, fmt.Errorf("want %d to %d values, got %d", lo, hi, len(fields))
	}
	out := make([]float32, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 32)
		if err != nil {
			return nil, err
		}
		out[i] = float32(v)
	}
	return out, nil
}

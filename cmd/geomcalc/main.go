// Command geomcalc builds a matrix from a list of operations and prints
// how it classifies, inverts and maps geometry.
//
// Usage:
//
//	geomcalc -ops "translate:10,20;rotate:30" -point 1,2 -rect 0,0,100,50
//
// Operations are post-applied in order, so the first operation listed is
// the first one applied to a point.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/geom"
)

func main() {
	var (
		ops     = flag.String("ops", "", "operations: translate:dx,dy;scale:sx,sy[,px,py];rotate:deg[,px,py];skew:kx,ky[,px,py];persp:p0,p1")
		point   = flag.String("point", "", "point to map, as x,y")
		rect    = flag.String("rect", "", "rectangle to map, as left,top,right,bottom")
		verbose = flag.Bool("v", false, "log matrix internals to stderr")
	)
	flag.Parse()

	if *verbose {
		geom.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	m, err := parseOps(*ops)
	if err != nil {
		log.Fatalf("geomcalc: %v", err)
	}
	if err := report(os.Stdout, m, *point, *rect); err != nil {
		log.Fatalf("geomcalc: %v", err)
	}
}

func report(w io.Writer, m geom.Matrix, point, rect string) error {
	m.Dump()
	fmt.Fprintf(w, "matrix:  %s\n", m.String())
	fmt.Fprintf(w, "type:    %s\n", m.Type())

	if inv, ok := m.Invert(); ok {
		fmt.Fprintf(w, "inverse: %s\n", inv.String())
	} else {
		fmt.Fprintln(w, "inverse: none")
	}

	if s, ok := m.MinMaxScales(); ok {
		fmt.Fprintf(w, "scales:  min=%g max=%g\n", s[0], s[1])
	}

	if point != "" {
		v, err := parseFloats(point, 2, 2)
		if err != nil {
			return fmt.Errorf("point: %w", err)
		}
		p := m.MapXY(v[0], v[1])
		fmt.Fprintf(w, "point:   (%g, %g) -> (%g, %g)\n", v[0], v[1], p.X, p.Y)
	}

	if rect != "" {
		v, err := parseFloats(rect, 4, 4)
		if err != nil {
			return fmt.Errorf("rect: %w", err)
		}
		src := geom.RectLTRB(v[0], v[1], v[2], v[3])
		dst, exact := m.MapRect(src)
		fmt.Fprintf(w, "rect:    %v -> %v (exact=%t)\n", src, dst, exact)
	}
	return nil
}

package splines

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func assertNear(t *testing.T, p0 Point, p1 Point, epsilon float64) {
	t.Helper()
	if d := p1.Sub(p0).Hypot(); d > epsilon {
		t.Fatalf("got %s, expected %s", p0, p1)
	}
}

func svgString(t *testing.T, p BezPath, opts SVGOptions) string {
	t.Helper()
	var sb strings.Builder
	if err := WriteSVG(&sb, p.Elements(), opts); err != nil {
		t.Fatal(err)
	}
	return sb.String()
}

package outline

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

var approx = cmpopts.EquateApprox(0, 1e-9)

type sample struct {
	pt    Point
	width float64
}

func (s sample) Pos() Point     { return s.pt }
func (s sample) Width() float64 { return s.width }

func smp(x, y float64) sample { return sample{pt: Pt(x, y), width: 1} }

func wsmp(x, y, w float64) sample { return sample{pt: Pt(x, y), width: w} }

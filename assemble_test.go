package foilmesh

import (
	"errors"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"
)

func TestAssemble(t *testing.T) {
	le := r2.Vec{}
	for _, test := range []struct {
		nps, nss, npTE int
	}{
		{nps: 5, nss: 5, npTE: 2},
		{nps: 7, nss: 4, npTE: 9},
		{nps: 118, nss: 131, npTE: 3},
	} {
		ps := line(le, r2.Vec{X: 1, Y: -0.05}, test.nps)
		ss := line(le, r2.Vec{X: 1, Y: 0.05}, test.nss)
		loop, err := Assemble(ps, ss, test.npTE)
		if err != nil {
			t.Fatal(err)
		}
		if want := len(ss) + len(ps) - 1 + test.npTE - 1; len(loop) != want {
			t.Fatalf("loop has %d points, want %d", len(loop), want)
		}
		// SS reversed, then PS, then the trailing edge bridge.
		if loop[0] != ss[len(ss)-1] || loop[len(ss)-1] != le {
			t.Errorf("loop does not start with reversed SS")
		}
		if got := loop[len(ss)+len(ps)-2]; got != ps[len(ps)-1] {
			t.Errorf("PS trailing edge at %v, want %v", got, ps[len(ps)-1])
		}
		if loop[len(loop)-1] != loop[0] {
			t.Errorf("loop ends at %v, want the SS trailing edge %v", loop[len(loop)-1], loop[0])
		}
		for i := 1; i < len(loop); i++ {
			if loop[i] == loop[i-1] {
				t.Fatalf("coincident adjacent points at %d: %v", i, loop[i])
			}
		}
	}
}

func TestTrailingEdgeBridge(t *testing.T) {
	got, err := TrailingEdgeBridge(r2.Vec{X: 1, Y: -0.004}, r2.Vec{X: 1, Y: 0.004}, 5)
	if err != nil {
		t.Fatal(err)
	}
	want := []r2.Vec{{X: 1, Y: -0.004}, {X: 1, Y: -0.002}, {X: 1, Y: 0}, {X: 1, Y: 0.002}, {X: 1, Y: 0.004}}
	diff(t, want, got, approx(1e-15))
}

func TestAssembleErrors(t *testing.T) {
	ps := line(r2.Vec{}, r2.Vec{X: 1}, 4)
	var perr *ParameterError
	if _, err := Assemble(ps, ps, 1); !errors.As(err, &perr) {
		t.Errorf("npTE=1 error = %v, want ParameterError", err)
	}
	if _, err := Assemble(ps[:1], ps, 9); !errors.As(err, &perr) {
		t.Errorf("single point PS error = %v, want ParameterError", err)
	}
}

package alpacalert_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lilatomic/alpacalert/pkg/alpacalert"
)

func TestAndCommutative(t *testing.T) {
	states := []alpacalert.State{alpacalert.Passing, alpacalert.Failing, alpacalert.Unknown}
	for _, a := range states {
		for _, b := range states {
			if got, want := alpacalert.And(a, b), alpacalert.And(b, a); got != want {
				t.Errorf("And(%v, %v) = %v, And(%v, %v) = %v; not commutative", a, b, got, b, a, want)
			}
		}
	}
}

func TestOrCommutative(t *testing.T) {
	states := []alpacalert.State{alpacalert.Passing, alpacalert.Failing, alpacalert.Unknown}
	for _, a := range states {
		for _, b := range states {
			if got, want := alpacalert.Or(a, b), alpacalert.Or(b, a); got != want {
				t.Errorf("Or(%v, %v) = %v, Or(%v, %v) = %v; not commutative", a, b, got, b, a, want)
			}
		}
	}
}

func TestAndTruthTable(t *testing.T) {
	P, F, U := alpacalert.Passing, alpacalert.Failing, alpacalert.Unknown
	for _, tc := range []struct {
		a, b, want alpacalert.State
	}{
		{P, P, P},
		{P, U, U},
		{P, F, F},
		{U, U, U},
		{U, F, F},
		{F, F, F},
	} {
		if got := alpacalert.And(tc.a, tc.b); got != tc.want {
			t.Errorf("And(%v, %v) = %v, want %v", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestOrTruthTable(t *testing.T) {
	P, F, U := alpacalert.Passing, alpacalert.Failing, alpacalert.Unknown
	for _, tc := range []struct {
		a, b, want alpacalert.State
	}{
		{P, P, P},
		{P, U, P},
		{P, F, P},
		{U, U, U},
		{U, F, U},
		{F, F, F},
	} {
		if got := alpacalert.Or(tc.a, tc.b); got != tc.want {
			t.Errorf("Or(%v, %v) = %v, want %v", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestReduceEmptyIdentities(t *testing.T) {
	if got := alpacalert.ReduceAnd(nil); got != alpacalert.Passing {
		t.Errorf("ReduceAnd(nil) = %v, want Passing", got)
	}
	if got := alpacalert.ReduceOr(nil); got != alpacalert.Failing {
		t.Errorf("ReduceOr(nil) = %v, want Failing", got)
	}
}

func TestFromBool(t *testing.T) {
	tru, fls := true, false
	if diff := cmp.Diff(alpacalert.Passing, alpacalert.FromBool(&tru)); diff != "" {
		t.Errorf("FromBool(true) mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(alpacalert.Failing, alpacalert.FromBool(&fls)); diff != "" {
		t.Errorf("FromBool(false) mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(alpacalert.Unknown, alpacalert.FromBool(nil)); diff != "" {
		t.Errorf("FromBool(nil) mismatch (-want +got):\n%s", diff)
	}
}

func TestReduceOrderIndependent(t *testing.T) {
	states := []alpacalert.State{alpacalert.Passing, alpacalert.Unknown, alpacalert.Failing, alpacalert.Passing}
	reversed := []alpacalert.State{alpacalert.Passing, alpacalert.Failing, alpacalert.Unknown, alpacalert.Passing}
	if alpacalert.ReduceAnd(states) != alpacalert.ReduceAnd(reversed) {
		t.Error("ReduceAnd depends on order")
	}
	if alpacalert.ReduceOr(states) != alpacalert.ReduceOr(reversed) {
		t.Error("ReduceOr depends on order")
	}
}

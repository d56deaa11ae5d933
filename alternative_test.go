// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package parc_test

import (
	"testing"

	"code.hybscloud.com/parc"
)

func TestOrLeftSuccess(t *testing.T) {
	got, err := parc.Run(parc.Or(parc.Literal("aaa"), parc.Literal("111")), "aaa111")
	if err != nil || got != "aaa" {
		t.Fatalf("got (%q, %v), want (%q, nil)", got, err, "aaa")
	}
}

func TestOrBacktracks(t *testing.T) {
	// The failed left alternative must not leak consumption into the
	// right one.
	got, err := parc.Run(parc.Or(parc.Literal("aaa"), parc.Literal("111")), "111aaa")
	if err != nil || got != "111" {
		t.Fatalf("got (%q, %v), want (%q, nil)", got, err, "111")
	}
}

func TestOrRightRunsFromOriginalState(t *testing.T) {
	var seen string
	probe := parc.FromFunc(func(s parc.State) (parc.State, parc.Result[string]) {
		seen = s.Remaining()
		return s, parc.OK("probe")
	})
	got, err := parc.Run(parc.Or(parc.Literal("aaa"), probe), "111aaa")
	if err != nil || got != "probe" {
		t.Fatalf("got (%q, %v), want (%q, nil)", got, err, "probe")
	}
	if seen != "111aaa" {
		t.Fatalf("right alternative saw %q, want %q", seen, "111aaa")
	}
}

func TestOrBothFail(t *testing.T) {
	// The right alternative's error wins.
	_, err := parc.Run(parc.Or(parc.Literal("aaa"), parc.Literal("111")), "zzz")
	want := parc.Error{Desc: "expected 111", Pos: 0}
	if err != want {
		t.Fatalf("got %v, want %v", err, want)
	}
}

func TestOrElse(t *testing.T) {
	p := parc.OrElse(parc.Literal("a"), parc.Literal("b"), parc.Literal("c"))
	for _, input := range []string{"a", "b", "c"} {
		got, err := parc.Run(p, input)
		if err != nil || got != input {
			t.Fatalf("%q: got (%q, %v), want (%q, nil)", input, got, err, input)
		}
	}
}

func TestOrElseAllFail(t *testing.T) {
	p := parc.OrElse(parc.Literal("a"), parc.Literal("b"))
	_, err := parc.Run(p, "z")
	want := parc.Error{Desc: "expected b", Pos: 0}
	if err != want {
		t.Fatalf("got %v, want %v", err, want)
	}
}

func TestOrElseEmpty(t *testing.T) {
	_, err := parc.Run(parc.OrElse[string](), "anything")
	want := parc.Error{Desc: "no alternative matched", Pos: 0}
	if err != want {
		t.Fatalf("got %v, want %v", err, want)
	}
}

func TestOrWithOptionalAndRepeat(t *testing.T) {
	// A small sign-and-digits grammar combining the recovery
	// combinators: ('+' | '-')? digit+
	sign := parc.Optional(parc.Or(parc.Literal("+"), parc.Literal("-")))
	digits := parc.Repeat1(parc.Or(parc.Literal("0"), parc.Literal("1")))
	number := parc.Seq(sign, digits)

	got, err := parc.Run(number, "-101")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s, ok := got.Fst.Get()
	if !ok || s != "-" {
		t.Fatalf("sign = (%q, %v), want (%q, true)", s, ok, "-")
	}
	if len(got.Snd) != 3 {
		t.Fatalf("digits = %v, want 3 entries", got.Snd)
	}

	got, err = parc.Run(number, "10")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Fst.IsSome() {
		t.Fatalf("sign = %v, want None", got.Fst)
	}
}

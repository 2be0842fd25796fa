package crop

import (
	"errors"
	"testing"
)

func mustFit(t *testing.T, sw, sh, dw, dh int) DisplayFit {
	t.Helper()
	f, err := Fit(sw, sh, dw, dh)
	if err != nil {
		t.Fatalf("fit(%d,%d,%d,%d): %v", sw, sh, dw, dh, err)
	}
	return f
}

func TestMapToSource_LandscapeScenario(t *testing.T) {
	f := mustFit(t, 4000, 2000, 800, 400)
	got, err := MapToSource(&SelectionRect{X0: 100, Y0: 100, X1: 300, Y1: 200}, &f, 4000, 2000)
	if err != nil {
		t.Fatalf("map: %v", err)
	}
	want := CropBounds{Left: 500, Top: 500, Right: 1500, Bottom: 1000}
	if got != want {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestMapToSource_PortraitFullImage(t *testing.T) {
	f := mustFit(t, 1000, 2000, 800, 800)
	got, err := MapToSource(&SelectionRect{X0: 200, Y0: 0, X1: 600, Y1: 800}, &f, 1000, 2000)
	if err != nil {
		t.Fatalf("map: %v", err)
	}
	want := CropBounds{Left: 0, Top: 0, Right: 1000, Bottom: 2000}
	if got != want {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestMapToSource_FullBoundsRoundTrip(t *testing.T) {
	sizes := [][2]int{{4000, 2000}, {1000, 2000}, {333, 777}, {1920, 1080}, {7, 3}, {4001, 2999}, {1, 1}}
	displays := [][2]int{{800, 400}, {800, 800}, {960, 541}, {123, 457}}
	for _, s := range sizes {
		for _, d := range displays {
			f := mustFit(t, s[0], s[1], d[0], d[1])
			b := f.ScaledBounds()
			sel := &SelectionRect{X0: b.Min.X, Y0: b.Min.Y, X1: b.Max.X, Y1: b.Max.Y}
			got, err := MapToSource(sel, &f, s[0], s[1])
			if err != nil {
				t.Fatalf("map: %v", err)
			}
			want := CropBounds{Right: s[0], Bottom: s[1]}
			if got != want {
				t.Fatalf("source %v display %v: expected %v, got %v", s, d, want, got)
			}
		}
	}
}

func TestMapToSource_DirectionIndependent(t *testing.T) {
	f := mustFit(t, 1234, 567, 800, 600)
	corners := [][4]int{
		{50, 300, 700, 420},
		{700, 420, 50, 300},
		{50, 420, 700, 300},
		{700, 300, 50, 420},
	}
	var first CropBounds
	for i, c := range corners {
		got, err := MapToSource(&SelectionRect{X0: c[0], Y0: c[1], X1: c[2], Y1: c[3]}, &f, 1234, 567)
		if err != nil {
			t.Fatalf("map: %v", err)
		}
		if i == 0 {
			first = got
			continue
		}
		if got != first {
			t.Fatalf("drag %d: expected %v, got %v", i, first, got)
		}
	}
}

func TestMapToSource_OutsideSelectionsStayInBounds(t *testing.T) {
	f := mustFit(t, 1000, 2000, 800, 800) // image occupies x in [200,600]
	cases := []struct {
		name string
		sel  SelectionRect
		want CropBounds
	}{
		{"left margin", SelectionRect{X0: 0, Y0: 0, X1: 150, Y1: 800}, CropBounds{Left: 0, Top: 0, Right: 0, Bottom: 2000}},
		{"right margin", SelectionRect{X0: 650, Y0: 10, X1: 790, Y1: 20}, CropBounds{Left: 1000, Top: 25, Right: 1000, Bottom: 50}},
		{"negative coordinates", SelectionRect{X0: -100, Y0: -100, X1: -10, Y1: -10}, CropBounds{}},
		{"overhanging", SelectionRect{X0: -50, Y0: -50, X1: 5000, Y1: 5000}, CropBounds{Right: 1000, Bottom: 2000}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := MapToSource(&tc.sel, &f, 1000, 2000)
			if err != nil {
				t.Fatalf("map: %v", err)
			}
			if got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
			if got.Left < 0 || got.Top < 0 || got.Right > 1000 || got.Bottom > 2000 || got.Left > got.Right || got.Top > got.Bottom {
				t.Fatalf("bounds out of range: %v", got)
			}
		})
	}
}

func TestMapToSource_DegenerateIsValid(t *testing.T) {
	f := mustFit(t, 4000, 2000, 800, 400)
	got, err := MapToSource(&SelectionRect{X0: 10, Y0: 10, X1: 10, Y1: 10}, &f, 4000, 2000)
	if err != nil {
		t.Fatalf("map: %v", err)
	}
	if !got.Empty() || got.Left != 50 || got.Top != 50 {
		t.Fatalf("expected empty bounds at (50,50), got %v", got)
	}
}

func TestMapToSource_Preconditions(t *testing.T) {
	f := mustFit(t, 10, 10, 10, 10)
	if _, err := MapToSource(nil, &f, 10, 10); !errors.Is(err, ErrNoActiveSelection) {
		t.Fatalf("expected ErrNoActiveSelection, got %v", err)
	}
	if _, err := MapToSource(&SelectionRect{}, nil, 10, 10); !errors.Is(err, ErrNoActiveImage) {
		t.Fatalf("expected ErrNoActiveImage, got %v", err)
	}
	if _, err := MapToSource(&SelectionRect{}, &f, 0, 10); !errors.Is(err, ErrNoActiveImage) {
		t.Fatalf("expected ErrNoActiveImage for zero source, got %v", err)
	}
}

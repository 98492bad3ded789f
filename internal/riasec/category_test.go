package riasec

import (
	"errors"
	"testing"
)

func TestParsePair(t *testing.T) {
	tests := []struct {
		raw     string
		want    Pair
		wantErr bool
	}{
		{"R-I", Pair{A: Realistic, B: Investigative}, false},
		{" s / e ", Pair{A: Social, B: Enterprising}, false},
		{"CA", Pair{A: Conventional, B: Artistic}, false},
		{"R", Pair{}, true},
		{"", Pair{}, true},
		{"R-I-A", Pair{}, true},
		{"R-X", Pair{}, true},
		{"Q-Z", Pair{}, true},
	}

	for _, tt := range tests {
		got, err := ParsePair(tt.raw)
		if tt.wantErr {
			if !errors.Is(err, ErrMalformedPair) {
				t.Errorf("ParsePair(%q) error = %v, want ErrMalformedPair", tt.raw, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParsePair(%q) unexpected error: %v", tt.raw, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParsePair(%q) = %+v, want %+v", tt.raw, got, tt.want)
		}
	}
}

func TestPairStringRoundTrip(t *testing.T) {
	p := Pair{A: Enterprising, B: Conventional}
	got, err := ParsePair(p.String())
	if err != nil {
		t.Fatalf("ParsePair: %v", err)
	}
	if got != p {
		t.Errorf("got %+v, want %+v", got, p)
	}
}

func TestCategoryLabel(t *testing.T) {
	if got := Realistic.Label(); got != "Realistic (Praktis / Teknis)" {
		t.Errorf("Label = %q", got)
	}
	if Category("X").Valid() {
		t.Error("X should not be valid")
	}
	for _, c := range All {
		if !c.Valid() {
			t.Errorf("%s should be valid", c)
		}
	}
}

func TestRecommendReturnsCopy(t *testing.T) {
	r := Recommend(Social)
	if len(r.Majors) == 0 || len(r.Jobs) == 0 || len(r.Activities) == 0 {
		t.Fatal("expected non-empty bundle for Social")
	}
	r.Majors[0] = "changed"
	if Recommend(Social).Majors[0] == "changed" {
		t.Error("Recommend must not expose the static table")
	}
	if got := Recommend("X"); len(got.Majors) != 0 {
		t.Error("unknown category should give empty bundle")
	}
}

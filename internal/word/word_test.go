package word

import (
	"slices"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		line string
		want string
	}{
		{"it lowercases the line", "CRANE", "crane"},
		{"it strips a trailing newline", "crane\n", "crane"},
		{"it strips a trailing CRLF", "crane\r\n", "crane"},
		{"it strips line breaks in the middle of the line", "cr\nan\re", "crane"},
		{"it leaves other whitespace alone", " crane\t", " crane\t"},
		{"it returns empty for a bare newline", "\n", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.line); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.line, got, tt.want)
			}
		})
	}
}

func TestHasShape(t *testing.T) {
	valid := []string{"crane", "apple", "zzzzz", "react"}
	for _, w := range valid {
		t.Run("it accepts "+w, func(t *testing.T) {
			if !HasShape(w) {
				t.Errorf("HasShape(%q) = false, want true", w)
			}
		})
	}

	invalid := []string{"", "zz", "cranne", "Crane", "cr-ne", "cran ", "crané", "crane\n", "12345"}
	for _, w := range invalid {
		t.Run("it rejects "+w, func(t *testing.T) {
			if HasShape(w) {
				t.Errorf("HasShape(%q) = true, want false", w)
			}
		})
	}
}

func TestSignature(t *testing.T) {
	t.Run("it sorts the letters", func(t *testing.T) {
		if got := Signature("crane"); got != "acenr" {
			t.Errorf("Signature(crane) = %q, want %q", got, "acenr")
		}
	})

	t.Run("it drops repeated letters", func(t *testing.T) {
		if got := Signature("apple"); got != "aelp" {
			t.Errorf("Signature(apple) = %q, want %q", got, "aelp")
		}
	})

	t.Run("it gives anagrams the same signature", func(t *testing.T) {
		if Signature("react") != Signature("trace") {
			t.Errorf("expected react and trace to share a signature, got %q and %q",
				Signature("react"), Signature("trace"))
		}
	})

	t.Run("it returns empty for empty input", func(t *testing.T) {
		if got := Signature(""); got != "" {
			t.Errorf("Signature(\"\") = %q, want empty", got)
		}
	})
}

func TestHasDistinctLetters(t *testing.T) {
	if !HasDistinctLetters("crane") {
		t.Error("expected crane to have distinct letters")
	}
	if HasDistinctLetters("apple") {
		t.Error("expected apple to have a repeated letter")
	}
}

func TestMask(t *testing.T) {
	t.Run("it builds a mask from lowercase letters", func(t *testing.T) {
		m, ok := MaskOf("crane")
		if !ok {
			t.Fatal("MaskOf(crane) returned ok=false")
		}
		if m.Len() != 5 {
			t.Errorf("Len() = %d, want 5", m.Len())
		}
		if m.String() != "acenr" {
			t.Errorf("String() = %q, want %q", m.String(), "acenr")
		}
		if !m.Has('c'-'a') || m.Has('z'-'a') {
			t.Errorf("unexpected membership in mask %s", m)
		}
	})

	t.Run("it counts repeated letters once", func(t *testing.T) {
		m, _ := MaskOf("apple")
		if m.Len() != 4 {
			t.Errorf("Len() = %d, want 4", m.Len())
		}
	})

	t.Run("it rejects characters outside a-z", func(t *testing.T) {
		for _, w := range []string{"Crane", "cr-ne", "cran3"} {
			if _, ok := MaskOf(w); ok {
				t.Errorf("MaskOf(%q) returned ok=true", w)
			}
		}
	})

	t.Run("it lists letters in ascending order", func(t *testing.T) {
		m, _ := MaskOf("zebra")
		want := []int{0, 1, 4, 17, 25}
		if got := m.Letters(); !slices.Equal(got, want) {
			t.Errorf("Letters() = %v, want %v", got, want)
		}
	})

	t.Run("it detects overlapping masks", func(t *testing.T) {
		a, _ := MaskOf("crane")
		b, _ := MaskOf("moist")
		c, _ := MaskOf("trace")
		if a.Overlaps(b) {
			t.Error("crane and moist should not overlap")
		}
		if !a.Overlaps(c) {
			t.Error("crane and trace should overlap")
		}
	})
}

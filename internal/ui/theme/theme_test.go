package theme

import "testing"

func TestApplySwitchesPalette(t *testing.T) {
	t.Cleanup(func() { Apply(false) })

	Apply(true)
	if !IsDark() {
		t.Fatal("expected dark mode")
	}
	if Primary != DarkPalette.Primary || Bg != DarkPalette.Bg {
		t.Error("dark palette colors not applied")
	}

	Apply(false)
	if IsDark() {
		t.Fatal("expected light mode")
	}
	if Primary != LightPalette.Primary || Text != LightPalette.Text {
		t.Error("light palette colors not applied")
	}
}

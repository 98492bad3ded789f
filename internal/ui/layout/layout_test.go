package layout

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
)

func TestRenderHeaderShowsNameTitleAndStatus(t *testing.T) {
	out := RenderHeader("Tes", "3/30", 80)
	for _, want := range []string{AppName, "Tes", "3/30"} {
		if !strings.Contains(out, want) {
			t.Errorf("header missing %q", want)
		}
	}
}

func TestRenderFrameFillsHeight(t *testing.T) {
	header := RenderHeader("", "", 60)
	footer := RenderFooter([]KeyHint{{Key: "q", Description: "Keluar"}}, 60)
	frame := RenderFrame(header, "isi", footer, 60, 24)
	if got := lipgloss.Height(frame); got != 24 {
		t.Errorf("frame height = %d, want 24", got)
	}
}

func TestIsTooSmall(t *testing.T) {
	if !IsTooSmall(MinWidth-1, MinHeight) {
		t.Error("expected too small")
	}
	if IsTooSmall(MinWidth, MinHeight) {
		t.Error("expected large enough")
	}
}

// Package about explains the RIASEC model.
package about

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/minatgo/minatgo/internal/riasec"
	"github.com/minatgo/minatgo/internal/screen"
	"github.com/minatgo/minatgo/internal/ui/components"
	"github.com/minatgo/minatgo/internal/ui/layout"
	"github.com/minatgo/minatgo/internal/ui/theme"
)

const intro = "RIASEC adalah model minat karier yang dikembangkan oleh psikolog John L. Holland. " +
	"Model ini mengelompokkan minat seseorang ke dalam enam tipe. Kebanyakan orang punya " +
	"kombinasi beberapa tipe; tipe dengan skor tertinggi disebut tipe dominan."

var descriptions = map[riasec.Category]string{
	riasec.Realistic:     "Suka bekerja dengan tangan, alat, mesin, atau di alam terbuka.",
	riasec.Investigative: "Suka mengamati, meneliti, dan memecahkan masalah secara logis.",
	riasec.Artistic:      "Suka berekspresi lewat seni, desain, tulisan, atau musik.",
	riasec.Social:        "Suka membantu, mengajar, dan bekerja bersama orang lain.",
	riasec.Enterprising:  "Suka memimpin, meyakinkan orang, dan mengambil keputusan.",
	riasec.Conventional:  "Suka keteraturan, data, dan pekerjaan yang terperinci.",
}

// AboutScreen lists the six categories.
type AboutScreen struct {
	offset int
}

var (
	_ screen.Screen          = (*AboutScreen)(nil)
	_ screen.KeyHintProvider = (*AboutScreen)(nil)
)

func New() *AboutScreen {
	return &AboutScreen{}
}

func (a *AboutScreen) Init() tea.Cmd { return nil }

func (a *AboutScreen) Title() string { return "Tentang RIASEC" }

func (a *AboutScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{{Key: "↑↓", Description: "Gulir"}, {Key: "Esc", Description: "Kembali"}}
}

func (a *AboutScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if k, ok := msg.(tea.KeyPressMsg); ok {
		switch k.String() {
		case "up", "k":
			a.offset = max(a.offset-1, 0)
		case "down", "j":
			a.offset++
		}
	}
	return a, nil
}

func (a *AboutScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	lines := []string{theme.Body.Width(cw).Render(intro), ""}
	for _, c := range riasec.All {
		head := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).
			Render(fmt.Sprintf("%s  %s", c, c.Label()))
		lines = append(lines, head, theme.Body.Width(cw).Render(descriptions[c]), "")
	}
	lines = append(lines, theme.Hint.Width(cw).Render(
		"Setiap pertanyaan memasangkan dua tipe. Pilihanmu menambah satu poin untuk tipe yang diwakilinya."))

	rows := strings.Split(strings.Join(lines, "\n"), "\n")
	a.offset = min(a.offset, max(len(rows)-height, 0))
	visible := rows[a.offset:min(a.offset+height, len(rows))]
	return lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Width(cw).Render(strings.Join(visible, "\n")))
}

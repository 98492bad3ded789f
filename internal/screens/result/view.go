package result

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/minatgo/minatgo/internal/riasec"
	"github.com/minatgo/minatgo/internal/ui/components"
	"github.com/minatgo/minatgo/internal/ui/theme"
)

func (r *ResultScreen) View(width, height int) string {
	if !r.loaded {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render("Memuat hasil..."))
	}
	cw := components.ContentWidth(width)

	var lines []string
	if r.empty {
		lines = append(lines,
			theme.Title.Width(cw).Render("Belum ada hasil"),
			"",
			theme.Body.Width(cw).Render("Selesaikan tes terlebih dahulu untuk melihat hasilnya di sini."),
			"",
			theme.Hint.Render("Tekan r untuk mulai tes"),
		)
	} else {
		lines = r.renderReport(cw)
	}
	if r.notice != "" {
		lines = append(lines, "", theme.Warning.Width(cw).Render(r.notice))
	}

	// Flatten to terminal rows so scrolling moves one row at a time.
	rows := strings.Split(strings.Join(lines, "\n"), "\n")
	maxOffset := max(len(rows)-height, 0)
	if r.offset > maxOffset {
		r.offset = maxOffset
	}
	visible := rows[r.offset:min(r.offset+height, len(rows))]

	return lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Width(cw).Render(strings.Join(visible, "\n")))
}

func (r *ResultScreen) renderReport(cw int) []string {
	rep := r.rep
	lines := []string{
		theme.Title.Width(cw).Render("Hasil Tes Minat dan Bakat RIASEC"),
		theme.Subtitle.Width(cw).Render(fmt.Sprintf("%d dari %d pertanyaan dijawab", rep.Answered, rep.Total)),
		"",
	}

	for _, row := range rep.Rows {
		bar := components.ProgressBar{
			Label:     fmt.Sprintf("%s %-13s", row.Category, row.Category.Name()),
			Value:     row.Percent,
			Max:       100,
			Suffix:    fmt.Sprintf("%3d%% (%d)", row.Percent, row.Count),
			Width:     cw,
			Highlight: row.Dominant,
		}
		lines = append(lines, bar.View())
	}
	lines = append(lines, "")

	if len(rep.Dominant) == 0 {
		lines = append(lines, theme.Body.Render("Tidak ada tipe dominan."))
	} else {
		labels := make([]string, len(rep.Dominant))
		for i, c := range rep.Dominant {
			labels[i] = c.Label()
		}
		lines = append(lines,
			theme.Selected.Render("Tipe dominan: ")+theme.Body.Render(strings.Join(labels, ", ")))
	}

	for _, rec := range rep.Recommendations {
		lines = append(lines, "", components.Card(renderRecommendation(rec, cw-8), cw))
	}

	if rep.Insight != "" {
		lines = append(lines, "",
			theme.Selected.Render("Analisis AI"),
			theme.Body.Width(cw).Render(rep.Insight))
	}

	lines = append(lines, "", components.ButtonRow(
		components.Button{Key: "r", Label: "Ulangi tes", Enabled: true},
		components.Button{Key: "p", Label: "Simpan PDF", Enabled: true},
		components.Button{Key: "i", Label: "Analisis AI", Enabled: r.svc.Insight.Available() && !r.insightBusy},
	))
	return lines
}

func renderRecommendation(rec riasec.CategoryRecommendation, width int) string {
	head := theme.Selected.Render("Rekomendasi untuk " + rec.Label)
	item := func(title string, xs []string) string {
		return lipgloss.NewStyle().Foreground(theme.Accent).Render(title) + "\n" +
			theme.Body.Width(width).Render(strings.Join(xs, ", "))
	}
	return strings.Join([]string{
		head,
		item("Jurusan", rec.Majors),
		item("Pekerjaan", rec.Jobs),
		item("Kegiatan", rec.Activities),
	}, "\n\n")
}

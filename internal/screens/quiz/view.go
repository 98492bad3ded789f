package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	qz "github.com/minatgo/minatgo/internal/quiz"
	"github.com/minatgo/minatgo/internal/ui/components"
	"github.com/minatgo/minatgo/internal/ui/layout"
	"github.com/minatgo/minatgo/internal/ui/theme"
)

func (q *QuizScreen) View(width, height int) string {
	switch {
	case q.loading:
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render("Memuat pertanyaan..."))
	case q.loadErr != nil:
		return renderLoadError(q.loadErr, width, height)
	}

	cw := components.ContentWidth(width)
	var body string
	switch q.session.Stage() {
	case qz.StageCover:
		body = renderCover(q.session.Total(), q.rejected, cw)
	case qz.StageQuote:
		quote, _ := q.session.CurrentQuote()
		body = renderQuote(quote, cw)
	case qz.StageFinish:
		body = renderFinish(q.session, cw)
	default:
		body = q.renderQuestion(cw)
	}

	if q.errMsg != "" {
		body += "\n\n" + theme.Warning.Render(q.errMsg)
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}

func (q *QuizScreen) renderQuestion(cw int) string {
	s := q.session
	header := theme.Hint.Render(fmt.Sprintf("Pertanyaan %d dari %d", s.Cursor()+1, s.Total()))
	card := components.Card(q.choice.View(cw-8), cw)
	return header + "\n" + card + "\n\n" + renderProgress(s, cw)
}

func renderProgress(s *qz.Session, cw int) string {
	bar := components.ProgressBar{
		Label:  "Progres",
		Value:  s.Progress(),
		Max:    s.Total(),
		Suffix: fmt.Sprintf("%d/%d", s.Progress(), s.Total()),
		Width:  cw,
	}
	remaining := theme.Hint.Render(fmt.Sprintf("%d pertanyaan tersisa", s.Remaining()))
	return bar.View() + "\n" + remaining
}

func renderCover(total, rejected, cw int) string {
	lines := []string{
		theme.Title.Width(cw).Render("Tes Minat dan Bakat RIASEC"),
		"",
		theme.Body.Width(cw).Render(fmt.Sprintf(
			"Kamu akan menjawab %d pertanyaan. Setiap pertanyaan punya dua pilihan; "+
				"pilih yang paling menggambarkan dirimu. Tidak ada jawaban benar atau salah.", total)),
		"",
		theme.Body.Width(cw).Render("Jawaban pertama untuk setiap pertanyaan adalah jawaban final."),
	}
	if rejected > 0 {
		lines = append(lines, "", theme.Warning.Render(fmt.Sprintf("%d pertanyaan dilewati karena datanya tidak valid.", rejected)))
	}
	lines = append(lines, "", theme.Hint.Render("Tekan Enter untuk mulai"))
	return components.Card(strings.Join(lines, "\n"), cw)
}

func renderQuote(quote qz.Quote, cw int) string {
	text := lipgloss.NewStyle().Foreground(theme.Text).Italic(true).Width(cw - 8).Align(lipgloss.Center).
		Render("“" + quote.Text + "”")
	author := lipgloss.NewStyle().Foreground(theme.Accent).Width(cw - 8).Align(lipgloss.Center).
		Render("- " + quote.Author)
	return components.Card(text+"\n\n"+author+"\n\n"+theme.Hint.Render("Tekan Enter untuk lanjut"), cw)
}

func renderFinish(s *qz.Session, cw int) string {
	lines := []string{
		theme.Title.Width(cw - 8).Render("Selesai!"),
		"",
		theme.Body.Render(fmt.Sprintf("Kamu sudah menjawab %d dari %d pertanyaan.", s.Progress(), s.Total())),
		"",
		components.ButtonRow(components.Button{Key: "Enter", Label: "Lihat hasil", Enabled: s.Complete()}),
	}
	return components.Card(strings.Join(lines, "\n"), cw) + "\n\n" + renderProgress(s, cw)
}

func renderLoadError(err error, width, height int) string {
	body := theme.Warning.Render("Pertanyaan gagal dimuat") + "\n\n" +
		theme.Body.Render(err.Error()) + "\n\n" +
		theme.Hint.Render("Tekan r untuk memuat ulang")
	return layout.CenteredCard(body, 60, width, height)
}

package insight

import (
	"fmt"
	"strings"

	"github.com/minatgo/minatgo/internal/riasec"
)

const systemPrompt = `Kamu adalah konselor karier untuk siswa SMA di Indonesia. Jawab dalam bahasa Indonesia yang hangat dan ringkas. Jangan mengulang angka persentase satu per satu; tafsirkan polanya.`

func buildUserPrompt(res riasec.Result) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Jumlah pertanyaan dijawab: %d\n\n", res.Answered)
	b.WriteString("Persentase per tipe:\n")
	for _, c := range riasec.All {
		fmt.Fprintf(&b, "- %s: %d%%\n", c.Label(), res.Percent[c])
	}

	b.WriteString("\nTipe dominan: ")
	if len(res.Dominant) == 0 {
		b.WriteString("tidak ada\n")
	} else {
		labels := make([]string, len(res.Dominant))
		for i, c := range res.Dominant {
			labels[i] = c.Label()
		}
		b.WriteString(strings.Join(labels, ", "))
		b.WriteString("\n")
	}
	if len(res.Dominant) > 1 {
		b.WriteString("Beberapa tipe seimbang; bahas masing-masing tanpa memilih salah satu.\n")
	}

	b.WriteString(`
Tulis ringkasan profil, kekuatan yang tampak, dan langkah berikutnya yang bisa dicoba.`)
	return b.String()
}

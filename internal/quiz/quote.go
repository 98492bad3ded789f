package quiz

// Quote is a motivational interlude shown between question blocks.
type Quote struct {
	Text   string
	Author string
}

var quotes = map[int]Quote{
	8: {
		Text:   "Jalan menuju keberhasilan dimulai saat kamu memilih jalur yang sesuai dengan hatimu.",
		Author: "Penasihat Karir",
	},
	16: {
		Text:   "Mengenali dirimu hari ini adalah kunci untuk merencanakan dirimu di masa depan.",
		Author: "Mentor Pengembangan Diri",
	},
	24: {
		Text:   "Jangan takut akan lambatnya kemajuan, takutlah jika kamu tidak bergerak sama sekali.",
		Author: "Motivator",
	},
}

// QuoteAfter reports whether an interlude follows the n-th answered question
// (1-based count).
func QuoteAfter(n int) bool {
	_, ok := quotes[n]
	return ok
}

// QuoteFor returns the interlude shown after n questions.
func QuoteFor(n int) (Quote, bool) {
	q, ok := quotes[n]
	return q, ok
}

// CurrentQuote returns the interlude the session is showing.
func (s *Session) CurrentQuote() (Quote, bool) {
	if !s.quote {
		return Quote{}, false
	}
	return QuoteFor(s.cursor + 1)
}

package riasec

// Recommendation is the static bundle presented for a dominant category.
type Recommendation struct {
	Majors     []string `json:"majors"`
	Jobs       []string `json:"jobs"`
	Activities []string `json:"activities"`
}

var recommendations = map[Category]Recommendation{
	Realistic: {
		Majors:     []string{"Teknik Mesin", "Teknik Elektro", "Teknik Sipil", "Teknik Otomotif", "Agronomi"},
		Jobs:       []string{"Teknisi", "Insinyur Lapangan", "Montir Spesialis", "Surveyor", "Operator Mesin"},
		Activities: []string{"Workshop teknik", "Klub robotik", "Magang bengkel", "Proyek DIY"},
	},
	Investigative: {
		Majors:     []string{"Matematika", "Fisika", "Biologi", "Statistika", "Ilmu Komputer (riset)"},
		Jobs:       []string{"Peneliti", "Data Analyst", "Lab Tech", "Analis R&D"},
		Activities: []string{"Proyek riset", "Kompetisi sains", "Kelas coding / statistik"},
	},
	Artistic: {
		Majors:     []string{"Desain Grafis", "Desain Komunikasi Visual", "Seni Rupa", "Sastra", "Arsitektur"},
		Jobs:       []string{"Desainer Grafis", "Ilustrator", "Penulis Kreatif", "Animator"},
		Activities: []string{"Studio seni", "Kelas menggambar/ilustrasi", "Pameran", "Proyek portofolio"},
	},
	Social: {
		Majors:     []string{"Psikologi", "Pendidikan", "Keperawatan", "Kesehatan Masyarakat", "Sosial"},
		Jobs:       []string{"Guru", "Konselor", "Perawat", "Pekerja Sosial"},
		Activities: []string{"Volunteer", "Mentoring", "Workshop komunikasi", "Kelas public speaking"},
	},
	Enterprising: {
		Majors:     []string{"Manajemen", "Administrasi Bisnis", "Ekonomi", "Ilmu Komunikasi"},
		Jobs:       []string{"Marketing", "Sales Manager", "Entrepreneur", "Business Developer"},
		Activities: []string{"Kampus entrepreneurship", "Kompetisi bisnis", "Magang sales"},
	},
	Conventional: {
		Majors:     []string{"Akuntansi", "Administrasi Perkantoran", "Sistem Informasi", "Ilmu Perpajakan"},
		Jobs:       []string{"Akuntan", "Admin", "Analis Data", "Operator Sistem"},
		Activities: []string{"Kursus excel/administrasi", "Magang di kantor", "Pelatihan sistem"},
	},
}

// Recommend returns a copy of the bundle for c. Unknown categories get an
// empty bundle.
func Recommend(c Category) Recommendation {
	r, ok := recommendations[c]
	if !ok {
		return Recommendation{}
	}
	return Recommendation{
		Majors:     append([]string(nil), r.Majors...),
		Jobs:       append([]string(nil), r.Jobs...),
		Activities: append([]string(nil), r.Activities...),
	}
}

// CategoryRecommendation pairs a dominant category with its bundle.
type CategoryRecommendation struct {
	Category Category `json:"category"`
	Label    string   `json:"label"`
	Recommendation
}

// RecommendAll returns one bundle per category in order. Bundles are kept
// separate even when several categories tie.
func RecommendAll(cats []Category) []CategoryRecommendation {
	out := make([]CategoryRecommendation, 0, len(cats))
	for _, c := range cats {
		out = append(out, CategoryRecommendation{
			Category:       c,
			Label:          c.Label(),
			Recommendation: Recommend(c),
		})
	}
	return out
}

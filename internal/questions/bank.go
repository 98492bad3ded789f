package questions

import "context"

// defaultBank is the embedded 30-question bank. Option A of questions 0-4
// maps to R, 5-9 to I, 10-14 to A, 15-19 to S, 20-24 to E and 25-29 to C.
var defaultBank = []Record{
	{Text: "Saat waktu luang, kamu lebih suka...", OptionA: "Memperbaiki sepeda atau alat rumah", OptionB: "Membaca artikel sains", Type: "R-I"},
	{Text: "Tugas kelompok yang paling kamu nikmati adalah...", OptionA: "Merakit model atau prototipe", OptionB: "Mencari data dan menganalisisnya", Type: "R-I"},
	{Text: "Di kegiatan sekolah, kamu memilih...", OptionA: "Menyiapkan peralatan panggung", OptionB: "Mencatat dan merapikan daftar hadir", Type: "R-C"},
	{Text: "Pekerjaan yang lebih menarik bagimu...", OptionA: "Bekerja di lapangan dengan mesin", OptionB: "Mengelola arsip dan jadwal", Type: "R-C"},
	{Text: "Kalau ada barang rusak di rumah, kamu...", OptionA: "Langsung mencoba memperbaikinya", OptionB: "Mencari tahu penyebab kerusakannya dulu", Type: "R-I"},
	{Text: "Pelajaran yang paling kamu sukai...", OptionA: "Eksperimen di laboratorium", OptionB: "Praktik keterampilan tangan", Type: "I-R"},
	{Text: "Saat menonton dokumenter, kamu tertarik pada...", OptionA: "Penjelasan ilmiah di baliknya", OptionB: "Kisah orang-orang yang terlibat", Type: "I-S"},
	{Text: "Kamu lebih senang...", OptionA: "Memecahkan teka-teki logika", OptionB: "Menggambar atau membuat desain", Type: "I-A"},
	{Text: "Di perpustakaan, kamu biasanya mencari buku tentang...", OptionA: "Sains dan teknologi", OptionB: "Bisnis dan kepemimpinan", Type: "I-E"},
	{Text: "Proyek impianmu adalah...", OptionA: "Meneliti obat atau teknologi baru", OptionB: "Menyusun sistem pencatatan yang rapi", Type: "I-C"},
	{Text: "Cara kamu mengekspresikan diri...", OptionA: "Menulis cerita atau puisi", OptionB: "Membangun sesuatu dengan tangan", Type: "A-R"},
	{Text: "Ekstrakurikuler pilihanmu...", OptionA: "Teater atau musik", OptionB: "Klub sains", Type: "A-I"},
	{Text: "Saat mendekorasi ruangan, kamu...", OptionA: "Membuat konsep warna dan tata letak", OptionB: "Mengajak teman bekerja sama", Type: "A-S"},
	{Text: "Kamu lebih bangga jika...", OptionA: "Karyamu dipamerkan di pameran", OptionB: "Idemu dipakai sebagai strategi tim", Type: "A-E"},
	{Text: "Dalam membuat laporan, kamu lebih suka...", OptionA: "Mendesain tampilannya agar menarik", OptionB: "Memastikan format dan angkanya tepat", Type: "A-C"},
	{Text: "Ketika teman sedang sedih, kamu...", OptionA: "Mendengarkan dan menghiburnya", OptionB: "Membantu memperbaiki masalah praktisnya", Type: "S-R"},
	{Text: "Kegiatan sosial yang kamu pilih...", OptionA: "Mengajar anak-anak di desa", OptionB: "Meneliti masalah sosial di masyarakat", Type: "S-I"},
	{Text: "Peran yang cocok untukmu di kelas...", OptionA: "Membantu teman yang kesulitan belajar", OptionB: "Membuat poster dan dekorasi kelas", Type: "S-A"},
	{Text: "Kamu lebih nyaman bekerja...", OptionA: "Bersama banyak orang dan saling membantu", OptionB: "Memimpin dan mengarahkan tim", Type: "S-E"},
	{Text: "Pekerjaan yang lebih bermakna bagimu...", OptionA: "Merawat orang sakit", OptionB: "Mengelola data administrasi rumah sakit", Type: "S-C"},
	{Text: "Dalam acara sekolah, kamu ingin menjadi...", OptionA: "Ketua panitia", OptionB: "Tim teknis perlengkapan", Type: "E-R"},
	{Text: "Kamu lebih tertarik untuk...", OptionA: "Memulai usaha kecil sendiri", OptionB: "Menganalisis tren pasar", Type: "E-I"},
	{Text: "Saat presentasi, kamu fokus pada...", OptionA: "Meyakinkan audiens", OptionB: "Membuat slide yang kreatif", Type: "E-A"},
	{Text: "Kamu lebih senang...", OptionA: "Bernegosiasi dan menjual ide", OptionB: "Mendampingi teman yang butuh bantuan", Type: "E-S"},
	{Text: "Di organisasi, kamu memilih posisi...", OptionA: "Ketua atau koordinator", OptionB: "Sekretaris atau bendahara", Type: "E-C"},
	{Text: "Cara kamu mengatur tugas sekolah...", OptionA: "Membuat jadwal dan daftar periksa", OptionB: "Mengerjakan langsung secara praktis", Type: "C-R"},
	{Text: "Kamu lebih menikmati...", OptionA: "Menginput dan merapikan data", OptionB: "Mencari pola di balik data", Type: "C-I"},
	{Text: "Pekerjaan yang kamu sukai...", OptionA: "Mengikuti prosedur yang jelas", OptionB: "Bebas berkreasi tanpa aturan", Type: "C-A"},
	{Text: "Saat bekerja dalam tim, kamu...", OptionA: "Mencatat keputusan dan tenggat waktu", OptionB: "Menjaga suasana tim tetap akrab", Type: "C-S"},
	{Text: "Kamu merasa puas jika...", OptionA: "Laporan keuangan seimbang tanpa selisih", OptionB: "Target penjualan tercapai", Type: "C-E"},
}

// DefaultRecords returns a copy of the embedded question bank with IDs
// numbered from 1.
func DefaultRecords() []Record {
	out := make([]Record, len(defaultBank))
	for i, r := range defaultBank {
		r.ID = int64(i + 1)
		out[i] = r
	}
	return out
}

// StaticSource serves a fixed slice of records.
type StaticSource struct {
	Records []Record
}

// NewStaticSource returns a source over the embedded bank.
func NewStaticSource() *StaticSource {
	return &StaticSource{Records: DefaultRecords()}
}

func (s *StaticSource) ListQuestions(_ context.Context) ([]Record, error) {
	out := make([]Record, len(s.Records))
	copy(out, s.Records)
	return out, nil
}

// FallbackSource tries Primary and falls back to Secondary when Primary
// returns no records. Errors from Primary are returned as is.
type FallbackSource struct {
	Primary   Source
	Secondary Source
}

func (f FallbackSource) ListQuestions(ctx context.Context) ([]Record, error) {
	recs, err := f.Primary.ListQuestions(ctx)
	if err != nil {
		return nil, err
	}
	if len(recs) > 0 || f.Secondary == nil {
		return recs, nil
	}
	return f.Secondary.ListQuestions(ctx)
}

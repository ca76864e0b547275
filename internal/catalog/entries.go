package catalog

import "sync"

var (
	defaultOnce sync.Once
	defaultCat  *Catalog
)

// Default returns the built-in catalog. It is constructed once per process.
func Default() *Catalog {
	defaultOnce.Do(func() {
		defaultCat = New(builtinEntries(), DefaultFallback)
	})
	return defaultCat
}

func builtinEntries() []Entry {
	return []Entry{
		{
			Key:   RevisiDIPA,
			Title: "Revisi DIPA (bobot 10%)",
			HTML: `<p>Mengukur frekuensi revisi DIPA yang menjadi kewenangan KPA dalam satu periode penilaian.</p>
<p><b>Rumus:</b> Nilai = 100 &minus; (jumlah revisi di atas batas toleransi &times; pengurang per revisi)</p>
<p>Revisi karena kebijakan pemerintah, bencana, atau perubahan pagu dari pusat tidak dihitung.</p>`,
		},
		{
			Key:   DeviasiHalamanIII,
			Title: "Deviasi Halaman III DIPA (bobot 15%)",
			HTML: `<p>Selisih antara realisasi anggaran bulanan dengan Rencana Penarikan Dana pada Halaman III DIPA.</p>
<p><b>Rumus:</b> Deviasi = |Realisasi &minus; Rencana| / Rencana &times; 100%<br>
Nilai = 100 &minus; rata-rata deviasi bulanan tertimbang per jenis belanja</p>`,
		},
		{
			Key:   PenyerapanAnggaran,
			Title: "Penyerapan Anggaran (bobot 20%)",
			HTML: `<p>Perbandingan realisasi belanja dengan pagu pada setiap akhir triwulan terhadap target penyerapan triwulanan.</p>
<p><b>Rumus:</b> Nilai = (Realisasi s.d. triwulan / Target penyerapan triwulan) &times; 100, maksimal 100</p>
<p>Target kumulatif: Tw I 15%, Tw II 50%, Tw III 70%, Tw IV 90%.</p>`,
		},
		{
			Key:   BelanjaKontraktual,
			Title: "Belanja Kontraktual (bobot 10%)",
			HTML: `<p>Ketepatan waktu penyampaian data kontrak ke KPPN serta akselerasi kontrak pra-DIPA dan kontrak di awal tahun.</p>
<p><b>Rumus:</b> Nilai = (jumlah kontrak tepat waktu / jumlah kontrak) &times; 100, ditambah komponen akselerasi</p>`,
		},
		{
			Key:   PenyelesaianTagihan,
			Title: "Penyelesaian Tagihan (bobot 10%)",
			HTML: `<p>Ketepatan waktu penyelesaian tagihan kontraktual, yaitu penyampaian SPM-LS paling lambat 17 hari kerja setelah BAST.</p>
<p><b>Rumus:</b> Nilai = (jumlah SPM-LS kontraktual tepat waktu / jumlah SPM-LS kontraktual) &times; 100</p>`,
		},
		{
			Key:   PengelolaanUPTUP,
			Title: "Pengelolaan UP dan TUP (bobot 10%)",
			HTML: `<p>Ketepatan waktu pertanggungjawaban Uang Persediaan (GUP) dan Tambahan Uang Persediaan (PTUP), serta proporsi penggunaan Kartu Kredit Pemerintah.</p>
<p><b>Rumus:</b> Nilai = rata-rata tertimbang dari ketepatan GUP, ketepatan PTUP, dan proporsi KKP</p>`,
		},
		{
			Key:   CapaianOutput,
			Title: "Capaian Output (bobot 25%)",
			HTML: `<p>Ketepatan waktu dan kualitas pelaporan capaian output Rincian Output (RO) melalui aplikasi.</p>
<p><b>Rumus:</b> Nilai = (ketepatan waktu pelaporan &times; 30%) + (capaian RO &times; 70%)</p>`,
		},
		{
			Key:   DispensasiSPM,
			Title: "Dispensasi SPM (pengurang)",
			HTML: `<p>Bukan indikator berbobot. Setiap dispensasi penyampaian SPM yang melewati batas waktu menjadi pengurang nilai.</p>
<p><b>Rumus:</b> Nilai Akhir dikurangi pengurang dispensasi sesuai jumlah SPM yang memperoleh dispensasi dalam periode penilaian</p>`,
		},
		{
			Key:   KualitasPerencanaan,
			Title: "Aspek Kualitas Perencanaan Anggaran (bobot 25%)",
			HTML: `<p>Aspek yang menilai kesesuaian pelaksanaan dengan perencanaan.</p>
<p><b>Rumus:</b> Nilai Aspek = (Revisi DIPA &times; 10% + Deviasi Halaman III DIPA &times; 15%) / 25% </p>`,
		},
		{
			Key:   KualitasPelaksanaan,
			Title: "Aspek Kualitas Pelaksanaan Anggaran (bobot 50%)",
			HTML: `<p>Aspek yang menilai kemampuan satker merealisasikan anggaran.</p>
<p><b>Rumus:</b> Nilai Aspek = (Penyerapan Anggaran &times; 20% + Belanja Kontraktual &times; 10% + Penyelesaian Tagihan &times; 10% + Pengelolaan UP dan TUP &times; 10%) / 50%</p>`,
		},
		{
			Key:   KualitasHasil,
			Title: "Aspek Kualitas Hasil Pelaksanaan Anggaran (bobot 25%)",
			HTML: `<p>Aspek yang menilai kemampuan satker mencapai output yang ditetapkan.</p>
<p><b>Rumus:</b> Nilai Aspek = Capaian Output</p>`,
		},
		{
			Key:   KonversiBobot,
			Title: "Konversi Bobot",
			HTML: `<p>Jumlah bobot indikator yang dapat dinilai. Indikator yang tidak memiliki data pada periode berjalan dikeluarkan dari penyebut sehingga nilai tetap berskala 100.</p>
<p><b>Rumus:</b> Konversi Bobot = &sum; bobot indikator yang dinilai</p>`,
		},
		{
			Key:   NilaiAkhirAspek,
			Title: "Nilai Akhir IKPA (tingkat aspek)",
			HTML: `<p>Nilai akhir dihitung dari tiga aspek.</p>
<p><b>Rumus:</b> Nilai Akhir = (Perencanaan &times; 25% + Pelaksanaan &times; 50% + Hasil &times; 25%) / Konversi Bobot &minus; Dispensasi SPM</p>
<p>Kategori: Sangat Baik &ge; 95; Baik 89&ndash;&lt;95; Cukup 70&ndash;&lt;89; Kurang &lt; 70.</p>`,
		},
		{
			Key:   NilaiAkhirKomponen,
			Title: "Nilai Akhir IKPA (tingkat indikator)",
			HTML: `<p>Nilai akhir dihitung langsung dari nilai tertimbang setiap indikator.</p>
<p><b>Rumus:</b> Nilai Total = &sum; (nilai indikator &times; bobot indikator)<br>
Nilai Akhir = Nilai Total / Konversi Bobot &minus; Dispensasi SPM</p>`,
		},
	}
}

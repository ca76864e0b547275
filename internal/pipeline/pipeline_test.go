package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/satkerboard/ikpagrid/internal/annotate"
	"github.com/satkerboard/ikpagrid/internal/catalog"
	"github.com/satkerboard/ikpagrid/internal/loader"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

const componentCSV = `No,Kode Satker,Uraian Satker-RINGKAS,Revisi DIPA,Nilai Total,Nilai Akhir (Nilai Total/Konversi Bobot)
7,012345,Satker A,100,950,95
8,012346,Satker B,80,850,85
9,012347,Satker C,90,900,90
`

const aspectJSON = `[
  {"Kode Satker": "012345", "Kualitas Perencanaan Anggaran": 96.5, "Nilai Akhir (Nilai Total/Konversi Bobot)": 94.1}
]`

func TestNew_Validation(t *testing.T) {
	_, err := New(Config{})
	assert.ErrorIs(t, err, ErrNoInputs)

	_, err = New(Config{Inputs: []string{"data.txt"}})
	assert.ErrorIs(t, err, loader.ErrUnsupportedFormat)

	_, err = New(Config{Inputs: []string{"a.csv"}, Where: "row["})
	assert.Error(t, err)
}

func TestRun_OrderAndAnnotation(t *testing.T) {
	dir := t.TempDir()
	comp := writeFile(t, dir, "komponen.csv", componentCSV)
	aspect := writeFile(t, dir, "aspek.json", aspectJSON)

	p, err := New(Config{Inputs: []string{comp, aspect}, Concurrency: 2})
	require.NoError(t, err)
	res, err := p.Run(context.Background())
	require.NoError(t, err)

	require.Len(t, res.Inputs, 2)
	assert.Equal(t, comp, res.Inputs[0].Path)
	assert.Equal(t, aspect, res.Inputs[1].Path)
	assert.Empty(t, res.Failed())

	specs := res.Specs()
	require.Len(t, specs, 2)

	c, _ := specs[0].Column(catalog.ColumnNilaiAkhir)
	assert.Equal(t, catalog.NilaiAkhirKomponen, c.Explanation)
	assert.Equal(t, []string{annotate.InternalTotalColumn}, specs[0].Hidden())
	assert.Equal(t, 3, res.Inputs[0].Rows)
	v, _ := specs[0].Rows[0].Values.Get(annotate.SequenceColumn)
	assert.Equal(t, 1, v)

	c, _ = specs[1].Column(catalog.ColumnNilaiAkhir)
	assert.Equal(t, catalog.NilaiAkhirAspek, c.Explanation)
}

func TestRun_WhereFilterBeforeNumbering(t *testing.T) {
	dir := t.TempDir()
	comp := writeFile(t, dir, "komponen.csv", componentCSV)

	p, err := New(Config{Inputs: []string{comp}, Where: `row["Revisi DIPA"] >= 90`})
	require.NoError(t, err)
	res, err := p.Run(context.Background())
	require.NoError(t, err)

	spec := res.Specs()[0]
	require.Len(t, spec.Rows, 2)
	assert.Equal(t, 1, spec.Rows[0].Seq)
	assert.Equal(t, 2, spec.Rows[1].Seq)
	name, _ := spec.Rows[1].Values.Get(annotate.UnitNameColumn)
	assert.Equal(t, "Satker C", name)
}

func TestRun_WhereWithBlankCells(t *testing.T) {
	dir := t.TempDir()
	comp := writeFile(t, dir, "komponen.csv", `Kode Satker,Uraian Satker-RINGKAS,Revisi DIPA,Nilai Total
012345,Satker A,100,950
012346,Satker B,,850
`)

	p, err := New(Config{Inputs: []string{comp}, Where: `row["Revisi DIPA"] >= 90`})
	require.NoError(t, err)
	res, err := p.Run(context.Background())
	require.NoError(t, err)
	assert.Empty(t, res.Failed())

	spec := res.Specs()[0]
	require.Len(t, spec.Rows, 1)
	name, _ := spec.Rows[0].Values.Get(annotate.UnitNameColumn)
	assert.Equal(t, "Satker A", name)

	none, err := New(Config{Inputs: []string{comp}, Where: `row["Revisi DIPA"] > 100`})
	require.NoError(t, err)
	res, err = none.Run(context.Background())
	require.NoError(t, err)
	spec = res.Specs()[0]
	assert.Empty(t, spec.Rows)
	assert.Equal(t, []string{annotate.InternalTotalColumn}, spec.Hidden())
}

func TestRun_FailingInput(t *testing.T) {
	dir := t.TempDir()
	comp := writeFile(t, dir, "komponen.csv", componentCSV)
	missing := filepath.Join(dir, "hilang.csv")

	p, err := New(Config{Inputs: []string{missing, comp}})
	require.NoError(t, err)
	res, err := p.Run(context.Background())
	require.NoError(t, err)

	failed := res.Failed()
	require.Len(t, failed, 1)
	assert.Equal(t, missing, failed[0].Path)
	assert.ErrorIs(t, failed[0].Err, os.ErrNotExist)
	assert.Len(t, res.Specs(), 1)

	strict, err := New(Config{Inputs: []string{missing, comp}, Strict: true})
	require.NoError(t, err)
	_, err = strict.Run(context.Background())
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRun_CustomCatalogAndOptions(t *testing.T) {
	dir := t.TempDir()
	comp := writeFile(t, dir, "komponen.csv", componentCSV)
	cat := catalog.New([]catalog.Entry{{Key: catalog.CapaianOutput, Title: "c"}}, "")

	p, err := New(Config{
		Inputs:  []string{comp},
		Catalog: cat,
		Options: annotate.Options{UnitNameLabel: "Satuan Kerja"},
	})
	require.NoError(t, err)
	res, err := p.Run(context.Background())
	require.NoError(t, err)

	spec := res.Specs()[0]
	assert.Equal(t, []string{catalog.ColumnNilaiAkhir}, spec.Annotated(), "Revisi DIPA has no entry here")
	col, _ := spec.Column(annotate.UnitNameColumn)
	assert.Equal(t, "Satuan Kerja", col.Label)
}

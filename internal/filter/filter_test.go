package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/satkerboard/ikpagrid/internal/table"
)

func sample() *table.Table {
	return &table.Table{
		Name:    "Komponen",
		Columns: []string{"Kode Satker", "Uraian Satker-RINGKAS", "Capaian Output"},
		Rows: []table.Row{
			{"012345", "Satker A", 98.5},
			{"012346", "Satker B", int64(72)},
			{"022001", "Satker C", 90.0},
		},
	}
}

func TestCompile_Empty(t *testing.T) {
	f, err := Compile("  ")
	require.NoError(t, err)
	assert.Nil(t, f)

	tbl := sample()
	out := f.Apply(tbl)
	assert.Same(t, tbl, out)
	assert.Equal(t, "", f.String())
}

func TestCompile_Cached(t *testing.T) {
	a, err := Compile(`row["Capaian Output"] > 1`)
	require.NoError(t, err)
	b, err := Compile(`row["Capaian Output"] > 1`)
	require.NoError(t, err)
	assert.Same(t, a, b)
}

func TestCompile_Invalid(t *testing.T) {
	_, err := Compile(`row["Capaian Output"] >`)
	assert.Error(t, err)

	_, err = Compile(`"not a bool"`)
	assert.Error(t, err)
}

func TestApply(t *testing.T) {
	tests := []struct {
		expr string
		want []string
	}{
		{`row["Capaian Output"] >= 90`, []string{"Satker A", "Satker C"}},
		{`row["Kode Satker"] startsWith "01"`, []string{"Satker A", "Satker B"}},
		{`index == 1`, []string{"Satker B"}},
		{`row["Uraian Satker-RINGKAS"] in ["Satker C"]`, []string{"Satker C"}},
	}
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			f, err := Compile(tt.expr)
			require.NoError(t, err)
			tbl := sample()
			out := f.Apply(tbl)

			var names []string
			for _, r := range out.Rows {
				names = append(names, r[1].(string))
			}
			assert.Equal(t, tt.want, names)
			assert.Len(t, tbl.Rows, 3, "input untouched")
		})
	}
}

func TestApply_BlankCellDoesNotMatch(t *testing.T) {
	f, err := Compile(`row["Capaian Output"] >= 90`)
	require.NoError(t, err)
	tbl := &table.Table{
		Name:    "Komponen",
		Columns: []string{"Kode Satker", "Capaian Output"},
		Rows:    []table.Row{{"012345", 95.0}, {"012346", nil}, {"012347", int64(91)}},
	}
	out := f.Apply(tbl)
	require.Len(t, out.Rows, 2)
	assert.Equal(t, "012345", out.Rows[0][0])
	assert.Equal(t, "012347", out.Rows[1][0])
}

func TestMatch_RuntimeError(t *testing.T) {
	f, err := Compile(`row["Capaian Output"] / row["Kode Satker"] > 1`)
	require.NoError(t, err)
	_, err = f.Match(sample().Record(0), 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "evaluate filter")

	out := f.Apply(sample())
	assert.Empty(t, out.Rows)
}

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/satkerboard/ikpagrid/internal/annotate"
	"github.com/satkerboard/ikpagrid/internal/testable"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(content), 0o600))
}

func TestLoad_Missing(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, &Config{}, cfg)
}

func TestLoad_Full(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `output_format: markdown
title: IKPA Kanwil
catalog_file: katalog.yaml
number_format: "#,###.##"
fallback_text: Belum ada
sheet: Komponen
where: 'row["Capaian Output"] > 0'
row_styles:
  even:
    background: "#ffffff"
  odd:
    background: "#eeeeee"
    foreground: "#111111"
columns:
  sequence_width: 40
  unit_name_label: Satuan Kerja
`)
	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "markdown", cfg.OutputFormat)
	assert.Equal(t, "Komponen", cfg.Sheet)
	assert.Equal(t, "#eeeeee", cfg.RowStyles.Odd.Background)
	assert.Equal(t, 40, cfg.Columns.SequenceWidth)
	require.NoError(t, Validate(cfg))

	opts := cfg.AnnotateOptions()
	assert.Equal(t, annotate.RowStyle{Background: "#eeeeee", Foreground: "#111111"}, opts.OddStyle)
	assert.Equal(t, "Satuan Kerja", opts.UnitNameLabel)
	assert.Zero(t, opts.UnitCodeWidth)
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "output_format: [")
	_, err := Load(dir)
	assert.Error(t, err)
}

func TestLoad_ReadError(t *testing.T) {
	saved := FS
	defer func() { FS = saved }()
	FS = &testable.MockFileSystem{
		ReadFileFn: func(string) ([]byte, error) { return nil, os.ErrPermission },
	}
	_, err := Load(".")
	assert.ErrorIs(t, err, os.ErrPermission)
}

func TestLoadGlobal_XDG(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)
	assert.Equal(t, filepath.Join(xdg, "ikpagrid", "config.yaml"), GlobalConfigPath())

	require.NoError(t, os.MkdirAll(filepath.Join(xdg, "ikpagrid"), 0o750))
	require.NoError(t, os.WriteFile(GlobalConfigPath(), []byte("output_format: json\ntitle: Global\n"), 0o600))

	dir := t.TempDir()
	writeConfig(t, dir, "title: Repo\n")

	cfg, err := LoadLayered(dir)
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.OutputFormat)
	assert.Equal(t, "Repo", cfg.Title)
}

func TestMerge(t *testing.T) {
	file := &Config{
		OutputFormat: "html",
		Title:        "File",
		RowStyles:    RowStyles{Odd: StyleConfig{Background: "#eeeeee"}},
		Columns:      ColumnsConfig{UnitNameWidth: 300},
	}
	cli := &Config{
		Title:   "CLI",
		Columns: ColumnsConfig{UnitCodeWidth: 90},
	}
	got := Merge(file, cli)

	assert.Equal(t, "html", got.OutputFormat)
	assert.Equal(t, "CLI", got.Title)
	assert.Equal(t, "#eeeeee", got.RowStyles.Odd.Background)
	assert.Equal(t, 300, got.Columns.UnitNameWidth)
	assert.Equal(t, 90, got.Columns.UnitCodeWidth)
	assert.Equal(t, "File", file.Title, "inputs untouched")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want []string
	}{
		{"zero", Config{}, nil},
		{"defaults", *Defaults(), nil},
		{"bad format", Config{OutputFormat: "pdf"}, []string{`output_format: unknown format: "pdf"`}},
		{"bad catalog", Config{CatalogFile: "katalog.json"}, []string{"catalog_file:"}},
		{"bad number format", Config{NumberFormat: "0.00"}, []string{"number_format:"}},
		{"bad where", Config{Where: "row["}, []string{"where:"}},
		{"bad colour", Config{RowStyles: RowStyles{Even: StyleConfig{Background: "white"}, Odd: StyleConfig{Foreground: "#12"}}}, []string{
			"row_styles.even.background:", "row_styles.odd.foreground:",
		}},
		{"bad width", Config{Columns: ColumnsConfig{SequenceWidth: -1, UnitCodeWidth: 5000}}, []string{
			"columns.sequence_width:", "columns.unit_code_width:",
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(&tt.cfg)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, strings.HasPrefix(err.Error(), "config validation failed:"))
			for _, w := range tt.want {
				assert.Contains(t, err.Error(), w)
			}
		})
	}
}

func TestWriteFileAndLoadRaw(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	raw, err := LoadRaw(path)
	require.NoError(t, err)
	assert.Empty(t, raw)
	assert.False(t, Exists(path))

	require.NoError(t, SetValue(raw, "row_styles.odd.background", "#eeeeee"))
	require.NoError(t, SetValue(raw, "columns.unit_code_width", "120"))
	require.NoError(t, WriteFile(path, raw))
	assert.True(t, Exists(path))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "#eeeeee", cfg.RowStyles.Odd.Background)
	assert.Equal(t, 120, cfg.Columns.UnitCodeWidth)
}

func TestWrite_Defaults(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, Write(&sb, Defaults()))
	out := sb.String()
	assert.Contains(t, out, "output_format: html")
	assert.Contains(t, out, "unit_name_label: Uraian Satker")
	assert.NotContains(t, out, "catalog_file")
}

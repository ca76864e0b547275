package main

import (
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/satkerboard/ikpagrid/internal/config"
	"github.com/satkerboard/ikpagrid/internal/output"
	"github.com/satkerboard/ikpagrid/internal/testable"
)

// envelope is the part of the JSON document the command tests inspect.
type envelope struct {
	Tables []struct {
		Title string `json:"title"`
	} `json:"tables"`
	Metadata output.JSONMetadata `json:"metadata"`
}

func decodeEnvelope(t *testing.T, data []byte) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(data, &env))
	return env
}

func TestRender_SemicolonDecimalsAndBlankCells(t *testing.T) {
	dir := workdir(t)
	aspek := writeTestFile(t, dir, "aspek.csv", aspectCSV)

	cmd, stdout, _ := newTestCmd(t)
	cmd.SetArgs([]string{"render", "-f", "json", "--where", `row["Kualitas Perencanaan Anggaran"] > 92`, aspek})
	require.NoError(t, cmd.Execute())

	env := decodeEnvelope(t, stdout.Bytes())
	assert.Equal(t, 1, env.Metadata.RowCount)
}

func TestRender_JSON(t *testing.T) {
	dir := workdir(t)
	komponen := writeTestFile(t, dir, "komponen.csv", componentCSV)
	aspek := writeTestFile(t, dir, "aspek.csv", aspectCSV)

	cmd, stdout, _ := newTestCmd(t)
	cmd.SetArgs([]string{"render", "-f", "json", komponen, aspek})
	require.NoError(t, cmd.Execute())

	var raw struct {
		Tables []struct {
			Title   string `json:"title"`
			Columns []struct {
				Name        string `json:"name"`
				Explanation string `json:"explanation"`
			} `json:"columns"`
		} `json:"tables"`
	}
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &raw))
	require.Len(t, raw.Tables, 2)
	assert.Equal(t, "komponen", raw.Tables[0].Title, "input order is kept")
	assert.Equal(t, "aspek", raw.Tables[1].Title)

	final := func(i int) string {
		for _, c := range raw.Tables[i].Columns {
			if c.Name == "Nilai Akhir (Nilai Total/Konversi Bobot)" {
				return c.Explanation
			}
		}
		return ""
	}
	assert.Equal(t, "Nilai Akhir (Komponen)", final(0))
	assert.Equal(t, "Nilai Akhir (Aspek)", final(1))

	env := decodeEnvelope(t, stdout.Bytes())
	assert.Equal(t, 5, env.Metadata.RowCount)
	assert.Equal(t, output.DefaultTitle, env.Metadata.Title)
}

func TestRender_DefaultsToHTML(t *testing.T) {
	dir := workdir(t)
	komponen := writeTestFile(t, dir, "komponen.csv", componentCSV)

	cmd, stdout, _ := newTestCmd(t)
	cmd.SetArgs([]string{"render", komponen, "--title", "IKPA Kanwil"})
	require.NoError(t, cmd.Execute())

	out := stdout.String()
	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
	assert.Contains(t, out, "IKPA Kanwil")
	assert.Contains(t, out, "Satker Gamma")
}

func TestRender_WhereAndMarkdown(t *testing.T) {
	dir := workdir(t)
	komponen := writeTestFile(t, dir, "komponen.csv", componentCSV)

	cmd, stdout, _ := newTestCmd(t)
	cmd.SetArgs([]string{"render", komponen, "-f", "markdown", "--where", `row["Capaian Output"] < 90`})
	require.NoError(t, cmd.Execute())

	out := stdout.String()
	assert.Contains(t, out, "Satker Alpha")
	assert.Contains(t, out, "Satker Gamma")
	assert.NotContains(t, out, "Satker Beta")
	assert.Contains(t, out, "75,50")
	assert.Contains(t, out, "## komponen (2 baris)")
}

func TestRender_ConfigFileAndFlagPrecedence(t *testing.T) {
	dir := workdir(t)
	komponen := writeTestFile(t, dir, "komponen.csv", componentCSV)
	writeTestFile(t, dir, config.FileName, "output_format: markdown\nnumber_format: \"#,###.##\"\ntitle: Dari Config\n")

	cmd, stdout, _ := newTestCmd(t)
	cmd.SetArgs([]string{"render", komponen})
	require.NoError(t, cmd.Execute())
	out := stdout.String()
	assert.True(t, strings.HasPrefix(out, "# Dari Config"))
	assert.Contains(t, out, "75.50")

	cmd, stdout, _ = newTestCmd(t)
	cmd.SetArgs([]string{"render", komponen, "-f", "json", "--title", "Dari Flag"})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "Dari Flag", decodeEnvelope(t, stdout.Bytes()).Metadata.Title)
}

func TestRender_OutputFile(t *testing.T) {
	dir := workdir(t)
	komponen := writeTestFile(t, dir, "komponen.csv", componentCSV)
	target := filepath.Join(dir, "ikpa.json")

	cmd, stdout, _ := newTestCmd(t)
	cmd.SetArgs([]string{"render", komponen, "-f", "json", "-o", target})
	require.NoError(t, cmd.Execute())
	assert.Empty(t, stdout.String())

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Len(t, decodeEnvelope(t, data).Tables, 1)
}

func TestRender_PartialFailure(t *testing.T) {
	dir := workdir(t)
	komponen := writeTestFile(t, dir, "komponen.csv", componentCSV)
	empty := writeTestFile(t, dir, "kosong.csv", "")

	cmd, stdout, _ := newTestCmd(t)
	cmd.SetArgs([]string{"render", "-f", "json", komponen, empty})
	require.NoError(t, cmd.Execute(), "non-strict runs skip failing inputs")
	assert.Len(t, decodeEnvelope(t, stdout.Bytes()).Tables, 1)

	cmd, _, _ = newTestCmd(t)
	cmd.SetArgs([]string{"render", "-f", "json", "--strict", komponen, empty})
	requireExitCode(t, cmd.Execute(), ExitLoadFailure)
}

func TestRender_AllInputsFail(t *testing.T) {
	dir := workdir(t)
	empty := writeTestFile(t, dir, "kosong.csv", "")

	cmd, _, _ := newTestCmd(t)
	cmd.SetArgs([]string{"render", empty})
	err := cmd.Execute()
	requireExitCode(t, err, ExitLoadFailure)
	assert.Contains(t, err.Error(), "no header")
}

func TestRender_InvalidArgs(t *testing.T) {
	dir := workdir(t)
	komponen := writeTestFile(t, dir, "komponen.csv", componentCSV)
	notes := writeTestFile(t, dir, "notes.txt", "x")

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"missing file", []string{"render", filepath.Join(dir, "nope.xlsx")}, "does not exist"},
		{"directory", []string{"render", dir}, "is a directory"},
		{"unsupported extension", []string{"render", notes}, "unsupported input format"},
		{"unknown format", []string{"render", komponen, "-f", "pdf"}, "unknown format"},
		{"bad where", []string{"render", komponen, "--where", "row["}, "where"},
		{"bad number format", []string{"render", komponen, "--number-format", "0.00"}, "number_format"},
		{"missing catalog", []string{"render", komponen, "--catalog", filepath.Join(dir, "nope.yaml")}, "read catalog"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, _, _ := newTestCmd(t)
			cmd.SetArgs(tt.args)
			err := cmd.Execute()
			requireExitCode(t, err, ExitInvalidArgs)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestRender_RequiresArgs(t *testing.T) {
	workdir(t)
	cmd, _, _ := newTestCmd(t)
	cmd.SetArgs([]string{"render"})
	assert.Error(t, cmd.Execute())
}

func TestRender_AbsError(t *testing.T) {
	workdir(t)
	withMockFS(t, &testable.MockFileSystem{
		AbsFn: func(string) (string, error) { return "", errors.New("mock abs error") },
	})

	cmd, _, _ := newTestCmd(t)
	cmd.SetArgs([]string{"render", "ikpa.xlsx"})
	err := cmd.Execute()
	requireExitCode(t, err, ExitInvalidArgs)
	assert.Contains(t, err.Error(), "cannot resolve path")
}

func TestRender_CreateError(t *testing.T) {
	dir := workdir(t)
	komponen := writeTestFile(t, dir, "komponen.csv", componentCSV)
	withMockFS(t, &testable.MockFileSystem{
		CreateFn: func(string) (io.WriteCloser, error) { return nil, os.ErrPermission },
	})

	cmd, _, _ := newTestCmd(t)
	cmd.SetArgs([]string{"render", komponen, "-o", filepath.Join(dir, "out.html")})
	err := cmd.Execute()
	requireExitCode(t, err, ExitRenderFailure)
	assert.Contains(t, err.Error(), "cannot create output file")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }
func (failingWriter) Close() error              { return nil }

func TestRender_WriteError(t *testing.T) {
	dir := workdir(t)
	komponen := writeTestFile(t, dir, "komponen.csv", componentCSV)
	withMockFS(t, &testable.MockFileSystem{
		CreateFn: func(string) (io.WriteCloser, error) { return failingWriter{}, nil },
	})

	cmd, _, _ := newTestCmd(t)
	cmd.SetArgs([]string{"render", komponen, "-f", "json", "-o", "out.json"})
	err := cmd.Execute()
	requireExitCode(t, err, ExitRenderFailure)
	assert.Contains(t, err.Error(), "disk full")
}

package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/satkerboard/ikpagrid/internal/testable"
)

const componentCSV = `No,Kode Satker,Uraian Satker-RINGKAS,Revisi DIPA,Capaian Output,Nilai Total,Nilai Akhir (Nilai Total/Konversi Bobot)
1,012345,Satker Alpha,90,75.5,880,95.5
2,012346,Satker Beta,80,99,780,88
3,012347,Satker Gamma,100,60,700,70
`

const aspectCSV = `Uraian Satker-RINGKAS;Kode Satker;Kualitas Perencanaan Anggaran;Nilai Akhir (Nilai Total/Konversi Bobot)
Satker Alpha;012345;92,5;94
Satker Beta;012346;;90
`

// newTestCmd resets every command flag, redirects rootCmd's output to
// buffers and returns them.
func newTestCmd(t *testing.T) (*cobra.Command, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	for _, c := range []*cobra.Command{rootCmd, renderCmd, explainCmd, catalogCmd, initCmd, mcpServeCmd} {
		resetFlags(c.Flags())
	}
	resetFlags(rootCmd.PersistentFlags())
	for _, c := range configCmd.Commands() {
		resetFlags(c.Flags())
	}
	explainWith = nil

	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	return rootCmd, stdout, stderr
}

// resetFlags restores flag values and the Changed state between runs of the
// shared command tree.
func resetFlags(fs *pflag.FlagSet) {
	fs.VisitAll(func(f *pflag.Flag) {
		f.Changed = false
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
			return
		}
		_ = f.Value.Set(f.DefValue)
	})
}

// workdir creates an isolated working directory with empty global config
// and changes into it.
func workdir(t *testing.T) string {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	t.Chdir(dir)
	return dir
}

func writeTestFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// withMockFS swaps cmdFS with the given mock and restores it on test cleanup.
func withMockFS(t *testing.T, mock *testable.MockFileSystem) {
	t.Helper()
	orig := cmdFS
	cmdFS = mock
	t.Cleanup(func() { cmdFS = orig })
}

func requireExitCode(t *testing.T, err error, code int) {
	t.Helper()
	require.Error(t, err)
	var ece *exitCodeError
	require.True(t, errors.As(err, &ece), "want exitCodeError, got %T: %v", err, err)
	assert.Equal(t, code, ece.ExitCode(), ece.Error())
}

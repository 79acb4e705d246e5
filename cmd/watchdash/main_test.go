package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/watchdash/internal/providers"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("WATCHDASH_CONFIG", "")
	chdir(t, t.TempDir())

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func providerDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	for id, manifest := range map[string]string{
		"aws":          "name = \"Amazon Web Services\"\ndescription = \"CDK stacks\"\n",
		"google-cloud": "",
	} {
		require.NoError(t, os.MkdirAll(filepath.Join(dir, id), 0o755))
		if manifest != "" {
			require.NoError(t, os.WriteFile(filepath.Join(dir, id, providers.ManifestFile), []byte(manifest), 0o644))
		}
	}
	return dir
}

func TestProvidersList(t *testing.T) {
	dir := providerDir(t)
	out, err := runCLI(t, "--providers-dir", dir, "providers", "list")
	require.NoError(t, err)
	require.Contains(t, out, "Amazon Web Services")
	require.Contains(t, out, "CDK stacks")
	require.Contains(t, out, "Google Cloud")
}

func TestProvidersListEmpty(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "missing")
	out, err := runCLI(t, "--providers-dir", dir, "providers", "list")
	require.NoError(t, err)
	require.Contains(t, out, "No providers found in:")
	require.Contains(t, out, dir)
}

func TestProvidersShow(t *testing.T) {
	dir := providerDir(t)
	out, err := runCLI(t, "--providers-dir", dir, "providers", "show", "aws")
	require.NoError(t, err)
	require.Contains(t, out, "name:        Amazon Web Services")
	require.Contains(t, out, "description: CDK stacks")
}

func TestProvidersShowSuggestsTypo(t *testing.T) {
	dir := providerDir(t)
	_, err := runCLI(t, "--providers-dir", dir, "providers", "show", "awz")
	require.ErrorIs(t, err, providers.ErrUnknownProvider)
	require.Contains(t, err.Error(), `did you mean "aws"?`)
}

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(old) })
}

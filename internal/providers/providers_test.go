package providers

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeProvider(t *testing.T, dir, id, manifest string) {
	t.Helper()
	root := filepath.Join(dir, id)
	require.NoError(t, os.MkdirAll(root, 0o755))
	if manifest != "" {
		require.NoError(t, os.WriteFile(filepath.Join(root, ManifestFile), []byte(manifest), 0o644))
	}
}

func TestListSortsAndSkipsHiddenAndFiles(t *testing.T) {
	dir := t.TempDir()
	writeProvider(t, dir, "gcp", "")
	writeProvider(t, dir, "aws", "")
	writeProvider(t, dir, ".cache", "")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("x"), 0o644))

	require.Equal(t, []string{"aws", "gcp"}, List(dir))
}

func TestListMissingDirectoryIsEmpty(t *testing.T) {
	require.Empty(t, List(filepath.Join(t.TempDir(), "nope")))
	require.Empty(t, List(""))
}

func TestListReflectsDirectoryChanges(t *testing.T) {
	dir := t.TempDir()
	writeProvider(t, dir, "aws", "")
	require.Equal(t, []string{"aws"}, List(dir))

	writeProvider(t, dir, "fly", "")
	require.Equal(t, []string{"aws", "fly"}, List(dir))
}

func TestDisplayName(t *testing.T) {
	dir := t.TempDir()
	writeProvider(t, dir, "aws", "name = \"Amazon Web Services\"\ndescription = \"CDK\"\n")
	writeProvider(t, dir, "google-cloud", "")
	writeProvider(t, dir, "blank_name", "name = \"  \"\n")

	tests := []struct {
		id   string
		want string
	}{
		{id: "aws", want: "Amazon Web Services"},
		{id: "google-cloud", want: "Google Cloud"},
		{id: "blank_name", want: "Blank Name"},
		{id: "missing", want: "Missing"},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			require.Equal(t, tt.want, DisplayName(tt.id, dir))
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	writeProvider(t, dir, "aws", "name = \"AWS\"\ndescription = \"CDK\"\n")
	writeProvider(t, dir, "bare", "")
	writeProvider(t, dir, "broken", "name = \n")

	m, err := Load("aws", dir)
	require.NoError(t, err)
	require.Equal(t, Manifest{Name: "AWS", Description: "CDK"}, m)

	m, err = Load("bare", dir)
	require.NoError(t, err)
	require.Equal(t, Manifest{}, m)

	_, err = Load("broken", dir)
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrUnknownProvider)

	_, err = Load("nope", dir)
	require.ErrorIs(t, err, ErrUnknownProvider)

	_, err = Load("../aws", dir)
	require.ErrorIs(t, err, ErrUnknownProvider)
}

func TestHumanize(t *testing.T) {
	require.Equal(t, "Google Cloud Run", Humanize("google-cloud_run"))
	require.Equal(t, "Fly", Humanize("fly"))
	require.Equal(t, "", Humanize(""))
}

func TestSuggest(t *testing.T) {
	ids := []string{"aws", "azure", "gcp"}

	got, ok := Suggest("awz", ids)
	require.True(t, ok)
	require.Equal(t, "aws", got)

	got, ok = Suggest("GCP", ids)
	require.True(t, ok)
	require.Equal(t, "gcp", got)

	_, ok = Suggest("kubernetes", ids)
	require.False(t, ok)

	_, ok = Suggest("", ids)
	require.False(t, ok)
}

func TestDirCatalogDelegates(t *testing.T) {
	dir := t.TempDir()
	writeProvider(t, dir, "aws", "name = \"AWS\"\n")

	var c Dir
	require.Equal(t, []string{"aws"}, c.List(dir))
	require.Equal(t, "AWS", c.DisplayName("aws", dir))
}

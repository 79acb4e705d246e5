// Package providers reads the deploy provider directory.
//
// A provider is a subdirectory of the providers directory. Its name is the
// provider identifier. An optional provider.toml manifest inside it supplies
// the human readable name shown in the dashboard.
package providers

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
	"github.com/agnivade/levenshtein"
)

// ManifestFile is the optional per-provider manifest name.
const ManifestFile = "provider.toml"

// maxSuggestDistance bounds how far a typo may be from a known provider.
const maxSuggestDistance = 2

var ErrUnknownProvider = errors.New("unknown provider")

// Manifest holds the optional metadata of a provider.
type Manifest struct {
	Name        string `toml:"name"`
	Description string `toml:"description"`
}

// List returns the provider identifiers in dir, sorted. A missing or
// unreadable directory yields an empty list.
func List(dir string) []string {
	if strings.TrimSpace(dir) == "" {
		return nil
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		name := e.Name()
		if strings.HasPrefix(name, ".") || !isDir(dir, e) {
			continue
		}
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// DisplayName returns the manifest name of id, falling back to a humanized id.
func DisplayName(id, dir string) string {
	m, err := Load(id, dir)
	if err == nil && strings.TrimSpace(m.Name) != "" {
		return strings.TrimSpace(m.Name)
	}
	return Humanize(id)
}

// Load reads the manifest of id. A provider without a manifest returns the
// zero Manifest.
func Load(id, dir string) (Manifest, error) {
	if !validID(id) {
		return Manifest{}, fmt.Errorf("%w: %q", ErrUnknownProvider, id)
	}
	root := filepath.Join(dir, id)
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return Manifest{}, fmt.Errorf("%w: %q", ErrUnknownProvider, id)
	}
	var m Manifest
	if _, err := toml.DecodeFile(filepath.Join(root, ManifestFile), &m); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Manifest{}, nil
		}
		return Manifest{}, fmt.Errorf("parse %s manifest: %w", id, err)
	}
	return m, nil
}

// Humanize turns an identifier such as "google-cloud" into "Google Cloud".
func Humanize(id string) string {
	fields := strings.FieldsFunc(id, func(r rune) bool {
		return r == '-' || r == '_' || unicode.IsSpace(r)
	})
	for i, f := range fields {
		r, size := utf8.DecodeRuneInString(f)
		fields[i] = string(unicode.ToUpper(r)) + f[size:]
	}
	return strings.Join(fields, " ")
}

// Suggest returns the identifier in ids closest to id, if any is close enough
// to be a plausible typo.
func Suggest(id string, ids []string) (string, bool) {
	needle := strings.ToLower(strings.TrimSpace(id))
	if needle == "" {
		return "", false
	}
	best, bestDist := "", maxSuggestDistance+1
	for _, candidate := range ids {
		d := levenshtein.ComputeDistance(needle, strings.ToLower(candidate))
		if d < bestDist {
			best, bestDist = candidate, d
		}
	}
	if best == "" {
		return "", false
	}
	return best, true
}

// Dir is a provider catalog backed by the filesystem. Every call re-reads
// the directory.
type Dir struct{}

func (Dir) List(dir string) []string {
	return List(dir)
}

func (Dir) DisplayName(id, dir string) string {
	return DisplayName(id, dir)
}

func isDir(parent string, e os.DirEntry) bool {
	if e.IsDir() {
		return true
	}
	if e.Type()&os.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(filepath.Join(parent, e.Name()))
	return err == nil && info.IsDir()
}

func validID(id string) bool {
	id = strings.TrimSpace(id)
	return id != "" && id != "." && id != ".." && !strings.ContainsAny(id, `/\`)
}

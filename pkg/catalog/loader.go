package catalog

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formwizard/pkg/model"
)

type documentFile struct {
	Pages []model.Page `json:"pages" yaml:"pages"`
}

// LoadFS parses a JSON or YAML catalog file from fsys. Text coming from the
// file is sanitised before it enters the catalog.
func LoadFS(fsys fs.FS, path string) (*Catalog, error) {
	if fsys == nil {
		return nil, fmt.Errorf("catalog: filesystem is required")
	}
	if !isCatalogFile(path) {
		return nil, fmt.Errorf("catalog: unsupported file extension %q", filepath.Ext(path))
	}

	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", path, err)
	}

	return load(data, path)
}

// LoadBytes parses catalog content already in memory. format is a file
// extension (".json", ".yaml") or a bare format name ("json", "yaml").
func LoadBytes(data []byte, format string) (*Catalog, error) {
	source := "inline." + strings.TrimPrefix(strings.ToLower(strings.TrimSpace(format)), ".")
	if !isCatalogFile(source) {
		return nil, fmt.Errorf("catalog: unsupported format %q", format)
	}
	return load(data, source)
}

func load(data []byte, source string) (*Catalog, error) {
	doc, err := parseDocument(data, source)
	if err != nil {
		return nil, err
	}

	pages := make([]model.Page, 0, len(doc.Pages))
	for _, page := range doc.Pages {
		pages = append(pages, sanitizePage(page))
	}

	cat, err := New(pages...)
	if err != nil {
		return nil, fmt.Errorf("catalog: file %s: %w", source, err)
	}
	return cat, nil
}

// LoadFile is a convenience wrapper around LoadFS for a path on disk.
func LoadFile(path string) (*Catalog, error) {
	dir, name := filepath.Split(filepath.Clean(path))
	if dir == "" {
		dir = "."
	}
	return LoadFS(os.DirFS(dir), name)
}

func parseDocument(data []byte, source string) (documentFile, error) {
	var doc documentFile
	if len(strings.TrimSpace(string(data))) == 0 {
		return documentFile{}, fmt.Errorf("catalog: file %s is empty", source)
	}

	if strings.EqualFold(filepath.Ext(source), ".json") {
		if err := json.Unmarshal(data, &doc); err != nil {
			return documentFile{}, fmt.Errorf("catalog: parse %s: %w", source, err)
		}
		return doc, nil
	}

	if err := yaml.Unmarshal(data, &doc); err != nil {
		return documentFile{}, fmt.Errorf("catalog: parse %s: %w", source, err)
	}
	return doc, nil
}

func isCatalogFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}

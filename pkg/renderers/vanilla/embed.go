package vanilla

import (
	"embed"
	"fmt"
	"io/fs"
)

// Asset file names inside AssetsFS.
const (
	StylesheetName    = "formwizard.css"
	RuntimeScriptName = "formwizard.js"
)

//go:embed templates/*.tpl templates/components/*.tpl assets/*
var bundle embed.FS

var assets = mustSub(bundle, "assets")

// TemplatesFS exposes the page and control templates, rooted so names read
// "templates/form.tpl".
func TemplatesFS() fs.FS {
	return bundle
}

// AssetsFS exposes the stylesheet and browser runtime.
func AssetsFS() fs.FS {
	return assets
}

func readAsset(name string) (string, error) {
	data, err := fs.ReadFile(assets, name)
	if err != nil {
		return "", fmt.Errorf("vanilla renderer: read asset %s: %w", name, err)
	}
	return string(data), nil
}

func mustSub(fsys fs.FS, dir string) fs.FS {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		panic(err)
	}
	return sub
}

// Where: cli-rt/internal/infra/templategen/render.go
// What: Project template copier with `.tmpl` rendering.
// Why: Stamp the project name into starter files while keeping the copy non-clobbering.
package templategen

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/cli-rt/cli-rt/internal/infra/fileops"
)

// TemplateSuffix marks files rendered through text/template before writing.
const TemplateSuffix = ".tmpl"

// Data is exposed to `.tmpl` files.
type Data struct {
	ProjectName   string
	TemplateID    string
	TemplateLabel string
}

// Renderer copies template trees, rendering `.tmpl` files with Data.
type Renderer struct {
	Data Data
}

// Copy mirrors src into dst without overwriting existing files.
func (r Renderer) Copy(src, dst string) (fileops.CopyStats, error) {
	return fileops.CopyTree(src, dst, r.copyFile)
}

func (r Renderer) copyFile(src, dst string, mode fs.FileMode) (bool, error) {
	if !strings.HasSuffix(src, TemplateSuffix) {
		return fileops.CopyFileNoClobber(src, dst, mode)
	}

	dst = strings.TrimSuffix(dst, TemplateSuffix)
	if _, err := os.Lstat(dst); err == nil {
		return false, nil
	}
	rendered, err := r.render(src)
	if err != nil {
		return false, err
	}
	return fileops.WriteNoClobber(dst, bytes.NewReader(rendered), mode)
}

func (r Renderer) render(path string) ([]byte, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	tmpl, err := template.New(filepath.Base(path)).
		Funcs(sprig.TxtFuncMap()).
		Option("missingkey=error").
		Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, r.Data); err != nil {
		return nil, fmt.Errorf("render %s: %w", filepath.Base(path), err)
	}
	return buf.Bytes(), nil
}

// Package config provides the site configuration loader.
package config

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"go.trai.ch/stale/internal/core/domain"
	"go.trai.ch/stale/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// FileName is the site definition file looked up inside the site directory.
const FileName = "site.yaml"

var _ ports.SiteLoader = (*FileLoader)(nil)

// FileLoader implements ports.SiteLoader using a YAML site definition.
type FileLoader struct{}

// NewFileLoader creates a new FileLoader.
func NewFileLoader() *FileLoader {
	return &FileLoader{}
}

// Load reads the site rooted at dir.
func (l *FileLoader) Load(dir string) (*domain.Site, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read site file")
	}

	var file SiteFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.Wrap(err, "failed to parse site file")
	}

	site := domain.NewSite()
	if file.Config != nil {
		site.Config.Attributes = file.Config
	}

	// Map iteration order is random; add in sorted reference order so
	// collection order is deterministic across runs.
	for _, ref := range sortedKeys(file.Items) {
		item, err := buildItem(dir, ref, file.Items[ref])
		if err != nil {
			return nil, err
		}
		if err := site.Items.Add(item); err != nil {
			return nil, err
		}
	}
	for _, ref := range sortedKeys(file.Layouts) {
		layout, err := buildLayout(dir, ref, file.Layouts[ref])
		if err != nil {
			return nil, err
		}
		if err := site.Layouts.Add(layout); err != nil {
			return nil, err
		}
	}

	if file.Code != "" {
		snippets, err := loadSnippets(dir, file.Code)
		if err != nil {
			return nil, err
		}
		site.Snippets = snippets
	}
	return site, nil
}

func buildItem(dir, ref string, dto ItemDTO) (*domain.Item, error) {
	content, err := readContent(dir, dto.Source, dto.Content)
	if err != nil {
		return nil, zerr.With(err, "item", ref)
	}
	item := &domain.Item{
		Document: domain.Document{
			Ref:        domain.NewInternedString(ref),
			Content:    content,
			Attributes: attributesOrEmpty(dto.Attributes),
		},
	}
	for _, name := range sortedKeys(dto.Reps) {
		item.Reps = append(item.Reps, &domain.Rep{
			Item:     item,
			Name:     domain.NewInternedString(name),
			Sequence: buildSequence(dto.Reps[name].Actions),
		})
	}
	return item, nil
}

func buildLayout(dir, ref string, dto LayoutDTO) (*domain.Layout, error) {
	content, err := readContent(dir, dto.Source, dto.Content)
	if err != nil {
		return nil, zerr.With(err, "layout", ref)
	}
	return &domain.Layout{
		Document: domain.Document{
			Ref:        domain.NewInternedString(ref),
			Content:    content,
			Attributes: attributesOrEmpty(dto.Attributes),
		},
		Sequence: buildSequence(dto.Actions),
	}, nil
}

func buildSequence(actions []ActionDTO) domain.ActionSequence {
	if len(actions) == 0 {
		return nil
	}
	seq := make(domain.ActionSequence, len(actions))
	for i, a := range actions {
		seq[i] = domain.Action{
			Filter:    a.Filter,
			Arguments: a.Arguments,
			Snapshot:  a.Snapshot,
			Path:      a.Path,
		}
	}
	return seq
}

// readContent resolves a document's content: an inline literal wins over a
// source file; neither yields empty content.
func readContent(dir, source, inline string) ([]byte, error) {
	if inline != "" {
		return []byte(inline), nil
	}
	if source == "" {
		return nil, nil
	}
	data, err := os.ReadFile(filepath.Join(dir, source)) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read source file")
	}
	return data, nil
}

// loadSnippets walks the code directory and loads every regular file as a
// code snippet, in sorted path order.
func loadSnippets(dir, codeDir string) ([]*domain.CodeSnippet, error) {
	root := filepath.Join(dir, codeDir)
	var snippets []*domain.CodeSnippet
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		data, err := os.ReadFile(path) //nolint:gosec // path comes from the walked tree
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		snippets = append(snippets, &domain.CodeSnippet{
			Ref:     domain.NewInternedString(filepath.ToSlash(rel)),
			Content: data,
		})
		return nil
	})
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load code snippets")
	}
	sort.Slice(snippets, func(i, j int) bool {
		return snippets[i].Ref.String() < snippets[j].Ref.String()
	})
	return snippets, nil
}

func attributesOrEmpty(attrs map[string]any) map[string]any {
	if attrs == nil {
		return make(map[string]any)
	}
	return attrs
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Package catalogue extracts question identifiers from the questionnaire
// documents, which are the source of truth for the question list.
package catalogue

import (
	"errors"
	"fmt"
	"iter"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrDirNotFound is returned when the questionnaire directory is missing.
var ErrDirNotFound = errors.New("questionnaire dir not found")

const (
	DefaultSuffix = ".md"
	DefaultIndex  = "index.md"
)

// Options selects which files in the directory are catalogue documents.
type Options struct {
	Suffix string // file suffix, default ".md"
	Index  string // file name to skip, default "index.md"
}

func (o Options) withDefaults() Options {
	if o.Suffix == "" {
		o.Suffix = DefaultSuffix
	}
	if o.Index == "" {
		o.Index = DefaultIndex
	}
	return o
}

// Document is one catalogue file.
type Document struct {
	Name string
	Path string
}

// Question is an id-bearing metadata block with the fields we list.
type Question struct {
	ID       string `yaml:"-"`
	Title    string `yaml:"title"`
	Category string `yaml:"category"`
	File     string `yaml:"-"`
}

var (
	blockSep  = regexp.MustCompile(`\n---\n`)
	idPattern = regexp.MustCompile(`(?im)^id:\s*['"]?([a-z0-9_-]+)['"]?`)
)

// Extract returns the first id declared in each metadata block of content,
// in block order. Empty blocks, blocks starting with '#', and blocks with
// no id line are skipped.
func Extract(content string) []string {
	var ids []string
	for _, block := range blocks(content) {
		if id, ok := blockID(block); ok {
			ids = append(ids, id)
		}
	}
	return ids
}

func blocks(content string) []string {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	var out []string
	for _, b := range blockSep.Split(content, -1) {
		b = strings.TrimSpace(b)
		if b == "" || strings.HasPrefix(b, "#") {
			continue
		}
		out = append(out, b)
	}
	return out
}

func blockID(block string) (string, bool) {
	m := idPattern.FindStringSubmatch(block)
	if m == nil {
		return "", false
	}
	return strings.TrimSpace(m[1]), true
}

// Documents lists the catalogue documents in dir sorted by file name.
func Documents(dir string, opts Options) ([]Document, error) {
	opts = opts.withDefaults()
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("catalogue.Documents: %s: %w", dir, ErrDirNotFound)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("catalogue.Documents: %w", err)
	}
	var docs []Document
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, opts.Suffix) || name == opts.Index {
			continue
		}
		docs = append(docs, Document{Name: name, Path: filepath.Join(dir, name)})
	}
	sort.Slice(docs, func(i, j int) bool { return docs[i].Name < docs[j].Name })
	return docs, nil
}

// IDs yields every question id in dir, ordered by file name and then by
// block position. Files are read as the sequence is consumed. The first
// error is yielded once and ends the sequence.
func IDs(dir string, opts Options) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		docs, err := Documents(dir, opts)
		if err != nil {
			yield("", err)
			return
		}
		for _, d := range docs {
			data, err := os.ReadFile(d.Path)
			if err != nil {
				yield("", fmt.Errorf("catalogue.IDs: %w", err))
				return
			}
			for _, id := range Extract(string(data)) {
				if !yield(id, nil) {
					return
				}
			}
		}
	}
}

// Collect drains IDs into a slice.
func Collect(dir string, opts Options) ([]string, error) {
	var ids []string
	for id, err := range IDs(dir, opts) {
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// Questions returns the id-bearing blocks in dir with their title and
// category. A block that is not valid YAML keeps its id and empty fields.
func Questions(dir string, opts Options) ([]Question, error) {
	docs, err := Documents(dir, opts)
	if err != nil {
		return nil, err
	}
	var qs []Question
	for _, d := range docs {
		data, err := os.ReadFile(d.Path)
		if err != nil {
			return nil, fmt.Errorf("catalogue.Questions: %w", err)
		}
		for _, block := range blocks(string(data)) {
			id, ok := blockID(block)
			if !ok {
				continue
			}
			var q Question
			if err := yaml.Unmarshal([]byte(block), &q); err != nil {
				q = Question{}
			}
			q.ID = id
			q.File = d.Name
			qs = append(qs, q)
		}
	}
	return qs, nil
}

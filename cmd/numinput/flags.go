package main

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexisbeaulieu97/numinput/internal/config"
)

//go:embed default_fields.yaml
var defaultFields []byte

// loadDocument reads the field document at path, or the built-in one when
// path is empty.
func loadDocument(path string) (*config.Document, error) {
	if strings.TrimSpace(path) == "" {
		return config.ParseBytes("default_fields.yaml", defaultFields)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve config path: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("config file does not exist: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("config path %s is a directory", abs)
	}

	return config.ParseDocument(abs)
}

// selectField picks the named field, or the only field when name is empty.
func selectField(doc *config.Document, name string) (config.Field, error) {
	if name == "" {
		if len(doc.Fields) == 1 {
			return doc.Fields[0], nil
		}
		return config.Field{}, fmt.Errorf("the document has %d fields; choose one of %s", len(doc.Fields), strings.Join(doc.Names(), ", "))
	}
	f, err := doc.Field(name)
	if err != nil {
		return config.Field{}, err
	}
	return *f, nil
}

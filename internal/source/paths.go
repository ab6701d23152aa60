package source

import (
	"fmt"
	"os"

	"github.com/ashitosh07/monad-explorer/internal/model"
	"gopkg.in/yaml.v3"
)

// DefaultPaths maps the categories served by the default external API.
// Categories absent from the table are never requested upstream.
func DefaultPaths() map[model.Category]string {
	return map[model.Category]string{
		model.CategoryRichList:        "/v1/account/mon-holders",
		model.CategoryAccountTokens:   "/v1/account/" + addressToken + "/tokens",
		model.CategoryAccountNFTs:     "/v1/account/" + addressToken + "/nfts",
		model.CategoryAccountActivity: "/v1/account/" + addressToken + "/activity",
	}
}

type pathsFile struct {
	Paths map[string]string `yaml:"paths"`
}

// LoadPaths reads a YAML category table and merges it over DefaultPaths.
// An empty path removes the category from the table.
func LoadPaths(path string) (map[model.Category]string, error) {
	paths := DefaultPaths()
	if path == "" {
		return paths, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read sources file: %w", err)
	}
	var file pathsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse sources file: %w", err)
	}
	for name, p := range file.Paths {
		category := model.Category(name)
		if !category.Valid() {
			return nil, fmt.Errorf("sources file: unknown category %q", name)
		}
		if p == "" {
			delete(paths, category)
			continue
		}
		paths[category] = p
	}
	return paths, nil
}

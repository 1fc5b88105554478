// Package openyaml reads and writes a collection as one nested YAML document.
// Folders hold their items in place; requests carry their headers.
package openyaml

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/the-dev-tools/organizer/pkg/idwrap"
	"github.com/the-dev-tools/organizer/pkg/model/mheader"
	"github.com/the-dev-tools/organizer/pkg/model/mrecord"
	"github.com/the-dev-tools/organizer/pkg/translate/theader"
	"github.com/the-dev-tools/organizer/pkg/zstdcompress"
)

const (
	KindFolder  = "folder"
	KindRequest = "request"
)

var ErrMissingName = errors.New("item has no name")

type Collection struct {
	CollectionID string `yaml:"collectionId,omitempty"`
	Items        []Item `yaml:"items"`
}

type Item struct {
	Name    string              `yaml:"name"`
	Kind    string              `yaml:"kind"`
	Method  string              `yaml:"method,omitempty"`
	Url     string              `yaml:"url,omitempty"`
	Body    string              `yaml:"body,omitempty"`
	Test    string              `yaml:"test,omitempty"`
	Headers []mheader.HeaderDTO `yaml:"headers,omitempty"`
	Items   []Item              `yaml:"items,omitempty"`
}

// Export writes the tree of one collection. Header sorts are dropped; list
// order carries the position.
func Export(collectionID idwrap.IDWrap, tree []mrecord.Record) ([]byte, error) {
	doc := Collection{
		CollectionID: collectionID.String(),
		Items:        exportItems(tree),
	}
	return yaml.Marshal(doc)
}

func exportItems(records []mrecord.Record) []Item {
	items := make([]Item, 0, len(records))
	for _, r := range records {
		item := Item{
			Name:   r.Name,
			Kind:   KindRequest,
			Method: r.Method,
			Url:    r.Url,
			Body:   r.Body,
			Test:   r.Test,
		}
		if r.IsFolder() {
			item.Kind = KindFolder
			item.Items = exportItems(r.Children)
		}
		for _, h := range theader.TrimBlank(r.Headers) {
			dto := theader.ToDTO(h)
			dto.ID = ""
			dto.Sort = nil
			item.Headers = append(item.Headers, dto)
		}
		items = append(items, item)
	}
	return items
}

// Import parses a document into record DTOs for collectionID. Every item gets
// a fresh id; parents come before their children and siblings keep document
// order, so creating the DTOs in order rebuilds the same tree.
func Import(data []byte, collectionID idwrap.IDWrap) ([]mrecord.RecordDTO, error) {
	var doc Collection
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse collection: %w", err)
	}

	var out []mrecord.RecordDTO
	if err := flatten(doc.Items, "", collectionID.String(), "", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func flatten(items []Item, pid, collectionID, path string, out *[]mrecord.RecordDTO) error {
	for i, item := range items {
		itemPath := fmt.Sprintf("%s/%d", path, i)
		if item.Name == "" {
			return fmt.Errorf("%s: %w", itemPath, ErrMissingName)
		}

		category, err := categoryOf(item.Kind)
		if err != nil {
			return fmt.Errorf("%s: %w", itemPath, err)
		}

		dto := mrecord.RecordDTO{
			ID:           idwrap.NewNow().String(),
			Pid:          pid,
			CollectionID: collectionID,
			Name:         item.Name,
			Method:       item.Method,
			Url:          item.Url,
			Body:         item.Body,
			Test:         item.Test,
			Category:     category,
			Headers:      item.Headers,
		}
		*out = append(*out, dto)

		if category == mrecord.CategoryFolder {
			if err := flatten(item.Items, dto.ID, collectionID, itemPath, out); err != nil {
				return err
			}
		} else if len(item.Items) > 0 {
			return fmt.Errorf("%s: request %q cannot hold items", itemPath, item.Name)
		}
	}
	return nil
}

func categoryOf(kind string) (mrecord.Category, error) {
	switch strings.ToLower(kind) {
	case KindFolder:
		return mrecord.CategoryFolder, nil
	case KindRequest, "":
		return mrecord.CategoryRequest, nil
	default:
		return mrecord.CategoryUnspecified, fmt.Errorf("unknown kind %q", kind)
	}
}

// WriteFile stores an exported document, zstd compressed when path ends in
// .zst.
func WriteFile(path string, doc []byte) error {
	if strings.HasSuffix(path, zstdcompress.Extension) {
		doc = zstdcompress.Compress(doc)
	}
	return os.WriteFile(path, doc, 0o644)
}

func ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if strings.HasSuffix(path, zstdcompress.Extension) {
		return zstdcompress.Decompress(data)
	}
	return data, nil
}

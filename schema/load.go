package schema

import (
	"encoding/json"
	"fmt"

	"github.com/metafates/gache"

	"github.com/tinct-ui/tinct/filesystem"
	"github.com/tinct-ui/tinct/where"
)

// documentRecord is one parsed document in the persistent cache,
// invalidated by source file modification time.
type documentRecord struct {
	ModTime int64            `json:"modTime"`
	Theme   *ThemeDocument   `json:"theme,omitempty"`
	Mapping *MappingDocument `json:"mapping,omitempty"`
}

var cacher = gache.New[map[string]*documentRecord](&gache.Options{
	Path:       where.Documents(),
	FileSystem: &filesystem.GacheFs{},
})

// LoadTheme reads, parses and validates a theme document, reusing the parsed
// form from the document cache while the file on disk is unchanged.
func LoadTheme(path string) (*ThemeDocument, error) {
	if record := cachedRecord(path); record != nil && record.Theme != nil {
		return record.Theme, nil
	}

	data, err := filesystem.API().ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read theme document: %w", err)
	}

	doc, err := ParseTheme(data)
	if err != nil {
		return nil, err
	}

	remember(path, &documentRecord{Theme: doc})
	return doc, nil
}

// LoadMapping reads, parses and validates a mapping document, reusing the
// parsed form from the document cache while the file on disk is unchanged.
func LoadMapping(path string) (*MappingDocument, error) {
	if record := cachedRecord(path); record != nil && record.Mapping != nil {
		return record.Mapping, nil
	}

	data, err := filesystem.API().ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read mapping document: %w", err)
	}

	doc, err := ParseMapping(data)
	if err != nil {
		return nil, err
	}

	remember(path, &documentRecord{Mapping: doc})
	return doc, nil
}

// SaveTheme writes a theme document with stable indentation.
func SaveTheme(path string, doc *ThemeDocument) error {
	return save(path, doc)
}

// SaveMapping writes a mapping document with stable indentation.
func SaveMapping(path string, doc *MappingDocument) error {
	return save(path, doc)
}

func save(path string, doc any) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	return filesystem.API().WriteFile(path, append(data, '\n'), 0644)
}

// cachedRecord returns the cached parse for path when its modification time
// still matches, nil otherwise.
func cachedRecord(path string) *documentRecord {
	stat, err := filesystem.API().Stat(path)
	if err != nil {
		return nil
	}

	cached, expired, err := cacher.Get()
	if err != nil || expired || cached == nil {
		return nil
	}

	record, ok := cached[path]
	if !ok || record.ModTime != stat.ModTime().Unix() {
		return nil
	}
	return record
}

func remember(path string, record *documentRecord) {
	stat, err := filesystem.API().Stat(path)
	if err != nil {
		return
	}
	record.ModTime = stat.ModTime().Unix()

	cached, expired, err := cacher.Get()
	if err != nil || expired || cached == nil {
		cached = make(map[string]*documentRecord)
	}

	if previous, ok := cached[path]; ok {
		// A path can back both document kinds across invocations; keep the
		// sibling parse when it is still current.
		if record.Theme == nil {
			record.Theme = previous.Theme
		}
		if record.Mapping == nil {
			record.Mapping = previous.Mapping
		}
	}

	cached[path] = record
	_ = cacher.Set(cached)
}

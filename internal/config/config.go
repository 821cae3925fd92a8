package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"tkapp/internal/constants"
)

// Entry describes one launchable application within a category.
type Entry struct {
	Name    string
	Enabled bool
	Path    string
	Args    string
	Type    string
}

// Category is a named, ordered collection of entries. Categories map 1:1 to
// tabs in the launcher UI.
type Category struct {
	Name    string
	Entries []Entry
}

// LauncherConfig is the root launcher document. It is built once at startup
// and never mutated afterwards.
type LauncherConfig struct {
	Title      string
	Icon       string
	About      string
	Terminal   string
	Categories []Category
}

// Default returns the configuration used when no document can be loaded.
// The launcher still starts with it, showing only the About tab.
func Default() LauncherConfig {
	return LauncherConfig{
		Title:    constants.DefaultTitle,
		Icon:     constants.DefaultIcon,
		About:    constants.DefaultAbout,
		Terminal: constants.DefaultTerminal,
	}
}

// EnabledEntries returns the entries of the category that are launchable,
// preserving their document order.
func (c Category) EnabledEntries() []Entry {
	var entries []Entry
	for _, e := range c.Entries {
		if e.Enabled {
			entries = append(entries, e)
		}
	}
	return entries
}

// EntryCount returns the total number of enabled entries across all categories.
func (c LauncherConfig) EntryCount() int {
	count := 0
	for _, cat := range c.Categories {
		count += len(cat.EnabledEntries())
	}
	return count
}

// rawEntry is the wire form of an Entry. Pointers distinguish absent keys
// from zero values so documented defaults apply.
type rawEntry struct {
	Name    *string `json:"name"`
	Enabled *bool   `json:"enabled"`
	Path    string  `json:"path"`
	Args    string  `json:"args"`
	Type    string  `json:"type"`
}

func (r rawEntry) normalize() Entry {
	e := Entry{
		Name:    constants.DefaultEntryName,
		Enabled: true,
		Path:    r.Path,
		Args:    r.Args,
		Type:    r.Type,
	}
	if r.Name != nil {
		e.Name = *r.Name
	}
	if r.Enabled != nil {
		e.Enabled = *r.Enabled
	}
	return e
}

// Load reads the launcher document at path. On any read or parse failure it
// returns the default configuration together with the error; the caller
// reports the error and keeps running. Unknown keys are ignored. Entries
// missing a path are kept as-is: that error surfaces at launch time, scoped
// to the one entry.
func Load(path string) (LauncherConfig, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read configuration file '%s': %w", path, err)
	}

	var doc struct {
		Title      *string         `json:"title"`
		Icon       *string         `json:"icon"`
		About      *string         `json:"about"`
		Terminal   *string         `json:"terminal"`
		Categories json.RawMessage `json:"categories"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return Default(), fmt.Errorf("parse configuration file '%s': %w", path, err)
	}

	if doc.Title != nil {
		cfg.Title = *doc.Title
	}
	if doc.Icon != nil {
		cfg.Icon = *doc.Icon
	}
	if doc.About != nil {
		cfg.About = *doc.About
	}
	if doc.Terminal != nil {
		cfg.Terminal = *doc.Terminal
	}

	if len(doc.Categories) > 0 {
		cats, err := decodeCategories(doc.Categories)
		if err != nil {
			return Default(), fmt.Errorf("parse configuration file '%s': %w", path, err)
		}
		cfg.Categories = cats
	}

	return cfg, nil
}

// decodeCategories walks the categories object token by token so the tab
// order matches the document order. encoding/json maps do not preserve key
// order, which would shuffle the tabs between runs.
func decodeCategories(raw json.RawMessage) ([]Category, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("'categories' must be an object")
	}

	var cats []Category
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		name, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("'categories' has a non-string key")
		}

		var rawEntries []rawEntry
		if err := dec.Decode(&rawEntries); err != nil {
			return nil, fmt.Errorf("category '%s': %w", name, err)
		}

		entries := make([]Entry, 0, len(rawEntries))
		for _, re := range rawEntries {
			entries = append(entries, re.normalize())
		}
		cats = append(cats, Category{Name: name, Entries: entries})
	}

	// Consume the closing brace
	if _, err := dec.Token(); err != nil {
		return nil, err
	}

	return cats, nil
}

// Package budget contains the calculations every screen of the app is built on:
// the category registry, monthly expense aggregation, the calendar grid and the
// budget status classification.
//
// Everything in here is free of I/O except for loading a registry file.
package budget

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync/atomic"

	"github.com/ryanuber/go-glob"
	"gopkg.in/yaml.v3"
)

// OtherCategory is the name of the fallback category in the default registry.
const OtherCategory = "その他"

var (
	ErrRegistryEmpty           = errors.New("the category registry must contain at least one category")
	ErrRegistryFallbackMissing = errors.New("the fallback category is not part of the registry")
	ErrRegistryDuplicateName   = errors.New("category names in the registry must be unique")
)

// Style describes how a category is rendered.
type Style struct {
	Icon       string `json:"icon" yaml:"icon" example:"restaurant"`          // Icon token
	Color      string `json:"color" yaml:"color" example:"#FF6B6B"`           // Foreground color
	Background string `json:"background" yaml:"background" example:"#FFE8E8"` // Background tint
}

// Entry is a single category of the registry.
type Entry struct {
	Name    string   `yaml:"name"`
	Style   `yaml:",inline"`
	Aliases []string `yaml:"aliases"` // glob patterns matched case-insensitively
}

// Registry maps category names to their display style.
//
// A Registry is immutable after creation and safe for concurrent use.
type Registry struct {
	entries  []Entry
	byName   map[string]int
	fallback int
}

type registryFile struct {
	Fallback   string  `yaml:"fallback"`
	Categories []Entry `yaml:"categories"`
}

var defaultEntries = []Entry{
	{Name: "食費", Style: Style{Icon: "restaurant", Color: "#FF6B6B", Background: "#FFE8E8"}, Aliases: []string{"food*", "*食*", "*ごはん*", "*ランチ*"}},
	{Name: "交通費", Style: Style{Icon: "train", Color: "#4ECDC4", Background: "#E0F7F5"}, Aliases: []string{"transport*", "*交通*", "*電車*", "*バス*"}},
	{Name: "娯楽", Style: Style{Icon: "game-controller", Color: "#A66CFF", Background: "#F1E8FF"}, Aliases: []string{"entertainment*", "hobby*", "*趣味*", "*遊び*"}},
	{Name: "日用品", Style: Style{Icon: "basket", Color: "#FFA94D", Background: "#FFF1E0"}, Aliases: []string{"daily*", "*生活*", "*雑貨*"}},
	{Name: "衣服", Style: Style{Icon: "shirt", Color: "#F783AC", Background: "#FFE6EF"}, Aliases: []string{"cloth*", "fashion*", "*服*", "*ファッション*"}},
	{Name: "教育", Style: Style{Icon: "book", Color: "#4D96FF", Background: "#E3EEFF"}, Aliases: []string{"education*", "*学習*", "*勉強*", "*書籍*"}},
	{Name: "交際費", Style: Style{Icon: "people", Color: "#51CF66", Background: "#E6F9EA"}, Aliases: []string{"social*", "*交際*", "*飲み会*"}},
	{Name: "通信費", Style: Style{Icon: "phone-portrait", Color: "#339AF0", Background: "#E3F2FD"}, Aliases: []string{"phone*", "*通信*", "*スマホ*"}},
	{Name: OtherCategory, Style: Style{Icon: "ellipsis-horizontal", Color: "#868E96", Background: "#F1F3F5"}, Aliases: []string{"other*", "misc*"}},
}

// DefaultRegistry returns the built-in registry.
func DefaultRegistry() *Registry {
	r, err := NewRegistry(defaultEntries, OtherCategory)
	if err != nil {
		panic(fmt.Sprintf("built-in category registry is invalid: %v", err))
	}

	return r
}

// NewRegistry creates a registry. The fallback must name one of the entries.
func NewRegistry(entries []Entry, fallback string) (*Registry, error) {
	if len(entries) == 0 {
		return nil, ErrRegistryEmpty
	}

	r := &Registry{
		entries:  make([]Entry, 0, len(entries)),
		byName:   make(map[string]int, len(entries)),
		fallback: -1,
	}

	for _, e := range entries {
		e.Name = strings.TrimSpace(e.Name)
		if _, ok := r.byName[e.Name]; ok {
			return nil, fmt.Errorf("%w: %s", ErrRegistryDuplicateName, e.Name)
		}

		aliases := make([]string, 0, len(e.Aliases))
		for _, a := range e.Aliases {
			aliases = append(aliases, strings.ToLower(a))
		}
		e.Aliases = aliases

		r.byName[e.Name] = len(r.entries)
		r.entries = append(r.entries, e)
	}

	idx, ok := r.byName[strings.TrimSpace(fallback)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrRegistryFallbackMissing, fallback)
	}
	r.fallback = idx

	return r, nil
}

// LoadRegistry reads a registry from a YAML file.
func LoadRegistry(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading category registry %s: %w", path, err)
	}

	var f registryFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing category registry %s: %w", path, err)
	}

	if f.Fallback == "" {
		f.Fallback = OtherCategory
	}

	return NewRegistry(f.Categories, f.Fallback)
}

// Lookup returns the entry for a category name.
//
// Exact names win over alias patterns; aliases are tried in registry order.
// Unknown names resolve to the fallback entry.
func (r *Registry) Lookup(name string) Entry {
	name = strings.TrimSpace(name)
	if idx, ok := r.byName[name]; ok {
		return r.entries[idx]
	}

	lower := strings.ToLower(name)
	if lower != "" {
		for _, e := range r.entries {
			for _, pattern := range e.Aliases {
				if glob.Glob(pattern, lower) {
					return e
				}
			}
		}
	}

	return r.entries[r.fallback]
}

// Style returns the display style for a category name.
func (r *Registry) Style(name string) Style {
	return r.Lookup(name).Style
}

// Fallback returns the entry unknown names resolve to.
func (r *Registry) Fallback() Entry {
	return r.entries[r.fallback]
}

// Entries returns a copy of all entries in registry order.
func (r *Registry) Entries() []Entry {
	out := make([]Entry, len(r.entries))
	for i, e := range r.entries {
		e.Aliases = append([]string(nil), e.Aliases...)
		out[i] = e
	}
	return out
}

var current atomic.Pointer[Registry]

// Default returns the registry used by the application.
func Default() *Registry {
	if r := current.Load(); r != nil {
		return r
	}

	current.CompareAndSwap(nil, DefaultRegistry())
	return current.Load()
}

// UseRegistry replaces the registry returned by Default.
func UseRegistry(r *Registry) {
	current.Store(r)
}

// Package content serves the site's static copy from an embedded YAML document.
package content

import (
	"bytes"
	_ "embed"
	"fmt"
	"sort"
	"strconv"

	"retreat-api/internal/pkg/clock"
	"retreat-api/internal/pkg/errs"

	"gopkg.in/yaml.v3"
)

//go:embed site.yaml
var siteDocument []byte

var ErrSectionNotFound = errs.Mark(errs.New("content section not found"), errs.ErrNotFound)

type Trip struct {
	ID        string `yaml:"id" json:"id"`
	DateRange string `yaml:"dateRange" json:"dateRange"`
	Location  string `yaml:"location" json:"location"`
	Duration  string `yaml:"duration" json:"duration"`
}

// Label is how a trip appears in the delivered booking email.
func (t Trip) Label() string {
	return t.DateRange + " - " + t.Location
}

type typedDocument struct {
	SiteName string `yaml:"siteName"`
	Trips    []Trip `yaml:"trips"`
}

// Store is immutable after construction and safe for concurrent reads.
type Store struct {
	sections map[string]any
	trips    []Trip
	tripByID map[string]Trip
}

// NewEmbeddedStore loads the document compiled into the binary.
func NewEmbeddedStore(clk clock.Clock) (*Store, error) {
	return Load(siteDocument, clk.Now().Year())
}

func Load(doc []byte, year int) (*Store, error) {
	doc = bytes.ReplaceAll(doc, []byte("{year}"), []byte(strconv.Itoa(year)))

	var sections map[string]any
	if err := yaml.Unmarshal(doc, &sections); err != nil {
		return nil, errs.Wrap(err, "failed to parse content document")
	}

	var typed typedDocument
	if err := yaml.Unmarshal(doc, &typed); err != nil {
		return nil, errs.Wrap(err, "failed to parse content document")
	}
	if typed.SiteName == "" {
		return nil, errs.New("content document has no siteName")
	}

	tripByID := make(map[string]Trip, len(typed.Trips))
	for i, t := range typed.Trips {
		if t.ID == "" || t.DateRange == "" || t.Location == "" {
			return nil, fmt.Errorf("content trip %d is incomplete", i)
		}
		if _, dup := tripByID[t.ID]; dup {
			return nil, fmt.Errorf("content trip id %q is duplicated", t.ID)
		}
		tripByID[t.ID] = t
	}

	return &Store{
		sections: sections,
		trips:    typed.Trips,
		tripByID: tripByID,
	}, nil
}

// Site returns every section. The returned map is a shallow copy.
func (s *Store) Site() map[string]any {
	out := make(map[string]any, len(s.sections))
	for k, v := range s.sections {
		out[k] = v
	}
	return out
}

func (s *Store) Section(name string) (any, error) {
	v, ok := s.sections[name]
	if !ok {
		return nil, errs.Wrap(ErrSectionNotFound, name)
	}
	return v, nil
}

func (s *Store) SectionNames() []string {
	names := make([]string, 0, len(s.sections))
	for k := range s.sections {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

func (s *Store) Trips() []Trip {
	return append([]Trip(nil), s.trips...)
}

// ResolveTrip maps a trip id to its "<dateRange> - <location>" label.
func (s *Store) ResolveTrip(id string) (string, bool) {
	t, ok := s.tripByID[id]
	if !ok {
		return "", false
	}
	return t.Label(), true
}

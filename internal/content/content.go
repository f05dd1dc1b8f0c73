// Package content holds the read-only dataset shown by the game:
// educational facts with citations, attribution metadata and the donation link.
package content

import (
	_ "embed"
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/content.yaml
var defaultContentYAML []byte

var (
	ErrNoFacts       = errors.New("no facts configured")
	ErrEmptyFact     = errors.New("fact has no text")
	ErrNoDonationURL = errors.New("donation url is missing or invalid")
)

// Fact is one popup text with its source.
type Fact struct {
	Text     string `yaml:"text"`
	Citation string `yaml:"citation"`
}

// Meta is the attribution record listed at the end of the works cited.
type Meta struct {
	Images string `yaml:"images"`
	Audio  string `yaml:"audio"`
	AI     string `yaml:"ai"`
	Font   string `yaml:"font"`
}

// Dataset is the injected content table. It is never mutated after loading.
type Dataset struct {
	DonationURL     string `yaml:"donation_url"`
	DonationMessage string `yaml:"donation_message"`
	Facts           []Fact `yaml:"facts"`
	Meta            Meta   `yaml:"meta"`
}

// Default returns the embedded dataset.
func Default() (Dataset, error) {
	return Parse(defaultContentYAML)
}

// Load reads a dataset from path, or the embedded one when path is empty.
func Load(path string) (Dataset, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Dataset{}, fmt.Errorf("content: failed to read %s: %w", path, err)
	}
	ds, err := Parse(data)
	if err != nil {
		return Dataset{}, fmt.Errorf("%w (from %s)", err, path)
	}
	return ds, nil
}

// Parse decodes and validates a YAML dataset.
func Parse(data []byte) (Dataset, error) {
	var ds Dataset
	if err := yaml.Unmarshal(data, &ds); err != nil {
		return Dataset{}, fmt.Errorf("content: failed to parse dataset: %w", err)
	}
	if err := ds.Validate(); err != nil {
		return Dataset{}, err
	}
	return ds, nil
}

// Validate reports the first problem that would break the game at runtime.
func (d Dataset) Validate() error {
	if len(d.Facts) == 0 {
		return fmt.Errorf("content: %w", ErrNoFacts)
	}
	for i, f := range d.Facts {
		if strings.TrimSpace(f.Text) == "" {
			return fmt.Errorf("content: fact %d: %w", i+1, ErrEmptyFact)
		}
	}
	u, err := url.Parse(d.DonationURL)
	if d.DonationURL == "" || err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("content: %q: %w", d.DonationURL, ErrNoDonationURL)
	}
	return nil
}

// CitedLine is one labelled entry of the works cited list.
type CitedLine struct {
	Label  string
	Text   string
	Source string // Only set for facts
}

// WorksCited returns the full citation list in display order:
// every fact with its source, the metadata record, then the donation link.
func (d Dataset) WorksCited() []CitedLine {
	lines := make([]CitedLine, 0, len(d.Facts)+5)
	for i, f := range d.Facts {
		lines = append(lines, CitedLine{
			Label:  fmt.Sprintf("Fact %d", i+1),
			Text:   f.Text,
			Source: f.Citation,
		})
	}
	lines = append(lines,
		CitedLine{Label: "Images", Text: d.Meta.Images},
		CitedLine{Label: "Audio", Text: d.Meta.Audio},
		CitedLine{Label: "AI Assistance", Text: d.Meta.AI},
		CitedLine{Label: "Font", Text: d.Meta.Font},
		CitedLine{Label: "Donation Link", Text: d.DonationURL},
	)
	return lines
}

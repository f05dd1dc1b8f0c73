package content

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultDataset(t *testing.T) {
	ds, err := Default()
	if err != nil {
		t.Fatalf("Default() failed: %v", err)
	}
	if len(ds.Facts) != 5 {
		t.Errorf("expected 5 facts, got %d", len(ds.Facts))
	}
	if ds.DonationURL != "https://sarcomaalliance.org/" {
		t.Errorf("unexpected donation url %q", ds.DonationURL)
	}
	for i, f := range ds.Facts {
		if f.Citation == "" {
			t.Errorf("fact %d has no citation", i+1)
		}
	}
}

func TestValidate(t *testing.T) {
	good := Dataset{
		DonationURL: "https://example.org/give",
		Facts:       []Fact{{Text: "Bones are living tissue.", Citation: "1. Someone. 2020."}},
	}

	tests := []struct {
		name    string
		mutate  func(*Dataset)
		wantErr error
	}{
		{"valid", func(*Dataset) {}, nil},
		{"no facts", func(d *Dataset) { d.Facts = nil }, ErrNoFacts},
		{"blank fact", func(d *Dataset) { d.Facts = []Fact{{Text: "  "}} }, ErrEmptyFact},
		{"missing url", func(d *Dataset) { d.DonationURL = "" }, ErrNoDonationURL},
		{"relative url", func(d *Dataset) { d.DonationURL = "donate.html" }, ErrNoDonationURL},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := good
			d.Facts = append([]Fact(nil), good.Facts...)
			tc.mutate(&d)
			err := d.Validate()
			if tc.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() = %v, expected nil", err)
				}
				return
			}
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("Validate() = %v, expected %v", err, tc.wantErr)
			}
		})
	}
}

func TestLoadFailsFastOnEmptyFacts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.yaml")
	if err := os.WriteFile(path, []byte("donation_url: https://x.org/\nfacts: []\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if !errors.Is(err, ErrNoFacts) {
		t.Fatalf("Load() = %v, expected ErrNoFacts", err)
	}
}

func TestWorksCitedOrder(t *testing.T) {
	ds, err := Default()
	if err != nil {
		t.Fatal(err)
	}

	lines := ds.WorksCited()
	if len(lines) != len(ds.Facts)+5 {
		t.Fatalf("expected %d lines, got %d", len(ds.Facts)+5, len(lines))
	}
	if lines[0].Label != "Fact 1" || lines[0].Source == "" {
		t.Errorf("first line = %+v", lines[0])
	}

	wantTail := []string{"Images", "Audio", "AI Assistance", "Font", "Donation Link"}
	tail := lines[len(ds.Facts):]
	for i, label := range wantTail {
		if tail[i].Label != label {
			t.Errorf("line %d label = %q, expected %q", len(ds.Facts)+i, tail[i].Label, label)
		}
	}
	if tail[4].Text != ds.DonationURL {
		t.Errorf("donation line = %q", tail[4].Text)
	}
}

package registry

import (
	"errors"
	"testing"
)

func TestMatchKnownFilenames(t *testing.T) {
	tests := []struct {
		name         string
		filename     string
		wantKeyword  string
		wantType     string
		wantTemplate string
	}{
		{
			name:         "resume",
			filename:     "resume.pdf",
			wantKeyword:  "resume",
			wantType:     "Resume/CV",
			wantTemplate: "resume.json",
		},
		{
			name:         "i129 petition",
			filename:     "I129_case.pdf",
			wantKeyword:  "i129",
			wantType:     "USCIS Form I-129 H-1B Petition",
			wantTemplate: "i129_h1b_petition.json",
		},
		{
			name:         "passport scan",
			filename:     "john_passport_scan.pdf",
			wantKeyword:  "passport",
			wantType:     "Passport",
			wantTemplate: "passport.json",
		},
		{
			name:         "full path uses basename",
			filename:     "/uploads/2024/visa_renewal.pdf",
			wantKeyword:  "visa",
			wantType:     "US Visa",
			wantTemplate: "us_visa.json",
		},
		{
			name:         "uppercase filename",
			filename:     "TRANSCRIPT_FALL.PDF",
			wantKeyword:  "transcript",
			wantType:     "Academic Transcript",
			wantTemplate: "school_transcripts.json",
		},
		{
			name:         "hyphenated i-94",
			filename:     "i-94_record.pdf",
			wantKeyword:  "i-94",
			wantType:     "Form I-94 Arrival/Departure Record",
			wantTemplate: "i_94.json",
		},
	}

	reg := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry, err := reg.Match(tt.filename)
			if err != nil {
				t.Fatalf("Match(%q) error: %v", tt.filename, err)
			}
			if entry.Keyword != tt.wantKeyword {
				t.Errorf("keyword = %q, want %q", entry.Keyword, tt.wantKeyword)
			}
			if entry.DocumentType != tt.wantType {
				t.Errorf("document type = %q, want %q", entry.DocumentType, tt.wantType)
			}
			if entry.TemplateFile != tt.wantTemplate {
				t.Errorf("template file = %q, want %q", entry.TemplateFile, tt.wantTemplate)
			}
		})
	}
}

func TestMatchFirstEntryWins(t *testing.T) {
	reg := New()

	// "employment letter" contains both "employment letter" and "employment";
	// the more specific entry is registered first and must win.
	entry, err := reg.Match("employment letter - acme.pdf")
	if err != nil {
		t.Fatalf("Match error: %v", err)
	}
	if entry.Keyword != "employment letter" {
		t.Errorf("keyword = %q, want %q", entry.Keyword, "employment letter")
	}

	// "employment_verification.pdf" only contains the bare keyword.
	entry, err = reg.Match("employment_verification.pdf")
	if err != nil {
		t.Fatalf("Match error: %v", err)
	}
	if entry.Keyword != "employment" {
		t.Errorf("keyword = %q, want %q", entry.Keyword, "employment")
	}
}

func TestMatchOrderIsDeterministic(t *testing.T) {
	reg := New()

	// "i94" is registered before "visa", so a filename containing both
	// always selects the I-94 template.
	for i := 0; i < 10; i++ {
		entry, err := reg.Match("i94_visa_stamp.pdf")
		if err != nil {
			t.Fatalf("Match error: %v", err)
		}
		if entry.TemplateFile != "i_94.json" {
			t.Fatalf("iteration %d: template = %q, want i_94.json", i, entry.TemplateFile)
		}
	}
}

func TestMatchNoKeyword(t *testing.T) {
	reg := New()

	_, err := reg.Match("unknown_doc.pdf")
	if err == nil {
		t.Fatal("expected error for unmatched filename")
	}
	if !errors.Is(err, ErrNoTemplate) {
		t.Errorf("error = %v, want ErrNoTemplate", err)
	}
}

func TestMatchEmptyFilename(t *testing.T) {
	reg := New()

	for _, filename := range []string{"", "   "} {
		if _, err := reg.Match(filename); err == nil {
			t.Errorf("Match(%q): expected error", filename)
		}
	}
}

func TestNewWithEntriesPreservesOrder(t *testing.T) {
	entries := []Entry{
		{Keyword: "special", DocumentType: "Special", TemplateFile: "special.json"},
		{Keyword: "spec", DocumentType: "Generic", TemplateFile: "generic.json"},
	}
	reg := NewWithEntries(entries)

	entry, err := reg.Match("special_report.pdf")
	if err != nil {
		t.Fatalf("Match error: %v", err)
	}
	if entry.TemplateFile != "special.json" {
		t.Errorf("template = %q, want special.json", entry.TemplateFile)
	}

	// Mutating the input slice must not affect the registry.
	entries[0].Keyword = "changed"
	if got := reg.Keywords()[0]; got != "special" {
		t.Errorf("keyword after caller mutation = %q, want %q", got, "special")
	}
}

func TestKeywordsMatchEntries(t *testing.T) {
	reg := New()
	entries := reg.Entries()
	keywords := reg.Keywords()

	if len(entries) != len(keywords) {
		t.Fatalf("entries = %d, keywords = %d", len(entries), len(keywords))
	}
	for i := range entries {
		if entries[i].Keyword != keywords[i] {
			t.Errorf("index %d: entry keyword %q != keyword %q", i, entries[i].Keyword, keywords[i])
		}
	}
}

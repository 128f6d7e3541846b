// Package registry maps PDF filenames to extraction templates.
//
// The registry is an ordered list of (keyword, template) pairs. Selection
// lowercases the filename's basename and returns the first entry whose
// keyword is a substring. Order is significant: earlier entries win, so
// more specific keywords must be listed before their prefixes (e.g.
// "employment letter" before "employment").
package registry

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrNoTemplate is returned when no registry keyword matches a filename.
var ErrNoTemplate = errors.New("no matching template")

// Entry maps a filename keyword to a document type and its template file.
type Entry struct {
	Keyword      string `json:"keyword" yaml:"keyword"`
	DocumentType string `json:"document_type" yaml:"document_type"`
	TemplateFile string `json:"template_file" yaml:"template_file"`
}

// builtin is the default keyword registry. First match wins, so iteration
// order must be preserved exactly as authored here.
var builtin = []Entry{
	// Immigration forms
	{Keyword: "i129", DocumentType: "USCIS Form I-129 H-1B Petition", TemplateFile: "i129_h1b_petition.json"},
	{Keyword: "i94", DocumentType: "Form I-94 Arrival/Departure Record", TemplateFile: "i_94.json"},
	{Keyword: "i-94", DocumentType: "Form I-94 Arrival/Departure Record", TemplateFile: "i_94.json"},
	{Keyword: "i20", DocumentType: "Form I-20 Certificate of Eligibility", TemplateFile: "proof_of_in_country_status.json"},
	{Keyword: "i-20", DocumentType: "Form I-20 Certificate of Eligibility", TemplateFile: "proof_of_in_country_status.json"},

	// Identity documents
	{Keyword: "passport", DocumentType: "Passport", TemplateFile: "passport.json"},
	{Keyword: "visa", DocumentType: "US Visa", TemplateFile: "us_visa.json"},

	// Education documents
	{Keyword: "transcript", DocumentType: "Academic Transcript", TemplateFile: "school_transcripts.json"},
	{Keyword: "diploma", DocumentType: "Diploma", TemplateFile: "diplomas.json"},

	// Employment documents
	{Keyword: "employment letter", DocumentType: "Employment Letter", TemplateFile: "employment_letter.json"},
	{Keyword: "offer letter", DocumentType: "Employment Letter", TemplateFile: "employment_letter.json"},
	{Keyword: "offer-letter", DocumentType: "Employment Letter", TemplateFile: "employment_letter.json"},
	{Keyword: "offer_letter", DocumentType: "Employment Letter", TemplateFile: "employment_letter.json"},
	{Keyword: "employment_letter", DocumentType: "Employment Letter", TemplateFile: "employment_letter.json"},
	{Keyword: "employment", DocumentType: "Employment Letter", TemplateFile: "employment_letter.json"},
	{Keyword: "resume", DocumentType: "Resume/CV", TemplateFile: "resume.json"},
	{Keyword: "cv", DocumentType: "Resume/CV", TemplateFile: "resume.json"},

	// Tax and corporate documents
	{Keyword: "fein", DocumentType: "Corporate Tax Returns", TemplateFile: "corporate_tax_returns.json"},
	{Keyword: "cp575", DocumentType: "Corporate Tax Returns", TemplateFile: "corporate_tax_returns.json"},
	{Keyword: "tax", DocumentType: "Corporate Tax Returns", TemplateFile: "corporate_tax_returns.json"},

	// Personal documents
	{Keyword: "marriage", DocumentType: "Marriage Certificate", TemplateFile: "marriage_certificate.json"},
	{Keyword: "marriage_certificate", DocumentType: "Marriage Certificate", TemplateFile: "marriage_certificate.json"},

	// Proof of status
	{Keyword: "proof", DocumentType: "Proof of In-Country Status", TemplateFile: "proof_of_in_country_status.json"},
}

// Registry is an ordered keyword registry.
type Registry struct {
	entries []Entry
}

// New returns a registry with the built-in entries.
func New() *Registry {
	entries := make([]Entry, len(builtin))
	copy(entries, builtin)
	return &Registry{entries: entries}
}

// NewWithEntries returns a registry with the given entries, in the given order.
func NewWithEntries(entries []Entry) *Registry {
	copied := make([]Entry, len(entries))
	copy(copied, entries)
	return &Registry{entries: copied}
}

// Entries returns a copy of the registry entries in match order.
func (r *Registry) Entries() []Entry {
	entries := make([]Entry, len(r.entries))
	copy(entries, r.entries)
	return entries
}

// Keywords returns all registered keywords in match order.
func (r *Registry) Keywords() []string {
	keywords := make([]string, len(r.entries))
	for i, e := range r.entries {
		keywords[i] = e.Keyword
	}
	return keywords
}

// Match returns the first entry whose keyword is a substring of the
// lowercased basename of filename. Returns ErrNoTemplate when nothing
// matches so callers can tell the user to add a mapping or rename the file.
func (r *Registry) Match(filename string) (Entry, error) {
	if strings.TrimSpace(filename) == "" {
		return Entry{}, fmt.Errorf("empty filename")
	}

	basename := strings.ToLower(filepath.Base(filename))

	for _, entry := range r.entries {
		if strings.Contains(basename, entry.Keyword) {
			return entry, nil
		}
	}

	return Entry{}, fmt.Errorf("could not infer document type from filename %q (known keywords: %v): %w",
		basename, r.Keywords(), ErrNoTemplate)
}

package audit

import (
	"fmt"
	"io"
	"sort"

	"github.com/love0324/lighthouse/pkg/jsonutil"
)

// Report is the already-computed result document the renderer consumes.
// Categories reference audits by id; Resolve joins them.
type Report struct {
	FetchTime      string               `json:"fetchTime,omitempty"`
	FinalURL       string               `json:"finalUrl,omitempty"`
	Audits         map[string]*Result   `json:"audits"`
	Categories     map[string]*Category `json:"categories"`
	CategoryGroups map[string]*Group    `json:"categoryGroups,omitempty"`
}

// DanglingRefError reports a category audit ref whose audit id has no
// entry in the report's audits map.
type DanglingRefError struct {
	CategoryID string
	AuditID    string
}

func (e *DanglingRefError) Error() string {
	return fmt.Sprintf("audit: category %q references unknown audit %q", e.CategoryID, e.AuditID)
}

// LoadReport decodes a report document from r and resolves its refs.
func LoadReport(r io.Reader) (*Report, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("audit: read report: %w", err)
	}
	return ParseReport(data)
}

// ParseReport decodes a report document and resolves its refs.
func ParseReport(data []byte) (*Report, error) {
	var rep Report
	if err := jsonutil.Unmarshal(data, &rep); err != nil {
		return nil, fmt.Errorf("audit: parse report: %w", err)
	}
	if err := rep.Resolve(); err != nil {
		return nil, err
	}
	return &rep, nil
}

// Resolve populates every AuditRef's Result pointer from the audits map,
// normalizing display modes along the way. Returns a DanglingRefError
// for the first ref that names a missing audit.
func (rep *Report) Resolve() error {
	for _, res := range rep.Audits {
		res.ScoreDisplayMode = res.ScoreDisplayMode.Normalize(res.Score)
	}
	for id, cat := range rep.Categories {
		for i := range cat.AuditRefs {
			ref := &cat.AuditRefs[i]
			res, ok := rep.Audits[ref.AuditID]
			if !ok {
				return &DanglingRefError{CategoryID: id, AuditID: ref.AuditID}
			}
			ref.Result = res
		}
	}
	return nil
}

// SortedCategories returns the report's categories ordered by id, for
// deterministic multi-category output.
func (rep *Report) SortedCategories() []*Category {
	cats := make([]*Category, 0, len(rep.Categories))
	for _, c := range rep.Categories {
		cats = append(cats, c)
	}
	sort.Slice(cats, func(i, j int) bool { return cats[i].ID < cats[j].ID })
	return cats
}

// Group returns the group metadata for id, or nil when the report does
// not define it.
func (rep *Report) Group(id string) *Group {
	if rep.CategoryGroups == nil {
		return nil
	}
	return rep.CategoryGroups[id]
}

// Package caption models the structured case caption of a complaint
// (attorneys, parties, court, and case metadata) and renders it into the
// document's header section. Caller-supplied caption data always takes
// precedence over whatever header text segmentation recovered.
package caption

// Attorney identifies one attorney of record in the caption block.
type Attorney struct {
	Name      string `json:"name" yaml:"name"`
	BarNumber string `json:"bar_number" yaml:"bar_number"`
	Firm      string `json:"firm" yaml:"firm"`
	Address   string `json:"address" yaml:"address"`
	Phone     string `json:"phone" yaml:"phone"`
	Fax       string `json:"fax,omitempty" yaml:"fax,omitempty"`
	Email     string `json:"email" yaml:"email"`
}

// CaseCaption is the structured caption record for a complaint.
type CaseCaption struct {
	Attorneys        []Attorney `json:"attorneys" yaml:"attorneys"`
	Plaintiffs       []string   `json:"plaintiffs" yaml:"plaintiffs"`
	Defendants       []string   `json:"defendants" yaml:"defendants"`
	IncludeDoes      bool       `json:"include_does" yaml:"include_does"`
	County           string     `json:"county" yaml:"county"`
	CaseNumber       string     `json:"case_number" yaml:"case_number"`
	JudgeName        string     `json:"judge_name,omitempty" yaml:"judge_name,omitempty"`
	DepartmentNumber string     `json:"department_number,omitempty" yaml:"department_number,omitempty"`
	DocumentType     string     `json:"document_type" yaml:"document_type"`
	DemandJuryTrial  bool       `json:"demand_jury_trial" yaml:"demand_jury_trial"`

	// CausesOfAction is the ordered cause list for the caption, normally
	// derived from the document via complaint.CauseList.
	CausesOfAction []string `json:"causes_of_action" yaml:"causes_of_action"`
}

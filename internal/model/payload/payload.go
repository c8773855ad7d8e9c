package payload

import "encoding/json"

// Kind identifies which agent produced a structured payload.
type Kind string

const (
	KindInsights   Kind = "insights"
	KindCompliance Kind = "compliance"
	KindGrievance  Kind = "grievance"
)

// Metric is a single label/value pair in the insights metric grid.
type Metric struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// InsightsData carries the insights agent's response fields. Every field is
// optional; renderers omit sections for absent values.
type InsightsData struct {
	Summary         string   `json:"summary,omitempty"`
	Details         string   `json:"details,omitempty"`
	Metrics         []Metric `json:"metrics,omitempty"`
	Recommendations []string `json:"recommendations,omitempty"`
	Status          string   `json:"status,omitempty"`
}

// AuditTrailEntry is one step of a compliance audit trail.
type AuditTrailEntry struct {
	Step         string `json:"step,omitempty"`
	Approver     string `json:"approver,omitempty"`
	Timestamp    string `json:"timestamp,omitempty"`
	DOALevel     string `json:"doa_level,omitempty"`
	Status       string `json:"status,omitempty"`
	SOPReference string `json:"sop_reference,omitempty"`
}

// ComplianceData carries the compliance agent's response fields.
type ComplianceData struct {
	Summary          string            `json:"summary,omitempty"`
	AuditTrail       []AuditTrailEntry `json:"audit_trail,omitempty"`
	ComplianceStatus string            `json:"compliance_status,omitempty"`
	Exceptions       []string          `json:"exceptions,omitempty"`
	SOPReferences    []string          `json:"sop_references,omitempty"`
}

// GrievanceData carries the grievance agent's response fields.
type GrievanceData struct {
	Action             string   `json:"action,omitempty"`
	GrievanceID        string   `json:"grievance_id,omitempty"`
	Type               string   `json:"type,omitempty"`
	Status             string   `json:"status,omitempty"`
	Details            string   `json:"details,omitempty"`
	NextSteps          []string `json:"next_steps,omitempty"`
	ResolutionTimeline string   `json:"resolution_timeline,omitempty"`
}

// Structured is the tagged union over the three agent payload shapes. Raw
// retains the undecoded map so transcripts can round-trip fields the typed
// structs do not know about.
type Structured struct {
	Kind       Kind           `json:"kind"`
	Insights   *InsightsData  `json:"insights,omitempty"`
	Compliance *ComplianceData `json:"compliance,omitempty"`
	Grievance  *GrievanceData `json:"grievance,omitempty"`
	Raw        map[string]any `json:"raw,omitempty"`
}

const fallbackSummary = "Response received"

// Decode maps a loose agent result into the typed union for the given kind.
// Unknown or wrong-shaped fields are dropped rather than rejected.
func Decode(kind Kind, raw map[string]any) Structured {
	out := Structured{Kind: kind, Raw: raw}
	if raw == nil {
		raw = map[string]any{}
	}

	buf, err := json.Marshal(raw)
	if err != nil {
		buf = []byte("{}")
	}

	switch kind {
	case KindInsights:
		data := &InsightsData{}
		_ = json.Unmarshal(buf, data)
		out.Insights = data
	case KindCompliance:
		data := &ComplianceData{}
		_ = json.Unmarshal(buf, data)
		out.Compliance = data
	case KindGrievance:
		data := &GrievanceData{}
		_ = json.Unmarshal(buf, data)
		out.Grievance = data
	}
	return out
}

// DisplaySummary extracts the human-readable line shown as the assistant
// message body. Precedence is summary, then details, then action, then a
// fixed fallback, for every agent kind.
func DisplaySummary(raw map[string]any) string {
	for _, key := range []string{"summary", "details", "action"} {
		if text, ok := raw[key].(string); ok && text != "" {
			return text
		}
	}
	return fallbackSummary
}

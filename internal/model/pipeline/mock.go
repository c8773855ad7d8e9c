// Package pipeline holds the static sample dataset behind the dashboard
// tables. Nothing here is fetched; the tables show this data only while the
// sample overlay is on.
package pipeline

import "strings"

// PR is one active purchase requisition row.
type PR struct {
	Number       string `json:"pr_number"`
	Requester    string `json:"requester"`
	Status       string `json:"status"`
	CurrentStage string `json:"current_stage"`
	TATDays      int    `json:"tat_days"`
	SLAStatus    string `json:"sla_status"`
	LastUpdated  string `json:"last_updated"`
	Amount       string `json:"amount"`
}

// AuditEvent is one audit trail log row.
type AuditEvent struct {
	Event        string `json:"event"`
	Actor        string `json:"actor"`
	Timestamp    string `json:"timestamp"`
	DOALevel     string `json:"doa_level"`
	SOPReference string `json:"sop_reference"`
	Status       string `json:"status"`
	PRPO         string `json:"pr_po"`
}

// Grievance is one grievance tracker row.
type Grievance struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	RelatedPRPO string `json:"related_pr_po"`
	SubmittedBy string `json:"submitted_by"`
	Date        string `json:"date"`
	Status      string `json:"status"`
	AssignedTo  string `json:"assigned_to"`
	Priority    string `json:"priority"`
}

// KPI is one headline figure on the dashboard.
type KPI struct {
	Label   string `json:"label"`
	Value   string `json:"value"`
	Trend   string `json:"trend"`
	TrendUp bool   `json:"trendUp"`
}

// Stage is one segment of the approval pipeline funnel.
type Stage struct {
	Name  string `json:"stage"`
	Count int    `json:"count"`
}

// PRs returns the sample purchase requisitions.
func PRs() []PR {
	return []PR{
		{Number: "PR-4521", Requester: "Sarah Chen", Status: "Active", CurrentStage: "DOA Review", TATDays: 3, SLAStatus: "On Time", LastUpdated: "2025-02-20", Amount: "$24,500"},
		{Number: "PR-7832", Requester: "Marcus Johnson", Status: "Active", CurrentStage: "PO Generated", TATDays: 7, SLAStatus: "At Risk", LastUpdated: "2025-02-19", Amount: "$156,000"},
		{Number: "PR-3198", Requester: "Anita Patel", Status: "Active", CurrentStage: "Goods Receipt", TATDays: 12, SLAStatus: "Breached", LastUpdated: "2025-02-15", Amount: "$89,200"},
		{Number: "PR-5610", Requester: "James Wright", Status: "Active", CurrentStage: "Created", TATDays: 1, SLAStatus: "On Time", LastUpdated: "2025-02-21", Amount: "$12,750"},
		{Number: "PR-9044", Requester: "Lisa Kim", Status: "Active", CurrentStage: "DOA Review", TATDays: 5, SLAStatus: "On Time", LastUpdated: "2025-02-18", Amount: "$67,800"},
		{Number: "PR-2277", Requester: "Robert Garcia", Status: "Active", CurrentStage: "Completed", TATDays: 15, SLAStatus: "On Time", LastUpdated: "2025-02-10", Amount: "$340,000"},
		{Number: "PR-6189", Requester: "Emily Foster", Status: "Active", CurrentStage: "PO Generated", TATDays: 9, SLAStatus: "At Risk", LastUpdated: "2025-02-17", Amount: "$45,300"},
		{Number: "PR-1455", Requester: "David Okafor", Status: "Active", CurrentStage: "DOA Review", TATDays: 4, SLAStatus: "On Time", LastUpdated: "2025-02-19", Amount: "$28,900"},
		{Number: "PR-8321", Requester: "Hannah Lee", Status: "Active", CurrentStage: "Created", TATDays: 0, SLAStatus: "On Time", LastUpdated: "2025-02-21", Amount: "$8,600"},
		{Number: "PR-7003", Requester: "Carlos Mendez", Status: "Active", CurrentStage: "Goods Receipt", TATDays: 14, SLAStatus: "Breached", LastUpdated: "2025-02-14", Amount: "$195,000"},
		{Number: "PR-4098", Requester: "Nina Petrova", Status: "Active", CurrentStage: "PO Generated", TATDays: 6, SLAStatus: "On Time", LastUpdated: "2025-02-18", Amount: "$72,100"},
		{Number: "PR-5533", Requester: "Tom Bradley", Status: "Active", CurrentStage: "DOA Review", TATDays: 8, SLAStatus: "At Risk", LastUpdated: "2025-02-16", Amount: "$53,400"},
	}
}

// AuditEvents returns the sample audit trail log.
func AuditEvents() []AuditEvent {
	return []AuditEvent{
		{Event: "PR Created", Actor: "Sarah Chen", Timestamp: "2025-02-17 09:15", DOALevel: "-", SOPReference: "SOP-PR-001", Status: "Completed", PRPO: "PR-4521"},
		{Event: "L1 Approval", Actor: "Mark Stevens", Timestamp: "2025-02-17 14:22", DOALevel: "L1", SOPReference: "SOP-DOA-L1", Status: "Approved", PRPO: "PR-4521"},
		{Event: "L2 Approval", Actor: "Diana Ross", Timestamp: "2025-02-18 10:05", DOALevel: "L2", SOPReference: "SOP-DOA-L2", Status: "Pending", PRPO: "PR-4521"},
		{Event: "PO Generated", Actor: "System", Timestamp: "2025-02-15 11:30", DOALevel: "-", SOPReference: "SOP-PO-001", Status: "Completed", PRPO: "PR-7832"},
		{Event: "Vendor Confirmation", Actor: "AcmeCorp", Timestamp: "2025-02-16 08:45", DOALevel: "-", SOPReference: "SOP-VEN-002", Status: "Completed", PRPO: "PR-7832"},
		{Event: "L3 Approval", Actor: "VP Finance", Timestamp: "2025-02-14 16:00", DOALevel: "L3", SOPReference: "SOP-DOA-L3", Status: "Approved", PRPO: "PR-3198"},
		{Event: "Goods Received", Actor: "Warehouse Team", Timestamp: "2025-02-15 09:20", DOALevel: "-", SOPReference: "SOP-GR-001", Status: "Completed", PRPO: "PR-3198"},
		{Event: "SLA Breach Notification", Actor: "System", Timestamp: "2025-02-15 00:00", DOALevel: "-", SOPReference: "SOP-SLA-001", Status: "Alert", PRPO: "PR-3198"},
		{Event: "PR Created", Actor: "James Wright", Timestamp: "2025-02-21 08:00", DOALevel: "-", SOPReference: "SOP-PR-001", Status: "Completed", PRPO: "PR-5610"},
		{Event: "Budget Verification", Actor: "Finance Bot", Timestamp: "2025-02-21 08:15", DOALevel: "-", SOPReference: "SOP-BUD-001", Status: "Completed", PRPO: "PR-5610"},
		{Event: "L1 Approval", Actor: "Kate Morrison", Timestamp: "2025-02-18 13:40", DOALevel: "L1", SOPReference: "SOP-DOA-L1", Status: "Approved", PRPO: "PR-9044"},
		{Event: "L2 Escalation", Actor: "System", Timestamp: "2025-02-19 09:00", DOALevel: "L2", SOPReference: "SOP-ESC-001", Status: "Escalated", PRPO: "PR-9044"},
	}
}

// Grievances returns the sample grievance tracker rows.
func Grievances() []Grievance {
	return []Grievance{
		{ID: "GRV-001", Type: "Approval Delay", RelatedPRPO: "PR-3198", SubmittedBy: "Anita Patel", Date: "2025-02-16", Status: "Open", AssignedTo: "Procurement Lead", Priority: "High"},
		{ID: "GRV-002", Type: "Policy Concern", RelatedPRPO: "PR-7832", SubmittedBy: "Marcus Johnson", Date: "2025-02-18", Status: "In Progress", AssignedTo: "Compliance Team", Priority: "Medium"},
		{ID: "GRV-003", Type: "Vendor Issue", RelatedPRPO: "PO-4410", SubmittedBy: "Lisa Kim", Date: "2025-02-10", Status: "Resolved", AssignedTo: "Vendor Manager", Priority: "Low"},
		{ID: "GRV-004", Type: "SLA Breach", RelatedPRPO: "PR-7003", SubmittedBy: "Carlos Mendez", Date: "2025-02-15", Status: "Overdue", AssignedTo: "SLA Team", Priority: "Critical"},
		{ID: "GRV-005", Type: "Budget Override", RelatedPRPO: "PR-2277", SubmittedBy: "Robert Garcia", Date: "2025-02-12", Status: "In Progress", AssignedTo: "Finance Lead", Priority: "High"},
		{ID: "GRV-006", Type: "Approval Delay", RelatedPRPO: "PR-5533", SubmittedBy: "Tom Bradley", Date: "2025-02-19", Status: "Open", AssignedTo: "DOA Committee", Priority: "Medium"},
		{ID: "GRV-007", Type: "Delivery Delay", RelatedPRPO: "PO-3822", SubmittedBy: "Emily Foster", Date: "2025-02-08", Status: "Resolved", AssignedTo: "Logistics Team", Priority: "Low"},
		{ID: "GRV-008", Type: "Quality Issue", RelatedPRPO: "PO-5901", SubmittedBy: "Hannah Lee", Date: "2025-02-20", Status: "Open", AssignedTo: "QA Team", Priority: "High"},
		{ID: "GRV-009", Type: "Compliance Violation", RelatedPRPO: "PR-6189", SubmittedBy: "David Okafor", Date: "2025-02-17", Status: "In Progress", AssignedTo: "Audit Team", Priority: "Critical"},
		{ID: "GRV-010", Type: "Process Error", RelatedPRPO: "PR-4098", SubmittedBy: "Nina Petrova", Date: "2025-02-20", Status: "Open", AssignedTo: "Process Team", Priority: "Medium"},
	}
}

// KPIs returns the dashboard headline figures.
func KPIs() []KPI {
	return []KPI{
		{Label: "Total Active PRs", Value: "47", Trend: "+8%", TrendUp: true},
		{Label: "POs in Progress", Value: "23", Trend: "+12%", TrendUp: true},
		{Label: "Avg TAT (days)", Value: "9.8", Trend: "-12%", TrendUp: true},
		{Label: "SLA Breaches", Value: "3", Trend: "+1", TrendUp: false},
		{Label: "Pending Approvals", Value: "9", Trend: "-15%", TrendUp: true},
	}
}

// Stages returns the approval pipeline funnel segments in flow order.
func Stages() []Stage {
	return []Stage{
		{Name: "Created", Count: 2},
		{Name: "DOA Review", Count: 4},
		{Name: "PO Generated", Count: 3},
		{Name: "Goods Receipt", Count: 2},
		{Name: "Completed", Count: 1},
	}
}

// FilterAuditEvents narrows the audit log by PR/PO substring and DOA level.
// Empty prQuery matches everything; doaLevel "all" disables that filter.
func FilterAuditEvents(events []AuditEvent, prQuery, doaLevel string) []AuditEvent {
	query := strings.ToLower(strings.TrimSpace(prQuery))
	out := make([]AuditEvent, 0, len(events))
	for _, ev := range events {
		if query != "" && !strings.Contains(strings.ToLower(ev.PRPO), query) {
			continue
		}
		if doaLevel != "" && doaLevel != "all" && ev.DOALevel != doaLevel {
			continue
		}
		out = append(out, ev)
	}
	return out
}

// GrievanceCounts tallies grievances by tracked status.
func GrievanceCounts(items []Grievance) map[string]int {
	counts := map[string]int{"Open": 0, "In Progress": 0, "Resolved": 0, "Overdue": 0}
	for _, g := range items {
		if _, ok := counts[g.Status]; ok {
			counts[g.Status]++
		}
	}
	return counts
}

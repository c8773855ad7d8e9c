package render

import (
	"strings"

	"github.com/Lyzr-Apps/procure-track-epic-link-jbma/internal/analysis/severity"
	"github.com/Lyzr-Apps/procure-track-epic-link-jbma/internal/model/payload"
)

// Compliance renders a compliance payload: overall status badge, summary,
// audit trail, exceptions, SOP references. Absent fields omit their section.
func (t Theme) Compliance(raw map[string]any) string {
	data := payload.Decode(payload.KindCompliance, raw).Compliance
	if data == nil {
		data = &payload.ComplianceData{}
	}

	var parts []string
	if data.ComplianceStatus != "" {
		parts = append(parts, t.StatusBadge(data.ComplianceStatus))
	}
	if data.Summary != "" {
		parts = append(parts, t.Markdown(data.Summary))
	}
	if len(data.AuditTrail) > 0 {
		var lines []string
		for _, entry := range data.AuditTrail {
			lines = append(lines, t.auditTrailLine(entry))
		}
		parts = append(parts, t.section("Audit Trail", joinParts(lines)))
	}
	if len(data.Exceptions) > 0 {
		var lines []string
		for _, exc := range data.Exceptions {
			lines = append(lines, t.Dot[severity.Critical].Render("●") + " " + t.Body.Render(exc))
		}
		parts = append(parts, t.section("Exceptions", joinParts(lines)))
	}
	if len(data.SOPReferences) > 0 {
		var refs []string
		for _, ref := range data.SOPReferences {
			refs = append(refs, t.Mono.Render(ref))
		}
		parts = append(parts, t.section("SOP References", strings.Join(refs, "  ")))
	}
	return joinParts(parts)
}

// auditTrailLine renders one trail entry with a dot colored by that entry's
// own status, not the overall compliance status.
func (t Theme) auditTrailLine(entry payload.AuditTrailEntry) string {
	var fields []string
	if entry.Step != "" {
		fields = append(fields, t.Bold.Render(entry.Step))
	}
	if entry.Approver != "" {
		fields = append(fields, t.Body.Render(entry.Approver))
	}
	if entry.DOALevel != "" {
		fields = append(fields, t.Tag.Render(entry.DOALevel))
	}
	if entry.Status != "" {
		fields = append(fields, t.MutedBody.Render(entry.Status))
	}
	if entry.Timestamp != "" {
		fields = append(fields, t.MutedBody.Render(entry.Timestamp))
	}
	if entry.SOPReference != "" {
		fields = append(fields, t.Mono.Render(entry.SOPReference))
	}
	line := t.SeverityDot(entry.Status) + " " + strings.Join(fields, "  ")
	return strings.TrimRight(line, " ")
}

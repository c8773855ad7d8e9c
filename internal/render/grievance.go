package render

import (
	"strconv"
	"strings"

	"github.com/Lyzr-Apps/procure-track-epic-link-jbma/internal/model/payload"
)

// Grievance renders a grievance payload: identity tags, the action line,
// details, resolution timeline and next steps. Absent fields omit their
// section.
func (t Theme) Grievance(raw map[string]any) string {
	data := payload.Decode(payload.KindGrievance, raw).Grievance
	if data == nil {
		data = &payload.GrievanceData{}
	}

	var parts []string
	if tags := t.grievanceTags(data); tags != "" {
		parts = append(parts, tags)
	}
	if data.Action != "" {
		parts = append(parts, t.Bold.Render(data.Action))
	}
	if data.Details != "" {
		parts = append(parts, t.Markdown(data.Details))
	}
	if data.ResolutionTimeline != "" {
		parts = append(parts, t.section("Resolution Timeline", t.Body.Render(data.ResolutionTimeline)))
	}
	if len(data.NextSteps) > 0 {
		var lines []string
		for i, step := range data.NextSteps {
			lines = append(lines, "  " + t.Marker.Render(strconv.Itoa(i+1) + ".") + " " + t.Body.Render(step))
		}
		parts = append(parts, t.section("Next Steps", joinParts(lines)))
	}
	return joinParts(parts)
}

func (t Theme) grievanceTags(data *payload.GrievanceData) string {
	var tags []string
	if data.GrievanceID != "" {
		tags = append(tags, t.Mono.Render(data.GrievanceID))
	}
	if data.Type != "" {
		tags = append(tags, t.Tag.Render(data.Type))
	}
	if data.Status != "" {
		tags = append(tags, t.StatusBadge(data.Status))
	}
	return strings.Join(tags, " ")
}

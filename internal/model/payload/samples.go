package payload

// Sample payloads seeded into a conversation when the sample-data overlay
// turns on. The content mirrors what each hosted agent returns for its
// canned overview prompt.

// SampleInsights returns the canned insights agent response.
func SampleInsights() map[string]any {
	return map[string]any{
		"summary": "Current procurement cycle shows a 12% improvement in TAT over the previous quarter. Three PRs are flagged as SLA-critical and require immediate attention.",
		"details": "Analysis of 47 active purchase requisitions reveals that the DOA Review stage is the primary bottleneck, accounting for 38% of total cycle time. The average TAT has decreased from 11.2 days to 9.8 days. However, PRs exceeding $100K continue to face delays at L3 approval, with an average wait time of 4.2 days at this stage alone.\n\nKey areas of concern include cross-departmental PRs where multiple DOA levels are required, and vendor-specific POs where contract negotiations extend the timeline.",
		"metrics": []any{
			map[string]any{"label": "Average TAT", "value": "9.8 days"},
			map[string]any{"label": "SLA Compliance Rate", "value": "87.2%"},
			map[string]any{"label": "Bottleneck Stage", "value": "DOA Review"},
			map[string]any{"label": "Active PRs", "value": "47"},
			map[string]any{"label": "POs in Progress", "value": "23"},
		},
		"recommendations": []any{
			"Escalate PR-3198 and PR-7003 immediately - both have breached SLA by 2+ days",
			"Review DOA L2 approval queue - 5 PRs pending for >48 hours",
			"Consider implementing auto-escalation for PRs exceeding 7-day TAT",
			"Schedule vendor performance review for AcmeCorp - 3 delayed deliveries this quarter",
		},
		"status": "At Risk",
	}
}

// SampleCompliance returns the canned compliance agent response.
func SampleCompliance() map[string]any {
	return map[string]any{
		"summary": "Compliance audit of PR-4521 shows proper DOA chain followed through L1. L2 approval is pending since Feb 18. All SOP references are valid and documentation is complete.",
		"audit_trail": []any{
			map[string]any{"step": "Step 1: PR Creation", "approver": "Sarah Chen", "timestamp": "2025-02-17 09:15", "doa_level": "Requestor", "status": "Completed", "sop_reference": "SOP-PR-001 v3.2"},
			map[string]any{"step": "Step 2: Budget Check", "approver": "Finance Bot", "timestamp": "2025-02-17 09:16", "doa_level": "System", "status": "Passed", "sop_reference": "SOP-BUD-001 v2.1"},
			map[string]any{"step": "Step 3: L1 Approval", "approver": "Mark Stevens", "timestamp": "2025-02-17 14:22", "doa_level": "L1 - Dept Manager", "status": "Approved", "sop_reference": "SOP-DOA-L1 v4.0"},
			map[string]any{"step": "Step 4: L2 Approval", "approver": "Diana Ross", "timestamp": "Pending", "doa_level": "L2 - VP", "status": "Awaiting", "sop_reference": "SOP-DOA-L2 v4.0"},
		},
		"compliance_status": "Compliant - Pending L2",
		"exceptions":        []any{"L2 approval pending beyond 48-hour SLA window"},
		"sop_references":    []any{"SOP-PR-001 v3.2", "SOP-BUD-001 v2.1", "SOP-DOA-L1 v4.0", "SOP-DOA-L2 v4.0"},
	}
}

// SampleGrievance returns the canned grievance agent response.
func SampleGrievance() map[string]any {
	return map[string]any{
		"action":       "Grievance registered and assigned to the DOA Committee for review. Auto-escalation timer set for 48 hours.",
		"grievance_id": "GRV-011",
		"type":         "Approval Delay",
		"status":       "Open",
		"details":      "A new grievance has been created for the reported approval delay on PR-5533. The DOA L2 approval has been pending for 8 days, exceeding the standard 3-day SLA. The case has been flagged as high priority and assigned to the DOA Committee. Stakeholders have been notified via email.",
		"next_steps": []any{
			"DOA Committee to review within 24 hours",
			"Escalation to L3 authority if no action within 48 hours",
			"Weekly status update will be sent to the requester",
			"Post-resolution audit trail entry will be auto-generated",
		},
		"resolution_timeline": "3-5 business days",
	}
}

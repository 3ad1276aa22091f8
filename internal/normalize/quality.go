package normalize

import "github.com/draftdeck/draftdeck/internal/domain"

// QualityManagement normalizes a raw payload into a canonical quality
// management plan.
func (n *Normalizer) QualityManagement(raw any) *domain.QualityManagementContent {
	d := n.docFromRaw(raw)

	c := &domain.QualityManagementContent{
		Standards: withDefaults(
			d.strings("standards", "qualityStandards", "applicableStandards"),
			[]string{"TBD: Applicable standards to be confirmed"},
		),
		Objectives: withDefaults(
			d.strings("objectives", "qualityObjectives", "goals"),
			[]string{"TBD: Quality objectives to be defined"},
		),
		Criteria:            normalizeQualityCriteria(d.maps("criteria", "qualityCriteria", "acceptanceCriteria")),
		AssuranceActivities: nonNil(d.strings("assuranceActivities", "qualityAssurance", "assurance")),
		ControlActivities:   nonNil(d.strings("controlActivities", "qualityControl", "control")),
		Roles:               normalizeRoles(d.maps("roles", "qualityRoles", "responsibilities")),
		Tools:               nonNil(d.strings("tools", "qualityTools")),
		Metrics:             nonNil(d.strings("metrics", "qualityMetrics", "measures")),
	}

	if len(c.Criteria) == 0 {
		c.Criteria = []domain.QualityCriterion{{
			Criterion:   "TBD: Quality criterion",
			Target:      "TBD",
			Measurement: "TBD",
		}}
	}

	return c
}

// normalizeQualityCriteria maps criterion records onto the canonical shape.
func normalizeQualityCriteria(items []doc) []domain.QualityCriterion {
	out := make([]domain.QualityCriterion, 0, len(items))
	for _, item := range items {
		out = append(out, domain.QualityCriterion{
			Criterion:   withDefault(item.str("criterion", "criteria", "name", "description"), "TBD"),
			Target:      withDefault(item.str("target", "threshold", "goal"), "TBD"),
			Measurement: withDefault(item.str("measurement", "measure", "method"), "TBD"),
		})
	}
	return out
}

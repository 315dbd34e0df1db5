package ai

import (
	"context"
	"math"
	"strings"
)

// Skill categories reported by the model. Anything else is folded into
// CategoryOther during normalization.
const (
	CategoryTechnical = "technical"
	CategorySoft      = "soft"
	CategoryDomain    = "domain"
	CategoryOther     = "other"
)

// SkillMatch is a single extracted skill with its relevance to the target role.
type SkillMatch struct {
	Skill          string  `json:"skill" mapstructure:"skill"`
	RelevanceScore float64 `json:"relevance_score" mapstructure:"relevance_score"`
	Category       string  `json:"category" mapstructure:"category"`
}

// AnalysisRecord is the structured evaluation of one resume against one
// target role. It is always fully populated: every slice is non-nil and
// every score is within [0, 1].
type AnalysisRecord struct {
	ExtractedText   string       `json:"extracted_text" mapstructure:"-"`
	Skills          []SkillMatch `json:"skills" mapstructure:"skills"`
	RoleMatchScore  float64      `json:"role_match_score" mapstructure:"role_match_score"`
	Strengths       []string     `json:"strengths" mapstructure:"strengths"`
	Gaps            []string     `json:"gaps" mapstructure:"gaps"`
	Recommendations []string     `json:"recommendations" mapstructure:"recommendations"`
	Summary         string       `json:"summary" mapstructure:"summary"`

	// Strategy records which decode strategy produced this record, for
	// diagnostics. It is set by the decoder, never by the model.
	Strategy string `json:"-" mapstructure:"-"`
	// Raw is the unmodified model reply the record was decoded from.
	Raw string `json:"-" mapstructure:"-"`
}

// Analyzer produces a free-form textual evaluation of a resume for a target
// role. Implementations wrap a concrete model provider.
type Analyzer interface {
	Infer(ctx context.Context, resumeText, targetRole string) (string, error)
	Model() string
}

// normalize enforces the record invariants after decoding: non-nil slices,
// clamped scores and a known category on every skill.
func (r *AnalysisRecord) normalize() {
	r.RoleMatchScore = clampScore(r.RoleMatchScore)

	if r.Skills == nil {
		r.Skills = []SkillMatch{}
	}
	for i := range r.Skills {
		r.Skills[i].Skill = strings.TrimSpace(r.Skills[i].Skill)
		r.Skills[i].RelevanceScore = clampScore(r.Skills[i].RelevanceScore)
		r.Skills[i].Category = normalizeCategory(r.Skills[i].Category)
	}

	if r.Strengths == nil {
		r.Strengths = []string{}
	}
	if r.Gaps == nil {
		r.Gaps = []string{}
	}
	if r.Recommendations == nil {
		r.Recommendations = []string{}
	}

	r.Summary = strings.TrimSpace(r.Summary)
}

func clampScore(score float64) float64 {
	switch {
	case math.IsNaN(score):
		return 0
	case score < 0:
		return 0
	case score > 1:
		return 1
	default:
		return score
	}
}

func normalizeCategory(category string) string {
	switch strings.ToLower(strings.TrimSpace(category)) {
	case CategoryTechnical:
		return CategoryTechnical
	case CategorySoft:
		return CategorySoft
	case CategoryDomain:
		return CategoryDomain
	default:
		return CategoryOther
	}
}

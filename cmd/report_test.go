package cmd

import (
	"strings"
	"testing"

	"github.com/spigell/resume-insight/internal/ai"
)

func TestSkillsByCategorySortsByRelevance(t *testing.T) {
	t.Parallel()

	skills := []ai.SkillMatch{
		{Skill: "Go", RelevanceScore: 0.6, Category: ai.CategoryTechnical},
		{Skill: "Kubernetes", RelevanceScore: 0.9, Category: ai.CategoryTechnical},
		{Skill: "Communication", RelevanceScore: 0.8, Category: ai.CategorySoft},
	}

	technical := skillsByCategory(skills, ai.CategoryTechnical)
	if len(technical) != 2 {
		t.Fatalf("expected 2 technical skills, got %d", len(technical))
	}
	if technical[0].Skill != "Kubernetes" {
		t.Fatalf("expected highest relevance first, got %q", technical[0].Skill)
	}

	if got := skillsByCategory(skills, ai.CategoryDomain); len(got) != 0 {
		t.Fatalf("expected no domain skills, got %+v", got)
	}
}

func TestScoreBar(t *testing.T) {
	t.Parallel()

	if got := scoreBar(0); got != strings.Repeat("░", scoreBarWidth) {
		t.Fatalf("unexpected empty bar: %q", got)
	}
	if got := scoreBar(1); got != strings.Repeat("█", scoreBarWidth) {
		t.Fatalf("unexpected full bar: %q", got)
	}
	if got := scoreBar(0.5); strings.Count(got, "█") != 5 {
		t.Fatalf("unexpected half bar: %q", got)
	}
}

package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spigell/resume-insight/internal/ai"
)

const scoreBarWidth = 10

// printReport renders the analysis record for a terminal reader: overall
// score, narrative fields, then skills grouped by category and sorted by
// relevance.
func printReport(record *ai.AnalysisRecord, targetRole string) {
	fmt.Println()
	fmt.Println(strings.Repeat("=", 80))
	fmt.Printf("RESUME ANALYSIS FOR: %s\n", strings.ToUpper(targetRole))
	fmt.Println(strings.Repeat("=", 80))

	fmt.Printf("\nOVERALL ROLE MATCH SCORE: %.0f%%\n", record.RoleMatchScore*100)

	fmt.Println("\nSUMMARY:")
	fmt.Printf("   %s\n", record.Summary)

	printList("STRENGTHS", record.Strengths)
	printList("GAPS TO ADDRESS", record.Gaps)
	printList("RECOMMENDATIONS", record.Recommendations)

	fmt.Println("\nEXTRACTED SKILLS:")
	for _, category := range []string{ai.CategoryTechnical, ai.CategorySoft, ai.CategoryDomain, ai.CategoryOther} {
		skills := skillsByCategory(record.Skills, category)
		if len(skills) == 0 {
			continue
		}

		fmt.Printf("\n   %s SKILLS:\n", strings.ToUpper(category))
		for _, skill := range skills {
			fmt.Printf("     %-25s [%s] %.0f%%\n", skill.Skill, scoreBar(skill.RelevanceScore), skill.RelevanceScore*100)
		}
	}
}

func printList(title string, items []string) {
	fmt.Printf("\n%s:\n", title)
	for _, item := range items {
		fmt.Printf("   - %s\n", item)
	}
}

func skillsByCategory(skills []ai.SkillMatch, category string) []ai.SkillMatch {
	matched := make([]ai.SkillMatch, 0, len(skills))
	for _, skill := range skills {
		if skill.Category == category {
			matched = append(matched, skill)
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].RelevanceScore > matched[j].RelevanceScore
	})

	return matched
}

func scoreBar(score float64) string {
	filled := int(score * scoreBarWidth)
	if filled > scoreBarWidth {
		filled = scoreBarWidth
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", scoreBarWidth-filled)
}

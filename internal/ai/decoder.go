package ai

import (
	"encoding/json"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// Decode strategy markers recorded on the resulting AnalysisRecord.
const (
	StrategyDirect   = "direct"
	StrategyFenced   = "fenced_block"
	StrategyScan     = "object_scan"
	StrategyFallback = "fallback"
)

const jsonFence = "```json"

// decodeStrategy attempts to carve a JSON object out of the raw reply.
// Returning false means the strategy does not apply or did not parse; the
// caller moves on to the next one.
type decodeStrategy struct {
	name    string
	extract func(reply string) (map[string]any, bool)
}

var decodeStrategies = []decodeStrategy{
	{name: StrategyDirect, extract: parseDirect},
	{name: StrategyFenced, extract: parseFencedBlock},
	{name: StrategyScan, extract: parseObjectScan},
}

// Decode turns a model's free-form reply into a structurally valid
// AnalysisRecord. It is total: when no strategy can parse the reply, a fixed
// placeholder record is returned so downstream code never sees a partial or
// missing result.
func Decode(reply string) *AnalysisRecord {
	for _, strategy := range decodeStrategies {
		parsed, ok := strategy.extract(reply)
		if !ok {
			continue
		}

		record, err := recordFromMap(parsed)
		if err != nil {
			continue
		}

		record.Strategy = strategy.name
		record.Raw = reply
		return record
	}

	record := fallbackRecord()
	record.Raw = reply
	return record
}

func parseDirect(reply string) (map[string]any, bool) {
	return parseObject(strings.TrimSpace(reply))
}

func parseFencedBlock(reply string) (map[string]any, bool) {
	start := strings.Index(reply, jsonFence)
	if start == -1 {
		return nil, false
	}
	start += len(jsonFence)

	end := strings.Index(reply[start:], "```")
	if end == -1 {
		return nil, false
	}

	return parseObject(strings.TrimSpace(reply[start : start+end]))
}

func parseObjectScan(reply string) (map[string]any, bool) {
	first := strings.Index(reply, "{")
	last := strings.LastIndex(reply, "}")
	if first == -1 || last <= first {
		return nil, false
	}

	return parseObject(reply[first : last+1])
}

func parseObject(candidate string) (map[string]any, bool) {
	if candidate == "" {
		return nil, false
	}

	var parsed map[string]any
	if err := json.Unmarshal([]byte(candidate), &parsed); err != nil {
		return nil, false
	}

	return parsed, true
}

func recordFromMap(parsed map[string]any) (*AnalysisRecord, error) {
	var record AnalysisRecord

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &record,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, err
	}

	if err := decoder.Decode(parsed); err != nil {
		return nil, err
	}

	record.normalize()
	return &record, nil
}

// fallbackRecord is the decoder's last line of defense: a fixed placeholder
// analysis returned when the model reply cannot be parsed at all.
func fallbackRecord() *AnalysisRecord {
	record := &AnalysisRecord{
		Skills: []SkillMatch{
			{Skill: "Communication", RelevanceScore: 0.7, Category: CategorySoft},
			{Skill: "Problem Solving", RelevanceScore: 0.8, Category: CategorySoft},
			{Skill: "Technical Skills", RelevanceScore: 0.6, Category: CategoryTechnical},
		},
		RoleMatchScore: 0.65,
		Strengths:      []string{"Professional experience", "Educational background"},
		Gaps:           []string{"Analysis incomplete due to response parsing issues"},
		Recommendations: []string{
			"Review and update resume format",
			"Consider professional resume review",
		},
		Summary:  "Candidate shows potential but full analysis was limited due to technical issues.",
		Strategy: StrategyFallback,
	}

	record.normalize()
	return record
}

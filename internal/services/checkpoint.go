package services

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/talentsift/resume-analyzer/internal/models"
)

var (
	checkpointLineRe = regexp.MustCompile(`(?i)^\s*\*{0,2}Checkpoint\s+(\d+)\*{0,2}\s*:\s*(.*)$`)
	digitRunRe       = regexp.MustCompile(`\d+`)
)

// ParseCheckpoints turns "Checkpoint N: ..." text into ordered {id, text}
// records. Continuation lines are appended to the preceding checkpoint.
// Text with no markers at all (including the literal error message a
// degraded aspect stage emits) becomes a single record with ID 1 so
// downstream stages always receive well-formed input.
func ParseCheckpoints(text string) []models.Checkpoint {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	var checkpoints []models.Checkpoint
	for _, line := range strings.Split(text, "\n") {
		if m := checkpointLineRe.FindStringSubmatch(line); m != nil {
			id, err := strconv.Atoi(m[1])
			if err != nil {
				continue
			}
			checkpoints = append(checkpoints, models.Checkpoint{
				ID:   id,
				Text: strings.TrimSpace(m[2]),
			})
			continue
		}
		if len(checkpoints) > 0 {
			if trimmed := strings.TrimSpace(line); trimmed != "" {
				last := &checkpoints[len(checkpoints)-1]
				last.Text = strings.TrimSpace(last.Text + " " + trimmed)
			}
		}
	}

	if len(checkpoints) == 0 {
		return []models.Checkpoint{{ID: 1, Text: text}}
	}

	return checkpoints
}

// ParseClarifications maps "Checkpoint N: ..." clarification text back onto
// checkpoint IDs.
func ParseClarifications(text string) []models.Clarification {
	var clarifications []models.Clarification
	for _, cp := range ParseCheckpoints(text) {
		clarifications = append(clarifications, models.Clarification{
			CheckpointID: cp.ID,
			Text:         cp.Text,
		})
	}
	return clarifications
}

// RenderCheckpoints renders {id, text} records back into the textual
// convention the prompts expect.
func RenderCheckpoints(checkpoints []models.Checkpoint) string {
	var b strings.Builder
	for _, cp := range checkpoints {
		fmt.Fprintf(&b, "Checkpoint %d: %s\n", cp.ID, cp.Text)
	}
	return strings.TrimSpace(b.String())
}

// RenderClarifications renders clarifications with the same convention,
// keyed by their checkpoint IDs.
func RenderClarifications(clarifications []models.Clarification) string {
	var b strings.Builder
	for _, cl := range clarifications {
		fmt.Fprintf(&b, "Checkpoint %d: %s\n", cl.CheckpointID, cl.Text)
	}
	return strings.TrimSpace(b.String())
}

// ExtractRating pulls the first run of digits following the last "Rating:"
// marker. Text without the marker (or without digits after it) yields an
// unparsed outcome whose value is 0.
func ExtractRating(evaluation string) models.RatingOutcome {
	evaluation = strings.TrimSpace(evaluation)
	outcome := models.RatingOutcome{Raw: evaluation}

	idx := strings.LastIndex(evaluation, "Rating:")
	if idx < 0 {
		return outcome
	}

	match := digitRunRe.FindString(evaluation[idx+len("Rating:"):])
	if match == "" {
		return outcome
	}

	value, err := strconv.Atoi(match)
	if err != nil {
		return outcome
	}

	outcome.Value = value
	outcome.Parsed = true
	return outcome
}

// ExtractMustHaveCategory resolves the category by substring priority
// III > II > I, first match wins. Text naming both II and III resolves to
// III by contract.
func ExtractMustHaveCategory(evaluation string) models.MustHaveCategory {
	switch {
	case strings.Contains(evaluation, "Category III"):
		return models.CategoryIII
	case strings.Contains(evaluation, "Category II"):
		return models.CategoryII
	case strings.Contains(evaluation, "Category I"):
		return models.CategoryI
	default:
		return models.CategoryNone
	}
}

// ExtractEvidence returns the justification paragraph following the
// "Evidence:" marker, or the whole evaluation text when no marker exists.
func ExtractEvidence(evaluation string) string {
	evaluation = strings.TrimSpace(evaluation)

	idx := strings.LastIndex(evaluation, "Evidence:")
	if idx < 0 {
		idx = strings.LastIndex(evaluation, "evidence:")
	}
	if idx < 0 {
		return evaluation
	}

	evidence := evaluation[idx+len("Evidence:"):]
	return strings.TrimSpace(strings.TrimLeft(evidence, "*_ \t"))
}

// extractJSON strips markdown fences and isolates the outermost JSON object
// or array from model output.
func extractJSON(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")

	startObj := strings.Index(text, "{")
	startArr := strings.Index(text, "[")
	endObj := strings.LastIndex(text, "}")
	endArr := strings.LastIndex(text, "]")

	if startObj != -1 && endObj != -1 && endObj > startObj {
		return text[startObj : endObj+1]
	} else if startArr != -1 && endArr != -1 && endArr > startArr {
		return text[startArr : endArr+1]
	}

	return text
}

package review

import (
	"fmt"
	"strings"

	"github.com/sanix-darker/crit/internal/diffparse"
)

const systemPrompt = "You are an expert code reviewer."

// BuildReviewPrompt builds the per-hunk prompt asking for line-anchored
// comments as strict JSON.
func BuildReviewPrompt(hunk diffparse.Hunk) string {
	var sb strings.Builder

	sb.WriteString("Review the following diff hunk")
	if hunk.Filename != "" {
		sb.WriteString(fmt.Sprintf(" from `%s`", hunk.Filename))
	}
	sb.WriteString(".\n\n")

	sb.WriteString("```diff\n")
	for _, c := range hunk.Changes {
		if c.LineNumber != nil {
			sb.WriteString(fmt.Sprintf("%d %s\n", *c.LineNumber, c.Content))
		} else {
			sb.WriteString(c.Content + "\n")
		}
	}
	sb.WriteString("```\n\n")

	sb.WriteString("Instructions:\n")
	sb.WriteString("- Only comment on added lines (those starting with '+').\n")
	sb.WriteString("- Use the line number shown before each line exactly as given; do not recompute it.\n")
	sb.WriteString("- If you have no concerns, return an empty comments list.\n")
	sb.WriteString("- Answer with JSON of the shape {\"comments\":[{\"body\":\"...\",\"line\":123}]} ")
	sb.WriteString("and nothing else: no markdown fences, no prose around it.\n")

	return sb.String()
}

// BuildSummaryPrompt builds the prompt for the overall change summary.
func BuildSummaryPrompt(diffText string) string {
	var sb strings.Builder

	sb.WriteString("Summarize the changes in the following diff as an update to a previous code review.\n\n")
	sb.WriteString("```diff\n")
	sb.WriteString(diffText)
	if !strings.HasSuffix(diffText, "\n") {
		sb.WriteString("\n")
	}
	sb.WriteString("```\n\n")

	sb.WriteString("Instructions:\n")
	sb.WriteString("- Cover only the incremental changes since the prior review, not the whole codebase.\n")
	sb.WriteString("- Call out newly introduced concerns and previously raised concerns that are now resolved.\n")
	sb.WriteString("- Keep a professional, constructive tone.\n")

	return sb.String()
}

package renders

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sanix-darker/crit/internal/review"
)

// BuildReviewDocument turns an aggregated review result into a markdown
// document: summary first, then comments grouped per file in hunk order,
// then a metadata footer.
func BuildReviewDocument(result *review.ReviewResult) string {
	var sb strings.Builder

	sb.WriteString("# Code Review\n\n")

	if result.Summary != nil && *result.Summary != "" {
		sb.WriteString("## Summary\n\n")
		sb.WriteString(strings.TrimSpace(*result.Summary))
		sb.WriteString("\n\n")
	}

	if len(result.Comments) == 0 {
		sb.WriteString("_No comments._\n\n")
	} else {
		sb.WriteString("## Comments\n\n")
		for _, file := range fileOrder(result.Comments) {
			sb.WriteString(fmt.Sprintf("### %s\n\n", file))
			for _, c := range result.Comments {
				if c.Filename != file {
					continue
				}
				sb.WriteString(fmt.Sprintf("- **Line %d**: %s\n", c.Line, c.Body))
			}
			sb.WriteString("\n")
		}
	}

	sb.WriteString(fmt.Sprintf("---\n\n_%d hunk(s), %d comment(s), reviewed at %s_\n",
		result.Metadata.TotalHunks,
		result.Metadata.TotalComments,
		result.Metadata.ReviewedAt.Format("2006-01-02 15:04:05 MST"),
	))

	return sb.String()
}

// fileOrder returns each commented filename once, in first-appearance
// order (which follows hunk order).
func fileOrder(comments []review.ReviewComment) []string {
	seen := make(map[string]int)
	for i, c := range comments {
		if _, ok := seen[c.Filename]; !ok {
			seen[c.Filename] = i
		}
	}

	files := make([]string, 0, len(seen))
	for f := range seen {
		files = append(files, f)
	}
	sort.Slice(files, func(i, j int) bool { return seen[files[i]] < seen[files[j]] })
	return files
}

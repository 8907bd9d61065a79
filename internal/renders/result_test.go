package renders

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/sanix-darker/crit/internal/review"
)

func TestBuildReviewDocument(t *testing.T) {
	summary := "Adds input validation to the auth handler."
	result := &review.ReviewResult{
		Summary: &summary,
		Comments: []review.ReviewComment{
			{Body: "check the error", Line: 12, Filename: "svc/auth.go"},
			{Body: "name this constant", Line: 30, Filename: "svc/auth.go"},
			{Body: "missing test case", Line: 5, Filename: "svc/auth_test.go"},
		},
		Metadata: review.Metadata{
			ReviewedAt:    time.Date(2023, 11, 2, 10, 0, 0, 0, time.UTC),
			TotalHunks:    3,
			TotalComments: 3,
		},
	}

	doc := BuildReviewDocument(result)

	assert.Contains(t, doc, "## Summary")
	assert.Contains(t, doc, summary)
	assert.Contains(t, doc, "### svc/auth.go")
	assert.Contains(t, doc, "- **Line 12**: check the error")
	assert.Contains(t, doc, "### svc/auth_test.go")
	assert.Contains(t, doc, "3 hunk(s), 3 comment(s)")

	// Files appear in comment order.
	assert.Less(t,
		strings.Index(doc, "### svc/auth.go"),
		strings.Index(doc, "### svc/auth_test.go"))
}

func TestBuildReviewDocument_NoComments(t *testing.T) {
	doc := BuildReviewDocument(&review.ReviewResult{})
	assert.Contains(t, doc, "_No comments._")
}

package diffparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDiff = `diff --git a/app/main.py b/app/main.py
index 83db48f..bf269f4 100644
--- a/app/main.py
+++ b/app/main.py
@@ -1,3 +1,4 @@
 import os
+import sys
 def main():
     pass`

func TestParse_SingleHunk(t *testing.T) {
	hunks, err := Parse(sampleDiff)
	require.NoError(t, err)
	require.Len(t, hunks, 1)

	h := hunks[0]
	assert.Equal(t, "app/main.py", h.Filename)
	require.NotNil(t, h.Header)
	assert.Equal(t, 1, h.Header.OldStart)
	assert.Equal(t, 1, h.Header.NewStart)

	require.Len(t, h.Changes, 4)
	assert.Equal(t, ChangeContext, h.Changes[0].Type)
	assert.Equal(t, ChangeAddition, h.Changes[1].Type)
	assert.Equal(t, ChangeContext, h.Changes[2].Type)
	assert.Equal(t, ChangeContext, h.Changes[3].Type)

	// The addition lands on new-file line 2, surrounded by context 1/3/4.
	require.NotNil(t, h.Changes[1].LineNumber)
	assert.Equal(t, 2, *h.Changes[1].LineNumber)
	assert.Equal(t, 1, *h.Changes[0].LineNumber)
	assert.Equal(t, 3, *h.Changes[2].LineNumber)
	assert.Equal(t, 4, *h.Changes[3].LineNumber)

	// Content keeps the raw marker.
	assert.Equal(t, "+import sys", h.Changes[1].Content)
	assert.Equal(t, " import os", h.Changes[0].Content)
}

func TestParse_EmptyInput(t *testing.T) {
	_, err := Parse("")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestParse_ConsecutiveAdditionsThenContext(t *testing.T) {
	diff := `diff --git a/pkg/x.go b/pkg/x.go
@@ -5,6 +5,8 @@
+first added
+second added
 unchanged`

	hunks, err := Parse(diff)
	require.NoError(t, err)
	require.Len(t, hunks, 1)

	changes := hunks[0].Changes
	require.Len(t, changes, 3)
	assert.Equal(t, 5, *changes[0].LineNumber)
	assert.Equal(t, 6, *changes[1].LineNumber)
	assert.Equal(t, 7, *changes[2].LineNumber)
}

func TestParse_DeletionsUseOldCounter(t *testing.T) {
	diff := `diff --git a/pkg/x.go b/pkg/x.go
@@ -10,4 +20,2 @@
 keep
-gone one
-gone two
 keep too`

	hunks, err := Parse(diff)
	require.NoError(t, err)
	require.Len(t, hunks, 1)

	changes := hunks[0].Changes
	require.Len(t, changes, 4)
	// Context at new 20, deletions at old 11 and 12, context at new 21.
	assert.Equal(t, 20, *changes[0].LineNumber)
	assert.Equal(t, 11, *changes[1].LineNumber)
	assert.Equal(t, 12, *changes[2].LineNumber)
	assert.Equal(t, 21, *changes[3].LineNumber)
}

func TestParse_BinaryFileMarker(t *testing.T) {
	diff := `diff --git a/logo.png b/logo.png
index 83db48f..bf269f4 100644
Binary files differ`

	hunks, err := Parse(diff)
	require.NoError(t, err)
	require.Len(t, hunks, 1)

	h := hunks[0]
	assert.Equal(t, "logo.png", h.Filename)
	assert.Nil(t, h.Header)
	require.Len(t, h.Changes, 1)
	assert.Equal(t, ChangeContext, h.Changes[0].Type)
	assert.Equal(t, "Binary files differ", h.Changes[0].Content)
	assert.Nil(t, h.Changes[0].LineNumber)
}

func TestParse_MetadataOnlyDiff(t *testing.T) {
	diff := `diff --git a/a.txt b/a.txt
index 83db48f..bf269f4 100644
--- a/a.txt
+++ b/a.txt`

	hunks, err := Parse(diff)
	require.NoError(t, err)
	assert.Empty(t, hunks)
}

func TestParse_MultipleHunksPerFile(t *testing.T) {
	diff := `diff --git a/pkg/y.go b/pkg/y.go
@@ -1,2 +1,3 @@
 top
+added at top
@@ -40,2 +41,3 @@
 bottom
+added at bottom`

	hunks, err := Parse(diff)
	require.NoError(t, err)
	require.Len(t, hunks, 2)

	// Both hunks belong to the same file, each with its own counters.
	assert.Equal(t, "pkg/y.go", hunks[0].Filename)
	assert.Equal(t, "pkg/y.go", hunks[1].Filename)
	assert.Equal(t, 2, *hunks[0].Changes[1].LineNumber)
	assert.Equal(t, 42, *hunks[1].Changes[1].LineNumber)
}

func TestParse_MultipleFiles(t *testing.T) {
	diff := `diff --git a/first.go b/first.go
@@ -1,1 +1,2 @@
 ctx
+one
diff --git a/second.go b/second.go
@@ -7,1 +7,2 @@
 ctx
+two`

	hunks, err := Parse(diff)
	require.NoError(t, err)
	require.Len(t, hunks, 2)
	assert.Equal(t, "first.go", hunks[0].Filename)
	assert.Equal(t, "second.go", hunks[1].Filename)
	assert.Equal(t, 8, *hunks[1].Changes[1].LineNumber)
}

func TestParse_MalformedHeaderNilLineNumbers(t *testing.T) {
	diff := `diff --git a/odd.go b/odd.go
@@ not a real header @@
+orphan addition
-orphan deletion
 orphan context`

	hunks, err := Parse(diff)
	require.NoError(t, err)
	require.Len(t, hunks, 1)

	h := hunks[0]
	assert.Nil(t, h.Header)
	require.Len(t, h.Changes, 3)
	for _, c := range h.Changes {
		assert.Nil(t, c.LineNumber)
	}
	assert.Equal(t, ChangeAddition, h.Changes[0].Type)
	assert.Equal(t, ChangeDeletion, h.Changes[1].Type)
	assert.Equal(t, ChangeContext, h.Changes[2].Type)
}

func TestParse_NestedPathPreserved(t *testing.T) {
	diff := `diff --git a/deep/nested/dir/file.spec.ts b/deep/nested/dir/file.spec.ts
@@ -1,1 +1,2 @@
 ctx
+added`

	hunks, err := Parse(diff)
	require.NoError(t, err)
	require.Len(t, hunks, 1)
	assert.Equal(t, "deep/nested/dir/file.spec.ts", hunks[0].Filename)
}

func TestParse_Idempotent(t *testing.T) {
	first, err := Parse(sampleDiff)
	require.NoError(t, err)
	second, err := Parse(sampleDiff)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestChangeType_String(t *testing.T) {
	assert.Equal(t, "context", ChangeContext.String())
	assert.Equal(t, "addition", ChangeAddition.String())
	assert.Equal(t, "deletion", ChangeDeletion.String())
}

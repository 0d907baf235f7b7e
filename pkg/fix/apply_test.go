package fix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyNoEdits(t *testing.T) {
	content := []byte("hello world")
	result, err := Apply(content, nil)
	require.NoError(t, err)

	assert.Equal(t, content, result.Output)
	assert.False(t, result.Changed())
}

func TestApplySingleEdit(t *testing.T) {
	tests := []struct {
		name string
		edit TextEdit
		want string
	}{
		{name: "replace", edit: Replace(0, 5, "howdy"), want: "howdy world"},
		{name: "delete", edit: Delete(5, 11), want: "hello"},
		{name: "insert", edit: Insert(5, " there"), want: "hello there world"},
		{name: "insert at end", edit: Insert(11, "!"), want: "hello world!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Apply([]byte("hello world"), []TextEdit{tt.edit})
			require.NoError(t, err)

			assert.Equal(t, tt.want, string(result.Output))
			assert.Len(t, result.Applied, 1)
			assert.Empty(t, result.Deferred)
		})
	}
}

func TestApplyMultipleNonOverlapping(t *testing.T) {
	// Edits given out of order; application sorts them.
	edits := []TextEdit{
		Replace(6, 11, "gopher"),
		Replace(0, 5, "howdy"),
	}

	result, err := Apply([]byte("hello world"), edits)
	require.NoError(t, err)

	assert.Equal(t, "howdy gopher", string(result.Output))
	assert.Len(t, result.Applied, 2)
}

func TestApplyOverlappingDefersLater(t *testing.T) {
	edits := []TextEdit{
		Replace(0, 6, "AAAAAA"),
		Replace(3, 9, "BBBBBB"),
	}

	result, err := Apply([]byte("0123456789"), edits)
	require.NoError(t, err)

	assert.Equal(t, "AAAAAA6789", string(result.Output))
	require.Len(t, result.Applied, 1)
	require.Len(t, result.Deferred, 1)
	assert.Equal(t, 3, result.Deferred[0].StartOffset)
}

func TestApplyIdenticalRangesFirstWins(t *testing.T) {
	edits := []TextEdit{
		Replace(2, 7, "FIRST"),
		Replace(2, 7, "SECOND"),
	}

	result, err := Apply([]byte("0123456789"), edits)
	require.NoError(t, err)

	assert.Equal(t, "01FIRST789", string(result.Output))
	require.Len(t, result.Applied, 1)
	assert.Equal(t, "FIRST", result.Applied[0].NewText)
	require.Len(t, result.Deferred, 1)
	assert.Equal(t, "SECOND", result.Deferred[0].NewText)
}

func TestApplyTouchingEditsBothApply(t *testing.T) {
	edits := []TextEdit{
		Delete(0, 3),
		Delete(3, 6),
	}

	result, err := Apply([]byte("0123456789"), edits)
	require.NoError(t, err)

	assert.Equal(t, "6789", string(result.Output))
	assert.Len(t, result.Applied, 2)
	assert.Empty(t, result.Deferred)
}

func TestApplyAppliedNeverOverlap(t *testing.T) {
	edits := []TextEdit{
		Replace(0, 4, "a"),
		Replace(2, 6, "b"),
		Replace(4, 8, "c"),
		Replace(6, 10, "d"),
		Insert(5, "e"),
	}

	result, err := Apply([]byte("0123456789"), edits)
	require.NoError(t, err)

	applied := result.Applied
	for i := 1; i < len(applied); i++ {
		assert.GreaterOrEqual(t, applied[i].StartOffset, applied[i-1].EndOffset,
			"applied edits must not overlap")
	}
	assert.Equal(t, len(edits), len(result.Applied)+len(result.Deferred))
}

func TestApplyValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		edit TextEdit
	}{
		{name: "negative start", edit: Replace(-1, 2, "x")},
		{name: "end before start", edit: Replace(5, 2, "x")},
		{name: "end past content", edit: Replace(0, 100, "x")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Apply([]byte("0123456789"), []TextEdit{tt.edit})
			require.Error(t, err)

			var verr *ValidationError
			assert.ErrorAs(t, err, &verr)
		})
	}
}

func TestApplyDoesNotMutateInputs(t *testing.T) {
	content := []byte("hello world")
	edits := []TextEdit{
		Replace(6, 11, "gopher"),
		Replace(0, 5, "howdy"),
	}

	_, err := Apply(content, edits)
	require.NoError(t, err)

	assert.Equal(t, "hello world", string(content))
	assert.Equal(t, 6, edits[0].StartOffset, "caller's edit order must be preserved")
}

func TestSortStable(t *testing.T) {
	edits := []TextEdit{
		{StartOffset: 5, EndOffset: 9, NewText: "later"},
		{StartOffset: 2, EndOffset: 7, NewText: "first-at-2"},
		{StartOffset: 2, EndOffset: 7, NewText: "second-at-2"},
		{StartOffset: 2, EndOffset: 4, NewText: "shorter-at-2"},
	}

	Sort(edits)

	assert.Equal(t, "shorter-at-2", edits[0].NewText)
	assert.Equal(t, "first-at-2", edits[1].NewText)
	assert.Equal(t, "second-at-2", edits[2].NewText)
	assert.Equal(t, "later", edits[3].NewText)
}

package stats_test

import (
	"testing"

	"dota-dashboard/internal/stats"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sequence(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

func TestPaginate_MiddlePage(t *testing.T) {
	page := stats.Paginate(sequence(45), 20, 2)

	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, 45, page.TotalItems)
	require.Len(t, page.Items, 20)
	assert.Equal(t, 21, page.Items[0])
	assert.Equal(t, 40, page.Items[19])
}

func TestPaginate_LastPageIsPartial(t *testing.T) {
	page := stats.Paginate(sequence(45), 20, 3)

	require.Len(t, page.Items, 5)
	assert.Equal(t, 41, page.Items[0])
	assert.Equal(t, 45, page.Items[4])
}

func TestPaginate_PageBeyondEndClampsToLast(t *testing.T) {
	page := stats.Paginate(sequence(45), 20, 99)

	assert.Equal(t, 3, page.Page)
	assert.Len(t, page.Items, 5)
}

func TestPaginate_PageBelowOneClampsToFirst(t *testing.T) {
	page := stats.Paginate(sequence(45), 20, 0)

	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 1, page.Items[0])

	page = stats.Paginate(sequence(45), 20, -3)
	assert.Equal(t, 1, page.Page)
}

func TestPaginate_EmptyInputStillHasOnePage(t *testing.T) {
	page := stats.Paginate([]int{}, 20, 1)

	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 1, page.TotalPages)
	assert.Equal(t, 0, page.TotalItems)
	assert.Empty(t, page.Items)
}

func TestPaginate_DefaultPageSize(t *testing.T) {
	page := stats.Paginate(sequence(30), 0, 1)

	assert.Len(t, page.Items, 20)
	assert.Equal(t, 2, page.TotalPages)
}

func TestPaginate_ExactMultiple(t *testing.T) {
	page := stats.Paginate(sequence(40), 20, 2)

	assert.Equal(t, 2, page.TotalPages)
	require.Len(t, page.Items, 20)
	assert.Equal(t, 40, page.Items[19])
}

package diff

import (
	"testing"

	"go-career-watch/internal/scraper"

	"github.com/stretchr/testify/assert"
)

func posting(id string) scraper.JobPosting {
	return scraper.JobPosting{ID: id, Title: "Role " + id, Link: "https://example.com/jobs/" + id}
}

func snapshot(count int, ids ...string) scraper.JobSnapshot {
	jobs := []scraper.JobPosting{}
	for _, id := range ids {
		jobs = append(jobs, posting(id))
	}
	return scraper.JobSnapshot{TotalCount: count, TopJobs: jobs}
}

func TestCompareIdentical(t *testing.T) {
	s := snapshot(150, "a", "b", "c", "d", "e")

	report := Compare(s, s)

	assert.Zero(t, report.CountDelta)
	assert.Empty(t, report.Added)
	assert.Empty(t, report.Removed)
	assert.False(t, report.Reordered)
	assert.False(t, report.Notable())
}

func TestCompareReorderOnly(t *testing.T) {
	prev := snapshot(150, "a", "b", "c", "d", "e")
	cur := snapshot(150, "e", "a", "b", "c", "d")

	report := Compare(prev, cur)

	assert.True(t, report.Reordered)
	assert.Empty(t, report.Added)
	assert.Empty(t, report.Removed)
	assert.False(t, report.Notable(), "reordering alone must not notify")
	assert.Len(t, report.Moves, 5)
}

func TestCompareRotation(t *testing.T) {
	//new posting enters, oldest falls off the bottom
	prev := snapshot(150, "a", "b", "c", "d", "e")
	cur := snapshot(150, "f", "a", "b", "c", "d")

	report := Compare(prev, cur)

	assert.Equal(t, []scraper.JobPosting{posting("f")}, report.Added)
	assert.Equal(t, []scraper.JobPosting{posting("e")}, report.Removed)
	assert.False(t, report.Reordered)
	assert.True(t, report.Notable())
}

func TestCompareCountDecrease(t *testing.T) {
	prev := snapshot(150, "a", "b")
	cur := snapshot(140, "a", "b")

	report := Compare(prev, cur)

	assert.Equal(t, -10, report.CountDelta)
	assert.True(t, report.Notable(), "a decrease is still notable")
}

func TestCompareFirstRun(t *testing.T) {
	cur := snapshot(150, "a", "b", "c", "d", "e")

	report := Compare(scraper.EmptySnapshot(), cur)

	assert.Equal(t, 150, report.CountDelta)
	assert.Len(t, report.Added, 5)
	assert.Empty(t, report.Removed)
	assert.True(t, report.Notable())
}

func TestCompareMoves(t *testing.T) {
	prev := snapshot(10, "a", "b", "c")
	cur := snapshot(10, "c", "b", "a")

	report := Compare(prev, cur)

	assert.True(t, report.Reordered)
	assert.Len(t, report.Moves, 2)
	assert.Equal(t, 3, report.Moves[0].From)
	assert.Equal(t, 1, report.Moves[0].To)
}

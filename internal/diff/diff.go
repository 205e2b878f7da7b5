// Pure comparison of two snapshots
// No I/O here so the logic stays trivially testable

package diff

import (
	"go-career-watch/internal/scraper"

	mapset "github.com/deckarep/golang-set/v2"
)

// Move records a posting that survived between runs but changed rank.
// Informational only; it never makes a report notable.
type Move struct {
	Posting scraper.JobPosting
	From    int
	To      int
}

// ChangeReport describes what changed between the baseline and the current
// snapshot. It lives only within one run.
type ChangeReport struct {
	CountDelta int
	Added      []scraper.JobPosting
	Removed    []scraper.JobPosting
	Reordered  bool
	Moves      []Move
}

// Notable reports whether the change warrants a notification. Pure
// reordering of an unchanged set is not notable.
func (r ChangeReport) Notable() bool {
	return r.CountDelta != 0 || len(r.Added) > 0 || len(r.Removed) > 0
}

// Compare diffs the current snapshot against the previous one.
func Compare(previous, current scraper.JobSnapshot) ChangeReport {
	report := ChangeReport{
		CountDelta: current.TotalCount - previous.TotalCount,
	}

	prevIDs := mapset.NewThreadUnsafeSet[string]()
	prevPos := make(map[string]int, len(previous.TopJobs))
	for i, job := range previous.TopJobs {
		prevIDs.Add(job.ID)
		prevPos[job.ID] = i + 1
	}

	curIDs := mapset.NewThreadUnsafeSet[string]()
	for _, job := range current.TopJobs {
		curIDs.Add(job.ID)
	}

	for _, job := range current.TopJobs {
		if !prevIDs.Contains(job.ID) {
			report.Added = append(report.Added, job)
		}
	}
	for _, job := range previous.TopJobs {
		if !curIDs.Contains(job.ID) {
			report.Removed = append(report.Removed, job)
		}
	}

	for i, job := range current.TopJobs {
		if old, ok := prevPos[job.ID]; ok && old != i+1 {
			report.Moves = append(report.Moves, Move{Posting: job, From: old, To: i + 1})
		}
	}

	report.Reordered = len(report.Added) == 0 && len(report.Removed) == 0 && len(report.Moves) > 0

	return report
}

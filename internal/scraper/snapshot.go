// Snapshot types shared by the whole pipeline
// A snapshot is immutable once extracted

package scraper

// MaxTopJobs caps how many postings a snapshot carries.
const MaxTopJobs = 5

// JobPosting is one listing from the career page. ID is unique within a
// snapshot: the resolved posting link when one exists, otherwise a slug of
// the normalized title.
type JobPosting struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Link  string `json:"link"`
}

// JobSnapshot is the point-in-time capture of the watched page.
type JobSnapshot struct {
	TotalCount int          `json:"total_count"`
	TopJobs    []JobPosting `json:"top_jobs"`
}

// EmptySnapshot stands in for the baseline on a first run.
func EmptySnapshot() JobSnapshot {
	return JobSnapshot{TopJobs: []JobPosting{}}
}

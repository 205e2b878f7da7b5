package state

import (
	"encoding/json"
	"fmt"
	"os"

	"go-career-watch/internal/scraper"
)

// IOError wraps a persisted-state read or write failure.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("state %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// Store persists the baseline snapshot across runs: one JSON file for the
// job count, one for the top postings. Both are fully replaced on save.
// The scheduler serializes runs, so no locking.
type Store struct {
	countPath string
	jobsPath  string
}

func NewStore(countPath, jobsPath string) *Store {
	return &Store{countPath: countPath, jobsPath: jobsPath}
}

type countFile struct {
	TotalCount int `json:"total_count"`
}

type jobsFile struct {
	TopJobs []scraper.JobPosting `json:"top_jobs"`
}

// Load returns the baseline snapshot and whether one existed. A missing
// count file means first run: the empty snapshot and found=false, no error.
// An unreadable or corrupt file also degrades to the empty snapshot, but the
// error is returned so the caller can log it.
func (s *Store) Load() (scraper.JobSnapshot, bool, error) {
	snap := scraper.EmptySnapshot()

	data, err := os.ReadFile(s.countPath)
	if err != nil {
		if os.IsNotExist(err) {
			return snap, false, nil
		}
		return snap, false, &IOError{Op: "load", Path: s.countPath, Err: err}
	}
	var cf countFile
	if err := json.Unmarshal(data, &cf); err != nil {
		return snap, false, &IOError{Op: "load", Path: s.countPath, Err: err}
	}
	snap.TotalCount = cf.TotalCount

	//the jobs file may lag behind the count file; absence is not an error
	data, err = os.ReadFile(s.jobsPath)
	if err != nil {
		if os.IsNotExist(err) {
			return snap, true, nil
		}
		return scraper.EmptySnapshot(), false, &IOError{Op: "load", Path: s.jobsPath, Err: err}
	}
	var jf jobsFile
	if err := json.Unmarshal(data, &jf); err != nil {
		return scraper.EmptySnapshot(), false, &IOError{Op: "load", Path: s.jobsPath, Err: err}
	}
	if jf.TopJobs != nil {
		snap.TopJobs = jf.TopJobs
	}

	return snap, true, nil
}

// Save replaces the persisted baseline with snap. Each file is written to a
// temp sibling and renamed so a crash mid-write never leaves a torn file.
func (s *Store) Save(snap scraper.JobSnapshot) error {
	if err := writeJSON(s.countPath, countFile{TotalCount: snap.TotalCount}); err != nil {
		return err
	}
	jobs := snap.TopJobs
	if jobs == nil {
		jobs = []scraper.JobPosting{}
	}
	return writeJSON(s.jobsPath, jobsFile{TopJobs: jobs})
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return &IOError{Op: "save", Path: path, Err: err}
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return &IOError{Op: "save", Path: path, Err: err}
	}
	if err := os.Rename(tmp, path); err != nil {
		return &IOError{Op: "save", Path: path, Err: err}
	}
	return nil
}

package renamer

import "fmt"

// Status is the outcome for one file.
type Status int

const (
	StatusFailed Status = iota
	StatusRenamed
	StatusPlanned
	StatusUnchanged
)

func (s Status) String() string {
	switch s {
	case StatusRenamed:
		return "renamed"
	case StatusPlanned:
		return "planned"
	case StatusUnchanged:
		return "unchanged"
	default:
		return "failed"
	}
}

// Result records what happened to one file. Target is set whenever a name
// was resolved, including dry runs and failed moves.
type Result struct {
	Source string
	Target string
	Status Status
	Err    error
}

// Report collects results in processing order.
type Report struct {
	DryRun  bool
	Results []Result
}

func (r *Report) add(res Result) {
	r.Results = append(r.Results, res)
}

// Failed returns the results that carry an error.
func (r *Report) Failed() []Result {
	var out []Result
	for _, res := range r.Results {
		if res.Err != nil {
			out = append(out, res)
		}
	}
	return out
}

// Count returns how many results have status s.
func (r *Report) Count(s Status) int {
	n := 0
	for _, res := range r.Results {
		if res.Status == s {
			n++
		}
	}
	return n
}

// FileError attaches the file path to a per-file failure.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

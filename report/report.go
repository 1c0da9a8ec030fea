package report

import "strings"

// Status tokens recognized in the report, always matched case-insensitively.
// A "pass" token doubles as the control token that introduces the summary
// statistics row, and "bucket" introduces the bucket statistics block.
const (
	statusPass         = "pass"
	statusFail         = "fail"
	controlTokenBucket = "bucket"
)

// Record is one retained line of the plain-text report, whitespace-split into
// tokens. For plain test rows the token order follows the upstream summary
// format: test id, result id, result dir or test name, cycles, status, bucket,
// seed. No type coercion is applied; everything stays a string.
type Record []string

func (r Record) hasFirstToken(token string) bool {
	return len(r) > 0 && strings.EqualFold(r[0], token)
}

// HeadInfo holds the head file lines, each whitespace-split. The first token
// of line one is the regression path, the first token of line two the latest
// commit. The parser applies no shape validation; consumers do.
type HeadInfo [][]string

// Stats aggregates the per-test rows of a run.
type Stats struct {
	Passed   int
	Failed   int
	NoStatus int
}

// Total returns the number of test rows the run produced.
func (s Stats) Total() int {
	return s.Passed + s.Failed + s.NoStatus
}

// Tally counts pass/fail/no-status over the plain test rows, classifying rows
// with the same positional mode rules the renderer uses so that statistics
// control rows are not counted as tests.
func Tally(records []Record) Stats {
	var stats Stats

	mode := modeNormal
	for _, rec := range records {
		switch {
		case rec.hasFirstToken(controlTokenBucket):
			mode = modeBucketStats
		case rec.hasFirstToken(statusPass):
			mode = modeSummaryStats
		case mode == modeBucketStats:
			// bucket statistics, not a test
		case mode == modeSummaryStats:
			mode = modeNormal
		default:
			stats.count(rec)
		}
	}

	return stats
}

func (s *Stats) count(rec Record) {
	for _, token := range rec {
		if strings.EqualFold(token, statusPass) {
			s.Passed++
			return
		}
		if strings.EqualFold(token, statusFail) {
			s.Failed++
			return
		}
	}
	s.NoStatus++
}

// Package stats reduces the output of one organize run into per-category
// counts and byte totals. It is a read-only consumer: nothing here touches
// the filesystem or the move log.
package stats

import (
	"path/filepath"
	"sort"

	"github.com/dustin/go-humanize"

	"sortd/internal/movelog"
	"sortd/internal/plan"
)

// CategoryTotal is the tally for one category.
type CategoryTotal struct {
	Count int
	Bytes int64
}

// Summary aggregates one run. Never persisted.
type Summary struct {
	byCategory map[string]CategoryTotal
}

// Aggregate tallies executed move records by category.
func Aggregate(records []movelog.Record) Summary {
	s := Summary{byCategory: make(map[string]CategoryTotal)}
	for _, record := range records {
		s.add(filepath.Base(filepath.Dir(record.Dest)), record.Size)
	}
	return s
}

// AggregateMoves tallies planned moves, used for dry-run reporting where no
// records exist.
func AggregateMoves(moves []plan.Move) Summary {
	s := Summary{byCategory: make(map[string]CategoryTotal)}
	for _, move := range moves {
		s.add(move.Category(), move.Size)
	}
	return s
}

func (s *Summary) add(category string, size int64) {
	total := s.byCategory[category]
	total.Count++
	total.Bytes += size
	s.byCategory[category] = total
}

// Category returns the tally for one category, zero when absent.
func (s Summary) Category(name string) CategoryTotal {
	return s.byCategory[name]
}

// Categories returns the category names present, ordered by descending file
// count with name as tiebreaker, matching the report layout.
func (s Summary) Categories() []string {
	names := make([]string, 0, len(s.byCategory))
	for name := range s.byCategory {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		a, b := s.byCategory[names[i]], s.byCategory[names[j]]
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		return names[i] < names[j]
	})
	return names
}

// TotalCount returns the number of files across all categories.
func (s Summary) TotalCount() int {
	total := 0
	for _, t := range s.byCategory {
		total += t.Count
	}
	return total
}

// TotalBytes returns the byte total across all categories.
func (s Summary) TotalBytes() int64 {
	var total int64
	for _, t := range s.byCategory {
		total += t.Bytes
	}
	return total
}

// FormatBytes renders a byte count for human consumption, e.g. "1.5 MiB".
func FormatBytes(n int64) string {
	return humanize.IBytes(uint64(n))
}

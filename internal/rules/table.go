package rules

import (
	"fmt"
	"sort"
	"strings"
)

// FallbackCategory receives every file whose extension matches no rule. It is
// always present in a built table and claims no extensions of its own.
const FallbackCategory = "Other"

// Table is an immutable, validated mapping from file extension to category.
// Build it with NewTable or Default; the zero value is not usable.
type Table struct {
	categories []string
	byExt      map[string]string
}

// NewTable validates categoryExtensions and builds a Table. Category order is
// preserved for reporting. Extensions are lower-cased and must begin with a
// dot; an extension claimed by two categories is rejected. The fallback
// category is appended automatically when absent.
func NewTable(categories []string, categoryExtensions map[string][]string) (Table, error) {
	if len(categories) != len(categoryExtensions) {
		return Table{}, fmt.Errorf("rule table: %d categories listed, %d mapped", len(categories), len(categoryExtensions))
	}

	table := Table{byExt: make(map[string]string)}
	seen := make(map[string]struct{}, len(categories))
	for _, category := range categories {
		category = strings.TrimSpace(category)
		if category == "" {
			return Table{}, fmt.Errorf("rule table: empty category name")
		}
		if _, dup := seen[category]; dup {
			return Table{}, fmt.Errorf("rule table: duplicate category %q", category)
		}
		seen[category] = struct{}{}
		table.categories = append(table.categories, category)

		for _, ext := range categoryExtensions[category] {
			ext = strings.ToLower(strings.TrimSpace(ext))
			if ext == "" {
				continue
			}
			if !strings.HasPrefix(ext, ".") {
				return Table{}, fmt.Errorf("rule table: extension %q in %q must start with a dot", ext, category)
			}
			if owner, claimed := table.byExt[ext]; claimed && owner != category {
				return Table{}, fmt.Errorf("rule table: extension %q claimed by both %q and %q", ext, owner, category)
			}
			table.byExt[ext] = category
		}
	}

	if _, ok := seen[FallbackCategory]; !ok {
		table.categories = append(table.categories, FallbackCategory)
	}
	return table, nil
}

// Categories returns the category names in table order, fallback last when it
// was added implicitly.
func (t Table) Categories() []string {
	cp := make([]string, len(t.categories))
	copy(cp, t.categories)
	return cp
}

// Extensions returns the sorted extensions claimed by category.
func (t Table) Extensions(category string) []string {
	var exts []string
	for ext, owner := range t.byExt {
		if owner == category {
			exts = append(exts, ext)
		}
	}
	sort.Strings(exts)
	return exts
}

// Classify maps a filename to its category. The extension is the substring
// from the last dot to the end, lower-cased; dotfiles such as ".bashrc" and
// names without a dot have no extension. Unknown extensions fall back to
// FallbackCategory. Classify is pure and never fails.
func (t Table) Classify(filename string) string {
	ext := Extension(filename)
	if ext == "" {
		return FallbackCategory
	}
	if category, ok := t.byExt[ext]; ok {
		return category
	}
	return FallbackCategory
}

// Extension extracts the lower-cased extension of filename, including the
// leading dot, or "" when the name has none.
func Extension(filename string) string {
	idx := strings.LastIndexByte(filename, '.')
	if idx <= 0 {
		// No dot, or a dotfile like ".bashrc" whose only dot leads the name.
		return ""
	}
	return strings.ToLower(filename[idx:])
}

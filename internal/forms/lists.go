package forms

import (
	"errors"
	"strings"

	"github.com/samber/lo"
)

var ErrIndexOutOfRange = errors.New("list index out of range")

// AddItem appends an empty entry, the way the growable inputs do.  The
// input slice is never modified.
func AddItem(list []string) []string {
	out := make([]string, len(list), len(list)+1)
	copy(out, list)
	return append(out, "")
}

// SetItem returns a copy of list with entry i replaced.
func SetItem(list []string, i int, v string) ([]string, error) {
	if i < 0 || i >= len(list) {
		return nil, ErrIndexOutOfRange
	}
	out := append([]string(nil), list...)
	out[i] = v
	return out, nil
}

// RemoveItem returns a copy of list without entry i.
func RemoveItem(list []string, i int) ([]string, error) {
	if i < 0 || i >= len(list) {
		return nil, ErrIndexOutOfRange
	}
	out := make([]string, 0, len(list)-1)
	out = append(out, list[:i]...)
	return append(out, list[i+1:]...), nil
}

// Toggle adds v to list when absent and removes it when present.
func Toggle(list []string, v string) []string {
	if lo.Contains(list, v) {
		return lo.Without(list, v)
	}
	return append(append([]string(nil), list...), v)
}

// Compact trims every entry and drops the blank ones.
func Compact(list []string) []string {
	return lo.Compact(lo.Map(list, func(s string, _ int) string { return strings.TrimSpace(s) }))
}

// SplitCSV turns "a, b,,c" into [a b c].
func SplitCSV(s string) []string {
	if strings.TrimSpace(s) == "" {
		return []string{}
	}
	return Compact(strings.Split(s, ","))
}

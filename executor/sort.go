package executor

import (
	"sort"
	"strings"

	"github.com/foilterm/foil/executor/variant"
)

// SortOptions mirrors interpreter/elements/sort.c's `<sort>` element
// attributes: `on` is the array to order, `against` (split on spaces into
// one key per element) names the object fields to compare by when `on`
// holds objects, and the two flags match `ascendingly`/
// `casesensitively`/their negations.
type SortOptions struct {
	Against       string
	Ascending     bool
	CaseSensitive bool
}

// Sort orders a copy of on's elements per opts, implementing spec.md
// §4.2's SORT executor glue (`on/against/with/ascendingly/descendingly/
// casesensitively/caseinsensitively`), grounded on
// original_source/Source/PurC/interpreter/elements/sort.c's
// split_key/comp_raw/comp_by_key/sort_cmp.
func Sort(on variant.Value, opts SortOptions) variant.Value {
	if on.Kind() != variant.Array && on.Kind() != variant.Set {
		return on
	}
	items := append([]variant.Value(nil), on.Items()...)
	keys := strings.Fields(opts.Against)
	sort.SliceStable(items, func(i, j int) bool {
		return sortCmp(items[i], items[j], keys, opts) < 0
	})
	return variant.NewArray(items...)
}

// sortCmp implements sort_cmp: compare l and r key-by-key (or, with no
// keys, as raw scalars), returning the first non-zero comparator result.
func sortCmp(l, r variant.Value, keys []string, opts SortOptions) int {
	if len(keys) == 0 {
		return compRaw(l, r, isNumeric(l) && isNumeric(r), opts)
	}
	for _, key := range keys {
		lv, lok := fieldOf(l, key)
		rv, rok := fieldOf(r, key)
		byNumber := lok && isNumeric(lv) || rok && isNumeric(rv)
		if ret := compRaw(lv, rv, byNumber, opts); ret != 0 {
			return ret
		}
	}
	return 0
}

func fieldOf(v variant.Value, key string) (variant.Value, bool) {
	if v.Kind() != variant.Object {
		return variant.UndefinedValue, false
	}
	return v.Get(key)
}

func isNumeric(v variant.Value) bool { return v.Kind() == variant.Number }

func compRaw(l, r variant.Value, byNumber bool, opts SortOptions) int {
	if byNumber {
		return compNumber(l.Numerify(), r.Numerify(), opts.Ascending)
	}
	return compString(l.Stringify(), r.Stringify(), opts.Ascending, opts.CaseSensitive)
}

func compNumber(l, r float64, ascending bool) int {
	var ret int
	switch {
	case l > r:
		ret = 1
	case l < r:
		ret = -1
	}
	if !ascending {
		ret = -ret
	}
	return ret
}

func compString(l, r string, ascending, caseSensitive bool) int {
	if !caseSensitive {
		l, r = strings.ToLower(l), strings.ToLower(r)
	}
	ret := strings.Compare(l, r)
	if !ascending {
		ret = -ret
	}
	return ret
}

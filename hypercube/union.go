package hypercube

import (
	"sort"

	"github.com/highperformancecoder/civita/coord"
)

// Union merges other into result by axis name.
//
// Shared string-typed axes always take the set intersection of their
// entries. Shared axes of other kinds take the interval intersection
// (trim to the overlapping [min,max] range, admitting other's in-range
// entries) when intersection is true, and the set union otherwise.
// Axes present only in other are appended in their other order. Entry
// order on every merged axis is sorted by value order.
//
// In intersection mode an other with zero elements empties result
// outright.
// Complexity: O(total entries · log entries).
func Union(result *Hypercube, other Hypercube, intersection bool) {
	if intersection && other.NumElements() == 0 {
		result.XVectors = nil
		return
	}
	indexed := make(map[string]map[coord.Value]struct{}, len(result.XVectors))
	var extra []XVector
	for i := range result.XVectors {
		xv := &result.XVectors[i]
		set := make(map[coord.Value]struct{}, len(xv.Values))
		for _, v := range xv.Values {
			set[v] = struct{}{}
		}
		indexed[xv.Name] = set
	}
	for i := range other.XVectors {
		xv := &other.XVectors[i]
		set, shared := indexed[xv.Name]
		if !shared {
			extra = append(extra, xv.Clone())
			continue
		}
		switch {
		case xv.Dimension.Type == coord.KindString:
			members := make(map[coord.Value]struct{}, len(xv.Values))
			for _, v := range xv.Values {
				members[v] = struct{}{}
			}
			for v := range set {
				if _, ok := members[v]; !ok {
					delete(set, v)
				}
			}
		case intersection:
			if len(set) == 0 {
				result.XVectors = nil
				return
			}
			lo, hi := valueRange(xv.Values)
			rlo, rhi := setRange(set)
			if lo.Less(rlo) {
				lo = rlo
			}
			if rhi.Less(hi) {
				hi = rhi
			}
			for v := range set {
				if v.Less(lo) || hi.Less(v) {
					delete(set, v)
				}
			}
			for _, v := range xv.Values {
				if !v.Less(lo) && !hi.Less(v) {
					set[v] = struct{}{}
				}
			}
		default:
			for _, v := range xv.Values {
				set[v] = struct{}{}
			}
		}
	}
	for i := range result.XVectors {
		set := indexed[result.XVectors[i].Name]
		vals := make([]coord.Value, 0, len(set))
		for v := range set {
			vals = append(vals, v)
		}
		sort.Slice(vals, func(a, b int) bool { return vals[a].Less(vals[b]) })
		result.XVectors[i].Values = vals
	}
	result.XVectors = append(result.XVectors, extra...)
}

// valueRange returns the minimum and maximum of a non-empty slice.
func valueRange(vals []coord.Value) (lo, hi coord.Value) {
	lo, hi = vals[0], vals[0]
	for _, v := range vals[1:] {
		if v.Less(lo) {
			lo = v
		}
		if hi.Less(v) {
			hi = v
		}
	}
	return lo, hi
}

// setRange returns the minimum and maximum key of a non-empty set.
func setRange(set map[coord.Value]struct{}) (lo, hi coord.Value) {
	first := true
	for v := range set {
		if first {
			lo, hi, first = v, v, false
			continue
		}
		if v.Less(lo) {
			lo = v
		}
		if hi.Less(v) {
			hi = v
		}
	}
	return lo, hi
}

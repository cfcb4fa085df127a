// Package reconcile equalizes the number of detected clusters with the number
// of expected object names.
//
// When clusters outnumber names the smallest clusters, measured by total
// contour length, are pruned and the survivors keep their detection order.
// When names outnumber clusters the trailing names are dropped. Both cases are
// lossy and are reported as warnings rather than errors.
package reconcile

import (
	"fmt"
	"slices"
	"sort"

	"cluster-splitter/pkg/geometry"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Warning codes.
const (
	CodeFewerNames = "names-fewer-than-clusters"
	CodeMoreNames  = "names-more-than-clusters"
)

// Warning is a non-fatal diagnostic about a count mismatch.
type Warning struct {
	Code    string
	Message string
}

func (w Warning) String() string {
	return fmt.Sprintf("warning[%s]: %s", w.Code, w.Message)
}

// WeightedCluster is the sort key used for pruning.
type WeightedCluster struct {
	Length int // sum of member contour point counts
	Group  geometry.ClusterGroup
	Index  int // position in the received cluster order
}

// Result holds the corrected clusters and names, always of equal length.
type Result struct {
	Groups []geometry.ClusterGroup
	Names  []string

	// Dropped lists the original indices of pruned clusters, ascending.
	Dropped []int
	// TruncatedNames are the trailing names that had no cluster.
	TruncatedNames []string

	Warnings []Warning
}

// Weigh computes the WeightedCluster of every group, in received order.
func Weigh(groups []geometry.ClusterGroup, contours geometry.ContourSet) []WeightedCluster {
	out := make([]WeightedCluster, len(groups))
	for i, g := range groups {
		out[i] = WeightedCluster{Length: g.TotalLength(contours), Group: g, Index: i}
	}
	return out
}

// Reconcile matches groups against names. The inputs are not modified.
func Reconcile(groups []geometry.ClusterGroup, names []string, contours geometry.ContourSet) Result {
	c, n := len(groups), len(names)
	switch {
	case n < c:
		return prune(groups, names, contours)
	case n > c:
		return Result{
			Groups:         slices.Clone(groups),
			Names:          slices.Clone(names[:c]),
			TruncatedNames: slices.Clone(names[c:]),
			Warnings: []Warning{{
				Code: CodeMoreNames,
				Message: fmt.Sprintf("%d names for %d grouped contours; dropped the last %d names %q. "+
					"Names are assumed to be listed in the same top-to-bottom, left-to-right order as the objects, double check output",
					n, c, n-c, names[c:]),
			}},
		}
	default:
		return Result{Groups: slices.Clone(groups), Names: slices.Clone(names)}
	}
}

func prune(groups []geometry.ClusterGroup, names []string, contours geometry.ContourSet) Result {
	diff := len(groups) - len(names)

	bySize := Weigh(groups, contours)
	// Weigh returns index order, so a stable sort breaks length ties by index.
	sort.SliceStable(bySize, func(i, j int) bool {
		return bySize[i].Length < bySize[j].Length
	})

	removed := bySize[:diff]
	kept := slices.Clone(bySize[diff:])
	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].Index < kept[j].Index
	})

	res := Result{
		Groups: make([]geometry.ClusterGroup, len(kept)),
		Names:  slices.Clone(names),
	}
	keptLen := make([]float64, len(kept))
	for i, w := range kept {
		res.Groups[i] = w.Group
		keptLen[i] = float64(w.Length)
	}
	removedLen := make([]float64, len(removed))
	for i, w := range removed {
		res.Dropped = append(res.Dropped, w.Index)
		removedLen[i] = float64(w.Length)
	}
	sort.Ints(res.Dropped)

	msg := fmt.Sprintf("%d names for %d grouped contours; removed the %d smallest clusters %v (%.0f contour points in total)",
		len(names), len(groups), diff, res.Dropped, floats.Sum(removedLen))
	if len(keptLen) > 0 {
		msg += fmt.Sprintf(", kept clusters average %.1f points", stat.Mean(keptLen, nil))
	}
	res.Warnings = []Warning{{Code: CodeFewerNames, Message: msg + ", double check output"}}
	return res
}

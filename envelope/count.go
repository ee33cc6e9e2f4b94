package envelope

import "github.com/dshills/x12/bind"

// CountSegments returns the total number of segments contained in root and
// every descendant loop, the value a caller building a transaction tree by
// hand (rather than parsing one) needs to compute its own SE01 before
// calling Validate.
func CountSegments(root *bind.Loop) int {
	if root == nil {
		return 0
	}
	count := 0
	root.Walk(func(l *bind.Loop) bool {
		count += len(l.Segments)
		return true
	})
	return count
}

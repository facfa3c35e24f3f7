package emitter

// shouldExpand decides whether a compound value at the given nesting level
// opens a bracketed or indented block. At level == maxDepth the value is
// rendered through the string path instead; this bound is the only guard
// against unbounded recursion on deep or cyclic inputs.
func shouldExpand(level, maxDepth int) bool {
	return level < maxDepth
}

// Package compress re-encodes oversized images until they fit a byte budget.
//
// The pipeline decodes the source, downscales it when its longer side is
// above MaxDimension, then encodes at decreasing quality (90, 75, 60, 45, 30)
// and returns the first result at or under the budget. It holds no state
// between calls and never modifies its input.
package compress

package lessonkit

// DividerPoints computes where presentational dividers go for a container of
// n normalized items: one between every adjacent pair, never at the edges.
// The returned indices i mean "divider after items[i]". Zero points for n <= 1,
// exactly n-1 otherwise. Pure and idempotent; dividers carry no data.
func DividerPoints(n int) []int {
	if n < 2 {
		return nil
	}
	out := make([]int, n-1)
	for i := range out {
		out[i] = i
	}
	return out
}

package pathops

// Chunk partitions ids into consecutive slices of at most max
// elements. The slices cover ids exactly, in order, with no overlap;
// only the final slice may be short. Chunk panics on a non-positive
// max, which Validate rules out before any run.
func Chunk(ids []string, max int) [][]string {
	if max < 1 {
		panic("pathops: chunk size must be positive")
	}
	if len(ids) == 0 {
		return nil
	}
	batches := make([][]string, 0, (len(ids)+max-1)/max)
	for start := 0; start < len(ids); start += max {
		end := start + max
		if end > len(ids) {
			end = len(ids)
		}
		batches = append(batches, ids[start:end])
	}
	return batches
}

package cmd

import "sort"

// UniformDistribution splits all bucketed records into groupCount
// contiguous groups that differ in size by at most one.
//
// Buckets are flattened in descending size order (stable, so equally
// sized branches keep their first-seen order) and the concatenated
// sequence is sliced: every group gets total/groupCount records, and
// the first total%groupCount groups get one extra. When groupCount
// exceeds the record count the trailing groups come out empty.
func UniformDistribution(buckets *Buckets, groupCount int) [][]Record {
	codes := make([]string, len(buckets.Codes()))
	copy(codes, buckets.Codes())
	sort.SliceStable(codes, func(i, j int) bool {
		return len(buckets.Records(codes[i])) > len(buckets.Records(codes[j]))
	})

	var merged []Record
	for _, code := range codes {
		merged = append(merged, buckets.Records(code)...)
	}

	size := len(merged) / groupCount
	remainder := len(merged) % groupCount

	groups := make([][]Record, groupCount)
	pointer := 0
	for i := 0; i < groupCount; i++ {
		end := pointer + size
		if i < remainder {
			end++
		}
		groups[i] = merged[pointer:end]
		pointer = end
	}
	return groups
}

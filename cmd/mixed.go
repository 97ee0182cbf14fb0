package cmd

import "errors"

// ErrInvalidGroupCount is returned when a distribution is requested for
// fewer than one group
var ErrInvalidGroupCount = errors.New("group count must be at least 1")

// MixedDistribution fills groupCount groups to a common target size by
// cycling through the branch buckets in first-seen order, taking one
// record from the front of each non-empty branch per pass. A branch
// that runs out leaves the rotation for good. Records left over once
// every group has reached the target (total/groupCount) are appended
// round-robin starting at group 0, so groups may end up one record
// apart but no record is ever dropped.
func MixedDistribution(buckets *Buckets, groupCount int) ([][]Record, error) {
	if groupCount <= 0 {
		return nil, ErrInvalidGroupCount
	}

	size := buckets.Total() / groupCount

	// Independent FIFO queues per branch, cycled in first-seen order.
	order := make([]string, len(buckets.Codes()))
	copy(order, buckets.Codes())
	pools := make(map[string][]Record, len(order))
	for _, code := range order {
		queue := make([]Record, len(buckets.Records(code)))
		copy(queue, buckets.Records(code))
		pools[code] = queue
	}

	groups := make([][]Record, groupCount)
	for i := range groups {
		groups[i] = []Record{}
	}

	for i := 0; i < groupCount; i++ {
		for len(groups[i]) < size && len(order) > 0 {
			remaining := order[:0]
			filled := false
			for _, code := range order {
				if !filled && len(pools[code]) > 0 {
					groups[i] = append(groups[i], pools[code][0])
					pools[code] = pools[code][1:]
					filled = len(groups[i]) == size
				}
				if len(pools[code]) > 0 {
					remaining = append(remaining, code)
				} else {
					delete(pools, code)
				}
			}
			order = remaining
		}
	}

	// Whatever is still queued could not be distributed evenly; spread
	// it one record at a time across the groups.
	var leftovers []Record
	for _, code := range order {
		leftovers = append(leftovers, pools[code]...)
	}
	for idx, rec := range leftovers {
		groups[idx%groupCount] = append(groups[idx%groupCount], rec)
	}

	return groups, nil
}

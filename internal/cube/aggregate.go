package cube

import "github.com/roach88/carecube/internal/loader"

// Key is the grouping tuple. Fields are compared byte for byte.
type Key struct {
	County      string
	Region      string
	FieldOfCare string
}

// Group is one distinct key and the number of records that carry it.
type Group struct {
	Key   Key
	Count int
}

// Aggregate counts records per key. Groups come back in the order their key
// was first seen.
func Aggregate(records []loader.Record) []Group {
	index := make(map[Key]int)
	var groups []Group

	for _, r := range records {
		k := Key{County: r.County, Region: r.Region, FieldOfCare: r.FieldOfCare}
		if i, ok := index[k]; ok {
			groups[i].Count++
			continue
		}
		index[k] = len(groups)
		groups = append(groups, Group{Key: k, Count: 1})
	}
	return groups
}

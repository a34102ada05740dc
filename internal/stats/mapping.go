package stats

// Group is the statistics entry of a single group key.
type Group struct {
	Key string
	Entry
}

// Mapping lists group statistics in the order their keys were first seen.
type Mapping []Group

// Keys returns the group keys in mapping order.
func (m Mapping) Keys() []string {
	keys := make([]string, len(m))
	for i, g := range m {
		keys[i] = g.Key
	}
	return keys
}

// Get returns the entry stored under key.
func (m Mapping) Get(key string) (Entry, bool) {
	for _, g := range m {
		if g.Key == key {
			return g.Entry, true
		}
	}
	return Entry{}, false
}

// Partition buckets values by key in a single in-order pass. The returned
// order lists each key once, at the position it was first encountered.
func Partition(n int, key func(i int) string, value func(i int) float64) (order []string, buckets map[string][]float64) {
	buckets = make(map[string][]float64)
	order = make([]string, 0)
	for i := 0; i < n; i++ {
		k := key(i)
		if _, exists := buckets[k]; !exists {
			order = append(order, k)
		}
		buckets[k] = append(buckets[k], value(i))
	}
	return order, buckets
}

// Aggregate summarizes every bucket in order.
func Aggregate(order []string, buckets map[string][]float64) Mapping {
	out := make(Mapping, 0, len(order))
	for _, k := range order {
		out = append(out, Group{Key: k, Entry: Summarize(buckets[k])})
	}
	return out
}

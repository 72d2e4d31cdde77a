package model

// AggregateEntry sums the milliseconds spent under one key.
type AggregateEntry struct {
	Key        string
	TotalMS    int64
	BusinessMS int64
}

// AggregateTable keeps entries in first-seen key order.
type AggregateTable struct {
	entries []*AggregateEntry
	index   map[string]*AggregateEntry
}

func NewAggregateTable() *AggregateTable {
	return &AggregateTable{
		index: make(map[string]*AggregateEntry),
	}
}

// Upsert appends a new entry for an unseen key, or adds the milliseconds into
// the existing one.
func (t *AggregateTable) Upsert(key string, totalMS, businessMS int64) {
	if entry, ok := t.index[key]; ok {
		entry.TotalMS += totalMS
		entry.BusinessMS += businessMS
		return
	}
	entry := &AggregateEntry{
		Key:        key,
		TotalMS:    totalMS,
		BusinessMS: businessMS,
	}
	t.entries = append(t.entries, entry)
	t.index[key] = entry
}

func (t *AggregateTable) Get(key string) (AggregateEntry, bool) {
	entry, ok := t.index[key]
	if !ok {
		return AggregateEntry{}, false
	}
	return *entry, true
}

func (t *AggregateTable) Len() int {
	return len(t.entries)
}

// Entries returns a copy of the entries in insertion order.
func (t *AggregateTable) Entries() []AggregateEntry {
	result := make([]AggregateEntry, 0, len(t.entries))
	for _, entry := range t.entries {
		result = append(result, *entry)
	}
	return result
}

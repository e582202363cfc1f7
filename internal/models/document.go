package models

// Record is a schemaless JSON object. Spots, categories, reviews,
// itineraries and the profile all carry caller- or dataset-defined fields,
// so they are kept as ordered-on-disk, untyped maps in memory.
type Record map[string]interface{}

// String returns the value for key when it is a string, otherwise "".
func (r Record) String(key string) string {
	if v, ok := r[key].(string); ok {
		return v
	}
	return ""
}

// Tags returns the record's "tags" field coerced to a string slice.
// Non-string entries and a missing or malformed field yield no tags.
func (r Record) Tags() []string {
	raw, ok := r["tags"].([]interface{})
	if !ok {
		// Already-constructed records may hold a typed slice.
		if typed, ok := r["tags"].([]string); ok {
			return typed
		}
		return nil
	}
	tags := make([]string, 0, len(raw))
	for _, t := range raw {
		if s, ok := t.(string); ok {
			tags = append(tags, s)
		}
	}
	return tags
}

// HasTag reports whether tag appears in the record's tag list.
func (r Record) HasTag(tag string) bool {
	for _, t := range r.Tags() {
		if t == tag {
			return true
		}
	}
	return false
}

// Clone returns a shallow copy of the record.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Database is the root document persisted as one JSON file.
type Database struct {
	Spots       []Record `json:"spots"`
	Categories  []Record `json:"categories"`
	Reviews     []Record `json:"reviews"`
	Itineraries []Record `json:"itineraries"`
	Profile     Record   `json:"profile"`
}

// DefaultDatabase returns the empty document used when the file is absent
// or unreadable. Collections are non-nil so they serialize as [] and {}.
func DefaultDatabase() *Database {
	return &Database{
		Spots:       []Record{},
		Categories:  []Record{},
		Reviews:     []Record{},
		Itineraries: []Record{},
		Profile:     Record{},
	}
}

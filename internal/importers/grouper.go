package importers

// RowGroup is every row that contributes to one natural key, in file order.
// Rows[0] is the row that first carried the key.
type RowGroup struct {
	Key  string
	Rows []RawRow
}

// GroupRows collapses rows into one group per natural key.
//
// A row with an empty key column continues the most recently seen key, which
// is how variant and line item rows omit their parent's identifying columns.
// Continuation rows that appear before any keyed row are dropped. A key that
// reappears later joins its existing group. Groups come back in the order
// their keys were first seen.
func GroupRows(rows []RawRow, keyColumn string, normalizeKey func(string) string) []RowGroup {
	index := make(map[string]int)
	var groups []RowGroup
	current := -1

	for _, row := range rows {
		key := row.Get(keyColumn)
		if normalizeKey != nil {
			key = normalizeKey(key)
		}

		if key == "" {
			if current >= 0 {
				groups[current].Rows = append(groups[current].Rows, row)
			}
			continue
		}

		i, exists := index[key]
		if !exists {
			i = len(groups)
			index[key] = i
			groups = append(groups, RowGroup{Key: key})
		}
		groups[i].Rows = append(groups[i].Rows, row)
		current = i
	}

	return groups
}

// MergeStrategy decides which row of a group supplies a scalar field.
type MergeStrategy int

const (
	// MergeFirst takes the value from the row that opened the group, even if empty.
	MergeFirst MergeStrategy = iota
	// MergeFirstPositive takes the first value that parses to a number above zero.
	MergeFirstPositive
	// MergeAnchored takes the value from whichever row supplied the Anchor field.
	MergeAnchored
)

// FieldRule binds a target field to its source columns and merge strategy.
// Columns are alternatives: the first one holding a value in the chosen row wins.
type FieldRule struct {
	Field    string
	Columns  []string
	Strategy MergeStrategy
	Anchor   string
}

// MergePolicy is the per-entity table of field rules.
type MergePolicy []FieldRule

// MergedFields holds the folded scalar values of one group, by field name.
type MergedFields map[string]string

func (m MergedFields) Get(field string) string {
	return m[field]
}

// Merge folds a group's rows into scalar values following the policy.
// Fields no row satisfied are absent from the result.
func (p MergePolicy) Merge(rows []RawRow) MergedFields {
	fields := make(MergedFields, len(p))
	if len(rows) == 0 {
		return fields
	}

	source := make(map[string]int, len(p))
	for _, rule := range p {
		switch rule.Strategy {
		case MergeFirst:
			fields[rule.Field] = rows[0].First(rule.Columns...)
			source[rule.Field] = 0
		case MergeFirstPositive:
			for i, row := range rows {
				v := row.First(rule.Columns...)
				if ParseMoney(v).IsPositive() {
					fields[rule.Field] = v
					source[rule.Field] = i
					break
				}
			}
		}
	}

	// Anchored fields resolve last so an anchor may be declared anywhere in the table.
	for _, rule := range p {
		if rule.Strategy != MergeAnchored {
			continue
		}
		if i, ok := source[rule.Anchor]; ok {
			fields[rule.Field] = rows[i].First(rule.Columns...)
		}
	}

	return fields
}

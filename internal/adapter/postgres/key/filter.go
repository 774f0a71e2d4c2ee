package key

// Filter defines parameters for searching and paginating project keys.
type Filter struct {
	// Search performs ILIKE '%...%' on the key name.
	// nil or empty string means no name filter.
	Search *string

	// SortOrder: "ASC" or "DESC" by name. Default: "ASC".
	SortOrder string

	// Limit is the maximum number of keys to return. Default: 50, max: 500.
	Limit int

	// Offset is the number of keys to skip.
	Offset int
}

const (
	defaultLimit = 50
	maxLimit     = 500

	sortOrderASC  = "ASC"
	sortOrderDESC = "DESC"
)

// normalize applies defaults and clamps values.
func (f *Filter) normalize() {
	switch f.SortOrder {
	case sortOrderASC, sortOrderDESC:
		// valid
	default:
		f.SortOrder = sortOrderASC
	}

	if f.Limit <= 0 {
		f.Limit = defaultLimit
	}
	if f.Limit > maxLimit {
		f.Limit = maxLimit
	}

	// Offset cannot be negative.
	if f.Offset < 0 {
		f.Offset = 0
	}
}

func (f *Filter) hasSearch() bool {
	return f.Search != nil && *f.Search != ""
}

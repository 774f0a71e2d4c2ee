package domain

// KeyFilter contains filtering/pagination parameters for key listings.
type KeyFilter struct {
	Search    *string
	SortOrder string
	Limit     int
	Offset    int
}

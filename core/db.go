package core

// DBOrdering is a validated ORDER BY clause component. Only values built
// from an allow-list of column names may ever reach a query; user input is
// never interpolated directly.
type DBOrdering struct {
	Field     string
	Ascending bool
}

func (ord DBOrdering) String() string {
	direction := "DESC"
	if ord.Ascending {
		direction = "ASC"
	}
	return ord.Field + " " + direction
}

// QueryFilter narrows a resource list query. Search does a case-insensitive
// substring match over the resource's fixed set of text columns.
type QueryFilter struct {
	Search   string
	Ordering DBOrdering
}

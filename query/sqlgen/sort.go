package sqlgen

import "strings"

// Direction is an ORDER BY direction.
type Direction string

// Sort directions.
const (
	Asc  Direction = "ASC"
	Desc Direction = "DESC"
)

// Sort is a single ORDER BY entry.
type Sort struct {
	Column    string
	Direction Direction
}

// SortAsc orders by col ascending.
func SortAsc(col string) Sort {
	return Sort{Column: col, Direction: Asc}
}

// SortDesc orders by col descending.
func SortDesc(col string) Sort {
	return Sort{Column: col, Direction: Desc}
}

// String renders "col DIR". A missing direction defaults to ASC.
func (s Sort) String() string {
	dir := s.Direction
	if dir == "" {
		dir = Asc
	}
	return s.Column + " " + string(dir)
}

// CompileSorts renders sorts as a comma separated ORDER BY body.
func CompileSorts(sorts []Sort) string {
	parts := make([]string, len(sorts))
	for i, s := range sorts {
		parts[i] = s.String()
	}
	return strings.Join(parts, ", ")
}

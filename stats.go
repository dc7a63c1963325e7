package treediff

// Stats holds per-kind operation counts for a patch
type Stats struct {
	Adds     int `json:"adds,omitempty"`     // number of add operations
	Removes  int `json:"removes,omitempty"`  // number of remove operations
	Replaces int `json:"replaces,omitempty"` // number of replace operations
	Moves    int `json:"moves,omitempty"`    // number of move operations
	Copies   int `json:"copies,omitempty"`   // number of copy operations
	Tests    int `json:"tests,omitempty"`    // number of test operations
	Appends  int `json:"appends,omitempty"`  // number of append operations
}

// Total returns the operation count across all kinds
func (s Stats) Total() int {
	return s.Adds + s.Removes + s.Replaces + s.Moves + s.Copies + s.Tests + s.Appends
}

// CalcStats counts the operations in a patch by kind
func CalcStats(p Patch) Stats {
	var s Stats
	for _, op := range p {
		switch op.Op {
		case OpAdd:
			s.Adds++
		case OpRemove:
			s.Removes++
		case OpReplace:
			s.Replaces++
		case OpMove:
			s.Moves++
		case OpCopy:
			s.Copies++
		case OpTest:
			s.Tests++
		case OpAppend:
			s.Appends++
		}
	}
	return s
}

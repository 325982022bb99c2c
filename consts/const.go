package consts

const (
	// CopiesPerTile is the number of physical copies of each tile identity.
	CopiesPerTile = 4
	// Identities is the number of distinct tile identities.
	Identities = 34
	WallSize   = CopiesPerTile * Identities

	HandSize = 13
	Seats    = 4
)

type Error struct {
	Code int
	Msg  string
	Exit bool
}

func (e Error) Error() string {
	return e.Msg
}

func NewErr(code int, exit bool, msg string) Error {
	return Error{Code: code, Exit: exit, Msg: msg}
}

var (
	ErrorsWallExhausted = NewErr(1, true, "Wall exhausted. ")
	ErrorsSeatInvalid   = NewErr(2, false, "Seat invalid. ")
)

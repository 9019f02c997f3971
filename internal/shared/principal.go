package shared

// Kind tags the two principal varieties.
type Kind string

const (
	KindStudent Kind = "student"
	KindAdmin   Kind = "admin"
)

// Valid reports whether k names a known principal kind.
func (k Kind) Valid() bool {
	return k == KindStudent || k == KindAdmin
}

// Principal is a resolved authenticated identity. Kind is not stored on the
// row itself; it records which store the lookup succeeded against.
type Principal struct {
	ID       int64
	Username string
	Kind     Kind
	IsActive bool
}

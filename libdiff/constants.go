package libdiff

type Kind int

const (
	Insert Kind = iota
	Delete
	Replace
)

func (k Kind) String() string {
	switch k {
	case Insert:
		return "insert"
	case Delete:
		return "delete"
	case Replace:
		return "replace"
	default:
		return "<unknown change>"
	}
}

func (k Kind) sigil() string {
	switch k {
	case Insert:
		return "+"
	case Delete:
		return "-"
	default:
		return "~"
	}
}

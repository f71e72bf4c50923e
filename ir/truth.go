package ir

// Truth reports whether node holds a non-zero value. Absent slots, empty
// containers, empty strings and zero numbers are false.
func Truth(node *Node) bool {
	if node == nil {
		return false
	}
	switch node.Type {
	case ObjectType:
		return len(node.Fields) != 0
	case ArrayType:
		return len(node.Values) != 0
	case StringType:
		return node.String != ""
	case NumberType:
		if node.Int64 != nil {
			return *node.Int64 != 0
		}
		if node.Float64 != nil {
			return *node.Float64 != 0.0
		}
		return false
	case AbsentType:
		return false
	default:
		panic("type")
	}
}

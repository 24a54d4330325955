package dice

// faces holds 3x3 pip layouts, indexed by face value.
var faces = [Max + 1][3]string{
	{"   ", " ? ", "   "},
	{"   ", " o ", "   "},
	{"o  ", "   ", "  o"},
	{"o  ", " o ", "  o"},
	{"o o", "   ", "o o"},
	{"o o", " o ", "o o"},
	{"o o", "o o", "o o"},
}

// Face returns the pip art for v. Invalid values render as a question mark.
func Face(v int) [3]string {
	if !ValidFace(v) {
		return faces[0]
	}
	return faces[v]
}

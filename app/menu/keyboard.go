package menu

// Button is one labeled action in the rendered layout. Token is the encoded
// action token the button carries.
type Button struct {
	Label string
	Token string
}

// Layout partitions actions into consecutive rows of at most rowWidth
// buttons, preserving input order. The final row may be shorter. Empty input
// yields an empty layout.
func Layout(actions []Button, rowWidth int) [][]Button {
	if rowWidth < 1 {
		rowWidth = 1
	}
	var rows [][]Button
	for len(actions) > 0 {
		n := rowWidth
		if n > len(actions) {
			n = len(actions)
		}
		rows = append(rows, actions[:n:n])
		actions = actions[n:]
	}
	return rows
}

package menu

import "testing"

func TestLayoutChunking(t *testing.T) {
	actions := []Button{
		{Label: "a"}, {Label: "b"}, {Label: "c"}, {Label: "d"}, {Label: "e"},
	}
	rows := Layout(actions, 2)
	sizes := make([]int, len(rows))
	for i, row := range rows {
		sizes[i] = len(row)
	}
	want := []int{2, 2, 1}
	if len(sizes) != len(want) {
		t.Fatalf("row sizes = %v, want %v", sizes, want)
	}
	for i := range want {
		if sizes[i] != want[i] {
			t.Fatalf("row sizes = %v, want %v", sizes, want)
		}
	}

	// Input order is preserved across rows.
	flat := make([]string, 0, len(actions))
	for _, row := range rows {
		for _, b := range row {
			flat = append(flat, b.Label)
		}
	}
	for i, label := range []string{"a", "b", "c", "d", "e"} {
		if flat[i] != label {
			t.Fatalf("flattened = %v", flat)
		}
	}
}

func TestLayoutEmpty(t *testing.T) {
	if rows := Layout(nil, 2); len(rows) != 0 {
		t.Fatalf("Layout(nil) = %v, want empty", rows)
	}
}

func TestLayoutWidthClamp(t *testing.T) {
	rows := Layout([]Button{{Label: "a"}, {Label: "b"}}, 0)
	if len(rows) != 2 || len(rows[0]) != 1 {
		t.Fatalf("rows = %v, want one button per row", rows)
	}
}

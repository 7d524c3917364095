package markdown

import "testing"

func TestRender(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "Red or green fruit", "Red or green fruit"},
		{"empty", "", ""},
		{"italic star", "a *b* c", "a <em>b</em> c"},
		{"italic underscore", "a _b_ c", "a <em>b</em> c"},
		{"bold star", "**Bold** move", "<strong>Bold</strong> move"},
		{"bold underscore", "__Bold__ move", "<strong>Bold</strong> move"},
		{"bold italic", "***both***", "<strong><em>both</em></strong>"},
		{"bold italic underscore", "___both___", "<strong><em>both</em></strong>"},
		{"several spans", "*a* and *b*", "<em>a</em> and <em>b</em>"},
		{"bold containing italic", "**bold *it* here**", "<strong>bold <em>it</em> here</strong>"},
		{"italic next to bold", "**x***y*", "<strong>x</strong><em>y</em>"},
		{"mixed markers", "*a* __b__", "<em>a</em> <strong>b</strong>"},
		{"lone star", "5 * 3", "5 * 3"},
		{"lone underscore", "snake_case", "snake_case"},
		{"unclosed bold", "**open", "**open"},
		{"empty span is not a span", "** x", "** x"},
		{"trailing marker", "end*", "end*"},
		{"unmatched after match", "*a* b *c", "<em>a</em> b *c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Render(tt.in); got != tt.want {
				t.Errorf("Render(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestRender_Idempotent(t *testing.T) {
	in := "***a*** **b** *c*"
	once := Render(in)
	if twice := Render(once); twice != once {
		t.Errorf("Render(Render(%q)) = %q, want %q", in, twice, once)
	}
}

package helix

import "testing"

func TestCamelCase(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"two words", "background-color", "backgroundColor"},
		{"three words", "border-top-width", "borderTopWidth"},
		{"single word", "color", "color"},
		{"already camel", "backgroundColor", "backgroundColor"},
		{"aria prefix untouched", "aria-label", "aria-label"},
		{"data prefix untouched", "data-testid", "data-testid"},
		{"data with more words", "data-user-id", "data-user-id"},
		{"event handler", "on-click", "onClick"},
		{"empty string", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CamelCase(tt.in); got != tt.want {
				t.Errorf("CamelCase(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestCamelCaseIdempotent(t *testing.T) {
	inputs := []string{"background-color", "aria-label", "onClick", "color"}
	for _, in := range inputs {
		once := CamelCase(in)
		if twice := CamelCase(once); twice != once {
			t.Errorf("CamelCase(CamelCase(%q)) = %q, want %q", in, twice, once)
		}
	}
}

func TestIdentName(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		want    string
		isIdent bool
	}{
		{"keyword", ":class", "class", true},
		{"symbol", "class", "class", true},
		{"string", `"class"`, "class", true},
		{"number is not a name", "3", "", false},
		{"vector is not a name", "[a]", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := MustRead(t, tt.src)
			got, ok := identName(form)
			if ok != tt.isIdent || got != tt.want {
				t.Errorf("identName(%s) = %q, %v; want %q, %v", tt.src, got, ok, tt.want, tt.isIdent)
			}
		})
	}
}

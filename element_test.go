package helix

import (
	"errors"
	"testing"
)

func TestExpandElement(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			name: "native tag with props and child",
			src:  `($ :div {:class "a"} "hi")`,
			want: `(create-element "div" (obj "className" "a") "hi")`,
		},
		{
			name: "string target is native",
			src:  `($ "div" {:class "a"})`,
			want: `(create-element "div" (obj "className" "a"))`,
		},
		{
			name: "composite target keeps keys verbatim",
			src:  `($ my-button {:class "a"} "hi")`,
			want: `(create-element my-button (obj "class" "a") "hi")`,
		},
		{
			name: "no props emits nil placeholder",
			src:  `($ :span child)`,
			want: `(create-element "span" nil child)`,
		},
		{
			name: "non-literal first argument is a child",
			src:  `($ :div (props-for x) "hi")`,
			want: `(create-element "div" nil (props-for x) "hi")`,
		},
		{
			name: "children keep their order",
			src:  `($ :ul a b c)`,
			want: `(create-element "ul" nil a b c)`,
		},
		{
			name: "nested element forms expand",
			src:  `($ :div {:id "o"} ($ :span "in"))`,
			want: `(create-element "div" (obj "id" "o") (create-element "span" nil "in"))`,
		},
		{
			name: "fragment",
			src:  `(<> a b)`,
			want: `(create-element Fragment nil a b)`,
		},
		{
			name: "empty fragment",
			src:  `(<>)`,
			want: `(create-element Fragment nil)`,
		},
		{
			name: "rest marker with children",
			src:  `($ :div {:id "x", :& extra} kid)`,
			want: `(create-element "div" (merge-props (obj "id" "x") extra true) kid)`,
		},
		{
			name: "element nested in ordinary call",
			src:  `(map (fn [x] ($ :li x)) xs)`,
			want: `(map (fn [x] (create-element "li" nil x)) xs)`,
		},
		{
			name: "element inside vector",
			src:  `[($ :li "a") ($ :li "b")]`,
			want: `[(create-element "li" nil "a") (create-element "li" nil "b")]`,
		},
		{
			name: "quoted data untouched",
			src:  `(quote ($ :div "hi"))`,
			want: `(quote ($ :div "hi"))`,
		},
		{
			name: "composite target expands too",
			src:  `($ ($ :x) "hi")`,
			want: `(create-element (create-element "x" nil) nil "hi")`,
		},
		{
			name: "bare dollar list passes through",
			src:  `($)`,
			want: `($)`,
		},
	}

	c := New(Config{})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MustExpand(t, c, tt.src)
			if got.String() != tt.want {
				t.Errorf("expand %s\n got %s\nwant %s", tt.src, got.String(), tt.want)
			}
		})
	}
}

func TestExpandPropagatesErrors(t *testing.T) {
	c := New(Config{})
	_, err := c.Expand(MustRead(t, `($ :div {:& a, :& b})`))
	if !errors.Is(err, ErrDuplicateRest) {
		t.Errorf("err = %v, want ErrDuplicateRest", err)
	}
}

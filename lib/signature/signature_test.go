package signature

import (
	"errors"
	"testing"
)

func TestSerializeDeterministic(t *testing.T) {
	hooks := []string{"use-state", "use-effect", "use-state"}

	a, err := Serialize(hooks)
	if err != nil {
		t.Fatalf("Serialize error: %v", err)
	}
	b, err := Serialize(hooks)
	if err != nil {
		t.Fatalf("Serialize error: %v", err)
	}
	if a != b {
		t.Errorf("Serialize not deterministic: %q vs %q", a, b)
	}
}

func TestSerializeDistinguishes(t *testing.T) {
	tests := []struct {
		name string
		a    []string
		b    []string
	}{
		{"different hooks", []string{"use-state"}, []string{"use-effect"}},
		{"different order", []string{"use-state", "use-effect"}, []string{"use-effect", "use-state"}},
		{"different count", []string{"use-state"}, []string{"use-state", "use-state"}},
		{"empty vs one", nil, []string{"use-state"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sa, err := Serialize(tt.a)
			if err != nil {
				t.Fatalf("Serialize error: %v", err)
			}
			sb, err := Serialize(tt.b)
			if err != nil {
				t.Fatalf("Serialize error: %v", err)
			}
			if sa == sb {
				t.Errorf("Serialize(%v) == Serialize(%v)", tt.a, tt.b)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	hooks := []string{"use-state", "hooks/use-ref"}

	sig, err := Serialize(hooks)
	if err != nil {
		t.Fatalf("Serialize error: %v", err)
	}
	got, err := Deserialize(sig)
	if err != nil {
		t.Fatalf("Deserialize error: %v", err)
	}
	if len(got) != len(hooks) {
		t.Fatalf("round trip length %d, want %d", len(got), len(hooks))
	}
	for i := range hooks {
		if got[i] != hooks[i] {
			t.Errorf("round trip [%d] = %q, want %q", i, got[i], hooks[i])
		}
	}
}

func TestDeserializeInvalid(t *testing.T) {
	tests := []struct {
		name string
		sig  string
	}{
		{"not base64", "!!not-base64!!"},
		{"not msgpack", "aGVsbG8"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Deserialize(tt.sig)
			if !errors.Is(err, ErrInvalidFormat) {
				t.Errorf("Deserialize(%q) = %v, want ErrInvalidFormat", tt.sig, err)
			}
		})
	}
}

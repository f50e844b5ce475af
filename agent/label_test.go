package agent

import "testing"

func TestResolveFieldLabel(t *testing.T) {
	tests := []struct {
		name  string
		attrs map[string]string
		want  string
	}{
		{"name wins", map[string]string{"name": "email", "id": "fld1", "placeholder": "Your email", "type": "text"}, "email"},
		{"id next", map[string]string{"id": "fld1", "placeholder": "Your email", "type": "text"}, "fld1"},
		{"placeholder next", map[string]string{"placeholder": "Your email", "type": "text"}, "Your email"},
		{"type last", map[string]string{"type": "checkbox"}, "checkbox"},
		{"nothing resolvable", map[string]string{}, "unknown"},
		{"empty values skipped", map[string]string{"name": "", "id": "", "type": "tel"}, "tel"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			el := newFakeElement(tc.attrs)
			if got := resolveFieldLabel(el); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

package entity_test

import (
	"testing"

	"github.com/brightpixel/studio-api/internal/entity"
)

func TestSanitizeFilename(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		name string
		in   string
		want string
	}{
		{
			name: "spaces and parens",
			in:   "My Contract (1).pdf",
			want: "My_Contract__1_.pdf",
		},
		{
			name: "already clean",
			in:   "contract-2026_final.pdf",
			want: "contract-2026_final.pdf",
		},
		{
			name: "path separators",
			in:   "../../etc/passwd",
			want: ".._.._etc_passwd",
		},
		{
			name: "empty",
			in:   "",
			want: "",
		},
	} {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := entity.SanitizeFilename(tt.in); got != tt.want {
				t.Errorf("SanitizeFilename(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

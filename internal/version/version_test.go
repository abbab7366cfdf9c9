package version

import (
	"strings"
	"testing"
)

func TestInfoString(t *testing.T) {
	tests := []struct {
		name string
		info Info
		want string
	}{
		{
			name: "development build",
			info: Info{Version: "dev", Commit: "unknown", Date: "unknown", GoVersion: "go1.25.1", Platform: "linux/amd64"},
			want: "chromatic version dev (go1.25.1, linux/amd64)",
		},
		{
			name: "release build",
			info: Info{Version: "1.2.0", Commit: "0123456789abcdef", Date: "2025-01-02T03:04:05Z", GoVersion: "go1.25.1", Platform: "linux/arm64"},
			want: "chromatic version 1.2.0 (commit: 01234567, built: 2025-01-02T03:04:05Z, go1.25.1, linux/arm64)",
		},
		{
			name: "short commit",
			info: Info{Version: "1.2.0", Commit: "abc", Date: "2025-01-02", GoVersion: "go1.25.1", Platform: "darwin/arm64"},
			want: "chromatic version 1.2.0 (commit: abc, built: 2025-01-02, go1.25.1, darwin/arm64)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.info.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestString(t *testing.T) {
	if got := String(); !strings.HasPrefix(got, "chromatic version "+Version) {
		t.Errorf("String() = %q", got)
	}
	if Short() != Version {
		t.Errorf("Short() = %q, want %q", Short(), Version)
	}
}

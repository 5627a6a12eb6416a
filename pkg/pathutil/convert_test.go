package pathutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestToRelative tests absolute-to-relative conversion.
func TestToRelative(t *testing.T) {
	tests := []struct {
		name string
		path string
		root string
		want string
	}{
		{"inside root", "/home/user/project/src/main.py", "/home/user/project", "src/main.py"},
		{"root itself", "/home/user/project", "/home/user/project", "."},
		{"outside root", "/other/location/file.py", "/home/user/project", "/other/location/file.py"},
		{"already relative", "src/main.py", "/home/user/project", "src/main.py"},
		{"empty path", "", "/home/user/project", ""},
		{"empty root", "/home/user/project/a.py", "", "/home/user/project/a.py"},
		{"unclean input", "/home/user/project//src/../src/main.py", "/home/user/project/", "src/main.py"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToRelative(tt.path, tt.root))
		})
	}
}

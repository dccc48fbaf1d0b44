package flagx

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		allowedFlags []string
		want         []string
	}{
		{
			name:         "short flag with separate value",
			args:         []string{"-d", "portal.db", "-x", "1"},
			allowedFlags: []string{"-d", "-o", "-v"},
			want:         []string{"-d", "portal.db"},
		},
		{
			name:         "equals form",
			args:         []string{"-o=faculty-3", "-x", "1"},
			allowedFlags: []string{"-d", "-o", "-v"},
			want:         []string{"-o=faculty-3"},
		},
		{
			name:         "several allowed flags preserve order",
			args:         []string{"-d", "alt.db", "-o", "faculty-2", "-x", "1"},
			allowedFlags: []string{"-d", "-o", "-v"},
			want:         []string{"-d", "alt.db", "-o", "faculty-2"},
		},
		{
			name:         "unknown flags and positionals dropped",
			args:         []string{"-x", "1", "--y=2", "positional"},
			allowedFlags: []string{"-d", "-o", "-v"},
			want:         []string{},
		},
		{
			name:         "boolean flag without value",
			args:         []string{"-v", "-d", "portal.db"},
			allowedFlags: []string{"-v"},
			want:         []string{"-v"},
		},
		{
			name:         "flag followed by another flag keeps no value",
			args:         []string{"-o", "-v"},
			allowedFlags: []string{"-o", "-v"},
			want:         []string{"-o", "-v"},
		},
		{
			name:         "empty input",
			args:         []string{},
			allowedFlags: []string{"-d"},
			want:         []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.allowedFlags))
		})
	}
}

func TestJsonConfigFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	os.Args = []string{"portal", "-c", "conf.json", "-d", "alt.db"}
	assert.Equal(t, "conf.json", JsonConfigFlags())

	os.Args = []string{"portal", "-config=alt.json"}
	assert.Equal(t, "alt.json", JsonConfigFlags())

	os.Args = []string{"portal", "-d", "alt.db"}
	assert.Equal(t, "", JsonConfigFlags())
}

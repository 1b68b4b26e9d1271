package flagx

import (
	"os"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	serverFlags := []string{"-a", "-d", "-s"}

	tests := []struct {
		name    string
		args    []string
		allowed []string
		want    []string
	}{
		{
			name:    "flag with separate value",
			args:    []string{"-a", ":4040", "-x", "noise"},
			allowed: serverFlags,
			want:    []string{"-a", ":4040"},
		},
		{
			name:    "equals form",
			args:    []string{"-d=postgres://localhost/notes", "-x", "noise"},
			allowed: serverFlags,
			want:    []string{"-d=postgres://localhost/notes"},
		},
		{
			name:    "order preserved across multiple allowed flags",
			args:    []string{"-s", "topsecret", "-a", ":4040", "--other", "x"},
			allowed: serverFlags,
			want:    []string{"-s", "topsecret", "-a", ":4040"},
		},
		{
			name:    "unknown flags and positionals dropped",
			args:    []string{"-x", "1", "--y=2", "positional"},
			allowed: serverFlags,
			want:    []string{},
		},
		{
			name:    "trailing flag without value kept bare",
			args:    []string{"-a"},
			allowed: serverFlags,
			want:    []string{"-a"},
		},
		{
			name:    "next dash token is not consumed as a value",
			args:    []string{"-a", "-d", "dsn"},
			allowed: serverFlags,
			want:    []string{"-a", "-d", "dsn"},
		},
		{
			name:    "repeated flag preserved",
			args:    []string{"-a", ":1", "-a", ":2"},
			allowed: serverFlags,
			want:    []string{"-a", ":1", "-a", ":2"},
		},
		{
			name:    "empty input",
			args:    []string{},
			allowed: serverFlags,
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterArgs(tt.args, tt.allowed)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("FilterArgs() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestJsonConfigFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	t.Run("short form", func(t *testing.T) {
		os.Args = []string{"notekeeper", "-c", "/etc/notekeeper.json"}
		assert.Equal(t, "/etc/notekeeper.json", JsonConfigFlags())
	})

	t.Run("long form", func(t *testing.T) {
		os.Args = []string{"notekeeper", "-config", "/etc/alt.json"}
		assert.Equal(t, "/etc/alt.json", JsonConfigFlags())
	})

	t.Run("absent", func(t *testing.T) {
		os.Args = []string{"notekeeper", "-a", ":4040"}
		assert.Empty(t, JsonConfigFlags())
	})

	t.Run("last occurrence wins", func(t *testing.T) {
		os.Args = []string{"notekeeper", "-c", "/one.json", "-config", "/two.json"}
		assert.Equal(t, "/two.json", JsonConfigFlags())
	})
}

package flagx

import (
	"os"
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
			name:    "separate values",
			args:    []string{"-a", ":1163", "-c", "conf.json", "-d", "memory://"},
			allowed: serverFlags,
			want:    []string{"-a", ":1163", "-d", "memory://"},
		},
		{
			name:    "equals form",
			args:    []string{"-d=postgres://u@h/db", "-x=1"},
			allowed: serverFlags,
			want:    []string{"-d=postgres://u@h/db"},
		},
		{
			name:    "equals value may start with a dash",
			args:    []string{"-s=--not-a-flag"},
			allowed: serverFlags,
			want:    []string{"-s=--not-a-flag"},
		},
		{
			name:    "next flag is not taken as a value",
			args:    []string{"-s", "-a", ":8080"},
			allowed: serverFlags,
			want:    []string{"-s", "-a", ":8080"},
		},
		{
			name:    "trailing flag without value",
			args:    []string{"-d"},
			allowed: serverFlags,
			want:    []string{"-d"},
		},
		{
			name:    "positional arguments dropped",
			args:    []string{"serve", "now"},
			allowed: serverFlags,
			want:    []string{},
		},
		{
			name:    "repeats kept in order",
			args:    []string{"-c", "one.json", "-config=two.json"},
			allowed: []string{"-c", "-config"},
			want:    []string{"-c", "one.json", "-config=two.json"},
		},
		{
			name:    "nil args",
			args:    nil,
			allowed: serverFlags,
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.allowed))
		})
	}
}

func TestJsonConfigFlags(t *testing.T) {
	orig := os.Args
	t.Cleanup(func() { os.Args = orig })

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"short", []string{"-c", "/etc/gophauth.json"}, "/etc/gophauth.json"},
		{"long with equals", []string{"-a", ":1163", "-config=/srv/auth.json"}, "/srv/auth.json"},
		{"absent", []string{"-a", ":1163", "-d", "memory://"}, ""},
		{"last wins", []string{"-c", "/a.json", "-config", "/b.json"}, "/b.json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = append([]string{"gophauth"}, tt.args...)
			assert.Equal(t, tt.want, JsonConfigFlags())
		})
	}
}

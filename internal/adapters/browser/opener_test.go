package browser

import (
	"reflect"
	"testing"
)

func TestCommand(t *testing.T) {
	const art = "https://raw.githubusercontent.com/PokeAPI/sprites/master/sprites/pokemon/25.png"

	tests := []struct {
		name     string
		goos     string
		url      string
		wantArgs []string
		wantErr  bool
	}{
		{
			name:     "macOS",
			goos:     "darwin",
			url:      art,
			wantArgs: []string{"open", art},
		},
		{
			name:     "linux",
			goos:     "linux",
			url:      art,
			wantArgs: []string{"xdg-open", art},
		},
		{
			name:     "windows",
			goos:     "windows",
			url:      art,
			wantArgs: []string{"cmd", "/c", "start", "", art},
		},
		{
			name:    "unsupported platform",
			goos:    "plan9",
			url:     art,
			wantErr: true,
		},
		{
			name:    "placeholder sprite",
			goos:    "linux",
			url:     "img/pokeball.png",
			wantErr: true,
		},
		{
			name:    "file scheme",
			goos:    "linux",
			url:     "file:///etc/passwd",
			wantErr: true,
		},
		{
			name:    "no host",
			goos:    "linux",
			url:     "https:///cries/25.ogg",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := &Opener{goos: tt.goos}
			cmd, err := o.Command(tt.url)

			if (err != nil) != tt.wantErr {
				t.Fatalf("Command() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if !reflect.DeepEqual(cmd.Args, tt.wantArgs) {
				t.Errorf("Command() args = %q, want %q", cmd.Args, tt.wantArgs)
			}
		})
	}
}

func TestOpen_RejectsBeforeRunning(t *testing.T) {
	o := NewOpener()
	if err := o.Open("not a url"); err == nil {
		t.Error("expected an error for a relative path")
	}
}

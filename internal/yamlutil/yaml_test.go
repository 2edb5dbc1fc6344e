package yamlutil

// Notes:
// - Decode is driven through strings.Reader; DecodeFile through t.TempDir
// - MaxInputSize is a package variable, so the size test does not run in
//   parallel with the others

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type sample struct {
	Name  string   `yaml:"name"`
	Tags  []string `yaml:"tags"`
	Width int      `yaml:"width"`
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		dst     any
		want    sample
		wantErr error
	}{
		{
			name:  "valid",
			input: "name: deck\ntags: [a, b]\nwidth: 960\n",
			dst:   &sample{},
			want:  sample{Name: "deck", Tags: []string{"a", "b"}, Width: 960},
		},
		{name: "empty", input: "", dst: &sample{}, wantErr: ErrEmptyInput},
		{name: "nil destination", input: "name: x", dst: nil, wantErr: ErrNilDestination},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Decode(strings.NewReader(tt.input), tt.dst)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Decode() error = %v, want %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			got := *tt.dst.(*sample)
			if got.Name != tt.want.Name || got.Width != tt.want.Width || strings.Join(got.Tags, ",") != strings.Join(tt.want.Tags, ",") {
				t.Errorf("Decode() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestDecode_RejectsUnknownFields(t *testing.T) {
	var s sample
	err := Decode(strings.NewReader("name: deck\nwidht: 960\n"), &s)
	if err == nil {
		t.Fatal("Decode() accepted an unknown field")
	}
	if !strings.Contains(Describe(err), "widht") {
		t.Errorf("Describe() = %q, want the unknown key", Describe(err))
	}
}

func TestDecode_SizeLimit(t *testing.T) {
	orig := MaxInputSize
	MaxInputSize = 16
	t.Cleanup(func() { MaxInputSize = orig })

	var s sample
	if err := Decode(strings.NewReader("name: exactly-16"), &s); err != nil {
		t.Errorf("Decode() at the limit error = %v", err)
	}
	if err := Decode(strings.NewReader("name: seventeen-17"), &s); !errors.Is(err, ErrInputTooLarge) {
		t.Errorf("Decode() over the limit error = %v, want ErrInputTooLarge", err)
	}
}

func TestDecodeFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "deck.yaml")
	if err := os.WriteFile(path, []byte("name: from-file\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	var s sample
	if err := DecodeFile(path, &s); err != nil {
		t.Fatalf("DecodeFile() error = %v", err)
	}
	if s.Name != "from-file" {
		t.Errorf("Name = %q, want from-file", s.Name)
	}

	err := DecodeFile(filepath.Join(dir, "missing.yaml"), &s)
	if !errors.Is(err, ErrReadFile) || !errors.Is(err, os.ErrNotExist) {
		t.Errorf("DecodeFile(missing) error = %v, want ErrReadFile wrapping os.ErrNotExist", err)
	}
}

func TestDescribe(t *testing.T) {
	if Describe(nil) != "" {
		t.Error("Describe(nil) should be empty")
	}
	plain := errors.New("plain")
	if got := Describe(plain); !strings.Contains(got, "plain") {
		t.Errorf("Describe(plain) = %q", got)
	}
}

package loader

import (
	"errors"
	"io/fs"
	"reflect"
	"strings"
	"testing"
	"time"
)

// MemFS is an in-memory file system for testing.
type MemFS struct {
	files map[string][]byte
}

func NewMemFS() *MemFS {
	return &MemFS{files: make(map[string][]byte)}
}

func (m *MemFS) AddFile(path string, content string) {
	m.files[path] = []byte(content)
}

func (m *MemFS) ReadFile(path string) ([]byte, error) {
	data, ok := m.files[path]
	if !ok {
		return nil, fs.ErrNotExist
	}
	return data, nil
}

func (m *MemFS) Stat(path string) (fs.FileInfo, error) {
	if _, ok := m.files[path]; ok {
		return &memFileInfo{name: path}, nil
	}
	return nil, fs.ErrNotExist
}

type memFileInfo struct {
	name string
}

func (f *memFileInfo) Name() string       { return f.name }
func (f *memFileInfo) Size() int64        { return 0 }
func (f *memFileInfo) Mode() fs.FileMode  { return 0644 }
func (f *memFileInfo) ModTime() time.Time { return time.Now() }
func (f *memFileInfo) IsDir() bool        { return false }
func (f *memFileInfo) Sys() any           { return nil }

// getByPath retrieves a value from a nested map using a dot-separated path.
func getByPath(data map[string]any, path string) (any, bool) {
	parts := strings.Split(path, ".")
	current := any(data)
	for _, part := range parts {
		m, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		current, ok = m[part]
		if !ok {
			return nil, false
		}
	}
	return current, true
}

func TestForPath(t *testing.T) {
	memfs := NewMemFS()

	tests := []struct {
		path string
		want string
	}{
		{"/c/config.toml", "*loader.TOMLLoader"},
		{"/c/config.yaml", "*loader.YAMLLoader"},
		{"/c/config.YML", "*loader.YAMLLoader"},
		{"/c/config", "*loader.TOMLLoader"},
	}
	for _, tt := range tests {
		got := reflect.TypeOf(ForPath(memfs, tt.path)).String()
		if got != tt.want {
			t.Errorf("ForPath(%q) = %s, want %s", tt.path, got, tt.want)
		}
	}
}

func TestParseError(t *testing.T) {
	inner := errors.New("bad")
	tests := []struct {
		err  *ParseError
		want string
	}{
		{&ParseError{Path: "a.toml", Message: "bad", Err: inner}, "parse error in a.toml: bad"},
		{&ParseError{Path: "a.toml", Line: 3, Message: "bad"}, "parse error in a.toml at line 3: bad"},
		{&ParseError{Path: "a.toml", Line: 3, Column: 7, Message: "bad"}, "parse error in a.toml at line 3, column 7: bad"},
	}
	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
	}
	if !errors.Is(tests[0].err, inner) {
		t.Error("ParseError should unwrap to the underlying error")
	}
}

func TestDeepMerge(t *testing.T) {
	dst := map[string]any{
		"editor": map[string]any{
			"line_numbers":   true,
			"escape_timeout": "25ms",
		},
		"logging": map[string]any{"level": "info"},
	}
	src := map[string]any{
		"editor":  map[string]any{"line_numbers": false},
		"keys":    map[string]any{"save": []any{"Ctrl+W"}},
		"logging": "replaced",
	}

	got := DeepMerge(dst, src)

	if v, _ := getByPath(got, "editor.line_numbers"); v != false {
		t.Errorf("editor.line_numbers = %v, want false", v)
	}
	if v, _ := getByPath(got, "editor.escape_timeout"); v != "25ms" {
		t.Errorf("editor.escape_timeout = %v, want 25ms", v)
	}
	if _, ok := getByPath(got, "keys.save"); !ok {
		t.Error("keys.save should be added")
	}
	if got["logging"] != "replaced" {
		t.Errorf("non-map src value should replace map, got %v", got["logging"])
	}
}

func TestDeepMergeNil(t *testing.T) {
	if got := DeepMerge(nil, nil); got == nil || len(got) != 0 {
		t.Errorf("DeepMerge(nil, nil) = %v, want empty map", got)
	}

	dst := map[string]any{"a": 1}
	if got := DeepMerge(dst, nil); !reflect.DeepEqual(got, dst) {
		t.Errorf("DeepMerge(dst, nil) = %v", got)
	}
}

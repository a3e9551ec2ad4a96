package loader

import (
	"errors"
	"io/fs"
	"testing"
)

// MemFS is an in-memory file system for testing.
type MemFS struct {
	files map[string][]byte
	err   error
}

func NewMemFS() *MemFS {
	return &MemFS{files: make(map[string][]byte)}
}

func (m *MemFS) AddFile(path string, content string) {
	m.files[path] = []byte(content)
}

func (m *MemFS) ReadFile(path string) ([]byte, error) {
	if m.err != nil {
		return nil, m.err
	}
	data, ok := m.files[path]
	if !ok {
		return nil, fs.ErrNotExist
	}
	return data, nil
}

func TestTOMLLoader_Load(t *testing.T) {
	memfs := NewMemFS()
	memfs.AddFile("/config.toml", `
[editor]
tabSize = 8
welcome = "hello"

[ui]
messageTimeout = "2s"
`)

	config, err := NewTOMLLoader(memfs, "/config.toml").Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	editor, ok := config["editor"].(map[string]any)
	if !ok {
		t.Fatal("expected editor to be a map")
	}
	if editor["tabSize"] != int64(8) {
		t.Errorf("tabSize = %v (%T), want 8", editor["tabSize"], editor["tabSize"])
	}
	if editor["welcome"] != "hello" {
		t.Errorf("welcome = %v, want 'hello'", editor["welcome"])
	}

	ui, ok := config["ui"].(map[string]any)
	if !ok {
		t.Fatal("expected ui to be a map")
	}
	if ui["messageTimeout"] != "2s" {
		t.Errorf("messageTimeout = %v, want '2s'", ui["messageTimeout"])
	}
}

func TestTOMLLoader_LoadNonExistent(t *testing.T) {
	config, err := NewTOMLLoader(NewMemFS(), "/nonexistent.toml").Load()
	if err != nil {
		t.Fatalf("expected no error for non-existent file, got: %v", err)
	}
	if config != nil {
		t.Error("expected nil config for non-existent file")
	}
}

func TestTOMLLoader_LoadEmptyPath(t *testing.T) {
	config, err := NewTOMLLoader(NewMemFS(), "").Load()
	if err != nil || config != nil {
		t.Errorf("Load() = %v, %v; want nil, nil", config, err)
	}
}

func TestTOMLLoader_LoadReadError(t *testing.T) {
	memfs := NewMemFS()
	memfs.err = fs.ErrPermission

	_, err := NewTOMLLoader(memfs, "/config.toml").Load()
	if !errors.Is(err, fs.ErrPermission) {
		t.Errorf("expected permission error, got %v", err)
	}
}

func TestTOMLLoader_LoadInvalid(t *testing.T) {
	memfs := NewMemFS()
	memfs.AddFile("/invalid.toml", `
[editor
tabSize = 4
`)

	_, err := NewTOMLLoader(memfs, "/invalid.toml").Load()
	if err == nil {
		t.Fatal("expected parse error")
	}

	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected *ParseError, got %T", err)
	}
	if parseErr.Path != "/invalid.toml" {
		t.Errorf("Path = %q, want '/invalid.toml'", parseErr.Path)
	}
	if parseErr.Line < 1 {
		t.Errorf("Line = %d, want a position", parseErr.Line)
	}
}

func TestParseEmpty(t *testing.T) {
	config, err := Parse("<empty>", nil)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if config == nil || len(config) != 0 {
		t.Errorf("expected empty non-nil map, got %v", config)
	}
}

func TestParseError_Error(t *testing.T) {
	tests := []struct {
		err  *ParseError
		want string
	}{
		{&ParseError{Path: "a.toml", Message: "bad"}, "parse error in a.toml: bad"},
		{&ParseError{Path: "a.toml", Line: 3, Message: "bad"}, "parse error in a.toml at line 3: bad"},
		{&ParseError{Path: "a.toml", Line: 3, Column: 7, Message: "bad"}, "parse error in a.toml at line 3, column 7: bad"},
	}
	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
	}
}

func TestDeepMerge(t *testing.T) {
	dst := map[string]any{
		"editor": map[string]any{"tabSize": 4, "welcome": "hi"},
		"ui":     map[string]any{"helpMessage": "help"},
	}
	src := map[string]any{
		"editor":  map[string]any{"tabSize": int64(2)},
		"logging": map[string]any{"level": "debug"},
	}

	got := DeepMerge(dst, src)

	editor := got["editor"].(map[string]any)
	if editor["tabSize"] != int64(2) {
		t.Errorf("tabSize = %v, want 2", editor["tabSize"])
	}
	if editor["welcome"] != "hi" {
		t.Errorf("welcome = %v, want kept 'hi'", editor["welcome"])
	}
	if got["ui"].(map[string]any)["helpMessage"] != "help" {
		t.Error("untouched section should survive the merge")
	}
	if got["logging"].(map[string]any)["level"] != "debug" {
		t.Error("new section should be added")
	}

	// Sections copied from src must not alias src.
	got["logging"].(map[string]any)["level"] = "warn"
	if src["logging"].(map[string]any)["level"] != "debug" {
		t.Error("merge result aliases src map")
	}
}

func TestDeepMergeNilDst(t *testing.T) {
	got := DeepMerge(nil, map[string]any{"a": 1})
	if got["a"] != 1 {
		t.Errorf("got %v", got)
	}
}

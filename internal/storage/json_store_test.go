package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func newJSONStore(t *testing.T) *JSONStore {
	t.Helper()
	path := filepath.Join(t.TempDir(), "studylit.json")
	s := NewJSONStore(path)
	if err := s.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	return s
}

func TestJSONStore_LoadBeforeInit(t *testing.T) {
	s := NewJSONStore(filepath.Join(t.TempDir(), "missing.json"))
	if err := s.Load(); !errors.Is(err, ErrNotInitialized) {
		t.Fatalf("expected ErrNotInitialized, got %v", err)
	}
	if _, err := s.Get("studyLog"); !errors.Is(err, ErrNotLoaded) {
		t.Errorf("expected ErrNotLoaded, got %v", err)
	}
}

func TestJSONStore_InitTwice(t *testing.T) {
	s := newJSONStore(t)
	again := NewJSONStore(s.GetConfigPath())
	if err := again.Init(); err == nil {
		t.Fatal("expected error initializing an existing store")
	}
}

func TestJSONStore_SetGetPersists(t *testing.T) {
	s := newJSONStore(t)

	if _, err := s.Get("studyLog"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unset key, got %v", err)
	}

	value := []byte(`[{"id":"a","hours":1}]`)
	if err := s.Set("studyLog", value); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	reopened := NewJSONStore(s.GetConfigPath())
	if err := reopened.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	got, err := reopened.Get("studyLog")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if string(got) != string(value) {
		t.Errorf("expected %s, got %s", value, got)
	}
}

func TestJSONStore_ValueStableAcrossReload(t *testing.T) {
	s := newJSONStore(t)

	if err := s.Set("badges", []byte("[\n  {\"id\": \"badge1\", \"dateEarned\": \"\"}\n]")); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	before, err := s.Get("badges")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}

	reopened := NewJSONStore(s.GetConfigPath())
	if err := reopened.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	after, err := reopened.Get("badges")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}

	want := `[{"id":"badge1","dateEarned":""}]`
	if string(before) != want {
		t.Errorf("expected %s before reload, got %s", want, before)
	}
	if string(after) != string(before) {
		t.Errorf("value changed across reload: %s -> %s", before, after)
	}
}

func TestJSONStore_NonJSONValueKeepsDocumentValid(t *testing.T) {
	s := newJSONStore(t)

	if err := s.Set("badges", []byte("not json{")); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	reopened := NewJSONStore(s.GetConfigPath())
	if err := reopened.Load(); err != nil {
		t.Fatalf("document should remain parseable: %v", err)
	}
	got, err := reopened.Get("badges")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if string(got) != `"not json{"` {
		t.Errorf("expected quoted string, got %s", got)
	}
}

func TestJSONStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "studylit.json")
	if err := os.WriteFile(path, []byte("{{{"), 0600); err != nil {
		t.Fatal(err)
	}
	s := NewJSONStore(path)
	if err := s.Load(); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestJSONStore_Keys(t *testing.T) {
	s := newJSONStore(t)
	for _, k := range []string{"studyLog", "badges"} {
		if err := s.Set(k, []byte("[]")); err != nil {
			t.Fatalf("Set %s failed: %v", k, err)
		}
	}
	keys, err := s.Keys()
	if err != nil {
		t.Fatalf("Keys failed: %v", err)
	}
	if len(keys) != 2 || keys[0] != "badges" || keys[1] != "studyLog" {
		t.Errorf("unexpected keys: %v", keys)
	}
}

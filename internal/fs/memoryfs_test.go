package fs

import (
	"io"
	"testing"
)

func TestMemoryFSWriteReadFile(t *testing.T) {
	m := NewMemoryFS()
	if err := m.MkdirAll("a/b", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := m.WriteFile("a/b/f.txt", []byte("hello"), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	data, err := m.ReadFile("a/b/f.txt")
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(data) != "hello" {
		t.Errorf("read %q, want hello", data)
	}

	// returned slice is a copy
	data[0] = 'X'
	again, _ := m.ReadFile("a/b/f.txt")
	if string(again) != "hello" {
		t.Errorf("stored content mutated through the returned slice: %q", again)
	}
}

func TestMemoryFSWriteRequiresDir(t *testing.T) {
	m := NewMemoryFS()
	if err := m.WriteFile("missing/f.txt", []byte("x"), 0o644); err == nil {
		t.Error("expected error writing into a missing directory")
	}
}

func TestMemoryFSOpenSeek(t *testing.T) {
	m := NewMemoryFS()
	if err := m.WriteFile("f.bin", []byte("0123456789"), 0o644); err != nil {
		t.Fatal(err)
	}

	f, err := m.Open("f.bin")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	if _, err := f.Seek(4, io.SeekStart); err != nil {
		t.Fatal(err)
	}
	buf := make([]byte, 3)
	if _, err := io.ReadFull(f, buf); err != nil {
		t.Fatal(err)
	}
	if string(buf) != "456" {
		t.Errorf("read %q after seek, want 456", buf)
	}
}

func TestMemoryFSReadDir(t *testing.T) {
	m := NewMemoryFS()
	if err := m.MkdirAll("root/sub", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := m.WriteFile("root/f.txt", []byte("abc"), 0o644); err != nil {
		t.Fatal(err)
	}

	entries, err := m.ReadDir("root")
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}

	for _, e := range entries {
		switch e.Name() {
		case "sub":
			if !e.IsDir() {
				t.Error("sub should be a directory")
			}
		case "f.txt":
			if e.IsDir() {
				t.Error("f.txt should be a file")
			}
			fi, err := e.Info()
			if err != nil {
				t.Fatal(err)
			}
			if fi.Size() != 3 {
				t.Errorf("f.txt size = %d, want 3", fi.Size())
			}
		default:
			t.Errorf("unexpected entry %q", e.Name())
		}
	}
}

func TestMemoryFSRenameAndRemove(t *testing.T) {
	m := NewMemoryFS()
	if err := m.WriteFile("a.txt", []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := m.Rename("a.txt", "b.txt"); err != nil {
		t.Fatalf("Rename failed: %v", err)
	}
	if m.Exists("a.txt") {
		t.Error("old name still exists after rename")
	}
	if !m.Exists("b.txt") {
		t.Error("new name missing after rename")
	}

	if err := m.Remove("b.txt"); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if m.Exists("b.txt") {
		t.Error("file still exists after remove")
	}
}

func TestMemoryFSCreateTempFileUniqueNames(t *testing.T) {
	m := NewMemoryFS()

	w1, p1, err := m.CreateTempFile(".", ".tmp-*")
	if err != nil {
		t.Fatal(err)
	}
	w2, p2, err := m.CreateTempFile(".", ".tmp-*")
	if err != nil {
		t.Fatal(err)
	}
	if p1 == p2 {
		t.Errorf("temp names collide: %q", p1)
	}

	if _, err := w1.Write([]byte("one")); err != nil {
		t.Fatal(err)
	}
	if err := w1.Close(); err != nil {
		t.Fatal(err)
	}
	w2.Close()

	data, err := m.ReadFile(p1)
	if err != nil {
		t.Fatalf("temp file not visible after close: %v", err)
	}
	if string(data) != "one" {
		t.Errorf("temp content %q, want one", data)
	}
}

func TestMemoryFSNotExistErrors(t *testing.T) {
	m := NewMemoryFS()

	if _, err := m.ReadFile("nope"); !m.IsNotExist(err) {
		t.Errorf("ReadFile error should be not-exist, got %v", err)
	}
	if _, err := m.Stat("nope"); !m.IsNotExist(err) {
		t.Errorf("Stat error should be not-exist, got %v", err)
	}
	if _, err := m.ReadDir("nope"); !m.IsNotExist(err) {
		t.Errorf("ReadDir error should be not-exist, got %v", err)
	}
}

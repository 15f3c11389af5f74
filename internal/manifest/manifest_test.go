package manifest

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func sampleManifest() Manifest {
	return Manifest{
		Title:  "Demos",
		Prefix: "http://example.com/audio/",
		Songs: []Track{
			{Name: "First", Path: "first.mp3"},
			{Name: "Second", Path: "second.mp3"},
			{Name: "Third", Path: "third.mp3"},
		},
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tracks.json")
	m := sampleManifest()

	if err := Save(path, &m); err != nil {
		t.Fatalf("save: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !reflect.DeepEqual(*loaded, m) {
		t.Fatalf("round-trip mismatch: got %+v, want %+v", *loaded, m)
	}
}

func TestSaveIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tracks.json")
	m := sampleManifest()

	if err := Save(path, &m); err != nil {
		t.Fatalf("save: %v", err)
	}
	first, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := Save(path, loaded); err != nil {
		t.Fatalf("save again: %v", err)
	}
	second, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read again: %v", err)
	}

	if !bytes.Equal(first, second) {
		t.Fatalf("reformatting a formatted manifest changed bytes:\n%s\nvs\n%s", first, second)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tracks.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	_, err := Load(path)
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
}

func TestLoadWrongFieldType(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tracks.json")
	if err := os.WriteFile(path, []byte(`{"title": "x", "prefix": "", "songs": 42}`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	_, err := Load(path)
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
}

func TestUpdateAppendsPreservingOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tracks.json")
	m := sampleManifest()
	if err := Save(path, &m); err != nil {
		t.Fatalf("save: %v", err)
	}

	added := Track{Name: "Fourth", Path: "fourth.mp3"}
	err := Update(path, func(current *Manifest) error {
		current.Songs = append(current.Songs, added)
		return nil
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := append(sampleManifest().Songs, added)
	if !reflect.DeepEqual(loaded.Songs, want) {
		t.Fatalf("songs mismatch: got %+v, want %+v", loaded.Songs, want)
	}
}

func TestUpdateMissingManifest(t *testing.T) {
	err := Update(filepath.Join(t.TempDir(), "absent.json"), func(*Manifest) error { return nil })
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDefaultIsEmptySeed(t *testing.T) {
	m := Default()
	if m.Title != "" || m.Prefix != "" {
		t.Fatalf("default should have empty title and prefix: %+v", m)
	}
	if m.Songs == nil || len(m.Songs) != 0 {
		t.Fatalf("default songs should be an empty, non-nil slice: %#v", m.Songs)
	}
}

func TestDefaultSerializesWithEmptySongsArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tracks.json")
	m := Default()
	if err := Save(path, &m); err != nil {
		t.Fatalf("save: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	want := "{\n  \"title\": \"\",\n  \"prefix\": \"\",\n  \"songs\": []\n}\n"
	if string(data) != want {
		t.Fatalf("template bytes mismatch:\n%q\nwant\n%q", data, want)
	}
}

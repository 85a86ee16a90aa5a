package migration

import (
	"testing"
	"testing/fstest"
)

func TestLoad_OrdersByVersion(t *testing.T) {
	src := fstest.MapFS{
		"V10__later.sql": {Data: []byte("SELECT 10;")},
		"V2__second.sql": {Data: []byte("SELECT 2;")},
		"V1__first.sql":  {Data: []byte("SELECT 1;")},
		"README.md":      {Data: []byte("not a migration")},
		"notes.sql.bak":  {Data: []byte("ignored")},
	}

	migs, err := load(src)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(migs) != 3 {
		t.Fatalf("expected 3 migrations, got %d", len(migs))
	}
	for i, want := range []int64{1, 2, 10} {
		if migs[i].Version != want {
			t.Fatalf("position %d: expected version %d, got %d", i, want, migs[i].Version)
		}
	}
	if migs[0].Name != "first" {
		t.Fatalf("unexpected name %q", migs[0].Name)
	}
	if migs[0].Checksum == "" || migs[0].Checksum == migs[1].Checksum {
		t.Fatalf("expected distinct checksums")
	}
}

func TestLoad_DuplicateVersion(t *testing.T) {
	src := fstest.MapFS{
		"V1__a.sql": {Data: []byte("SELECT 1;")},
		"V1__b.sql": {Data: []byte("SELECT 2;")},
	}

	if _, err := load(src); err == nil {
		t.Fatalf("expected duplicate version error")
	}
}

func TestLoad_EmptyFile(t *testing.T) {
	src := fstest.MapFS{
		"V1__empty.sql": {Data: []byte("   ")},
	}

	if _, err := load(src); err == nil {
		t.Fatalf("expected empty migration error")
	}
}

func TestEmbeddedMigrations_Present(t *testing.T) {
	migs, err := load(Runner{}.source())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(migs) == 0 {
		t.Fatalf("expected embedded migrations")
	}
	if migs[0].Version != 1 {
		t.Fatalf("expected V1 first, got %d", migs[0].Version)
	}
}

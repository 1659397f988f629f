package settings

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/quasilyte/gdata/v2"
)

func newTestStore(t *testing.T) *gdata.Manager {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_DATA_HOME", dir)

	store, err := gdata.Open(gdata.Config{AppName: "egglaunch_test"})
	if err != nil {
		t.Fatalf("gdata.Open() failed: %v", err)
	}
	return store
}

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func TestDefaults(t *testing.T) {
	m := New(nil, quietLogger())
	p := m.Get()
	if !p.SoundEnabled || p.SoundVolume != 0.8 || p.Game != "egg" || p.Seed != 0 {
		t.Errorf("Get() = %+v, expected defaults", p)
	}
	if m.Persistent() {
		t.Error("manager without a store should not be persistent")
	}
}

func TestMemoryModeSaveIsNoop(t *testing.T) {
	m := New(nil, quietLogger())
	if err := m.Set("sound", "false"); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	if err := m.Save(); err != nil {
		t.Errorf("Save() in memory mode = %v, expected nil", err)
	}
	if err := m.Load(); err != nil {
		t.Errorf("Load() in memory mode = %v, expected nil", err)
	}
	if !m.Get().SoundEnabled {
		t.Error("Load() in memory mode should restore defaults")
	}
}

func TestSaveAndReload(t *testing.T) {
	store := newTestStore(t)

	m := New(store, quietLogger())
	if err := m.Load(); err != nil {
		t.Fatalf("Load() on empty store failed: %v", err)
	}
	for key, value := range map[string]string{
		"sound":      "false",
		"volume":     "0.25",
		"difficulty": "hard",
		"game":       "egg_random",
		"seed":       "42",
	} {
		if err := m.Set(key, value); err != nil {
			t.Fatalf("Set(%q, %q) failed: %v", key, value, err)
		}
	}
	if err := m.Save(); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	reloaded := New(store, quietLogger())
	if err := reloaded.Load(); err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	expected := Preferences{
		SoundEnabled: false,
		SoundVolume:  0.25,
		Difficulty:   "hard",
		Game:         "egg_random",
		Seed:         42,
	}
	if got := reloaded.Get(); got != expected {
		t.Errorf("reloaded = %+v, expected %+v", got, expected)
	}
}

func TestSetRejectsBadValues(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{"sound", "maybe"},
		{"volume", "1.5"},
		{"volume", "loud"},
		{"difficulty", "nightmare"},
		{"game", "snake"},
		{"seed", "abc"},
		{"colour", "red"},
	}

	m := New(nil, quietLogger())
	before := m.Get()
	for _, tt := range tests {
		if err := m.Set(tt.key, tt.value); err == nil {
			t.Errorf("Set(%q, %q) should fail", tt.key, tt.value)
		}
	}
	if m.Get() != before {
		t.Error("failed Set() calls should not change preferences")
	}
}

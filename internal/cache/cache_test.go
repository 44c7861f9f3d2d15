package cache

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestKey(t *testing.T) {
	a := Key("https://example.com/1")
	b := Key("https://example.com/2")

	if a == b {
		t.Error("Expected distinct keys for distinct URLs")
	}
	if a != Key("https://example.com/1") {
		t.Error("Expected stable keys")
	}
	if !strings.HasPrefix(a, "icewatch:v1:") {
		t.Errorf("Expected versioned prefix, got %q", a)
	}
}

func TestMemory_SetGet(t *testing.T) {
	m := NewMemory(time.Minute)

	if err := m.Set("k", []byte("v"), 0); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	got, ok := m.Get("k")
	if !ok || !bytes.Equal(got, []byte("v")) {
		t.Errorf("Get = %q, %v; want v, true", got, ok)
	}

	if _, ok := m.Get("missing"); ok {
		t.Error("Expected miss for unknown key")
	}

	if err := m.Delete("k"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, ok := m.Get("k"); ok {
		t.Error("Expected miss after delete")
	}
}

func TestDisk_SetGet(t *testing.T) {
	d := NewDisk(t.TempDir(), time.Minute)

	if err := d.Set("k", []byte("page body"), 0); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	got, ok := d.Get("k")
	if !ok || !bytes.Equal(got, []byte("page body")) {
		t.Errorf("Get = %q, %v; want page body, true", got, ok)
	}
}

func TestDisk_Expiry(t *testing.T) {
	d := NewDisk(t.TempDir(), time.Minute)

	if err := d.Set("k", []byte("v"), time.Nanosecond); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	time.Sleep(10 * time.Millisecond)
	if _, ok := d.Get("k"); ok {
		t.Error("Expected expired entry to miss")
	}
}

func TestDisk_SurvivesReopen(t *testing.T) {
	dir := t.TempDir()

	d1 := NewDisk(dir, time.Minute)
	if err := d1.Set("k", []byte("persisted"), 0); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	d2 := NewDisk(dir, time.Minute)
	got, ok := d2.Get("k")
	if !ok || string(got) != "persisted" {
		t.Errorf("Expected entry to survive reopen, got %q, %v", got, ok)
	}
}

func TestLayered_DiskHitPromotes(t *testing.T) {
	dir := t.TempDir()

	// Seed the disk tier directly, then read through a fresh layered
	// cache whose memory tier is cold.
	seed := NewDisk(dir, time.Minute)
	if err := seed.Set("k", []byte("v"), 0); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	l := NewLayered(time.Minute, dir, time.Minute)
	got, ok := l.Get("k")
	if !ok || string(got) != "v" {
		t.Fatalf("Expected disk hit, got %q, %v", got, ok)
	}

	// Remove the disk file; the promoted copy must still serve.
	if err := seed.Delete("k"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, ok := l.Get("k"); !ok {
		t.Error("Expected promoted memory copy to serve after disk delete")
	}
}

func TestLayered_Clear(t *testing.T) {
	l := NewLayered(time.Minute, t.TempDir(), time.Minute)
	if err := l.Set("k", []byte("v"), 0); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := l.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	if _, ok := l.Get("k"); ok {
		t.Error("Expected miss after clear")
	}
}

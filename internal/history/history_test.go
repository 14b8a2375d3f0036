// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package history

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/neuos/neuos-tui/internal/storage"
)

func newTestManager(t *testing.T, capacity int) (*Manager, *storage.KV) {
	t.Helper()
	kv, err := storage.OpenInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { kv.Close() })
	return New(kv, capacity), kv
}

func TestRecordDeduplicatesConsecutive(t *testing.T) {
	m, _ := newTestManager(t, 10)

	m.Record("ls")
	m.Record("ls")
	m.Record("pwd")
	m.Record("ls")

	got := m.Entries()
	want := []string{"ls", "pwd", "ls"}
	require.Equal(t, want, got)
}

func TestRecordIgnoresEmpty(t *testing.T) {
	m, _ := newTestManager(t, 10)

	m.Record("")
	m.Record("   ")
	m.Record("\t")

	require.Equal(t, 0, m.Len())
}

func TestRecordTrims(t *testing.T) {
	m, _ := newTestManager(t, 10)

	m.Record("  echo hello  ")
	require.Equal(t, []string{"echo hello"}, m.Entries())
}

func TestCapacityEvictsOldest(t *testing.T) {
	m, _ := newTestManager(t, 3)

	m.Record("one")
	m.Record("two")
	m.Record("three")
	m.Record("four")

	got := m.Entries()
	require.Equal(t, []string{"two", "three", "four"}, got)
}

func TestNavigateCursor(t *testing.T) {
	m, _ := newTestManager(t, 10)
	m.Record("first")
	m.Record("second")
	m.Record("third")

	// Up from live input walks newest to oldest.
	require.Equal(t, "third", m.Navigate(Older, "draft"))
	require.Equal(t, "second", m.Navigate(Older, "draft"))
	require.Equal(t, "first", m.Navigate(Older, "draft"))
	// Bounded at the oldest entry.
	require.Equal(t, "first", m.Navigate(Older, "draft"))

	// Down walks back toward the live input.
	require.Equal(t, "second", m.Navigate(Newer, "draft"))
	require.Equal(t, "third", m.Navigate(Newer, "draft"))
	require.Equal(t, "draft", m.Navigate(Newer, "draft"))
	// Already live; stays live.
	require.Equal(t, "draft", m.Navigate(Newer, "draft"))
}

func TestNavigateEmptyHistory(t *testing.T) {
	m, _ := newTestManager(t, 10)
	require.Equal(t, "draft", m.Navigate(Older, "draft"))
	require.Equal(t, "draft", m.Navigate(Newer, "draft"))
}

func TestRecordResetsCursor(t *testing.T) {
	m, _ := newTestManager(t, 10)
	m.Record("one")
	m.Record("two")

	require.Equal(t, "two", m.Navigate(Older, ""))
	m.Record("three")

	// After a new command, navigation starts at the newest entry again.
	require.Equal(t, "three", m.Navigate(Older, ""))
}

func TestPersistenceRoundTrip(t *testing.T) {
	kv, err := storage.OpenInMemory()
	require.NoError(t, err)
	defer kv.Close()

	m := New(kv, 10)
	m.Record("ls")
	m.Record("uname -a")

	// A second manager over the same store sees the recorded history.
	m2 := New(kv, 10)
	require.Equal(t, []string{"ls", "uname -a"}, m2.Entries())
}

func TestLoadMalformedPayload(t *testing.T) {
	kv, err := storage.OpenInMemory()
	require.NoError(t, err)
	defer kv.Close()

	require.NoError(t, kv.Set(StorageKey, "{not json"))

	// Malformed persisted state falls back to empty history.
	m := New(kv, 10)
	require.Equal(t, 0, m.Len())
}

func TestLoadTruncatesOverCapacity(t *testing.T) {
	kv, err := storage.OpenInMemory()
	require.NoError(t, err)
	defer kv.Close()

	require.NoError(t, kv.Set(StorageKey, `["a","b","c","d","e"]`))

	m := New(kv, 3)
	require.Equal(t, []string{"c", "d", "e"}, m.Entries())
}

func TestNilStoreIsInMemoryOnly(t *testing.T) {
	m := New(nil, 10)
	m.Record("ls")
	require.Equal(t, []string{"ls"}, m.Entries())
}

func TestClear(t *testing.T) {
	m, kv := newTestManager(t, 10)
	m.Record("ls")
	m.Clear()

	require.Equal(t, 0, m.Len())

	raw, ok, err := kv.Get(StorageKey)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "null", raw)
}

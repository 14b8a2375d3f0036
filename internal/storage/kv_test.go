// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKVRoundTrip(t *testing.T) {
	kv, err := Open(filepath.Join(t.TempDir(), "state.db"))
	require.NoError(t, err)
	defer kv.Close()

	_, ok, err := kv.Get("missing")
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, kv.Set("terminal.history", `["ls","pwd"]`))

	got, ok, err := kv.Get("terminal.history")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, `["ls","pwd"]`, got)
}

func TestKVOverwrite(t *testing.T) {
	kv, err := OpenInMemory()
	require.NoError(t, err)
	defer kv.Close()

	require.NoError(t, kv.Set("k", "one"))
	require.NoError(t, kv.Set("k", "two"))

	got, ok, err := kv.Get("k")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "two", got)
}

func TestKVDelete(t *testing.T) {
	kv, err := OpenInMemory()
	require.NoError(t, err)
	defer kv.Close()

	require.NoError(t, kv.Set("k", "v"))
	require.NoError(t, kv.Delete("k"))
	require.NoError(t, kv.Delete("k")) // absent key is fine

	_, ok, err := kv.Get("k")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestKVReopenPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.db")

	kv, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, kv.Set("k", "v"))
	require.NoError(t, kv.Close())

	kv2, err := Open(path)
	require.NoError(t, err)
	defer kv2.Close()

	got, ok, err := kv2.Get("k")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "v", got)
}

func TestKVClosed(t *testing.T) {
	kv, err := OpenInMemory()
	require.NoError(t, err)
	require.NoError(t, kv.Close())

	err = kv.Set("k", "v")
	require.ErrorIs(t, err, ErrClosed)
}

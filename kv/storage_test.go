package kv

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStorage(t *testing.T) {
	newStorage := func() *Storage {
		return New().
			Add("Host", "localhost").
			Add("Accept", "text/html").
			Add("Via", "proxy-a").
			Add("accept", "application/json")
	}

	t.Run("get", func(t *testing.T) {
		s := newStorage()

		value, found := s.Get("ACCEPT")
		require.True(t, found)
		require.Equal(t, "text/html", value)

		_, found = s.Get("x-missing")
		require.False(t, found)
		require.Equal(t, "fallback", s.ValueOr("x-missing", "fallback"))
		require.Equal(t, "", s.Value("x-missing"))
	})

	t.Run("values order", func(t *testing.T) {
		s := newStorage()
		require.Equal(t,
			[]string{"text/html", "application/json"},
			slices.Collect(s.Values("Accept")),
		)
		require.Nil(t, slices.Collect(s.Values("x-missing")))
	})

	t.Run("set replaces all occurrences", func(t *testing.T) {
		s := newStorage().Set("ACCEPT", "text/plain")

		want := []Pair{
			{"Host", "localhost"},
			{"ACCEPT", "text/plain"},
			{"Via", "proxy-a"},
		}
		require.Equal(t, want, s.Expose())
	})

	t.Run("set new key appends", func(t *testing.T) {
		s := New().
			Add("Host", "localhost").
			Set("Via", "proxy-a")

		want := []Pair{
			{"Host", "localhost"},
			{"Via", "proxy-a"},
		}
		require.Equal(t, want, s.Expose())
	})

	t.Run("delete", func(t *testing.T) {
		s := newStorage().Delete("ACCEPT")

		require.Equal(t, 2, s.Len())
		require.False(t, s.Has("accept"))
		require.True(t, s.Has("host"))

		// absent key is a no-op
		require.Equal(t, 2, s.Delete("x-missing").Len())
	})

	t.Run("keys are unique", func(t *testing.T) {
		s := newStorage()
		require.Equal(t, []string{"Host", "Accept", "Via"}, slices.Collect(s.Keys()))
	})

	t.Run("pairs", func(t *testing.T) {
		s := New().Add("Host", "localhost").Add("Via", "proxy-a")

		var got []Pair
		for key, value := range s.Pairs() {
			got = append(got, Pair{key, value})
		}

		require.Equal(t, s.Expose(), got)
	})

	t.Run("clear", func(t *testing.T) {
		s := newStorage()
		require.False(t, s.Empty())
		require.True(t, s.Clear().Empty())
		require.Nil(t, slices.Collect(s.Values("Host")))
	})

	t.Run("clone is deep", func(t *testing.T) {
		s := newStorage()
		clone := s.Clone()
		s.Set("Host", "example.com").Delete("Via")

		require.Equal(t, "localhost", clone.Value("host"))
		require.True(t, clone.Has("via"))
	})

	t.Run("from map", func(t *testing.T) {
		s := NewFromMap(map[string][]string{
			"Accept": {"text/html", "application/json"},
			"Host":   {"localhost"},
		})

		require.Equal(t, 3, s.Len())
		require.Equal(t,
			[]string{"text/html", "application/json"},
			slices.Collect(s.Values("accept")),
		)
		require.Equal(t, "localhost", s.Value("Host"))
	})
}

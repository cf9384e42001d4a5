package carousel_test

import (
	"fmt"
	"slices"
	"testing"

	"github.com/davidvella/orbit/carousel"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCarousel(keys ...string) *carousel.Carousel[string, int] {
	c := carousel.New[string, int]()
	for i, k := range keys {
		c.Add(k, i)
	}
	return c
}

func TestCarousel_Rotation(t *testing.T) {
	c := carousel.New[string, string]()
	c.Add("A", "a")
	c.Add("B", "b")
	c.Add("C", "c")

	key, ok := c.CurrentKey()
	require.True(t, ok)
	assert.Equal(t, "A", key)

	v, ok := c.Next()
	require.True(t, ok)
	assert.Equal(t, "b", v)
	key, _ = c.CurrentKey()
	assert.Equal(t, "B", key)
	assert.Equal(t, []string{"B", "C", "A"}, c.Preview(3))

	c.Previous()
	v, ok = c.Previous()
	require.True(t, ok)
	assert.Equal(t, "c", v)
	key, _ = c.CurrentKey()
	assert.Equal(t, "C", key)

	// Going forward once more wraps around to A.
	v, _ = c.Next()
	assert.Equal(t, "a", v)
	assert.Equal(t, []string{"A", "B", "C"}, c.Preview(3))
}

func TestCarousel_Add(t *testing.T) {
	tests := []struct {
		name        string
		adds        []string
		wantOrder   []string
		wantCurrent string
	}{
		{
			name:        "first key becomes current",
			adds:        []string{"a"},
			wantOrder:   []string{"a"},
			wantCurrent: "a",
		},
		{
			name:        "new keys go to the back",
			adds:        []string{"a", "b", "c"},
			wantOrder:   []string{"a", "b", "c"},
			wantCurrent: "a",
		},
		{
			name:        "existing keys keep their place",
			adds:        []string{"a", "b", "a", "c", "b"},
			wantOrder:   []string{"a", "b", "c"},
			wantCurrent: "a",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newCarousel(tt.adds...)
			assert.Equal(t, tt.wantOrder, c.Preview(len(tt.adds)))
			assert.Equal(t, len(tt.wantOrder), c.Len())
			key, ok := c.CurrentKey()
			require.True(t, ok)
			assert.Equal(t, tt.wantCurrent, key)
		})
	}
}

func TestCarousel_AddOverwrites(t *testing.T) {
	c := carousel.New[string, int]()
	assert.Equal(t, 1, c.Add("A", 1))
	assert.Equal(t, 2, c.Add("A", 2))

	v, ok := c.Get("A")
	require.True(t, ok)
	assert.Equal(t, 2, v)
	assert.Equal(t, 1, c.Len())
}

func TestCarousel_AddAfterRotation(t *testing.T) {
	c := newCarousel("a", "b", "c")
	c.Next()
	c.Add("d", 3)

	key, _ := c.CurrentKey()
	assert.Equal(t, "b", key)
	assert.Equal(t, []string{"b", "c", "a", "d"}, c.Preview(4))
}

func TestCarousel_DeleteKey(t *testing.T) {
	tests := []struct {
		name        string
		keys        []string
		del         string
		wantValue   int
		wantOK      bool
		wantOrder   []string
		wantCurrent string
	}{
		{
			name:        "current key",
			keys:        []string{"a", "b", "c"},
			del:         "a",
			wantValue:   0,
			wantOK:      true,
			wantOrder:   []string{"b", "c"},
			wantCurrent: "b",
		},
		{
			name:        "middle key",
			keys:        []string{"a", "b", "c"},
			del:         "b",
			wantValue:   1,
			wantOK:      true,
			wantOrder:   []string{"a", "c"},
			wantCurrent: "a",
		},
		{
			name:        "last key",
			keys:        []string{"a", "b", "c"},
			del:         "c",
			wantValue:   2,
			wantOK:      true,
			wantOrder:   []string{"a", "b"},
			wantCurrent: "a",
		},
		{
			name:        "absent key",
			keys:        []string{"a", "b"},
			del:         "z",
			wantOK:      false,
			wantOrder:   []string{"a", "b"},
			wantCurrent: "a",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newCarousel(tt.keys...)
			v, ok := c.DeleteKey(tt.del)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantValue, v)
			assert.Equal(t, tt.wantOrder, c.Preview(len(tt.keys)))
			assert.False(t, c.Contains(tt.del))

			key, ok := c.CurrentKey()
			require.True(t, ok)
			assert.Equal(t, tt.wantCurrent, key)
		})
	}
}

func TestCarousel_DeleteCurrent(t *testing.T) {
	c := newCarousel("a", "b")
	c.Next()

	v, ok := c.DeleteCurrent()
	require.True(t, ok)
	assert.Equal(t, 1, v)
	key, _ := c.CurrentKey()
	assert.Equal(t, "a", key)

	v, ok = c.DeleteCurrent()
	require.True(t, ok)
	assert.Equal(t, 0, v)

	_, ok = c.CurrentKey()
	assert.False(t, ok)
	_, ok = c.DeleteCurrent()
	assert.False(t, ok)
}

func TestCarousel_Empty(t *testing.T) {
	c := carousel.New[string, int]()

	_, ok := c.Next()
	assert.False(t, ok)
	_, ok = c.Previous()
	assert.False(t, ok)
	_, ok = c.Current()
	assert.False(t, ok)
	_, ok = c.CurrentKey()
	assert.False(t, ok)
	_, ok = c.Peek()
	assert.False(t, ok)
	_, ok = c.Last()
	assert.False(t, ok)
	_, ok = c.SeekTo("a")
	assert.False(t, ok)
	_, ok = c.DeleteKey("a")
	assert.False(t, ok)
	assert.Empty(t, c.Preview(3))
	assert.Empty(t, c.Preview(-3))
	assert.Zero(t, c.Len())
}

func TestCarousel_PeekLast(t *testing.T) {
	c := newCarousel("a")
	peek, _ := c.Peek()
	last, _ := c.Last()
	assert.Equal(t, "a", peek)
	assert.Equal(t, "a", last)

	c.Add("b", 1)
	c.Add("c", 2)
	peek, _ = c.Peek()
	last, _ = c.Last()
	assert.Equal(t, "b", peek)
	assert.Equal(t, "c", last)
}

func TestCarousel_SeekTo(t *testing.T) {
	tests := []struct {
		name      string
		keys      []string
		seek      string
		wantValue int
		wantOrder []string
	}{
		{
			name:      "current key",
			keys:      []string{"a", "b", "c"},
			seek:      "a",
			wantValue: 0,
			wantOrder: []string{"a", "b", "c"},
		},
		{
			name:      "front half rotates forward",
			keys:      []string{"a", "b", "c", "d", "e"},
			seek:      "b",
			wantValue: 1,
			wantOrder: []string{"b", "c", "d", "e", "a"},
		},
		{
			name:      "back half rotates backward",
			keys:      []string{"a", "b", "c", "d", "e"},
			seek:      "d",
			wantValue: 3,
			wantOrder: []string{"d", "e", "a", "b", "c"},
		},
		{
			name:      "absent key leaves the carousel alone",
			keys:      []string{"a", "b", "c"},
			seek:      "z",
			wantValue: 0,
			wantOrder: []string{"a", "b", "c"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newCarousel(tt.keys...)
			v, ok := c.SeekTo(tt.seek)
			require.True(t, ok)
			assert.Equal(t, tt.wantValue, v)
			assert.Equal(t, tt.wantOrder, c.Preview(len(tt.keys)))
		})
	}
}

func TestCarousel_Preview(t *testing.T) {
	c := newCarousel("a", "b", "c", "d")
	c.Next()

	tests := []struct {
		amount int
		want   []string
	}{
		{amount: 0, want: []string{}},
		{amount: 1, want: []string{"b"}},
		{amount: 3, want: []string{"b", "c", "d"}},
		{amount: 4, want: []string{"b", "c", "d", "a"}},
		{amount: 9, want: []string{"b", "c", "d", "a"}},
		{amount: -1, want: []string{"a"}},
		{amount: -3, want: []string{"c", "d", "a"}},
		{amount: -9, want: []string{"b", "c", "d", "a"}},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("amount=%d", tt.amount), func(t *testing.T) {
			assert.Equal(t, tt.want, c.Preview(tt.amount))
		})
	}

	key, _ := c.CurrentKey()
	assert.Equal(t, "b", key, "preview must not rotate")
}

func TestCarousel_Reset(t *testing.T) {
	c := newCarousel("a", "b", "c")
	c.Next()
	c.Reset()

	assert.Zero(t, c.Len())
	assert.False(t, c.Contains("a"))
	_, ok := c.CurrentKey()
	assert.False(t, ok)

	c.Add("x", 7)
	v, ok := c.Current()
	require.True(t, ok)
	assert.Equal(t, 7, v)
}

func TestCarousel_Iterators(t *testing.T) {
	c := newCarousel("a", "b", "c")
	c.Previous()

	assert.Equal(t, []string{"c", "a", "b"}, slices.Collect(c.Keys()))

	var values []int
	for k, v := range c.All() {
		if k == "b" {
			break
		}
		values = append(values, v)
	}
	assert.Equal(t, []int{2, 0}, values)
}

func TestCarousel_WithLogger(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	c := carousel.New[string, int](carousel.WithLogger(logger), carousel.WithCapacity(4))
	c.Add("a", 1)
	c.Add("b", 2)
	c.Add("c", 3)
	c.Add("d", 4)
	c.SeekTo("d")

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "seek", entry.Message)
	assert.Equal(t, "previous", entry.Data["direction"])
	assert.Equal(t, 1, entry.Data["steps"])
	assert.Equal(t, "carousel", entry.Data["component"])

	c.Add("a", 10)
	assert.Equal(t, "overwriting value", hook.LastEntry().Message)
}

func BenchmarkCarousel(b *testing.B) {
	b.ReportAllocs()
	sizes := []int{100, 1000, 10000}

	for _, size := range sizes {
		c := carousel.New[int, int](carousel.WithCapacity(size))
		for i := 0; i < size; i++ {
			c.Add(i, i)
		}

		b.Run(fmt.Sprintf("Next_%d", size), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				c.Next()
			}
		})

		b.Run(fmt.Sprintf("Previous_%d", size), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				c.Previous()
			}
		})

		b.Run(fmt.Sprintf("SeekTo_%d", size), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				c.SeekTo(i % size)
			}
		})
	}
}

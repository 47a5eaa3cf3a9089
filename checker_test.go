package postaddr

import (
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckerDefaults(t *testing.T) {
	cfg := NewChecker().Config()
	assert.Equal(t, 4096, cfg.CacheSize)
	assert.Equal(t, 10*time.Minute, cfg.CacheTTL)
	assert.Equal(t, 4096, cfg.MaxInputLen)

	cfg = NewChecker(WithCacheSize(8), WithCacheTTL(time.Second), WithMaxInputLen(100)).Config()
	assert.Equal(t, CheckerConfig{CacheSize: 8, CacheTTL: time.Second, MaxInputLen: 100}, cfg)

	assert.Same(t, DefaultChecker(), DefaultChecker())
}

func TestCheckerCheck(t *testing.T) {
	c := NewChecker()
	e := examples[0]

	res, err := c.Check(e.text)
	require.NoError(t, err)
	assert.Equal(t, e.canonical, res.Canonical)
	assert.Equal(t, e.wantDisplay(), res.Display)
	assert.Equal(t, "US", res.Country)

	again, err := c.Check(e.text)
	require.NoError(t, err)
	assert.Equal(t, res, again)

	hits, misses := c.Stats()
	assert.Equal(t, uint64(1), hits)
	assert.Equal(t, uint64(1), misses)
	assert.Equal(t, 1, c.Len())

	c.Purge()
	assert.Equal(t, 0, c.Len())
}

func TestCheckerCachesFailures(t *testing.T) {
	c := NewChecker()
	text := "US2Jo\n\n1 Main St\n\nNew York\n99999\nNY"

	_, err := c.Check(text)
	require.Error(t, err)
	_, err2 := c.Check(text)
	require.Error(t, err2)
	assert.Equal(t, err, err2)

	var ie *InvalidAddressError
	require.True(t, errors.As(err, &ie))
	assert.Equal(t, text, ie.Text)
	assert.Equal(t, KindField, ErrorKind(err))

	hits, misses := c.Stats()
	assert.Equal(t, uint64(1), hits)
	assert.Equal(t, uint64(1), misses)
}

func TestCheckerWithoutCache(t *testing.T) {
	c := NewChecker(WithCacheSize(0))
	for i := 0; i < 3; i++ {
		_, err := c.Check(examples[2].text)
		require.NoError(t, err)
	}
	hits, misses := c.Stats()
	assert.Zero(t, hits)
	assert.Equal(t, uint64(3), misses)
	assert.Zero(t, c.Len())
	c.Purge()
}

func TestCheckerEmpty(t *testing.T) {
	c := NewChecker()

	_, err := c.Check("  \n ")
	assert.ErrorIs(t, err, ErrEmptyAddress)

	res, err := c.CheckOptional("")
	require.NoError(t, err)
	assert.Equal(t, Result{}, res)

	hits, misses := c.Stats()
	assert.Zero(t, hits+misses)

	res, err = c.CheckOptional(examples[4].text)
	require.NoError(t, err)
	assert.Equal(t, examples[4].canonical, res.Canonical)
}

func TestCheckerMaxInputLen(t *testing.T) {
	c := NewChecker(WithMaxInputLen(64))
	long := "US2" + strings.Repeat("x", 100) + "\n\n1 Main St\n\nNew York\n10001\nNY"

	_, err := c.Check(long)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedAddress)
	assert.Equal(t, KindMalformed, ErrorKind(err))

	var ie *InvalidAddressError
	require.True(t, errors.As(err, &ie))
	assert.Len(t, ie.Text, 64)

	// oversized text never reaches the cache
	huge := "US2" + strings.Repeat("x", 1<<20)
	_, err = c.Check(huge)
	assert.ErrorIs(t, err, ErrMalformedAddress)
	_, err = c.CheckOptional(huge)
	assert.ErrorIs(t, err, ErrMalformedAddress)
	assert.Zero(t, c.Len())
	hits, misses := c.Stats()
	assert.Zero(t, hits+misses)

	_, err = NewChecker(WithMaxInputLen(0)).Check(long)
	assert.NoError(t, err)
}

func TestCheckerConcurrent(t *testing.T) {
	c := NewChecker(WithCacheSize(4))
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			e := examples[i%len(examples)]
			res, err := c.Check(e.text)
			if assert.NoError(t, err) {
				assert.Equal(t, e.canonical, res.Canonical)
			}
		}(i)
	}
	wg.Wait()

	hits, misses := c.Stats()
	assert.Equal(t, uint64(16), hits+misses)
	assert.LessOrEqual(t, c.Len(), 4)
}

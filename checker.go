package postaddr

import (
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// CheckerConfig contains the options of a Checker.
type CheckerConfig struct {
	CacheSize   int           // Cached results kept (0 disables the cache)
	CacheTTL    time.Duration // Lifetime of a cached result
	MaxInputLen int           // Longest text accepted, in bytes
}

// Option is a functional option for configuring a Checker.
type Option func(*CheckerConfig)

// WithCacheSize sets how many results are cached.
func WithCacheSize(n int) Option {
	return func(c *CheckerConfig) {
		c.CacheSize = n
	}
}

// WithCacheTTL sets how long a cached result is reused.
func WithCacheTTL(ttl time.Duration) Option {
	return func(c *CheckerConfig) {
		c.CacheTTL = ttl
	}
}

// WithMaxInputLen limits the size of the text a Checker will parse.
func WithMaxInputLen(n int) Option {
	return func(c *CheckerConfig) {
		c.MaxInputLen = n
	}
}

func defaultCheckerConfig() *CheckerConfig {
	return &CheckerConfig{
		CacheSize:   4096,
		CacheTTL:    10 * time.Minute,
		MaxInputLen: 4096,
	}
}

// Result is the outcome of a successful check.
type Result struct {
	Canonical string `json:"canonical"`
	Display   string `json:"display"`
	Country   string `json:"country"`
}

type cachedResult struct {
	res Result
	err error
}

// Checker validates address text and caches the outcome, failures
// included, by input text. Text longer than MaxInputLen is rejected without
// touching the cache, and the error keeps only its first MaxInputLen bytes.
// Safe for concurrent use.
type Checker struct {
	config *CheckerConfig
	cache  *expirable.LRU[string, cachedResult]

	hits   atomic.Uint64
	misses atomic.Uint64
}

// NewChecker returns a Checker configured by opts.
//
//	c := NewChecker(WithCacheSize(10000), WithCacheTTL(time.Hour))
//	res, err := c.Check(text)
func NewChecker(opts ...Option) *Checker {
	cfg := defaultCheckerConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	c := &Checker{config: cfg}
	if cfg.CacheSize > 0 {
		c.cache = expirable.NewLRU[string, cachedResult](cfg.CacheSize, nil, cfg.CacheTTL)
	}
	return c
}

var (
	defaultChecker     *Checker
	defaultCheckerOnce sync.Once
)

// DefaultChecker returns a shared Checker with the default configuration.
func DefaultChecker() *Checker {
	defaultCheckerOnce.Do(func() {
		defaultChecker = NewChecker()
	})
	return defaultChecker
}

// Config returns a copy of the checker's configuration.
func (c *Checker) Config() CheckerConfig { return *c.config }

// Check is the cached form of the package-level Check, also returning the
// display form and the country.
func (c *Checker) Check(text string) (Result, error) {
	return c.check(text, false)
}

// CheckOptional is like Check but accepts blank text with an empty Result.
func (c *Checker) CheckOptional(text string) (Result, error) {
	return c.check(text, true)
}

func (c *Checker) check(text string, allowEmpty bool) (Result, error) {
	if strings.TrimSpace(text) == "" {
		if allowEmpty {
			return Result{}, nil
		}
		return Result{}, ErrEmptyAddress
	}
	if limit := c.config.MaxInputLen; limit > 0 && len(text) > limit {
		return Result{}, &InvalidAddressError{
			Text: strings.Clone(text[:limit]),
			Err:  fmt.Errorf("%w: longer than %d bytes", ErrMalformedAddress, limit),
		}
	}
	if c.cache == nil {
		c.misses.Add(1)
		return c.evaluate(text)
	}
	if r, ok := c.cache.Get(text); ok {
		c.hits.Add(1)
		return r.res, r.err
	}
	c.misses.Add(1)
	res, err := c.evaluate(text)
	c.cache.Add(text, cachedResult{res: res, err: err})
	return res, err
}

func (c *Checker) evaluate(text string) (Result, error) {
	a, err := Parse(text)
	if err == nil {
		err = a.Validate()
	}
	if err != nil {
		return Result{}, &InvalidAddressError{Text: text, Err: err}
	}
	enc, _ := a.Encode()
	return Result{
		Canonical: enc,
		Display:   a.String(),
		Country:   a.Country().ShortName(),
	}, nil
}

// Stats returns the number of cache hits and misses so far.
func (c *Checker) Stats() (hits, misses uint64) {
	return c.hits.Load(), c.misses.Load()
}

// Len returns the number of cached results.
func (c *Checker) Len() int {
	if c.cache == nil {
		return 0
	}
	return c.cache.Len()
}

// Purge drops every cached result.
func (c *Checker) Purge() {
	if c.cache != nil {
		c.cache.Purge()
	}
}

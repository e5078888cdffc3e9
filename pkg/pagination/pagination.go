package pagination

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-playground/validator/v10"
)

const (
	DefaultPageSize = 20
	MinPageSize     = 1
	MaxPageSize     = 100
	DefaultWindow   = 5
)

var ErrInvalidConfig = errors.New("invalid pagination config")

// Config holds the bounds used when repairing pagination input
type Config struct {
	DefaultPageSize int `json:"defaultPageSize" yaml:"defaultPageSize" mapstructure:"defaultPageSize" validate:"gtefield=MinPageSize,ltefield=MaxPageSize"`
	MinPageSize     int `json:"minPageSize" yaml:"minPageSize" mapstructure:"minPageSize" validate:"gte=1"`
	MaxPageSize     int `json:"maxPageSize" yaml:"maxPageSize" mapstructure:"maxPageSize" validate:"gtefield=MinPageSize"`
	WindowSize      int `json:"windowSize" yaml:"windowSize" mapstructure:"windowSize" validate:"gte=1"`
}

func DefaultConfig() Config {
	return Config{
		DefaultPageSize: DefaultPageSize,
		MinPageSize:     MinPageSize,
		MaxPageSize:     MaxPageSize,
		WindowSize:      DefaultWindow,
	}
}

// Paginator normalizes raw pagination input against a fixed Config.
// It holds no mutable state and is safe for concurrent use.
type Paginator struct {
	cfg Config
}

// New validates cfg and returns a Paginator using it
func New(cfg Config) (*Paginator, error) {
	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return &Paginator{cfg: cfg}, nil
}

// Default returns a Paginator using DefaultConfig
func Default() *Paginator {
	return &Paginator{cfg: DefaultConfig()}
}

func (p *Paginator) Config() Config {
	return p.cfg
}

// PageParams is page based pagination intent. Page is 1-indexed.
type PageParams struct {
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalCount int `json:"totalCount"`
}

// Raw lifts normalized params back into RawParams
func (pp PageParams) Raw() RawParams {
	return NewRawParams(float64(pp.Page), float64(pp.PageSize), float64(pp.TotalCount))
}

// Normalize repairs raw into PageParams. Missing, null and non-finite values
// fall back to defaults, everything else is floored and clamped. It never fails.
func (p *Paginator) Normalize(raw RawParams) PageParams {
	pageSize := p.cfg.DefaultPageSize
	if v, ok := finite(raw.PageSize); ok {
		pageSize = clampInt(toInt(math.Floor(v)), p.cfg.MinPageSize, p.cfg.MaxPageSize)
	}

	page := 1
	if v, ok := finite(raw.Page); ok {
		page = clampInt(toInt(math.Floor(v)), 1, maxPage(pageSize))
	}

	totalCount := 0
	if v, ok := finite(raw.TotalCount); ok {
		totalCount = max(0, toInt(math.Floor(v)))
	}

	return PageParams{
		Page:       page,
		PageSize:   pageSize,
		TotalCount: totalCount,
	}
}

// Meta derives pagination metadata for already normalized params
func (p *Paginator) Meta(pp PageParams) Meta {
	return Calculate(pp.TotalCount, pp.Page, pp.PageSize)
}

// Window returns the page number window using the configured window size
func (p *Paginator) Window(currentPage, totalPages int) []int {
	return Window(currentPage, totalPages, p.cfg.WindowSize)
}

// maxPage is the largest page whose offset still fits in an int
func maxPage(pageSize int) int {
	if pageSize <= 1 {
		return math.MaxInt
	}
	return math.MaxInt/pageSize + 1
}

// toInt saturates out of range floats instead of wrapping
func toInt(f float64) int {
	switch {
	case f >= math.MaxInt:
		return math.MaxInt
	case f <= math.MinInt:
		return math.MinInt
	}
	return int(f)
}

func clampInt(v, lo, hi int) int {
	return min(max(v, lo), hi)
}

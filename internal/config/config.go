// Package config loads and validates widget settings for pageturn.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// SizeFixed renders the book at exactly Width x Height.
const SizeFixed = "fixed"

// SizeStretch lets the book scale between the min and max bounds.
const SizeStretch = "stretch"

const (
	defaultListenAddr    = "0.0.0.0:8688"
	defaultDataDir       = "./data"
	defaultWidth         = 840
	defaultHeight        = 600
	defaultMinDimension  = 100
	defaultMaxDimension  = 2000
	defaultFlippingTime  = 1000
	defaultSwipeDistance = 30
	defaultPageCount     = 10
)

// Settings is the immutable configuration consumed by the gesture machine
// and the flip engine. Produced once by Load or Normalize and never mutated
// afterwards.
type Settings struct {
	Size      string
	Width     float64
	Height    float64
	MinWidth  float64
	MaxWidth  float64
	MinHeight float64
	MaxHeight float64

	// FlippingTime is the flip animation duration in milliseconds.
	FlippingTime int
	// SwipeDistance is the minimum horizontal travel of a swipe, in px.
	SwipeDistance float64

	SinglePage          bool
	MobileScrollSupport bool
	ClickEventForward   bool
	UseMouseEvents      bool

	PageCount  int
	ListenAddr string
	DataDir    string
}

// Defaults returns the documented default settings.
func Defaults() Settings {
	return Settings{
		Size:                SizeFixed,
		Width:               defaultWidth,
		Height:              defaultHeight,
		FlippingTime:        defaultFlippingTime,
		SwipeDistance:       defaultSwipeDistance,
		MobileScrollSupport: true,
		ClickEventForward:   true,
		UseMouseEvents:      true,
		PageCount:           defaultPageCount,
		ListenAddr:          defaultListenAddr,
		DataDir:             defaultDataDir,
	}
}

// fileSettings mirrors Settings with optional fields so a partial YAML file
// overlays onto defaults without clobbering them.
type fileSettings struct {
	Size          *string  `yaml:"size"`
	Width         *float64 `yaml:"width"`
	Height        *float64 `yaml:"height"`
	MinWidth      *float64 `yaml:"minWidth"`
	MaxWidth      *float64 `yaml:"maxWidth"`
	MinHeight     *float64 `yaml:"minHeight"`
	MaxHeight     *float64 `yaml:"maxHeight"`
	FlippingTime  *int     `yaml:"flippingTime"`
	SwipeDistance *float64 `yaml:"swipeDistance"`
	SinglePage    *bool    `yaml:"singlePage"`
	MobileScroll  *bool    `yaml:"mobileScrollSupport"`
	ClickForward  *bool    `yaml:"clickEventForward"`
	UseMouse      *bool    `yaml:"useMouseEvents"`
	PageCount     *int     `yaml:"pageCount"`
	ListenAddr    *string  `yaml:"listenAddr"`
	DataDir       *string  `yaml:"dataDir"`
}

// Load builds settings from defaults, an optional YAML file, and environment
// overrides, then validates them. A missing file is not an error.
func Load(path string) (Settings, error) {
	cfg := Defaults()

	if path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return Settings{}, err
		}
	}

	cfg.ListenAddr = envString("PAGETURN_LISTEN_ADDR", cfg.ListenAddr)
	cfg.DataDir = envString("PAGETURN_DATA_DIR", cfg.DataDir)
	cfg.Size = envString("PAGETURN_SIZE", cfg.Size)

	pages, err := envInt("PAGETURN_PAGE_COUNT", cfg.PageCount)
	if err != nil {
		return Settings{}, err
	}
	cfg.PageCount = pages

	swipe, err := envFloat("PAGETURN_SWIPE_DISTANCE", cfg.SwipeDistance)
	if err != nil {
		return Settings{}, err
	}
	cfg.SwipeDistance = swipe

	cfg.SinglePage = envBool("PAGETURN_SINGLE_PAGE", cfg.SinglePage)
	cfg.UseMouseEvents = envBool("PAGETURN_USE_MOUSE_EVENTS", cfg.UseMouseEvents)

	return Normalize(cfg)
}

// Normalize validates settings and fills derived defaults. Invalid input
// fails with a descriptive error rather than being coerced.
func Normalize(cfg Settings) (Settings, error) {
	if cfg.Size != SizeFixed && cfg.Size != SizeStretch {
		return Settings{}, fmt.Errorf("size must be %q or %q, got %q", SizeFixed, SizeStretch, cfg.Size)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return Settings{}, fmt.Errorf("width and height must be > 0, got %gx%g", cfg.Width, cfg.Height)
	}
	if cfg.FlippingTime <= 0 {
		return Settings{}, fmt.Errorf("flippingTime must be > 0, got %d", cfg.FlippingTime)
	}
	if cfg.SwipeDistance <= 0 {
		return Settings{}, fmt.Errorf("swipeDistance must be > 0, got %g", cfg.SwipeDistance)
	}
	if cfg.PageCount <= 0 {
		return Settings{}, fmt.Errorf("pageCount must be > 0, got %d", cfg.PageCount)
	}

	switch cfg.Size {
	case SizeFixed:
		// Fixed size: all bounds collapse to the configured dimensions.
		cfg.MinWidth = cfg.Width
		cfg.MaxWidth = cfg.Width
		cfg.MinHeight = cfg.Height
		cfg.MaxHeight = cfg.Height
	case SizeStretch:
		cfg.MinWidth, cfg.MaxWidth = normalizeBounds(cfg.MinWidth, cfg.MaxWidth)
		cfg.MinHeight, cfg.MaxHeight = normalizeBounds(cfg.MinHeight, cfg.MaxHeight)
	}

	return cfg, nil
}

// normalizeBounds defaults absent or inverted bounds to the sane range.
func normalizeBounds(lo, hi float64) (float64, float64) {
	if lo <= 0 {
		lo = defaultMinDimension
	}
	if hi <= 0 {
		hi = defaultMaxDimension
	}
	if lo > hi {
		lo = defaultMinDimension
		hi = defaultMaxDimension
	}
	return lo, hi
}

// loadFile overlays a YAML settings file onto cfg.
func loadFile(path string, cfg *Settings) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}

	var file fileSettings
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	overlay(cfg, file)
	return nil
}

// overlay applies the fields present in a settings file.
func overlay(cfg *Settings, file fileSettings) {
	if file.Size != nil {
		cfg.Size = *file.Size
	}
	if file.Width != nil {
		cfg.Width = *file.Width
	}
	if file.Height != nil {
		cfg.Height = *file.Height
	}
	if file.MinWidth != nil {
		cfg.MinWidth = *file.MinWidth
	}
	if file.MaxWidth != nil {
		cfg.MaxWidth = *file.MaxWidth
	}
	if file.MinHeight != nil {
		cfg.MinHeight = *file.MinHeight
	}
	if file.MaxHeight != nil {
		cfg.MaxHeight = *file.MaxHeight
	}
	if file.FlippingTime != nil {
		cfg.FlippingTime = *file.FlippingTime
	}
	if file.SwipeDistance != nil {
		cfg.SwipeDistance = *file.SwipeDistance
	}
	if file.SinglePage != nil {
		cfg.SinglePage = *file.SinglePage
	}
	if file.MobileScroll != nil {
		cfg.MobileScrollSupport = *file.MobileScroll
	}
	if file.ClickForward != nil {
		cfg.ClickEventForward = *file.ClickForward
	}
	if file.UseMouse != nil {
		cfg.UseMouseEvents = *file.UseMouse
	}
	if file.PageCount != nil {
		cfg.PageCount = *file.PageCount
	}
	if file.ListenAddr != nil {
		cfg.ListenAddr = *file.ListenAddr
	}
	if file.DataDir != nil {
		cfg.DataDir = *file.DataDir
	}
}

// envString returns an env override when present, otherwise a default.
func envString(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

// envInt returns an int env override when present, otherwise a default.
func envInt(key string, def int) (int, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return value, nil
}

// envFloat returns a float env override when present, otherwise a default.
func envFloat(key string, def float64) (float64, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def, nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number: %w", key, err)
	}
	return value, nil
}

// envBool returns a bool env override when present, otherwise a default.
func envBool(key string, def bool) bool {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	switch strings.ToLower(raw) {
	case "1", "true", "yes", "y", "on":
		return true
	case "0", "false", "no", "n", "off":
		return false
	default:
		return def
	}
}

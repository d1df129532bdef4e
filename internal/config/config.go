// Package config loads splitdiff's on-disk JSON configuration: leader
// commands inherited from the pager this project grew out of, plus the
// side-by-side rendering options documented on SideBySideConfig (width,
// line-wrapping behavior, fill method, and so on).
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"splitdiff/internal/diffview"
)

const (
	configDirName  = "splitdiff"
	configFileName = "config.json"
)

// AppConfig is the whole on-disk configuration document.
type AppConfig struct {
	LeaderCommands map[string]string `json:"leader_commands"`
	SideBySide     SideBySideConfig  `json:"side_by_side"`
}

// SideBySideConfig holds every knob the side-by-side renderer exposes.
// Fields use plain strings where the on-disk value is more natural as text
// ("auto", "spaces") and ints/bools elsewhere; ToWrapConfig/ToFillMethod/
// ToWidth translate them into internal/diffview's stricter types.
type SideBySideConfig struct {
	// Width is "auto" (track the terminal) or a positive column count.
	Width string `json:"width"`
	// KeepMarkers shows a literal "+"/"-" column in each panel instead of
	// relying on panel background color alone to mark changed lines.
	KeepMarkers bool `json:"keep_markers"`
	// FillMethod is "spaces", "ansi", or "none".
	FillMethod string `json:"fill_method"`
	// WrapLeftSymbol marks where a long line was cut to continue on the
	// next physical row.
	WrapLeftSymbol string `json:"wrap_left_symbol"`
	// WrapRightSymbol replaces WrapLeftSymbol's column on the last
	// unwrapped row when right-alignment kicks in (see WrapRightPercent).
	WrapRightSymbol string `json:"wrap_right_symbol"`
	// WrapRightPrefixSymbol marks the start of a right-aligned
	// continuation line.
	WrapRightPrefixSymbol string `json:"wrap_right_prefix_symbol"`
	// WrapMaxLines caps how many times one logical line may wrap, so it
	// yields at most WrapMaxLines+1 physical rows; 0 means unlimited. This
	// is the raw value a user would set — ToWrapConfig adds the +1 the
	// wrapper's internal bookkeeping expects.
	WrapMaxLines int `json:"wrap_max_lines"`
	// WrapRightPercent is 0-100: a lone short wrapped tail right-aligns
	// once its share of the line width falls under this percentage.
	WrapRightPercent int `json:"wrap_right_percent"`
	// TruncationSymbol is loaded from the config file but is not passed to
	// the renderer: rows too wide to fit are always truncated with
	// diffview.TruncationSymbol, whatever this field holds.
	TruncationSymbol string `json:"truncation_symbol"`
	// LineNumberDigits fixes the gutter's numeral width; 0 means size it
	// automatically from the highest line number in the whole rendered diff.
	LineNumberDigits int `json:"line_number_digits"`
}

// DefaultSideBySideConfig mirrors delta's own side-by-side defaults.
func DefaultSideBySideConfig() SideBySideConfig {
	return SideBySideConfig{
		Width:                 "auto",
		KeepMarkers:           false,
		FillMethod:            "spaces",
		WrapLeftSymbol:        "↵",
		WrapRightSymbol:       "↵",
		WrapRightPrefixSymbol: "…",
		WrapMaxLines:          0,
		WrapRightPercent:      37,
		TruncationSymbol:      "…",
		LineNumberDigits:      0,
	}
}

func Load() (AppConfig, string, error) {
	path, err := DefaultPath()
	if err != nil {
		return AppConfig{}, "", err
	}
	cfg, err := LoadFromPath(path)
	return cfg, path, err
}

func LoadFromPath(path string) (AppConfig, error) {
	cfg := AppConfig{
		LeaderCommands: make(map[string]string),
		SideBySide:     DefaultSideBySideConfig(),
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return AppConfig{}, err
	}

	if len(strings.TrimSpace(string(data))) == 0 {
		return cfg, nil
	}

	// Unmarshal onto the defaults so a config file that only overrides a
	// few fields doesn't zero out the rest.
	if err := json.Unmarshal(data, &cfg); err != nil {
		return AppConfig{}, fmt.Errorf("parse config: %w", err)
	}

	if cfg.LeaderCommands == nil {
		cfg.LeaderCommands = make(map[string]string)
	}

	normalized := make(map[string]string, len(cfg.LeaderCommands))
	for k, v := range cfg.LeaderCommands {
		key := strings.TrimSpace(k)
		cmd := strings.TrimSpace(v)
		if len([]rune(key)) != 1 {
			return AppConfig{}, fmt.Errorf("leader command key %q must be a single character", k)
		}
		if key == " " {
			return AppConfig{}, fmt.Errorf("leader command key cannot be space")
		}
		if cmd == "" {
			return AppConfig{}, fmt.Errorf("leader command for key %q is empty", key)
		}
		normalized[key] = cmd
	}
	cfg.LeaderCommands = normalized

	if err := cfg.SideBySide.validate(); err != nil {
		return AppConfig{}, err
	}

	return cfg, nil
}

func (c SideBySideConfig) validate() error {
	if _, err := c.ToWidth(); err != nil {
		return err
	}
	if _, err := c.ToFillMethod(); err != nil {
		return err
	}
	if c.WrapRightPercent < 0 || c.WrapRightPercent > 100 {
		return fmt.Errorf("wrap_right_percent must be between 0 and 100, got %d", c.WrapRightPercent)
	}
	if c.WrapMaxLines < 0 {
		return fmt.Errorf("wrap_max_lines must not be negative, got %d", c.WrapMaxLines)
	}
	return nil
}

// ToWidth translates the on-disk "auto"/numeric width into diffview.Width.
func (c SideBySideConfig) ToWidth() (diffview.Width, error) {
	if strings.TrimSpace(c.Width) == "" || c.Width == "auto" {
		return diffview.VariableWidth(), nil
	}
	n, err := strconv.Atoi(c.Width)
	if err != nil || n <= 0 {
		return diffview.Width{}, fmt.Errorf("width must be \"auto\" or a positive integer, got %q", c.Width)
	}
	return diffview.FixedWidth(n), nil
}

// ToFillMethod translates the on-disk fill method name into diffview.FillMethod.
func (c SideBySideConfig) ToFillMethod() (diffview.FillMethod, error) {
	switch c.FillMethod {
	case "", "spaces":
		return diffview.FillSpaces, nil
	case "ansi":
		return diffview.FillAnsiSequence, nil
	case "none":
		return diffview.FillNone, nil
	default:
		return diffview.FillNone, fmt.Errorf("fill_method must be one of \"spaces\", \"ansi\", \"none\", got %q", c.FillMethod)
	}
}

// ToWrapConfig builds a diffview.WrapConfig from the on-disk settings.
// WrapMaxLines is adapted from the user-facing "how many wraps" count to
// the wrapper's internal "+1" bookkeeping value (see WrapConfig.MaxLines).
func (c SideBySideConfig) ToWrapConfig() diffview.WrapConfig {
	maxLines := 0
	if c.WrapMaxLines > 0 {
		maxLines = c.WrapMaxLines + 1
	}
	return diffview.WrapConfig{
		LeftSymbol:           c.WrapLeftSymbol,
		RightSymbol:          c.WrapRightSymbol,
		RightPrefixSymbol:    c.WrapRightPrefixSymbol,
		UseWrapRightPermille: c.WrapRightPercent * 10,
		MaxLines:             maxLines,
	}
}

func DefaultPath() (string, error) {
	home, err := configHome()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, configDirName, configFileName), nil
}

func configHome() (string, error) {
	if xdg := strings.TrimSpace(os.Getenv("XDG_CONFIG_HOME")); xdg != "" {
		return xdg, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config"), nil
}

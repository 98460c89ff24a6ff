package boards

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Config is the USB identity read from one mpconfigboard.mk.
type Config struct {
	VID          string
	PID          string
	Product      string
	Manufacturer string
}

// configKeys lists recognized line prefixes in match order. The
// CIRCUITPY_CREATOR_ID and CIRCUITPY_CREATION_ID keys identify BLE-only boards
// that have no USB identity.
var configKeys = []struct {
	prefix string
	field  func(*Config) *string
}{
	{"USB_VID", func(c *Config) *string { return &c.VID }},
	{"USB_PID", func(c *Config) *string { return &c.PID }},
	{"USB_PRODUCT", func(c *Config) *string { return &c.Product }},
	{"USB_MANUFACTURER", func(c *Config) *string { return &c.Manufacturer }},
	{"CIRCUITPY_CREATOR_ID", func(c *Config) *string { return &c.VID }},
	{"CIRCUITPY_CREATION_ID", func(c *Config) *string { return &c.PID }},
}

// ParseConfig extracts the USB identity from makefile content. Later lines
// overwrite earlier ones and missing fields stay empty. IDs are returned as
// written; see NormalizeID.
func ParseConfig(r io.Reader) (Config, error) {
	var cfg Config

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()

		for _, key := range configKeys {
			if strings.HasPrefix(line, key.prefix) {
				*key.field(&cfg) = configValue(line)
				break
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return Config{}, fmt.Errorf("reading board config: %w", err)
	}

	return cfg, nil
}

// configValue returns the text between the first and second '=' of a
// `KEY = "value" # comment` line, without the comment, quotes or surrounding
// whitespace.
func configValue(line string) string {
	parts := strings.Split(line, "=")
	if len(parts) < 2 {
		return ""
	}

	value, _, _ := strings.Cut(parts[1], "#")

	return strings.Trim(value, "\" \t\r\n")
}

// NormalizeID uppercases a hex id while keeping a lowercase "0x" prefix.
func NormalizeID(id string) string {
	return strings.ReplaceAll(strings.ToUpper(id), "0X", "0x")
}

// Normalized returns c with its VID and PID normalized.
func (c Config) Normalized() Config {
	c.VID = NormalizeID(c.VID)
	c.PID = NormalizeID(c.PID)

	return c
}

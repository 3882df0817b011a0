// Package ui holds the request-local interaction state of the site pages:
// accordions, expandable cards and the testimonial carousel.
package ui

import (
	"strconv"
	"strings"
	"time"
)

// None marks a closed accordion.
const None = -1

const DefaultRotationInterval = 6 * time.Second

// ToggleIndex returns the open entry after clicking index: the open entry closes,
// any other entry opens.
func ToggleIndex(open, index int) int {
	if open == index {
		return None
	}
	return index
}

// ParseIndex reads an index from a query value. "none" closes everything; empty,
// malformed and out-of-range values yield fallback.
func ParseIndex(raw string, count, fallback int) int {
	raw = strings.TrimSpace(strings.ToLower(raw))
	if raw == "" {
		return fallback
	}
	if raw == "none" {
		return None
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 || n >= count {
		return fallback
	}
	return n
}

// FormatIndex is the inverse of ParseIndex.
func FormatIndex(index int) string {
	if index < 0 {
		return "none"
	}
	return strconv.Itoa(index)
}

func NextIndex(current, count int) int {
	if count <= 0 {
		return 0
	}
	return (current + 1) % count
}

func PrevIndex(current, count int) int {
	if count <= 0 {
		return 0
	}
	return (current - 1 + count) % count
}

// ActiveAt is the carousel position after advancing once per interval since start.
func ActiveAt(start, now time.Time, interval time.Duration, count int) int {
	if count <= 0 {
		return 0
	}
	if interval <= 0 || now.Before(start) {
		return 0
	}
	steps := int64(now.Sub(start) / interval)
	return int(steps % int64(count))
}

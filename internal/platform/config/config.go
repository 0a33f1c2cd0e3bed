// Package config reads settings from prefixed environment variables
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"yamlgate/internal/platform/logger"
)

// Conf is a namespaced view over the environment, e.g. Prefix("GATE_")
type Conf struct{ prefix string }

// New returns a root Conf
func New() Conf { return Conf{} }

// Prefix returns a child Conf with p appended to the prefix
func (c Conf) Prefix(p string) Conf { return Conf{prefix: c.prefix + p} }

func (c Conf) key(k string) string { return c.prefix + k }

func (c Conf) lookup(k string) string { return strings.TrimSpace(os.Getenv(c.key(k))) }

// may parses key with parse, an empty value yields def and a bad one logs and yields def
func may[T any](c Conf, key string, def T, parse func(string) (T, error)) T {
	s := c.lookup(key)
	if s == "" {
		return def
	}
	v, err := parse(s)
	if err != nil {
		logger.Get().Warn().Str("key", c.key(key)).Str("value", s).Interface("default", def).Msg("invalid config value, using default")
		return def
	}
	return v
}

// MustString panics when key is missing or empty
func (c Conf) MustString(key string) string {
	v := c.lookup(key)
	if v == "" {
		logger.Get().Panic().Str("key", c.key(key)).Msg("missing required env")
	}
	return v
}

// MayString returns the value of key or def
func (c Conf) MayString(key, def string) string {
	if v := c.lookup(key); v != "" {
		return v
	}
	return def
}

// MayInt returns key as an int or def
func (c Conf) MayInt(key string, def int) int { return may(c, key, def, strconv.Atoi) }

// MayInt64 returns key as an int64 or def
func (c Conf) MayInt64(key string, def int64) int64 {
	return may(c, key, def, func(s string) (int64, error) { return strconv.ParseInt(s, 10, 64) })
}

// MayBool returns key as a bool or def
func (c Conf) MayBool(key string, def bool) bool { return may(c, key, def, strconv.ParseBool) }

// MayDuration returns key as a duration like 250ms or def
func (c Conf) MayDuration(key string, def time.Duration) time.Duration {
	return may(c, key, def, time.ParseDuration)
}

// MayCSV splits key on commas, dropping blanks, or returns def
func (c Conf) MayCSV(key string, def []string) []string {
	var out []string
	for p := range strings.SplitSeq(c.lookup(key), ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}

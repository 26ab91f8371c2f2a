// Package messages is the locale catalog behind every user-facing string.
// The core only sees the T lookup; the texts live in embedded YAML files so
// another locale is one file away.
package messages

import (
	"embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yml
var localeFS embed.FS

// Catalog resolves dotted keys to interpolated messages.
type Catalog struct {
	locale  string
	entries map[string]string
}

// Load parses the embedded locale file into a flat dotted-key map.
func Load(locale string) (*Catalog, error) {
	raw, err := localeFS.ReadFile("locales/" + locale + ".yml")
	if err != nil {
		return nil, fmt.Errorf("unknown locale %q: %w", locale, err)
	}
	var tree map[string]any
	if err := yaml.Unmarshal(raw, &tree); err != nil {
		return nil, fmt.Errorf("parse locale %q: %w", locale, err)
	}
	c := &Catalog{locale: locale, entries: map[string]string{}}
	flatten("", tree, c.entries)
	return c, nil
}

func flatten(prefix string, tree map[string]any, out map[string]string) {
	for k, v := range tree {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch val := v.(type) {
		case map[string]any:
			flatten(key, val, out)
		default:
			out[key] = fmt.Sprint(val)
		}
	}
}

// T looks the key up and substitutes %{name} placeholders from alternating
// key/value pairs. An unknown key renders as the key itself so a missing
// translation is visible instead of fatal.
func (c *Catalog) T(key string, kv ...any) string {
	msg, ok := c.entries[key]
	if !ok {
		return key
	}
	for i := 0; i+1 < len(kv); i += 2 {
		name, _ := kv[i].(string)
		msg = strings.ReplaceAll(msg, "%{"+name+"}", fmt.Sprint(kv[i+1]))
	}
	return msg
}

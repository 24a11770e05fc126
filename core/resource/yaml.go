package resource

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/goccy/go-yaml"
)

// ParseYAML reads a YAML or JSON translation table. Nested maps are
// flattened to dot-separated keys and list items are addressed by index:
//
//	Chat:
//	  Title: Chats
//	  Members_1: "%d member"
//
// yields "Chat.Title" and "Chat.Members_1". Scalars other than strings keep
// their YAML text form; null becomes an empty string.
func ParseYAML(r io.Reader) (map[string]string, error) {
	var raw map[string]any
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("failed to parse translation table: %w", err)
	}

	entries := make(map[string]string, len(raw))
	for k, v := range raw {
		flatten(entries, k, v)
	}
	return entries, nil
}

func flatten(out map[string]string, key string, v any) {
	switch v := v.(type) {
	case map[string]any:
		for k, child := range v {
			flatten(out, key+"."+k, child)
		}
	case map[any]any:
		for k, child := range v {
			flatten(out, key+"."+fmt.Sprint(k), child)
		}
	case []any:
		for i, child := range v {
			flatten(out, key+"."+strconv.Itoa(i), child)
		}
	case string:
		out[key] = v
	case nil:
		out[key] = ""
	default:
		out[key] = fmt.Sprint(v)
	}
}

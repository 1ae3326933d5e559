package schema

import (
	"fmt"
	"strings"
	"sync"
)

// ParsedTag is the db struct-tag configuration for one field.
//
// Supported syntax:
//
//	`db:"column_name"`            // explicit column mapping
//	`db:"-"`                      // skip field entirely
//	`db:"id;generator:uuid"`      // column plus ID generation
//	`db:"generator:ulid"`         // default column name plus generation
type ParsedTag struct {
	ColumnName string
	Skip       bool
	Generator  string
}

// TagParser parses db tags, caching results since the same tag strings
// repeat across introspection calls.
type TagParser struct {
	cache   map[string]*ParsedTag
	cacheMu sync.RWMutex
}

func NewTagParser() *TagParser {
	return &TagParser{cache: make(map[string]*ParsedTag, 64)}
}

func (p *TagParser) ParseTag(fieldName, tagValue string) (*ParsedTag, error) {
	if tagValue == "" {
		return &ParsedTag{ColumnName: toSnakeCase(fieldName)}, nil
	}

	cacheKey := fieldName + ":" + tagValue
	p.cacheMu.RLock()
	if cached, ok := p.cache[cacheKey]; ok {
		p.cacheMu.RUnlock()
		return cached, nil
	}
	p.cacheMu.RUnlock()

	parsed, err := p.parseTagValue(fieldName, tagValue)
	if err != nil {
		return nil, fmt.Errorf("field %s: %w", fieldName, err)
	}

	p.cacheMu.Lock()
	p.cache[cacheKey] = parsed
	p.cacheMu.Unlock()

	return parsed, nil
}

func (p *TagParser) parseTagValue(fieldName, tagValue string) (*ParsedTag, error) {
	if tagValue == "-" {
		return &ParsedTag{Skip: true}, nil
	}

	parsed := &ParsedTag{ColumnName: toSnakeCase(fieldName)}

	if !strings.ContainsAny(tagValue, ";:") {
		parsed.ColumnName = tagValue
		return parsed, nil
	}

	for _, option := range strings.Split(tagValue, ";") {
		option = strings.TrimSpace(option)
		if option == "" {
			continue
		}

		if idx := strings.IndexByte(option, ':'); idx != -1 {
			key := strings.TrimSpace(option[:idx])
			value := strings.TrimSpace(option[idx+1:])
			switch key {
			case "column":
				parsed.ColumnName = value
			case "generator":
				parsed.Generator = value
			default:
				return nil, fmt.Errorf("unknown tag option %q", key)
			}
			continue
		}

		// A bare word in an option list is the column name.
		parsed.ColumnName = option
	}

	return parsed, nil
}

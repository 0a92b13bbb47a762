package logger

import (
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"strings"
)

// messager is implemented by zerr errors: Message returns the error's own text without its causes.
type messager interface {
	Message() string
}

// metadataer is implemented by zerr errors carrying key/value context.
type metadataer interface {
	Metadata() map[string]any
}

// ErrorEntry is one level of an error chain.
type ErrorEntry struct {
	Message  string
	Metadata map[string]any
}

// collectErrorEntries walks the chain while errors report their own message.
// The first error that does not ends the walk with its full text.
func collectErrorEntries(err error) []ErrorEntry {
	var entries []ErrorEntry
	for current := err; current != nil; {
		m, ok := current.(messager)
		if !ok {
			entries = append(entries, ErrorEntry{Message: current.Error()})
			break
		}

		entry := ErrorEntry{Message: m.Message()}
		if md, ok := current.(metadataer); ok {
			entry.Metadata = md.Metadata()
		}
		entries = append(entries, entry)
		current = errors.Unwrap(current)
	}
	return entries
}

// formatErrorEntries renders entries as
//
//	Error: outer
//	       key: value
//
//	  Caused by:
//	    → inner
func formatErrorEntries(entries []ErrorEntry) string {
	var lines []string
	for i, e := range entries {
		head, indent := "Error: ", "       "
		if i > 0 {
			head, indent = "    → ", "      "
			if i == 1 {
				lines = append(lines, "", "  Caused by:")
			}
		}

		msgLines := strings.Split(e.Message, "\n")
		lines = append(lines, head+msgLines[0])
		for _, line := range msgLines[1:] {
			lines = append(lines, indent+line)
		}
		for _, key := range slices.Sorted(maps.Keys(e.Metadata)) {
			lines = append(lines, fmt.Sprintf("%s%s: %v", indent, key, e.Metadata[key]))
		}
	}
	return strings.Join(lines, "\n")
}

// errorAttrs flattens entries into slog attributes for JSON output.
func errorAttrs(entries []ErrorEntry) []any {
	var attrs []any
	for _, key := range slices.Sorted(maps.Keys(entries[0].Metadata)) {
		attrs = append(attrs, slog.Any(key, entries[0].Metadata[key]))
	}
	if len(entries) > 1 {
		causes := make([]string, len(entries)-1)
		for i, e := range entries[1:] {
			causes[i] = e.Message
		}
		attrs = append(attrs, slog.Any("causes", causes))
	}
	return attrs
}

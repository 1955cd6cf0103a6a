package logtail

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
)

// Read returns at most maxLines from the end of the file at path. A
// non-positive maxLines returns every line. A missing file has no lines.
func Read(path string, maxLines int) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if maxLines <= 0 {
		var lines []string
		for scanner.Scan() {
			lines = append(lines, scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("read log: %w", err)
		}
		return lines, nil
	}

	ring := make([]string, maxLines)
	count := 0
	idx := 0
	for scanner.Scan() {
		ring[idx] = scanner.Text()
		idx = (idx + 1) % maxLines
		if count < maxLines {
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}

	lines := make([]string, count)
	if count == maxLines {
		for i := 0; i < count; i++ {
			lines[i] = ring[(idx+i)%maxLines]
		}
	} else {
		copy(lines, ring[:count])
	}
	return lines, nil
}

// Entry is a log line split into its slog text fields.
type Entry struct {
	Time    string
	Level   string
	Message string
	// Attrs is the remainder of the line after the message.
	Attrs string
	Raw   string
}

// Parse splits a slog text handler line. Lines in another format come
// back with only Raw and Message set.
func Parse(line string) Entry {
	e := Entry{Raw: line, Message: line}
	rest := line
	if v, r, ok := field(rest, "time"); ok {
		e.Time, rest = v, r
	}
	v, r, ok := field(rest, "level")
	if !ok {
		return e
	}
	e.Level, rest = v, r
	if v, r, ok := field(rest, "msg"); ok {
		e.Message, rest = v, r
	} else {
		e.Message = ""
	}
	e.Attrs = strings.TrimSpace(rest)
	return e
}

// field consumes key=value from the start of s. Quoted values may contain
// spaces and escaped quotes.
func field(s, key string) (value, rest string, ok bool) {
	s = strings.TrimLeft(s, " ")
	prefix := key + "="
	if !strings.HasPrefix(s, prefix) {
		return "", s, false
	}
	s = s[len(prefix):]
	if strings.HasPrefix(s, `"`) {
		var b strings.Builder
		for i := 1; i < len(s); i++ {
			switch s[i] {
			case '\\':
				if i+1 < len(s) {
					i++
					b.WriteByte(s[i])
				}
			case '"':
				return b.String(), s[i+1:], true
			default:
				b.WriteByte(s[i])
			}
		}
		return b.String(), "", true
	}
	if i := strings.IndexByte(s, ' '); i >= 0 {
		return s[:i], s[i:], true
	}
	return s, "", true
}

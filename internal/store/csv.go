package store

import (
	"os"
	"strings"
)

// EnsureHeader writes the header line iff the summary file does not
// exist yet. First writer wins; an existing file is never truncated,
// so a header is written at most once for the lifetime of the file.
func EnsureHeader(path string, header []string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		if os.IsExist(err) {
			return nil
		}
		return err
	}
	defer f.Close()
	_, err = f.WriteString(csvLine(header))
	return err
}

// AppendRow appends one row to the summary file. Callers must pass
// fields in the same column order as the header every time; there is
// no schema versioning.
func AppendRow(path string, fields []string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = f.WriteString(csvLine(fields))
	return err
}

// csvLine quotes every field, doubling embedded quotes per RFC 4180
func csvLine(fields []string) string {
	var b strings.Builder
	for i, field := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(field, `"`, `""`))
		b.WriteByte('"')
	}
	b.WriteByte('\n')
	return b.String()
}

package statement

import "strings"

// SplitRow splits one CSV line into trimmed fields.
//
// A double quote toggles quoting and is dropped; commas inside quotes are kept
// as content. An unbalanced quote leaves the rest of the line quoted.
func SplitRow(line string) []string {
	var (
		fields   []string
		current  strings.Builder
		inQuotes bool
	)
	for _, r := range line {
		switch {
		case r == '"':
			inQuotes = !inQuotes
		case r == ',' && !inQuotes:
			fields = append(fields, strings.TrimSpace(current.String()))
			current.Reset()
		default:
			current.WriteRune(r)
		}
	}
	fields = append(fields, strings.TrimSpace(current.String()))

	for i, f := range fields {
		fields[i] = cleanField(f)
	}
	return fields
}

// cleanField removes one pair of wrapping quotes and surrounding space.
func cleanField(f string) string {
	f = strings.TrimPrefix(f, `"`)
	f = strings.TrimSuffix(f, `"`)
	return strings.TrimSpace(f)
}

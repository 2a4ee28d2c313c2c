package mapper

import "strings"

// listSeparator joins composite list fields into a single text column.
// Elements containing the separator are not escaped; that ambiguity is an
// accepted data loss.
const listSeparator = ","

// EncodeList joins an ordered list into one storage column value. An empty
// list encodes to the empty string.
func EncodeList(items []string) string {
	return strings.Join(items, listSeparator)
}

// DecodeList splits a storage column value back into an ordered list,
// dropping empty segments. The empty string decodes to an empty list.
func DecodeList(text string) []string {
	out := []string{}
	if text == "" {
		return out
	}

	for _, part := range strings.Split(text, listSeparator) {
		if part != "" {
			out = append(out, part)
		}
	}

	return out
}

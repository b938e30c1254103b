package render

import "strings"

// span is a run of text with inline emphasis.
type span struct {
	Text string
	Bold bool
	Code bool
}

// parseInline splits **bold** and `code` runs. Unclosed markers are kept
// as literal text.
func parseInline(input string) []span {
	if input == "" {
		return nil
	}
	var spans []span
	var buf strings.Builder
	bold, code := false, false

	flush := func() {
		if buf.Len() == 0 {
			return
		}
		spans = append(spans, span{Text: buf.String(), Bold: bold, Code: code})
		buf.Reset()
	}

	for i := 0; i < len(input); {
		if input[i] == '`' && (code || strings.Contains(input[i+1:], "`")) {
			flush()
			code = !code
			i++
			continue
		}
		if !code && strings.HasPrefix(input[i:], "**") && (bold || strings.Contains(input[i+2:], "**")) {
			flush()
			bold = !bold
			i += 2
			continue
		}
		buf.WriteByte(input[i])
		i++
	}
	flush()
	return spans
}

// inline renders text with its emphasis applied.
func inline(text string) string {
	var b strings.Builder
	for _, s := range parseInline(text) {
		switch {
		case s.Code:
			b.WriteString(inlineCode.Render(s.Text))
		case s.Bold:
			b.WriteString(boldStyle.Render(s.Text))
		default:
			b.WriteString(s.Text)
		}
	}
	return b.String()
}

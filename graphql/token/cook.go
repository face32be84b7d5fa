package token

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ParseInt cooks an IntValue token's raw text to an int64.
func (t Token) ParseInt() (int64, error) {
	if t.Kind != IntValue {
		return 0, fmt.Errorf("not an integer literal: %s", t.Kind)
	}
	return strconv.ParseInt(t.Literal, 10, 64)
}

// ParseFloat cooks a FloatValue token's raw text to a float64. Values
// whose magnitude exceeds the float64 range come back as infinities with
// a nil error; callers that need finite values check for themselves.
func (t Token) ParseFloat() (float64, error) {
	if t.Kind != FloatValue {
		return 0, fmt.Errorf("not a float literal: %s", t.Kind)
	}
	f, err := strconv.ParseFloat(t.Literal, 64)
	if err != nil && errors.Is(err, strconv.ErrRange) {
		return f, nil
	}
	return f, err
}

// ParseString cooks a StringValue token's raw text to its content.
// Single-line strings get escape processing (\n \r \t \\ \" \/ \b \f,
// \uXXXX and \u{...}); block strings get the indentation-stripping
// algorithm from the GraphQL spec, with only the \""" escape.
func (t Token) ParseString() (string, error) {
	if t.Kind != StringValue {
		return "", fmt.Errorf("not a string literal: %s", t.Kind)
	}
	if strings.HasPrefix(t.Literal, `"""`) {
		return cookBlockString(t.Literal)
	}
	return cookSingleLineString(t.Literal)
}

// IsBlockString reports whether a StringValue token uses block syntax.
func (t Token) IsBlockString() bool {
	return t.Kind == StringValue && strings.HasPrefix(t.Literal, `"""`)
}

var errUnterminatedString = errors.New("Unterminated string: missing closing quote")

func cookSingleLineString(raw string) (string, error) {
	if len(raw) < 2 || !strings.HasPrefix(raw, `"`) || !strings.HasSuffix(raw, `"`) {
		return "", errUnterminatedString
	}
	content := []rune(raw[1 : len(raw)-1])

	var result strings.Builder
	result.Grow(len(raw))
	for i := 0; i < len(content); i++ {
		c := content[i]
		if c != '\\' {
			result.WriteRune(c)
			continue
		}
		i++
		if i >= len(content) {
			return "", errors.New("Invalid escape sequence: `\\`")
		}
		switch content[i] {
		case 'n':
			result.WriteByte('\n')
		case 'r':
			result.WriteByte('\r')
		case 't':
			result.WriteByte('\t')
		case '\\':
			result.WriteByte('\\')
		case '"':
			result.WriteByte('"')
		case '/':
			result.WriteByte('/')
		case 'b':
			result.WriteByte('\b')
		case 'f':
			result.WriteByte('\f')
		case 'u':
			r, n, err := cookUnicodeEscape(content[i+1:])
			if err != nil {
				return "", err
			}
			result.WriteRune(r)
			i += n
		default:
			return "", fmt.Errorf("Invalid escape sequence: `\\%c`", content[i])
		}
	}
	return result.String(), nil
}

// cookUnicodeEscape parses the remainder of a \u escape. It returns the
// decoded rune and how many runes of rest it consumed.
func cookUnicodeEscape(rest []rune) (rune, int, error) {
	if len(rest) > 0 && rest[0] == '{' {
		// Variable-length syntax: \u{...}
		var hex strings.Builder
		i := 1
		for {
			if i >= len(rest) {
				return 0, 0, fmt.Errorf("Invalid unicode escape: `\\u{%s`", hex.String())
			}
			c := rest[i]
			if c == '}' {
				i++
				break
			}
			if !isHexDigit(c) {
				return 0, 0, fmt.Errorf("Invalid unicode escape: `\\u{%s%c`", hex.String(), c)
			}
			hex.WriteRune(c)
			i++
		}
		if hex.Len() == 0 {
			return 0, 0, errors.New("Invalid unicode escape: `\\u{}`")
		}
		r, err := hexToRune(hex.String())
		if err != nil {
			return 0, 0, fmt.Errorf("Invalid unicode escape: `\\u{%s}`", hex.String())
		}
		return r, i, nil
	}

	// Fixed 4-digit syntax: \uXXXX
	var hex strings.Builder
	for i := 0; i < 4; i++ {
		if i >= len(rest) {
			return 0, 0, fmt.Errorf("Invalid unicode escape: `\\u%s`", hex.String())
		}
		c := rest[i]
		if !isHexDigit(c) {
			return 0, 0, fmt.Errorf("Invalid unicode escape: `\\u%s%c`", hex.String(), c)
		}
		hex.WriteRune(c)
	}
	r, err := hexToRune(hex.String())
	if err != nil {
		return 0, 0, fmt.Errorf("Invalid unicode escape: `\\u%s`", hex.String())
	}
	return r, 4, nil
}

func isHexDigit(c rune) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func hexToRune(hex string) (rune, error) {
	code, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, err
	}
	r := rune(code)
	if !utf8.ValidRune(r) {
		return 0, fmt.Errorf("invalid code point %#x", code)
	}
	return r, nil
}

func cookBlockString(raw string) (string, error) {
	if len(raw) < 6 || !strings.HasPrefix(raw, `"""`) || !strings.HasSuffix(raw, `"""`) {
		return "", errUnterminatedString
	}
	content := raw[3 : len(raw)-3]
	content = strings.ReplaceAll(content, `\"""`, `"""`)

	lines := splitLines(content)

	// Common indentation of non-first, non-blank lines.
	commonIndent := -1
	for _, line := range lines[1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		indent := len(line) - len(strings.TrimLeftFunc(line, unicode.IsSpace))
		if commonIndent < 0 || indent < commonIndent {
			commonIndent = indent
		}
	}
	if commonIndent < 0 {
		commonIndent = 0
	}

	result := make([]string, 0, len(lines))
	for i, line := range lines {
		if i == 0 {
			result = append(result, line)
		} else if len(line) >= commonIndent {
			result = append(result, line[commonIndent:])
		} else {
			result = append(result, line)
		}
	}

	for len(result) > 0 && strings.TrimSpace(result[0]) == "" {
		result = result[1:]
	}
	for len(result) > 0 && strings.TrimSpace(result[len(result)-1]) == "" {
		result = result[:len(result)-1]
	}

	return strings.Join(result, "\n"), nil
}

// splitLines splits on \n, dropping a trailing \r from each line and a
// final empty line, so CRLF input cooks the same as LF input.
func splitLines(s string) []string {
	lines := strings.Split(s, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	if len(lines) == 0 {
		lines = []string{""}
	}
	return lines
}

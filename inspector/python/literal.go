package python

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

var (
	errMalformedName = errors.New("malformed \\N character escape")
	errUnknownName   = errors.New("unknown Unicode character name")
)

// decodeString decodes a single string token including its prefix and quotes
func decodeString(raw string) (LiteralKind, string, error) {
	prefixLen := strings.IndexAny(raw, `'"`)
	if prefixLen < 0 {
		return StringLiteral, raw, nil
	}
	prefix := strings.ToLower(raw[:prefixLen])
	body := raw[prefixLen:]

	quote := body[:1]
	if strings.HasPrefix(body, `"""`) || strings.HasPrefix(body, `'''`) {
		quote = body[:3]
	}
	if len(body) >= 2*len(quote) && strings.HasSuffix(body, quote) {
		body = body[len(quote) : len(body)-len(quote)]
	} else {
		body = strings.TrimPrefix(body, quote)
	}

	kind := StringLiteral
	switch {
	case strings.Contains(prefix, "f"):
		return FStringLiteral, body, nil
	case strings.Contains(prefix, "b"):
		kind = BytesLiteral
	}
	if strings.Contains(prefix, "r") {
		return kind, body, nil
	}
	value, err := unescape(body, kind == BytesLiteral)
	return kind, value, err
}

// unescape resolves backslash escapes; unknown escapes are kept verbatim
func unescape(body string, isBytes bool) (string, error) {
	if !strings.Contains(body, `\`) {
		return body, nil
	}
	builder := strings.Builder{}
	for i := 0; i < len(body); i++ {
		ch := body[i]
		if ch != '\\' || i+1 >= len(body) {
			builder.WriteByte(ch)
			continue
		}
		next := body[i+1]
		switch next {
		case '\n':
			i++
		case '\r':
			i++
			if i+1 < len(body) && body[i+1] == '\n' {
				i++
			}
		case '\\', '\'', '"':
			builder.WriteByte(next)
			i++
		case 'a':
			builder.WriteByte('\a')
			i++
		case 'b':
			builder.WriteByte('\b')
			i++
		case 'f':
			builder.WriteByte('\f')
			i++
		case 'n':
			builder.WriteByte('\n')
			i++
		case 'r':
			builder.WriteByte('\r')
			i++
		case 't':
			builder.WriteByte('\t')
			i++
		case 'v':
			builder.WriteByte('\v')
			i++
		case '0', '1', '2', '3', '4', '5', '6', '7':
			end := i + 1
			for end < len(body) && end < i+4 && body[end] >= '0' && body[end] <= '7' {
				end++
			}
			value, _ := strconv.ParseUint(body[i+1:end], 8, 32)
			writeCode(&builder, rune(value), isBytes)
			i = end - 1
		case 'x':
			if !writeHex(&builder, body, i, 2, isBytes) {
				builder.WriteByte(ch)
				continue
			}
			i += 3
		case 'u', 'U':
			size := 4
			if next == 'U' {
				size = 8
			}
			if isBytes || !writeHex(&builder, body, i, size, false) {
				builder.WriteByte(ch)
				continue
			}
			i += 1 + size
		case 'N':
			if isBytes {
				builder.WriteByte(ch)
				continue
			}
			end := strings.IndexByte(body[i:], '}')
			if i+2 >= len(body) || body[i+2] != '{' || end < 0 {
				return "", errMalformedName
			}
			name := body[i+3 : i+end]
			code, ok := lookupRune(name)
			if !ok {
				return "", fmt.Errorf("%w: %s", errUnknownName, name)
			}
			builder.WriteRune(code)
			i += end
		default:
			builder.WriteByte(ch)
		}
	}
	return builder.String(), nil
}

func writeHex(builder *strings.Builder, body string, at int, size int, isBytes bool) bool {
	start := at + 2
	if start+size > len(body) {
		return false
	}
	value, err := strconv.ParseUint(body[start:start+size], 16, 32)
	if err != nil {
		return false
	}
	if !isBytes && size > 2 && !utf8.ValidRune(rune(value)) {
		return false
	}
	writeCode(builder, rune(value), isBytes)
	return true
}

func writeCode(builder *strings.Builder, code rune, isBytes bool) {
	if isBytes {
		builder.WriteByte(byte(code))
		return
	}
	builder.WriteRune(code)
}

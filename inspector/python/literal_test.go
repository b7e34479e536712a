package python

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeString(t *testing.T) {
	tests := []struct {
		raw    string
		kind   LiteralKind
		expect string
	}{
		{raw: `"生存"`, kind: StringLiteral, expect: "生存"},
		{raw: `'single'`, kind: StringLiteral, expect: "single"},
		{raw: `"""triple "quoted" text"""`, kind: StringLiteral, expect: `triple "quoted" text`},
		{raw: `'''a
b'''`, kind: StringLiteral, expect: "a\nb"},
		{raw: `"tab\there"`, kind: StringLiteral, expect: "tab\there"},
		{raw: `"quote \" and \\"`, kind: StringLiteral, expect: `quote " and \`},
		{raw: `"\x41あ\U0001F600\101"`, kind: StringLiteral, expect: "Aあ😀A"},
		{raw: `"unknown \q escape"`, kind: StringLiteral, expect: `unknown \q escape`},
		{raw: `r"\n raw"`, kind: StringLiteral, expect: `\n raw`},
		{raw: `U"unicode"`, kind: StringLiteral, expect: "unicode"},
		{raw: `b"\x41あ"`, kind: BytesLiteral, expect: `Aあ`},
		{raw: `Rb"\x41"`, kind: BytesLiteral, expect: `\x41`},
		{raw: `f"{name}"`, kind: FStringLiteral, expect: "{name}"},
		{raw: "\"line \\\ncontinued\"", kind: StringLiteral, expect: "line continued"},
		{raw: `"a\N{EM DASH}b"`, kind: StringLiteral, expect: "a—b"},
		{raw: `"\N{katakana letter a}"`, kind: StringLiteral, expect: "ア"},
		{raw: `"\N{CJK UNIFIED IDEOGRAPH-4EBA}"`, kind: StringLiteral, expect: "人"},
		{raw: `"\N{HANGUL SYLLABLE GAG}"`, kind: StringLiteral, expect: "각"},
		{raw: `b"\N{EM DASH}"`, kind: BytesLiteral, expect: `\N{EM DASH}`},
		{raw: `r"\N{EM DASH}"`, kind: StringLiteral, expect: `\N{EM DASH}`},
	}
	for _, tc := range tests {
		t.Run(tc.raw, func(t *testing.T) {
			kind, value, err := decodeString(tc.raw)
			assert.NoError(t, err)
			assert.Equal(t, tc.kind, kind)
			assert.Equal(t, tc.expect, value)
		})
	}
}

func TestDecodeString_InvalidName(t *testing.T) {
	tests := []struct {
		raw       string
		expectErr error
	}{
		{raw: `"\N{NO SUCH CHARACTER}"`, expectErr: errUnknownName},
		{raw: `"\N{EM DASH"`, expectErr: errMalformedName},
		{raw: `"\N"`, expectErr: errMalformedName},
		{raw: `"\N{CJK UNIFIED IDEOGRAPH-0041}"`, expectErr: errUnknownName},
	}
	for _, tc := range tests {
		t.Run(tc.raw, func(t *testing.T) {
			_, _, err := decodeString(tc.raw)
			assert.ErrorIs(t, err, tc.expectErr)
		})
	}
}

package python

import (
	"strconv"
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/unicode/runenames"
)

const (
	hangulBase   = 0xAC00
	hangulCount  = 11172
	hangulPrefix = "HANGUL SYLLABLE "
)

var (
	hangulLeads  = []string{"G", "GG", "N", "D", "DD", "R", "M", "B", "BB", "S", "SS", "", "J", "JJ", "C", "K", "T", "P", "H"}
	hangulVowels = []string{"A", "AE", "YA", "YAE", "EO", "E", "YEO", "YE", "O", "WA", "WAE", "OE", "YO", "U", "WEO", "WE", "WI", "YU", "EU", "YI", "I"}
	hangulTails  = []string{"", "G", "GG", "GS", "N", "NJ", "NH", "D", "L", "LG", "LM", "LB", "LS", "LT", "LP", "LH", "M", "B", "BS", "S", "SS", "NG", "J", "C", "K", "T", "P", "H"}

	// ideographPrefixes name ideographs by code point rather than by table entry
	ideographPrefixes = []string{"CJK UNIFIED IDEOGRAPH-", "CJK COMPATIBILITY IDEOGRAPH-"}

	runeNamesOnce sync.Once
	runeNames     map[string]rune
)

// lookupRune resolves a unicode character name used by \N{...} escapes, case insensitive
func lookupRune(name string) (rune, bool) {
	name = strings.ToUpper(name)
	for _, prefix := range ideographPrefixes {
		if !strings.HasPrefix(name, prefix) {
			continue
		}
		code, err := strconv.ParseUint(name[len(prefix):], 16, 32)
		if err != nil || !unicode.Is(unicode.Ideographic, rune(code)) {
			return 0, false
		}
		return rune(code), true
	}
	runeNamesOnce.Do(loadRuneNames)
	code, ok := runeNames[name]
	return code, ok
}

func loadRuneNames() {
	runeNames = make(map[string]rune, 40000)
	for code := rune(0); code <= unicode.MaxRune; code++ {
		if code >= 0xD800 && code <= 0xDFFF {
			continue
		}
		name := runenames.Name(code)
		if name == "" || strings.HasPrefix(name, "<") {
			continue
		}
		runeNames[name] = code
	}
	for index := 0; index < hangulCount; index++ {
		lead := index / (len(hangulVowels) * len(hangulTails))
		vowel := index % (len(hangulVowels) * len(hangulTails)) / len(hangulTails)
		tail := index % len(hangulTails)
		runeNames[hangulPrefix+hangulLeads[lead]+hangulVowels[vowel]+hangulTails[tail]] = rune(hangulBase + index)
	}
}

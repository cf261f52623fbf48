// Package i18n holds the localized texts of the end-of-round prompt.
package i18n

import "strings"

// Messages is the text set shown when a round ends.
type Messages struct {
	WonTitle  string
	WonBody   string
	LostTitle string
	LostBody  string
	Yes       string
	No        string
}

var catalog = map[string]Messages{
	"en": {
		WonTitle:  "Game Won",
		WonBody:   "Congratulations! You cleared every brick! Play again?",
		LostTitle: "Game Over",
		LostBody:  "Game over! Start again?",
		Yes:       "Yes",
		No:        "No",
	},
	"ko": {
		WonTitle:  "Game Won",
		WonBody:   "축하합니다! 클리어했습니다! 다시 한번 플레이하시겠습니까?",
		LostTitle: "Game Over",
		LostBody:  "게임 종료! 다시 시작하시겠습니까?",
		Yes:       "예",
		No:        "아니오",
	},
}

// DefaultLang is used when a requested language is unknown.
const DefaultLang = "en"

// For returns the messages for lang, falling back to English.
// Region suffixes are ignored, so "ko_KR.UTF-8" resolves to Korean.
func For(lang string) Messages {
	if m, ok := catalog[normalize(lang)]; ok {
		return m
	}
	return catalog[DefaultLang]
}

// Supported reports whether lang has its own catalog entry.
func Supported(lang string) bool {
	_, ok := catalog[normalize(lang)]
	return ok
}

// normalize reduces a locale such as "ko_KR.UTF-8" to its language code.
func normalize(lang string) string {
	key := strings.ToLower(lang)
	if i := strings.IndexAny(key, "_-."); i >= 0 {
		key = key[:i]
	}
	return key
}

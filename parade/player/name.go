package player

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/ratel-online/parade/consts"
	"golang.org/x/text/cases"
)

// ValidateName checks a human player's name against the names already taken.
func ValidateName(name string, taken []string) error {
	length := utf8.RuneCountInString(name)
	if length < consts.MinNameLength || length > consts.MaxNameLength {
		return consts.ErrorsNameLength
	}
	if strings.IndexFunc(name, unicode.IsLetter) < 0 {
		return consts.ErrorsNameNoLetter
	}
	folded := fold(name)
	if strings.HasPrefix(folded, consts.BotNamePrefix) && length < consts.MinBotPrefixedNameLength {
		return consts.ErrorsNameBotPrefix
	}
	if nameTaken(name, taken) {
		return consts.ErrorsNameTaken
	}
	return nil
}

func nameTaken(name string, taken []string) bool {
	folded := fold(name)
	for _, other := range taken {
		if fold(other) == folded {
			return true
		}
	}
	return false
}

func fold(name string) string {
	return cases.Fold().String(name)
}

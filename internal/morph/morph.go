package morph

import (
	"strconv"
	"strings"
)

// Case selects the grammatical case of the returned word form.
type Case int

const (
	// Nominative is the base form used for plain "N things" phrases.
	Nominative Case = iota
	// Prepositional is used for "присутствовал на N заседаниях" phrasing.
	Prepositional
)

// Word forms are chosen by the standard Russian three-way count agreement:
// few (1, 21, 31…), several (2–4, 22–24…) and many (everything else,
// including the 11–14 teens).
const (
	formFew = iota
	formSeveral
	formMany
)

var nominative = map[string][3]string{
	"прием":        {"прием", "приема", "приемов"},
	"ответ":        {"ответ", "ответа", "ответов"},
	"запрос":       {"запрос", "запроса", "запросов"},
	"обращение":    {"обращение", "обращения", "обращений"},
	"законопроект": {"законопроект", "законопроекта", "законопроектов"},
	"встреча":      {"встречу", "встречи", "встреч"},
	"заседание":    {"заседание", "заседания", "заседаний"},
}

var prepositional = map[string][3]string{
	"заседание": {"заседании", "заседаниях", "заседаниях"},
}

func formIndex(count int) int {
	if count < 0 {
		count = -count
	}
	d10 := count % 10
	d100 := count % 100
	switch {
	case d10 == 1 && d100 != 11:
		return formFew
	case d10 >= 2 && d10 <= 4 && (d100 < 12 || d100 > 14):
		return formSeveral
	default:
		return formMany
	}
}

// Inflect returns the nominative-case form of noun agreeing with count.
// Unknown nouns are returned unchanged.
func Inflect(noun string, count int) string {
	return InflectCase(noun, Nominative, count)
}

// InflectCase returns the form of noun in the given case agreeing with
// count. A noun without a table for the requested case falls back to the
// nominative table; an entirely unknown noun is returned unchanged.
func InflectCase(noun string, c Case, count int) string {
	table := nominative
	if c == Prepositional {
		table = prepositional
	}
	forms, ok := table[noun]
	if !ok {
		if c == Prepositional {
			forms, ok = nominative[noun]
		}
		if !ok {
			return noun
		}
	}
	return forms[formIndex(count)]
}

// ParseCount converts a count that may arrive as text into an integer,
// substituting zero for anything unparseable. Malformed counts must never
// fail a generation run.
func ParseCount(value string) int {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0
	}
	return n
}

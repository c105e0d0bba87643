package morph

import "testing"

func TestInflectSelectsFormByCount(t *testing.T) {
	cases := []struct {
		noun  string
		count int
		want  string
	}{
		{"запрос", 1, "запрос"},
		{"запрос", 2, "запроса"},
		{"запрос", 5, "запросов"},
		{"запрос", 11, "запросов"},
		{"запрос", 12, "запросов"},
		{"запрос", 14, "запросов"},
		{"запрос", 21, "запрос"},
		{"запрос", 22, "запроса"},
		{"запрос", 100, "запросов"},
		{"запрос", 101, "запрос"},
		{"запрос", 111, "запросов"},
		{"обращение", 0, "обращений"},
		{"обращение", 3, "обращения"},
		{"встреча", 1, "встречу"},
		{"встреча", 4, "встречи"},
		{"встреча", 17, "встреч"},
		{"законопроект", 1, "законопроект"},
		{"прием", 41, "прием"},
		{"ответ", 113, "ответов"},
	}
	for _, tc := range cases {
		if got := Inflect(tc.noun, tc.count); got != tc.want {
			t.Errorf("Inflect(%q, %d) = %q, want %q", tc.noun, tc.count, got, tc.want)
		}
	}
}

func TestInflectDependsOnlyOnCountMod100(t *testing.T) {
	for n := 0; n <= 200; n++ {
		base := Inflect("заседание", n%100)
		if got := Inflect("заседание", n); got != base {
			t.Fatalf("Inflect(заседание, %d) = %q, but Inflect(заседание, %d) = %q", n, got, n%100, base)
		}
	}
}

func TestInflectPrepositionalCase(t *testing.T) {
	cases := []struct {
		count int
		want  string
	}{
		{1, "заседании"},
		{2, "заседаниях"},
		{5, "заседаниях"},
		{11, "заседаниях"},
		{21, "заседании"},
	}
	for _, tc := range cases {
		if got := InflectCase("заседание", Prepositional, tc.count); got != tc.want {
			t.Errorf("InflectCase(заседание, Prepositional, %d) = %q, want %q", tc.count, got, tc.want)
		}
	}
}

func TestInflectUnknownNounReturnedUnchanged(t *testing.T) {
	if got := Inflect("турнир", 5); got != "турнир" {
		t.Fatalf("unknown noun changed: %q", got)
	}
	if got := InflectCase("ответ", Prepositional, 5); got != "ответов" {
		t.Fatalf("missing prepositional table should fall back to nominative, got %q", got)
	}
}

func TestParseCountDefaultsToZero(t *testing.T) {
	cases := map[string]int{
		"12":    12,
		" 7 ":   7,
		"":      0,
		"много": 0,
		"12abc": 0,
		"-3":    -3,
		"0":     0,
	}
	for input, want := range cases {
		if got := ParseCount(input); got != want {
			t.Errorf("ParseCount(%q) = %d, want %d", input, got, want)
		}
	}
}

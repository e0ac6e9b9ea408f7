package outfit

import (
	"strings"
	"time"

	"github.com/yanqian/daily-look/internal/domain/weather"
)

// Locale is a supported display language.
type Locale string

const (
	LocaleKO Locale = "ko"
	LocaleEN Locale = "en"
	LocaleJA Locale = "ja"
	LocaleZH Locale = "zh"
	LocaleES Locale = "es"

	DefaultLocale = LocaleKO
)

// Locales lists every supported locale.
var Locales = []Locale{LocaleKO, LocaleEN, LocaleJA, LocaleZH, LocaleES}

// ParseLocale accepts tags such as "ja", "en-US" or "zh_Hant" and falls back
// to fallback when the language is unsupported.
func ParseLocale(raw string, fallback Locale) Locale {
	lang := strings.ToLower(strings.TrimSpace(raw))
	if i := strings.IndexAny(lang, "-_"); i >= 0 {
		lang = lang[:i]
	}
	for _, l := range Locales {
		if string(l) == lang {
			return l
		}
	}
	if fallback == "" {
		return DefaultLocale
	}
	return fallback
}

var dailyLabels = map[string]map[Locale]string{
	string(FamilyDressy): {
		LocaleKO: "오늘의 포멀 룩",
		LocaleEN: "Today's Dressy Look",
		LocaleJA: "今日のきれいめコーデ",
		LocaleZH: "今日正式穿搭",
		LocaleES: "Look elegante de hoy",
	},
	string(FamilyCasual): {
		LocaleKO: "오늘의 캐주얼 룩",
		LocaleEN: "Today's Casual Look",
		LocaleJA: "今日のカジュアルコーデ",
		LocaleZH: "今日休闲穿搭",
		LocaleES: "Look casual de hoy",
	},
}

// Label returns the localized display name of a daily scenario id.
func Label(id string, locale Locale) (string, bool) {
	labels, ok := dailyLabels[id]
	if !ok {
		return "", false
	}
	if label, ok := labels[locale]; ok {
		return label, true
	}
	return labels[DefaultLocale], true
}

// Labels returns a copy of the label table for the daily scenario ids.
func Labels() map[string]map[Locale]string {
	out := make(map[string]map[Locale]string, len(dailyLabels))
	for id, labels := range dailyLabels {
		inner := make(map[Locale]string, len(labels))
		for l, v := range labels {
			inner[l] = v
		}
		out[id] = inner
	}
	return out
}

// DailyScenarios returns the dressy and casual prompts for the UTC day of now.
func DailyScenarios(now time.Time, snap weather.Snapshot, gender Gender) []Scenario {
	return ScenariosForDay(DayIndex(now), snap, gender)
}

// ScenariosForDay is DailyScenarios for an explicit day index.
func ScenariosForDay(day int64, snap weather.Snapshot, gender Gender) []Scenario {
	return []Scenario{
		BuildPrompt(FamilyDressy, snap, gender, PrimaryRotation(day)),
		BuildPrompt(FamilyCasual, snap, gender, SecondaryRotation(day)),
	}
}

// Localize fills the Label of each daily scenario for locale.
func Localize(scenarios []Scenario, locale Locale) []Scenario {
	out := make([]Scenario, len(scenarios))
	for i, sc := range scenarios {
		if label, ok := Label(sc.ID, locale); ok {
			sc.Label = label
		}
		out[i] = sc
	}
	return out
}

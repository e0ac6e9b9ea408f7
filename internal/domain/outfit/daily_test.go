package outfit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/daily-look/internal/domain/weather"
)

func TestDailyScenariosIDsAndDeterminism(t *testing.T) {
	morning := time.Date(2024, 7, 1, 0, 30, 0, 0, time.UTC)
	evening := time.Date(2024, 7, 1, 23, 30, 0, 0, time.UTC)
	snap := weather.Default()

	first := DailyScenarios(morning, snap, GenderFemale)
	require.Len(t, first, 2)
	require.Equal(t, "dressy", first[0].ID)
	require.Equal(t, "casual", first[1].ID)
	require.Equal(t, first, DailyScenarios(evening, snap, GenderFemale))

	nextDay := DailyScenarios(evening.Add(time.Hour), snap, GenderFemale)
	require.NotEqual(t, first[0].Prompt, nextDay[0].Prompt)
}

func TestLabelsCoverEveryLocale(t *testing.T) {
	for _, id := range []string{"dressy", "casual"} {
		for _, locale := range Locales {
			label, ok := Label(id, locale)
			require.True(t, ok)
			require.NotEmpty(t, label, "%s/%s", id, locale)
		}
	}
	_, ok := Label("formal", LocaleEN)
	require.False(t, ok)

	label, ok := Label("dressy", Locale("fr"))
	require.True(t, ok)
	require.Equal(t, "오늘의 포멀 룩", label)
}

func TestLocalize(t *testing.T) {
	scenarios := Localize(ScenariosForDay(10, weather.Default(), GenderMale), LocaleEN)
	require.Equal(t, "Today's Dressy Look", scenarios[0].Label)
	require.Equal(t, "Today's Casual Look", scenarios[1].Label)
}

func TestParseLocale(t *testing.T) {
	require.Equal(t, LocaleEN, ParseLocale("en-US", LocaleKO))
	require.Equal(t, LocaleZH, ParseLocale("zh_Hant", LocaleKO))
	require.Equal(t, LocaleJA, ParseLocale("JA", LocaleKO))
	require.Equal(t, LocaleES, ParseLocale("fr", LocaleES))
	require.Equal(t, DefaultLocale, ParseLocale("", ""))
}

func TestHairstyleScenarios(t *testing.T) {
	all, err := HairstyleScenarios(GenderFemale, nil, LocaleJA)
	require.NoError(t, err)
	require.Len(t, all, 9)
	require.Equal(t, "ボブ", all[1].Label)

	picked, err := HairstyleScenarios(GenderMale, []string{"quiff", "Buzz-Cut", "quiff"}, LocaleEN)
	require.NoError(t, err)
	require.Len(t, picked, 2)
	require.Equal(t, "quiff", picked[0].ID)
	require.Equal(t, "buzz-cut", picked[1].ID)
	require.Contains(t, picked[0].Prompt, "voluminous quiff")

	_, err = HairstyleScenarios(GenderMale, []string{"mohawk"}, LocaleEN)
	require.Error(t, err)
}

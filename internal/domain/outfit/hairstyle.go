package outfit

import (
	"fmt"
	"strings"
)

// Hairstyle is an entry of the interactive hairstyle try-on catalog.
type Hairstyle struct {
	ID          string
	Description string
	Labels      map[Locale]string
}

var femaleHairstyles = []Hairstyle{
	{ID: "long-layers", Description: "long soft layers with face-framing pieces", Labels: map[Locale]string{LocaleKO: "롱 레이어드", LocaleEN: "Long Layers", LocaleJA: "ロングレイヤー", LocaleZH: "长层次发型", LocaleES: "Capas largas"}},
	{ID: "bob", Description: "chin-length classic bob with a sleek finish", Labels: map[Locale]string{LocaleKO: "단발 보브", LocaleEN: "Classic Bob", LocaleJA: "ボブ", LocaleZH: "波波头", LocaleES: "Bob clásico"}},
	{ID: "pixie", Description: "textured pixie cut", Labels: map[Locale]string{LocaleKO: "픽시 컷", LocaleEN: "Pixie Cut", LocaleJA: "ピクシーカット", LocaleZH: "精灵短发", LocaleES: "Corte pixie"}},
	{ID: "beach-waves", Description: "loose shoulder-length beach waves", Labels: map[Locale]string{LocaleKO: "비치 웨이브", LocaleEN: "Beach Waves", LocaleJA: "ビーチウェーブ", LocaleZH: "海滩波浪卷", LocaleES: "Ondas playeras"}},
	{ID: "curtain-bangs", Description: "mid-length hair with soft curtain bangs", Labels: map[Locale]string{LocaleKO: "커튼 뱅", LocaleEN: "Curtain Bangs", LocaleJA: "カーテンバング", LocaleZH: "八字刘海", LocaleES: "Flequillo cortina"}},
	{ID: "high-ponytail", Description: "sleek high ponytail", Labels: map[Locale]string{LocaleKO: "하이 포니테일", LocaleEN: "High Ponytail", LocaleJA: "ハイポニーテール", LocaleZH: "高马尾", LocaleES: "Coleta alta"}},
	{ID: "low-bun", Description: "elegant low chignon bun", Labels: map[Locale]string{LocaleKO: "로우 번", LocaleEN: "Low Bun", LocaleJA: "ローシニヨン", LocaleZH: "低发髻", LocaleES: "Moño bajo"}},
	{ID: "shag", Description: "modern shag cut with choppy layers", Labels: map[Locale]string{LocaleKO: "샤기 컷", LocaleEN: "Shag Cut", LocaleJA: "シャギーカット", LocaleZH: "碎层次发型", LocaleES: "Corte shag"}},
	{ID: "lob", Description: "collarbone-length long bob with soft waves", Labels: map[Locale]string{LocaleKO: "롱 보브", LocaleEN: "Wavy Lob", LocaleJA: "ロブ", LocaleZH: "锁骨发", LocaleES: "Lob ondulado"}},
}

var maleHairstyles = []Hairstyle{
	{ID: "crew-cut", Description: "short crew cut", Labels: map[Locale]string{LocaleKO: "크루 컷", LocaleEN: "Crew Cut", LocaleJA: "クルーカット", LocaleZH: "平头", LocaleES: "Corte militar"}},
	{ID: "two-block", Description: "two-block cut with a textured top", Labels: map[Locale]string{LocaleKO: "투블럭", LocaleEN: "Two-Block", LocaleJA: "ツーブロック", LocaleZH: "两块式发型", LocaleES: "Corte two-block"}},
	{ID: "side-part", Description: "classic side part with a neat taper", Labels: map[Locale]string{LocaleKO: "사이드 파트", LocaleEN: "Side Part", LocaleJA: "サイドパート", LocaleZH: "侧分", LocaleES: "Raya al lado"}},
	{ID: "textured-crop", Description: "textured French crop with a short fringe", Labels: map[Locale]string{LocaleKO: "텍스처드 크롭", LocaleEN: "Textured Crop", LocaleJA: "テクスチャークロップ", LocaleZH: "纹理短碎发", LocaleES: "Crop texturizado"}},
	{ID: "slick-back", Description: "slicked-back hair with a clean finish", Labels: map[Locale]string{LocaleKO: "슬릭백", LocaleEN: "Slick Back", LocaleJA: "オールバック", LocaleZH: "背头", LocaleES: "Peinado hacia atrás"}},
	{ID: "comma-hair", Description: "comma hair with a curved fringe", Labels: map[Locale]string{LocaleKO: "쉼표 머리", LocaleEN: "Comma Hair", LocaleJA: "カンマヘア", LocaleZH: "逗号刘海", LocaleES: "Flequillo coma"}},
	{ID: "buzz-cut", Description: "even buzz cut", Labels: map[Locale]string{LocaleKO: "버즈 컷", LocaleEN: "Buzz Cut", LocaleJA: "バズカット", LocaleZH: "寸头", LocaleES: "Rapado"}},
	{ID: "quiff", Description: "voluminous quiff with short sides", Labels: map[Locale]string{LocaleKO: "퀴프", LocaleEN: "Quiff", LocaleJA: "クイッフ", LocaleZH: "飞机头", LocaleES: "Tupé"}},
	{ID: "medium-waves", Description: "medium-length natural waves", Labels: map[Locale]string{LocaleKO: "미디엄 웨이브", LocaleEN: "Medium Waves", LocaleJA: "ミディアムウェーブ", LocaleZH: "中长自然卷", LocaleES: "Ondas medias"}},
}

// Hairstyles returns the hairstyle catalog for gender.
func Hairstyles(g Gender) []Hairstyle {
	if g == GenderFemale {
		return append([]Hairstyle(nil), femaleHairstyles...)
	}
	return append([]Hairstyle(nil), maleHairstyles...)
}

// HairstyleScenarios resolves ids against the catalog in request order.
// No ids selects the whole catalog; an unknown id is an error.
func HairstyleScenarios(g Gender, ids []string, locale Locale) ([]Scenario, error) {
	catalog := Hairstyles(g)
	byID := make(map[string]Hairstyle, len(catalog))
	for _, h := range catalog {
		byID[h.ID] = h
	}

	selected := catalog
	if len(ids) > 0 {
		selected = make([]Hairstyle, 0, len(ids))
		seen := make(map[string]struct{}, len(ids))
		for _, raw := range ids {
			id := strings.ToLower(strings.TrimSpace(raw))
			h, ok := byID[id]
			if !ok {
				return nil, fmt.Errorf("unknown hairstyle %q", raw)
			}
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}
			selected = append(selected, h)
		}
	}

	out := make([]Scenario, 0, len(selected))
	for _, h := range selected {
		label, ok := h.Labels[locale]
		if !ok {
			label = h.Labels[DefaultLocale]
		}
		out = append(out, Scenario{
			ID:     h.ID,
			Label:  label,
			Prompt: fmt.Sprintf("Hairstyle: %s, suited to the %s's face shape, natural hair color kept.", h.Description, g.Subject()),
		})
	}
	return out, nil
}

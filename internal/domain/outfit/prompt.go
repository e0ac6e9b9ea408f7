package outfit

import (
	"fmt"
	"strings"

	"github.com/yanqian/daily-look/internal/domain/weather"
)

// Thresholds partition the temperature axis: t < Cold is cold, t < Cool is
// cool, t < Warm is warm, anything above is hot.
type Thresholds struct {
	Cold int
	Cool int
	Warm int
}

// The two families were tuned separately and keep their own cut-offs.
var (
	DressyThresholds = Thresholds{Cold: 10, Cool: 20, Warm: 28}
	CasualThresholds = Thresholds{Cold: 8, Cool: 17, Warm: 25}
)

// ThresholdsFor returns the cut-offs used by family.
func ThresholdsFor(family Family) Thresholds {
	if family == FamilyCasual {
		return CasualThresholds
	}
	return DressyThresholds
}

// ClassifyWeather picks exactly one bucket: snow beats rain beats temperature.
func ClassifyWeather(family Family, snap weather.Snapshot) Bucket {
	switch {
	case snap.Condition == weather.ConditionSnow:
		return BucketSnowy
	case snap.Condition.IsWet():
		return BucketRainy
	}
	th := ThresholdsFor(family)
	switch {
	case snap.Temp < th.Cold:
		return BucketCold
	case snap.Temp < th.Cool:
		return BucketCool
	case snap.Temp < th.Warm:
		return BucketWarm
	default:
		return BucketHot
	}
}

type templateSet map[Bucket]string

var templates = map[Family]map[Gender]templateSet{
	FamilyDressy: {
		GenderFemale: {
			BucketSnowy: "Snow outfit: a long {c1} double-face wool coat over a {c2} cashmere turtleneck, {c3} tailored wool trousers, {c4} waterproof leather knee boots with a lug sole, {accent} leather gloves and a fine knit scarf.",
			BucketRainy: "Rain outfit: a {c1} belted trench coat over a {c2} silk blouse, {c3} tailored cropped trousers, {c4} glossy rubber-soled ankle boots, a {accent} structured bag and a slim umbrella.",
			BucketCold:  "Cold-weather outfit: a {c1} wool wrap coat, a {c2} fine merino knit, a {c3} pleated midi skirt with opaque tights, {c4} leather knee boots, {accent} minimal jewelry.",
			BucketCool:  "Mild-weather outfit: a {c1} tailored blazer over a {c2} silk camisole, {c3} straight-leg trousers, {c4} pointed loafers, a {accent} delicate necklace.",
			BucketWarm:  "Warm-weather outfit: a {c1} linen shirt dress, a {c2} lightweight cardigan over the shoulders, a {c3} woven belt, {c4} strappy block-heel sandals, {accent} earrings.",
			BucketHot:   "Hot-weather outfit: a {c1} breathable slip midi dress, a {c2} sheer linen overshirt, a {c3} raffia bag, {c4} flat leather sandals, {accent} sunglasses.",
		},
		GenderMale: {
			BucketSnowy: "Snow outfit: a {c1} double-face wool overcoat over a {c2} chunky roll-neck sweater, {c3} flannel trousers, {c4} waterproof leather boots with a lug sole, a {accent} cashmere scarf and leather gloves.",
			BucketRainy: "Rain outfit: a {c1} waterproof mac coat over a {c2} oxford shirt and fine knit, {c3} wool trousers, {c4} rubber-soled derby shoes, a {accent} compact umbrella.",
			BucketCold:  "Cold-weather outfit: a {c1} wool overcoat, a {c2} merino turtleneck, {c3} tailored trousers, {c4} Chelsea boots, {accent} leather gloves.",
			BucketCool:  "Mild-weather outfit: a {c1} unstructured blazer over a {c2} knit polo, {c3} pleated chinos, {c4} suede loafers, a {accent} pocket square.",
			BucketWarm:  "Warm-weather outfit: a {c1} linen camp-collar shirt, {c2} lightweight cotton trousers, a {c3} woven leather belt, {c4} loafers, a {accent} watch strap.",
			BucketHot:   "Hot-weather outfit: a {c1} breathable short-sleeve linen shirt, {c2} tailored shorts, a {c3} canvas belt, {c4} espadrilles, {accent} sunglasses.",
		},
	},
	FamilyCasual: {
		GenderFemale: {
			BucketSnowy: "Snow day casual: a {c1} puffer parka, a {c2} fleece-lined hoodie, {c3} thermal leggings, {c4} insulated snow boots, a {accent} knit beanie and mittens.",
			BucketRainy: "Rainy day casual: a {c1} hooded rain jacket, a {c2} striped long-sleeve tee, {c3} straight jeans, {c4} rain boots, a {accent} crossbody bag.",
			BucketCold:  "Cold day casual: a {c1} quilted jacket, a {c2} oversized sweater, {c3} wide-leg jeans, {c4} lug-sole boots, a {accent} beanie.",
			BucketCool:  "Cool day casual: a {c1} utility jacket, a {c2} crew-neck sweatshirt, {c3} relaxed trousers, {c4} retro sneakers, a {accent} baseball cap.",
			BucketWarm:  "Warm day casual: a {c1} boxy cotton tee, a {c2} light overshirt, {c3} straight-leg jeans, {c4} canvas sneakers, a {accent} tote bag.",
			BucketHot:   "Hot day casual: a {c1} ribbed tank top, {c2} loose linen shorts, a {c3} bucket hat, {c4} slide sandals, {accent} sunglasses.",
		},
		GenderMale: {
			BucketSnowy: "Snow day casual: a {c1} down parka, a {c2} heavyweight hoodie, {c3} insulated cargo pants, {c4} waterproof snow boots, a {accent} knit beanie and gloves.",
			BucketRainy: "Rainy day casual: a {c1} hooded shell jacket, a {c2} crew-neck sweatshirt, {c3} tapered joggers, {c4} water-resistant sneakers, a {accent} cap.",
			BucketCold:  "Cold day casual: a {c1} padded bomber, a {c2} waffle-knit thermal, {c3} dark denim, {c4} leather work boots, a {accent} beanie.",
			BucketCool:  "Cool day casual: a {c1} chore jacket, a {c2} heavyweight tee, {c3} relaxed chinos, {c4} suede sneakers, a {accent} cap.",
			BucketWarm:  "Warm day casual: a {c1} short-sleeve overshirt, a {c2} plain tee, {c3} lightweight chinos, {c4} canvas sneakers, a {accent} watch.",
			BucketHot:   "Hot day casual: a {c1} breathable tee, {c2} drawstring shorts, a {c3} bucket hat, {c4} slides, {accent} sunglasses.",
		},
	},
}

// BuildPrompt renders the single-line outfit prompt for one family.
func BuildPrompt(family Family, snap weather.Snapshot, gender Gender, rot Rotation) Scenario {
	gender = ParseGender(string(gender))
	if family != FamilyCasual {
		family = FamilyDressy
	}
	palette := selectPalette(gender, rot.Palette)
	archetype := selectArchetype(gender, family, rot.Archetype)
	bucket := ClassifyWeather(family, snap)

	outfit := strings.NewReplacer(
		"{c1}", palette.C1,
		"{c2}", palette.C2,
		"{c3}", palette.C3,
		"{c4}", palette.C4,
		"{accent}", palette.Accent,
	).Replace(templates[family][gender][bucket])

	parts := []string{
		fmt.Sprintf("%s look for a %s.", titleFamily(family), gender.Subject()),
		weatherLine(snap),
		outfit,
		fmt.Sprintf("Color palette %q: %s, %s, %s and %s with %s accents.", palette.Tone, palette.C1, palette.C2, palette.C3, palette.C4, palette.Accent),
		fmt.Sprintf("STYLING: %s — %s", archetype.Name, archetype.Guide),
	}
	return Scenario{ID: string(family), Prompt: singleLine(strings.Join(parts, " "))}
}

func weatherLine(snap weather.Snapshot) string {
	desc := strings.TrimSpace(snap.Description)
	if desc == "" {
		desc = strings.ToLower(string(snap.Condition))
	}
	if desc == "" {
		desc = "clear sky"
	}
	return fmt.Sprintf("Weather: %s, %d°C (feels like %d°C), humidity %d%%, wind %.1f m/s.", desc, snap.Temp, snap.FeelsLike, snap.Humidity, snap.WindSpeed)
}

func titleFamily(family Family) string {
	if family == FamilyCasual {
		return "Casual"
	}
	return "Dressy"
}

func singleLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

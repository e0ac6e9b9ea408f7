package outfit

import "strings"

// Gender selects the catalog and template set.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// ParseGender maps free-form input onto a catalog gender. Only "female" (and
// its common aliases) select the female catalog; every other value, including
// "other" and the empty string, uses the male catalog.
func ParseGender(raw string) Gender {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "female", "f", "woman", "women":
		return GenderFemale
	default:
		return GenderMale
	}
}

// Subject is the noun used when describing the person in a prompt.
func (g Gender) Subject() string {
	if g == GenderFemale {
		return "woman"
	}
	return "man"
}

// Family identifies one of the two concurrently generated scenario sets.
type Family string

const (
	FamilyDressy Family = "dressy"
	FamilyCasual Family = "casual"
)

// Scenario is a single prompt handed to the image orchestrator.
type Scenario struct {
	ID     string `json:"id"`
	Label  string `json:"label,omitempty"`
	Prompt string `json:"prompt"`
}

// Palette is a curated five-colour outfit palette.
type Palette struct {
	Tone   string `json:"tone"`
	C1     string `json:"c1"`
	C2     string `json:"c2"`
	C3     string `json:"c3"`
	C4     string `json:"c4"`
	Accent string `json:"accent"`
}

// Archetype is a named styling direction appended to every prompt.
type Archetype struct {
	Name  string `json:"name"`
	Guide string `json:"guide"`
}

// Bucket is the discrete weather class that picks an outfit template.
type Bucket string

const (
	BucketSnowy Bucket = "snowy"
	BucketRainy Bucket = "rainy"
	BucketCold  Bucket = "cold"
	BucketCool  Bucket = "cool"
	BucketWarm  Bucket = "warm"
	BucketHot   Bucket = "hot"
)

// Buckets lists every bucket in precedence order.
var Buckets = []Bucket{BucketSnowy, BucketRainy, BucketCold, BucketCool, BucketWarm, BucketHot}

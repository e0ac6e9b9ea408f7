package outfit

import "time"

const (
	paletteCycle          = 21
	dressyArchetypeCycle  = 13
	casualArchetypeCycle  = 7
	casualPaletteOffset   = 7
	casualArchetypeOffset = 2

	millisPerDay = int64(24 * time.Hour / time.Millisecond)
)

// Rotation holds the catalog indices selected for one family on one day.
type Rotation struct {
	Day       int64 `json:"day"`
	Palette   int   `json:"palette"`
	Archetype int   `json:"archetype"`
}

// DayIndex is the number of whole UTC days since the Unix epoch.
func DayIndex(t time.Time) int64 {
	ms := t.UnixMilli()
	day := ms / millisPerDay
	if ms%millisPerDay < 0 {
		day--
	}
	return day
}

// PrimaryRotation drives the dressy family: palette cycles every 21 days and
// archetype every 13, so the pair repeats every 273 days.
func PrimaryRotation(day int64) Rotation {
	return Rotation{
		Day:       day,
		Palette:   mod(day, paletteCycle),
		Archetype: mod(day, dressyArchetypeCycle),
	}
}

// SecondaryRotation drives the casual family with offsets so it never shares
// the primary palette on the same day.
func SecondaryRotation(day int64) Rotation {
	return Rotation{
		Day:       day,
		Palette:   mod(day+casualPaletteOffset, paletteCycle),
		Archetype: mod(day+casualArchetypeOffset, casualArchetypeCycle),
	}
}

// RotationFor returns the rotation of the given family.
func RotationFor(family Family, day int64) Rotation {
	if family == FamilyCasual {
		return SecondaryRotation(day)
	}
	return PrimaryRotation(day)
}

func mod(v int64, n int) int {
	r := int(v % int64(n))
	if r < 0 {
		r += n
	}
	return r
}

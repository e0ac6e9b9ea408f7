package imagegen

import (
	"strings"

	"github.com/yanqian/daily-look/internal/domain/outfit"
)

// Invariance clauses every instruction must carry. Tests pin these strings.
const (
	ClauseFace       = "Do NOT change the person's face"
	ClauseBackground = "Keep the background exactly as it is"
	ClauseFraming    = "Keep the original framing, crop, camera angle, resolution and aspect ratio"
)

// BuildEditInstruction renders the inpainting instruction for one scenario.
func BuildEditInstruction(kind EditKind, gender outfit.Gender, prompt string) string {
	subject := outfit.ParseGender(string(gender)).Subject()
	var b strings.Builder
	b.WriteString("Edit this photo of a " + subject + ". ")
	if kind == EditHairstyle {
		b.WriteString("Change ONLY the hairstyle as described below. ")
		b.WriteString(ClauseFace + ", facial features, expression or identity. ")
		b.WriteString("Do NOT change the body, skin tone, clothing or pose. ")
	} else {
		b.WriteString("Change ONLY the clothing to the outfit described below. ")
		b.WriteString(ClauseFace + ", facial features, expression or identity. ")
		b.WriteString("Do NOT change the body shape, proportions, pose or hands. ")
		b.WriteString("Do NOT change the hair or hairstyle. ")
	}
	b.WriteString(ClauseBackground + ", including lighting and every object. ")
	b.WriteString(ClauseFraming + ". ")
	if kind == EditHairstyle {
		b.WriteString("The new hair must stay within the original head area. ")
	} else {
		b.WriteString("The new clothes must stay strictly within the person's original body silhouette. ")
	}
	b.WriteString("This is an inpainting edit of the existing photo, not a new image. Return only the edited image. ")
	if kind == EditHairstyle {
		b.WriteString("Hairstyle request: ")
	} else {
		b.WriteString("Outfit: ")
	}
	b.WriteString(strings.Join(strings.Fields(prompt), " "))
	return b.String()
}

package outfit

var femalePalettes = [paletteCycle]Palette{
	{Tone: "soft neutral", C1: "ivory", C2: "oatmeal beige", C3: "camel", C4: "chocolate brown", Accent: "gold"},
	{Tone: "cool monochrome", C1: "charcoal grey", C2: "dove grey", C3: "black", C4: "silver grey", Accent: "pearl white"},
	{Tone: "french chic", C1: "navy", C2: "cream", C3: "crisp white", C4: "black", Accent: "red"},
	{Tone: "earthy autumn", C1: "rust", C2: "olive green", C3: "mustard", C4: "cognac brown", Accent: "bronze"},
	{Tone: "pastel spring", C1: "powder pink", C2: "baby blue", C3: "butter yellow", C4: "mint", Accent: "lilac"},
	{Tone: "jewel tone", C1: "emerald green", C2: "sapphire blue", C3: "amethyst purple", C4: "black", Accent: "gold"},
	{Tone: "nautical", C1: "navy", C2: "white", C3: "sky blue", C4: "khaki", Accent: "red"},
	{Tone: "romantic blush", C1: "blush pink", C2: "mauve", C3: "rose beige", C4: "taupe", Accent: "rose gold"},
	{Tone: "tonal camel", C1: "camel", C2: "tan", C3: "sand", C4: "espresso brown", Accent: "gold"},
	{Tone: "scandinavian minimal", C1: "white", C2: "light grey", C3: "black", C4: "stone", Accent: "silver"},
	{Tone: "sage garden", C1: "sage green", C2: "cream", C3: "soft khaki", C4: "dusty brown", Accent: "terracotta"},
	{Tone: "burgundy classic", C1: "burgundy", C2: "blush", C3: "charcoal", C4: "black", Accent: "gold"},
	{Tone: "denim blues", C1: "indigo", C2: "chambray blue", C3: "white", C4: "tan", Accent: "silver"},
	{Tone: "berry winter", C1: "plum", C2: "berry red", C3: "charcoal", C4: "grey marl", Accent: "silver"},
	{Tone: "desert sand", C1: "sand beige", C2: "terracotta", C3: "ecru", C4: "clay brown", Accent: "turquoise"},
	{Tone: "ocean mist", C1: "teal", C2: "seafoam", C3: "dove grey", C4: "navy", Accent: "silver"},
	{Tone: "lavender haze", C1: "lavender", C2: "lilac grey", C3: "ivory", C4: "charcoal", Accent: "silver"},
	{Tone: "cherry cola", C1: "cherry red", C2: "cola brown", C3: "cream", C4: "black", Accent: "gold"},
	{Tone: "butter and chocolate", C1: "butter yellow", C2: "chocolate brown", C3: "cream", C4: "tan", Accent: "gold"},
	{Tone: "forest walk", C1: "forest green", C2: "moss", C3: "oatmeal", C4: "walnut brown", Accent: "copper"},
	{Tone: "black tie", C1: "black", C2: "white", C3: "charcoal", C4: "grey", Accent: "red"},
}

var malePalettes = [paletteCycle]Palette{
	{Tone: "urban neutral", C1: "charcoal", C2: "light grey", C3: "white", C4: "black", Accent: "silver"},
	{Tone: "classic navy", C1: "navy", C2: "white", C3: "mid grey", C4: "brown", Accent: "burgundy"},
	{Tone: "earth tone", C1: "olive", C2: "khaki", C3: "cream", C4: "dark brown", Accent: "rust"},
	{Tone: "autumn heritage", C1: "camel", C2: "forest green", C3: "oatmeal", C4: "cognac", Accent: "mustard"},
	{Tone: "monochrome black", C1: "black", C2: "charcoal", C3: "graphite", C4: "slate", Accent: "white"},
	{Tone: "ivy league", C1: "navy", C2: "burgundy", C3: "oxford blue", C4: "khaki", Accent: "gold"},
	{Tone: "coastal", C1: "sky blue", C2: "white", C3: "sand", C4: "navy", Accent: "tan"},
	{Tone: "workwear", C1: "indigo", C2: "ecru", C3: "olive drab", C4: "tobacco brown", Accent: "orange"},
	{Tone: "stone and slate", C1: "stone", C2: "slate grey", C3: "off-white", C4: "charcoal", Accent: "brass"},
	{Tone: "forest", C1: "forest green", C2: "brown", C3: "cream", C4: "black", Accent: "copper"},
	{Tone: "tonal brown", C1: "chocolate brown", C2: "tan", C3: "taupe", C4: "beige", Accent: "gold"},
	{Tone: "steel blue", C1: "steel blue", C2: "grey", C3: "white", C4: "navy", Accent: "silver"},
	{Tone: "wine and grey", C1: "wine", C2: "heather grey", C3: "charcoal", C4: "black", Accent: "silver"},
	{Tone: "military", C1: "olive", C2: "khaki", C3: "sand", C4: "black", Accent: "brass"},
	{Tone: "mediterranean", C1: "terracotta", C2: "linen white", C3: "sand", C4: "navy", Accent: "turquoise"},
	{Tone: "midnight", C1: "midnight blue", C2: "charcoal", C3: "white", C4: "black", Accent: "silver"},
	{Tone: "sage modern", C1: "sage green", C2: "cream", C3: "stone", C4: "brown", Accent: "tan"},
	{Tone: "rust heritage", C1: "rust", C2: "cream", C3: "denim blue", C4: "dark brown", Accent: "brass"},
	{Tone: "arctic", C1: "white", C2: "ice grey", C3: "pale blue", C4: "charcoal", Accent: "silver"},
	{Tone: "tobacco", C1: "tobacco brown", C2: "olive", C3: "ecru", C4: "espresso", Accent: "gold"},
	{Tone: "tuxedo", C1: "black", C2: "white", C3: "charcoal", C4: "grey", Accent: "burgundy"},
}

var femaleDressyArchetypes = [dressyArchetypeCycle]Archetype{
	{Name: "Quiet Luxury", Guide: "impeccable tailoring in premium fabrics, no visible logos, tonal layering, refined minimal jewelry"},
	{Name: "Parisian Chic", Guide: "effortless polish with a well-cut coat, a fine striped or silk top, a red lip and ballet flats or loafers"},
	{Name: "Modern Minimalist", Guide: "clean architectural lines, monochrome color blocking, one statement silhouette, sleek accessories"},
	{Name: "Romantic Feminine", Guide: "soft drape, subtle ruffles or bows, flowing midi lengths, delicate gold jewelry"},
	{Name: "Power Executive", Guide: "sharp shoulders, matching suit separates, pointed pumps, a structured top-handle bag"},
	{Name: "Old Money", Guide: "heritage knits, pleated skirts or wide trousers, pearls, loafers, understated elegance"},
	{Name: "Editorial Avant-garde", Guide: "unexpected proportions, sculptural outerwear, one bold accessory as the focal point"},
	{Name: "Soft Classic", Guide: "gentle tailoring, cashmere textures, rounded shapes, pearl studs and a simple watch"},
	{Name: "Modern Romantic", Guide: "lace or satin accents paired with tailored pieces, balancing softness and structure"},
	{Name: "Gallery Curator", Guide: "intellectual minimalism with an oversized blazer, a column silhouette, sculptural silver jewelry and sleek flats"},
	{Name: "Evening Elegance", Guide: "satin and silk textures, slip silhouettes under tailored outerwear, strappy heels"},
	{Name: "Timeless Preppy", Guide: "crisp collars, cable knits, tailored trousers, loafers and a structured leather tote"},
	{Name: "Urban Sophisticate", Guide: "city-ready polish with a long coat, sleek boots, a tonal bag and minimal gold hoops"},
}

var maleDressyArchetypes = [dressyArchetypeCycle]Archetype{
	{Name: "Quiet Luxury", Guide: "unbranded premium fabrics, tonal layering, a perfect fit, minimal leather accessories"},
	{Name: "Italian Tailoring", Guide: "soft-shouldered jacket, open collar or knit polo, pleated trousers, suede loafers"},
	{Name: "Modern Minimalist", Guide: "clean lines, monochrome palette, a structured overcoat, sleek leather sneakers or Chelsea boots"},
	{Name: "British Heritage", Guide: "tweed and flannel textures, tattersall shirts, brogues and a knitted tie"},
	{Name: "Power Executive", Guide: "sharp two-piece suit, crisp shirt, silk tie, polished oxfords, slim watch"},
	{Name: "Old Money", Guide: "navy blazer, cable knit over an oxford shirt, chinos, penny loafers, understated watch"},
	{Name: "Smart Casual Creative", Guide: "unstructured blazer over a fine knit, tailored trousers, clean minimalist sneakers"},
	{Name: "Parisian Gentleman", Guide: "slim overcoat, roll neck, straight trousers, suede boots, effortless restraint"},
	{Name: "Ivy Prep", Guide: "oxford button-down, rugby or cable knit, loafers and a canvas belt"},
	{Name: "Urban Sophisticate", Guide: "tonal layers, a technical overcoat, tapered trousers, sleek leather boots"},
	{Name: "Evening Sharp", Guide: "dark suit or tuxedo separates, silk pocket square, polished shoes"},
	{Name: "Scandinavian Clean", Guide: "muted tones, crisp cotton, wool trousers, minimal leather goods, no patterns"},
	{Name: "Gallery Modernist", Guide: "boxy jacket, collarless shirt, wide trousers, architectural footwear"},
}

var femaleCasualArchetypes = [casualArchetypeCycle]Archetype{
	{Name: "Weekend Relaxed", Guide: "easy layers, soft knits, relaxed denim, clean sneakers, a canvas tote"},
	{Name: "Athleisure Chic", Guide: "elevated activewear with sleek joggers, a cropped jacket and chunky trainers"},
	{Name: "Boho Free", Guide: "flowing fabrics, earthy textures, layered jewelry, suede boots or sandals"},
	{Name: "Street Style", Guide: "oversized outerwear, graphic details, wide-leg pants, statement sneakers"},
	{Name: "Normcore Clean", Guide: "basic tees, straight jeans, simple sneakers, understated and comfortable"},
	{Name: "Cafe Casual", Guide: "cardigan or shacket, midi skirt or straight jeans, loafers and a crossbody bag"},
	{Name: "Outdoor Ready", Guide: "functional layers, fleece or shell jacket, cargo pants, trail-inspired sneakers"},
}

var maleCasualArchetypes = [casualArchetypeCycle]Archetype{
	{Name: "Weekend Relaxed", Guide: "overshirt over a tee, relaxed chinos, clean white sneakers"},
	{Name: "Athleisure", Guide: "tech joggers, zip hoodie or bomber, performance sneakers"},
	{Name: "Workwear Rugged", Guide: "chore jacket, heavy denim, henley, leather work boots"},
	{Name: "Street Style", Guide: "oversized hoodie or coach jacket, cargo pants, chunky sneakers, a cap"},
	{Name: "Normcore Clean", Guide: "plain tee, straight jeans, simple sneakers, no logos"},
	{Name: "Skater Casual", Guide: "boxy tee, loose fit pants, canvas skate shoes, a beanie"},
	{Name: "Outdoor Ready", Guide: "fleece or shell, hiking-inspired pants, trail runners, a practical backpack"},
}

// Palettes returns a copy of the palette catalog for gender.
func Palettes(g Gender) []Palette {
	if g == GenderFemale {
		return append([]Palette(nil), femalePalettes[:]...)
	}
	return append([]Palette(nil), malePalettes[:]...)
}

// Archetypes returns a copy of the archetype catalog for gender and family.
func Archetypes(g Gender, family Family) []Archetype {
	switch {
	case family == FamilyCasual && g == GenderFemale:
		return append([]Archetype(nil), femaleCasualArchetypes[:]...)
	case family == FamilyCasual:
		return append([]Archetype(nil), maleCasualArchetypes[:]...)
	case g == GenderFemale:
		return append([]Archetype(nil), femaleDressyArchetypes[:]...)
	default:
		return append([]Archetype(nil), maleDressyArchetypes[:]...)
	}
}

func selectPalette(g Gender, index int) Palette {
	palettes := Palettes(g)
	return palettes[mod(int64(index), len(palettes))]
}

func selectArchetype(g Gender, family Family, index int) Archetype {
	archetypes := Archetypes(g, family)
	return archetypes[mod(int64(index), len(archetypes))]
}

package obfuscate

const zwj = "\u200d"

var (
	people      = []string{"\U0001F468", "\U0001F469", "\U0001F9D1", "\U0001F476", "\U0001F467", "\U0001F466"}
	professions = []string{"\U0001F4BB", "\U0001F373", "\U0001F3A8", "\U0001F52C", "\U0001F692", "\u2708\ufe0f", "\U0001F680", "\u2695\ufe0f", "\U0001F393", "\U0001F527"}
	skinTones   = []string{"\U0001F3FB", "\U0001F3FC", "\U0001F3FD", "\U0001F3FE", "\U0001F3FF"}
)

// catalog is every person+skin-tone+profession combination joined with a
// zero-width joiner. Obfuscated strings lead with one of these, so any
// visual heuristic keyed on the catalog shape still holds after a run.
var catalog = buildCatalog()

func buildCatalog() []string {
	out := make([]string, 0, len(people)*len(skinTones)*len(professions))
	for _, person := range people {
		for _, tone := range skinTones {
			for _, profession := range professions {
				out = append(out, person+tone+zwj+profession)
			}
		}
	}
	return out
}

// textRanges are the code-point ranges random text is drawn from. All of
// them sit below the surrogate block or inside assigned supplementary
// planes, so every generated string is well-formed.
var textRanges = []struct{ lo, hi rune }{
	{0x0041, 0x005A}, // Latin capitals
	{0x0061, 0x007A}, // Latin small
	{0x00C0, 0x00F6}, // Latin-1 letters
	{0x0391, 0x03A9}, // Greek capitals
	{0x03B1, 0x03C9}, // Greek small
	{0x0410, 0x044F}, // Cyrillic
	{0x4E00, 0x4FFF}, // CJK ideographs
	{0x1F300, 0x1F5FF}, // pictographs
}

const (
	minTextRunes = 10
	maxTextRunes = 99
)

// MaxAmount bounds random monetary values: ±5,000,000 milliunits.
const MaxAmount = 5_000_000

// randomText returns one catalog token followed by 10–99 random
// code points from the safe ranges.
func randomText(src Source) string {
	n := minTextRunes + src.IntN(maxTextRunes-minTextRunes+1)
	runes := make([]rune, 0, n)
	for i := 0; i < n; i++ {
		r := textRanges[src.IntN(len(textRanges))]
		runes = append(runes, r.lo+rune(src.IntN(int(r.hi-r.lo)+1)))
	}
	return catalog[src.IntN(len(catalog))] + string(runes)
}

// randomAmount returns a uniform milliunit value in [-MaxAmount, MaxAmount].
func randomAmount(src Source) int64 {
	return src.Int64N(2*MaxAmount+1) - MaxAmount
}

package kinship

import "strings"

// Gender is the normalized grammatical gender a label is rendered in.
type Gender int

// Normalized genders. GenderNeutral leaves labels untouched.
const (
	GenderNeutral Gender = iota
	GenderMasculine
	GenderFeminine
)

// ParseGender normalizes a free-form member gender. Unrecognized values,
// including the empty string, are neutral.
func ParseGender(s string) Gender {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "male", "man", "m", "transgender-man", "demiboy":
		return GenderMasculine
	case "female", "woman", "f", "transgender-woman", "demigirl":
		return GenderFeminine
	default:
		return GenderNeutral
	}
}

// genderedCore maps a neutral core token to its masculine and feminine forms.
var genderedCore = map[string][2]string{
	"parent":              {"father", "mother"},
	"child":               {"son", "daughter"},
	"sibling":             {"brother", "sister"},
	"half-sibling":        {"half-brother", "half-sister"},
	"grandparent":         {"grandfather", "grandmother"},
	"grandchild":          {"grandson", "granddaughter"},
	"aunt/uncle":          {"uncle", "aunt"},
	"niece/nephew":        {"nephew", "niece"},
	"cousin-aunt/uncle":   {"cousin-uncle", "cousin-aunt"},
	"cousin-niece/nephew": {"cousin-nephew", "cousin-niece"},
}

func genderCore(core string, g Gender) string {
	forms, ok := genderedCore[core]
	if !ok {
		return core
	}

	switch g {
	case GenderMasculine:
		return forms[0]
	case GenderFeminine:
		return forms[1]
	default:
		return core
	}
}

// Gendered renders r for a `to` member of the given gender.
func (r Relation) Gendered(gender string) string {
	prefix, core, suffix := r.parts()
	return prefix + genderCore(core, ParseGender(gender)) + suffix
}

// GenderLabel rewrites an already rendered neutral label for the given
// gender. Affixes ("step-", "-in-law", a leading ordinal, any number of
// "great-") are preserved around the core token. Labels with an unmapped
// core, and neutral genders, come back unchanged.
func GenderLabel(label, gender string) string {
	g := ParseGender(gender)
	if g == GenderNeutral {
		return label
	}

	rest := label

	var suffix string
	if s, ok := strings.CutSuffix(rest, "-in-law"); ok {
		rest, suffix = s, "-in-law"
	}

	var prefix strings.Builder

	if s, ok := strings.CutPrefix(rest, "step-"); ok {
		prefix.WriteString("step-")
		rest = s
	}

	if word, s, ok := strings.Cut(rest, " "); ok && isOrdinal(word) {
		prefix.WriteString(word + " ")
		rest = s
	}

	for {
		s, ok := strings.CutPrefix(rest, "great-")
		if !ok {
			break
		}

		prefix.WriteString("great-")
		rest = s
	}

	if _, ok := genderedCore[rest]; !ok {
		return label
	}

	return prefix.String() + genderCore(rest, g) + suffix
}

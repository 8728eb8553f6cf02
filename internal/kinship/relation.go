package kinship

import (
	"strconv"
	"strings"
)

// Kind tags the variant held by a Relation.
type Kind int

// Relation kinds.
const (
	KindUnknown Kind = iota
	KindSelf
	KindSpouse
	KindParent
	KindChild
	KindSibling
	KindAncestor
	KindDescendant
	KindAuntUncle
	KindNieceNephew
	KindCousin
	KindCulturalAuntUncle
	KindCulturalNieceNephew
	KindCousinAuntUncle
	KindCousinNieceNephew
	KindInLaw
	KindStep
)

var kindNames = [...]string{
	KindUnknown:             "unknown",
	KindSelf:                "self",
	KindSpouse:              "spouse",
	KindParent:              "parent",
	KindChild:               "child",
	KindSibling:             "sibling",
	KindAncestor:            "ancestor",
	KindDescendant:          "descendant",
	KindAuntUncle:           "aunt_uncle",
	KindNieceNephew:         "niece_nephew",
	KindCousin:              "cousin",
	KindCulturalAuntUncle:   "cultural_aunt_uncle",
	KindCulturalNieceNephew: "cultural_niece_nephew",
	KindCousinAuntUncle:     "cousin_aunt_uncle",
	KindCousinNieceNephew:   "cousin_niece_nephew",
	KindInLaw:               "in_law",
	KindStep:                "step",
}

// String returns a stable snake_case name, suitable as a metric label.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}

	return kindNames[k]
}

// Relation is the structured answer to "what is `to` to `from`".
//
// Greats counts "great-" prefixes for ancestor, descendant and collateral
// kinds. Level and Removal describe cousins (Level 0 renders as a bare
// "cousin"). Degree is the ordinal used by the cultural aunt/uncle and
// niece/nephew forms. Inner is set for KindInLaw and KindStep.
type Relation struct {
	Kind    Kind      `json:"kind"`
	Greats  int       `json:"greats,omitempty"`
	Level   int       `json:"level,omitempty"`
	Removal int       `json:"removal,omitempty"`
	Degree  int       `json:"degree,omitempty"`
	Inner   *Relation `json:"inner,omitempty"`
}

// Unknown is the answer when no relationship could be found.
func Unknown() Relation { return Relation{Kind: KindUnknown} }

// Self is a member's relation to itself.
func Self() Relation { return Relation{Kind: KindSelf} }

// Spouse is a directly married partner.
func Spouse() Relation { return Relation{Kind: KindSpouse} }

// Parent is a recorded parent, one generation up.
func Parent() Relation { return Relation{Kind: KindParent} }

// Child is a recorded child, one generation down.
func Child() Relation { return Relation{Kind: KindChild} }

// Sibling shares a closest common ancestor one generation up from both sides.
func Sibling() Relation { return Relation{Kind: KindSibling} }

// Ancestor is an ancestor d generations up (d >= 2; 2 = grandparent).
func Ancestor(d int) Relation { return Relation{Kind: KindAncestor, Greats: d - 2} }

// Descendant is a descendant d generations down (d >= 2; 2 = grandchild).
func Descendant(d int) Relation { return Relation{Kind: KindDescendant, Greats: d - 2} }

// AuntUncle is a sibling of an ancestor; greats = 0 is a parent's sibling.
func AuntUncle(greats int) Relation { return Relation{Kind: KindAuntUncle, Greats: greats} }

// NieceNephew is a descendant of a sibling; greats = 0 is a sibling's child.
func NieceNephew(greats int) Relation { return Relation{Kind: KindNieceNephew, Greats: greats} }

// Cousin is an Nth cousin removed the given number of generations.
func Cousin(level, removal int) Relation {
	return Relation{Kind: KindCousin, Level: level, Removal: removal}
}

// CulturalAuntUncle is the conventional "{degree} aunt/uncle" naming of an
// ancestor's cousin.
func CulturalAuntUncle(degree, greats int) Relation {
	return Relation{Kind: KindCulturalAuntUncle, Degree: degree, Greats: greats}
}

// CulturalNieceNephew is the reciprocal of CulturalAuntUncle.
func CulturalNieceNephew(degree, greats int) Relation {
	return Relation{Kind: KindCulturalNieceNephew, Degree: degree, Greats: greats}
}

// CousinAuntUncle is a parent's removed cousin.
func CousinAuntUncle() Relation { return Relation{Kind: KindCousinAuntUncle} }

// CousinNieceNephew is the reciprocal of CousinAuntUncle.
func CousinNieceNephew() Relation { return Relation{Kind: KindCousinNieceNephew} }

// InLaw wraps a relation reached through a marriage.
func InLaw(inner Relation) Relation { return Relation{Kind: KindInLaw, Inner: &inner} }

// Step wraps a relation reached through a parent's or child's marriage.
func Step(inner Relation) Relation { return Relation{Kind: KindStep, Inner: &inner} }

// IsKnown reports whether r names an actual relationship.
func (r Relation) IsKnown() bool { return r.Kind != KindUnknown }

// Label renders the plain, gender-neutral label.
func (r Relation) Label() string {
	prefix, core, suffix := r.parts()
	return prefix + core + suffix
}

// String implements fmt.Stringer.
func (r Relation) String() string { return r.Label() }

// parts splits a rendering into prefix, gendered core token and suffix, so
// that Gendered only has to swap the core.
func (r Relation) parts() (prefix, core, suffix string) {
	switch r.Kind {
	case KindSelf, KindSpouse, KindParent, KindChild, KindSibling, KindUnknown:
		return "", kindCore[r.Kind], ""
	case KindAncestor:
		return greats(r.Greats), "grandparent", ""
	case KindDescendant:
		return greats(r.Greats), "grandchild", ""
	case KindAuntUncle:
		return greats(r.Greats), "aunt/uncle", ""
	case KindNieceNephew:
		return greats(r.Greats), "niece/nephew", ""
	case KindCousin:
		return "", cousinLabel(r.Level, r.Removal), ""
	case KindCulturalAuntUncle:
		return Ordinal(r.Degree) + " " + greats(r.Greats), "aunt/uncle", ""
	case KindCulturalNieceNephew:
		return Ordinal(r.Degree) + " " + greats(r.Greats), "niece/nephew", ""
	case KindCousinAuntUncle:
		return "", "cousin-aunt/uncle", ""
	case KindCousinNieceNephew:
		return "", "cousin-niece/nephew", ""
	case KindInLaw:
		p, c, s := r.inner().parts()
		return p, c, s + "-in-law"
	case KindStep:
		p, c, s := r.inner().parts()
		return "step-" + p, c, s
	default:
		return "", "unknown", ""
	}
}

var kindCore = map[Kind]string{
	KindUnknown: "unknown",
	KindSelf:    "self",
	KindSpouse:  "spouse",
	KindParent:  "parent",
	KindChild:   "child",
	KindSibling: "sibling",
}

func (r Relation) inner() Relation {
	if r.Inner == nil {
		return Unknown()
	}

	return *r.Inner
}

func greats(n int) string {
	if n <= 0 {
		return ""
	}

	return strings.Repeat("great-", n)
}

func cousinLabel(level, removal int) string {
	if level < 1 {
		return "cousin"
	}

	label := Ordinal(level) + " cousin"

	switch {
	case removal <= 0:
		return label
	case removal == 1:
		return label + ", once removed"
	case removal == 2:
		return label + ", twice removed"
	default:
		return label + ", " + strconv.Itoa(removal) + " times removed"
	}
}

// Inverse returns what `from` is to `to` given that r is what `to` is to
// `from`. Cousins keep their level and removal; the generational direction
// of a removal is not part of the label.
func (r Relation) Inverse() Relation {
	switch r.Kind {
	case KindParent:
		return Child()
	case KindChild:
		return Parent()
	case KindAncestor:
		return Relation{Kind: KindDescendant, Greats: r.Greats}
	case KindDescendant:
		return Relation{Kind: KindAncestor, Greats: r.Greats}
	case KindAuntUncle:
		return NieceNephew(r.Greats)
	case KindNieceNephew:
		return AuntUncle(r.Greats)
	case KindCulturalAuntUncle:
		return CulturalNieceNephew(r.Degree, r.Greats)
	case KindCulturalNieceNephew:
		return CulturalAuntUncle(r.Degree, r.Greats)
	case KindCousinAuntUncle:
		return CousinNieceNephew()
	case KindCousinNieceNephew:
		return CousinAuntUncle()
	case KindInLaw:
		return InLaw(r.inner().Inverse())
	case KindStep:
		return Step(r.inner().Inverse())
	default:
		return r
	}
}

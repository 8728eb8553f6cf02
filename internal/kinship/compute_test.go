package kinship

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scenarioFamily: G1 is the parent of siblings P1 and U1; P1 is the parent
// of C1 and U1 of Cousin1.
func scenarioFamily() *family {
	return new(family).
		person("G1", "female").
		person("P1", "male").
		person("U1", "male").
		person("C1", "female").
		person("Cousin1", "male").
		parent("G1", "P1", "U1").
		parent("P1", "C1").
		parent("U1", "Cousin1")
}

func mustCompute(t *testing.T, g *Graph, from, to string) Result {
	t.Helper()

	res, err := Compute(g, from, to)
	require.NoError(t, err)

	return res
}

func TestComputeScenario(t *testing.T) {
	g := scenarioFamily().graph()

	tests := []struct {
		from, to string
		label    string
		path     []string
	}{
		{"C1", "G1", "grandparent", []string{"C1", "P1", "G1"}},
		{"G1", "C1", "grandchild", []string{"G1", "P1", "C1"}},
		{"C1", "Cousin1", "1st cousin", []string{"C1", "P1", "G1", "U1", "Cousin1"}},
		{"C1", "U1", "aunt/uncle", []string{"C1", "P1", "G1", "U1"}},
		{"U1", "C1", "niece/nephew", []string{"U1", "G1", "P1", "C1"}},
		{"P1", "U1", "sibling", []string{"P1", "G1", "U1"}},
		{"C1", "P1", "parent", []string{"C1", "P1"}},
		{"P1", "C1", "child", []string{"P1", "C1"}},
	}

	for _, tt := range tests {
		t.Run(tt.from+"->"+tt.to, func(t *testing.T) {
			res := mustCompute(t, g, tt.from, tt.to)
			assert.Equal(t, tt.label, res.Label())
			assert.Equal(t, tt.path, res.Path)
			assert.Nil(t, res.Cultural)
		})
	}
}

func TestComputeReflexive(t *testing.T) {
	g := scenarioFamily().graph()

	for _, id := range g.IDs() {
		res := mustCompute(t, g, id, id)
		assert.Equal(t, Self(), res.Relation, id)
		assert.Equal(t, []string{id}, res.Path)
	}
}

func TestComputeChain(t *testing.T) {
	// Edges are read child to parent here: A's parent is B, B's parent is C,
	// C's parent is D. Labels name what `to` is to `from`, so A -> D is the
	// great-grandparent and D -> A the great-grandchild.
	g := new(family).
		people("A", "B", "C", "D").
		parent("B", "A").
		parent("C", "B").
		parent("D", "C").
		graph()

	up := mustCompute(t, g, "A", "D")
	assert.Equal(t, "great-grandparent", up.Label())
	assert.Equal(t, []string{"A", "B", "C", "D"}, up.Path)

	down := mustCompute(t, g, "D", "A")
	assert.Equal(t, "great-grandchild", down.Label())
	assert.Equal(t, []string{"D", "C", "B", "A"}, down.Path)
}

func TestComputeSiblings(t *testing.T) {
	g := new(family).
		people("P", "Q", "R", "A", "B", "C", "D").
		parent("P", "A", "B", "C", "D").
		parent("Q", "A", "B").
		parent("R", "C").
		graph()

	tests := []struct {
		from, to string
		half     bool
	}{
		{"A", "B", false},
		{"A", "C", true},
		{"C", "A", true},
		// D has a single recorded parent; that is not evidence of a half relationship.
		{"A", "D", false},
	}

	for _, tt := range tests {
		t.Run(tt.from+"->"+tt.to, func(t *testing.T) {
			res := mustCompute(t, g, tt.from, tt.to)
			assert.Equal(t, Sibling(), res.Relation)
			assert.Equal(t, "sibling", res.Label())
			assert.Equal(t, tt.half, res.HalfSibling)
		})
	}

	assert.False(t, mustCompute(t, g, "P", "A").HalfSibling)
}

// cousinFamily: GP has children X and Y; the X line is A, A2, A3 and the Y
// line is B, B2, B3, B4.
func cousinFamily() *family {
	return new(family).
		people("GP", "X", "Y", "A", "A2", "A3", "B", "B2", "B3", "B4").
		parent("GP", "X", "Y").
		parent("X", "A").
		parent("A", "A2").
		parent("A2", "A3").
		parent("Y", "B").
		parent("B", "B2").
		parent("B2", "B3").
		parent("B3", "B4")
}

func TestComputeCousins(t *testing.T) {
	g := cousinFamily().graph()

	tests := []struct {
		from, to string
		want     string
	}{
		{"A", "B", "1st cousin"},
		{"A2", "B2", "2nd cousin"},
		{"A3", "B3", "3rd cousin"},
		{"A", "B2", "1st cousin, once removed"},
		{"B2", "A", "1st cousin, once removed"},
		{"A", "B3", "1st cousin, twice removed"},
		{"A", "B4", "1st cousin, 3 times removed"},
		{"A2", "B4", "2nd cousin, twice removed"},
		{"A", "Y", "aunt/uncle"},
		{"A2", "Y", "great-aunt/uncle"},
		{"Y", "A3", "great-great-niece/nephew"},
	}

	for _, tt := range tests {
		t.Run(tt.from+"->"+tt.to, func(t *testing.T) {
			assert.Equal(t, tt.want, mustCompute(t, g, tt.from, tt.to).Label())
		})
	}
}

func TestComputeRemovedCousinCulturalAlternate(t *testing.T) {
	f := cousinFamily()
	f.members[6].Gender = "male" // B
	g := f.graph()

	res := mustCompute(t, g, "A2", "B")
	assert.Equal(t, "1st cousin, once removed", res.Label())
	require.NotNil(t, res.Cultural)
	assert.Equal(t, "2nd aunt/uncle", res.CulturalLabel())
	assert.Equal(t, "2nd uncle", res.Cultural.Gendered("male"))

	back := mustCompute(t, g, "B", "A2")
	assert.Equal(t, "1st cousin, once removed", back.Label())
	assert.Equal(t, "2nd niece/nephew", back.CulturalLabel())

	plain := mustCompute(t, g, "A", "B")
	assert.Nil(t, plain.Cultural)
	assert.Empty(t, plain.CulturalLabel())
}

func TestComputeCousinAuntAndNiece(t *testing.T) {
	g := cousinFamily().graph()

	// B is the removed cousin of A3's parent A2.
	res := mustCompute(t, g, "A3", "B")
	assert.Equal(t, "1st cousin, twice removed", res.Label())
	assert.Equal(t, "cousin-aunt/uncle", res.CulturalLabel())
	assert.Equal(t, "cousin-aunt", res.Cultural.Gendered("female"))
	assert.Equal(t, []string{"A3", "A2", "A", "X", "GP", "Y", "B"}, res.Path)

	back := mustCompute(t, g, "B", "A3")
	assert.Equal(t, "1st cousin, twice removed", back.Label())
	assert.Equal(t, "cousin-niece/nephew", back.CulturalLabel())
	assert.Equal(t, "cousin-nephew", back.Cultural.Gendered("m"))
}

func TestComputeSymmetry(t *testing.T) {
	g := cousinFamily().graph()
	ids := g.IDs()

	for _, a := range ids {
		for _, b := range ids {
			ab := mustCompute(t, g, a, b)
			ba := mustCompute(t, g, b, a)

			assert.Equal(t, ab.Relation.Inverse(), ba.Relation, "%s -> %s", a, b)
		}
	}
}

// inLawFamily: X is married to Y; Z is the parent of Y and S; K is the child
// of Y; M is married to K.
func inLawFamily() *family {
	return new(family).
		people("X", "Y", "Z", "S", "K", "M", "W").
		marry("X", "Y").
		parent("Z", "Y", "S").
		parent("Y", "K").
		marry("K", "M").
		marry("S", "W")
}

func TestComputeInLaws(t *testing.T) {
	g := inLawFamily().graph()

	tests := []struct {
		from, to string
		label    string
		path     []string
	}{
		{"X", "Y", "spouse", []string{"X", "Y"}},
		{"X", "Z", "parent-in-law", []string{"X", "Y", "Z"}},
		{"Z", "X", "child-in-law", []string{"Z", "Y", "X"}},
		{"X", "S", "sibling-in-law", []string{"X", "Y", "Z", "S"}},
		{"S", "X", "sibling-in-law", []string{"S", "Z", "Y", "X"}},
		{"X", "K", "step-child", []string{"X", "Y", "K"}},
		{"K", "X", "step-parent", []string{"K", "Y", "X"}},
		{"Y", "M", "child-in-law", []string{"Y", "K", "M"}},
		{"Z", "M", "grandchild-in-law", []string{"Z", "Y", "K", "M"}},
		{"K", "W", "aunt/uncle-in-law", []string{"K", "Y", "Z", "S", "W"}},
		{"W", "K", "niece/nephew-in-law", []string{"W", "S", "Z", "Y", "K"}},
	}

	for _, tt := range tests {
		t.Run(tt.from+"->"+tt.to, func(t *testing.T) {
			res := mustCompute(t, g, tt.from, tt.to)
			assert.Equal(t, tt.label, res.Label())
			assert.Equal(t, tt.path, res.Path)
		})
	}
}

func TestComputeThroughSpouse(t *testing.T) {
	// W is married into the X line of cousinFamily at two depths.
	g := cousinFamily().
		people("W", "V").
		marry("W", "A").
		marry("V", "A3").
		graph()

	tests := []struct {
		from, to string
		label    string
		path     []string
	}{
		{"W", "B", "1st cousin-in-law", []string{"W", "A", "X", "GP", "Y", "B"}},
		{"W", "B2", "1st cousin, once removed-in-law", []string{"W", "A", "X", "GP", "Y", "B", "B2"}},
		{"V", "X", "great-grandparent-in-law", []string{"V", "A3", "A2", "A", "X"}},
		{"V", "GP", "great-great-grandparent-in-law", []string{"V", "A3", "A2", "A", "X", "GP"}},
		{"V", "Y", "great-great-aunt/uncle-in-law", []string{"V", "A3", "A2", "A", "X", "GP", "Y"}},
		{"GP", "V", "great-great-grandchild-in-law", []string{"GP", "X", "A", "A2", "A3", "V"}},
	}

	for _, tt := range tests {
		t.Run(tt.from+"->"+tt.to, func(t *testing.T) {
			res := mustCompute(t, g, tt.from, tt.to)
			assert.Equal(t, tt.label, res.Label())
			assert.Equal(t, tt.path, res.Path)
		})
	}
}

func TestInLawMappings(t *testing.T) {
	spouseOf := []struct {
		rel  Relation
		want string
		ok   bool
	}{
		{Parent(), "step-parent", true},
		{Child(), "child-in-law", true},
		{Sibling(), "sibling-in-law", true},
		{Ancestor(3), "great-grandparent-in-law", true},
		{AuntUncle(1), "great-aunt/uncle-in-law", true},
		{Cousin(1, 0), "", false},
		{Spouse(), "", false},
	}

	for _, tt := range spouseOf {
		got, ok := spouseOfRelative(tt.rel)
		assert.Equal(t, tt.ok, ok, tt.rel.Label())

		if ok {
			assert.Equal(t, tt.want, got.Label())
		}
	}

	through := []struct {
		rel  Relation
		want string
		ok   bool
	}{
		{Parent(), "parent-in-law", true},
		{Sibling(), "sibling-in-law", true},
		{Cousin(2, 1), "2nd cousin, once removed-in-law", true},
		{Descendant(2), "grandchild-in-law", true},
		{Child(), "", false},
		{Spouse(), "", false},
	}

	for _, tt := range through {
		got, ok := throughSpouse(tt.rel)
		assert.Equal(t, tt.ok, ok, tt.rel.Label())

		if ok {
			assert.Equal(t, tt.want, got.Label())
		}
	}
}

func TestComputeBiologicalChildWinsOverStep(t *testing.T) {
	g := new(family).
		people("A", "B", "C").
		marry("A", "B").
		parent("A", "C").
		parent("B", "C").
		graph()

	assert.Equal(t, "child", mustCompute(t, g, "A", "C").Label())
	assert.Equal(t, "parent", mustCompute(t, g, "C", "B").Label())
}

func TestComputeCousinInLaw(t *testing.T) {
	f := scenarioFamily().
		person("CW", "female").
		marry("Cousin1", "CW")
	g := f.graph()

	res := mustCompute(t, g, "C1", "CW")
	assert.Equal(t, "cousin-in-law", res.Label())
	assert.Equal(t, []string{"C1", "P1", "G1", "U1", "Cousin1", "CW"}, res.Path)
}

func TestComputeUnknown(t *testing.T) {
	g := scenarioFamily().person("Stranger", "").graph()

	res := mustCompute(t, g, "C1", "Stranger")
	assert.Equal(t, Unknown(), res.Relation)
	assert.Equal(t, "unknown", res.Label())
	assert.Equal(t, []string{"C1", "Stranger"}, res.Path)
}

func TestComputeCycleTerminates(t *testing.T) {
	g := new(family).
		people("A", "B", "C", "D").
		parent("A", "B").
		parent("B", "A").
		parent("C", "D").
		parent("D", "C").
		graph()

	assert.Equal(t, "child", mustCompute(t, g, "A", "B").Label())
	assert.Equal(t, "unknown", mustCompute(t, g, "A", "C").Label())
}

func TestComputeUnknownMember(t *testing.T) {
	g := scenarioFamily().graph()

	_, err := Compute(g, "C1", "nobody")
	require.ErrorIs(t, err, ErrUnknownMember)
	assert.Contains(t, err.Error(), "nobody")

	_, err = Compute(g, "nobody", "C1")
	require.ErrorIs(t, err, ErrUnknownMember)
}

func TestRelate(t *testing.T) {
	f := scenarioFamily()

	res, err := Relate(f.members, f.edges, "Cousin1", "G1")
	require.NoError(t, err)
	assert.Equal(t, "grandparent", res.Label())
}

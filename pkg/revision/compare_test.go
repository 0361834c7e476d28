package revision

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompareOrdering(t *testing.T) {
	base := MustParse("v0.9.8-760-gabcd1234")

	tests := []struct {
		name  string
		other string
		want  int
	}{
		{"higher distance different commit", "v0.9.8-761-g0123456", -1},
		{"higher patch", "v0.9.9-2", -1},
		{"higher major", "v1.0.0", -1},
		{"higher minor", "v0.10.0", -1},
		{"lower distance", "v0.9.8-759-gabcd1234", 1},
		{"lower patch higher distance", "v0.9.7-9999", 1},
		{"same position no commit", "v0.9.8-760", 0},
		{"same position other commit", "v0.9.8-760-g1234", 0},
		{"identical", "v0.9.8-760-gabcd1234", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			other := MustParse(tt.other)
			assert.Equal(t, tt.want, Compare(base, other))
			assert.Equal(t, -tt.want, Compare(other, base))
			assert.Equal(t, tt.want, base.Compare(other))
			assert.Equal(t, tt.want < 0, base.Less(other))
		})
	}
}

func TestEqualIsCommitSensitive(t *testing.T) {
	a := MustParse("v0.9.8-760-gabcd1234")

	assert.False(t, a.Equal(MustParse("v0.9.8-760")), "present vs absent commit")
	assert.False(t, a.Equal(MustParse("v0.9.8-760-g1234")), "different commit")
	assert.True(t, a.Equal(MustParse("v0.9.8-760-gabcd1234")), "identical strings")
	assert.True(t, a.Equal(MustParse("0.9.8-760-gABCD1234\n")), "same value, different spelling")
	assert.False(t, a.Equal(MustParse("v0.9.8-761-gabcd1234")), "different distance")

	// Ordering and equality disagree here on purpose.
	b := MustParse("v0.9.8-760-g1234")
	assert.Equal(t, 0, Compare(a, b))
	assert.False(t, Equal(a, b))
}

func TestEqualIgnoresStaleValueWhenAbsent(t *testing.T) {
	a := New(1, 2, 3, 4)
	b := New(1, 2, 3, 4)
	b.Commit.Value = 42

	assert.True(t, Equal(a, b))
	assert.False(t, Equal(a, a.WithCommit(0)))
}

func TestKeyMatchesCompare(t *testing.T) {
	tags := []Tag{
		New(0, 0, 0, 1),
		New(0, 0, 1, 0),
		New(0, 1, 0, 0),
		New(1, 0, 0, 0),
		New(0, 65535, 65535, 65535),
		New(65535, 0, 0, 0),
	}
	for i := range tags {
		for j := range tags {
			var want int
			switch {
			case tags[i].Key() < tags[j].Key():
				want = -1
			case tags[i].Key() > tags[j].Key():
				want = 1
			}
			assert.Equal(t, want, Compare(tags[i], tags[j]), "%v vs %v", tags[i], tags[j])
		}
	}
	assert.Equal(t, uint64(0x0001000200030004), New(1, 2, 3, 4).Key())
}

func TestSort(t *testing.T) {
	tags := []Tag{
		MustParse("v1.0.0"),
		MustParse("v0.9.8-760-gbbbb"),
		MustParse("v0.9.9-2"),
		MustParse("v0.9.8-760-gaaaa"),
		MustParse("v0.9.8"),
	}
	Sort(tags)

	got := make([]string, len(tags))
	for i, tag := range tags {
		got[i] = tag.String()
	}
	assert.Equal(t, []string{
		"v0.9.8-0",
		"v0.9.8-760-gbbbb",
		"v0.9.8-760-gaaaa",
		"v0.9.9-2",
		"v1.0.0-0",
	}, got)
}

func TestMax(t *testing.T) {
	_, ok := Max(nil)
	assert.False(t, ok)

	got, ok := Max([]Tag{
		MustParse("v1.2.3-4-g1"),
		MustParse("v1.2.4"),
		MustParse("v1.2.4-0-g2"),
		MustParse("v1.2.3-99"),
	})
	assert.True(t, ok)
	assert.True(t, got.Equal(MustParse("v1.2.4")), "first of equal maxima wins, got %v", got)
}

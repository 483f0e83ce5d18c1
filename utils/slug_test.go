package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"SpacesToHyphens", "Rainbow Butter", "rainbow-butter"},
		{"Lowercases", "GLITTER", "glitter"},
		{"CollapsesRuns", "Super  Kid   Slimes", "super-kid-slimes"},
		{"StripsPunctuation", "Butter & Cloud!", "butter-cloud"},
		{"TrimsEdges", "  -Crunchy-  ", "crunchy"},
		{"KeepsDigits", "Slime 2000", "slime-2000"},
		{"EmptyStaysEmpty", "!!!", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Slugify(tc.in))
		})
	}
}

func TestSlugifyDeterministic(t *testing.T) {
	assert.Equal(t, Slugify("Rainbow Butter"), Slugify("Rainbow Butter"))
}

// internal/matching/skills_test.go
package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeSkills(t *testing.T) {
	tests := []struct {
		name     string
		raw      []string
		expected []string
	}{
		{
			name:     "explicit list",
			raw:      []string{"Cashier", "Thai"},
			expected: []string{"cashier", "thai"},
		},
		{
			name:     "comma delimited string",
			raw:      []string{"cashier, english , barista"},
			expected: []string{"cashier", "english", "barista"},
		},
		{
			name:     "semicolons and whitespace",
			raw:      []string{"cashier;barista", "thai english"},
			expected: []string{"cashier", "barista", "thai", "english"},
		},
		{
			name:     "duplicates collapse",
			raw:      []string{"Cashier", "cashier, CASHIER"},
			expected: []string{"cashier"},
		},
		{
			name:     "empty input",
			raw:      nil,
			expected: nil,
		},
		{
			name:     "blank chunks dropped",
			raw:      []string{"  ", ",,;"},
			expected: nil,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, NormalizeSkills(tc.raw))
		})
	}
}

func TestCountSkillMatches_AgainstTags(t *testing.T) {
	jobSkills := NormalizeSkills([]string{"cashier", "thai"})

	matched, ok := CountSkillMatches([]string{"cashier", "english"}, jobSkills, "")
	assert.True(t, ok)
	assert.Equal(t, 1, matched)

	matched, ok = CountSkillMatches([]string{"cashier", "thai"}, jobSkills, "ignored description")
	assert.True(t, ok)
	assert.Equal(t, 2, matched)
}

func TestCountSkillMatches_DescriptionFallback(t *testing.T) {
	desc := "Looking for a friendly Barista with latte art experience"

	matched, ok := CountSkillMatches([]string{"barista", "cashier"}, nil, desc)
	assert.True(t, ok)
	assert.Equal(t, 1, matched)

	// Tags win over the description when both are present.
	matched, ok = CountSkillMatches([]string{"barista"}, []string{"cashier"}, desc)
	assert.True(t, ok)
	assert.Equal(t, 0, matched)
}

func TestCountSkillMatches_NothingToMatchAgainst(t *testing.T) {
	_, ok := CountSkillMatches([]string{"cashier"}, nil, "   ")
	assert.False(t, ok)
}

func TestCountSkillMatches_EmptyCandidateSkills(t *testing.T) {
	matched, ok := CountSkillMatches(nil, []string{"cashier"}, "")
	assert.True(t, ok)
	assert.Equal(t, 0, matched)
}

package views

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mentionbox/internal/domain"
)

func TestDirectoryRendersOneLinePerCandidateInOrder(t *testing.T) {
	r := NewDirectoryRenderer(NewStyles())
	out := r.Render([]domain.Candidate{
		{ID: 10, FirstName: "Zed", LastName: "Zulu", Email: "z@example.com", Gender: "Male"},
		{ID: 2, FirstName: "Amy", LastName: "Lee", Email: "amy@example.com", Gender: "Female"},
	})

	assert.Contains(t, out, "Directory (2 users)")
	lines := strings.Split(out, "\n")
	require.GreaterOrEqual(t, len(lines), 4)

	last := lines[len(lines)-2:]
	assert.Contains(t, last[0], "@Zed Zulu")
	assert.Contains(t, last[0], "z@example.com")
	assert.Contains(t, last[1], "@Amy Lee")
	assert.Contains(t, last[1], "Female")
}

func TestDirectoryEmpty(t *testing.T) {
	out := NewDirectoryRenderer(NewStyles()).Render(nil)
	assert.Contains(t, out, "Directory (0 users)")
	assert.Contains(t, out, "Mention")
}

func TestPad(t *testing.T) {
	assert.Equal(t, "ab  ", pad("ab", 4))
	assert.Equal(t, "abcdef", pad("abcdef", 3))
}

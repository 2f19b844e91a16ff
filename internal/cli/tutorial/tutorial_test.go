package tutorial

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/taskboard/internal/testutil"
)

func TestTutorial_Raw(t *testing.T) {
	stdout, _, err := testutil.ExecuteCommand(t, TutorialCmd(), "--raw")
	require.NoError(t, err)
	assert.Equal(t, tutorialContent, stdout)
}

func TestTutorial_Rendered(t *testing.T) {
	stdout, _, err := testutil.ExecuteCommand(t, TutorialCmd())
	require.NoError(t, err)
	assert.Contains(t, stdout, "taskboard board reset --yes")
	assert.NotContains(t, stdout, "```")
}

package cmd

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMenu_RepromptsOnInvalidChoice(t *testing.T) {
	source := writeSource(t, employees)

	out, _, err := execute(t, "7\nabc\n1\n", "--source", source)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "Loaded 3 records from "+source+"\n"))
	assert.Contains(t, out, "1) Show department hierarchy\n")
	assert.Contains(t, out, "3) Save department summary report\n")
	assert.Equal(t, 2, strings.Count(out, "Invalid choice, try again."))
	assert.True(t, strings.HasSuffix(out, "- Разработка\n  • Backend\n"))
}

func TestMenu_Subcommand(t *testing.T) {
	source := writeSource(t, employees)

	out, _, err := execute(t, "summary\n", "menu", "--source", source)
	require.NoError(t, err)
	assert.Contains(t, out, "77500")
}

func TestMenu_EndOfInput(t *testing.T) {
	source := writeSource(t, employees)

	_, _, err := execute(t, "", "--source", source)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errNoChoice))
}

func TestMenu_SourceNotFoundBeforePrompt(t *testing.T) {
	out, _, err := execute(t, "1\n", "--source", "does-not-exist.csv")
	require.Error(t, err)
	assert.NotContains(t, out, "Select a report")
}

package status

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"repoaccess/internal/shared/errors"
)

const fixturePath = "../fixture/testdata/repository.yaml"

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	color.NoColor = true

	var out bytes.Buffer
	cmd := NewCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestStatusCommand_EmbargoedItem(t *testing.T) {
	out, err := run(t, "--fixture", fixturePath, "--object", "thesis-1", "--now", "2024-01-01")
	require.NoError(t, err)

	assert.Equal(t, "Object\tthesis-1 (item)\n"+
		"Status\tembargo\n"+
		"Embargo\t2020-01-01\n"+
		"Until\t2030-01-01\n"+
		"Global\topenaccess\n"+
		"Types\topenaccess, embargo\n"+
		"Metadata\tdcterms.accessRights should be embargo\n", out)
}

func TestStatusCommand_AfterEmbargo(t *testing.T) {
	out, err := run(t, "--fixture", fixturePath, "--object", "bs-2", "--now", "2031-06-01")
	require.NoError(t, err)

	// no valid policy remains and the file carries no access metadata
	assert.Equal(t, "Object\tbs-2 (bitstream)\nStatus\topenaccess\n", out)
}

func TestStatusCommand_MetadataFallback(t *testing.T) {
	out, err := run(t, "--fixture", fixturePath, "--object", "article-1", "--now", "2024-01-01")
	require.NoError(t, err)

	assert.Contains(t, out, "Status\trestricted\n")
	assert.Contains(t, out, "Metadata\tdcterms.accessRights should be restricted\n")
	assert.NotContains(t, out, "Global")
}

func TestStatusCommand_Apply(t *testing.T) {
	out, err := run(t, "--fixture", fixturePath, "--object", "thesis-1", "--now", "2024-01-01", "--apply")
	require.NoError(t, err)
	assert.Contains(t, out, "Metadata\tdcterms.accessRights = embargo\n")
	assert.NotContains(t, out, "should be")

	out, err = run(t, "--fixture", fixturePath, "--object", "thesis-1", "--now", "2031-06-01", "--apply")
	require.NoError(t, err)
	assert.Contains(t, out, "Status\topenaccess\n")
	assert.Contains(t, out, "Metadata\tdcterms.accessRights = openaccess\n")
}

func TestStatusCommand_Errors(t *testing.T) {
	_, err := run(t, "--fixture", fixturePath, "--object", "missing")
	assert.True(t, errors.IsNotFoundError(err))

	_, err = run(t, "--fixture", fixturePath, "--object", "thesis-1", "--now", "soon")
	assert.True(t, errors.IsValidationError(err))

	_, err = run(t, "--object", "thesis-1")
	assert.Error(t, err)
}

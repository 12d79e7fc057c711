package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/gnkore/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeInput(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "projects.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestGetValidateCmd(t *testing.T) {
	cmd := getValidateCmd()
	require.NotNil(t, cmd)
	assert.Equal(t, "validate", cmd.Name())
	assert.NotNil(t, cmd.RunE)
	assert.Error(t, cmd.Args(cmd, nil))
}

func TestRunValidate(t *testing.T) {
	path := writeInput(t, "PRJEB12345\n\nPRJNA000001, my note\n")

	buf := new(bytes.Buffer)
	err := runValidate(buf, path)
	require.NoError(t, err)
	assert.Equal(t, "PRJEB12345\tNA\nPRJNA000001\tmy note\n", buf.String())
}

func TestRunValidate_Errors(t *testing.T) {
	tests := []struct {
		msg     string
		content string
		code    gn.ErrorCode
	}{
		{"invalid", "PRJEB1\nGCA_000001405.29\n",
			errcode.InvalidAccessionFormatError},
		{"empty", "\n  \n", errcode.InputEmptyError},
	}

	for _, v := range tests {
		t.Run(v.msg, func(t *testing.T) {
			buf := new(bytes.Buffer)
			err := runValidate(buf, writeInput(t, v.content))
			require.Error(t, err)
			assert.Empty(t, buf.String())

			var gnErr *gn.Error
			require.True(t, errors.As(err, &gnErr))
			assert.Equal(t, v.code, gnErr.Code)
		})
	}
}

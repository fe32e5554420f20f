package lib

import (
	"io/ioutil"
	"os"
	"path"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeScript(t *testing.T, dir string, name string, contents string) string {
	filePath := path.Join(dir, name)
	err := ioutil.WriteFile(filePath, []byte(contents), 0644)
	require.NoError(t, err)
	return filePath
}

func TestReadScriptFromFile(t *testing.T) {
	dir, err := ioutil.TempDir("", "calcscripts")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	filePath := writeScript(t, dir, "basic.calc", `
# a comment line
2 + 2

3 * (1 + 1)
`)

	script, err := Evaluator{}.ReadScriptFromFile(filePath)
	require.NoError(t, err)
	require.Equal(t, "basic", script.Name)
	require.False(t, script.Failed())
	require.Len(t, script.Results, 2)

	require.Equal(t, 3, script.Results[0].Line)
	require.Equal(t, "2 + 2", script.Results[0].Expression)
	require.Equal(t, 4.0, script.Results[0].Value)

	require.Equal(t, 5, script.Results[1].Line)
	require.Equal(t, 6.0, script.Results[1].Value)
}

func TestReadScriptRecordsErrors(t *testing.T) {
	dir, err := ioutil.TempDir("", "calcscripts")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	filePath := writeScript(t, dir, "errors.calc", "1 + 1\n1 / 0\n2 * 3\n")

	script, err := Evaluator{}.ReadScriptFromFile(filePath)
	require.NoError(t, err)
	require.True(t, script.Failed())
	require.Len(t, script.Results, 3)

	require.NoError(t, script.Results[0].Err)
	requireEvalErr(t, script.Results[1].Err, ErrDivisionByZero)
	require.Equal(t, 2, script.Results[1].Line)
	require.NoError(t, script.Results[2].Err)
	require.Equal(t, 6.0, script.Results[2].Value)
}

func TestReadScriptsFromDir(t *testing.T) {
	dir, err := ioutil.TempDir("", "calcscripts")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	writeScript(t, dir, "a.calc", "1 + 1\n")
	writeScript(t, dir, "b.calc", "2 + 2\n")

	scripts, err := Evaluator{}.ReadScriptsFromDir(dir)
	require.NoError(t, err)
	require.Len(t, scripts, 2)
	require.Equal(t, "a", scripts[0].Name)
	require.Equal(t, "b", scripts[1].Name)
}

func TestReadScriptMissingFile(t *testing.T) {
	_, err := Evaluator{}.ReadScriptFromFile("does/not/exist.calc")
	require.Error(t, err)
}

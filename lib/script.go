package lib

import (
	"io/ioutil"
	"path"
	"strings"
)

// ScriptResult is the outcome of one line of a script: the value, or the
// error with the 1-based line it came from.
type ScriptResult struct {
	Line       int
	Expression string
	Value      float64
	Err        error
}

type Script struct {
	Name    string
	Path    string
	Results []ScriptResult
}

// Failed reports whether any line of the script failed to evaluate.
func (s Script) Failed() bool {
	for _, r := range s.Results {
		if r.Err != nil {
			return true
		}
	}
	return false
}

// ReadScriptsFromDir evaluates every script file in dir.
func (e Evaluator) ReadScriptsFromDir(dir string) ([]Script, error) {
	files, err := ioutil.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	scripts := []Script{}

	for _, file := range files {
		if file.IsDir() {
			continue
		}
		filePath := path.Join(dir, file.Name())
		s, err := e.ReadScriptFromFile(filePath)
		if err != nil {
			return nil, err
		}
		scripts = append(scripts, s)
	}

	return scripts, nil
}

// ReadScriptFromFile evaluates a script file holding one expression per
// line. Blank lines and lines starting with '#' are skipped. Evaluation
// errors do not stop the script; they are recorded per line.
func (e Evaluator) ReadScriptFromFile(filePath string) (Script, error) {
	bytes, err := ioutil.ReadFile(filePath)
	if err != nil {
		return Script{}, err
	}

	script := Script{
		Name:    scriptNameFromPath(filePath),
		Path:    filePath,
		Results: []ScriptResult{},
	}

	for i, line := range strings.Split(string(bytes), "\n") {
		expression := strings.TrimSpace(line)
		if expression == "" || strings.HasPrefix(expression, "#") {
			continue
		}

		value, err := e.Evaluate(expression)
		script.Results = append(script.Results, ScriptResult{
			Line:       i + 1,
			Expression: expression,
			Value:      value,
			Err:        err,
		})
	}

	return script, nil
}

func scriptNameFromPath(filePath string) string {
	_, fileName := path.Split(filePath)
	parts := strings.Split(fileName, ".")
	return parts[0]
}

package custom

import (
	"errors"
	"fmt"
	"os"

	"go.starlark.net/starlark"
	"go.starlark.net/starlarkstruct"

	"github.com/leapstack-labs/contentlint/pkg/core"
	"github.com/leapstack-labs/contentlint/pkg/lint"
	"github.com/leapstack-labs/contentlint/pkg/prose"
)

func init() {
	lint.Register(Script)
}

// Script runs a Starlark check function supplied by the user.
var Script = lint.RuleDef{
	ID:          "custom-script",
	Name:        "custom.script",
	Group:       "custom",
	Description: "Run a user-supplied Starlark check(doc) function.",
	Severity:    lint.SeverityFail,
	ConfigKeys:  []string{"script", "source", "max_steps"},
	Setup:       setupScript,
	Rationale:   "House style rules that are too specific to ship as built-ins can be written as small scripts.",
	Fix:         "See the message produced by the script.",
}

// DefaultMaxSteps bounds the work one check call may do.
const DefaultMaxSteps = 1_000_000

const checkFunc = "check"

var (
	errNoScript      = errors.New("custom-script needs a script or source option")
	errNoCheckFunc   = errors.New("script does not define check(doc)")
	errInvalidResult = errors.New("check must return a list of dicts")
)

// script is a loaded module whose check function is shared across documents.
// Module globals are frozen after loading, so concurrent calls are safe.
type script struct {
	name     string
	check    starlark.Callable
	maxSteps uint64
}

func setupScript(opts map[string]any) (lint.CheckFunc, error) {
	name := lint.GetStringOption(opts, "script", "")
	var src any
	switch {
	case name != "":
		data, err := os.ReadFile(name) //nolint:gosec // G304: path comes from the user's own configuration
		if err != nil {
			return nil, fmt.Errorf("read script: %w", err)
		}
		src = data
	case lint.GetStringOption(opts, "source", "") != "":
		name = "<source>"
		src = lint.GetStringOption(opts, "source", "")
	default:
		return nil, errNoScript
	}

	s := &script{
		name:     name,
		maxSteps: uint64(max(lint.GetIntOption(opts, "max_steps", DefaultMaxSteps), 1)),
	}

	thread := s.newThread()
	globals, err := starlark.ExecFile(thread, name, src, predeclared(opts)) //nolint:staticcheck // SA1019: will migrate to ExecFileOptions later
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", name, err)
	}

	fn, ok := globals[checkFunc].(starlark.Callable)
	if !ok {
		return nil, fmt.Errorf("%s: %w", name, errNoCheckFunc)
	}
	s.check = fn
	return s.run, nil
}

func (s *script) newThread() *starlark.Thread {
	thread := &starlark.Thread{
		Name: s.name,
		Print: func(_ *starlark.Thread, _ string) {
			// scripts report through their return value
		},
	}
	thread.SetMaxExecutionSteps(s.maxSteps)
	return thread
}

func (s *script) run(doc *core.Document, _ map[string]any) ([]lint.Finding, error) {
	result, err := starlark.Call(s.newThread(), s.check, starlark.Tuple{docValue(doc)}, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.name, err)
	}
	if result == starlark.None {
		return nil, nil
	}

	items, err := toGo(result)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.name, err)
	}
	list, ok := items.([]any)
	if !ok {
		return nil, fmt.Errorf("%s: %w, got %s", s.name, errInvalidResult, result.Type())
	}

	findings := make([]lint.Finding, 0, len(list))
	for i, item := range list {
		m, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%s: item %d: %w", s.name, i, errInvalidResult)
		}
		f, err := toFinding(doc, m)
		if err != nil {
			return nil, fmt.Errorf("%s: item %d: %w", s.name, i, err)
		}
		findings = append(findings, f)
	}
	return findings, nil
}

// toFinding builds a finding from one returned dict. Without a start offset
// the finding has no snippet or line.
func toFinding(doc *core.Document, m map[string]any) (lint.Finding, error) {
	sevName, _ := m["severity"].(string)
	if sevName == "" {
		sevName = core.SeverityWarn.String()
	}
	sev, ok := core.ParseSeverity(sevName)
	if !ok {
		return lint.Finding{}, fmt.Errorf("unknown severity %q", sevName)
	}
	msg, _ := m["message"].(string)
	if msg == "" {
		return lint.Finding{}, errors.New("message is required")
	}

	var f lint.Finding
	if start, ok := m["start"].(int); ok {
		end, ok := m["end"].(int)
		if !ok || end < start {
			end = start
		}
		if start < 0 || end > len(doc.Text) {
			return lint.Finding{}, fmt.Errorf("span [%d, %d) outside text of length %d", start, end, len(doc.Text))
		}
		f = lint.At(doc, sev, msg, start, end)
	} else {
		f = lint.Finding{Severity: sev, Message: msg, Details: map[string]any{}}
	}

	if details, ok := m["details"].(map[string]any); ok {
		for k, v := range details {
			f = f.With(k, v)
		}
	}
	return f, nil
}

func docValue(doc *core.Document) starlark.Value {
	return starlarkstruct.FromStringDict(starlark.String("document"), starlark.StringDict{
		"path":     starlark.String(doc.Path),
		"text":     starlark.String(doc.Text),
		"raw":      starlark.String(doc.Raw),
		"metadata": dictOf(doc.Metadata),
	})
}

// predeclared returns the helpers every script can call, plus config.
// The values are frozen because one module serves concurrent checks.
func predeclared(opts map[string]any) starlark.StringDict {
	globals := starlark.StringDict{
		"config":       dictOf(opts),
		"words":        starlark.NewBuiltin("words", builtinWords),
		"sentences":    starlark.NewBuiltin("sentences", builtinSentences),
		"find_all":     starlark.NewBuiltin("find_all", builtinFindAll),
		"per_thousand": starlark.NewBuiltin("per_thousand", builtinPerThousand),
	}
	globals.Freeze()
	return globals
}

func stringList(items []string) *starlark.List {
	vals := make([]starlark.Value, len(items))
	for i, s := range items {
		vals[i] = starlark.String(s)
	}
	return starlark.NewList(vals)
}

func builtinWords(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var text string
	if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 1, &text); err != nil {
		return nil, err
	}
	return stringList(prose.TokenizeWords(text)), nil
}

func builtinSentences(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var text string
	if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 1, &text); err != nil {
		return nil, err
	}
	return stringList(prose.SplitSentences(text)), nil
}

// find_all(pattern, text) returns (start, end) byte offsets of every
// case-insensitive match.
func builtinFindAll(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var pattern, text string
	if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 2, &pattern, &text); err != nil {
		return nil, err
	}
	spans, err := prose.FindAll(text, pattern)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", b.Name(), err)
	}
	vals := make([]starlark.Value, len(spans))
	for i, sp := range spans {
		vals[i] = starlark.Tuple{starlark.MakeInt(sp.Start), starlark.MakeInt(sp.End)}
	}
	return starlark.NewList(vals), nil
}

func builtinPerThousand(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var count, total int
	if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 2, &count, &total); err != nil {
		return nil, err
	}
	return starlark.Float(prose.WordsPerThousand(count, total)), nil
}

package jsonpatch

import (
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
)

// Op is a single RFC 6902 JSON Patch operation.
type Op struct {
	Op    string `json:"op"`
	Path  string `json:"path"`
	Value any    `json:"value,omitempty"`
}

// DiffBoth computes the forward patch transforming a into b and the backward
// patch transforming b into a in a single traversal. Both a and b must be
// generic JSON trees (the result of unmarshaling into any); pass "" as the
// path for the root document.
func DiffBoth(a, b any, path string) (fwd, bwd []Op) {
	if a == nil && b == nil {
		return nil, nil
	}
	if a == nil || b == nil {
		return []Op{{Op: "replace", Path: path, Value: b}},
			[]Op{{Op: "replace", Path: path, Value: a}}
	}

	if aMap, ok := a.(map[string]any); ok {
		if bMap, ok := b.(map[string]any); ok {
			return diffObjects(aMap, bMap, path)
		}
	}
	if aArr, ok := a.([]any); ok {
		if bArr, ok := b.([]any); ok {
			return diffArrays(aArr, bArr, path)
		}
	}

	if a != b {
		return []Op{{Op: "replace", Path: path, Value: b}},
			[]Op{{Op: "replace", Path: path, Value: a}}
	}
	return nil, nil
}

// Diff is the forward half of DiffBoth.
func Diff(a, b any, path string) []Op {
	fwd, _ := DiffBoth(a, b, path)
	return fwd
}

// DiffValues marshals two typed values through JSON and diffs the resulting
// generic trees. Marshal errors yield empty patches; the values this package
// is used with are plain data and always marshal.
func DiffValues(a, b any) (fwd, bwd []Op) {
	at, aok := toTree(a)
	bt, bok := toTree(b)
	if !aok || !bok {
		return nil, nil
	}
	return DiffBoth(at, bt, "")
}

func toTree(v any) (any, bool) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, false
	}
	var tree any
	if err := json.Unmarshal(raw, &tree); err != nil {
		return nil, false
	}
	return tree, true
}

func diffObjects(a, b map[string]any, path string) (fwd, bwd []Op) {
	for k, av := range a {
		childPath := path + "/" + escapeToken(k)
		if _, ok := b[k]; !ok {
			fwd = append(fwd, Op{Op: "remove", Path: childPath})
			bwd = append(bwd, Op{Op: "add", Path: childPath, Value: av})
		}
	}

	for k, bv := range b {
		childPath := path + "/" + escapeToken(k)
		av, inA := a[k]
		if !inA {
			fwd = append(fwd, Op{Op: "add", Path: childPath, Value: bv})
			bwd = append(bwd, Op{Op: "remove", Path: childPath})
			continue
		}
		subFwd, subBwd := DiffBoth(av, bv, childPath)
		fwd = append(fwd, subFwd...)
		bwd = append(bwd, subBwd...)
	}

	return fwd, bwd
}

func diffArrays(a, b []any, path string) (fwd, bwd []Op) {
	minLen := len(a)
	if len(b) < minLen {
		minLen = len(b)
	}

	for i := 0; i < minLen; i++ {
		childPath := path + "/" + strconv.Itoa(i)
		subFwd, subBwd := DiffBoth(a[i], b[i], childPath)
		fwd = append(fwd, subFwd...)
		bwd = append(bwd, subBwd...)
	}

	// Removals run in descending index order so earlier removals do not shift
	// the paths of later ones; additions run ascending.
	for i := len(a) - 1; i >= minLen; i-- {
		fwd = append(fwd, Op{Op: "remove", Path: path + "/" + strconv.Itoa(i)})
	}
	for i := minLen; i < len(a); i++ {
		bwd = append(bwd, Op{Op: "add", Path: path + "/" + strconv.Itoa(i), Value: a[i]})
	}

	for i := minLen; i < len(b); i++ {
		fwd = append(fwd, Op{Op: "add", Path: path + "/" + strconv.Itoa(i), Value: b[i]})
	}
	for i := len(b) - 1; i >= minLen; i-- {
		bwd = append(bwd, Op{Op: "remove", Path: path + "/" + strconv.Itoa(i)})
	}

	return fwd, bwd
}

// escapeToken escapes a JSON Pointer token per RFC 6901.
func escapeToken(s string) string {
	s = strings.ReplaceAll(s, "~", "~0")
	s = strings.ReplaceAll(s, "/", "~1")
	return s
}

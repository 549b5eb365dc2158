package ir

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrBadPath  = errors.New("bad path")
	ErrNotFound = errors.New("not found")
)

// GetPath returns the element at path, in the form produced by Path. A
// leading slash starts at the root of y, whose name must match the first
// step; otherwise steps name children of y. A step without an index
// selects the first child of that name.
func (y *Node) GetPath(path string) (*Node, error) {
	cur := y
	rest := path
	if strings.HasPrefix(path, "/") {
		cur = y.Root()
		rest = path[1:]
		name, i, err := step(firstStep(rest))
		if err != nil {
			return nil, fmt.Errorf("%w %q: %w", ErrBadPath, path, err)
		}
		if name != cur.Name || i != 0 {
			return nil, fmt.Errorf("%w: %q has root %s", ErrNotFound, path, cur.Name)
		}
		rest = strings.TrimPrefix(rest, firstStep(rest))
		rest = strings.TrimPrefix(rest, "/")
	}
	if rest == "" {
		return cur, nil
	}
	for _, s := range strings.Split(rest, "/") {
		name, i, err := step(s)
		if err != nil {
			return nil, fmt.Errorf("%w %q: %w", ErrBadPath, path, err)
		}
		all := All(cur, name)
		if i >= len(all) {
			return nil, fmt.Errorf("%w: %s[%d] in %s", ErrNotFound, name, i, cur.Path())
		}
		cur = all[i]
	}
	return cur, nil
}

func firstStep(p string) string {
	if i := strings.IndexByte(p, '/'); i >= 0 {
		return p[:i]
	}
	return p
}

func step(s string) (string, int, error) {
	if s == "" {
		return "", 0, errors.New("empty step")
	}
	open := strings.IndexByte(s, '[')
	if open < 0 {
		return s, 0, nil
	}
	if open == 0 || !strings.HasSuffix(s, "]") {
		return "", 0, fmt.Errorf("malformed step %q", s)
	}
	i, err := strconv.Atoi(s[open+1 : len(s)-1])
	if err != nil || i < 0 {
		return "", 0, fmt.Errorf("bad index in %q", s)
	}
	return s[:open], i, nil
}

package gate

import (
	"path"
	"slices"
	"strings"
)

// Policy selects which changes are validated
// immutable after construction and safe for concurrent use
type Policy struct {
	exts  map[string]struct{}
	kinds map[ChangeKind]struct{}
}

// DefaultPolicy validates added and modified yaml and yml files
func DefaultPolicy() Policy {
	return NewPolicy([]string{"yaml", "yml"})
}

// NewPolicy builds a policy for the given extensions
// extensions are matched case-insensitively and may carry a leading dot
// kinds default to added and modified when none are given
func NewPolicy(exts []string, kinds ...ChangeKind) Policy {
	p := Policy{
		exts:  make(map[string]struct{}, len(exts)),
		kinds: make(map[ChangeKind]struct{}, 2),
	}
	for _, e := range exts {
		e = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(e), "."))
		if e != "" {
			p.exts[e] = struct{}{}
		}
	}
	if len(kinds) == 0 {
		kinds = []ChangeKind{KindAdded, KindModified}
	}
	for _, k := range kinds {
		p.kinds[k] = struct{}{}
	}
	return p
}

// Eligible reports whether c must be validated
func (p Policy) Eligible(c Change) bool {
	ok, _ := p.check(c)
	return ok
}

// check returns eligibility with a short reason for skip logs
func (p Policy) check(c Change) (bool, string) {
	if _, ok := p.kinds[c.Kind]; !ok {
		return false, "kind"
	}
	ext := Extension(c.Path)
	if ext == "" {
		return false, "no extension"
	}
	if _, ok := p.exts[ext]; !ok {
		return false, "extension"
	}
	return true, ""
}

// Extensions returns the allowed extensions sorted
func (p Policy) Extensions() []string {
	out := make([]string, 0, len(p.exts))
	for e := range p.exts {
		out = append(out, e)
	}
	slices.Sort(out)
	return out
}

// Extension returns the lower-cased text after the last dot of the final path element
// returns "" when the name has no dot or ends with one
func Extension(p string) string {
	base := path.Base(strings.ReplaceAll(p, "\\", "/"))
	i := strings.LastIndexByte(base, '.')
	if i < 0 || i == len(base)-1 {
		return ""
	}
	return strings.ToLower(base[i+1:])
}

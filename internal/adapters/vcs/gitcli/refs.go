package gitcli

import (
	"bufio"
	"io"
	"strings"

	"yamlgate/internal/core/gate"
	perr "yamlgate/internal/platform/errors"
)

// RefUpdate is one line of pre-receive input
type RefUpdate struct {
	Old gate.Revision
	New gate.Revision
	Ref string
}

// ParseRefUpdates reads "<old> <new> <ref>" lines as git feeds them to pre-receive
func ParseRefUpdates(r io.Reader) ([]RefUpdate, error) {
	var out []RefUpdate
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		s := strings.TrimSpace(sc.Text())
		if s == "" {
			continue
		}
		f := strings.Fields(s)
		if len(f) != 3 {
			return nil, perr.InvalidArgf("pre-receive line %d: want <old> <new> <ref>, got %q", line, s)
		}
		out = append(out, RefUpdate{Old: gate.Revision(f[0]), New: gate.Revision(f[1]), Ref: f[2]})
	}
	if err := sc.Err(); err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeUnavailable, "read pre-receive input")
	}
	return out, nil
}

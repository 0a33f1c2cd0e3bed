package service

import (
	"errors"
	"testing"

	"yamlgate/internal/core/gate"
	"yamlgate/internal/services/gatekeeper/domain"
)

func TestMessages(t *testing.T) {
	if got, want := PushMessage("", "a/b.yaml", "yaml: line 3: oops"), "Invalid YAML content detected when reading file a/b.yaml: yaml: line 3: oops"; got != want {
		t.Fatalf("PushMessage = %q, want %q", got, want)
	}
	if got, want := DeclineComment("YAML", "a.yml", "yaml: line 1: x"), "Invalid YAML content detected when reading file a.yml: \n```\nyaml: line 1: x```"; got != want {
		t.Fatalf("DeclineComment = %q, want %q", got, want)
	}
	if got, want := PushMessage("TOML", "c.toml", "line 1, column 2: bad"), "Invalid TOML content detected when reading file c.toml: line 1, column 2: bad"; got != want {
		t.Fatalf("PushMessage = %q, want %q", got, want)
	}
	if got, want := FailureMessage(errors.New("boom")), "Could not validate changes: boom"; got != want {
		t.Fatalf("FailureMessage = %q, want %q", got, want)
	}
}

func TestDecide(t *testing.T) {
	tests := []struct {
		name    string
		out     gate.Outcome
		allowed bool
		status  string
	}{
		{"accepted", gate.Outcome{Verdict: gate.Accepted}, true, domain.StatusAccepted},
		{"rejected", gate.Outcome{Verdict: gate.Rejected, Path: "a.yaml", Diagnostic: "d"}, false, domain.StatusRejected},
		{"failed", gate.Outcome{Verdict: gate.Failed, Err: errors.New("x")}, false, domain.StatusError},
		{"aborted", gate.Outcome{Verdict: gate.Aborted, Err: gate.ErrAborted}, false, domain.StatusAborted},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := decide(tc.out)
			if d.Allowed != tc.allowed || d.Status != tc.status {
				t.Fatalf("got %v %s, want %v %s", d.Allowed, d.Status, tc.allowed, tc.status)
			}
			if !d.Allowed && d.Message == "" {
				t.Fatalf("refusals carry a message")
			}
		})
	}

	d := decide(gate.Outcome{Verdict: gate.Rejected, Path: "a.yaml", Diagnostic: "d"})
	if d.Grammar != "YAML" || d.Summary != "Invalid YAML content detected" {
		t.Fatalf("default grammar label, got %+v", d)
	}
}

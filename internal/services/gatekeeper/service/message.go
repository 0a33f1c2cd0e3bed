package service

import (
	"fmt"

	"yamlgate/internal/core/gate"
	"yamlgate/internal/services/gatekeeper/domain"
)

const defaultGrammar = "YAML"

func label(grammar string) string {
	if grammar == "" {
		return defaultGrammar
	}
	return grammar
}

// Summary is the one line reason shown for a rejection
func Summary(grammar string) string {
	return fmt.Sprintf("Invalid %s content detected", label(grammar))
}

// PushMessage is the text returned to a rejected pusher
func PushMessage(grammar, path, diagnostic string) string {
	return fmt.Sprintf("%s when reading file %s: %s", Summary(grammar), path, diagnostic)
}

// DeclineComment is posted on a pull request declined for an invalid document
// the diagnostic sits in a fenced block
func DeclineComment(grammar, path, diagnostic string) string {
	return fmt.Sprintf("%s when reading file %s: \n```\n%s```", Summary(grammar), path, diagnostic)
}

// FailureMessage is the text returned when changes could not be validated
func FailureMessage(err error) string {
	return fmt.Sprintf("Could not validate changes: %v", err)
}

// decide maps an outcome to the decision returned to the host
func decide(out gate.Outcome) domain.Decision {
	d := domain.Decision{
		Status:  out.Verdict.String(),
		Checked: out.Checked,
		Skipped: out.Skipped,
	}
	switch out.Verdict {
	case gate.Accepted:
		d.Allowed = true
	case gate.Rejected:
		d.Summary = Summary(out.Grammar)
		d.Message = PushMessage(out.Grammar, out.Path, out.Diagnostic)
		d.Path = out.Path
		d.Grammar = label(out.Grammar)
		d.Diagnostic = out.Diagnostic
	case gate.Failed:
		d.Summary = "Could not validate changes"
		d.Message = FailureMessage(out.Err)
	case gate.Aborted:
		d.Summary = "Validation aborted"
		d.Message = FailureMessage(out.Err)
	}
	return d
}

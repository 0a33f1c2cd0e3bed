// Package http provides http transport for the gatekeeper hooks
package http

import (
	stdhttp "net/http"

	"yamlgate/internal/modkit/httpkit"
	"yamlgate/internal/platform/net/middleware"
	"yamlgate/internal/services/gatekeeper/domain"
	svc "yamlgate/internal/services/gatekeeper/service"
)

// Register mounts gatekeeper endpoints on the given router
// hook endpoints sit behind auth when p is non nil
func Register(r httpkit.Router, s svc.Service, p middleware.AuthPort) {
	h := &handlers{svc: s}
	httpkit.Protected(r, p, func(pr httpkit.Router) {
		httpkit.PostJSON[domain.PushInput](pr, "/push", h.push)
		httpkit.PostJSON[domain.MergeInput](pr, "/merge", h.merge)
		httpkit.PostJSON[domain.ValidateInput](pr, "/validate", h.validate)
		httpkit.PostJSON[domain.RecentInput](pr, "/decisions", h.recent)
	})
}

type handlers struct{ svc svc.Service }

// swagger:route POST /gate/push Gate gatePush
// @Summary Pre receive check for a push
// @Description Validates the structured documents every ref update adds and answers with an accept or reject decision
// @Tags Gate
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body domain.PushInput true "Ref updates"
// @Success 200 {object} domain.Decision "decision"
// @Failure 401 {object} httpkit.Envelope "missing or invalid hook token"
// @Failure 503 {object} httpkit.Envelope "validation aborted"
// @Router /gate/push [post]
func (h *handlers) push(r *stdhttp.Request, in domain.PushInput) (any, error) {
	return h.svc.Push(r.Context(), in)
}

// swagger:route POST /gate/merge Gate gateMerge
// @Summary Merge check for a pull request
// @Description Validates what the source branch adds over the target and declines the pull request on rejection
// @Tags Gate
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body domain.MergeInput true "Pull request"
// @Success 200 {object} domain.Decision "decision"
// @Failure 401 {object} httpkit.Envelope "missing or invalid hook token"
// @Router /gate/merge [post]
func (h *handlers) merge(r *stdhttp.Request, in domain.MergeInput) (any, error) {
	return h.svc.Merge(r.Context(), in)
}

// swagger:route POST /gate/validate Gate gateValidate
// @Summary Check documents without a repository
// @Tags Gate
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body domain.ValidateInput true "Documents"
// @Success 200 {object} domain.Decision "decision"
// @Router /gate/validate [post]
func (h *handlers) validate(r *stdhttp.Request, in domain.ValidateInput) (any, error) {
	return h.svc.Validate(r.Context(), in)
}

// swagger:route POST /gate/decisions Gate gateDecisions
// @Summary Recent gate decisions from the audit log
// @Tags Gate
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body domain.RecentInput true "Query"
// @Success 200 {array} domain.DecisionRecord "ok"
// @Router /gate/decisions [post]
func (h *handlers) recent(r *stdhttp.Request, in domain.RecentInput) (any, error) {
	return h.svc.Recent(r.Context(), in)
}

// Package usecase implements the request lifecycle and the settlement flow
// nested in it. All state lives in the repository; this package enforces the
// transition guards and drives the side effects (candidate offers, push
// notifications) around them.
package usecase

import (
	"time"

	"github.com/footmanhq/dispatch/internal/pkg/models"
	"github.com/footmanhq/dispatch/services/presence"
	"github.com/footmanhq/dispatch/services/request"
)

// requestUC implements the request.RequestUC interface.
type requestUC struct {
	cfg      *models.Config
	repo     request.RequestRepo
	gw       request.RequestGW
	matcher  request.Matcher
	presence presence.Reader

	// now is swapped out in tests for deterministic timestamps.
	now func() time.Time
}

// NewRequestUC creates the request use case.
func NewRequestUC(
	cfg *models.Config,
	repo request.RequestRepo,
	gw request.RequestGW,
	matcher request.Matcher,
	reader presence.Reader,
) (request.RequestUC, error) {
	return &requestUC{
		cfg:      cfg,
		repo:     repo,
		gw:       gw,
		matcher:  matcher,
		presence: reader,
		now:      time.Now,
	}, nil
}

package ports

import (
	"context"

	"pickup/internal/core/domain/model/kernel"
	"pickup/internal/core/domain/model/member"
)

// MemberRepository reads customers and their subscription tier.
type MemberRepository interface {
	// Get returns errs.ObjectNotFoundError for unknown ids.
	Get(ctx context.Context, id kernel.UUID) (*member.Member, error)
}

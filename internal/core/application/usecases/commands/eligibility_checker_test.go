package commands_test

import (
	"errors"
	"testing"

	"pickup/internal/core/application/usecases/commands"
	"pickup/internal/core/domain/model/kernel"
	"pickup/internal/core/domain/model/member"
	"pickup/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEligibilityChecker_CanOrder(t *testing.T) {
	date, err := kernel.ParseLocalDate("2024-03-01")
	require.NoError(t, err)

	tests := []struct {
		name      string
		tier      member.Tier
		countDay  int
		wantCount bool
		want      bool
	}{
		{name: "standard member without orders", tier: member.Standard, countDay: 0, wantCount: true, want: true},
		{name: "standard member with an order today", tier: member.Standard, countDay: 1, wantCount: true, want: false},
		{name: "premium member is never counted", tier: member.Premium, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := t.Context()
			user, err := member.NewMember(kernel.NewUUID(), tt.tier)
			require.NoError(t, err)

			members := new(MockMemberRepository)
			quotas := new(MockQuotaRepository)
			members.On("Get", ctx, user.ID()).Return(user, nil).Once()
			if tt.wantCount {
				quotas.On("CountForDay", ctx, user.ID(), date).Return(tt.countDay, nil).Once()
			}

			allowed, err := commands.NewEligibilityChecker(members, quotas).CanOrder(ctx, user.ID(), date)

			require.NoError(t, err)
			assert.Equal(t, tt.want, allowed)
			members.AssertExpectations(t)
			quotas.AssertExpectations(t)
		})
	}
}

func TestEligibilityChecker_CanOrder_UnknownUser(t *testing.T) {
	ctx := t.Context()
	userID := kernel.NewUUID()
	date, err := kernel.ParseLocalDate("2024-03-01")
	require.NoError(t, err)

	members := new(MockMemberRepository)
	members.On("Get", ctx, userID).Return(nil, errs.NewObjectNotFoundError("user", userID.String())).Once()

	allowed, err := commands.NewEligibilityChecker(members, new(MockQuotaRepository)).CanOrder(ctx, userID, date)

	assert.False(t, allowed)
	assert.True(t, errors.Is(err, errs.ErrObjectNotFound))
}

package services_test

import (
	"testing"

	"pickup/internal/core/domain/model/kernel"
	"pickup/internal/core/domain/model/member"
	"pickup/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEligibilityPolicy_CanOrder(t *testing.T) {
	standard, err := member.NewMember(kernel.NewUUID(), member.Standard)
	require.NoError(t, err)
	premium, err := member.NewMember(kernel.NewUUID(), member.Premium)
	require.NoError(t, err)

	policy := services.NewEligibilityPolicy()

	tests := []struct {
		name        string
		member      *member.Member
		ordersToday int
		want        bool
	}{
		{"standard without orders", standard, 0, true},
		{"standard with one order", standard, 1, false},
		{"standard with several orders", standard, 3, false},
		{"premium without orders", premium, 0, true},
		{"premium with orders", premium, 5, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, policy.CanOrder(tt.member, tt.ordersToday))
		})
	}
}

func TestEligibilityPolicy_NeedsClaim(t *testing.T) {
	standard, _ := member.NewMember(kernel.NewUUID(), member.Standard)
	premium, _ := member.NewMember(kernel.NewUUID(), member.Premium)

	policy := services.NewEligibilityPolicy()

	assert.True(t, policy.NeedsClaim(standard))
	assert.False(t, policy.NeedsClaim(premium))
}

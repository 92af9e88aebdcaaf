package member_test

import (
	"testing"

	"pickup/internal/core/domain/model/kernel"
	"pickup/internal/core/domain/model/member"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTierOf(t *testing.T) {
	assert.Equal(t, member.Premium, member.TierOf(true))
	assert.Equal(t, member.Standard, member.TierOf(false))
	assert.Equal(t, "premium", member.Premium.String())
	assert.Equal(t, "standard", member.Standard.String())
}

func TestNewMember(t *testing.T) {
	t.Run("should create member", func(t *testing.T) {
		m, err := member.NewMember(kernel.NewUUID(), member.Premium)

		require.NoError(t, err)
		require.NoError(t, m.Validate())
		assert.True(t, m.IsPremium())
	})

	t.Run("should reject zero id", func(t *testing.T) {
		_, err := member.NewMember(kernel.UUID{}, member.Standard)

		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})

	t.Run("should reject unconstructed member", func(t *testing.T) {
		require.ErrorIs(t, (&member.Member{}).Validate(), member.ErrMemberIsNotConstructed)
	})
}

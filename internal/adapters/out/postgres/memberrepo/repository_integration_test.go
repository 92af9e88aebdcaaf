package memberrepo_test

import (
	"context"
	"testing"

	postgres_adapter "pickup/internal/adapters/out/postgres"
	"pickup/internal/adapters/out/postgres/memberrepo"
	"pickup/internal/adapters/out/postgres/pgtest"
	"pickup/internal/core/domain/model/kernel"
	"pickup/internal/core/domain/model/member"
	"pickup/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

type MemberRepositoryIntegrationTestSuite struct {
	suite.Suite
	pg         *pgtest.Database
	repository *memberrepo.GormMemberRepository
}

func (suite *MemberRepositoryIntegrationTestSuite) SetupSuite() {
	pg, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.pg = pg

	suite.Require().NoError(postgres_adapter.Migrate(pg.DB))
}

func (suite *MemberRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.pg.Truncate(postgres_adapter.Tables()...))
	suite.repository = memberrepo.NewGormMemberRepository(suite.pg.DB)
}

func (suite *MemberRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.pg.Stop(context.Background()))
}

func (suite *MemberRepositoryIntegrationTestSuite) TestGet_MapsSubscriptionToTier() {
	ctx := context.Background()
	standard, err := member.NewMember(kernel.NewUUID(), member.Standard)
	suite.Require().NoError(err)
	premium, err := member.NewMember(kernel.NewUUID(), member.Premium)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(ctx, standard, "Budi"))
	suite.Require().NoError(suite.repository.Add(ctx, premium, "Sari"))

	got, err := suite.repository.Get(ctx, standard.ID())
	suite.Require().NoError(err)
	suite.False(got.IsPremium())

	got, err = suite.repository.Get(ctx, premium.ID())
	suite.Require().NoError(err)
	suite.True(got.IsPremium())
}

func (suite *MemberRepositoryIntegrationTestSuite) TestAdd_DuplicateIsRejected() {
	ctx := context.Background()
	m, err := member.NewMember(kernel.NewUUID(), member.Standard)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(ctx, m, "Budi"))

	err = suite.repository.Add(ctx, m, "Budi")

	suite.ErrorIs(err, errs.ErrValueIsInvalid)
}

func (suite *MemberRepositoryIntegrationTestSuite) TestGet_NotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func TestMemberRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(MemberRepositoryIntegrationTestSuite))
}

package user

import (
	"context"
	"fmt"

	"github.com/stretchr/testify/suite"

	"sumbandila/pkg/domain"
	"sumbandila/pkg/platform/sentinel"
	"sumbandila/pkg/testutil"
)

// StoreContractSuite runs the same behaviour checks against every backend.
// Embedders set newStore in SetupTest.
type StoreContractSuite struct {
	suite.Suite
	newStore func() Store
	store    Store
}

func (s *StoreContractSuite) SetupTest() {
	s.store = s.newStore()
}

func (s *StoreContractSuite) TestRegisterThenFind() {
	ctx := context.Background()
	u := testutil.NewUserBuilder().WithPhone("+27820000101").Build()

	s.Require().NoError(s.store.Register(ctx, u))

	found, err := s.store.FindByPhone(ctx, u.Phone)
	s.Require().NoError(err)
	s.Equal(u.Phone, found.Phone)
	s.Equal(u.Name, found.Name)
	s.Equal(u.PasswordHash, found.PasswordHash)
	s.True(u.CreatedAt.Equal(found.CreatedAt))
}

func (s *StoreContractSuite) TestRegisterDuplicateKeepsOriginal() {
	ctx := context.Background()
	first := testutil.NewUserBuilder().WithPhone("+27820000102").WithName("First").Build()
	second := testutil.NewUserBuilder().WithPhone("+27820000102").WithName("Second").WithPassword("other").Build()

	s.Require().NoError(s.store.Register(ctx, first))
	err := s.store.Register(ctx, second)

	s.Require().ErrorIs(err, sentinel.ErrAlreadyExists)
	found, err := s.store.FindByPhone(ctx, first.Phone)
	s.Require().NoError(err)
	s.Equal("First", found.Name)
	s.Equal(first.PasswordHash, found.PasswordHash)
}

func (s *StoreContractSuite) TestFindMissing() {
	_, err := s.store.FindByPhone(context.Background(), domain.PhoneNumber("+27829999999"))
	s.ErrorIs(err, sentinel.ErrNotFound)
}

func (s *StoreContractSuite) TestConcurrentRegisterSingleWinner() {
	ctx := context.Background()
	const goroutines = 32

	result := testutil.RunConcurrent(goroutines, func(idx int) error {
		u := testutil.NewUserBuilder().
			WithPhone("+27820000103").
			WithName(fmt.Sprintf("racer-%d", idx)).
			Build()
		return s.store.Register(ctx, u)
	})

	s.Equal(1, result.Successes())
	s.Equal(goroutines-1, result.Conflicts())
	s.Empty(result.Unexpected())
}

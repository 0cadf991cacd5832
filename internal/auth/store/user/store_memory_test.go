package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"sumbandila/pkg/testutil"
)

type InMemoryUserStoreSuite struct {
	StoreContractSuite
}

func (s *InMemoryUserStoreSuite) SetupTest() {
	s.newStore = func() Store { return NewInMemoryUserStore() }
	s.StoreContractSuite.SetupTest()
}

// Callers cannot mutate stored records through the pointers they hold.
func (s *InMemoryUserStoreSuite) TestReturnsCopies() {
	ctx := context.Background()
	u := testutil.NewUserBuilder().Build()
	s.Require().NoError(s.store.Register(ctx, u))

	u.Name = "mutated"
	found, err := s.store.FindByPhone(ctx, u.Phone)
	s.Require().NoError(err)
	s.NotEqual("mutated", found.Name)

	found.Name = "mutated again"
	again, err := s.store.FindByPhone(ctx, u.Phone)
	s.Require().NoError(err)
	s.NotEqual("mutated again", again.Name)
}

func (s *InMemoryUserStoreSuite) TestRegisterNil() {
	s.Error(s.store.Register(context.Background(), nil))
}

func TestInMemoryUserStoreSuite(t *testing.T) {
	suite.Run(t, new(InMemoryUserStoreSuite))
}

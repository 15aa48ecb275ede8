package repositories

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type SavingRepositorySuite struct {
	repositorySuite
	repo SavingRepositoryInterface
}

func (s *SavingRepositorySuite) SetupTest() {
	s.repositorySuite.SetupTest()
	s.repo = NewSavingRepository(s.db.DB)
}

func TestSavingRepositorySuite(t *testing.T) {
	suite.Run(t, new(SavingRepositorySuite))
}

func (s *SavingRepositorySuite) TestGetActiveByAccountID() {
	old := s.newSaving("Old", s.today.AddDate(0, -6, 0))
	s.Require().NoError(s.repo.Create(s.ctx, old))
	old.Active = false
	s.Require().NoError(s.repo.Update(s.ctx, old))

	current := s.newSaving("Current", s.today)
	s.Require().NoError(s.repo.Create(s.ctx, current))

	active, err := s.repo.GetActiveByAccountID(s.ctx, s.account.ID)

	s.Require().NoError(err)
	s.Equal(current.ID, active.ID)
}

func (s *SavingRepositorySuite) TestGetActiveByAccountID_None() {
	_, err := s.repo.GetActiveByAccountID(s.ctx, s.account.ID)

	s.ErrorIs(err, ErrSavingNotFound)
}

func (s *SavingRepositorySuite) TestFindDue() {
	due := s.newSaving("Due", s.today)
	s.Require().NoError(s.repo.Create(s.ctx, due))

	other := s.createOtherAccount()
	future := s.newSaving("Future", s.today.AddDate(0, 0, 3))
	future.AccountID = other
	s.Require().NoError(s.repo.Create(s.ctx, future))

	found, err := s.repo.FindDue(s.ctx, s.today)

	s.Require().NoError(err)
	s.Len(found, 1)
	s.Equal(due.ID, found[0].ID)
}

func (s *SavingRepositorySuite) TestGetByAccountID() {
	s.Require().NoError(s.repo.Create(s.ctx, s.newSaving("One", s.today)))

	savings, err := s.repo.GetByAccountID(s.ctx, s.account.ID)

	s.Require().NoError(err)
	s.Len(savings, 1)
}

func (s *SavingRepositorySuite) TestDelete_NotFound() {
	s.ErrorIs(s.repo.Delete(s.ctx, uuid.New()), ErrSavingNotFound)
}

func (s *SavingRepositorySuite) TestGetByID_NotFound() {
	_, err := s.repo.GetByID(s.ctx, uuid.New())

	s.ErrorIs(err, ErrSavingNotFound)
}

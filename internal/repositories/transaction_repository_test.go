package repositories

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type TransactionRepositorySuite struct {
	repositorySuite
	repo TransactionRepositoryInterface
}

func (s *TransactionRepositorySuite) SetupTest() {
	s.repositorySuite.SetupTest()
	s.repo = NewTransactionRepository(s.db.DB)
}

func TestTransactionRepositorySuite(t *testing.T) {
	suite.Run(t, new(TransactionRepositorySuite))
}

func (s *TransactionRepositorySuite) TestCreateAndGetByID() {
	entry := s.newEntry(-40, s.today)

	s.Require().NoError(s.repo.Create(s.ctx, entry))

	found, err := s.repo.GetByID(s.ctx, entry.ID)
	s.Require().NoError(err)
	s.True(found.Amount.Equal(decimal.NewFromInt(-40)))
	s.Equal(entry.Reference, found.Reference)
}

func (s *TransactionRepositorySuite) TestGetByID_NotFound() {
	_, err := s.repo.GetByID(s.ctx, uuid.New())

	s.ErrorIs(err, ErrTransactionNotFound)
}

func (s *TransactionRepositorySuite) TestGetByDateRange_HalfOpen() {
	yesterday := s.today.AddDate(0, 0, -1)
	tomorrow := s.today.AddDate(0, 0, 1)

	s.Require().NoError(s.repo.Create(s.ctx, s.newEntry(-10, yesterday)))
	s.Require().NoError(s.repo.Create(s.ctx, s.newEntry(-20, s.today)))
	s.Require().NoError(s.repo.Create(s.ctx, s.newEntry(-30, s.today.Add(23*time.Hour))))
	s.Require().NoError(s.repo.Create(s.ctx, s.newEntry(-40, tomorrow)))

	entries, err := s.repo.GetByDateRange(s.ctx, s.account.ID, s.today, tomorrow)

	s.Require().NoError(err)
	s.Len(entries, 2)
	s.True(entries[0].Amount.Equal(decimal.NewFromInt(-20)))
	s.True(entries[1].Amount.Equal(decimal.NewFromInt(-30)))
}

func (s *TransactionRepositorySuite) TestGetByDateRange_OtherAccountExcluded() {
	s.Require().NoError(s.repo.Create(s.ctx, s.newEntry(-10, s.today)))

	entries, err := s.repo.GetByDateRange(s.ctx, uuid.New(), s.today, s.today.AddDate(0, 0, 1))

	s.Require().NoError(err)
	s.Empty(entries)
}

func (s *TransactionRepositorySuite) TestGetByAccountID_Paginates() {
	for i := 0; i < 5; i++ {
		s.Require().NoError(s.repo.Create(s.ctx, s.newEntry(int64(-(i + 1)), s.today.AddDate(0, 0, -i))))
	}

	page, total, err := s.repo.GetByAccountID(s.ctx, s.account.ID, 0, 2)

	s.Require().NoError(err)
	s.Equal(int64(5), total)
	s.Len(page, 2)
	s.True(page[0].Amount.Equal(decimal.NewFromInt(-1)))

	last, _, err := s.repo.GetByAccountID(s.ctx, s.account.ID, 4, 2)
	s.Require().NoError(err)
	s.Len(last, 1)
}

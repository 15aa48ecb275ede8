package repositories

import (
	"testing"

	"clevercash/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type LedgerRepositorySuite struct {
	repositorySuite
	ledger       LedgerRepositoryInterface
	accounts     AccountRepositoryInterface
	transactions TransactionRepositoryInterface
	installments InstallmentRepositoryInterface
	savings      SavingRepositoryInterface
}

func (s *LedgerRepositorySuite) SetupTest() {
	s.repositorySuite.SetupTest()
	s.ledger = NewLedgerRepository(s.db.DB)
	s.accounts = NewAccountRepository(s.db.DB)
	s.transactions = NewTransactionRepository(s.db.DB)
	s.installments = NewInstallmentRepository(s.db.DB)
	s.savings = NewSavingRepository(s.db.DB)
}

func TestLedgerRepositorySuite(t *testing.T) {
	suite.Run(t, new(LedgerRepositorySuite))
}

func (s *LedgerRepositorySuite) entriesToday() []models.Transaction {
	entries, err := s.transactions.GetByDateRange(s.ctx, s.account.ID, s.today, s.today.AddDate(0, 0, 1))
	s.Require().NoError(err)
	return entries
}

func (s *LedgerRepositorySuite) TestApplyInstallmentPayment_CommitsAllRows() {
	installment := s.newInstallment("Car", s.today)
	s.Require().NoError(s.installments.Create(s.ctx, installment))

	account, err := s.accounts.GetByID(s.ctx, s.account.ID)
	s.Require().NoError(err)
	account.Debit(installment.AmountPerRate)
	installment.ApplyRate()
	entry := models.NewDebitEntry(account.ID, models.TransactionTypeInstallment, installment.AmountPerRate, installment.Name, s.today)

	s.Require().NoError(s.ledger.ApplyInstallmentPayment(s.ctx, account, installment, entry))

	storedAccount, err := s.accounts.GetByID(s.ctx, s.account.ID)
	s.Require().NoError(err)
	s.True(storedAccount.Balance.Equal(decimal.NewFromInt(900)))

	storedInstallment, err := s.installments.GetByID(s.ctx, installment.ID)
	s.Require().NoError(err)
	s.True(storedInstallment.AlreadyPaidAmount.Equal(decimal.NewFromInt(100)))

	entries := s.entriesToday()
	s.Len(entries, 1)
	s.Equal(models.TransactionTypeInstallment, entries[0].TransactionType)
	s.True(entries[0].Amount.Equal(decimal.NewFromInt(-100)))
}

func (s *LedgerRepositorySuite) TestApplyInstallmentPayment_RollsBackOnInvalidEntry() {
	installment := s.newInstallment("Car", s.today)
	s.Require().NoError(s.installments.Create(s.ctx, installment))

	account, err := s.accounts.GetByID(s.ctx, s.account.ID)
	s.Require().NoError(err)
	account.Debit(installment.AmountPerRate)
	installment.ApplyRate()
	entry := models.NewDebitEntry(account.ID, models.TransactionTypeInstallment, installment.AmountPerRate, "", s.today)

	err = s.ledger.ApplyInstallmentPayment(s.ctx, account, installment, entry)
	s.Error(err)

	storedAccount, err := s.accounts.GetByID(s.ctx, s.account.ID)
	s.Require().NoError(err)
	s.True(storedAccount.Balance.Equal(decimal.NewFromInt(1000)))

	storedInstallment, err := s.installments.GetByID(s.ctx, installment.ID)
	s.Require().NoError(err)
	s.True(storedInstallment.AlreadyPaidAmount.IsZero())
	s.True(storedInstallment.PayDay.Equal(s.today))
	s.Empty(s.entriesToday())
}

func (s *LedgerRepositorySuite) TestApplyInstallmentPayment_DeletedInstallmentIsNotRecreated() {
	installment := s.newInstallment("Car", s.today)
	s.Require().NoError(s.installments.Create(s.ctx, installment))
	s.Require().NoError(s.installments.Delete(s.ctx, installment.ID))

	account, err := s.accounts.GetByID(s.ctx, s.account.ID)
	s.Require().NoError(err)
	account.Debit(installment.AmountPerRate)
	installment.ApplyRate()
	entry := models.NewDebitEntry(account.ID, models.TransactionTypeInstallment, installment.AmountPerRate, installment.Name, s.today)

	err = s.ledger.ApplyInstallmentPayment(s.ctx, account, installment, entry)

	s.ErrorIs(err, ErrObligationClosed)
	_, err = s.installments.GetByID(s.ctx, installment.ID)
	s.ErrorIs(err, ErrInstallmentNotFound)
	stored, err := s.accounts.GetByID(s.ctx, s.account.ID)
	s.Require().NoError(err)
	s.True(stored.Balance.Equal(decimal.NewFromInt(1000)))
	s.Empty(s.entriesToday())
}

func (s *LedgerRepositorySuite) TestApplySavingContribution_InactiveSavingStaysClosed() {
	saving := s.newSaving("Holiday", s.today)
	s.Require().NoError(s.savings.Create(s.ctx, saving))

	closed := *saving
	closed.Active = false
	s.Require().NoError(s.savings.Update(s.ctx, &closed))

	account, err := s.accounts.GetByID(s.ctx, s.account.ID)
	s.Require().NoError(err)
	account.MoveToSavings(saving.Amount)
	saving.ApplyContribution()
	entry := models.NewDebitEntry(account.ID, models.TransactionTypeSaving, saving.Amount, saving.Name, s.today)

	err = s.ledger.ApplySavingContribution(s.ctx, account, saving, entry)

	s.ErrorIs(err, ErrObligationClosed)
	storedSaving, err := s.savings.GetByID(s.ctx, saving.ID)
	s.Require().NoError(err)
	s.False(storedSaving.Active)
	s.True(storedSaving.ContributedAmount.IsZero())
	stored, err := s.accounts.GetByID(s.ctx, s.account.ID)
	s.Require().NoError(err)
	s.True(stored.Balance.Equal(decimal.NewFromInt(1000)))
	s.True(stored.SavingsAmount.IsZero())
	s.Empty(s.entriesToday())
}

func (s *LedgerRepositorySuite) TestApplySavingContribution() {
	saving := s.newSaving("Holiday", s.today)
	s.Require().NoError(s.savings.Create(s.ctx, saving))

	account, err := s.accounts.GetByID(s.ctx, s.account.ID)
	s.Require().NoError(err)
	account.MoveToSavings(saving.Amount)
	saving.ApplyContribution()
	entry := models.NewDebitEntry(account.ID, models.TransactionTypeSaving, saving.Amount, saving.Name, s.today)

	s.Require().NoError(s.ledger.ApplySavingContribution(s.ctx, account, saving, entry))

	storedAccount, err := s.accounts.GetByID(s.ctx, s.account.ID)
	s.Require().NoError(err)
	s.True(storedAccount.Balance.Equal(decimal.NewFromInt(950)))
	s.True(storedAccount.SavingsAmount.Equal(decimal.NewFromInt(50)))

	storedSaving, err := s.savings.GetByID(s.ctx, saving.ID)
	s.Require().NoError(err)
	s.True(storedSaving.ContributedAmount.Equal(decimal.NewFromInt(50)))
}

func (s *LedgerRepositorySuite) TestApplyPayment_UnknownAccount() {
	ghost := &models.Account{ID: uuid.New(), UserID: uuid.New(), Name: "ghost", DailyLimit: decimal.NewFromInt(1)}
	entry := models.NewDebitEntry(ghost.ID, models.TransactionTypePayment, decimal.NewFromInt(1), "coffee", s.today)

	err := s.ledger.ApplyPayment(s.ctx, ghost, entry)

	s.ErrorIs(err, ErrAccountNotFound)
}

func (s *LedgerRepositorySuite) TestApplySavingsWithdrawal() {
	account, err := s.accounts.GetByID(s.ctx, s.account.ID)
	s.Require().NoError(err)
	account.SavingsAmount = decimal.NewFromInt(300)
	s.Require().NoError(s.accounts.Update(s.ctx, account))

	s.Require().NoError(account.WithdrawSavings(decimal.NewFromInt(120)))
	entry := models.NewCreditEntry(account.ID, models.TransactionTypeSaving, decimal.NewFromInt(120), "Savings withdrawal", s.today)

	s.Require().NoError(s.ledger.ApplySavingsWithdrawal(s.ctx, account, entry))

	stored, err := s.accounts.GetByID(s.ctx, s.account.ID)
	s.Require().NoError(err)
	s.True(stored.Balance.Equal(decimal.NewFromInt(1120)))
	s.True(stored.SavingsAmount.Equal(decimal.NewFromInt(180)))
	s.Len(s.entriesToday(), 1)
}

func (s *LedgerRepositorySuite) TestRemoveSavingWithRefund() {
	saving := s.newSaving("Car fund", s.today)
	s.Require().NoError(s.savings.Create(s.ctx, saving))

	account, err := s.accounts.GetByID(s.ctx, s.account.ID)
	s.Require().NoError(err)
	account.SavingsAmount = decimal.NewFromInt(50)
	s.Require().NoError(s.accounts.Update(s.ctx, account))
	account.RefundSavings(decimal.NewFromInt(50))

	s.Require().NoError(s.ledger.RemoveSavingWithRefund(s.ctx, account, saving.ID))

	_, err = s.savings.GetByID(s.ctx, saving.ID)
	s.ErrorIs(err, ErrSavingNotFound)

	stored, err := s.accounts.GetByID(s.ctx, s.account.ID)
	s.Require().NoError(err)
	s.True(stored.SavingsAmount.IsZero())
}

func (s *LedgerRepositorySuite) TestRemoveSavingWithRefund_NotFoundKeepsAccount() {
	account, err := s.accounts.GetByID(s.ctx, s.account.ID)
	s.Require().NoError(err)
	account.Balance = decimal.NewFromInt(1)

	err = s.ledger.RemoveSavingWithRefund(s.ctx, account, uuid.New())

	s.ErrorIs(err, ErrSavingNotFound)
	stored, err := s.accounts.GetByID(s.ctx, s.account.ID)
	s.Require().NoError(err)
	s.True(stored.Balance.Equal(decimal.NewFromInt(1000)))
}

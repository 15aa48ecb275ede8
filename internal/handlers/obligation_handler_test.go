package handlers

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"clevercash/internal/dto"
	"clevercash/internal/errors"
	"clevercash/internal/models"
	"clevercash/internal/services"
	"clevercash/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ObligationHandlerTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	mockInstallments *service_mocks.MockInstallmentServiceInterface
	mockSavings      *service_mocks.MockSavingServiceInterface
	handler          *ObligationHandler
	echo             *echo.Echo
	accountID        uuid.UUID
}

func (s *ObligationHandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockInstallments = service_mocks.NewMockInstallmentServiceInterface(s.ctrl)
	s.mockSavings = service_mocks.NewMockSavingServiceInterface(s.ctrl)
	s.handler = NewObligationHandler(s.mockInstallments, s.mockSavings)
	s.echo = newTestEcho()
	s.accountID = uuid.New()
}

func (s *ObligationHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestObligationHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ObligationHandlerTestSuite))
}

func (s *ObligationHandlerTestSuite) installmentPath() string {
	return fmt.Sprintf("/accounts/%s/installments", s.accountID)
}

func (s *ObligationHandlerTestSuite) TestListInstallments_Success() {
	s.mockInstallments.EXPECT().
		ListInstallments(gomock.Any(), s.accountID).
		Return([]models.Installment{
			{Name: "Car", Active: true, Amount: decimal.NewFromInt(1200), AlreadyPaidAmount: decimal.NewFromInt(500)},
			{Name: "Phone", Amount: decimal.NewFromInt(300), AlreadyPaidAmount: decimal.NewFromInt(300)},
		}, nil)

	c, rec := newTestContext(s.echo, http.MethodGet, s.installmentPath(), "", "accountId", s.accountID.String())

	s.Require().NoError(s.handler.ListInstallments(c))
	s.Equal(http.StatusOK, rec.Code)

	var body dto.InstallmentListResponse
	s.Require().NoError(decodeData(rec, &body))
	s.Equal(2, body.Total)
	s.Equal("Phone", body.Installments[1].Name)
	s.True(body.Outstanding.Equal(decimal.NewFromInt(700)), "outstanding %s", body.Outstanding)
}

func (s *ObligationHandlerTestSuite) TestListInstallments_InvalidAccountID() {
	c, rec := newTestContext(s.echo, http.MethodGet, "/accounts/nope/installments", "", "accountId", "nope")

	s.Require().NoError(s.handler.ListInstallments(c))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal(string(errors.AccountInvalidID), decodeError(rec).Error.Code)
}

func (s *ObligationHandlerTestSuite) TestAddInstallment_Created() {
	body := `{"name":"Car","amount":"1200","amount_per_rate":"100","start_date":"2026-03-10T00:00:00Z","duration_in_months":12}`

	s.mockInstallments.EXPECT().
		AddInstallment(gomock.Any(), s.accountID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, req *dto.NewInstallmentRequest) (*models.Installment, error) {
			s.Equal("Car", req.Name)
			s.True(req.AmountPerRate.Equal(decimal.NewFromInt(100)))
			s.Equal(12, req.DurationInMonths)
			return &models.Installment{ID: uuid.New(), AccountID: s.accountID, Name: req.Name, Active: true}, nil
		})

	c, rec := newTestContext(s.echo, http.MethodPost, s.installmentPath(), body, "accountId", s.accountID.String())

	s.Require().NoError(s.handler.AddInstallment(c))
	s.Equal(http.StatusCreated, rec.Code)

	var installment models.Installment
	s.Require().NoError(decodeData(rec, &installment))
	s.Equal("Car", installment.Name)
	s.True(installment.Active)
}

func (s *ObligationHandlerTestSuite) TestAddInstallment_ValidationFailure() {
	body := `{"name":"  ","amount":"1200","amount_per_rate":"0","start_date":"2026-02-01T00:00:00Z","duration_in_months":12}`

	c, rec := newTestContext(s.echo, http.MethodPost, s.installmentPath(), body, "accountId", s.accountID.String())

	s.Require().NoError(s.handler.AddInstallment(c))
	s.Equal(http.StatusBadRequest, rec.Code)

	errBody := decodeError(rec)
	s.Equal(string(errors.ValidationGeneral), errBody.Error.Code)
	s.Contains(errBody.Error.Details, "amount_per_rate: must be a positive amount")
	s.Contains(errBody.Error.Details, "name: must not be blank")
	s.Contains(errBody.Error.Details, "start_date: must not be in the past")
}

func (s *ObligationHandlerTestSuite) TestAddInstallment_MalformedBody() {
	c, rec := newTestContext(s.echo, http.MethodPost, s.installmentPath(), `{"name":`, "accountId", s.accountID.String())

	s.Require().NoError(s.handler.AddInstallment(c))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal(string(errors.ValidationInvalidFormat), decodeError(rec).Error.Code)
}

func (s *ObligationHandlerTestSuite) TestAddInstallment_NameTaken() {
	body := `{"name":"Car","amount":"1200","amount_per_rate":"100","start_date":"2026-03-10T00:00:00Z","duration_in_months":12}`

	s.mockInstallments.EXPECT().
		AddInstallment(gomock.Any(), s.accountID, gomock.Any()).
		Return(nil, fmt.Errorf("%w: Car", services.ErrInstallmentNameTaken))

	c, rec := newTestContext(s.echo, http.MethodPost, s.installmentPath(), body, "accountId", s.accountID.String())

	s.Require().NoError(s.handler.AddInstallment(c))
	s.Equal(http.StatusConflict, rec.Code)

	errBody := decodeError(rec)
	s.Equal(string(errors.InstallmentNameTaken), errBody.Error.Code)
	s.Equal("trace-123", errBody.Error.TraceID)
}

func (s *ObligationHandlerTestSuite) TestGetInstallment_NotFound() {
	installmentID := uuid.New()
	s.mockInstallments.EXPECT().
		GetInstallment(gomock.Any(), s.accountID, installmentID).
		Return(nil, services.ErrInstallmentNotFound)

	c, rec := newTestContext(s.echo, http.MethodGet, s.installmentPath()+"/"+installmentID.String(), "",
		"accountId", s.accountID.String(), "installmentId", installmentID.String())

	s.Require().NoError(s.handler.GetInstallment(c))
	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal(string(errors.InstallmentNotFound), decodeError(rec).Error.Code)
}

func (s *ObligationHandlerTestSuite) TestGetInstallment_InvalidID() {
	c, rec := newTestContext(s.echo, http.MethodGet, s.installmentPath()+"/x", "",
		"accountId", s.accountID.String(), "installmentId", "x")

	s.Require().NoError(s.handler.GetInstallment(c))
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *ObligationHandlerTestSuite) TestRemoveInstallment_NoContent() {
	installmentID := uuid.New()
	s.mockInstallments.EXPECT().RemoveInstallment(gomock.Any(), s.accountID, installmentID).Return(nil)

	c, rec := newTestContext(s.echo, http.MethodDelete, s.installmentPath()+"/"+installmentID.String(), "",
		"accountId", s.accountID.String(), "installmentId", installmentID.String())

	s.Require().NoError(s.handler.RemoveInstallment(c))
	s.Equal(http.StatusNoContent, rec.Code)
}

func (s *ObligationHandlerTestSuite) TestRemoveInstallment_InternalErrorIsHidden() {
	installmentID := uuid.New()
	s.mockInstallments.EXPECT().
		RemoveInstallment(gomock.Any(), s.accountID, installmentID).
		Return(fmt.Errorf("failed to delete installment: disk full"))

	c, rec := newTestContext(s.echo, http.MethodDelete, s.installmentPath()+"/"+installmentID.String(), "",
		"accountId", s.accountID.String(), "installmentId", installmentID.String())

	s.Require().NoError(s.handler.RemoveInstallment(c))
	s.Equal(http.StatusInternalServerError, rec.Code)
	s.NotContains(rec.Body.String(), "disk full")
}

func (s *ObligationHandlerTestSuite) TestGetActiveSaving_Success() {
	saving := &models.Saving{ID: uuid.New(), AccountID: s.accountID, Name: "Holiday", Active: true}
	s.mockSavings.EXPECT().GetActiveSaving(gomock.Any(), s.accountID).Return(saving, nil)

	c, rec := newTestContext(s.echo, http.MethodGet, "/saving", "", "accountId", s.accountID.String())

	s.Require().NoError(s.handler.GetActiveSaving(c))
	s.Equal(http.StatusOK, rec.Code)

	var got models.Saving
	s.Require().NoError(decodeData(rec, &got))
	s.Equal(saving.ID, got.ID)
}

func (s *ObligationHandlerTestSuite) TestAddSaving_ActiveExists() {
	body := `{"name":"Holiday","amount":"600","start_date":"2026-03-01T00:00:00Z","duration_in_months":3}`
	s.mockSavings.EXPECT().
		AddSaving(gomock.Any(), s.accountID, gomock.Any()).
		Return(nil, services.ErrActiveSavingExists)

	c, rec := newTestContext(s.echo, http.MethodPost, "/savings", body, "accountId", s.accountID.String())

	s.Require().NoError(s.handler.AddSaving(c))
	s.Equal(http.StatusConflict, rec.Code)
	s.Equal(string(errors.SavingAlreadyActive), decodeError(rec).Error.Code)
}

func (s *ObligationHandlerTestSuite) TestAddSaving_Created() {
	body := `{"name":"Holiday","amount":"600","start_date":"2026-03-01T00:00:00Z","first_pay_day":"2026-03-15T00:00:00Z","duration_in_months":3}`
	s.mockSavings.EXPECT().
		AddSaving(gomock.Any(), s.accountID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, req *dto.NewSavingRequest) (*models.Saving, error) {
			s.Require().NotNil(req.FirstPayDay)
			s.Equal(15, req.FirstPayDay.Day())
			return &models.Saving{ID: uuid.New(), Name: req.Name, PayDay: *req.FirstPayDay}, nil
		})

	c, rec := newTestContext(s.echo, http.MethodPost, "/savings", body, "accountId", s.accountID.String())

	s.Require().NoError(s.handler.AddSaving(c))
	s.Equal(http.StatusCreated, rec.Code)
}

func (s *ObligationHandlerTestSuite) TestRemoveActiveSaving() {
	s.Run("removed", func() {
		s.mockSavings.EXPECT().RemoveActiveSaving(gomock.Any(), s.accountID).Return(true, nil)
		c, rec := newTestContext(s.echo, http.MethodDelete, "/saving", "", "accountId", s.accountID.String())

		s.Require().NoError(s.handler.RemoveActiveSaving(c))
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("none active", func() {
		s.mockSavings.EXPECT().RemoveActiveSaving(gomock.Any(), s.accountID).Return(false, nil)
		c, rec := newTestContext(s.echo, http.MethodDelete, "/saving", "", "accountId", s.accountID.String())

		s.Require().NoError(s.handler.RemoveActiveSaving(c))
		s.Equal(http.StatusNotFound, rec.Code)
		s.Equal(string(errors.SavingNotFound), decodeError(rec).Error.Code)
	})
}

func (s *ObligationHandlerTestSuite) TestRemoveSaving_NoContent() {
	savingID := uuid.New()
	s.mockSavings.EXPECT().RemoveSaving(gomock.Any(), s.accountID, savingID).Return(nil)

	c, rec := newTestContext(s.echo, http.MethodDelete, "/savings/"+savingID.String(), "",
		"accountId", s.accountID.String(), "savingId", savingID.String())

	s.Require().NoError(s.handler.RemoveSaving(c))
	s.Equal(http.StatusNoContent, rec.Code)
}

func (s *ObligationHandlerTestSuite) TestWithdrawSavings() {
	s.Run("created", func() {
		entry := &models.Transaction{ID: uuid.New(), Amount: decimal.NewFromInt(250), TransactionType: models.TransactionTypeSaving}
		s.mockSavings.EXPECT().
			TransferSavingsToBalance(gomock.Any(), s.accountID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, req *dto.SavingsWithdrawalRequest) (*models.Transaction, error) {
				s.True(req.Amount.Equal(decimal.NewFromInt(250)))
				return entry, nil
			})

		c, rec := newTestContext(s.echo, http.MethodPost, "/savings/withdrawals", `{"amount":"250"}`, "accountId", s.accountID.String())

		s.Require().NoError(s.handler.WithdrawSavings(c))
		s.Equal(http.StatusCreated, rec.Code)
	})

	s.Run("insufficient savings", func() {
		s.mockSavings.EXPECT().
			TransferSavingsToBalance(gomock.Any(), s.accountID, gomock.Any()).
			Return(nil, services.ErrInsufficientSavings)

		c, rec := newTestContext(s.echo, http.MethodPost, "/savings/withdrawals", `{"amount":"9000"}`, "accountId", s.accountID.String())

		s.Require().NoError(s.handler.WithdrawSavings(c))
		s.Equal(http.StatusUnprocessableEntity, rec.Code)
		s.Equal(string(errors.AccountInsufficientSavings), decodeError(rec).Error.Code)
	})
}

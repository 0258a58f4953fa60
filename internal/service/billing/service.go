package billing

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/projectx/clinic-api/internal/model"
	"github.com/projectx/clinic-api/internal/repository"
	apperrors "github.com/projectx/clinic-api/pkg/errors"
	"github.com/projectx/clinic-api/pkg/payment"
)

type BillingService interface {
	CreateBill(ctx context.Context, req *model.CreateBillRequest) (*model.Bill, error)
	DeleteBill(ctx context.Context, id uuid.UUID) error
	ListBills(ctx context.Context) ([]*model.Bill, error)
	PayBill(ctx context.Context, id uuid.UUID, req *model.PayBillRequest) (string, error)
}

// StatsInvalidator drops cached dashboard aggregates after a committed write.
type StatsInvalidator interface {
	InvalidateStats()
}

type Service struct {
	repo        repository.BillRepository
	patientRepo repository.PatientRepository
	gateway     *payment.Simulator
	stats       StatsInvalidator
}

func NewService(repo repository.BillRepository, patientRepo repository.PatientRepository, gateway *payment.Simulator, stats StatsInvalidator) *Service {
	return &Service{
		repo:        repo,
		patientRepo: patientRepo,
		gateway:     gateway,
		stats:       stats,
	}
}

func (s *Service) invalidateStats() {
	if s.stats != nil {
		s.stats.InvalidateStats()
	}
}

func (s *Service) CreateBill(ctx context.Context, req *model.CreateBillRequest) (*model.Bill, error) {
	patientID, err := uuid.Parse(req.PatientID)
	if err != nil {
		return nil, apperrors.Validation("invalid patient id", err)
	}

	exists, err := s.patientRepo.Exists(ctx, patientID)
	if err != nil {
		return nil, fmt.Errorf("failed to check patient: %w", err)
	}
	if !exists {
		return nil, apperrors.Validation("patient does not exist", nil)
	}

	amount, err := parseAmount(req.Amount)
	if err != nil {
		return nil, err
	}

	bill := &model.Bill{
		ID:            uuid.New(),
		PatientID:     patientID,
		Amount:        amount,
		PaymentMethod: req.PaymentMethod,
		Status:        model.BillStatusPending,
		Description:   req.Description,
		DateIssued:    time.Now(),
	}

	if err := s.repo.Create(ctx, bill); err != nil {
		return nil, fmt.Errorf("failed to create bill: %w", err)
	}
	s.invalidateStats()
	return bill, nil
}

func (s *Service) DeleteBill(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperrors.NotFound("bill", err)
		}
		return fmt.Errorf("failed to delete bill: %w", err)
	}
	s.invalidateStats()
	return nil
}

func (s *Service) ListBills(ctx context.Context) ([]*model.Bill, error) {
	bills, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list bills: %w", err)
	}
	return bills, nil
}

// PayBill runs the simulated payment and flips the bill to Paid. There is no
// guard against re-paying an already-Paid bill: the transaction id and method
// are silently overwritten, matching the behavior billing always had. The
// phone number is accepted but never stored.
func (s *Service) PayBill(ctx context.Context, id uuid.UUID, req *model.PayBillRequest) (string, error) {
	bill, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", apperrors.NotFound("bill", err)
		}
		return "", fmt.Errorf("failed to get bill: %w", err)
	}

	txn := s.gateway.Charge(req.Method)

	bill.PaymentMethod = req.Method
	bill.TransactionID = txn
	bill.Status = model.BillStatusPaid

	if err := s.repo.MarkPaid(ctx, bill); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", apperrors.NotFound("bill", err)
		}
		return "", fmt.Errorf("failed to mark bill paid: %w", err)
	}
	s.invalidateStats()
	return txn, nil
}

// parseAmount is deliberately lenient: missing or unparseable input falls
// back to 0 instead of failing. Negative amounts are the one thing rejected.
func parseAmount(raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	amount, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, nil
	}
	if amount < 0 {
		return 0, apperrors.Validation("amount must be non-negative", nil)
	}
	return amount, nil
}

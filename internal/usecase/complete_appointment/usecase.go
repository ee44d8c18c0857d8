package complete_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/mtrevino/BarberPro-SchedulingService/internal/domain"
	appointmentRepo "github.com/mtrevino/BarberPro-SchedulingService/internal/infra/storage/appointment"
	ledgerRepo "github.com/mtrevino/BarberPro-SchedulingService/internal/infra/storage/ledger"
)

// UseCase use case для завершения записи с проведением кассовой операции
type UseCase struct {
	appointmentRepo AppointmentRepository
	ledgerRepo      LedgerRepository
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	ledgerRepo LedgerRepository,
	txManager TransactionManager,
	timeProvider TimeProvider,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		ledgerRepo:      ledgerRepo,
		txManager:       txManager,
		timeProvider:    timeProvider,
		logger:          logger,
	}
}

// Execute выполняет use case завершения записи
// Операция идемпотентна: повторный вызов для уже завершенной записи не
// создает вторую кассовую операцию, а возвращает существующую.
// Право на проведение операции отдается ровно одному вызову через
// условный UPDATE флага registered_in_ledger внутри сериализуемой транзакции
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CompleteAppointment: id=%d, paymentMethod=%s", req.AppointmentID, req.PaymentMethod)

	// 1. Валидация входных данных
	if req.AppointmentID <= 0 {
		return nil, fmt.Errorf("%w: appointmentID must be positive", ErrInvalidInput)
	}
	if !domain.ValidPaymentMethod(domain.PaymentMethod(req.PaymentMethod)) {
		return nil, fmt.Errorf("%w: unknown payment method %q", ErrInvalidInput, req.PaymentMethod)
	}

	var resp *Response

	// 2. Завершение и кассовая операция в одной сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Читаем запись с блокировкой строки
		appt, err := uc.appointmentRepo.GetByID(txCtx, req.AppointmentID)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
				return ErrAppointmentNotFound
			}
			return fmt.Errorf("%w: failed to get appointment: %v", ErrInternal, err)
		}

		// 2.2. Уже завершена и проведена: идемпотентный повтор
		if appt.Status == domain.StatusCompleted && appt.RegisteredInLedger {
			entry, err := uc.ledgerRepo.GetByAppointmentID(txCtx, appt.ID)
			if err != nil {
				return fmt.Errorf("%w: failed to get ledger entry: %v", ErrInternal, err)
			}
			resp = buildResponse(appt, entry, true)
			uc.logger.Info("CompleteAppointment: id=%d already completed, ledger entry id=%d", appt.ID, entry.ID)
			return nil
		}

		// 2.3. Переход статуса допустим только из confirmed
		if !appt.CanTransitionTo(domain.StatusCompleted) {
			uc.logger.Warn("CompleteAppointment: id=%d has status %s", appt.ID, appt.Status)
			return ErrInvalidTransition
		}

		// 2.4. Забираем право на проведение операции
		claimed, err := uc.appointmentRepo.ClaimCompletion(txCtx, appt.ID)
		if err != nil {
			return fmt.Errorf("%w: failed to claim completion: %v", ErrInternal, err)
		}
		if !claimed {
			// Конкурирующий вызов успел первым
			entry, err := uc.ledgerRepo.GetByAppointmentID(txCtx, appt.ID)
			if err != nil {
				return fmt.Errorf("%w: failed to get ledger entry: %v", ErrInternal, err)
			}
			resp = buildResponse(appt, entry, true)
			return nil
		}

		// 2.5. Проводим кассовую операцию на цену услуги
		entry, err := uc.ledgerRepo.Create(txCtx, &domain.LedgerEntry{
			AppointmentID: appt.ID,
			BranchID:      appt.BranchID,
			BarberID:      appt.BarberID,
			Amount:        appt.ServicePrice,
			PaymentMethod: domain.PaymentMethod(req.PaymentMethod),
			RecordedAt:    uc.timeProvider.Now(),
		})
		if err != nil {
			if errors.Is(err, ledgerRepo.ErrDuplicateEntry) {
				// Уникальный индекс по appointment_id как страховка от двойного проведения
				existing, getErr := uc.ledgerRepo.GetByAppointmentID(txCtx, appt.ID)
				if getErr != nil {
					return fmt.Errorf("%w: failed to get ledger entry: %v", ErrInternal, getErr)
				}
				resp = buildResponse(appt, existing, true)
				return nil
			}
			return fmt.Errorf("%w: failed to create ledger entry: %v", ErrInternal, err)
		}

		if err := uc.appointmentRepo.SetLedgerEntry(txCtx, appt.ID, entry.ID); err != nil {
			return fmt.Errorf("%w: failed to link ledger entry: %v", ErrInternal, err)
		}

		resp = buildResponse(appt, entry, false)
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CompleteAppointment: id=%d completed, ledger entry id=%d, amount=%.2f",
		resp.AppointmentID, resp.LedgerEntryID, resp.Amount)

	return resp, nil
}

func buildResponse(appt *domain.Appointment, entry *domain.LedgerEntry, alreadyCompleted bool) *Response {
	return &Response{
		AppointmentID:    appt.ID,
		Status:           string(domain.StatusCompleted),
		AlreadyCompleted: alreadyCompleted,
		LedgerEntryID:    entry.ID,
		Amount:           entry.Amount,
		PaymentMethod:    string(entry.PaymentMethod),
		RecordedAt:       entry.RecordedAt,
	}
}

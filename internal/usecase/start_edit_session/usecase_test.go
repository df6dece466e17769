package start_edit_session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avdeez/Shop-SchedulerService/internal/domain"
	"github.com/avdeez/Shop-SchedulerService/internal/integrations/shopapi"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type mockRepo struct {
	created *domain.EditSession
}

func (m *mockRepo) Create(ctx context.Context, s *domain.EditSession) (*domain.EditSession, error) {
	s.ID = 1
	m.created = s
	return s, nil
}

type mockShop struct {
	result *shopapi.VerifyOTPResult
	err    error
}

func (m *mockShop) VerifyOTP(ctx context.Context, phoneNumber, code string) (*shopapi.VerifyOTPResult, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.result, nil
}

type mockGate struct {
	verified []string
}

func (m *mockGate) MarkVerified(phone string) {
	m.verified = append(m.verified, phone)
}

func verifyResult() *shopapi.VerifyOTPResult {
	return &shopapi.VerifyOTPResult{
		Appointment: shopapi.Appointment{
			ID:           42,
			ShopUsername: "barber",
			ClientName:   "Ivan",
			ClientEmail:  "ivan@example.com",
			PhoneNumber:  "+7 999 123-45-67",
			Date:         "2026-03-12",
			Time:         "10:00",
			Status:       "Pending",
			Services: []shopapi.AppointmentService{
				{ID: 1, Name: "Haircut", DurationMinutes: 60, Quantity: 1},
			},
		},
		AvailableServices: []shopapi.ServiceItem{
			{ID: 1, Name: "Haircut", DurationMinutes: 60, Price: 1500},
			{ID: 2, Name: "Coloring", DurationMinutes: 120, Price: 4000},
		},
	}
}

func TestExecute_CreatesEditingSession(t *testing.T) {
	repo := &mockRepo{}
	gate := &mockGate{}
	uc := NewUseCase(repo, &mockShop{result: verifyResult()}, gate, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		PhoneNumber: "+7 999 123-45-67",
		OTPCode:     "123456",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, string(domain.SessionEditing), resp.State)
	assert.Equal(t, int64(42), resp.AppointmentID)
	assert.Equal(t, "2026-03-12", resp.Date)
	assert.Equal(t, "10:00", resp.Time)
	assert.Len(t, resp.AvailableServices, 2)

	// Сессия записана, рабочая копия совпадает с оригиналом
	require.NotNil(t, repo.created)
	assert.Equal(t, domain.SessionEditing, repo.created.State)
	assert.Equal(t, repo.created.OriginalServices, repo.created.EditServices)
	assert.Equal(t, "+79991234567", repo.created.PhoneNumber)

	// Телефон помечен подтвержденным
	assert.Equal(t, []string{"+79991234567"}, gate.verified)
}

func TestExecute_InvalidOTP(t *testing.T) {
	uc := NewUseCase(&mockRepo{}, &mockShop{err: shopapi.ErrInvalidOTP}, &mockGate{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		PhoneNumber: "+79991234567",
		OTPCode:     "000000",
	})
	assert.ErrorIs(t, err, ErrInvalidOTP)
}

func TestExecute_NoAppointment(t *testing.T) {
	uc := NewUseCase(&mockRepo{}, &mockShop{err: shopapi.ErrAppointmentNotFound}, &mockGate{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		PhoneNumber: "+79991234567",
		OTPCode:     "123456",
	})
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestExecute_Validation(t *testing.T) {
	uc := NewUseCase(&mockRepo{}, &mockShop{result: verifyResult()}, &mockGate{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{PhoneNumber: "", OTPCode: "123456"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{PhoneNumber: "+79991234567", OTPCode: ""})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

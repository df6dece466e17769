package create_reservation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avdeez/Shop-SchedulerService/internal/domain"
	"github.com/avdeez/Shop-SchedulerService/internal/integrations/shopapi"
	"github.com/avdeez/Shop-SchedulerService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type mockShop struct {
	reserveErr error
	calls      []shopapi.ReserveRequest
}

func (m *mockShop) Reserve(_ context.Context, _ string, req shopapi.ReserveRequest) error {
	m.calls = append(m.calls, req)
	return m.reserveErr
}

type mockGate struct {
	verified bool
}

func (m *mockGate) IsVerified(string) bool { return m.verified }

type fixedTime struct {
	now time.Time
}

func (f *fixedTime) Now() time.Time { return f.now }

func newTestUseCase(shop *mockShop, gate *mockGate, now time.Time) *UseCase {
	uc := NewUseCase(shop, gate, nopLogger{})
	uc.timeProvider = &fixedTime{now: now}
	return uc
}

func validRequest() *Request {
	return &Request{
		ShopUsername: "barbershop",
		ClientName:   "Иван Петров",
		ClientEmail:  "ivan@example.com",
		PhoneNumber:  "+7 (900) 123-45-67",
		Services: []ServiceLineInput{
			{ServiceID: 1, Quantity: 1},
			{ServiceID: 2, Quantity: 2},
		},
		Date:      time.Date(2025, 10, 15, 0, 0, 0, 0, domain.BusinessZone),
		StartTime: types.TimeString("10:00"),
	}
}

func testNow() time.Time {
	return time.Date(2025, 10, 10, 12, 0, 0, 0, domain.BusinessZone)
}

func TestExecute_Success(t *testing.T) {
	shop := &mockShop{}
	uc := newTestUseCase(shop, &mockGate{verified: true}, testNow())

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, "barbershop", resp.ShopUsername)
	assert.Equal(t, "2025-10-15", resp.Date)
	assert.Equal(t, "10:00", resp.Time)
	assert.Equal(t, string(domain.AppointmentPending), resp.Status)

	require.Len(t, shop.calls, 1)
	sent := shop.calls[0]
	assert.Equal(t, "2025-10-15 10:00", sent.Date)
	assert.Equal(t, "+79001234567", sent.PhoneNumber)
	require.Len(t, sent.Services, 2)
	assert.Equal(t, int64(1), sent.Services[0].ID)
	assert.Equal(t, 2, sent.Services[1].Quantity)
}

func TestExecute_PhoneNotVerified(t *testing.T) {
	shop := &mockShop{}
	uc := newTestUseCase(shop, &mockGate{verified: false}, testNow())

	_, err := uc.Execute(context.Background(), validRequest())
	require.ErrorIs(t, err, ErrPhoneNotVerified)
	assert.Empty(t, shop.calls)
}

func TestExecute_NoServices(t *testing.T) {
	shop := &mockShop{}
	uc := newTestUseCase(shop, &mockGate{verified: true}, testNow())

	req := validRequest()
	req.Services = nil

	_, err := uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrNoServicesSelected)
	assert.Empty(t, shop.calls)
}

func TestExecute_NoSlotSelected(t *testing.T) {
	uc := newTestUseCase(&mockShop{}, &mockGate{verified: true}, testNow())

	req := validRequest()
	req.StartTime = ""

	_, err := uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrNoSlotSelected)
}

func TestExecute_DateInPast(t *testing.T) {
	uc := newTestUseCase(&mockShop{}, &mockGate{verified: true}, testNow())

	req := validRequest()
	req.Date = time.Date(2025, 10, 1, 0, 0, 0, 0, domain.BusinessZone)

	_, err := uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_SameDayAllowed(t *testing.T) {
	shop := &mockShop{}
	uc := newTestUseCase(shop, &mockGate{verified: true}, testNow())

	req := validRequest()
	req.Date = time.Date(2025, 10, 10, 0, 0, 0, 0, domain.BusinessZone)

	_, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Len(t, shop.calls, 1)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := newTestUseCase(&mockShop{}, &mockGate{verified: true}, testNow())

	cases := []struct {
		name   string
		mutate func(*Request)
	}{
		{"empty shop username", func(r *Request) { r.ShopUsername = "" }},
		{"empty client name", func(r *Request) { r.ClientName = "" }},
		{"email without at sign", func(r *Request) { r.ClientEmail = "not-an-email" }},
		{"empty phone", func(r *Request) { r.PhoneNumber = "" }},
		{"zero quantity", func(r *Request) { r.Services[0].Quantity = 0 }},
		{"malformed start time", func(r *Request) { r.StartTime = "25:00" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRequest()
			tc.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			require.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_SlotTaken(t *testing.T) {
	shop := &mockShop{reserveErr: shopapi.ErrSlotTaken}
	uc := newTestUseCase(shop, &mockGate{verified: true}, testNow())

	_, err := uc.Execute(context.Background(), validRequest())
	require.ErrorIs(t, err, ErrSlotTaken)
}

func TestExecute_ShopNotFound(t *testing.T) {
	shop := &mockShop{reserveErr: shopapi.ErrShopNotFound}
	uc := newTestUseCase(shop, &mockGate{verified: true}, testNow())

	_, err := uc.Execute(context.Background(), validRequest())
	require.ErrorIs(t, err, ErrShopNotFound)
}

func TestExecute_BackendUnavailable(t *testing.T) {
	shop := &mockShop{reserveErr: shopapi.ErrInternal}
	uc := newTestUseCase(shop, &mockGate{verified: true}, testNow())

	_, err := uc.Execute(context.Background(), validRequest())
	require.ErrorIs(t, err, ErrShopUnavailable)
}

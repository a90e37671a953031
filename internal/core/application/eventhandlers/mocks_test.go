package eventhandlers_test

import (
	"context"
	"slices"

	"fastereats/internal/core/domain/model/kernel"
	"fastereats/internal/core/domain/model/order"
	"fastereats/internal/core/ports"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockOrderReader struct {
	mock.Mock
}

func (m *MockOrderReader) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

type MockUserDirectory struct {
	mock.Mock
}

func (m *MockUserDirectory) GetUser(ctx context.Context, id kernel.UUID) (ports.Contact, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(ports.Contact), args.Error(1)
}

type MockInvoiceRenderer struct {
	mock.Mock
}

func (m *MockInvoiceRenderer) Render(ctx context.Context, o *order.Order, customer ports.Contact) (ports.Attachment, error) {
	args := m.Called(ctx, o, customer)
	return args.Get(0).(ports.Attachment), args.Error(1)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) SendSMS(ctx context.Context, to, message string) error {
	return m.Called(ctx, to, message).Error(0)
}

func (m *MockNotifier) SendEmail(ctx context.Context, email ports.Email) error {
	return m.Called(ctx, email).Error(0)
}

// memoryDeliveryLog keeps delivery records in memory.
type memoryDeliveryLog struct {
	delivered map[uuid.UUID][]string
}

func newMemoryDeliveryLog() *memoryDeliveryLog {
	return &memoryDeliveryLog{delivered: make(map[uuid.UUID][]string)}
}

func (l *memoryDeliveryLog) DeliveredHandlers(_ context.Context, id uuid.UUID) ([]string, error) {
	return l.delivered[id], nil
}

func (l *memoryDeliveryLog) RecordDelivery(_ context.Context, id uuid.UUID, handler string) error {
	if !slices.Contains(l.delivered[id], handler) {
		l.delivered[id] = append(l.delivered[id], handler)
	}
	return nil
}

package mocks

import (
	"context"

	"quickbite/internal/domain"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/mock"
)

type StatusAdvancer struct {
	mock.Mock
}

func NewStatusAdvancer(t interface {
	mock.TestingT
	Cleanup(func())
}) *StatusAdvancer {
	m := &StatusAdvancer{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *StatusAdvancer) AdvanceOrder(orderID string) (domain.OrderStatus, error) {
	args := m.Called(orderID)
	return args.Get(0).(domain.OrderStatus), args.Error(1)
}

type EventWriter struct {
	mock.Mock
}

func NewEventWriter(t interface {
	mock.TestingT
	Cleanup(func())
}) *EventWriter {
	m := &EventWriter{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *EventWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	args := m.Called(ctx, msgs)
	return args.Error(0)
}

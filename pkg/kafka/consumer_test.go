package kafka

import (
	"context"
	"testing"
	"time"
)

func TestConsumerRequiresBrokers(t *testing.T) {
	if _, err := NewConsumer(); err == nil {
		t.Fatal("expected error for missing brokers")
	}
}

func TestRegisterHandlerRejectsDuplicateTopic(t *testing.T) {
	c, err := NewConsumer(WithConsumerBrokers([]string{"localhost:9092"}))
	if err != nil {
		t.Fatal(err)
	}
	c.RegisterHandler(nopHandler{})
	c.RegisterHandler(nopHandler{})
	if len(c.handlers) != 1 {
		t.Fatalf("got %d handlers, want 1", len(c.handlers))
	}
}

// Stop must let a reader blocked on the message queue exit before the
// queue closes, otherwise the send panics.
func TestStopDrainsReadersBeforeClosingQueue(t *testing.T) {
	c, err := NewConsumer(WithConsumerBrokers([]string{"localhost:9092"}))
	if err != nil {
		t.Fatal(err)
	}
	c.msgChan = make(chan *message) // unbuffered so the send blocks

	c.readerWg.Add(1)
	go func() {
		defer c.readerWg.Done()
		select {
		case c.msgChan <- &message{topic: "bars", data: []byte("{}")}:
		case <-c.stopChan:
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := c.Stop(ctx); err != nil {
		t.Fatalf("stop: %v", err)
	}
}

func TestStopIsIdempotent(t *testing.T) {
	c, err := NewConsumer(WithConsumerBrokers([]string{"localhost:9092"}))
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := c.Stop(ctx); err != nil {
		t.Fatalf("first stop: %v", err)
	}
	if err := c.Stop(ctx); err != nil {
		t.Fatalf("second stop: %v", err)
	}
}

type nopHandler struct{}

func (nopHandler) Topic() string                        { return "bars" }
func (nopHandler) Handle(context.Context, []byte) error { return nil }

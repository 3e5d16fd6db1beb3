package queue

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/wb-go/wbf/rabbitmq"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"
)

const (
	ExchangeName   = "orders-exchange"
	MainQueueName  = "order-events"
	RetryQueueName = "order-events-retry"
	DLQName        = "order-events-dlq"
	RoutingKey     = "orders"
)

// Order statuses that count as a confirmed purchase.
const (
	StatusCreated    = "created"
	StatusPaid       = "paid"
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
)

// OrderEvent is an order lifecycle notification from the commerce platform.
type OrderEvent struct {
	OrderID   int64     `json:"order_id"`
	Email     string    `json:"email"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// Paid reports whether the event signals confirmed payment.
func (e OrderEvent) Paid() bool {
	switch e.Status {
	case StatusPaid, StatusProcessing, StatusCompleted:
		return true
	default:
		return false
	}
}

// OrderQueue publishes and consumes order lifecycle events.
type OrderQueue struct {
	Publisher *rabbitmq.Publisher
	Consumer  *rabbitmq.Consumer
}

// NewOrderQueue declares the order-events topology: a durable main queue
// dead-lettering into the DLQ, and a TTL retry queue feeding back into the
// main queue.
func NewOrderQueue(ch *rabbitmq.Channel) (*OrderQueue, error) {
	exchange := rabbitmq.NewExchange(ExchangeName, "direct")
	if err := exchange.BindToChannel(ch); err != nil {
		return nil, fmt.Errorf("failed to bind to exchange: %w", err)
	}

	qm := rabbitmq.NewQueueManager(ch)

	_, err := qm.DeclareQueue(DLQName, rabbitmq.QueueConfig{Durable: true})
	if err != nil {
		return nil, fmt.Errorf("failed to declare DLQ queue: %w", err)
	}

	retryArgs := map[string]interface{}{
		"x-dead-letter-exchange":    "",
		"x-dead-letter-routing-key": MainQueueName,
		"x-message-ttl":             int32(5000),
	}

	_, err = qm.DeclareQueue(RetryQueueName, rabbitmq.QueueConfig{
		Durable: true,
		Args:    retryArgs,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to declare retry queue: %w", err)
	}

	mainArgs := map[string]interface{}{
		"x-dead-letter-exchange":    "",
		"x-dead-letter-routing-key": DLQName,
	}

	mainQ, err := qm.DeclareQueue(MainQueueName, rabbitmq.QueueConfig{
		Durable: true,
		Args:    mainArgs,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to declare main queue: %w", err)
	}

	if err := ch.QueueBind(mainQ.Name, RoutingKey, exchange.Name(), false, nil); err != nil {
		return nil, fmt.Errorf("failed to bind the exchange to the main queue: %w", err)
	}

	pub := rabbitmq.NewPublisher(ch, exchange.Name())
	cons := rabbitmq.NewConsumer(ch, rabbitmq.NewConsumerConfig(mainQ.Name))

	return &OrderQueue{Publisher: pub, Consumer: cons}, nil
}

func (q *OrderQueue) Publish(event OrderEvent, strategy retry.Strategy) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	return q.Publisher.PublishWithRetry(body, RoutingKey, "application/json", strategy)
}

func (q *OrderQueue) Consume(out chan<- OrderEvent, strategy retry.Strategy) error {
	msgChan := make(chan []byte)

	go func() {
		for m := range msgChan {
			var event OrderEvent
			if err := json.Unmarshal(m, &event); err != nil {
				zlog.Logger.Error().Err(err).Msg("failed to unmarshal order event")
				continue
			}

			out <- event
		}
	}()

	return q.Consumer.ConsumeWithRetry(msgChan, strategy)
}

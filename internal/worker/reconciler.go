package worker

import (
	"context"
	"sync"

	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/ekorolev/cart-recovery/internal/rabbitmq/queue"
)

//go:generate mockgen -source=reconciler.go -destination=../mocks/worker/reconciler_mock.go -package=mocks

type orderConsumer interface {
	Consume(out chan<- queue.OrderEvent, strategy retry.Strategy) error
}

type eventHandler interface {
	HandleEvent(ctx context.Context, event queue.OrderEvent)
}

// Reconciler consumes order lifecycle events and clears tracked carts for
// customers who completed a purchase.
type Reconciler struct {
	queue   orderConsumer
	handler eventHandler
}

func NewReconciler(q orderConsumer, h eventHandler) *Reconciler {
	return &Reconciler{
		queue:   q,
		handler: h,
	}
}

func (r *Reconciler) Run(ctx context.Context, strategy retry.Strategy, workerCount int) {
	var wg sync.WaitGroup
	eventChan := make(chan queue.OrderEvent, workerCount*10)

	go func() {
		if err := r.queue.Consume(eventChan, strategy); err != nil {
			zlog.Logger.Error().Err(err).Msg("failed to consume order events")
		}
	}()

	wg.Add(workerCount)
	for i := 0; i < workerCount; i++ {
		go func(id int) {
			defer wg.Done()

			zlog.Logger.Printf("reconciler-%d started", id)

			for {
				select {
				case <-ctx.Done():
					zlog.Logger.Printf("reconciler-%d shutting down", id)
					return
				case event, ok := <-eventChan:
					if !ok {
						zlog.Logger.Printf("reconciler-%d channel closed, shutting down", id)
						return
					}

					r.handler.HandleEvent(ctx, event)
				}
			}
		}(i)
	}

	<-ctx.Done()
	wg.Wait()
	zlog.Logger.Print("reconciler stopped")
}

// Package pusher batches messages in memory and flushes them on an interval.
package pusher

import (
	"sync"
	"time"

	"github.com/zeromicro/go-zero/core/logx"
)

type Pusher[T any] struct {
	PushLogic    func(...T) error
	PushInterval time.Duration
	ErrorHandler func(error)

	lock           sync.Mutex
	messagesBuffer []T
	done           chan struct{}
	stopped        chan struct{}
	stopOnce       sync.Once
}

func NewPusher[T any](options ...Option[T]) (newPusher *Pusher[T]) {
	newPusher = &Pusher[T]{
		PushLogic:    func(...T) error { return nil },
		ErrorHandler: func(err error) { logx.Errorf("push: %v", err) },
		PushInterval: time.Second,
		done:         make(chan struct{}),
		stopped:      make(chan struct{}),
	}

	for _, option := range options {
		option(newPusher)
	}

	return
}

// PushAll hands the whole buffer to PushLogic. A failed push keeps the
// messages for the next round.
func (p *Pusher[T]) PushAll() error {
	p.lock.Lock()
	defer p.lock.Unlock()

	if len(p.messagesBuffer) == 0 {
		return nil
	}

	if err := p.PushLogic(p.messagesBuffer...); err != nil {
		return err
	}

	p.messagesBuffer = nil
	return nil
}

func (p *Pusher[T]) AddMessages(messages ...T) {
	p.lock.Lock()
	defer p.lock.Unlock()

	p.messagesBuffer = append(p.messagesBuffer, messages...)
}

func (p *Pusher[T]) Len() int {
	p.lock.Lock()
	defer p.lock.Unlock()

	return len(p.messagesBuffer)
}

func (p *Pusher[T]) Start() {
	go func() {
		defer close(p.stopped)

		ticker := time.NewTicker(p.PushInterval)
		defer ticker.Stop()

		for {
			select {
			case <-p.done:
				if err := p.PushAll(); err != nil {
					p.ErrorHandler(err)
				}
				return
			case <-ticker.C:
				if err := p.PushAll(); err != nil {
					p.ErrorHandler(err)
				}
			}
		}
	}()
}

// Stop flushes what is buffered and waits for the push loop to exit.
func (p *Pusher[T]) Stop() {
	p.stopOnce.Do(func() {
		close(p.done)
		<-p.stopped
	})
}

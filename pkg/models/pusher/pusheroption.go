package pusher

import "time"

type Option[T any] func(*Pusher[T])

func WithPushLogic[T any](pushLogic func(...T) error) Option[T] {
	return func(p *Pusher[T]) {
		p.PushLogic = pushLogic
	}
}

func WithPushInterval[T any](pushInterval time.Duration) Option[T] {
	return func(p *Pusher[T]) {
		p.PushInterval = pushInterval
	}
}

func WithErrorHandler[T any](errorHandler func(error)) Option[T] {
	return func(p *Pusher[T]) {
		p.ErrorHandler = errorHandler
	}
}

func WithElements[T any](element ...T) Option[T] {
	return func(p *Pusher[T]) {
		p.messagesBuffer = append(p.messagesBuffer, element...)
	}
}

package rabbitmq

import (
	"context"
	"time"

	"github.com/rabbitmq/amqp091-go"
	"github.com/wb-go/wbf/zlog"
)

// Connect dials the broker, retrying on a fixed pause until it succeeds or
// the context is cancelled. The broker coming up late must not keep the
// service from starting eventually.
func Connect(ctx context.Context, url string, pause time.Duration) (*amqp091.Connection, error) {
	for {
		conn, err := amqp091.Dial(url)
		if err == nil {
			return conn, nil
		}

		zlog.Logger.Error().Err(err).Msg("failed to connect to rabbitmq, retrying")

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(pause):
		}
	}
}

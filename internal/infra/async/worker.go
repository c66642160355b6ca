package async

import "context"

// Worker is a long running consumer. Run calls done when it returns.
type Worker interface {
	Run(ctx context.Context, done func())
	Shutdown()
}

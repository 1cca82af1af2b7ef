package usecase

import (
	"context"
	"sync"

	"github.com/allisson/mediavault/internal/metrics"
)

type operationRecorder struct {
	metrics.NoOpBusinessMetrics
	mu         sync.Mutex
	operations []string
}

func (r *operationRecorder) RecordOperation(ctx context.Context, domain, operation, status string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.operations = append(r.operations, domain+"/"+operation+"/"+status)
}

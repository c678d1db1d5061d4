package domain

import (
	"context"
	"io"
)

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	Topics() []Topic
	Query(ctx context.Context, in QueryInput) (Snapshot, error)
	Stats(ctx context.Context, in StatsInput) (Summary, error)
	Summarize(snap Snapshot) Summary
	Export(ctx context.Context, in QueryInput, w io.Writer) (int, error)
}

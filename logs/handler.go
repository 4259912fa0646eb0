package logs

import (
	"context"
	"log/slog"
)

type Handler struct {
	slog.Handler
}

func (h *Handler) Handle(ctx context.Context, record slog.Record) error {
	if v := ctx.Value(StageKey); v != nil {
		record.Add("logs.stage", v.(Stage))
	}
	return h.Handler.Handle(ctx, record)
}

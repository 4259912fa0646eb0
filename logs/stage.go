package logs

import "context"

// Stage names the part of a demonstration currently playing. It rides
// the context so every record and error can tell where it happened.
type Stage string

type StageKeyType struct{}

var StageKey StageKeyType

func WithStage(ctx context.Context, stage Stage) context.Context {
	return context.WithValue(ctx, StageKey, stage)
}

func StageOf(ctx context.Context) Stage {
	if v := ctx.Value(StageKey); v != nil {
		return v.(Stage)
	}
	return ""
}

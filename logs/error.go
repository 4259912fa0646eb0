package logs

import (
	"context"
	"errors"
	"fmt"
)

func WrapStage(ctx context.Context, err error) error {
	v := ctx.Value(StageKey)
	if v == nil {
		return err
	}
	err = errors.Join(err, fmt.Errorf("stage: %s", v.(Stage)))
	return err
}

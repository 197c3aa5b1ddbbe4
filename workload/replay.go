package workload

import (
	"context"
	"errors"
	"time"

	"github.com/webbmaffian/go-qmap/hashmap"
	"go.uber.org/zap"
)

type Stats struct {
	Ops          int
	Sets         int
	SetsFailed   int
	GetHits      int
	GetMisses    int
	RemoveHits   int
	RemoveMisses int
	Load         float64
}

// Replayer applies workload operations to a map. Report, if set, is called
// at most once per Interval while running and once when the run ends.
type Replayer struct {
	Map      *hashmap.HashMap[string]
	Logger   *zap.Logger
	Report   func(Stats)
	Interval time.Duration
}

func (rp *Replayer) Run(ctx context.Context, r *Reader) (stats Stats, err error) {
	if rp.Map == nil {
		return stats, errors.New("no map to replay into")
	}

	logger := rp.Logger

	if logger == nil {
		logger = zap.NewNop()
	}

	lastReport := time.Now()

	defer func() {
		if rp.Report != nil {
			rp.Report(stats)
		}
	}()

	for r.Next() {
		if err = ctx.Err(); err != nil {
			return
		}

		op := r.Op()
		rp.apply(&stats, op)

		if ce := logger.Check(zap.DebugLevel, "applied"); ce != nil {
			ce.Write(zap.Int("line", r.Line()), zap.Stringer("op", op.Kind), zap.String("key", op.Key))
		}

		if op.Kind == KindLoad {
			logger.Info("load", zap.Int("line", r.Line()), zap.Float64("load", stats.Load))
		}

		if rp.Report != nil && time.Since(lastReport) >= rp.Interval {
			rp.Report(stats)
			lastReport = time.Now()
		}
	}

	err = r.Err()
	return
}

func (rp *Replayer) apply(stats *Stats, op Op) {
	stats.Ops++

	switch op.Kind {
	case KindSet:
		if rp.Map.Set(op.Key, op.Value) {
			stats.Sets++
		} else {
			stats.SetsFailed++
		}
	case KindGet:
		if _, ok := rp.Map.Get(op.Key); ok {
			stats.GetHits++
		} else {
			stats.GetMisses++
		}
	case KindRemove:
		if _, ok := rp.Map.Remove(op.Key); ok {
			stats.RemoveHits++
		} else {
			stats.RemoveMisses++
		}
	}

	stats.Load = rp.Map.Load()
}

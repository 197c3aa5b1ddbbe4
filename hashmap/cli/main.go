package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/gosuri/uilive"
	"github.com/webbmaffian/go-qmap/config"
	"github.com/webbmaffian/go-qmap/hashmap"
	"github.com/webbmaffian/go-qmap/internal/logutil"
	"github.com/webbmaffian/go-qmap/workload"
	"go.uber.org/zap"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, os.Kill)
	defer stop()

	args := os.Args[1:]

	if len(args) < 1 || len(args) > 2 {
		log.Println("Usage: cli <workload file> [config file]")
		return
	}

	cfg := config.Default()

	if len(args) == 2 {
		var err error

		if cfg, err = config.Load(args[1]); err != nil {
			log.Println(err)
			return
		}
	}

	logger, err := logutil.New(cfg.Log)

	if err != nil {
		log.Println(err)
		return
	}

	defer logger.Sync()

	r, err := workload.Open(args[0])

	if err != nil {
		logger.Error("failed to open workload", zap.String("path", args[0]), zap.Error(err))
		return
	}

	defer r.Close()

	m := hashmap.NewWithOptions[string](cfg.Capacity, hashmap.WithLogger(logger.Named("hashmap")))

	writer := uilive.New()

	capacity := writer.Newline()
	occupied := writer.Newline()
	load := writer.Newline()
	sets := writer.Newline()
	gets := writer.Newline()
	removes := writer.Newline()
	longest := writer.Newline()

	writer.Start()
	defer writer.Stop()

	rp := workload.Replayer{
		Map:      m,
		Logger:   logger.Named("replay"),
		Interval: cfg.Refresh.Duration,
		Report: func(s workload.Stats) {
			fmt.Fprintf(capacity, "Capacity: %d\n", m.Cap())
			fmt.Fprintf(occupied, "Occupied buckets: %d\n", m.Occupied())
			fmt.Fprintf(load, "Load: %.3f\n", s.Load)
			fmt.Fprintf(sets, "Sets: %d ok, %d failed\n", s.Sets, s.SetsFailed)
			fmt.Fprintf(gets, "Gets: %d hit, %d miss\n", s.GetHits, s.GetMisses)
			fmt.Fprintf(removes, "Removes: %d hit, %d miss\n", s.RemoveHits, s.RemoveMisses)
			fmt.Fprintf(longest, "Longest chain: %d\n", longestChain(m))
		},
	}

	stats, err := rp.Run(ctx, r)

	if err != nil {
		logger.Error("replay stopped", zap.Int("ops", stats.Ops), zap.Error(err))
		return
	}

	logger.Info("replay done", zap.Int("ops", stats.Ops), zap.Float64("load", stats.Load))
}

func longestChain(m *hashmap.HashMap[string]) (longest int) {
	for i := 0; i < m.Cap(); i++ {
		if l := m.BucketLen(i); l > longest {
			longest = l
		}
	}

	return
}

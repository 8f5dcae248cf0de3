package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/swarmgrid/extend"
	"github.com/katalvlaran/swarmgrid/pivot"
	"github.com/katalvlaran/swarmgrid/safety"
	"github.com/katalvlaran/swarmgrid/scenario"
	"github.com/katalvlaran/swarmgrid/swarm"
)

// task names one discovered scenario file and the directories it needs.
type task struct {
	mapDir   string // the map-folder under scenariosRoot this scenario belongs to
	scenPath string
	scenFile string
	resDir   string
}

func runBatch(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tasks, err := discoverTasks(scenariosRoot, resultsRoot)
	if err != nil {
		return err
	}
	if len(tasks) == 0 {
		log.Println("swarmgrid: no scenarios found")
		return nil
	}

	var timeLogMus sync.Map // resDir -> *sync.Mutex, one CSV per map's results directory

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for _, tk := range tasks {
		tk := tk
		g.Go(func() error {
			// A cancelled context means SIGINT: let work already running
			// finish, just stop picking up new scenarios.
			if gctx.Err() != nil {
				return nil
			}
			if err := processScenario(tk, &timeLogMus); err != nil {
				log.Printf("swarmgrid: %s: %v", tk.scenFile, err)
			}
			return nil
		})
	}

	// errgroup's own ctx cancellation is never triggered by us (worker
	// errors are logged, not returned), so Wait only blocks on workers
	// actually finishing — which is what a graceful SIGINT needs.
	_ = g.Wait()

	if ctx.Err() != nil {
		log.Println("swarmgrid: interrupted, finished in-flight scenarios")
	}
	return nil
}

func discoverTasks(scenariosRoot, resultsRoot string) ([]task, error) {
	entries, err := os.ReadDir(scenariosRoot)
	if err != nil {
		return nil, fmt.Errorf("swarmgrid: reading scenarios root %s: %w", scenariosRoot, err)
	}

	var tasks []task
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		mapDir := filepath.Join(scenariosRoot, e.Name())
		resDir := filepath.Join(resultsRoot, e.Name())
		if err := os.MkdirAll(resDir, 0o755); err != nil {
			return nil, fmt.Errorf("swarmgrid: creating results dir %s: %w", resDir, err)
		}

		files, err := os.ReadDir(mapDir)
		if err != nil {
			return nil, fmt.Errorf("swarmgrid: reading map dir %s: %w", mapDir, err)
		}
		for _, f := range files {
			name := f.Name()
			if f.IsDir() || !strings.HasSuffix(name, ".txt") || strings.HasPrefix(name, "res_") {
				continue
			}
			tasks = append(tasks, task{
				mapDir:   mapDir,
				scenPath: filepath.Join(mapDir, name),
				scenFile: name,
				resDir:   resDir,
			})
		}
	}
	return tasks, nil
}

func processScenario(tk task, timeLogMus *sync.Map) error {
	sc, err := scenario.ParseScenario(tk.scenPath)
	if err != nil {
		return err
	}

	mapPath := filepath.Join(tk.mapDir, "..", sc.MapPath)
	g, pivotCell, err := scenario.ParseMap(mapPath)
	if err != nil {
		return err
	}

	cfg, err := swarm.New(sc.Order, sc.Initial)
	if err != nil {
		return fmt.Errorf("building initial configuration: %w", err)
	}

	outPath := filepath.Join(tk.resDir, "res_"+tk.scenFile)
	safe := safety.IsSafe(g, pivotCell, cfg)
	if !safe {
		return scenario.WriteResult(outPath, false, sc.Order, [3]swarm.Snapshot{})
	}

	start := time.Now()

	var milestones [3]swarm.Snapshot
	milestones[0] = cfg.Snapshot()

	pivot.Visit(sc.Order, cfg, pivotCell, g,
		pivot.WithHistory(recordHistory),
		pivot.WithOnWarning(func(w pivot.Warning) {
			log.Printf("swarmgrid: %s: pivot-visit agent %d: %s", tk.scenFile, w.Agent, w.Detail)
		}),
	)
	milestones[1] = cfg.Snapshot()

	extend.Extend(sc.Order, cfg, sc.Destinations, g,
		extend.WithHistory(recordHistory),
		extend.WithOnWarning(func(w extend.Warning) {
			log.Printf("swarmgrid: %s: destination-extension agent %d: %s", tk.scenFile, w.Agent, w.Detail)
		}),
	)
	milestones[2] = cfg.Snapshot()

	elapsed := time.Since(start).Seconds()

	if err := scenario.WriteResult(outPath, true, sc.Order, milestones); err != nil {
		return err
	}

	csvPath := filepath.Join(tk.resDir, "execution_times.csv")
	muIface, _ := timeLogMus.LoadOrStore(tk.resDir, &sync.Mutex{})
	mu := muIface.(*sync.Mutex)
	mu.Lock()
	err = scenario.AppendTimeLog(csvPath, tk.scenFile, elapsed)
	mu.Unlock()

	return err
}

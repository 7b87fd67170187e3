package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/banshee-data/planfield/internal/bfs3d"
	"github.com/banshee-data/planfield/internal/config"
	"github.com/banshee-data/planfield/internal/fieldstore"
	"github.com/banshee-data/planfield/internal/monitor"
	"github.com/banshee-data/planfield/internal/version"
	"github.com/banshee-data/planfield/internal/voxel"
)

// planfield builds a synthetic clearance scene, syncs the distance-field
// engine against it, runs a goal, and reports field statistics.
// Optionally writes slice heat maps and persists a snapshot to sqlite.
func main() {
	dimX := flag.Int("dx", 64, "Grid voxels along x")
	dimY := flag.Int("dy", 64, "Grid voxels along y")
	dimZ := flag.Int("dz", 64, "Grid voxels along z")
	res := flag.Float64("res", 0.02, "Voxel edge length in metres")
	frame := flag.String("frame", "planning", "Reference frame identifier")
	obstacles := flag.Int("obstacles", 12, "Number of random spherical obstacles")
	seed := flag.Int64("seed", 1, "Obstacle placement seed")
	goalSpec := flag.String("goal", "", "Goal voxel as x,y,z (default: grid centre)")
	tuningPath := flag.String("tuning", "", "Path to JSON tuning config")
	plotsDir := flag.String("plots", "", "Directory for slice heat map PNGs (omit to skip)")
	htmlPath := flag.String("html", "", "Path for an HTML heat map of the goal slice (omit to skip)")
	dbPath := flag.String("db", "", "Sqlite path for a field snapshot (omit to skip)")
	showVersion := flag.Bool("version", false, "Print build information and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("planfield %s (%s, built %s)\n", version.Version, version.GitSHA, version.BuildTime)
		return
	}

	tuning, err := config.LoadTuningConfig(*tuningPath)
	if err != nil {
		log.Fatalf("load tuning: %v", err)
	}
	tuning.ApplyDefaults()
	if err := tuning.Validate(); err != nil {
		log.Fatalf("invalid tuning: %v", err)
	}
	conn, err := bfs3d.ParseConnectivity(*tuning.Connectivity)
	if err != nil {
		log.Fatalf("invalid tuning: %v", err)
	}

	dims := voxel.Dims{X: *dimX, Y: *dimY, Z: *dimZ}
	grid, err := voxel.NewClearanceGrid(dims, *res, *frame)
	if err != nil {
		log.Fatalf("build clearance grid: %v", err)
	}

	rng := rand.New(rand.NewSource(*seed))
	sizeX := float64(dims.X) * *res
	sizeY := float64(dims.Y) * *res
	sizeZ := float64(dims.Z) * *res
	for i := 0; i < *obstacles; i++ {
		r := (0.02 + 0.08*rng.Float64()) * sizeX
		grid.MarkSphere(rng.Float64()*sizeX, rng.Float64()*sizeY, rng.Float64()*sizeZ, r)
	}

	field := bfs3d.New(conn)
	if err := field.Sync(grid, *tuning.ClearanceThresholdMeters); err != nil {
		log.Fatalf("sync: %v", err)
	}

	goal := voxel.Coord{X: dims.X / 2, Y: dims.Y / 2, Z: dims.Z / 2}
	if *goalSpec != "" {
		if _, err := fmt.Sscanf(*goalSpec, "%d,%d,%d", &goal.X, &goal.Y, &goal.Z); err != nil {
			log.Fatalf("invalid -goal %q: %v", *goalSpec, err)
		}
	}
	if err := field.Run(goal); err != nil {
		log.Fatalf("run: %v", err)
	}

	s := monitor.Summarise(field)
	fmt.Printf("grid %s, goal %s, connectivity %d\n", dims, goal, conn)
	fmt.Printf("walls %d/%d (%.1f%%), reachable %d, unreachable %d\n",
		s.Walls, s.Total, 100*float64(s.Walls)/float64(s.Total), s.Reachable, s.Unreachable)
	fmt.Printf("distance max %d, mean %.1f, p95 %.1f\n", s.MaxDistance, s.MeanDistance, s.P95Distance)

	if *plotsDir != "" {
		n, err := monitor.SaveSliceHeatmaps(field, *plotsDir)
		if err != nil {
			log.Fatalf("write plots: %v", err)
		}
		log.Printf("wrote %d slice heat maps to %s", n, *plotsDir)
	}

	if *htmlPath != "" {
		if err := os.MkdirAll(filepath.Dir(*htmlPath), 0755); err != nil {
			log.Fatalf("create html dir: %v", err)
		}
		f, err := os.Create(*htmlPath)
		if err != nil {
			log.Fatalf("create html: %v", err)
		}
		if err := monitor.RenderSliceHTML(field, goal.Z, f); err != nil {
			f.Close()
			log.Fatalf("render html: %v", err)
		}
		f.Close()
		log.Printf("wrote heat map page to %s", *htmlPath)
	}

	if *dbPath != "" {
		store, err := fieldstore.Open(*dbPath)
		if err != nil {
			log.Fatalf("open snapshot db: %v", err)
		}
		defer store.Close()
		snap, err := fieldstore.Capture(field, grid, *tuning.ClearanceThresholdMeters, "manual")
		if err != nil {
			log.Fatalf("capture snapshot: %v", err)
		}
		if err := store.Insert(snap); err != nil {
			log.Fatalf("insert snapshot: %v", err)
		}
		log.Printf("stored snapshot %s (%d bytes)", snap.SnapshotID, len(snap.CellBlob))
	}
}

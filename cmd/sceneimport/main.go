// Command sceneimport stores a scene file's static objects in PostgreSQL so
// that npcsim can run with scene.source: postgres.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/udisondev/npcfsm/internal/config"
	"github.com/udisondev/npcfsm/internal/data"
	"github.com/udisondev/npcfsm/internal/db"
)

func main() {
	cfgPath := flag.String("config", "config/npcsim.yaml", "simulation config (database section is used)")
	scenePath := flag.String("scene", "scenes/courtyard.yaml", "scene file to import")
	name := flag.String("name", "", "scene name in the database (default: name from the scene file)")
	list := flag.Bool("list", false, "list stored scenes and exit")
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, nil)))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, *cfgPath, *scenePath, *name, *list); err != nil {
		slog.Error("import failed", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfgPath, scenePath, name string, list bool) error {
	cfg, err := config.LoadSimulation(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	database, err := db.New(ctx, cfg.Database.DSN())
	if err != nil {
		return err
	}
	defer database.Close()

	if _, err := db.RunMigrations(ctx, cfg.Database.DSN()); err != nil {
		return err
	}

	if list {
		scenes, err := db.ListScenes(ctx, database.Pool())
		if err != nil {
			return err
		}
		for _, s := range scenes {
			n, err := db.NewSceneRepository(database.Pool(), s).Count(ctx)
			if err != nil {
				return err
			}
			fmt.Printf("%s\t%d objects\n", s, n)
		}
		return nil
	}

	scene, err := data.LoadScene(scenePath)
	if err != nil {
		return err
	}
	if name == "" {
		name = scene.Name
	}
	if name == "" {
		return fmt.Errorf("scene %s has no name, pass -name", scenePath)
	}

	repo := db.NewSceneRepository(database.Pool(), name)
	n, err := repo.ReplaceAll(ctx, scene.Objects)
	if err != nil {
		return err
	}

	for _, tag := range []string{cfg.Behavior.CheckpointTag, cfg.Behavior.SafeTag} {
		if err := verifyTag(ctx, repo, scene, tag); err != nil {
			return err
		}
	}

	slog.Info("scene imported", "scene", name, "objects", n, "file", scenePath)
	return nil
}

// verifyTag reads the tagged objects back and compares them with the file.
func verifyTag(ctx context.Context, repo *db.SceneRepository, scene *data.Scene, tag string) error {
	stored, err := repo.LoadByTag(ctx, tag)
	if err != nil {
		return err
	}

	want := 0
	for _, obj := range scene.Objects {
		if obj.Tag() == tag {
			want++
		}
	}
	if len(stored) != want {
		return fmt.Errorf("scene %s: %d objects tagged %q stored, file has %d", repo.Scene(), len(stored), tag, want)
	}
	if want == 0 {
		slog.Warn("scene has no objects with tag", "scene", repo.Scene(), "tag", tag)
	}
	return nil
}

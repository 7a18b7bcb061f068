package db

import (
	"context"
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/udisondev/npcfsm/internal/model"
)

// SceneRepository stores the static objects of one named scene.
// Objects come back in the order they were saved.
type SceneRepository struct {
	pool  *pgxpool.Pool
	scene string
}

// NewSceneRepository creates a repository for scene.
func NewSceneRepository(pool *pgxpool.Pool, scene string) *SceneRepository {
	return &SceneRepository{pool: pool, scene: scene}
}

// Scene returns the scene name the repository is bound to.
func (r *SceneRepository) Scene() string {
	return r.scene
}

// LoadAll loads all objects of the scene.
func (r *SceneRepository) LoadAll(ctx context.Context) ([]model.SceneObject, error) {
	query := `
		SELECT object_id, name, tag, x, y, z
		FROM scene_objects
		WHERE scene = $1
		ORDER BY ord
	`
	objects, err := r.query(ctx, query, r.scene)
	if err != nil {
		return nil, fmt.Errorf("loading objects of scene %q: %w", r.scene, err)
	}
	return objects, nil
}

// LoadByTag loads the scene objects carrying tag.
func (r *SceneRepository) LoadByTag(ctx context.Context, tag string) ([]model.SceneObject, error) {
	query := `
		SELECT object_id, name, tag, x, y, z
		FROM scene_objects
		WHERE scene = $1 AND tag = $2
		ORDER BY ord
	`
	objects, err := r.query(ctx, query, r.scene, tag)
	if err != nil {
		return nil, fmt.Errorf("loading %q objects of scene %q: %w", tag, r.scene, err)
	}
	return objects, nil
}

func (r *SceneRepository) query(ctx context.Context, query string, args ...any) ([]model.SceneObject, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	objects := make([]model.SceneObject, 0, 16)
	for rows.Next() {
		var (
			objectID  int64
			name, tag string
			x, y, z   float64
		)
		if err := rows.Scan(&objectID, &name, &tag, &x, &y, &z); err != nil {
			return nil, fmt.Errorf("scanning scene object row: %w", err)
		}
		objects = append(objects, model.NewSceneObject(uint32(objectID), name, tag, mgl64.Vec3{x, y, z}))
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating scene object rows: %w", err)
	}
	return objects, nil
}

// ReplaceAll atomically swaps the scene's objects for objects.
// Returns the number of rows written.
func (r *SceneRepository) ReplaceAll(ctx context.Context, objects []model.SceneObject) (int64, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	if _, err := tx.Exec(ctx, `DELETE FROM scene_objects WHERE scene = $1`, r.scene); err != nil {
		return 0, fmt.Errorf("clearing scene %q: %w", r.scene, err)
	}

	n, err := tx.CopyFrom(ctx,
		pgx.Identifier{"scene_objects"},
		[]string{"scene", "object_id", "ord", "name", "tag", "x", "y", "z"},
		pgx.CopyFromSlice(len(objects), func(i int) ([]any, error) {
			obj := objects[i]
			pos := obj.Position()
			return []any{r.scene, int64(obj.ObjectID()), int32(i), obj.Name(), obj.Tag(), pos.X(), pos.Y(), pos.Z()}, nil
		}),
	)
	if err != nil {
		return 0, fmt.Errorf("copying objects of scene %q: %w", r.scene, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("committing scene %q: %w", r.scene, err)
	}
	return n, nil
}

// Count returns the number of objects stored for the scene.
func (r *SceneRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM scene_objects WHERE scene = $1`, r.scene).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("counting objects of scene %q: %w", r.scene, err)
	}
	return n, nil
}

// ListScenes returns the names of all stored scenes.
func ListScenes(ctx context.Context, pool *pgxpool.Pool) ([]string, error) {
	rows, err := pool.Query(ctx, `SELECT DISTINCT scene FROM scene_objects ORDER BY scene`)
	if err != nil {
		return nil, fmt.Errorf("listing scenes: %w", err)
	}
	scenes, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("listing scenes: %w", err)
	}
	return scenes, nil
}

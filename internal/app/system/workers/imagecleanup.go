// internal/app/system/workers/imagecleanup.go
package workers

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/cedhub/cedhub/internal/app/system/imagestore"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// ImageCleanup is a background worker that removes profile image files no
// account references anymore. Upload replaces the old file, but a removal
// failure or a crash between delete and update can leave orphans behind.
type ImageCleanup struct {
	db       *mongo.Database
	images   *imagestore.Store
	log      *zap.Logger
	interval time.Duration
	stopCh   chan struct{}
	wg       sync.WaitGroup
}

// NewImageCleanup creates an image cleanup worker that sweeps the images
// directory every interval.
func NewImageCleanup(db *mongo.Database, images *imagestore.Store, logger *zap.Logger, interval time.Duration) *ImageCleanup {
	return &ImageCleanup{
		db:       db,
		images:   images,
		log:      logger,
		interval: interval,
		stopCh:   make(chan struct{}),
	}
}

// Start begins the background sweep loop.
func (w *ImageCleanup) Start() {
	w.wg.Add(1)
	go w.run()
	w.log.Info("image cleanup worker started",
		zap.Duration("interval", w.interval))
}

// Stop signals the worker to stop and waits for it to finish.
func (w *ImageCleanup) Stop() {
	close(w.stopCh)
	w.wg.Wait()
	w.log.Info("image cleanup worker stopped")
}

func (w *ImageCleanup) run() {
	defer w.wg.Done()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.stopCh:
			return
		case <-ticker.C:
			w.sweep()
		}
	}
}

// sweep removes every file in the images directory that no user record
// points at. The default placeholder is always kept.
func (w *ImageCleanup) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	referenced, err := w.referencedNames(ctx)
	if err != nil {
		w.log.Error("image cleanup: list referenced pictures failed", zap.Error(err))
		return
	}
	referenced[w.images.DefaultName()] = struct{}{}

	entries, err := os.ReadDir(w.images.Root())
	if err != nil {
		w.log.Error("image cleanup: read images dir failed", zap.Error(err))
		return
	}

	removed := 0
	now := time.Now()
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if _, ok := referenced[e.Name()]; ok {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		// A file younger than the interval may belong to an upload whose
		// user record landed after the reference snapshot was taken. Leave
		// it for the next sweep, whose snapshot will include it.
		if now.Sub(info.ModTime()) < w.interval {
			continue
		}
		if err := os.Remove(filepath.Join(w.images.Root(), e.Name())); err != nil {
			w.log.Warn("image cleanup: remove orphan failed",
				zap.String("file", e.Name()), zap.Error(err))
			continue
		}
		removed++
	}

	if removed > 0 {
		w.log.Info("image cleanup: removed orphan images", zap.Int("count", removed))
	}
}

func (w *ImageCleanup) referencedNames(ctx context.Context) (map[string]struct{}, error) {
	cur, err := w.db.Collection("users").Find(ctx,
		bson.M{"profilePicture": bson.M{"$nin": bson.A{"", nil}}})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	names := make(map[string]struct{})
	for cur.Next(ctx) {
		var doc struct {
			ProfilePicture string `bson:"profilePicture"`
		}
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		names[doc.ProfilePicture] = struct{}{}
	}
	return names, cur.Err()
}

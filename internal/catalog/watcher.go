package catalog

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/riabhaumik/PathwiseAI/internal/utils"
)

// reloadSettleDelay gives the writer time to finish; editors and deploy
// tooling emit bursts of write events for one logical update.
const reloadSettleDelay = 200 * time.Millisecond

// Watch reloads a collection whenever its backing file is rewritten, so data
// updates do not require a process restart. It blocks until ctx is canceled.
// A reload failure keeps the previously loaded collection in place.
func (s *Store) Watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(s.dir); err != nil {
		return err
	}

	known := map[string]struct{}{
		CareersFile:   {},
		ResourcesFile: {},
		InterviewFile: {},
		MathFile:      {},
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			file := filepath.Base(event.Name)
			if _, watched := known[file]; !watched {
				continue
			}
			if err := utils.WaitFor(ctx, reloadSettleDelay); err != nil {
				return err
			}
			if err := s.Reload(file); err != nil {
				s.logger.Warn("catalog reload failed, keeping previous data",
					zap.String("file", file),
					zap.Error(err),
				)
				continue
			}
			s.logger.Info("catalog collection reloaded", zap.String("file", file))
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			s.logger.Warn("catalog watcher error", zap.Error(err))
		}
	}
}

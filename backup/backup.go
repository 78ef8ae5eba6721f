// Package backup copies the uploads directory once a day and prunes old copies.
package backup

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
)

const stampLayout = "2006-01-02_15-04-05"

type Scheduler struct {
	SrcDir    string
	BackupDir string
	Retention time.Duration
	Hour      int
	Minute    int

	log *zap.Logger
	now func() time.Time
}

func NewScheduler(srcDir, backupDir string, retention time.Duration, hour int, log *zap.Logger) *Scheduler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Scheduler{
		SrcDir:    srcDir,
		BackupDir: backupDir,
		Retention: retention,
		Hour:      hour,
		log:       log,
		now:       time.Now,
	}
}

// nextRun is the next Hour:Minute strictly after now.
func (s *Scheduler) nextRun(now time.Time) time.Time {
	next := time.Date(now.Year(), now.Month(), now.Day(), s.Hour, s.Minute, 0, 0, now.Location())
	if !next.After(now) {
		next = next.Add(24 * time.Hour)
	}
	return next
}

// Run backs up once a day until ctx is cancelled.
func (s *Scheduler) Run(ctx context.Context) {
	for {
		next := s.nextRun(s.now())
		s.log.Info("next uploads backup scheduled", zap.Time("at", next))

		timer := time.NewTimer(next.Sub(s.now()))
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
		}

		if dest, err := s.RunOnce(); err != nil {
			s.log.Error("uploads backup failed", zap.Error(err))
		} else {
			s.log.Info("uploads backed up", zap.String("dest", dest))
		}
		s.cleanup()
	}
}

// RunOnce copies SrcDir into a new timestamped folder under BackupDir.
func (s *Scheduler) RunOnce() (string, error) {
	dest := filepath.Join(s.BackupDir, s.now().Format(stampLayout))
	return dest, copyDir(s.SrcDir, dest)
}

// cleanup removes backup folders older than Retention.
func (s *Scheduler) cleanup() {
	entries, err := os.ReadDir(s.BackupDir)
	if err != nil {
		s.log.Warn("failed to read backup directory", zap.Error(err))
		return
	}

	cutoff := s.now().Add(-s.Retention)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		folderPath := filepath.Join(s.BackupDir, entry.Name())
		info, err := entry.Info()
		if err != nil || !info.ModTime().Before(cutoff) {
			continue
		}
		if err := os.RemoveAll(folderPath); err != nil {
			s.log.Warn("failed to remove old backup", zap.String("path", folderPath), zap.Error(err))
		} else {
			s.log.Info("removed old backup", zap.String("path", folderPath))
		}
	}
}

func copyDir(src, dest string) error {
	entries, err := os.ReadDir(src)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dest, 0o755); err != nil {
		return err
	}
	for _, entry := range entries {
		srcPath := filepath.Join(src, entry.Name())
		destPath := filepath.Join(dest, entry.Name())
		if entry.IsDir() {
			if err := copyDir(srcPath, destPath); err != nil {
				return err
			}
			continue
		}
		if err := copyFile(srcPath, destPath); err != nil {
			return err
		}
	}
	return nil
}

func copyFile(src, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err = io.Copy(out, in); err != nil {
		return err
	}
	return out.Sync()
}

package file

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/go-weigh/weigh/logger"
	"github.com/go-weigh/weigh/pkg/routine"
)

type File struct {
	path   string
	format string
	notify chan struct{}
	done   chan struct{}
}

func NewFile(path string) *File {
	path, err := filepath.Abs(path)
	if err != nil {
		logger.Log(context.TODO(), logger.PanicLevel, map[string]interface{}{"error": err}, "config file path")
	}
	f := &File{
		path:   path,
		format: format(path),
		notify: make(chan struct{}, 1),
		done:   make(chan struct{}),
	}
	routine.GoSafe(context.TODO(), func() {
		f.watch()
	})
	return f
}

func format(path string) string {
	switch strings.TrimPrefix(filepath.Ext(path), ".") {
	case "json":
		return "json"
	case "yml", "yaml":
		return "yaml"
	default:
		return "yaml"
	}
}

func (f *File) Load() ([]byte, error) {
	return os.ReadFile(f.path)
}

func (f *File) watch() {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		logger.Log(context.TODO(), logger.ErrorLevel, map[string]interface{}{"error": err}, "config watcher")
		return
	}
	defer w.Close()
	err = w.Add(filepath.Dir(f.path))
	if err != nil {
		logger.Log(context.TODO(), logger.ErrorLevel, map[string]interface{}{"error": err, "path": f.path}, "config watch dir")
		return
	}
	for {
		select {
		case event := <-w.Events:
			// we only care about the config file being written or recreated
			const writeOrCreateMask = fsnotify.Write | fsnotify.Create
			if event.Op&writeOrCreateMask != 0 && filepath.Clean(event.Name) == filepath.Clean(f.path) {
				logger.Log(context.TODO(), logger.InfoLevel, map[string]interface{}{"file": event.Name}, "file modify")
				select {
				case f.notify <- struct{}{}:
				default:
				}
			}
		case err := <-w.Errors:
			logger.Log(context.TODO(), logger.WarnLevel, map[string]interface{}{"error": err}, "config watch")
		case <-f.done:
			close(f.notify)
			return
		}
	}
}

func (f *File) Watch() <-chan struct{} {
	return f.notify
}

func (f *File) Close() error {
	close(f.done)
	return nil
}

func (f *File) Format() string {
	return f.format
}

// Package app wires loading, bounds fitting and a rendering backend into
// the view command.
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/philipparndt/idfview/internal/config"
	"github.com/philipparndt/idfview/pkg/viewer"
	"github.com/philipparndt/idfview/pkg/watcher"
)

// Debounce is the quiet period after a file change before reloading
var Debounce = 500 * time.Millisecond

// Run loads the input and shows it with backend. A backend that cannot run
// here is logged and skipped, not treated as a failure. With opts.Watch the
// view is redrawn on every change of the model file until ctx is cancelled
// or an interactive view is closed.
func Run(ctx context.Context, opts config.Options, backend viewer.Backend, log logrus.FieldLogger) error {
	frame, err := Load(opts)
	if err != nil {
		return err
	}
	logFrame(log, frame)

	if opts.Test {
		log.Info("test mode, skipping display")
		return nil
	}

	if err := backend.Available(); err != nil {
		if errors.Is(err, viewer.ErrUnavailable) {
			log.WithError(err).WithField("backend", backend.Name()).Warn("display skipped")
			return nil
		}
		return err
	}

	if !opts.Watch {
		return show(backend, frame, log)
	}
	return watch(ctx, opts, backend, frame, log)
}

func show(backend viewer.Backend, frame viewer.Frame, log logrus.FieldLogger) error {
	log.WithField("backend", backend.Name()).Debug("rendering")
	if err := backend.Show(frame); err != nil {
		return fmt.Errorf("failed to render with %s: %w", backend.Name(), err)
	}
	return nil
}

func watch(ctx context.Context, opts config.Options, backend viewer.Backend, frame viewer.Frame, log logrus.FieldLogger) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	fw, err := watcher.NewFileWatcher(Debounce, log)
	if err != nil {
		return err
	}
	defer fw.Close()

	changes := make(chan struct{}, 1)
	if err := fw.Watch(opts.File, func(string) {
		select {
		case changes <- struct{}{}:
		default:
		}
	}); err != nil {
		return err
	}
	go fw.Run(ctx)

	reload := func() (viewer.Frame, bool) {
		f, err := Load(opts)
		if err != nil {
			// Keep showing the last good frame while the file is being edited
			log.WithError(err).Error("reload failed")
			return viewer.Frame{}, false
		}
		logFrame(log, f)
		return f, true
	}

	if live, ok := backend.(viewer.Live); ok {
		go func() {
			for {
				select {
				case <-ctx.Done():
					live.Close()
					return
				case <-changes:
					if f, ok := reload(); ok {
						live.Update(f)
					}
				}
			}
		}()
		return show(backend, frame, log)
	}

	if err := show(backend, frame, log); err != nil {
		return err
	}
	log.WithField("file", opts.File).Info("watching for changes, press ctrl+c to stop")

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-changes:
			if f, ok := reload(); ok {
				if err := show(backend, f, log); err != nil {
					return err
				}
			}
		}
	}
}

func logFrame(log logrus.FieldLogger, f viewer.Frame) {
	fields := logrus.Fields{"extent": f.Bounds.Extent()}
	for _, c := range f.Collections {
		fields[c.Name] = c.Len()
	}
	log.WithFields(fields).Info("loaded " + f.Title)
}

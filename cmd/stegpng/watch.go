// SPDX-FileCopyrightText: 2025, 2026 The stegpng authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"io/ioutil"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/fsnotify/fsnotify"

	"github.com/stegpng/stegpng/pkg/steg"
)

// watch a directory for new PNG files and log their hidden messages.
type watch struct {
	directory  string
	chunkType  string
	knownFiles sync.Map
	watcher    *fsnotify.Watcher

	closeChan chan os.Signal
}

// watchAction for the "watch" CLI option.
func watchAction(args []string) {
	if len(args) != 2 {
		printUsage()
	}

	var err error
	w := &watch{
		directory: args[0],
		chunkType: args[1],
		closeChan: make(chan os.Signal),
	}

	signal.Notify(w.closeChan, os.Interrupt)

	if w.watcher, err = fsnotify.NewWatcher(); err != nil {
		printFatal(err, "Starting file watcher errored")
	}
	if err = w.watcher.Add(w.directory); err != nil {
		printFatal(err, "Adding directory to file watcher errored")
	}

	log.WithFields(log.Fields{
		"directory": w.directory,
		"chunk":     w.chunkType,
	}).Info("Watching for PNG files")

	w.handler()
}

// cleanFilepath creates a relative path from the watched directory to a new
// file's path.
func (w *watch) cleanFilepath(f string) string {
	if rel, err := filepath.Rel(w.directory, f); err != nil {
		log.WithField("path", f).WithError(err).Fatal("Failed to clean file path")
		return ""
	} else {
		return rel
	}
}

func (w *watch) handler() {
	defer func() {
		_ = w.watcher.Close()
	}()

	for {
		select {
		case <-w.closeChan:
			log.Info("Received interrupt signal")
			return

		case e, ok := <-w.watcher.Events:
			if !ok {
				log.Error("fsnotify's Event channel was closed")
				return
			}

			if _, ok := w.knownFiles.Load(w.cleanFilepath(e.Name)); ok {
				log.WithField("file", e.Name).Debug("Skipping file; already known")
				continue
			}

			if e.Op&fsnotify.Create == 0 {
				log.WithFields(log.Fields{
					"file":      e.Name,
					"operation": e.Op.String(),
				}).Debug("Ignoring fsnotify event")
				continue
			}

			if !strings.EqualFold(filepath.Ext(e.Name), ".png") {
				log.WithField("file", e.Name).Debug("Ignoring non-PNG file")
				continue
			}

			w.readNewFile(e.Name)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				log.Error("fsnotify's Errors channel was closed")
				return
			}
			log.WithError(err).Error("fsnotify errored")
		}
	}
}

// readNewFile decodes the watched chunk type from a newly created file.
func (w *watch) readNewFile(name string) {
	w.knownFiles.Store(w.cleanFilepath(name), struct{}{})

	img, err := ioutil.ReadFile(name)
	if err != nil {
		log.WithField("file", name).WithError(err).Warn("Reading new file errored")
		return
	}

	msg, err := steg.Decode(img, w.chunkType)
	if err != nil {
		log.WithField("file", name).WithError(err).Warn("No message found")
		return
	}

	log.WithFields(log.Fields{
		"file":    name,
		"chunk":   w.chunkType,
		"message": msg,
	}).Info("Found hidden message")
}

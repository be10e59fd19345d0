package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/logx"
	"github.com/frippiat/SuggestiveContours/meshio"
	"github.com/frippiat/SuggestiveContours/pipeline"
	"github.com/frippiat/SuggestiveContours/subdiv"
	"github.com/fsnotify/fsnotify"
	"github.com/mitchellh/go-homedir"
)

// Analyze loads the mesh, runs every stage and reports the summary.
func Analyze(c *Config) error {
	path, err := c.MeshPath()
	if err != nil {
		return err
	}
	opts, err := c.PipelineOptions()
	if err != nil {
		return err
	}

	d, err := pipeline.New(opts)
	if err != nil {
		return err
	}
	if err := d.Load(path); err != nil {
		return err
	}
	if err := d.Run(); err != nil {
		return err
	}

	s := d.Summary(c.Records)
	logx.PrintlnInfo(fmt.Sprintf("%s: %d vertices, %d faces, %d eligible", filepath.Base(path), s.Vertices, s.Faces, s.Eligible))

	if c.Summary == "" {
		return pipeline.EncodeSummary(os.Stdout, s, "yaml")
	}
	out, err := homedir.Expand(c.Summary)
	if err != nil {
		return err
	}
	return pipeline.WriteSummary(out, s)
}

// Subdivide loads the mesh, applies the subdivision steps and saves it.
func Subdivide(c *Config) error {
	path, err := c.MeshPath()
	if err != nil {
		return err
	}
	if c.Output == "" {
		return errors.New("no output file given")
	}
	out, err := homedir.Expand(c.Output)
	if err != nil {
		return err
	}

	m, err := meshio.Load(path)
	if err != nil {
		return err
	}
	m, err = subdiv.LoopN(m, c.Subdivisions)
	if err != nil {
		return err
	}

	logx.PrintlnInfo(fmt.Sprintf("%s: %d vertices, %d faces", filepath.Base(out), m.VertexCount(), m.FaceCount()))
	return meshio.Save(out, m)
}

// Watch runs Analyze once and again after every change of the mesh file,
// until interrupted.
func Watch(c *Config) error {
	path, err := c.MeshPath()
	if err != nil {
		return err
	}
	path, err = filepath.Abs(path)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	// Editors often replace files, so watch the directory.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return err
	}

	errors.Log(Analyze(c))

	var last time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != path || !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if time.Since(last) < 100*time.Millisecond {
				continue
			}
			last = time.Now()
			errors.Log(Analyze(c))
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			errors.Log(err)
		}
	}
}

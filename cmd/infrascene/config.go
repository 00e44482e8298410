// Copyright (c) 2026, The Infrascene Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"cogentcore.org/core/base/errors"
	"github.com/mitchellh/go-homedir"
	"github.com/neonops/infrascene/scene"
	"github.com/neonops/infrascene/scenes"
)

// ReducedMotionEnv is the environment variable that requests reduced
// motion when set to a true value.
const ReducedMotionEnv = "PREFERS_REDUCED_MOTION"

// Config is the configuration of the infrascene command.
type Config struct {

	// Scene is the name of the scene to show, simulate or describe.
	Scene string `posarg:"0" required:"-"`

	// ReducedMotion disables entity motion, camera auto-rotation and
	// scroll parallax. It is also enabled by PREFERS_REDUCED_MOTION.
	ReducedMotion bool `flag:"reduced-motion"`

	// Descriptions is a description file, or a directory of them, that
	// replace the built-in descriptions of the scenes they name. The
	// viewer reloads them when they change.
	Descriptions string `flag:"d,descriptions"`

	// Verbose enables debug logging.
	Verbose bool `flag:"v,verbose"`

	// Frames is the number of frames to simulate.
	Frames int `cmd:"simulate" default:"600"`

	// FPS is the simulated frame rate.
	FPS int `cmd:"simulate" default:"60"`

	// Format is the output format of describe, toml or yaml.
	Format string `cmd:"describe" default:"toml"`
}

func (c *Config) logger() *slog.Logger {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// reducedMotion returns whether reduced motion is requested by the
// flag or the environment.
func (c *Config) reducedMotion() bool {
	if c.ReducedMotion {
		return true
	}
	v, ok := os.LookupEnv(ReducedMotionEnv)
	if !ok || v == "" {
		return false
	}
	if b, err := strconv.ParseBool(v); err == nil {
		return b
	}
	return strings.EqualFold(v, "reduce")
}

// descriptions returns the Descriptions path with a leading ~
// expanded to the home directory.
func (c *Config) descriptions() (string, error) {
	if c.Descriptions == "" {
		return "", nil
	}
	return homedir.Expand(c.Descriptions)
}

// overrides loads the description files named by Descriptions.
func (c *Config) overrides() ([]*scene.Description, error) {
	path, err := c.descriptions()
	if path == "" || err != nil {
		return nil, err
	}
	st, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	files := []string{path}
	if st.IsDir() {
		ents, err := os.ReadDir(path)
		if err != nil {
			return nil, err
		}
		files = files[:0]
		for _, e := range ents {
			if _, err := scene.FormatOf(e.Name()); e.IsDir() || err != nil {
				continue
			}
			files = append(files, filepath.Join(path, e.Name()))
		}
	}
	var ds []*scene.Description
	var errs []error
	for _, f := range files {
		d, err := scene.LoadFile(f)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if d.Name == "" {
			d.Name = strings.TrimSuffix(filepath.Base(f), filepath.Ext(f))
		}
		ds = append(ds, d)
	}
	return ds, errors.Join(errs...)
}

// description returns the description of the named scene, from
// Descriptions if it has one, or the built-in one.
func (c *Config) description(name string) (*scene.Description, error) {
	ds, err := c.overrides()
	if err != nil {
		return nil, err
	}
	for _, d := range ds {
		if d.Name == name {
			return d, nil
		}
	}
	d, err := scenes.Default(name)
	if err != nil {
		return nil, fmt.Errorf("infrascene: %w", err)
	}
	return d, nil
}

package config

import (
	"context"
	"errors"
	"fmt"
	"path"
	"time"
)

// Loader is the interface for a format-specific project loader.
type Loader interface {
	// Load reads project files from the given paths and overlays them on
	// Defaults(). With no files found it returns the defaults unchanged.
	Load(ctx context.Context, paths ...string) (*Project, error)
}

// Project describes the library being packaged.
type Project struct {
	// Name is the global variable name used by the UMD wrapper.
	Name string
	// FileName is the base name of every output artifact.
	FileName string
	// Input is the bundle entry point.
	Input  string
	OutDir string
	// Peers are never inlined; they are resolved through their globals.
	Peers   []Peer
	License License

	TypeScript TypeScript
	CommonJS   CommonJS

	// SuppressWarnings lists engine warning codes that are expected and dropped.
	SuppressWarnings []string

	// LegacyTarget is the compiler target of the Node and UMD builds.
	LegacyTarget string
	// ModernTarget is the compiler target of the flat minified build.
	ModernTarget string
}

// Peer is a peer dependency and the global it is bound to at runtime.
type Peer struct {
	Module string
	Global string
}

// License drives the banner prefixed to every artifact.
type License struct {
	Holder string
	// Year is the copyright year; zero means the year of the build.
	Year int
	// Text replaces the generated banner entirely when set.
	Text string
}

// TypeScript holds the default compiler options.
type TypeScript struct {
	Include []string
	Module  string
}

// CommonJS holds the options of the require() polyfill plugin.
type CommonJS struct {
	Ignore       []string
	Include      string
	NamedExports map[string][]string
}

const bannerTemplate = `/**
 * @license
 * Copyright %d %s. All Rights Reserved.
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 * =============================================================================
 */`

// Defaults returns a fresh coco-ssd project. Callers may modify the result.
func Defaults() *Project {
	return &Project{
		Name:     "cocoSsd",
		FileName: "coco-ssd",
		Input:    "src/index.ts",
		OutDir:   "dist",
		Peers: []Peer{
			{Module: "@tensorflow/tfjs-core", Global: "tf"},
			{Module: "@tensorflow/tfjs-converter", Global: "tf"},
		},
		License: License{Holder: "Google LLC"},
		TypeScript: TypeScript{
			Include: []string{"src/**/*.ts"},
			Module:  "ES2015",
		},
		CommonJS: CommonJS{
			Ignore:  []string{"crypto", "node-fetch", "util"},
			Include: "node_modules/**",
			NamedExports: map[string][]string{
				"./node_modules/seedrandom/index.js": {"alea"},
			},
		},
		SuppressWarnings: []string{"CIRCULAR_DEPENDENCY", "CIRCULAR", "THIS_IS_UNDEFINED"},
		LegacyTarget:     "es5",
		ModernTarget:     "es2017",
	}
}

// Year returns the effective copyright year.
func (p *Project) Year() int {
	if p.License.Year > 0 {
		return p.License.Year
	}
	return time.Now().Year()
}

// Banner returns the license preamble prefixed to every artifact.
func (p *Project) Banner() string {
	if p.License.Text != "" {
		return p.License.Text
	}
	return fmt.Sprintf(bannerTemplate, p.Year(), p.License.Holder)
}

// OutputFile returns the artifact path for a file name suffix such as ".min.js".
func (p *Project) OutputFile(suffix string) string {
	return path.Join(p.OutDir, p.FileName+suffix)
}

// SetPeer maps module to global. An existing peer keeps its position and only
// its global changes; a new module is appended after the existing peers.
func (p *Project) SetPeer(module, global string) {
	for i := range p.Peers {
		if p.Peers[i].Module == module {
			p.Peers[i].Global = global
			return
		}
	}
	p.Peers = append(p.Peers, Peer{Module: module, Global: global})
}

// PeerModules returns the peer module identifiers in declaration order.
func (p *Project) PeerModules() []string {
	mods := make([]string, len(p.Peers))
	for i, peer := range p.Peers {
		mods[i] = peer.Module
	}
	return mods
}

// Globals returns the peer module to global variable mapping.
func (p *Project) Globals() map[string]string {
	g := make(map[string]string, len(p.Peers))
	for _, peer := range p.Peers {
		g[peer.Module] = peer.Global
	}
	return g
}

// Validate checks the fields every descriptor depends on.
func (p *Project) Validate() error {
	var errs []error
	if p.Name == "" {
		errs = append(errs, errors.New("name must not be empty"))
	}
	if p.FileName == "" {
		errs = append(errs, errors.New("file_name must not be empty"))
	}
	if p.Input == "" {
		errs = append(errs, errors.New("input must not be empty"))
	}
	if len(p.TypeScript.Include) == 0 {
		errs = append(errs, errors.New("typescript include must not be empty"))
	}
	seen := make(map[string]struct{}, len(p.Peers))
	for i, peer := range p.Peers {
		if peer.Module == "" || peer.Global == "" {
			errs = append(errs, fmt.Errorf("peer #%d must have both a module and a global", i))
			continue
		}
		if _, dup := seen[peer.Module]; dup {
			errs = append(errs, fmt.Errorf("peer %q declared twice", peer.Module))
		}
		seen[peer.Module] = struct{}{}
	}
	if p.LegacyTarget == "" || p.ModernTarget == "" {
		errs = append(errs, errors.New("legacy_target and modern_target must not be empty"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid project: %w", errors.Join(errs...))
	}
	return nil
}

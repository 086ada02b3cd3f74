package hcl

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/bundlegrid/internal/config"
	"github.com/specialistvlad/bundlegrid/internal/ctxlog"
	"github.com/specialistvlad/bundlegrid/internal/fsutil"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct {
	// Year is exposed to expressions as the `year` variable.
	Year int
	// Environ supplies the `env` variable.
	Environ func() []string
}

// NewLoader creates a new HCL project loader bound to the current year and
// process environment.
func NewLoader() *Loader {
	return &Loader{
		Year:    time.Now().Year(),
		Environ: os.Environ,
	}
}

// Load parses every .hcl file under paths and overlays the single `library`
// block they define on config.Defaults().
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Project, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	project := config.Defaults()

	hclFiles, err := l.findAllHCLFiles(paths)
	if err != nil {
		return nil, err
	}
	if len(hclFiles) == 0 {
		logger.Debug("No project files found, using defaults.")
		return project, nil
	}
	logger.Debug("Discovered HCL files.", "files", hclFiles)

	parser := hclparse.NewParser()
	evalCtx := l.evalContext()

	var found *Library
	var foundIn string
	for _, file := range hclFiles {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root fileRoot
		diags = gohcl.DecodeBody(hclFile.Body, evalCtx, &root)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		for _, lib := range root.Libraries {
			if found != nil {
				return nil, fmt.Errorf("library %q in %s: only one library block is allowed, %q already defined in %s", lib.Name, file, found.Name, foundIn)
			}
			found, foundIn = lib, file
		}
	}

	if found == nil {
		logger.Warn("Project files contain no library block, using defaults.", "files", hclFiles)
		return project, nil
	}

	if err := l.overlay(project, found); err != nil {
		return nil, fmt.Errorf("%s: %w", foundIn, err)
	}
	if err := project.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", foundIn, err)
	}

	logger.Debug("HCL loading complete.", "library", project.Name, "file", foundIn, "peers", len(project.Peers))
	return project, nil
}

// overlay copies every attribute present in lib onto project.
func (l *Loader) overlay(project *config.Project, lib *Library) error {
	if lib.Name != "" {
		project.Name = lib.Name
	}
	setString(&project.FileName, lib.FileName)
	setString(&project.Input, lib.Input)
	setString(&project.OutDir, lib.OutDir)
	setString(&project.LegacyTarget, lib.LegacyTarget)
	setString(&project.ModernTarget, lib.ModernTarget)
	setStrings(&project.SuppressWarnings, lib.SuppressWarnings)

	// Peer blocks merge into the default peers, which cannot be removed.
	declared := make(map[string]struct{}, len(lib.Peers))
	for _, p := range lib.Peers {
		if _, dup := declared[p.Module]; dup {
			return fmt.Errorf("peer %q declared twice", p.Module)
		}
		declared[p.Module] = struct{}{}
		project.SetPeer(p.Module, p.Global)
	}

	if lib.License != nil {
		setString(&project.License.Holder, lib.License.Holder)
		setString(&project.License.Text, lib.License.Text)
		if lib.License.Year != nil {
			project.License.Year = *lib.License.Year
		}
	}

	if lib.TypeScript != nil {
		setStrings(&project.TypeScript.Include, lib.TypeScript.Include)
		setString(&project.TypeScript.Module, lib.TypeScript.Module)
	}

	if lib.CommonJS != nil {
		setStrings(&project.CommonJS.Ignore, lib.CommonJS.Ignore)
		setString(&project.CommonJS.Include, lib.CommonJS.Include)
		if lib.CommonJS.NamedExports != nil {
			project.CommonJS.NamedExports = *lib.CommonJS.NamedExports
		}
	}
	return nil
}

// evalContext exposes `year`, `env` and a handful of string functions to
// project expressions.
func (l *Loader) evalContext() *hcl.EvalContext {
	env := make(map[string]cty.Value)
	if l.Environ != nil {
		for _, e := range l.Environ() {
			pair := strings.SplitN(e, "=", 2)
			if len(pair) == 2 && pair[0] != "" {
				env[pair[0]] = cty.StringVal(pair[1])
			}
		}
	}

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"year": cty.NumberIntVal(int64(l.Year)),
			"env":  cty.ObjectVal(env),
		},
		Functions: map[string]function.Function{
			"upper":     stdlib.UpperFunc,
			"lower":     stdlib.LowerFunc,
			"format":    stdlib.FormatFunc,
			"join":      stdlib.JoinFunc,
			"concat":    stdlib.ConcatFunc,
			"trimspace": stdlib.TrimSpaceFunc,
			"replace":   stdlib.ReplaceFunc,
		},
	}
}

// findAllHCLFiles walks all given paths and returns a flat list of all .hcl files found.
func (l *Loader) findAllHCLFiles(paths []string) ([]string, error) {
	var allFiles []string
	seen := make(map[string]struct{})
	add := func(p string) {
		if _, wasSeen := seen[p]; !wasSeen {
			allFiles = append(allFiles, p)
			seen[p] = struct{}{}
		}
	}

	for _, path := range paths {
		if path == "" {
			continue
		}
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("error accessing project path %s: %w", path, err)
		}

		if info.IsDir() {
			files, err := fsutil.FindFilesByExtension(path, ".hcl")
			if err != nil {
				return nil, fmt.Errorf("error walking project path %s: %w", path, err)
			}
			for _, f := range files {
				add(f)
			}
		} else if filepath.Ext(path) == ".hcl" {
			add(path)
		} else {
			return nil, fmt.Errorf("project file %s must have the .hcl extension", path)
		}
	}
	return allFiles, nil
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func setStrings(dst *[]string, src *[]string) {
	if src != nil {
		*dst = append([]string(nil), (*src)...)
	}
}

package hcl

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/trfilter/internal/config"
	"github.com/specialistvlad/trfilter/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct {
	env map[string]string
}

// NewLoader creates a loader whose `env` variable reflects the process
// environment.
func NewLoader() *Loader {
	return NewLoaderWithEnv(environ(os.Environ()))
}

// NewLoaderWithEnv creates a loader with an explicit environment.
func NewLoaderWithEnv(env map[string]string) *Loader {
	return &Loader{env: env}
}

// fileRoot lists the top-level blocks a settings file may contain.
type fileRoot struct {
	Log    *logBlock    `hcl:"log,block"`
	Stream *streamBlock `hcl:"stream,block"`
}

type logBlock struct {
	Level  *string `hcl:"level,optional"`
	Format *string `hcl:"format,optional"`
}

type streamBlock struct {
	BufferSize        *int    `hcl:"buffer_size,optional"`
	InputCompression  *string `hcl:"input_compression,optional"`
	OutputCompression *string `hcl:"output_compression,optional"`
}

// Load parses the file at path and layers it over config.Default().
func (l *Loader) Load(ctx context.Context, path string) (*config.Settings, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL settings loader started.", "path", path)

	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file %s: %w", path, err)
	}
	return l.parse(ctx, src, path)
}

func (l *Loader) parse(ctx context.Context, src []byte, filename string) (*config.Settings, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", filename, diags)
	}

	var root fileRoot
	diags = gohcl.DecodeBody(file.Body, l.evalContext(), &root)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", filename, diags)
	}

	settings := translate(&root)
	ctxlog.FromContext(ctx).Debug("Settings file decoded.", "path", filename, "settings", settings)
	return settings, nil
}

func (l *Loader) evalContext() *hcl.EvalContext {
	vars := make(map[string]cty.Value, len(l.env))
	for k, v := range l.env {
		vars[k] = cty.StringVal(v)
	}
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"env": cty.ObjectVal(vars),
		},
	}
}

// translate copies every attribute present in the file onto the defaults.
func translate(root *fileRoot) *config.Settings {
	s := config.Default()
	if b := root.Log; b != nil {
		setString(&s.Log.Level, b.Level)
		setString(&s.Log.Format, b.Format)
	}
	if b := root.Stream; b != nil {
		if b.BufferSize != nil {
			s.Stream.BufferSize = *b.BufferSize
		}
		setString(&s.Stream.InputCompression, b.InputCompression)
		setString(&s.Stream.OutputCompression, b.OutputCompression)
	}
	return s
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = strings.ToLower(*v)
	}
}

func environ(kv []string) map[string]string {
	env := make(map[string]string, len(kv))
	for _, e := range kv {
		if k, v, ok := strings.Cut(e, "="); ok {
			env[k] = v
		}
	}
	return env
}

// Package config reads the nestlint configuration file.
// The file is looked up at .nestlint.yaml and .github/nestlint.yaml (and the
// .yml variants) unless a path is given explicitly.
package config

import (
	"errors"
	"fmt"
	"path"
	"regexp"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

const schemaVersion = 1

type Config struct {
	Version         int           `json:"version" jsonschema:"enum=1"`
	BaseRef         string        `json:"base_ref,omitempty" yaml:"base_ref" jsonschema:"description=Git reference changed files are compared with. The default is origin/main"`
	IgnoreFiles     []*IgnoreFile `json:"ignore_files,omitempty" yaml:"ignore_files" jsonschema:"description=Files nestlint doesn't analyze"`
	CommentTemplate string        `json:"comment_template,omitempty" yaml:"comment_template" jsonschema:"description=Go text/template of the pull request comment. The template is executed with .Findings"`
}

const (
	formatFixedString = "fixed_string"
	formatGlob        = "glob"
	formatRegexp      = "regexp"
)

type IgnoreFile struct {
	Path       string `json:"path" jsonschema:"description=File path relative to the repository root"`
	Format     string `json:"format,omitempty" jsonschema:"enum=fixed_string,enum=glob,enum=regexp,description=The default is fixed_string"`
	pathRegexp *regexp.Regexp
}

func validateSchemaVersion(v int) error {
	if v != schemaVersion {
		return fmt.Errorf("version must be %d", schemaVersion)
	}
	return nil
}

func (f *IgnoreFile) Init() error {
	if f.Path == "" {
		return errors.New("path is required")
	}
	if f.Format == "" {
		f.Format = formatFixedString
	}
	switch f.Format {
	case formatFixedString:
		return nil
	case formatGlob:
		if _, err := path.Match(f.Path, "a"); err != nil {
			return fmt.Errorf("parse path as a glob: %w", err)
		}
		return nil
	case formatRegexp:
		r, err := regexp.Compile(f.Path)
		if err != nil {
			return fmt.Errorf("compile path as a regular expression: %w", err)
		}
		f.pathRegexp = r
		return nil
	default:
		return errors.New("format must be fixed_string, glob, or regexp")
	}
}

func (f *IgnoreFile) Match(filePath string) (bool, error) {
	switch f.Format {
	case formatFixedString, "":
		return f.Path == filePath, nil
	case formatGlob:
		m, err := path.Match(f.Path, filePath)
		if err != nil {
			return false, fmt.Errorf("match as a glob: %w", err)
		}
		return m, nil
	case formatRegexp:
		if f.pathRegexp == nil {
			return false, errors.New("ignore_files isn't initialized")
		}
		return f.pathRegexp.MatchString(filePath), nil
	default:
		return false, errors.New("unexpected format: " + f.Format)
	}
}

// IsIgnored reports whether filePath matches one of ignore_files.
func (c *Config) IsIgnored(filePath string) (bool, error) {
	if c == nil {
		return false, nil
	}
	for _, f := range c.IgnoreFiles {
		m, err := f.Match(filePath)
		if err != nil {
			return false, fmt.Errorf("match ignore_files: %w", err)
		}
		if m {
			return true, nil
		}
	}
	return false, nil
}

func getConfigPath(fs afero.Fs) (string, error) {
	for _, p := range []string{".nestlint.yaml", ".github/nestlint.yaml", ".nestlint.yml", ".github/nestlint.yml"} {
		f, err := afero.Exists(fs, p)
		if err != nil {
			return "", fmt.Errorf("check if %s exists: %w", p, err)
		}
		if f {
			return p, nil
		}
	}
	return "", nil
}

type Finder struct {
	fs afero.Fs
}

func NewFinder(fs afero.Fs) *Finder {
	return &Finder{fs: fs}
}

// Find returns configFilePath if it isn't empty, otherwise the first default
// path that exists. An empty string means there is no configuration file.
func (f *Finder) Find(configFilePath string) (string, error) {
	if configFilePath != "" {
		return configFilePath, nil
	}
	return getConfigPath(f.fs)
}

type Reader struct {
	fs afero.Fs
}

func NewReader(fs afero.Fs) *Reader {
	return &Reader{fs: fs}
}

func (r *Reader) Read(cfg *Config, configFilePath string) error {
	if configFilePath == "" {
		return nil
	}
	f, err := r.fs.Open(configFilePath)
	if err != nil {
		return fmt.Errorf("open a configuration file: %w", err)
	}
	defer f.Close()
	if err := yaml.NewDecoder(f).Decode(cfg); err != nil {
		return fmt.Errorf("decode a configuration file as YAML: %w", err)
	}
	if err := validateSchemaVersion(cfg.Version); err != nil {
		return err
	}
	for _, file := range cfg.IgnoreFiles {
		if err := file.Init(); err != nil {
			return fmt.Errorf("initialize ignore_files: %w", err)
		}
	}
	return nil
}

// Package analyze finds UI components that are defined inside other functions.
// Files are parsed with tree-sitter (TSX grammar for .tsx, JavaScript grammar
// with JSX for .jsx) and the syntax tree is walked looking for nested function
// declarations and arrow functions whose body returns a JSX element.
// Detection is purely syntactic: no types, no cross-file resolution.
package analyze

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/sirupsen/logrus"
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
	"github.com/spf13/afero"
	"github.com/suzuki-shunsuke/logrus-error/logerr"
)

var ErrUnsupportedExtension = errors.New("the file extension isn't supported")

type Analyzer struct {
	fs afero.Fs
}

func New(fs afero.Fs) *Analyzer {
	return &Analyzer{fs: fs}
}

// AnalyzeFile reads a file and returns the nested components defined in it.
// A file that can't be parsed returns a *ParseError.
func (a *Analyzer) AnalyzeFile(ctx context.Context, filePath string) ([]*Finding, error) {
	src, err := afero.ReadFile(a.fs, filePath)
	if err != nil {
		return nil, fmt.Errorf("read a file: %w", err)
	}
	return Analyze(ctx, filePath, src)
}

// Analyze parses src and returns the nested components defined in it.
// filePath selects the grammar and is recorded in each Finding.
func Analyze(ctx context.Context, filePath string, src []byte) ([]*Finding, error) {
	lang, err := languageOf(filePath)
	if err != nil {
		return nil, err
	}
	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(lang)
	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("parse a file: %w", logerr.WithFields(err, logrus.Fields{
			"file": filePath,
		}))
	}
	defer tree.Close()
	root := tree.RootNode()
	if root.HasError() {
		return nil, newParseError(filePath, root)
	}
	return Detect(root, src, filePath), nil
}

func languageOf(filePath string) (*sitter.Language, error) {
	switch filepath.Ext(filePath) {
	case ".tsx":
		return tsx.GetLanguage(), nil
	case ".jsx":
		return javascript.GetLanguage(), nil
	default:
		return nil, logerr.WithFields(ErrUnsupportedExtension, logrus.Fields{ //nolint:wrapcheck
			"file": filePath,
		})
	}
}

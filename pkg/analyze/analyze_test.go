package analyze_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/nestlint/nestlint/pkg/analyze"
	"github.com/spf13/afero"
)

func TestAnalyze(t *testing.T) { //nolint:funlen,maintidx
	t.Parallel()
	data := []struct {
		name     string
		filePath string
		src      string
		exp      []*analyze.Finding
	}{
		{
			name:     "no nested declarations",
			filePath: "src/App.tsx",
			src: `export function App() {
  return <div>hello</div>;
}

function Footer() {
  return <footer />;
}
`,
		},
		{
			name:     "nested function declaration",
			filePath: "src/Outer.tsx",
			src: `function Outer() {
  function Inner() { return <div/>; }
  return <Inner />;
}
`,
			exp: []*analyze.Finding{
				{
					Code:       "function Inner() { return <div/>; }",
					Line:       2,
					ParentName: "Outer",
					FilePath:   "src/Outer.tsx",
				},
			},
		},
		{
			name:     "arrow function in a lowercase parent",
			filePath: "src/outer.tsx",
			src: `function outer() {
  const Widget = () => <span/>;
  return Widget;
}
`,
			exp: []*analyze.Finding{
				{
					Code:       "Widget = () => <span/>",
					Line:       2,
					ParentName: "outer",
					FilePath:   "src/outer.tsx",
				},
			},
		},
		{
			name:     "arrow function name isn't case checked",
			filePath: "src/List.tsx",
			src: `function List() {
  const renderRow = () => {
    return (
      <li>row</li>
    );
  };
  return <ul>{renderRow()}</ul>;
}
`,
			exp: []*analyze.Finding{
				{
					Code: `renderRow = () => {
    return (
      <li>row</li>
    );
  }`,
					Line:       2,
					ParentName: "List",
					FilePath:   "src/List.tsx",
				},
			},
		},
		{
			name:     "lowercase nested function",
			filePath: "src/Outer.tsx",
			src: `function Outer() {
  function helper() {
    return <div />;
  }
  return helper();
}
`,
		},
		{
			name:     "nested function returns a string",
			filePath: "src/Outer.tsx",
			src: `function Outer() {
  function Inner() {
    return "inner";
  }
  return <div>{Inner()}</div>;
}
`,
		},
		{
			name:     "return of a conditional expression isn't an element",
			filePath: "src/Outer.tsx",
			src: `function Outer({ on }: { on: boolean }) {
  function Inner() {
    return on ? <b /> : <i />;
  }
  return <Inner />;
}
`,
		},
		{
			name:     "return inside an if block doesn't count",
			filePath: "src/Outer.tsx",
			src: `function Outer() {
  function Inner() {
    if (true) {
      return <div />;
    }
    return null;
  }
  return <Inner />;
}
`,
		},
		{
			name:     "fragment isn't an element",
			filePath: "src/Outer.tsx",
			src: `function Outer() {
  const Inner = () => <>inner</>;
  return <Inner />;
}
`,
		},
		{
			name:     "parenthesized element",
			filePath: "src/Outer.tsx",
			src: `function Outer() {
  function Inner() {
    return (
      <section>
        <h1>title</h1>
      </section>
    );
  }
  return <Inner />;
}
`,
			exp: []*analyze.Finding{
				{
					Code: `function Inner() {
    return (
      <section>
        <h1>title</h1>
      </section>
    );
  }`,
					Line:       2,
					ParentName: "Outer",
					FilePath:   "src/Outer.tsx",
				},
			},
		},
		{
			name:     "typed arrow function",
			filePath: "src/Table.tsx",
			src: `type Props = { id: string };

function Table() {
  const Row: React.FC<Props> = ({ id }) => <tr key={id} />;
  return <table />;
}
`,
			exp: []*analyze.Finding{
				{
					Code:       "Row: React.FC<Props> = ({ id }) => <tr key={id} />",
					Line:       4,
					ParentName: "Table",
					FilePath:   "src/Table.tsx",
				},
			},
		},
		{
			name:     "nested twice is reported for each enclosing function",
			filePath: "src/Outer.tsx",
			src: `function Outer() {
  function Middle() {
    function Inner() {
      return <span />;
    }
    return <Inner />;
  }
  return <Middle />;
}
`,
			exp: []*analyze.Finding{
				{
					Code: `function Middle() {
    function Inner() {
      return <span />;
    }
    return <Inner />;
  }`,
					Line:       2,
					ParentName: "Outer",
					FilePath:   "src/Outer.tsx",
				},
				{
					Code: `function Inner() {
      return <span />;
    }`,
					Line:       3,
					ParentName: "Outer",
					FilePath:   "src/Outer.tsx",
				},
				{
					Code: `function Inner() {
      return <span />;
    }`,
					Line:       3,
					ParentName: "Middle",
					FilePath:   "src/Outer.tsx",
				},
			},
		},
		{
			name:     "anonymous default export",
			filePath: "src/page.tsx",
			src: `export default function () {
  const Header = () => <header />;
  return <Header />;
}
`,
			exp: []*analyze.Finding{
				{
					Code:       "Header = () => <header />",
					Line:       2,
					ParentName: "AnonymousFunction",
					FilePath:   "src/page.tsx",
				},
			},
		},
		{
			name:     "arrow function at the top level isn't a parent",
			filePath: "src/App.tsx",
			src: `const App = () => {
  const Inner = () => <div />;
  return <Inner />;
};
`,
		},
		{
			name:     "jsx file",
			filePath: "src/Card.jsx",
			src: `export function Card(props) {
  function Title() {
    return <h2>{props.title}</h2>;
  }
  return <Title />;
}
`,
			exp: []*analyze.Finding{
				{
					Code: `function Title() {
    return <h2>{props.title}</h2>;
  }`,
					Line:       2,
					ParentName: "Card",
					FilePath:   "src/Card.jsx",
				},
			},
		},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			t.Parallel()
			findings, err := analyze.Analyze(context.Background(), d.filePath, []byte(d.src))
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(d.exp, findings); diff != "" {
				t.Fatal(diff)
			}
		})
	}
}

func TestAnalyze_parseError(t *testing.T) {
	t.Parallel()
	src := `function Outer() {
  function Inner( {
    return <div />;
  }
}
`
	_, err := analyze.Analyze(context.Background(), "src/Broken.tsx", []byte(src))
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	var parseErr *analyze.ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected *analyze.ParseError, got %T: %v", err, err)
	}
	if parseErr.FilePath != "src/Broken.tsx" {
		t.Errorf("FilePath: wanted %q, got %q", "src/Broken.tsx", parseErr.FilePath)
	}
	if parseErr.Line < 1 {
		t.Errorf("Line: wanted a positive line, got %d", parseErr.Line)
	}
}

func TestAnalyze_unsupportedExtension(t *testing.T) {
	t.Parallel()
	_, err := analyze.Analyze(context.Background(), "src/main.go", []byte("package main\n"))
	if !errors.Is(err, analyze.ErrUnsupportedExtension) {
		t.Fatalf("expected ErrUnsupportedExtension, got %v", err)
	}
}

func TestAnalyzer_AnalyzeFile(t *testing.T) {
	t.Parallel()
	fs := afero.NewMemMapFs()
	src := `function Page() {
  const Item = () => <li />;
  return <ul><Item /></ul>;
}
`
	if err := afero.WriteFile(fs, "src/Page.tsx", []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}
	a := analyze.New(fs)

	findings, err := a.AnalyzeFile(context.Background(), "src/Page.tsx")
	if err != nil {
		t.Fatal(err)
	}
	exp := []*analyze.Finding{
		{
			Code:       "Item = () => <li />",
			Line:       2,
			ParentName: "Page",
			FilePath:   "src/Page.tsx",
		},
	}
	if diff := cmp.Diff(exp, findings); diff != "" {
		t.Fatal(diff)
	}

	if _, err := a.AnalyzeFile(context.Background(), "src/Missing.tsx"); err == nil {
		t.Fatal("expected error for a missing file, got nil")
	}
}

func TestAnalyzer_AnalyzeFile_grammarPerFile(t *testing.T) {
	t.Parallel()
	fs := afero.NewMemMapFs()
	files := map[string]string{
		"src/App.tsx":    "function App() {\n  function Row(): JSX.Element { return <tr />; }\n  return <table />;\n}\n",
		"src/Broken.tsx": "function Broken( {\n",
		"src/Card.jsx":   "function Card() {\n  const Body = () => <p />;\n  return <div />;\n}\n",
	}
	for name, src := range files {
		if err := afero.WriteFile(fs, name, []byte(src), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	a := analyze.New(fs)
	ctx := context.Background()

	if findings, err := a.AnalyzeFile(ctx, "src/App.tsx"); err != nil || len(findings) != 1 {
		t.Fatalf("src/App.tsx: wanted 1 finding, got %d (%v)", len(findings), err)
	}
	var parseErr *analyze.ParseError
	if _, err := a.AnalyzeFile(ctx, "src/Broken.tsx"); !errors.As(err, &parseErr) {
		t.Fatalf("src/Broken.tsx: wanted *ParseError, got %v", err)
	}
	findings, err := a.AnalyzeFile(ctx, "src/Card.jsx")
	if err != nil {
		t.Fatalf("a parse error must not affect the next file: %v", err)
	}
	if len(findings) != 1 || findings[0].ParentName != "Card" {
		t.Fatalf("src/Card.jsx: unexpected findings %+v", findings)
	}
}

package lang

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-yaml"
)

// FormatTree writes e as an indented tree, one node per line, each followed
// by its position.
func FormatTree(w io.Writer, e Expr, indent int) error {
	if e == nil {
		_, err := fmt.Fprintln(w, "<none>")

		return err
	}

	return formatNode(w, e, indent, 0)
}

func formatNode(w io.Writer, e Expr, indent, depth int) error {
	var (
		label    string
		children []Expr
	)

	switch e := e.(type) {
	case Literal:
		label = e.Value.Kind().String() + " " + e.Value.String()
	case NameReference:
		label = "name " + e.Name
	case Assignment:
		label = "assign " + e.Target.Name
		children = []Expr{e.Value}
	case Operation:
		label = "operation " + e.Operator.String()
		children = []Expr{e.Left, e.Right}
	}

	_, err := fmt.Fprintf(w, "%s%s @%v\n",
		strings.Repeat(" ", depth*indent), label, e.Pos())
	if err != nil {
		return err
	}

	for _, c := range children {
		if err := formatNode(w, c, indent, depth+1); err != nil {
			return err
		}
	}

	return nil
}

// FormatJSON writes the expression tree of e as JSON.
func FormatJSON(_ context.Context, w io.Writer, e Expr, indent int) error {
	var (
		jsonData []byte
		err      error
	)

	if indent > 0 {
		jsonData, err = json.MarshalIndent(ToMap(e), "", strings.Repeat(" ", indent))
	} else {
		jsonData, err = json.Marshal(ToMap(e))
	}

	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(jsonData))

	return err
}

// FormatYAML writes the expression tree of e as YAML. An indent of zero
// selects flow style.
func FormatYAML(ctx context.Context, w io.Writer, e Expr, indent int) error {
	var opts []yaml.EncodeOption
	if indent > 0 {
		opts = append(opts, yaml.Indent(indent))
	} else {
		opts = append(opts, yaml.Flow(true))
	}

	yamlData, err := yaml.MarshalContext(ctx, ToMap(e), opts...)
	if err != nil {
		return err
	}

	_, err = fmt.Fprint(w, string(yamlData))

	return err
}

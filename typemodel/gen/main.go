/*
 * Segno - The statically typed interoperable programming language
 *
 * Copyright Segno Foundation
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *   http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// gen generates typemodel's builtin type lattice (builtins.gen.go)
// from a declarative YAML description.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/token"
	"os"
	"strconv"

	"github.com/dave/dst"
	"github.com/dave/dst/decorator"
	"github.com/goccy/go-yaml"
)

const generatedHeader = `// Code generated by gen from gen/builtins.yaml. DO NOT EDIT.
/*
 * Segno - The statically typed interoperable programming language
 *
 * Copyright Segno Foundation
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *   http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */
`

// BuiltinSpec describes a single builtin class constructor
type BuiltinSpec struct {
	Name       string   `yaml:"name"`
	Any        bool     `yaml:"any"`
	Nothing    bool     `yaml:"nothing"`
	Final      bool     `yaml:"final"`
	Supertypes []string `yaml:"supertypes"`
}

// RulesFile represents the entire YAML configuration
type RulesFile struct {
	Builtins []BuiltinSpec `yaml:"builtins"`
}

func main() {
	var (
		rulesPath string
		outPath   string
	)
	flag.StringVar(&rulesPath, "rules", "gen/builtins.yaml", "path to YAML builtins description")
	flag.StringVar(&outPath, "out", "builtins.gen.go", "output file path or '-' for stdout")
	flag.Parse()

	rules, err := readRules(rulesPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error reading builtins description: %v\n", err)
		os.Exit(1)
	}

	code, err := generateCode(rules)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error generating code: %v\n", err)
		os.Exit(1)
	}

	if err := writeOutput(outPath, code); err != nil {
		fmt.Fprintf(os.Stderr, "error writing output: %v\n", err)
		os.Exit(1)
	}
}

func readRules(path string) ([]BuiltinSpec, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var rules RulesFile
	if err := yaml.Unmarshal(contents, &rules); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	return rules.Builtins, nil
}

func writeOutput(path string, code []byte) error {
	if path == "-" {
		_, err := os.Stdout.Write(code)
		return err
	}
	return os.WriteFile(path, code, 0o644)
}

func generateCode(builtins []BuiltinSpec) ([]byte, error) {
	var decls []dst.Decl
	for _, builtin := range builtins {
		decls = append(decls, builtinDecls(builtin)...)
	}
	decls = append(decls, supertypesInitDecl(builtins))

	file := &dst.File{
		Name:  dst.NewIdent("typemodel"),
		Decls: decls,
	}
	file.Decs.Start.Append(generatedHeader)

	var buf bytes.Buffer
	if err := decorator.Fprint(&buf, file); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// builtinDecls produces the three declarations of one builtin:
// its constructor, its type, and the type's nullable form.
func builtinDecls(builtin BuiltinSpec) []dst.Decl {
	configFields := []struct {
		name  string
		value dst.Expr
	}{
		{"Name", stringLit(builtin.Name)},
		{"Any", boolLit(builtin.Any)},
		{"Nothing", boolLit(builtin.Nothing)},
		{"Class", boolLit(true)},
		{"Final", boolLit(builtin.Final)},
		{"Denotable", boolLit(true)},
	}

	var elements []dst.Expr
	for _, field := range configFields {
		// omit false flags, matching handwritten style
		if ident, ok := field.value.(*dst.Ident); ok && ident.Name == "false" {
			continue
		}
		element := &dst.KeyValueExpr{
			Key:   dst.NewIdent(field.name),
			Value: field.value,
		}
		element.Decs.Before = dst.NewLine
		element.Decs.After = dst.NewLine
		elements = append(elements, element)
	}

	constructorDecl := varDecl(
		builtin.Name+"Constructor",
		&dst.CallExpr{
			Fun: dst.NewIdent("NewConstructor"),
			Args: []dst.Expr{
				&dst.CompositeLit{
					Type: dst.NewIdent("ConstructorConfig"),
					Elts: elements,
				},
			},
		},
	)

	typeDecl := varDecl(
		builtin.Name+"Type",
		&dst.CallExpr{
			Fun:  dst.NewIdent("NewSimpleType"),
			Args: []dst.Expr{dst.NewIdent(builtin.Name + "Constructor")},
		},
	)

	nullableTypeDecl := varDecl(
		"Nullable"+builtin.Name+"Type",
		&dst.CallExpr{
			Fun: &dst.SelectorExpr{
				X:   dst.NewIdent(builtin.Name + "Type"),
				Sel: dst.NewIdent("WithNullable"),
			},
		},
	)

	return []dst.Decl{
		constructorDecl,
		typeDecl,
		nullableTypeDecl,
	}
}

// supertypesInitDecl produces the init function attaching supertypes,
// after all builtin types exist.
func supertypesInitDecl(builtins []BuiltinSpec) dst.Decl {
	var stmts []dst.Stmt
	for _, builtin := range builtins {
		if len(builtin.Supertypes) == 0 {
			continue
		}

		var args []dst.Expr
		for _, supertype := range builtin.Supertypes {
			args = append(args, dst.NewIdent(supertype+"Type"))
		}

		stmts = append(stmts, &dst.ExprStmt{
			X: &dst.CallExpr{
				Fun: &dst.SelectorExpr{
					X:   dst.NewIdent(builtin.Name + "Constructor"),
					Sel: dst.NewIdent("WithSupertypes"),
				},
				Args: args,
			},
		})
	}

	decl := &dst.FuncDecl{
		Name: dst.NewIdent("init"),
		Type: &dst.FuncType{
			Params: &dst.FieldList{},
		},
		Body: &dst.BlockStmt{
			List: stmts,
		},
	}
	decl.Decs.Before = dst.EmptyLine
	return decl
}

func varDecl(name string, value dst.Expr) dst.Decl {
	decl := &dst.GenDecl{
		Tok: token.VAR,
		Specs: []dst.Spec{
			&dst.ValueSpec{
				Names:  []*dst.Ident{dst.NewIdent(name)},
				Values: []dst.Expr{value},
			},
		},
	}
	decl.Decs.Before = dst.EmptyLine
	return decl
}

func stringLit(value string) dst.Expr {
	return &dst.BasicLit{
		Kind:  token.STRING,
		Value: strconv.Quote(value),
	}
}

func boolLit(value bool) dst.Expr {
	return dst.NewIdent(strconv.FormatBool(value))
}

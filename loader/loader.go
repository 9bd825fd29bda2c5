// Package loader builds models from YAML definitions. It is a thin front end
// over the mo builder API: every element goes through the same validation a
// programmatic caller gets.
package loader

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/modkit/modelica/mo"
)

type modelSpec struct {
	Name              string          `yaml:"name"`
	Kind              string          `yaml:"kind"`
	Comment           string          `yaml:"comment"`
	Within            *string         `yaml:"within"`
	Imports           []importSpec    `yaml:"imports"`
	Extends           []extendsSpec   `yaml:"extends"`
	Public            sectionSpec     `yaml:"public"`
	Protected         sectionSpec     `yaml:"protected"`
	InitialEquations  []equationSpec  `yaml:"initialEquations"`
	Equations         []equationSpec  `yaml:"equations"`
	InitialAlgorithms []statementSpec `yaml:"initialAlgorithms"`
	Algorithms        []statementSpec `yaml:"algorithms"`
	Annotation        []modSpec       `yaml:"annotation"`
}

type importSpec struct {
	Path     string   `yaml:"path"`
	Alias    string   `yaml:"alias"`
	Wildcard bool     `yaml:"wildcard"`
	Names    []string `yaml:"names"`
}

type extendsSpec struct {
	Type          string    `yaml:"type"`
	Modifications []modSpec `yaml:"modifications"`
}

type modSpec struct {
	Key    string    `yaml:"key"`
	Value  string    `yaml:"value"`
	Nested []modSpec `yaml:"nested"`
}

type sectionSpec struct {
	Constants  []declSpec `yaml:"constants"`
	Parameters []declSpec `yaml:"parameters"`
	Variables  []declSpec `yaml:"variables"`
	Components []declSpec `yaml:"components"`
}

type declSpec struct {
	Type          string    `yaml:"type"`
	Name          string    `yaml:"name"`
	Dims          []string  `yaml:"dims"`
	Modifications []modSpec `yaml:"modifications"`
	Value         string    `yaml:"value"`
	Comment       string    `yaml:"comment"`
	Causality     string    `yaml:"causality"`
	Flux          string    `yaml:"flux"`
	Condition     string    `yaml:"condition"`
}

type equationSpec struct {
	Left    string   `yaml:"left"`
	Right   string   `yaml:"right"`
	Connect []string `yaml:"connect"`
	Text    []string `yaml:"text"`
	Comment string   `yaml:"comment"`
}

type statementSpec struct {
	Target  string   `yaml:"target"`
	Value   string   `yaml:"value"`
	Call    string   `yaml:"call"`
	Text    []string `yaml:"text"`
	Comment string   `yaml:"comment"`
}

// Load builds a single model from a YAML definition.
func Load(data []byte) (*mo.Model, error) {
	var spec modelSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("parse model definition: %w", err)
	}
	return build(&spec)
}

// LoadAll builds one model per YAML document in a multi-document stream.
func LoadAll(data []byte) ([]*mo.Model, error) {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	var models []*mo.Model
	for {
		var spec modelSpec
		err := decoder.Decode(&spec)
		if errors.Is(err, io.EOF) {
			return models, nil
		}
		if err != nil {
			return nil, fmt.Errorf("parse model definition: %w", err)
		}
		m, err := build(&spec)
		if err != nil {
			return nil, err
		}
		models = append(models, m)
	}
}

func build(spec *modelSpec) (*mo.Model, error) {
	kind := spec.Kind
	if kind == "" {
		kind = string(mo.KindModel)
	}
	parsed, err := mo.ParseKind(kind)
	if err != nil {
		return nil, err
	}
	m, err := mo.NewModel(spec.Name, parsed)
	if err != nil {
		return nil, err
	}
	m.Comment = spec.Comment
	if spec.Within != nil {
		m.SetWithin(*spec.Within)
	}
	for _, imp := range spec.Imports {
		switch {
		case imp.Alias != "":
			if _, err := m.AddImportAlias(imp.Alias, imp.Path); err != nil {
				return nil, err
			}
		case imp.Wildcard:
			m.AddImportWildcard(imp.Path)
		case len(imp.Names) > 0:
			m.AddImportSelective(imp.Path, imp.Names...)
		default:
			m.AddImport(imp.Path)
		}
	}
	for _, ext := range spec.Extends {
		if _, err := m.AddExtends(ext.Type, mods(ext.Modifications)...); err != nil {
			return nil, err
		}
	}
	if err := buildSection(m, mo.Public, &spec.Public); err != nil {
		return nil, err
	}
	if err := buildSection(m, mo.Protected, &spec.Protected); err != nil {
		return nil, err
	}
	if err := buildEquations(m, mo.PhaseInitial, spec.InitialEquations); err != nil {
		return nil, err
	}
	if err := buildEquations(m, mo.PhaseNormal, spec.Equations); err != nil {
		return nil, err
	}
	if err := buildStatements(m, mo.PhaseInitial, spec.InitialAlgorithms); err != nil {
		return nil, err
	}
	if err := buildStatements(m, mo.PhaseNormal, spec.Algorithms); err != nil {
		return nil, err
	}
	m.Annotation = mods(spec.Annotation)
	return m, nil
}

func buildSection(m *mo.Model, vis mo.Visibility, spec *sectionSpec) error {
	roles := []struct {
		role  mo.Role
		decls []declSpec
	}{
		{mo.RoleConstant, spec.Constants},
		{mo.RoleParameter, spec.Parameters},
		{mo.RoleVariable, spec.Variables},
		{mo.RoleComponent, spec.Components},
	}
	for _, group := range roles {
		for _, ds := range group.decls {
			decl, err := buildDeclaration(&ds)
			if err != nil {
				return err
			}
			if err := m.AddDeclaration(vis, group.role, decl); err != nil {
				return err
			}
		}
	}
	return nil
}

func buildDeclaration(spec *declSpec) (*mo.Declaration, error) {
	decl, err := mo.NewDeclaration(spec.Type, spec.Name)
	if err != nil {
		return nil, err
	}
	decl.ArrayDims = spec.Dims
	decl.Modifications = mods(spec.Modifications)
	decl.Value = spec.Value
	decl.Comment = spec.Comment
	decl.Condition = spec.Condition
	if decl.Causality, err = mo.ParseCausality(spec.Causality); err != nil {
		return nil, err
	}
	if decl.Flux, err = mo.ParseFlux(spec.Flux); err != nil {
		return nil, err
	}
	return decl, nil
}

func buildEquations(m *mo.Model, phase mo.Phase, specs []equationSpec) error {
	for _, es := range specs {
		var eq *mo.Equation
		switch {
		case len(es.Connect) == 2:
			eq = mo.Connect(es.Connect[0], es.Connect[1])
		case len(es.Connect) != 0:
			return fmt.Errorf("connect needs exactly two references, got %d", len(es.Connect))
		case len(es.Text) > 0:
			eq = mo.TextEquation(es.Text...)
		default:
			eq = mo.SimpleEquation(es.Left, es.Right)
		}
		eq.Comment = es.Comment
		if err := m.AddEquation(phase, eq); err != nil {
			return err
		}
	}
	return nil
}

func buildStatements(m *mo.Model, phase mo.Phase, specs []statementSpec) error {
	for _, ss := range specs {
		var st *mo.Statement
		switch {
		case ss.Call != "":
			st = mo.CallStatement(ss.Call)
		case len(ss.Text) > 0:
			st = mo.TextStatement(ss.Text...)
		default:
			st = mo.Assign(ss.Target, ss.Value)
		}
		st.Comment = ss.Comment
		if err := m.AddStatement(phase, st); err != nil {
			return err
		}
	}
	return nil
}

func mods(specs []modSpec) mo.Modifications {
	if len(specs) == 0 {
		return nil
	}
	out := make(mo.Modifications, 0, len(specs))
	for _, ms := range specs {
		out = append(out, mo.Modification{
			Key:    ms.Key,
			Value:  ms.Value,
			Nested: mods(ms.Nested),
		})
	}
	return out
}

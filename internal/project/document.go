package project

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Item kinds as they appear in configuration documents
const (
	KindFreeStyle     = "freestyle"
	KindMultiBranch   = "multibranch"
	KindBranchProject = "branch-project"
)

// Document is the persisted configuration of an item
type Document struct {
	Kind        string             `yaml:"kind"`
	Description string             `yaml:"description,omitempty"`
	Disabled    bool               `yaml:"disabled,omitempty"`
	Template    bool               `yaml:"template,omitempty"`
	Triggers    []TriggerDocument  `yaml:"triggers,omitempty"`
	Properties  []PropertyDocument `yaml:"properties,omitempty"`
}

// TriggerDocument is the persisted form of a Trigger
type TriggerDocument struct {
	Kind                  string `yaml:"kind"`
	Spec                  string `yaml:"spec,omitempty"`
	UpstreamProjects      string `yaml:"upstreamProjects,omitempty"`
	Threshold             string `yaml:"threshold,omitempty"`
	IgnorePostCommitHooks bool   `yaml:"ignorePostCommitHooks,omitempty"`
}

// PropertyDocument is the persisted form of a JobProperty
type PropertyDocument struct {
	Kind       string      `yaml:"kind"`
	Parameters []Parameter `yaml:"parameters,omitempty"`
	NumToKeep  int         `yaml:"numToKeep,omitempty"`
	DaysToKeep int         `yaml:"daysToKeep,omitempty"`
}

// MarshalDocument encodes doc as YAML
func MarshalDocument(doc *Document) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("failed to marshal %s document: %w", doc.Kind, err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to marshal %s document: %w", doc.Kind, err)
	}
	return buf.Bytes(), nil
}

// UnmarshalDocument decodes a YAML document, rejecting unknown fields
func UnmarshalDocument(data []byte) (*Document, error) {
	var doc Document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal document: %w", err)
	}
	switch doc.Kind {
	case KindFreeStyle, KindMultiBranch, KindBranchProject:
	default:
		return nil, fmt.Errorf("unknown item kind %q", doc.Kind)
	}
	return &doc, nil
}

func encodeTriggers(triggers []Trigger) []TriggerDocument {
	if len(triggers) == 0 {
		return nil
	}
	docs := make([]TriggerDocument, 0, len(triggers))
	for _, t := range triggers {
		switch t := t.(type) {
		case *ReverseBuildTrigger:
			docs = append(docs, TriggerDocument{
				Kind:             t.Kind(),
				UpstreamProjects: t.UpstreamProjects(),
				Threshold:        string(t.Threshold),
			})
		case *TimerTrigger:
			docs = append(docs, TriggerDocument{Kind: t.Kind(), Spec: t.Spec})
		case *SCMTrigger:
			docs = append(docs, TriggerDocument{
				Kind:                  t.Kind(),
				Spec:                  t.Spec,
				IgnorePostCommitHooks: t.IgnorePostCommitHooks,
			})
		}
	}
	return docs
}

func decodeTriggers(docs []TriggerDocument) ([]Trigger, error) {
	triggers := make([]Trigger, 0, len(docs))
	for _, d := range docs {
		switch d.Kind {
		case TriggerKindReverseBuild:
			triggers = append(triggers, NewReverseBuildTrigger(d.UpstreamProjects, Threshold(d.Threshold)))
		case TriggerKindTimer:
			triggers = append(triggers, &TimerTrigger{Spec: d.Spec})
		case TriggerKindSCM:
			triggers = append(triggers, &SCMTrigger{Spec: d.Spec, IgnorePostCommitHooks: d.IgnorePostCommitHooks})
		default:
			return nil, fmt.Errorf("unknown trigger kind %q", d.Kind)
		}
	}
	return triggers, nil
}

func encodeProperties(props []JobProperty) []PropertyDocument {
	if len(props) == 0 {
		return nil
	}
	docs := make([]PropertyDocument, 0, len(props))
	for _, p := range props {
		switch p := p.(type) {
		case *ParametersProperty:
			docs = append(docs, PropertyDocument{
				Kind:       p.Kind(),
				Parameters: append([]Parameter(nil), p.Parameters...),
			})
		case *BuildDiscarderProperty:
			docs = append(docs, PropertyDocument{
				Kind:       p.Kind(),
				NumToKeep:  p.NumToKeep,
				DaysToKeep: p.DaysToKeep,
			})
		}
	}
	return docs
}

func decodeProperties(docs []PropertyDocument) ([]JobProperty, error) {
	props := make([]JobProperty, 0, len(docs))
	for _, d := range docs {
		switch d.Kind {
		case PropertyKindParameters:
			props = append(props, &ParametersProperty{Parameters: append([]Parameter(nil), d.Parameters...)})
		case PropertyKindBuildDiscarder:
			props = append(props, &BuildDiscarderProperty{NumToKeep: d.NumToKeep, DaysToKeep: d.DaysToKeep})
		default:
			return nil, fmt.Errorf("unknown property kind %q", d.Kind)
		}
	}
	return props, nil
}

// Package lockyaml renders pod locks as a YAML document keyed by pod name.
package lockyaml

import (
	"bytes"
	"fmt"

	"go.trai.ch/podfiler/internal/core/domain"
	"go.trai.ch/podfiler/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

const indent = 2

var _ ports.LockEncoder = (*Encoder)(nil)

// Encoder implements ports.LockEncoder.
//
// Each pod becomes a mapping holding its checksum, its version and the keys of
// its checkout source:
//
//	PodTest:
//	  checksum: 671615d047bc2a9e8c271feb99b749411b66aed2
//	  version: 1.0.0
//	  git: PodTest-git-source
//	  commit: da4e9da48d5a2bf65bad68f5dec35d6ddf8825a1
type Encoder struct{}

// NewEncoder creates a new Encoder.
func NewEncoder() *Encoder {
	return &Encoder{}
}

// Encode renders locks in the given order.
func (e *Encoder) Encode(locks []domain.PodLock) ([]byte, error) {
	root := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, lock := range locks {
		entry := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		appendPair(entry, "checksum", lock.Checksum)
		appendPair(entry, "version", lock.VersionString())

		if err := appendSource(entry, lock.Source); err != nil {
			return nil, zerr.With(err, "pod", lock.Name)
		}
		root.Content = append(root.Content, scalar(lock.Name), entry)
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(indent)
	if err := enc.Encode(&yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{root}}); err != nil {
		return nil, zerr.Wrap(domain.ErrOutputEncodeFailed, err.Error())
	}
	if err := enc.Close(); err != nil {
		return nil, zerr.Wrap(domain.ErrOutputEncodeFailed, err.Error())
	}
	return buf.Bytes(), nil
}

func appendSource(entry *yaml.Node, source domain.CheckoutSource) error {
	switch s := source.(type) {
	case domain.PathSource:
		appendPair(entry, "path", s.Path)
	case domain.HTTPSource:
		appendPair(entry, "http", s.URL)
	case domain.GitTagSource:
		appendPair(entry, "git", s.URL)
		appendPair(entry, "tag", s.Tag)
	case domain.GitCommitSource:
		appendPair(entry, "git", s.URL)
		appendPair(entry, "commit", s.Commit)
	case domain.SpecRepoSource:
		appendPair(entry, "spec", s.Repo)
	case domain.PodspecSource:
		appendPair(entry, "podspec", s.Ref)
	default:
		return zerr.Wrap(domain.ErrOutputEncodeFailed, fmt.Sprintf("unsupported checkout source %T", source))
	}
	return nil
}

func appendPair(m *yaml.Node, key, value string) {
	m.Content = append(m.Content, scalar(key), scalar(value))
}

// scalar builds a string node; the explicit tag keeps values such as "1.0" from
// being read back as numbers.
func scalar(value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value}
}

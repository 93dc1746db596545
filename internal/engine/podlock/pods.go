package podlock

import (
	"github.com/Masterminds/semver/v3"
	"go.trai.ch/podfiler/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	podNameExpr    = `[+\w/-]+`
	semVerExpr     = `\d+(?:\.\d+(?:\.\d+(?:-[-\w.]+)?)?)?`
	constraintExpr = `[=\s\d.>,~<]+`
	dependencyExpr = `\n\s{4}- (?P<name>` + podNameExpr + `)(?: \((?P<constraint>` + constraintExpr + `)\))?`
)

var (
	podTreePattern = MustPattern("pod tree",
		`\s{2}- (?P<name>`+podNameExpr+`) \((?P<version>`+semVerExpr+`)\)`+
			`(?P<dependencies>:(?:\n\s{4}- `+podNameExpr+`(?: \(`+constraintExpr+`\))?)+)?`)
	podDependencyPattern = MustPattern("pod dependency", dependencyExpr)
)

// Pod is an entry of the PODS section. Subspecs such as "Name/Sub" are entries of their own.
type Pod struct {
	Name         string
	Version      *semver.Version
	Dependencies []TransitiveDependency
}

// TransitiveDependency is a dependency listed under a pod in the PODS section.
type TransitiveDependency struct {
	Name string
	// Constraint is the version requirement such as "= 1.0.0" or "~> 2.1", empty when none is given.
	Constraint string
}

func parsePods(m *Matcher, section string) ([]Pod, error) {
	matches := m.Match(section, podTreePattern)
	pods := make([]Pod, 0, len(matches))
	for _, match := range matches {
		pod, err := parsePod(m, match)
		if err != nil {
			return nil, zerr.With(err, "section", SectionPods)
		}
		pods = append(pods, pod)
	}
	return pods, nil
}

func parsePod(m *Matcher, match Match) (Pod, error) {
	name, err := match.Group("name")
	if err != nil {
		return Pod{}, err
	}
	raw, err := match.Group("version")
	if err != nil {
		return Pod{}, zerr.With(err, "pod", name)
	}
	version, err := semver.NewVersion(raw)
	if err != nil {
		err = zerr.With(zerr.Wrap(domain.ErrInvalidVersion, err.Error()), "pod", name)
		return Pod{}, zerr.With(err, "version", raw)
	}

	var deps []TransitiveDependency
	if block, ok := match.Optional("dependencies"); ok {
		for _, dep := range m.Match(block, podDependencyPattern) {
			depName, err := dep.Group("name")
			if err != nil {
				return Pod{}, zerr.With(err, "pod", name)
			}
			constraint, _ := dep.Optional("constraint")
			deps = append(deps, TransitiveDependency{Name: depName, Constraint: constraint})
		}
	}

	return Pod{Name: name, Version: version, Dependencies: deps}, nil
}

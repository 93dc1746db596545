package podlock

import (
	"regexp"

	"go.trai.ch/podfiler/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	blockBodyExpr = `(?P<body>(?:    .*(?:\n|$))+)`

	optionGit    = "git"
	optionPath   = "path"
	optionHTTP   = "http"
	optionCommit = "commit"
	optionTag    = "tag"
)

var (
	externalSourcePattern = MustPattern("external source",
		`(?m)^  (?P<name>`+podNameExpr+`):\n`+blockBodyExpr)
	sourceOptionPattern = MustPattern("source option",
		`(?m)^    :(?P<key>\w+): (?P<value>[-.\w:/@]+)`)
	specRepoPattern = MustPattern("spec repo",
		`\s{2}(?P<repo>[-\w:/.@]+):(?P<pods>(?:\n\s{4}- `+podNameExpr+`)+)`)
	specRepoPodPattern = MustPattern("spec repo pod",
		`\n\s{4}- (?P<name>`+podNameExpr+`)`)
)

// Checkout pairs a top-level dependency name with its checkout source.
type Checkout struct {
	Name   string
	Source domain.CheckoutSource
}

type sourceOption struct {
	key   string
	value string
}

// resolveCheckouts combines SPEC REPOS, EXTERNAL SOURCES and CHECKOUT OPTIONS into one
// mapping keyed by dependency name. External sources take precedence over spec repos.
func resolveCheckouts(m *Matcher, sections Sections) (map[string]domain.CheckoutSource, error) {
	repos, err := parseSpecRepos(m, sections.SpecRepos)
	if err != nil {
		return nil, err
	}
	external, err := parseExternalSources(m, sections.ExternalSources, sections.CheckoutOptions)
	if err != nil {
		return nil, err
	}

	checkouts := make(map[string]domain.CheckoutSource, len(repos)+len(external))
	for _, c := range repos {
		checkouts[c.Name] = c.Source
	}
	for _, c := range external {
		checkouts[c.Name] = c.Source
	}
	return checkouts, nil
}

func parseSpecRepos(m *Matcher, section string) ([]Checkout, error) {
	var checkouts []Checkout
	for _, match := range m.Match(section, specRepoPattern) {
		repo, err := match.Group("repo")
		if err != nil {
			return nil, zerr.With(err, "section", SectionSpecRepos)
		}
		pods, err := match.Group("pods")
		if err != nil {
			return nil, zerr.With(zerr.With(err, "section", SectionSpecRepos), "repo", repo)
		}
		for _, podMatch := range m.Match(pods, specRepoPodPattern) {
			name, err := podMatch.Group("name")
			if err != nil {
				return nil, zerr.With(zerr.With(err, "section", SectionSpecRepos), "repo", repo)
			}
			checkouts = append(checkouts, Checkout{Name: name, Source: domain.SpecRepoSource{Repo: repo}})
		}
	}
	return checkouts, nil
}

func parseExternalSources(m *Matcher, section, checkoutOptions string) ([]Checkout, error) {
	var checkouts []Checkout
	for _, match := range m.Match(section, externalSourcePattern) {
		name, err := match.Group("name")
		if err != nil {
			return nil, zerr.With(err, "section", SectionExternalSources)
		}
		body, err := match.Group("body")
		if err != nil {
			return nil, zerr.With(zerr.With(err, "section", SectionExternalSources), "pod", name)
		}
		options, err := parseSourceOptions(m, body)
		if err != nil {
			return nil, zerr.With(zerr.With(err, "section", SectionExternalSources), "pod", name)
		}

		source, err := externalSource(m, name, options, checkoutOptions)
		if err != nil {
			return nil, err
		}
		checkouts = append(checkouts, Checkout{Name: name, Source: source})
	}
	return checkouts, nil
}

// externalSource picks the first path, git or http option of an external source block.
// Lines before it, such as :branch:, are skipped.
func externalSource(m *Matcher, name string, options []sourceOption, checkoutOptions string) (domain.CheckoutSource, error) {
	for _, opt := range options {
		switch opt.key {
		case optionPath:
			return domain.PathSource{Path: opt.value}, nil
		case optionHTTP:
			return domain.HTTPSource{URL: opt.value}, nil
		case optionGit:
			return gitSource(m, name, opt.value, checkoutOptions)
		}
	}

	kind := ""
	if len(options) > 0 {
		kind = options[0].key
	}
	err := zerr.With(zerr.Wrap(domain.ErrUnknownSourceKind, "no path, git or http option"), "pod", name)
	err = zerr.With(err, "kind", kind)
	return nil, zerr.With(err, "section", SectionExternalSources)
}

// gitSource pins a git external source with the commit or tag recorded in CHECKOUT OPTIONS.
func gitSource(m *Matcher, name, url, checkoutOptions string) (domain.CheckoutSource, error) {
	pattern, err := m.Compile("checkout option",
		`(?m)^  `+regexp.QuoteMeta(name)+`:\n`+blockBodyExpr)
	if err != nil {
		return nil, err
	}
	block, err := m.FirstMatch(checkoutOptions, pattern)
	if err != nil {
		return nil, zerr.With(zerr.With(err, "section", SectionCheckoutOptions), "pod", name)
	}
	body, err := block.Group("body")
	if err != nil {
		return nil, zerr.With(zerr.With(err, "section", SectionCheckoutOptions), "pod", name)
	}
	options, err := parseSourceOptions(m, body)
	if err != nil {
		return nil, zerr.With(zerr.With(err, "section", SectionCheckoutOptions), "pod", name)
	}

	var pins []sourceOption
	for _, opt := range options {
		if opt.key == optionCommit || opt.key == optionTag {
			pins = append(pins, opt)
		}
	}
	if len(pins) != 1 {
		err := zerr.With(zerr.Wrap(domain.ErrUnknownGitSource, "expected exactly one commit or tag"), "pod", name)
		err = zerr.With(err, "pins", len(pins))
		return nil, zerr.With(err, "section", SectionCheckoutOptions)
	}

	if pins[0].key == optionCommit {
		return domain.GitCommitSource{Commit: pins[0].value, URL: url}, nil
	}
	return domain.GitTagSource{Tag: pins[0].value, URL: url}, nil
}

func parseSourceOptions(m *Matcher, body string) ([]sourceOption, error) {
	matches := m.Match(body, sourceOptionPattern)
	options := make([]sourceOption, 0, len(matches))
	for _, match := range matches {
		key, err := match.Group("key")
		if err != nil {
			return nil, err
		}
		value, err := match.Group("value")
		if err != nil {
			return nil, zerr.With(err, "option", key)
		}
		options = append(options, sourceOption{key: key, value: value})
	}
	return options, nil
}

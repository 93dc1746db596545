package podlock

import "go.trai.ch/zerr"

var checksumPattern = MustPattern("spec checksum",
	`\s{2}(?P<name>`+podNameExpr+`): (?P<checksum>[a-f0-9]{40})`)

// parseChecksums maps pod names to their SPEC CHECKSUMS entry.
// A repeated name overwrites the earlier entry.
func parseChecksums(m *Matcher, section string) (map[string]string, error) {
	checksums := make(map[string]string)
	for _, match := range m.Match(section, checksumPattern) {
		name, err := match.Group("name")
		if err != nil {
			return nil, zerr.With(err, "section", SectionSpecChecksums)
		}
		checksum, err := match.Group("checksum")
		if err != nil {
			return nil, zerr.With(zerr.With(err, "section", SectionSpecChecksums), "pod", name)
		}
		checksums[name] = checksum
	}
	return checksums, nil
}

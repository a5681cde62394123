package properties

import (
	"sort"
	"strings"

	"github.com/arthur-debert/props/pkg/errors"
)

// parseTokensLocked walks the raw token stream and distributes values into
// the matched properties' argument buffers. Classification order: the "--"
// terminator, the -D side channel, flag tokens (exact match, then short-flag
// bundles), and finally positional values appended to the current property.
func (s *Service) parseTokensLocked(tokens []string, skipUnknown bool) error {
	var current Property
	skipValues := false

	for _, raw := range tokens {
		token := strings.TrimSpace(raw)

		if token == "--" {
			break
		}

		if err := s.parseTokenLocked(token, skipUnknown, &current, &skipValues); err != nil {
			return errors.Wrapf(err, errors.ErrParsing, "could not parse argument %q", token)
		}
	}

	return nil
}

func (s *Service) parseTokenLocked(token string, skipUnknown bool, current *Property, skipValues *bool) error {
	if strings.HasPrefix(token, "-D") {
		return parseSystemPropertyToken(token)
	}

	if len(token) > 1 && strings.HasPrefix(token, "-") {
		if p := s.matchLocked(token); p != nil {
			// Re-specifying a flag discards earlier values: the last
			// occurrence wins.
			p.Reset()
			p.MarkIdentified()
			*current = p
			*skipValues = false
			return nil
		}

		if !strings.HasPrefix(token, "--") && len(token) > 2 {
			if err := s.parseBundleLocked(token, skipUnknown); err != nil {
				return err
			}
			// Bundled flags take no trailing values.
			*current = nil
			*skipValues = false
			return nil
		}

		if !skipUnknown {
			return errors.Newf(errors.ErrParsing, "unknown property: %s", token)
		}
		*current = nil
		*skipValues = true
		return nil
	}

	if *current == nil {
		if skipUnknown && *skipValues {
			return nil
		}
		return errors.Newf(errors.ErrParsing, "value without flag: %s", token)
	}

	(*current).AddArgument(token)
	return nil
}

// parseBundleLocked matches each character of a short-flag bundle as an
// independent single-character flag.
func (s *Service) parseBundleLocked(token string, skipUnknown bool) error {
	for _, c := range token[1:] {
		flag := "-" + string(c)
		if p := s.matchLocked(flag); p != nil {
			p.Reset()
			p.MarkIdentified()
			continue
		}
		if !skipUnknown {
			return errors.Newf(errors.ErrParsing, "unknown property: %s", flag)
		}
	}
	return nil
}

func (s *Service) matchLocked(token string) Property {
	for _, id := range s.initializedSnapshotLocked() {
		if p := s.initialized[id]; p.Match(token) {
			return p
		}
	}
	return nil
}

// initializedSnapshotLocked returns the initialized identities in sorted
// order so matching is deterministic.
func (s *Service) initializedSnapshotLocked() []Identity {
	ids := make([]Identity, 0, len(s.initialized))
	for id := range s.initialized {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// parseSystemPropertyToken handles a -D token: split on the first "=", a
// token without "=" sets the key to an empty string.
func parseSystemPropertyToken(token string) error {
	assignment := strings.TrimPrefix(token, "-D")
	if assignment == "" {
		return errors.Newf(errors.ErrParsing, "invalid system property syntax: %s", token)
	}

	key, value, _ := strings.Cut(assignment, "=")
	if key == "" {
		return errors.Newf(errors.ErrParsing, "invalid system property syntax: %s", token)
	}

	SetSystemProperty(key, value)
	return nil
}

package locale

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"weekplan/internal/shared/errors"
)

//go:embed locales.yaml
var localesYAML []byte

var (
	profiles  map[string]Profile
	tags      []string
	matchTags []language.Tag
	matcher   language.Matcher
)

func init() {
	if err := loadTable(localesYAML); err != nil {
		panic(fmt.Sprintf("locale: invalid embedded table: %v", err))
	}
}

func loadTable(data []byte) error {
	var raw map[string]Profile
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return err
	}

	profiles = make(map[string]Profile, len(raw))
	tags = make([]string, 0, len(raw))
	for tag, p := range raw {
		if len(p.DayNames) != 5 {
			return fmt.Errorf("profile %q must have 5 day names, has %d", tag, len(p.DayNames))
		}
		if len(p.MonthNames) != 12 {
			return fmt.Errorf("profile %q must have 12 month names, has %d", tag, len(p.MonthNames))
		}
		p.Tag = tag
		profiles[tag] = p
		tags = append(tags, tag)
	}
	sort.Strings(tags)

	matchTags = make([]language.Tag, len(tags))
	for i, tag := range tags {
		t, err := language.Parse(tag)
		if err != nil {
			return fmt.Errorf("profile %q has an invalid tag: %w", tag, err)
		}
		matchTags[i] = t
	}
	matcher = language.NewMatcher(matchTags)
	return nil
}

// Resolve returns the profile registered for languageTag. Regional variants
// fall back to their base language (de-AT resolves to de). Unknown or
// malformed tags fail with an unsupported-language error.
func Resolve(languageTag string) (Profile, error) {
	trimmed := strings.TrimSpace(languageTag)
	if trimmed == "" {
		return Profile{}, errors.NewUnsupportedLanguageError("language tag is empty")
	}

	parsed, err := language.Parse(trimmed)
	if err != nil {
		return Profile{}, errors.NewUnsupportedLanguageError("unknown language", trimmed)
	}

	_, index, confidence := matcher.Match(parsed)
	if confidence == language.No {
		return Profile{}, errors.NewUnsupportedLanguageError("unknown language", trimmed)
	}

	// the matcher falls back across language boundaries at low confidence
	// (tlh would land on the first registered tag); a match only counts
	// when the base language agrees
	wantBase, _ := parsed.Base()
	haveBase, _ := matchTags[index].Base()
	if wantBase != haveBase {
		return Profile{}, errors.NewUnsupportedLanguageError("unknown language", trimmed)
	}
	return profiles[tags[index]], nil
}

// ListAvailable returns the registered language tags sorted ascending.
func ListAvailable() []string {
	out := make([]string, len(tags))
	copy(out, tags)
	return out
}

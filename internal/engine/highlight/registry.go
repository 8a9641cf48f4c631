package highlight

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Registry holds the known highlight profiles and selects one per filename.
type Registry struct {
	profiles []*Profile
}

// NewRegistry creates a registry seeded with the built-in profiles.
func NewRegistry() *Registry {
	return &Registry{profiles: []*Profile{CProfile()}}
}

// Register adds a profile. Later registrations take precedence over
// built-ins when both match a filename.
func (r *Registry) Register(p *Profile) {
	r.profiles = append([]*Profile{p}, r.profiles...)
}

// Match returns the first profile matching the filename, or nil when no
// profile applies (highlighting stays disabled for the file).
func (r *Registry) Match(filename string) *Profile {
	for _, p := range r.profiles {
		if p.MatchesFile(filename) {
			return p
		}
	}
	return nil
}

// profileFile is the on-disk YAML shape of a user-defined profile.
type profileFile struct {
	Name              string   `yaml:"name"`
	FileMatch         []string `yaml:"filematch"`
	Keywords          []string `yaml:"keywords"`
	Types             []string `yaml:"types"`
	Specials          []string `yaml:"specials"`
	SpecialStart      string   `yaml:"special_start"`
	LineComment       string   `yaml:"line_comment"`
	BlockCommentStart string   `yaml:"block_comment_start"`
	BlockCommentEnd   string   `yaml:"block_comment_end"`
	Numbers           bool     `yaml:"numbers"`
	Strings           bool     `yaml:"strings"`
}

// LoadDir registers every profile defined in *.yaml / *.yml files under
// dir. A missing directory is not an error; a malformed file is.
func (r *Registry) LoadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading syntax dir: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		p, err := loadProfileFile(path)
		if err != nil {
			return fmt.Errorf("loading syntax profile %s: %w", entry.Name(), err)
		}
		r.Register(p)
	}
	return nil
}

func loadProfileFile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var pf profileFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return nil, err
	}
	if pf.Name == "" {
		return nil, fmt.Errorf("profile has no name")
	}
	if len(pf.FileMatch) == 0 {
		return nil, fmt.Errorf("profile %q has no filematch patterns", pf.Name)
	}

	p := &Profile{
		Name:              pf.Name,
		FileMatch:         pf.FileMatch,
		Keywords:          pf.Keywords,
		Types:             pf.Types,
		Specials:          pf.Specials,
		LineComment:       pf.LineComment,
		BlockCommentStart: pf.BlockCommentStart,
		BlockCommentEnd:   pf.BlockCommentEnd,
	}
	if pf.SpecialStart != "" {
		p.SpecialStart = pf.SpecialStart[0]
	}
	if pf.Numbers {
		p.Flags |= FlagNumbers
	}
	if pf.Strings {
		p.Flags |= FlagStrings
	}
	if len(pf.Specials) > 0 && p.SpecialStart != 0 {
		p.Flags |= FlagSpecials
	}
	return p, nil
}

// Package content holds the static page data: bio, skills, projects and
// contact details. A default document is embedded; a YAML file can replace it.
package content

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed content.yaml
var defaultYAML []byte

// Frame is one picture of a rotating image: ASCII art plus a caption
type Frame struct {
	Caption string `yaml:"caption"`
	Art     string `yaml:"art"`
}

// Lines splits the art into rows without the trailing newline
func (f Frame) Lines() []string {
	return strings.Split(strings.TrimRight(f.Art, "\n"), "\n")
}

type Hero struct {
	Greeting string `yaml:"greeting"`
	Name     string `yaml:"name"`
	Title    string `yaml:"title"`
	Subtitle string `yaml:"subtitle"`
	Major    string `yaml:"major"`
	Code     string `yaml:"code"`
}

type Highlight struct {
	Number string `yaml:"number"`
	Text   string `yaml:"text"`
}

type About struct {
	Heading    string      `yaml:"heading"`
	Paragraphs []string    `yaml:"paragraphs"`
	Highlights []Highlight `yaml:"highlights"`
	Photos     []Frame     `yaml:"photos"`
}

type Skill struct {
	Name  string `yaml:"name"`
	Level int    `yaml:"level"`
	Icon  string `yaml:"icon"`
}

type Category struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Tags        []string `yaml:"tags"`
}

type Skills struct {
	Subtitle   string     `yaml:"subtitle"`
	Items      []Skill    `yaml:"items"`
	Categories []Category `yaml:"categories"`
}

type Project struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Tech        []string `yaml:"tech"`
	Icon        string   `yaml:"icon"`
	Live        string   `yaml:"live"`
	Code        string   `yaml:"code"`
	Screenshots []Frame  `yaml:"screenshots"`
}

type Projects struct {
	Subtitle string    `yaml:"subtitle"`
	Items    []Project `yaml:"items"`
}

// Social is a profile link opened with the system opener
type Social struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
	Icon string `yaml:"icon"`
	Key  string `yaml:"key"`
}

type Contact struct {
	Subtitle string   `yaml:"subtitle"`
	Email    string   `yaml:"email"`
	Phone    string   `yaml:"phone"`
	PhoneURI string   `yaml:"phone_uri"`
	Socials  []Social `yaml:"socials"`
	Form     []string `yaml:"form"`
}

type Footer struct {
	Title     string `yaml:"title"`
	Copyright string `yaml:"copyright"`
}

// Content is the whole page document
type Content struct {
	Hero     Hero     `yaml:"hero"`
	About    About    `yaml:"about"`
	Skills   Skills   `yaml:"skills"`
	Projects Projects `yaml:"projects"`
	Contact  Contact  `yaml:"contact"`
	Footer   Footer   `yaml:"footer"`
}

// Default returns the embedded document
func Default() (*Content, error) {
	c, err := Parse(defaultYAML)
	if err != nil {
		return nil, fmt.Errorf("embedded content: %w", err)
	}
	return c, nil
}

// Load reads the document at path, or the embedded one when path is empty
func Load(path string) (*Content, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read content file: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("content file %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes and validates a YAML document
func Parse(data []byte) (*Content, error) {
	var c Content
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse content: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks the fields the page cannot render without
func (c *Content) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Hero.Name) == "" {
		errs = append(errs, errors.New("hero.name is required"))
	}
	for i, s := range c.Skills.Items {
		if s.Name == "" {
			errs = append(errs, fmt.Errorf("skills.items[%d]: name is required", i))
		}
		if s.Level < 0 || s.Level > 100 {
			errs = append(errs, fmt.Errorf("skills.items[%d]: level %d outside 0-100", i, s.Level))
		}
	}
	for i, p := range c.Projects.Items {
		if p.Title == "" {
			errs = append(errs, fmt.Errorf("projects.items[%d]: title is required", i))
		}
	}
	for i, s := range c.Contact.Socials {
		if s.URL == "" {
			errs = append(errs, fmt.Errorf("contact.socials[%d]: url is required", i))
		}
	}
	return errors.Join(errs...)
}

// ScreenshotCounts returns the number of screenshots per project, the only
// value the carousels need.
func (c *Content) ScreenshotCounts() []int {
	counts := make([]int, len(c.Projects.Items))
	for i, p := range c.Projects.Items {
		counts[i] = len(p.Screenshots)
	}
	return counts
}

// SocialByKey returns the social link bound to a key
func (c *Content) SocialByKey(key string) (Social, bool) {
	for _, s := range c.Contact.Socials {
		if s.Key == key {
			return s, true
		}
	}
	return Social{}, false
}

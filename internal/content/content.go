// Package content loads the static portfolio data rendered by the page.
// Content is configuration: different drafts of the page are different
// YAML files, not different code.
package content

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

// Content is everything the page renders.
type Content struct {
	Profile    Profile         `yaml:"profile"`
	Education  []Entry         `yaml:"education"`
	Experience []Entry         `yaml:"experience"`
	Projects   []Project       `yaml:"projects"`
	Skills     []SkillCategory `yaml:"skills"`
	Interests  []Interest      `yaml:"interests"`
	Contact    ContactInfo     `yaml:"contact"`
}

// Profile is the hero section and about text.
type Profile struct {
	Name     string `yaml:"name"`
	Greeting string `yaml:"greeting"`
	Tagline  string `yaml:"tagline"`
	About    string `yaml:"about"`
	Photo    string `yaml:"photo"`
}

// Entry is one education or work experience item.
type Entry struct {
	Title        string   `yaml:"title"`
	Organization string   `yaml:"organization"`
	Period       string   `yaml:"period"`
	Description  string   `yaml:"description"`
	Image        string   `yaml:"image"`
	Tags         []string `yaml:"tags"`
	Kind         string   `yaml:"kind"` // degree, current, previous
}

// Project is one carousel slide.
type Project struct {
	Title       string   `yaml:"title"`
	Course      string   `yaml:"course"`
	Description string   `yaml:"description"`
	Image       string   `yaml:"image"`
	Link        string   `yaml:"link"`
	Tags        []string `yaml:"tags"`
	Tools       string   `yaml:"tools"`
}

// SkillCategory groups related skills under a heading.
type SkillCategory struct {
	Title  string   `yaml:"title"`
	Skills []string `yaml:"skills"`
}

// Interest is one card in the interests section.
type Interest struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// ContactInfo is shown beside the contact form.
type ContactInfo struct {
	Email         string `yaml:"email"`
	LinkedIn      string `yaml:"linkedin"`
	LinkedInLabel string `yaml:"linkedin_label"`
	GitHub        string `yaml:"github"`
	OpenTo        string `yaml:"open_to"`
}

// Default returns the embedded content.
func Default() (*Content, error) {
	return parse(defaultYAML, "embedded default.yaml")
}

// Load reads content from path, or the embedded default when path is empty.
// Unknown keys are rejected so typos in a content file fail loudly.
func Load(path string) (*Content, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("content: reading %s: %w", path, err)
	}
	return parse(data, path)
}

func parse(data []byte, name string) (*Content, error) {
	var c Content
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("content: parsing %s: %w", name, err)
	}
	if c.Profile.Name == "" {
		return nil, fmt.Errorf("content: %s: profile.name is required", name)
	}
	return &c, nil
}

// Package seed loads the startup catalog of courses and students.
package seed

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/stemsi/registrar/internal/model"
	"github.com/stemsi/registrar/internal/service"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalog []byte

// Catalog is the on-disk shape of a seed file.
type Catalog struct {
	Courses  []model.CreateCourseRequest  `yaml:"courses"`
	Students []model.CreateStudentRequest `yaml:"students"`
}

// Default returns the built-in catalog.
func Default() (*Catalog, error) {
	return Decode(bytes.NewReader(defaultCatalog))
}

// LoadFile reads a catalog from path. An empty path selects the default.
func LoadFile(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open seed file: %w", err)
	}
	defer f.Close()

	cat, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cat, nil
}

// Decode parses a YAML catalog. Unknown keys are rejected.
func Decode(r io.Reader) (*Catalog, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var cat Catalog
	if err := dec.Decode(&cat); err != nil {
		if errors.Is(err, io.EOF) {
			return &cat, nil
		}
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return &cat, nil
}

// Apply adds every course then every student to reg, stopping at the
// first invalid entry.
func (c *Catalog) Apply(ctx context.Context, reg *service.Registry) error {
	for i := range c.Courses {
		if _, err := reg.CreateCourse(ctx, &c.Courses[i]); err != nil {
			return fmt.Errorf("course #%d: %w", i+1, err)
		}
	}
	for i := range c.Students {
		if _, err := reg.CreateStudent(ctx, &c.Students[i]); err != nil {
			return fmt.Errorf("student #%d: %w", i+1, err)
		}
	}
	return nil
}

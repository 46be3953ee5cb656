// Package seed loads demonstration parts and products from YAML.
package seed

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	appsvcs "github.com/ghuser/inventory/services/inventory/application/services"
	"github.com/ghuser/inventory/services/inventory/domain/models"
	domainsvcs "github.com/ghuser/inventory/services/inventory/domain/services"
)

//go:embed demo.yaml
var demo []byte

// Part is one part entry. Numeric fields are kept as text and go through
// the same parsing as user input.
type Part struct {
	Source      string `yaml:"source"`
	Name        string `yaml:"name"`
	Price       string `yaml:"price"`
	Stock       string `yaml:"stock"`
	Min         string `yaml:"min"`
	Max         string `yaml:"max"`
	MachineID   string `yaml:"machine_id"`
	CompanyName string `yaml:"company_name"`
}

// Product is one product entry. Parts names parts declared in the same file.
type Product struct {
	Name  string   `yaml:"name"`
	Price string   `yaml:"price"`
	Stock string   `yaml:"stock"`
	Min   string   `yaml:"min"`
	Max   string   `yaml:"max"`
	Parts []string `yaml:"parts"`
}

// File is the top-level seed document.
type File struct {
	Parts    []Part    `yaml:"parts"`
	Products []Product `yaml:"products"`
}

// Demo returns the embedded demonstration data.
func Demo() (*File, error) {
	return Parse(demo)
}

// Parse decodes a seed document. Unknown keys are rejected and an empty
// document yields an empty File.
func Parse(data []byte) (*File, error) {
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("seed: decode: %w", err)
	}
	return &f, nil
}

// Apply creates every part, then every product, through the application
// services. It stops at the first rejected record.
func Apply(ctx context.Context, svcs *appsvcs.Services, f *File) error {
	ids := make(map[string]int, len(f.Parts))
	for i, p := range f.Parts {
		source, err := models.ParsePartSource(p.Source)
		if err != nil {
			return fmt.Errorf("seed: part %d: %w", i, err)
		}
		part, err := svcs.Part.Create(ctx, domainsvcs.PartForm{
			Source:      source,
			Name:        p.Name,
			Price:       p.Price,
			Stock:       p.Stock,
			Min:         p.Min,
			Max:         p.Max,
			MachineID:   p.MachineID,
			CompanyName: p.CompanyName,
		})
		if err != nil {
			return fmt.Errorf("seed: part %q: %w", p.Name, err)
		}
		ids[strings.TrimSpace(part.Name)] = part.ID
	}

	for _, p := range f.Products {
		partIDs := make([]int, 0, len(p.Parts))
		for _, name := range p.Parts {
			id, ok := ids[strings.TrimSpace(name)]
			if !ok {
				return fmt.Errorf("seed: product %q references unknown part %q", p.Name, name)
			}
			partIDs = append(partIDs, id)
		}
		form := domainsvcs.ProductForm{Name: p.Name, Price: p.Price, Stock: p.Stock, Min: p.Min, Max: p.Max}
		if _, err := svcs.Product.Create(ctx, form, partIDs); err != nil {
			return fmt.Errorf("seed: product %q: %w", p.Name, err)
		}
	}
	return nil
}

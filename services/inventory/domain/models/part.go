package models

import (
	"fmt"
	"strings"
)

// PartSource discriminates where a part comes from.
type PartSource int

const (
	SourceInHouse PartSource = iota + 1
	SourceOutsourced
)

// String returns the wire name of the source.
func (s PartSource) String() string {
	switch s {
	case SourceInHouse:
		return "in_house"
	case SourceOutsourced:
		return "outsourced"
	default:
		return "unknown"
	}
}

// Label is the display label of the variant-specific field.
func (s PartSource) Label() string {
	switch s {
	case SourceInHouse:
		return "Machine ID"
	case SourceOutsourced:
		return "Company Name"
	default:
		return ""
	}
}

// ParsePartSource accepts the wire names returned by String.
func ParsePartSource(s string) (PartSource, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "in_house":
		return SourceInHouse, nil
	case "outsourced":
		return SourceOutsourced, nil
	default:
		return 0, fmt.Errorf("unknown part source %q", s)
	}
}

// Part is a component that can be stocked on its own or associated with products.
// Exactly one of MachineID or CompanyName is meaningful, selected by Source.
type Part struct {
	ID          int
	Name        string
	Price       float64
	Stock       int
	Min         int
	Max         int
	Source      PartSource
	MachineID   int
	CompanyName string
}

// NewInHousePart builds a part manufactured in-house.
func NewInHousePart(id int, name string, price float64, stock, min, max, machineID int) *Part {
	return &Part{
		ID:        id,
		Name:      name,
		Price:     price,
		Stock:     stock,
		Min:       min,
		Max:       max,
		Source:    SourceInHouse,
		MachineID: machineID,
	}
}

// NewOutsourcedPart builds a part bought from an outside company.
func NewOutsourcedPart(id int, name string, price float64, stock, min, max int, companyName string) *Part {
	return &Part{
		ID:          id,
		Name:        name,
		Price:       price,
		Stock:       stock,
		Min:         min,
		Max:         max,
		Source:      SourceOutsourced,
		CompanyName: companyName,
	}
}

// IsInHouse reports whether the part is manufactured in-house.
func (p *Part) IsInHouse() bool { return p.Source == SourceInHouse }

// IsOutsourced reports whether the part is bought from an outside company.
func (p *Part) IsOutsourced() bool { return p.Source == SourceOutsourced }

// SourceDetail returns the variant-specific field rendered as text.
func (p *Part) SourceDetail() string {
	if p.IsOutsourced() {
		return p.CompanyName
	}
	return fmt.Sprintf("%d", p.MachineID)
}

// Clone returns a copy that shares nothing with p.
func (p *Part) Clone() *Part {
	if p == nil {
		return nil
	}
	c := *p
	return &c
}

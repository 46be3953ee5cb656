package models

// Product is a sellable assembly. Its associated parts are references to
// parts held by the inventory, in insertion order; duplicates are allowed.
type Product struct {
	ID    int
	Name  string
	Price float64
	Stock int
	Min   int
	Max   int

	associatedParts []*Part
}

// NewProduct builds a product with no associated parts.
func NewProduct(id int, name string, price float64, stock, min, max int) *Product {
	return &Product{
		ID:    id,
		Name:  name,
		Price: price,
		Stock: stock,
		Min:   min,
		Max:   max,
	}
}

// AddAssociatedPart appends part. A nil part is ignored.
func (p *Product) AddAssociatedPart(part *Part) {
	if part == nil {
		return
	}
	p.associatedParts = append(p.associatedParts, part)
}

// DeleteAssociatedPart removes the first association with part's id and
// reports whether one was removed.
func (p *Product) DeleteAssociatedPart(part *Part) bool {
	if part == nil {
		return false
	}
	for i, ap := range p.associatedParts {
		if ap.ID == part.ID {
			p.associatedParts = append(p.associatedParts[:i:i], p.associatedParts[i+1:]...)
			return true
		}
	}
	return false
}

// AllAssociatedParts returns the associated parts in insertion order.
// The returned slice is a copy; the parts are shared.
func (p *Product) AllAssociatedParts() []*Part {
	out := make([]*Part, len(p.associatedParts))
	copy(out, p.associatedParts)
	return out
}

// HasAssociatedParts reports whether at least one part is associated.
func (p *Product) HasAssociatedParts() bool { return len(p.associatedParts) > 0 }

// ReplaceAssociatedPart swaps every reference to a part with id for part.
// It returns the number of references swapped.
func (p *Product) ReplaceAssociatedPart(id int, part *Part) int {
	n := 0
	for i, ap := range p.associatedParts {
		if ap.ID == id {
			p.associatedParts[i] = part
			n++
		}
	}
	return n
}

// Clone copies the product and its association list. Parts stay shared.
func (p *Product) Clone() *Product {
	if p == nil {
		return nil
	}
	c := *p
	c.associatedParts = p.AllAssociatedParts()
	return &c
}

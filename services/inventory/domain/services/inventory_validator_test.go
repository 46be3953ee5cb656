package services

import (
	"errors"
	"testing"

	"github.com/ghuser/inventory/services/inventory/domain"
	"github.com/ghuser/inventory/services/inventory/domain/models"
)

func TestNameNonEmpty(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"plain name", "Saddle Bags", true},
		{"single char", "x", true},
		{"empty", "", false},
		{"only spaces", "   ", false},
		{"tab and newline", "\t\n", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NameNonEmpty(tt.input); got != tt.want {
				t.Fatalf("NameNonEmpty(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestMinMaxValid(t *testing.T) {
	tests := []struct {
		name     string
		min, max int
		want     bool
	}{
		{"min below max", 1, 10, true},
		{"min equals max", 3, 3, true},
		{"min greater than max", 5, 2, false},
		{"zero min", 0, 5, false},
		{"negative min", -1, 5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MinMaxValid(tt.min, tt.max); got != tt.want {
				t.Fatalf("MinMaxValid(%d, %d) = %v, want %v", tt.min, tt.max, got, tt.want)
			}
		})
	}
}

func TestStockInBounds(t *testing.T) {
	tests := []struct {
		name            string
		min, max, stock int
		want            bool
	}{
		{"inside", 1, 10, 5, true},
		{"at min", 1, 10, 1, true},
		{"at max", 1, 10, 10, true},
		{"below min", 1, 10, 0, false},
		{"above max", 1, 10, 11, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StockInBounds(tt.min, tt.max, tt.stock); got != tt.want {
				t.Fatalf("StockInBounds(%d, %d, %d) = %v, want %v", tt.min, tt.max, tt.stock, got, tt.want)
			}
		})
	}
}

func TestProductDeletable(t *testing.T) {
	prod := models.NewProduct(10000, "Road Bike", 999.99, 3, 1, 5)
	if !ProductDeletable(prod) {
		t.Fatal("product without parts must be deletable")
	}

	prod.AddAssociatedPart(models.NewInHousePart(1, "Saddle Bags", 85, 5, 1, 10, 75))
	if ProductDeletable(prod) {
		t.Fatal("product with parts must not be deletable")
	}

	if ProductDeletable(nil) {
		t.Fatal("nil product must not be deletable")
	}
}

func TestValidatePart(t *testing.T) {
	tests := []struct {
		name     string
		part     *models.Part
		wantKind domain.ErrorKind
		wantErr  bool
	}{
		{"valid in-house", models.NewInHousePart(1, "Saddle Bags", 85, 5, 1, 10, 75), 0, false},
		{"valid outsourced", models.NewOutsourcedPart(1, "Chain", 12, 3, 1, 5, "Acme"), 0, false},
		{"nil part", nil, domain.KindNoSelection, true},
		{"empty name", models.NewInHousePart(1, "", 85, 5, 1, 10, 75), domain.KindEmptyName, true},
		{"min greater than max", models.NewInHousePart(1, "Bolt", 1, 3, 5, 2, 1), domain.KindInvalidRange, true},
		{"stock above max", models.NewInHousePart(1, "Bolt", 1, 11, 1, 10, 1), domain.KindStockOutOfBounds, true},
		{"negative price", models.NewInHousePart(1, "Bolt", -1, 5, 1, 10, 1), domain.KindInvalidPrice, true},
		{"empty company", models.NewOutsourcedPart(1, "Chain", 12, 3, 1, 5, " "), domain.KindEmptyName, true},
		{"unknown source", &models.Part{Name: "Bolt", Stock: 1, Min: 1, Max: 1}, domain.KindUnknownSource, true},
		{"name checked before range", models.NewInHousePart(1, "", 1, 3, 5, 2, 1), domain.KindEmptyName, true},
		{"range checked before stock", models.NewInHousePart(1, "Bolt", 1, 99, 5, 2, 1), domain.KindInvalidRange, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePart(tt.part)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidatePart() error = %v, wantErr = %v", err, tt.wantErr)
			}
			if tt.wantErr && domain.KindOf(err) != tt.wantKind {
				t.Fatalf("ValidatePart() kind = %v, want %v", domain.KindOf(err), tt.wantKind)
			}
		})
	}
}

func TestValidateProduct(t *testing.T) {
	if err := ValidateProduct(models.NewProduct(10000, "Road Bike", 999.99, 3, 1, 5)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err := ValidateProduct(models.NewProduct(10000, "Road Bike", 999.99, 6, 1, 5))
	if !errors.Is(err, domain.ErrStockOutOfBounds) {
		t.Fatalf("expected ErrStockOutOfBounds, got %v", err)
	}
}

func TestParseQuantity(t *testing.T) {
	tests := []struct {
		raw     string
		want    int
		wantErr bool
	}{
		{"5", 5, false},
		{" 42 ", 42, false},
		{"-3", -3, false},
		{"abc", 0, true},
		{"", 0, true},
		{"1.5", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseQuantity("stock", tt.raw)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseQuantity(%q) error = %v, wantErr = %v", tt.raw, err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, domain.ErrNotANumber) {
				t.Fatalf("expected ErrNotANumber, got %v", err)
			}
			if got != tt.want {
				t.Fatalf("ParseQuantity(%q) = %d, want %d", tt.raw, got, tt.want)
			}
		})
	}
}

func TestParsePrice(t *testing.T) {
	tests := []struct {
		raw     string
		want    float64
		wantErr bool
	}{
		{"85.0", 85, false},
		{"999.99", 999.99, false},
		{"0", 0, false},
		{"NaN", 0, true},
		{"Inf", 0, true},
		{"ten", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParsePrice("price", tt.raw)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParsePrice(%q) error = %v, wantErr = %v", tt.raw, err, tt.wantErr)
			}
			if got != tt.want {
				t.Fatalf("ParsePrice(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestBuildPart(t *testing.T) {
	valid := PartForm{
		Source:    models.SourceInHouse,
		Name:      "Saddle Bags",
		Price:     "85.0",
		Stock:     "5",
		Min:       "1",
		Max:       "10",
		MachineID: "75",
	}

	t.Run("valid in-house form", func(t *testing.T) {
		part, err := BuildPart(7, valid)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := models.NewInHousePart(7, "Saddle Bags", 85, 5, 1, 10, 75)
		if *part != *want {
			t.Fatalf("BuildPart() = %+v, want %+v", part, want)
		}
	})

	t.Run("valid outsourced form", func(t *testing.T) {
		form := valid
		form.Source = models.SourceOutsourced
		form.MachineID = ""
		form.CompanyName = "Acme"
		part, err := BuildPart(8, form)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if part.CompanyName != "Acme" || !part.IsOutsourced() {
			t.Fatalf("unexpected part: %+v", part)
		}
	})

	tests := []struct {
		name      string
		mutate    func(*PartForm)
		wantKind  domain.ErrorKind
		wantField string
	}{
		{"stock not a number", func(f *PartForm) { f.Stock = "abc" }, domain.KindNotANumber, "stock"},
		{"machine id not a number", func(f *PartForm) { f.MachineID = "x" }, domain.KindNotANumber, "machine_id"},
		{"price not a number", func(f *PartForm) { f.Price = "$5" }, domain.KindNotANumber, "price"},
		{"parse failure wins over empty name", func(f *PartForm) { f.Name = ""; f.Min = "?" }, domain.KindNotANumber, "min"},
		{"empty name", func(f *PartForm) { f.Name = "" }, domain.KindEmptyName, "name"},
		{"min greater than max", func(f *PartForm) { f.Min = "5"; f.Max = "2"; f.Stock = "3" }, domain.KindInvalidRange, "min"},
		{"stock out of bounds", func(f *PartForm) { f.Stock = "11" }, domain.KindStockOutOfBounds, "stock"},
		{"unknown source", func(f *PartForm) { f.Source = 0 }, domain.KindUnknownSource, "source"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := valid
			tt.mutate(&form)
			part, err := BuildPart(1, form)
			if err == nil {
				t.Fatalf("expected error, got part %+v", part)
			}
			if domain.KindOf(err) != tt.wantKind {
				t.Fatalf("kind = %v, want %v", domain.KindOf(err), tt.wantKind)
			}
			if domain.FieldOf(err) != tt.wantField {
				t.Fatalf("field = %q, want %q", domain.FieldOf(err), tt.wantField)
			}
		})
	}
}

func TestBuildProduct(t *testing.T) {
	form := ProductForm{Name: " Road Bike ", Price: "999.99", Stock: "3", Min: "1", Max: "5"}

	prod, err := BuildProduct(10000, form)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if prod.Name != "Road Bike" || prod.Price != 999.99 || prod.Stock != 3 {
		t.Fatalf("unexpected product: %+v", prod)
	}

	form.Max = "five"
	if _, err := BuildProduct(10000, form); !errors.Is(err, domain.ErrNotANumber) {
		t.Fatalf("expected ErrNotANumber, got %v", err)
	}
}

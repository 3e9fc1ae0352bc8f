package reservation

import (
	"time"

	"event-reservation/internal/pkg/patch"

	"github.com/google/uuid"
)

const DefaultFurnitureType = "Default"

type CustomizationInput struct {
	TableType *string
	ChairType *string
	Foods     []FoodItem
	Notes     *string
}

func (in CustomizationInput) isEmpty() bool {
	return in.TableType == nil && in.ChairType == nil && len(in.Foods) == 0
}

type PackageCustomization struct {
	id        uuid.UUID
	tableType string
	chairType string
	foods     []FoodItem
	notes     *string
	createdAt time.Time
	updatedAt time.Time
}

// newPackageCustomization returns nil when no table, chair or food was selected.
func newPackageCustomization(in CustomizationInput) *PackageCustomization {
	if in.isEmpty() {
		return nil
	}
	return &PackageCustomization{
		id:        uuid.New(),
		tableType: patch.Coalesce(in.TableType, DefaultFurnitureType),
		chairType: patch.Coalesce(in.ChairType, DefaultFurnitureType),
		foods:     in.Foods,
		notes:     in.Notes,
	}
}

func ReconstructPackageCustomization(
	id uuid.UUID,
	tableType, chairType string,
	foods []FoodItem,
	notes *string,
	createdAt, updatedAt time.Time,
) *PackageCustomization {
	return &PackageCustomization{
		id:        id,
		tableType: tableType,
		chairType: chairType,
		foods:     foods,
		notes:     notes,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (p *PackageCustomization) ID() uuid.UUID        { return p.id }
func (p *PackageCustomization) TableType() string    { return p.tableType }
func (p *PackageCustomization) ChairType() string    { return p.chairType }
func (p *PackageCustomization) Foods() []FoodItem    { return p.foods }
func (p *PackageCustomization) Notes() *string       { return p.notes }
func (p *PackageCustomization) CreatedAt() time.Time { return p.createdAt }
func (p *PackageCustomization) UpdatedAt() time.Time { return p.updatedAt }

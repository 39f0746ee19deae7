package client

import (
	"time"

	"github.com/agency/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// PackagePreset identifies a named publication package template
type PackagePreset string

const (
	PackagePresetBasico   PackagePreset = "basico"
	PackagePresetAvanzado PackagePreset = "avanzado"
	PackagePresetPremium  PackagePreset = "premium"
	PackagePresetCustom   PackagePreset = "personalizado"
)

// presetTotals maps named presets to their publication capacity
var presetTotals = map[PackagePreset]int{
	PackagePresetBasico:   8,
	PackagePresetAvanzado: 12,
	PackagePresetPremium:  16,
}

// PresetTotal returns the publication capacity for a named preset
func PresetTotal(preset PackagePreset) (int, bool) {
	total, ok := presetTotals[preset]
	return total, ok
}

// Package is a publication package owned by a client. Packages have no
// existence outside their client; they are loaded and saved as part of the
// Client aggregate and ordered by Position (insertion order).
type Package struct {
	ID                uuid.UUID `json:"id"`
	Name              string    `json:"name"`
	TotalPublications int       `json:"total_publications"`
	UsedPublications  int       `json:"used_publications"`
	Month             string    `json:"month"`
	Paid              bool      `json:"paid"`
	Position          int       `json:"position"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// NewPackage creates a package with the given name and capacity
func NewPackage(name string, totalPublications int) (*Package, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_PACKAGE_NAME", "Package name cannot be empty")
	}
	if totalPublications < 0 {
		return nil, shared.NewDomainError("INVALID_PACKAGE_TOTAL", "Package capacity cannot be negative")
	}

	now := time.Now()
	return &Package{
		ID:                uuid.New(),
		Name:              name,
		TotalPublications: totalPublications,
		CreatedAt:         now,
		UpdatedAt:         now,
	}, nil
}

// NewPackageFromPreset creates a package from a named preset
func NewPackageFromPreset(preset PackagePreset, month string) (*Package, error) {
	total, ok := PresetTotal(preset)
	if !ok {
		return nil, shared.NewDomainError("INVALID_PACKAGE_PRESET", "Unknown package preset")
	}
	pkg, err := NewPackage(string(preset), total)
	if err != nil {
		return nil, err
	}
	pkg.Month = month
	return pkg, nil
}

// clamp bounds v into [0, max]
func clamp(v, max int) int {
	if v < 0 {
		return 0
	}
	if v > max {
		return max
	}
	return v
}

// Increment consumes one publication. The counter saturates at the capacity,
// so rapid repeated calls or out-of-order replies never push it out of range.
// It returns true only on the transition that fills the package; saving again
// at the ceiling does not re-report completion.
func (p *Package) Increment() (completed bool) {
	before := p.UsedPublications
	p.UsedPublications = clamp(p.UsedPublications+1, p.TotalPublications)
	p.UpdatedAt = time.Now()
	return before < p.TotalPublications && p.UsedPublications == p.TotalPublications
}

// Decrement returns one publication to the package, saturating at zero
func (p *Package) Decrement() {
	p.UsedPublications = clamp(p.UsedPublications-1, p.TotalPublications)
	p.UpdatedAt = time.Now()
}

// SetUsed sets the used count, clamped into [0, total]. Idempotent: applying
// the same value twice yields the same result as once.
func (p *Package) SetUsed(used int) {
	p.UsedPublications = clamp(used, p.TotalPublications)
	p.UpdatedAt = time.Now()
}

// IsCompleted reports whether every publication in the package is used
func (p *Package) IsCompleted() bool {
	return p.TotalPublications > 0 && p.UsedPublications >= p.TotalPublications
}

// Remaining returns the number of unused publications
func (p *Package) Remaining() int {
	return p.TotalPublications - p.UsedPublications
}

// TogglePaid flips the paid flag
func (p *Package) TogglePaid() {
	p.Paid = !p.Paid
	p.UpdatedAt = time.Now()
}

// Apply merges a patch into the package, touching only the fields present.
// The used counter is re-clamped against the (possibly new) capacity.
func (p *Package) Apply(patch PackagePatch) error {
	if patch.Name != nil {
		if *patch.Name == "" {
			return shared.NewDomainError("INVALID_PACKAGE_NAME", "Package name cannot be empty")
		}
		p.Name = *patch.Name
	}
	if patch.TotalPublications != nil {
		if *patch.TotalPublications < 0 {
			return shared.NewDomainError("INVALID_PACKAGE_TOTAL", "Package capacity cannot be negative")
		}
		p.TotalPublications = *patch.TotalPublications
	}
	if patch.UsedPublications != nil {
		p.UsedPublications = *patch.UsedPublications
	}
	if patch.Month != nil {
		p.Month = *patch.Month
	}
	if patch.Paid != nil {
		p.Paid = *patch.Paid
	}

	p.UsedPublications = clamp(p.UsedPublications, p.TotalPublications)
	p.UpdatedAt = time.Now()
	return nil
}

package entity

import "github.com/jhoicas/bikeshop-api/internal/domain"

// BikeBuilder acumula los atributos de una bicicleta antes de construirla.
// Los setters devuelven el mismo builder para poder encadenarlos.
type BikeBuilder struct {
	bikeType BikeType
	color    string
}

// NewBikeBuilder devuelve un builder vacío.
func NewBikeBuilder() *BikeBuilder {
	return &BikeBuilder{}
}

// WithType fija el tipo. No valida que pertenezca al catálogo; eso lo hace el almacenamiento.
func (b *BikeBuilder) WithType(t BikeType) *BikeBuilder {
	b.bikeType = t
	return b
}

// WithColor fija el color.
func (b *BikeBuilder) WithColor(color string) *BikeBuilder {
	b.color = color
	return b
}

// Build devuelve una Bike nueva (sin ID, aún no persistida) o
// domain.ErrMissingBikeFields si falta el tipo o el color.
func (b *BikeBuilder) Build() (*Bike, error) {
	if b.bikeType == "" || b.color == "" {
		return nil, domain.ErrMissingBikeFields
	}
	return &Bike{Type: b.bikeType, Color: b.color}, nil
}

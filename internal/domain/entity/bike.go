package entity

import "time"

// BikeType tipo de bicicleta del catálogo.
type BikeType string

// Tipos aceptados por el almacenamiento (ver validador de colección / CHECK).
const (
	BikeTypeStandard BikeType = "standard"
	BikeTypeElectric BikeType = "electric"
)

// Valid indica si t es uno de los tipos aceptados.
func (t BikeType) Valid() bool {
	return t == BikeTypeStandard || t == BikeTypeElectric
}

// Bike representa una entrada del catálogo. Se construye con BikeBuilder.
type Bike struct {
	ID        string
	Type      BikeType
	Color     string
	CreatedAt time.Time
}

package domain

// ServiceCategory is a grouping tag used for catalog display
type ServiceCategory string

const (
	CategoryRelaxation ServiceCategory = "relaxation"
	CategoryThai       ServiceCategory = "thai"
	CategorySpecialty  ServiceCategory = "specialty"
)

// Service represents an offerable massage service.
// Services are seeded once at startup and immutable afterwards.
type Service struct {
	ID              string
	Name            string
	Description     string
	DurationMinutes int
	Price           float64
	Image           string
	Category        ServiceCategory
}

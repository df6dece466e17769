package domain

// CatalogService is a service offered by a shop, as returned by the
// shop backend's catalog.
type CatalogService struct {
	ID              int64
	Name            string
	DurationMinutes int
	Price           float64
}

// ServiceLine is one service entry inside an appointment or an edit
// session: a catalog service with a chosen quantity.
type ServiceLine struct {
	ServiceID       int64
	Name            string
	DurationMinutes int
	Quantity        int
}

// TotalMinutes returns the line's contribution to the appointment
// duration. Non-positive duration or quantity contributes nothing.
func (l ServiceLine) TotalMinutes() int {
	if l.DurationMinutes <= 0 || l.Quantity <= 0 {
		return 0
	}
	return l.DurationMinutes * l.Quantity
}

// CloneServiceLines returns an independent copy of a service list.
func CloneServiceLines(lines []ServiceLine) []ServiceLine {
	if lines == nil {
		return nil
	}
	out := make([]ServiceLine, len(lines))
	copy(out, lines)
	return out
}

package update_hall

// UpdateHallRequest HTTP request model.
// isActive=false деактивирует зал вместо удаления.
type UpdateHallRequest struct {
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	Capacity    int      `json:"capacity"`
	Description string   `json:"description"`
	Facilities  []string `json:"facilities"`
	IsActive    bool     `json:"isActive"`
}

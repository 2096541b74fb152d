package create_hall

// CreateHallRequest HTTP request model
type CreateHallRequest struct {
	Name        string   `json:"name"`
	Type        string   `json:"type"` // "conference" | "mini"
	Capacity    int      `json:"capacity"`
	Description string   `json:"description"`
	Facilities  []string `json:"facilities"`
}

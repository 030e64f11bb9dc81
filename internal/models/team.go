package models

// Team represents an NFL franchise
type Team struct {
	ID           string `json:"id" validate:"required"`
	Name         string `json:"name" validate:"required"`
	City         string `json:"city"`
	Abbreviation string `json:"abbreviation" validate:"required,max=4"`
}

// FullName returns the city and nickname, e.g. "Kansas City Chiefs"
func (t Team) FullName() string {
	if t.City == "" {
		return t.Name
	}
	return t.City + " " + t.Name
}

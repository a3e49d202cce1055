package catalog

import "strings"

// Career is a named occupation record with descriptive and skill metadata.
// Records are immutable once loaded and read-shared by all requests.
type Career struct {
	Name           string              `json:"name"`
	Category       string              `json:"category"`
	Description    string              `json:"description"`
	Skills         []string            `json:"skills"`
	DegreeRequired string              `json:"degree_required"`
	GrowthRate     string              `json:"growth_rate"`
	AvgSalary      string              `json:"avg_salary"`
	Subjects       map[string][]string `json:"subjects,omitempty"`
}

// Filter narrows a career listing. Category is an exact match; Search is a
// case-insensitive substring match against name and description.
type Filter struct {
	Category string
	Search   string
}

func (f Filter) matches(c *Career) bool {
	if f.Category != "" && c.Category != f.Category {
		return false
	}

	if search := strings.ToLower(strings.TrimSpace(f.Search)); search != "" {
		name := strings.ToLower(c.Name)
		desc := strings.ToLower(c.Description)
		if !strings.Contains(name, search) && !strings.Contains(desc, search) {
			return false
		}
	}

	return true
}

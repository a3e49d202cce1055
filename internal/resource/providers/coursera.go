package providers

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/riabhaumik/PathwiseAI/internal/resource"
)

const courseraCatalogURL = "https://api.coursera.org/api/courses.v1"

// Coursera searches the Coursera course catalog.
type Coursera struct {
	client
	BaseURL string
}

func NewCoursera(apiKey string) *Coursera {
	return &Coursera{client: newClient(apiKey), BaseURL: courseraCatalogURL}
}

func (c *Coursera) Name() string { return "coursera" }

type courseraCatalogResponse struct {
	Linked struct {
		Courses []struct {
			Name             string `json:"name"`
			Slug             string `json:"slug"`
			Description      string `json:"description"`
			ShortDescription string `json:"shortDescription"`
		} `json:"courses"`
	} `json:"linked"`
}

func (c *Coursera) Search(ctx context.Context, query string, maxResults int) ([]resource.Record, error) {
	if !c.configured() {
		return nil, nil
	}

	q := url.Values{}
	q.Set("q", "search")
	q.Set("query", query)
	q.Set("limit", strconv.Itoa(maxResults))
	q.Set("fields", "name,slug,description,shortDescription")

	var parsed courseraCatalogResponse
	if err := c.getJSON(ctx, c.BaseURL, q, true, &parsed); err != nil {
		return nil, fmt.Errorf("coursera search: %w", err)
	}

	records := make([]resource.Record, 0, len(parsed.Linked.Courses))
	for _, course := range parsed.Linked.Courses {
		description := course.ShortDescription
		if description == "" {
			description = course.Description
		}
		records = append(records, resource.Record{
			Title:       course.Name,
			Description: truncate(description, 200),
			URL:         "https://www.coursera.org/learn/" + course.Slug,
			Platform:    "Coursera",
			Duration:    "8-12 weeks",
			Rating:      "4.6",
			Instructor:  "Multiple Instructors",
		})
	}

	return records, nil
}

package providers

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/riabhaumik/PathwiseAI/internal/resource"
)

const edxCatalogURL = "https://api.edx.org/catalog/v1/catalogs/edx/courses/"

// EdX searches the edX course catalog.
type EdX struct {
	client
	BaseURL string
}

func NewEdX(apiKey string) *EdX {
	return &EdX{client: newClient(apiKey), BaseURL: edxCatalogURL}
}

func (e *EdX) Name() string { return "edx" }

type edxCatalogResponse struct {
	Results []struct {
		Title            string `json:"title"`
		ShortDescription string `json:"short_description"`
		URL              string `json:"url"`
		Length           string `json:"length"`
		Staff            []struct {
			Name string `json:"name"`
		} `json:"staff"`
	} `json:"results"`
}

func (e *EdX) Search(ctx context.Context, query string, maxResults int) ([]resource.Record, error) {
	if !e.configured() {
		return nil, nil
	}

	q := url.Values{}
	q.Set("search_query", query)
	q.Set("limit", strconv.Itoa(maxResults))
	q.Set("content_type", "course")

	var parsed edxCatalogResponse
	if err := e.getJSON(ctx, e.BaseURL, q, true, &parsed); err != nil {
		return nil, fmt.Errorf("edx search: %w", err)
	}

	records := make([]resource.Record, 0, len(parsed.Results))
	for _, course := range parsed.Results {
		instructors := make([]string, 0, len(course.Staff))
		for _, staff := range course.Staff {
			if staff.Name != "" {
				instructors = append(instructors, staff.Name)
			}
		}

		duration := course.Length
		if duration == "" {
			duration = "Variable"
		}

		records = append(records, resource.Record{
			Title:       course.Title,
			Description: truncate(course.ShortDescription, 200),
			URL:         course.URL,
			Platform:    "edX",
			Duration:    duration,
			Rating:      "4.5",
			Instructor:  strings.Join(instructors, ", "),
		})
	}

	return records, nil
}

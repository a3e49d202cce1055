package providers

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/riabhaumik/PathwiseAI/internal/resource"
)

const khanTopicURL = "https://www.khanacademy.org/api/v1/topic"

// KhanAcademy searches Khan Academy topics.
type KhanAcademy struct {
	client
	BaseURL string
}

func NewKhanAcademy(apiKey string) *KhanAcademy {
	return &KhanAcademy{client: newClient(apiKey), BaseURL: khanTopicURL}
}

func (k *KhanAcademy) Name() string { return "khan_academy" }

type khanTopicResponse struct {
	Topics []struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		URL         string `json:"url"`
	} `json:"topics"`
}

func (k *KhanAcademy) Search(ctx context.Context, query string, maxResults int) ([]resource.Record, error) {
	if !k.configured() {
		return nil, nil
	}

	q := url.Values{}
	q.Set("query", query)
	q.Set("limit", strconv.Itoa(maxResults))

	var parsed khanTopicResponse
	if err := k.getJSON(ctx, k.BaseURL, q, false, &parsed); err != nil {
		return nil, fmt.Errorf("khan academy search: %w", err)
	}

	records := make([]resource.Record, 0, len(parsed.Topics))
	for _, topic := range parsed.Topics {
		records = append(records, resource.Record{
			Title:       topic.Title,
			Description: truncate(topic.Description, 200),
			URL:         "https://www.khanacademy.org" + topic.URL,
			Platform:    "Khan Academy",
			Duration:    "Variable",
			Rating:      "4.8",
			Instructor:  "Khan Academy",
		})
	}

	return records, nil
}

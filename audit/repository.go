// audit/repository.go
package audit

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
)

type Repository interface {
	LogEvent(ctx context.Context, log AuditLog) error
	QueryLogs(ctx context.Context, q Query) ([]AuditLog, error)
}

type ElasticsearchRepository struct {
	esClient *elasticsearch.Client
	index    string
}

// NewElasticsearchRepository creates a new repository with a given Elasticsearch client URL.
func NewElasticsearchRepository(esURL, index string) (*ElasticsearchRepository, error) {
	cfg := elasticsearch.Config{
		Addresses: []string{esURL},
	}
	esClient, err := elasticsearch.NewClient(cfg)
	if err != nil {
		return nil, err
	}
	return &ElasticsearchRepository{esClient: esClient, index: index}, nil
}

// LogEvent indexes the event under its own id, so a redelivered event
// overwrites rather than duplicates.
func (r *ElasticsearchRepository) LogEvent(ctx context.Context, log AuditLog) error {
	data, err := json.Marshal(log)
	if err != nil {
		return err
	}

	req := esapi.IndexRequest{
		Index:      r.index,
		DocumentID: log.EventID,
		Body:       bytes.NewReader(data),
	}

	res, err := req.Do(ctx, r.esClient)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("error indexing document: %s", res.String())
	}

	return nil
}

type searchResponse struct {
	Hits struct {
		Hits []struct {
			Source AuditLog `json:"_source"`
		} `json:"hits"`
	} `json:"hits"`
}

// QueryLogs searches for audit logs within a time frame, newest first.
func (r *ElasticsearchRepository) QueryLogs(ctx context.Context, q Query) ([]AuditLog, error) {
	body, err := json.Marshal(buildQuery(q))
	if err != nil {
		return nil, err
	}

	res, err := r.esClient.Search(
		r.esClient.Search.WithContext(ctx),
		r.esClient.Search.WithIndex(r.index),
		r.esClient.Search.WithBody(bytes.NewReader(body)),
	)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, fmt.Errorf("error searching documents: %s", res.String())
	}

	var parsed searchResponse
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	logs := make([]AuditLog, len(parsed.Hits.Hits))
	for i, hit := range parsed.Hits.Hits {
		logs[i] = hit.Source
	}
	return logs, nil
}

func buildQuery(q Query) map[string]any {
	must := []any{
		map[string]any{
			"range": map[string]any{
				"timestamp": map[string]any{
					"gte": q.From.Format(time.RFC3339),
					"lte": q.To.Format(time.RFC3339),
				},
			},
		},
	}
	for field, value := range map[string]string{
		"event_type": q.EventType,
		"library_id": q.LibraryID,
		"user_id":    q.UserID,
	} {
		if value != "" {
			must = append(must, map[string]any{"term": map[string]any{field: value}})
		}
	}
	return map[string]any{
		"query": map[string]any{"bool": map[string]any{"must": must}},
		"sort":  []any{map[string]any{"timestamp": "desc"}},
	}
}

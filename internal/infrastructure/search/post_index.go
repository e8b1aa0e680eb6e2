// Package search maintains the Elasticsearch index used for full-text post
// search. Indexing is best-effort: Postgres stays the source of truth and the
// services log but do not fail when the index is unavailable.
package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"

	"github.com/zigac9/ElectricalCarBlog-backend/internal/domain/entity"
)

type postDoc struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	CarName      string `json:"car_name"`
	MainCategory string `json:"main_category"`
	UserID       string `json:"user_id"`
	IsPublic     bool   `json:"is_public"`
}

type PostIndex struct {
	es    *elasticsearch.Client
	index string
}

func NewPostIndex(es *elasticsearch.Client, index string) *PostIndex {
	return &PostIndex{es: es, index: index}
}

func (p *PostIndex) Index(ctx context.Context, post *entity.Post) error {
	doc := postDoc{
		Title:        post.Title,
		Description:  post.Description,
		CarName:      post.CarName,
		MainCategory: post.MainCategory,
		UserID:       post.UserID,
		IsPublic:     post.IsPublic,
	}
	body, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	req := esapi.IndexRequest{
		Index:      p.index,
		DocumentID: post.ID,
		Body:       bytes.NewReader(body),
		Refresh:    "false",
	}
	res, err := req.Do(ctx, p.es)
	if err != nil {
		return err
	}
	defer res.Body.Close()
	if res.IsError() {
		return fmt.Errorf("index post %s: %s", post.ID, res.Status())
	}
	return nil
}

func (p *PostIndex) Delete(ctx context.Context, id string) error {
	req := esapi.DeleteRequest{Index: p.index, DocumentID: id}
	res, err := req.Do(ctx, p.es)
	if err != nil {
		return err
	}
	defer res.Body.Close()
	if res.IsError() && res.StatusCode != 404 {
		return fmt.Errorf("delete post %s from index: %s", id, res.Status())
	}
	return nil
}

// Search runs a multi-field match over public posts and returns matching post ids.
func (p *PostIndex) Search(ctx context.Context, query string) ([]string, error) {
	var buf bytes.Buffer
	body := map[string]any{
		"query": map[string]any{
			"bool": map[string]any{
				"must": map[string]any{
					"multi_match": map[string]any{
						"query":     query,
						"fields":    []string{"title^2", "description", "car_name", "main_category"},
						"fuzziness": "AUTO",
					},
				},
				"filter": map[string]any{
					"term": map[string]any{"is_public": true},
				},
			},
		},
		"_source": false,
		"size":    50,
	}
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		return nil, err
	}

	res, err := p.es.Search(
		p.es.Search.WithContext(ctx),
		p.es.Search.WithIndex(p.index),
		p.es.Search.WithBody(&buf),
	)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.IsError() {
		return nil, fmt.Errorf("search posts: %s", res.Status())
	}

	var parsed struct {
		Hits struct {
			Hits []struct {
				ID string `json:"_id"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		ids = append(ids, h.ID)
	}
	return ids, nil
}

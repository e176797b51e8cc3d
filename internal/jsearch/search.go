package jsearch

import (
	"fmt"
	"net/url"
	"reflect"

	"github.com/mitchellh/mapstructure"
)

const (
	SearchPath = "/search"
)

type SearchParams struct {
	Query      string `qparam:"query" yaml:"query"`
	NumPages   string `qparam:"num_pages" yaml:"num_pages" mapstructure:"num_pages"`
	Location   string `qparam:"location" yaml:"location"`
	Experience string `qparam:"experience" yaml:"experience"`
}

func (c *Client) search(params *SearchParams) (*Postings, error) {
	var postings []*Posting

	if params.NumPages == "" {
		params.NumPages = defaultNumPages
	}

	q := buildParams(params)
	apiURLSearch := fmt.Sprintf("%s%s", c.APIURL, SearchPath)

	items, err := c.GetItems(apiURLSearch, q)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}

	cfg := &mapstructure.DecoderConfig{
		Metadata: nil,
		Result:   &postings,
		TagName:  "json",
	}
	decoder, _ := mapstructure.NewDecoder(cfg)
	decoder.Decode(items)

	return &Postings{
		Items: postings,
	}, nil
}

// buildParams turns SearchParams into url.Values using the qparam tag.
func buildParams(params *SearchParams) url.Values {
	q := url.Values{}
	fields := reflect.VisibleFields(reflect.TypeOf(*params))
	for _, field := range fields {
		key := field.Tag.Get("qparam")
		if key == "" {
			key = field.Tag.Get("yaml")
		}

		value := fmt.Sprintf("%v", reflect.ValueOf(params).Elem().Field(field.Index[0]).Interface())
		if value != "" {
			q.Set(key, value)
		}
	}

	return q
}

package naver

import (
	"encoding/json"
	"strconv"
)

// LocalResponse is the local search payload. Items is nil when the provider
// omitted it.
type LocalResponse struct {
	Total int         `json:"total"`
	Items []LocalItem `json:"items"`
}

// LocalItem is one local search hit. Every field is optional and may carry
// HTML markup; fields that arrive as numbers are kept in their text form.
type LocalItem struct {
	Title       string
	Link        string
	Category    string
	Description string
	Telephone   string
	Address     string
	RoadAddress string
	MapX        string
	MapY        string
}

func (i *LocalItem) UnmarshalJSON(b []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	*i = LocalItem{
		Title:       text(raw["title"]),
		Link:        text(raw["link"]),
		Category:    text(raw["category"]),
		Description: text(raw["description"]),
		Telephone:   text(raw["telephone"]),
		Address:     text(raw["address"]),
		RoadAddress: text(raw["roadAddress"]),
		MapX:        text(raw["mapx"]),
		MapY:        text(raw["mapy"]),
	}
	return nil
}

type BlogResponse struct {
	Total int        `json:"total"`
	Items []BlogItem `json:"items"`
}

// BlogItem is one blog post. PostDate is YYYYMMDD.
type BlogItem struct {
	Title       string
	Link        string
	Description string
	BloggerName string
	BloggerLink string
	PostDate    string
}

func (i *BlogItem) UnmarshalJSON(b []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	*i = BlogItem{
		Title:       text(raw["title"]),
		Link:        text(raw["link"]),
		Description: text(raw["description"]),
		BloggerName: text(raw["bloggername"]),
		BloggerLink: text(raw["bloggerlink"]),
		PostDate:    text(raw["postdate"]),
	}
	return nil
}

func text(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return ""
	}
}

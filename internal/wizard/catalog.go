package wizard

import (
	"weddy/internal/models/db_models"
	"weddy/internal/models/response_models"
)

// Option is one answer a facet offers. Keyword is what the option contributes
// to the provider query.
type Option struct {
	Value   string
	Label   string
	Keyword string
}

type Facet struct {
	Key     string
	Label   string
	Options []Option
}

func (f Facet) option(value string) (Option, bool) {
	for _, o := range f.Options {
		if o.Value == value {
			return o, true
		}
	}
	return Option{}, false
}

var priceFacet = Facet{
	Key:   "price",
	Label: "가격대",
	Options: []Option{
		{Value: "저가", Label: "합리적인 가격", Keyword: "가성비"},
		{Value: "중가", Label: "적당한 가격", Keyword: ""},
		{Value: "고가", Label: "프리미엄", Keyword: "프리미엄"},
	},
}

var catalog = map[db_models.Category][]Facet{
	db_models.CategoryHall: {
		{
			Key:   "hall_type",
			Label: "예식장 유형",
			Options: []Option{
				{Value: "호텔", Label: "호텔 웨딩", Keyword: "호텔"},
				{Value: "컨벤션", Label: "컨벤션", Keyword: "컨벤션"},
				{Value: "하우스", Label: "하우스 웨딩", Keyword: "하우스웨딩"},
				{Value: "채플", Label: "채플", Keyword: "채플"},
			},
		},
		{
			Key:   "size",
			Label: "하객 규모",
			Options: []Option{
				{Value: "스몰", Label: "100명 이하", Keyword: "스몰웨딩"},
				{Value: "중형", Label: "100~300명", Keyword: ""},
				{Value: "대형", Label: "300명 이상", Keyword: "대형"},
			},
		},
		priceFacet,
	},
	db_models.CategoryStudio: {
		{
			Key:   "style",
			Label: "촬영 스타일",
			Options: []Option{
				{Value: "인물중심", Label: "인물 중심", Keyword: "인물중심"},
				{Value: "배경중심", Label: "배경 중심", Keyword: "배경"},
				{Value: "자연광", Label: "자연광", Keyword: "자연광"},
			},
		},
		priceFacet,
	},
	db_models.CategoryDress: {
		priceFacet,
		{
			Key:   "silhouette",
			Label: "실루엣",
			Options: []Option{
				{Value: "머메이드", Label: "머메이드", Keyword: "머메이드"},
				{Value: "A라인", Label: "A라인", Keyword: "A라인"},
				{Value: "벨라인", Label: "벨라인", Keyword: "벨라인"},
				{Value: "엠파이어", Label: "엠파이어", Keyword: "엠파이어"},
			},
		},
	},
	db_models.CategoryMakeup: {
		{
			Key:   "style",
			Label: "메이크업 스타일",
			Options: []Option{
				{Value: "내추럴", Label: "내추럴", Keyword: "내추럴"},
				{Value: "화사한", Label: "화사한", Keyword: "화사한"},
				{Value: "음영", Label: "음영", Keyword: "음영"},
			},
		},
		priceFacet,
	},
	db_models.CategoryHanbok: {
		{
			Key:   "service",
			Label: "이용 방식",
			Options: []Option{
				{Value: "대여", Label: "대여", Keyword: ""},
				{Value: "맞춤", Label: "맞춤 제작", Keyword: "맞춤"},
			},
		},
	},
	db_models.CategorySnap: {
		{
			Key:   "media",
			Label: "촬영 구성",
			Options: []Option{
				{Value: "스냅", Label: "사진만", Keyword: ""},
				{Value: "스냅DVD", Label: "사진 + 영상", Keyword: "DVD"},
			},
		},
		priceFacet,
	},
	db_models.CategoryJewelry: {
		{
			Key:   "item",
			Label: "품목",
			Options: []Option{
				{Value: "반지", Label: "커플링", Keyword: "커플링"},
				{Value: "목걸이", Label: "목걸이", Keyword: "목걸이"},
				{Value: "시계", Label: "예물 시계", Keyword: "시계"},
			},
		},
	},
	db_models.CategoryMeeting: {
		{
			Key:   "cuisine",
			Label: "메뉴",
			Options: []Option{
				{Value: "한식", Label: "한정식", Keyword: "한정식"},
				{Value: "중식", Label: "중식", Keyword: "중식"},
				{Value: "일식", Label: "일식", Keyword: "일식"},
				{Value: "양식", Label: "양식", Keyword: "양식"},
			},
		},
		{
			Key:   "room",
			Label: "좌석",
			Options: []Option{
				{Value: "룸", Label: "프라이빗 룸", Keyword: "룸"},
				{Value: "홀", Label: "홀", Keyword: ""},
			},
		},
	},
	// Photo spots are searched by region alone.
	db_models.CategoryPhotoSpot: {},
}

// Facets returns the ordered facets of a category.
func Facets(category db_models.Category) ([]Facet, bool) {
	facets, ok := catalog[category]
	return facets, ok
}

// QueryTerms returns the provider keywords contributed by the answered facets,
// in facet order. Unknown keys and values are ignored.
func QueryTerms(category db_models.Category, answers map[string]string) []string {
	var terms []string
	for _, f := range catalog[category] {
		v, ok := answers[f.Key]
		if !ok {
			continue
		}
		if o, ok := f.option(v); ok && o.Keyword != "" {
			terms = append(terms, o.Keyword)
		}
	}
	return terms
}

// Describe lists every category with its facets for the category picker.
func Describe() []response_models.CategoryResponse {
	infos := db_models.Categories()
	out := make([]response_models.CategoryResponse, 0, len(infos))
	for _, info := range infos {
		facets := catalog[info.Category]
		qs := make([]response_models.WizardQuestion, 0, len(facets))
		for _, f := range facets {
			qs = append(qs, facetQuestion(f))
		}
		out = append(out, response_models.CategoryResponse{
			Category: info.Category,
			Label:    info.Label,
			Kind:     info.Kind,
			Facets:   qs,
		})
	}
	return out
}

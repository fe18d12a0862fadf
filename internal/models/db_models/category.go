package db_models

// Category is one of the fixed venue/vendor categories a couple plans for.
type Category string

const (
	CategoryHall      Category = "hall"
	CategoryStudio    Category = "studio"
	CategoryDress     Category = "dress"
	CategoryMakeup    Category = "makeup"
	CategoryHanbok    Category = "hanbok"
	CategorySnap      Category = "snap"
	CategoryJewelry   Category = "jewelry"
	CategoryMeeting   Category = "meeting"
	CategoryPhotoSpot Category = "photo_spot"
)

// SelectionKind separates vendors (one per category per group) from places
// (any number per category).
type SelectionKind string

const (
	KindVendor SelectionKind = "vendor"
	KindPlace  SelectionKind = "place"
)

type CategoryInfo struct {
	Category Category
	Label    string
	Kind     SelectionKind
	// Keyword is appended to every local search query of the category.
	Keyword string
}

var categoryTable = []CategoryInfo{
	{CategoryHall, "웨딩홀", KindVendor, "웨딩홀"},
	{CategoryStudio, "스튜디오", KindVendor, "웨딩스튜디오"},
	{CategoryDress, "드레스", KindVendor, "웨딩드레스"},
	{CategoryMakeup, "메이크업", KindVendor, "웨딩메이크업"},
	{CategoryHanbok, "한복", KindVendor, "한복대여"},
	{CategorySnap, "본식스냅", KindVendor, "본식스냅"},
	{CategoryJewelry, "예물", KindVendor, "예물 웨딩밴드"},
	{CategoryMeeting, "상견례", KindPlace, "상견례 장소"},
	{CategoryPhotoSpot, "야외촬영", KindPlace, "야외촬영 명소"},
}

var categoryIndex = func() map[Category]CategoryInfo {
	m := make(map[Category]CategoryInfo, len(categoryTable))
	for _, c := range categoryTable {
		m[c.Category] = c
	}
	return m
}()

// Categories lists every category in display order.
func Categories() []CategoryInfo {
	out := make([]CategoryInfo, len(categoryTable))
	copy(out, categoryTable)
	return out
}

func LookupCategory(c Category) (CategoryInfo, bool) {
	info, ok := categoryIndex[c]
	return info, ok
}

func (c Category) Valid() bool {
	_, ok := categoryIndex[c]
	return ok
}

func (c Category) Kind() SelectionKind {
	return categoryIndex[c].Kind
}

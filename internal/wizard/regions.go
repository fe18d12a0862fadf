package wizard

// Regions are the suggested answers of the region step. Free text is accepted
// too since the provider handles district names well.
var Regions = []string{
	"서울", "경기", "인천", "부산", "대구", "대전", "광주", "울산", "세종",
	"강원", "충북", "충남", "전북", "전남", "경북", "경남", "제주",
}

const maxRegionRunes = 40

package naver

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapSearchURL(t *testing.T) {
	assert.Equal(t, "https://map.naver.com/p/search/%EB%93%9C%EB%A0%88%EC%8A%A4%20%EA%B0%95%EB%82%A8",
		MapSearchURL("드레스", "", " 강남 "))
}

func TestWebSearchURL(t *testing.T) {
	assert.Equal(t, "https://search.naver.com/search.naver?query=a+b", WebSearchURL("a b"))
}

package model

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	slugInvalid = regexp.MustCompile(`[^\w\s-]`)
	slugSpaces  = regexp.MustCompile(`[\s_]+`)
	slugHyphens = regexp.MustCompile(`-+`)
)

// Slugify は商品名からURL用スラッグを作る。
// 小文字化→記号除去→空白はハイフン
func Slugify(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = slugInvalid.ReplaceAllString(s, "")
	s = slugSpaces.ReplaceAllString(s, "-")
	s = slugHyphens.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// BuildSKU はバリアントのSKUを決定的に作る。
// 大文字、空白なし
func BuildSKU(productID int64, size string, color string) string {
	sku := fmt.Sprintf("%d-%s-%s", productID, size, color)
	sku = strings.ToUpper(sku)
	return strings.ReplaceAll(sku, " ", "")
}

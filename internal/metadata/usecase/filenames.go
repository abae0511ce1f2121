package usecase

import (
	"fmt"
	"strings"

	"image-insights-srv/internal/metadata"
	"image-insights-srv/internal/model"
)

// namedRatios maps reduced width:height ratios to their conventional bucket.
var namedRatios = map[string]string{
	"1:1":  "square",
	"4:5":  "portrait",
	"3:4":  "portrait",
	"2:3":  "portrait",
	"9:16": "vertical",
	"16:9": "widescreen",
	"3:2":  "landscape",
	"4:3":  "landscape",
	"5:4":  "landscape",
}

const descriptiveKeywordCount = 3

func (uc *implUseCase) buildFilenames(d model.ImageDescriptor, product model.ProductContext, keywords []string) metadata.FilenameSet {
	idBased := fmt.Sprintf("%s-%s-%dx%d.%s", d.ProductID, d.View, d.Width, d.Height, d.Format)

	slug := slugify(product.ProductName)
	nameBased := fmt.Sprintf("%s-%s-%dx%d.%s", slug, d.View, d.Width, d.Height, d.Format)

	descriptive := nameBased
	if len(keywords) > 0 {
		n := descriptiveKeywordCount
		if n > len(keywords) {
			n = len(keywords)
		}
		descriptive = fmt.Sprintf("%s-%s-%s.%s", slug, strings.Join(keywords[:n], "-"), d.View, d.Format)
	}

	return metadata.FilenameSet{
		IDBased:     idBased,
		NameBased:   nameBased,
		Descriptive: descriptive,
		CDNPath:     fmt.Sprintf("/images/products/%s/%s", d.ProductID, idBased),
		AspectRatio: ratioBucket(d.Width, d.Height),
	}
}

// reduceRatio reduces width:height by their GCD.
func reduceRatio(width, height int) string {
	g := gcd(width, height)
	return fmt.Sprintf("%d:%d", width/g, height/g)
}

// ratioBucket maps a reduced ratio to a named bucket, falling back to
// orientation by comparison.
func ratioBucket(width, height int) string {
	if name, ok := namedRatios[reduceRatio(width, height)]; ok {
		return name
	}
	switch {
	case width == height:
		return "square"
	case width > height:
		return "landscape"
	default:
		return "portrait"
	}
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

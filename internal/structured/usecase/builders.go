package usecase

import "image-insights-srv/internal/structured"

const schemaContext = "https://schema.org"

type builderFunc func(payload map[string]interface{}) map[string]interface{}

// requiredFields lists the payload keys each kind insists on. Structural
// correctness beyond presence is the caller's responsibility.
var requiredFields = map[string][]string{
	structured.KindVisualObject:       {"url", "name"},
	structured.KindCollection:         {"name", "images"},
	structured.KindCopyright:          {"name", "license"},
	structured.KindQualityAssessment:  {"image_id", "platform", "score"},
	structured.KindOptimizationReport: {"image_id", "grade"},
	structured.KindFilenameConvention: {"product_id", "id_based"},
	structured.KindCommerce:           {"name", "image"},
}

var builders = map[string]builderFunc{
	structured.KindVisualObject:       buildVisualObject,
	structured.KindCollection:         buildCollection,
	structured.KindCopyright:          buildCopyright,
	structured.KindQualityAssessment:  buildQualityAssessment,
	structured.KindOptimizationReport: buildOptimizationReport,
	structured.KindFilenameConvention: buildFilenameConvention,
	structured.KindCommerce:           buildCommerce,
}

func buildVisualObject(p map[string]interface{}) map[string]interface{} {
	doc := map[string]interface{}{
		"@context":             schemaContext,
		"@type":                "ImageObject",
		"contentUrl":           p["url"],
		"name":                 p["name"],
		"representativeOfPage": true,
	}
	putIfPresent(doc, "description", p, "description")
	putIfPresent(doc, "width", p, "width")
	putIfPresent(doc, "height", p, "height")
	putIfPresent(doc, "encodingFormat", p, "mime_type")
	putIfPresent(doc, "caption", p, "alt_text")
	putIfPresent(doc, "thumbnailUrl", p, "thumbnail_url")
	putIfPresent(doc, "keywords", p, "keywords")
	return doc
}

func buildCollection(p map[string]interface{}) map[string]interface{} {
	doc := map[string]interface{}{
		"@context": schemaContext,
		"@type":    "ImageGallery",
		"name":     p["name"],
		"image":    p["images"],
	}
	putIfPresent(doc, "description", p, "description")
	if images, ok := p["images"].([]interface{}); ok {
		doc["numberOfItems"] = len(images)
	}
	return doc
}

func buildCopyright(p map[string]interface{}) map[string]interface{} {
	doc := map[string]interface{}{
		"@context": schemaContext,
		"@type":    "CreativeWork",
		"name":     p["name"],
		"license":  p["license"],
	}
	putIfPresent(doc, "copyrightNotice", p, "statement")
	putIfPresent(doc, "copyrightYear", p, "year")
	putIfPresent(doc, "acquireLicensePage", p, "license_url")
	if creator, ok := p["creator"]; ok && creator != "" {
		doc["creator"] = map[string]interface{}{
			"@type": "Person",
			"name":  creator,
		}
	}
	return doc
}

func buildQualityAssessment(p map[string]interface{}) map[string]interface{} {
	doc := map[string]interface{}{
		"@context":     schemaContext,
		"@type":        "Review",
		"itemReviewed": p["image_id"],
		"name":         "Image quality assessment",
		"reviewRating": map[string]interface{}{
			"@type":       "Rating",
			"ratingValue": p["score"],
			"bestRating":  100,
			"worstRating": 0,
		},
	}
	putIfPresent(doc, "platform", p, "platform")
	putIfPresent(doc, "reviewBody", p, "status")
	return doc
}

func buildOptimizationReport(p map[string]interface{}) map[string]interface{} {
	doc := map[string]interface{}{
		"@context":         schemaContext,
		"@type":            "Report",
		"about":            p["image_id"],
		"performanceGrade": p["grade"],
	}
	putIfPresent(doc, "qualityScore", p, "quality_score")
	putIfPresent(doc, "compressionRatio", p, "compression_ratio")
	putIfPresent(doc, "recommendations", p, "recommendations")
	return doc
}

func buildFilenameConvention(p map[string]interface{}) map[string]interface{} {
	doc := map[string]interface{}{
		"@context":   schemaContext,
		"@type":      "DefinedTerm",
		"identifier": p["product_id"],
		"name":       p["id_based"],
	}
	putIfPresent(doc, "alternateName", p, "name_based")
	putIfPresent(doc, "description", p, "descriptive")
	putIfPresent(doc, "url", p, "cdn_path")
	return doc
}

func buildCommerce(p map[string]interface{}) map[string]interface{} {
	doc := map[string]interface{}{
		"@context": schemaContext,
		"@type":    "Product",
		"name":     p["name"],
		"image":    p["image"],
	}
	putIfPresent(doc, "description", p, "description")
	if brand, ok := p["brand"]; ok && brand != "" {
		doc["brand"] = map[string]interface{}{
			"@type": "Brand",
			"name":  brand,
		}
	}
	if price, ok := p["price"]; ok {
		offer := map[string]interface{}{
			"@type": "Offer",
			"price": price,
		}
		putIfPresent(offer, "priceCurrency", p, "currency")
		if inStock, ok := p["in_stock"].(bool); ok {
			availability := "https://schema.org/OutOfStock"
			if inStock {
				availability = "https://schema.org/InStock"
			}
			offer["availability"] = availability
		}
		doc["offers"] = offer
	}
	return doc
}

func putIfPresent(doc map[string]interface{}, docKey string, p map[string]interface{}, payloadKey string) {
	if v, ok := p[payloadKey]; ok && v != nil && v != "" {
		doc[docKey] = v
	}
}

package usecase

import (
	"fmt"

	"image-insights-srv/internal/metadata"
	"image-insights-srv/internal/model"
)

func defaultLicenseRules() map[string]metadata.LicenseRule {
	return map[string]metadata.LicenseRule{
		metadata.LicenseProprietary: {
			Statement:    "All rights reserved.",
			Restrictions: []string{"no-redistribution", "no-modification", "no-commercial-use"},
			Permissions:  []string{"personal-viewing"},
			Usage: metadata.UsageRights{
				CanUseCommercially: false,
				CanModify:          false,
				NeedsAttribution:   true,
				CanRedistribute:    false,
			},
			Watermark: true,
		},
		metadata.LicenseCC0: {
			Statement:    "Released into the public domain under CC0 1.0.",
			Restrictions: []string{},
			Permissions:  []string{"commercial-use", "modification", "redistribution", "private-use"},
			Usage: metadata.UsageRights{
				CanUseCommercially: true,
				CanModify:          true,
				NeedsAttribution:   false,
				CanRedistribute:    true,
			},
		},
		metadata.LicenseCCBY: {
			Statement:    "Licensed under CC BY 4.0.",
			Restrictions: []string{"attribution-required"},
			Permissions:  []string{"commercial-use", "modification", "redistribution"},
			Usage: metadata.UsageRights{
				CanUseCommercially: true,
				CanModify:          true,
				NeedsAttribution:   true,
				CanRedistribute:    true,
			},
		},
		metadata.LicenseCCBYSA: {
			Statement:    "Licensed under CC BY-SA 4.0.",
			Restrictions: []string{"attribution-required", "share-alike"},
			Permissions:  []string{"commercial-use", "modification", "redistribution"},
			Usage: metadata.UsageRights{
				CanUseCommercially: true,
				CanModify:          true,
				NeedsAttribution:   true,
				CanRedistribute:    true,
			},
		},
		metadata.LicenseCCBYNC: {
			Statement:    "Licensed under CC BY-NC 4.0.",
			Restrictions: []string{"attribution-required", "no-commercial-use"},
			Permissions:  []string{"modification", "redistribution"},
			Usage: metadata.UsageRights{
				CanUseCommercially: false,
				CanModify:          true,
				NeedsAttribution:   true,
				CanRedistribute:    true,
			},
		},
		metadata.LicenseCommercial: {
			Statement:    "Licensed for commercial use under negotiated terms.",
			Restrictions: []string{"license-terms-apply"},
			Permissions:  []string{"commercial-use"},
			Usage: metadata.UsageRights{
				CanUseCommercially: true,
				CanModify:          false,
				NeedsAttribution:   true,
				CanRedistribute:    false,
			},
		},
	}
}

// buildCopyright is a pure table lookup keyed by license plus string-template
// citation generation. Same inputs produce byte-identical output.
func (uc *implUseCase) buildCopyright(d model.ImageDescriptor, product model.ProductContext, license string, rule metadata.LicenseRule) metadata.CopyrightRecord {
	year := uc.clock.Now().UTC().Year()

	creator := product.Creator
	if creator == "" {
		creator = product.Brand
	}

	statement := fmt.Sprintf("© %d %s. %s", year, creator, rule.Statement)

	attribution := fmt.Sprintf("%q by %s, %s", product.ProductName, creator, license)
	if !rule.Usage.NeedsAttribution {
		attribution = ""
	}

	return metadata.CopyrightRecord{
		Statement:       statement,
		AttributionText: attribution,
		LicenseType:     license,
		Restrictions:    rule.Restrictions,
		Permissions:     rule.Permissions,
		Usage:           rule.Usage,
		Watermark:       rule.Watermark,
		Citations:       buildCitations(d, product, creator, license, year),
	}
}

func buildCitations(d model.ImageDescriptor, product model.ProductContext, creator, license string, year int) metadata.CitationForms {
	source := product.Brand
	if source == "" {
		source = "Product Catalog"
	}

	return metadata.CitationForms{
		MLA:     fmt.Sprintf("%s. %q. %s, %d, %s.", creator, product.ProductName, source, year, d.URL),
		APA:     fmt.Sprintf("%s. (%d). %s [Photograph]. %s. %s", creator, year, product.ProductName, source, d.URL),
		Chicago: fmt.Sprintf("%s. %q. %s. %d. %s.", creator, product.ProductName, source, year, d.URL),
		HTML:    fmt.Sprintf(`<a href=%q>%s</a> by %s, %s`, d.URL, product.ProductName, creator, license),
	}
}

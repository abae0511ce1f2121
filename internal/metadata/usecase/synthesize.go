package usecase

import (
	"context"
	"errors"

	"image-insights-srv/internal/metadata"
	"image-insights-srv/internal/model"
	"image-insights-srv/pkg/catalogsrv"
)

// Synthesize derives filenames, metadata and a copyright record from a
// product image descriptor. Pure given the same inputs and clock instant.
func (uc *implUseCase) Synthesize(ctx context.Context, sc model.Scope, input metadata.SynthesizeInput) (metadata.SynthesizeOutput, error) {
	if err := uc.validateDescriptor(input.Descriptor); err != nil {
		uc.l.Warnf(ctx, "metadata.usecase.Synthesize: invalid descriptor: %v", err)
		return metadata.SynthesizeOutput{}, err
	}

	product, err := uc.resolveProduct(ctx, input)
	if err != nil {
		uc.l.Errorf(ctx, "metadata.usecase.Synthesize: resolveProduct failed: %v", err)
		return metadata.SynthesizeOutput{}, err
	}

	license := product.LicenseType
	if license == "" {
		license = metadata.LicenseProprietary
	}
	rule, ok := uc.cfg.LicenseRules[license]
	if !ok {
		uc.l.Warnf(ctx, "metadata.usecase.Synthesize: unknown license %q", license)
		return metadata.SynthesizeOutput{}, metadata.ErrUnknownLicense
	}

	keywords := uc.extractKeywords(product)
	filenames := uc.buildFilenames(input.Descriptor, product, keywords)
	meta := uc.buildMetadata(input.Descriptor, product, keywords, filenames)
	copyright := uc.buildCopyright(input.Descriptor, product, license, rule)

	uc.l.Infof(ctx, "metadata.usecase.Synthesize: synthesized metadata for product %s view %s",
		input.Descriptor.ProductID, input.Descriptor.View)

	return metadata.SynthesizeOutput{
		Filenames: filenames,
		Metadata:  meta,
		Copyright: copyright,
	}, nil
}

func (uc *implUseCase) validateDescriptor(d model.ImageDescriptor) error {
	if d.ProductID == "" {
		return missingFieldErr("productId")
	}
	if d.View == "" {
		return missingFieldErr("view")
	}
	if d.Width <= 0 || d.Height <= 0 {
		return metadata.ErrInvalidDimensions
	}
	if !model.KnownFormats[d.Format] {
		return metadata.ErrUnknownFormat
	}
	return nil
}

// resolveProduct hydrates the product context from the catalog when the
// caller supplied only the descriptor.
func (uc *implUseCase) resolveProduct(ctx context.Context, input metadata.SynthesizeInput) (model.ProductContext, error) {
	product := input.Product
	if product.ProductName != "" {
		return product, nil
	}

	if uc.catalogSrv == nil {
		return product, missingFieldErr("productName")
	}

	fetched, err := uc.catalogSrv.GetProduct(ctx, input.Descriptor.ProductID)
	if err != nil {
		if errors.Is(err, catalogsrv.ErrProductNotFound) {
			return product, metadata.ErrProductNotFound
		}
		return product, err
	}

	return model.ProductContext{
		ProductName: fetched.Name,
		Description: fetched.Description,
		Category:    fetched.Category,
		Tags:        fetched.Tags,
		Brand:       fetched.Brand,
		Creator:     fetched.Creator,
		LicenseType: fetched.LicenseType,
		PriceCents:  fetched.PriceCents,
		Currency:    fetched.Currency,
		InStock:     fetched.InStock,
	}, nil
}

func missingFieldErr(field string) error {
	return &metadata.FieldError{Field: field}
}

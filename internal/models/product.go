package models

import (
	"fmt"

	"shop-backend/internal/repository"
)

// Product JSON keys are the store column names verbatim, spaces
// included. Orders rename their columns to camelCase; products never
// did, and clients depend on it. Keep the two mappings independent.
var productColumns = []string{
	"Product Name",
	"Description",
	"Price",
	"Category",
	"Inventory Level",
	"Product Photo",
}

// ProductRequiredFields must all be present (and non-empty) to create
// a product. Product Photo is the one optional column.
var ProductRequiredFields = []string{
	"Product Name",
	"Description",
	"Price",
	"Category",
	"Inventory Level",
}

// ProductFromRecord shapes a store record into the API payload.
// A missing photo column becomes an empty list, never null.
func ProductFromRecord(rec repository.Record) map[string]any {
	product := map[string]any{"id": rec.ID}
	for _, col := range productColumns {
		product[col] = rec.Fields[col]
	}
	if product["Product Photo"] == nil {
		product["Product Photo"] = []any{}
	}
	return product
}

// MissingProductField returns the name of the first required field that
// is absent from the request body, or "" when all are present. Absent
// means the key is missing, null, or an empty string.
func MissingProductField(body map[string]any) string {
	for _, f := range ProductRequiredFields {
		v, ok := body[f]
		if !ok || v == nil || v == "" {
			return f
		}
	}
	return ""
}

// ProductFields builds the store field set from a request body,
// touching only the allowed columns present in the body. Price is
// coerced to a number and Inventory Level to an integer, accepting
// numeric strings; Category is normalized to a list.
func ProductFields(body map[string]any) (map[string]any, error) {
	fields := make(map[string]any)
	for _, col := range productColumns {
		v, ok := body[col]
		if !ok {
			continue
		}

		switch col {
		case "Price":
			price, err := coerceFloat(v)
			if err != nil {
				return nil, fmt.Errorf("invalid Price: %w", err)
			}
			fields[col] = price
		case "Inventory Level":
			level, err := coerceInt(v)
			if err != nil {
				return nil, fmt.Errorf("invalid Inventory Level: %w", err)
			}
			fields[col] = level
		case "Category":
			fields[col] = normalizeCategory(v)
		default:
			fields[col] = v
		}
	}
	return fields, nil
}

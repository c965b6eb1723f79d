package catalog

import (
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"strconv"
	"time"

	"github.com/mitchellh/mapstructure"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	catalogEntity "storefront.GO/model/entity/catalog"
)

// ImportResult reports what a catalog import did.
type ImportResult struct {
	TotalRows int
	Imported  int
	Skipped   int
	Warnings  []string
	TotalTime time.Duration
}

// productInput is the loose JSON shape of one catalog row. Decoded through
// mapstructure so imports tolerate numeric strings and 0/1 booleans.
type productInput struct {
	ID           string                               `json:"id"`
	Name         string                               `json:"name"`
	Description  string                               `json:"description"`
	Price        float64                              `json:"price"`
	Image        string                               `json:"image"`
	Category     string                               `json:"category"`
	Rating       float64                              `json:"rating"`
	Reviews      int                                  `json:"reviews"`
	InStock      bool                                 `json:"inStock"`
	Featured     bool                                 `json:"featured"`
	Translations map[string]catalogEntity.Translation `json:"translations"`
}

// stringToNumberHook coerces numeric strings ("29.99") into numbers.
func stringToNumberHook() mapstructure.DecodeHookFuncKind {
	return func(from, to reflect.Kind, data interface{}) (interface{}, error) {
		if from != reflect.String {
			return data, nil
		}
		s := data.(string)
		switch to {
		case reflect.Float64:
			return strconv.ParseFloat(s, 64)
		case reflect.Int:
			return strconv.Atoi(s)
		}
		return data, nil
	}
}

// numberToBoolHook coerces 0/1 into booleans for the stock/featured flags.
func numberToBoolHook() mapstructure.DecodeHookFuncKind {
	return func(from, to reflect.Kind, data interface{}) (interface{}, error) {
		if to != reflect.Bool || from != reflect.Float64 {
			return data, nil
		}
		return data.(float64) != 0, nil
	}
}

var productDecodeHook = mapstructure.ComposeDecodeHookFunc(
	stringToNumberHook(),
	numberToBoolHook(),
)

func decodeProduct(row map[string]interface{}) (catalogEntity.Product, error) {
	var in productInput
	cfg := &mapstructure.DecoderConfig{
		DecodeHook: productDecodeHook,
		Result:     &in,
		TagName:    "json",
	}
	dec, err := mapstructure.NewDecoder(cfg)
	if err != nil {
		return catalogEntity.Product{}, err
	}
	if err := dec.Decode(row); err != nil {
		return catalogEntity.Product{}, err
	}
	if in.ID == "" {
		return catalogEntity.Product{}, fmt.Errorf("missing id")
	}
	if in.Name == "" {
		return catalogEntity.Product{}, fmt.Errorf("missing name for id %s", in.ID)
	}
	if in.Price < 0 {
		return catalogEntity.Product{}, fmt.Errorf("negative price for id %s", in.ID)
	}
	if in.Rating < 0 || in.Rating > 5 {
		return catalogEntity.Product{}, fmt.Errorf("rating out of range for id %s", in.ID)
	}
	if in.Reviews < 0 {
		return catalogEntity.Product{}, fmt.Errorf("negative reviews for id %s", in.ID)
	}

	p := catalogEntity.Product{
		ID:          in.ID,
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Image:       in.Image,
		Category:    in.Category,
		Rating:      in.Rating,
		Reviews:     in.Reviews,
		InStock:     in.InStock,
		Featured:    in.Featured,
	}
	if len(in.Translations) > 0 {
		raw, err := json.Marshal(in.Translations)
		if err != nil {
			return catalogEntity.Product{}, err
		}
		p.Translations = raw
	}
	return p, nil
}

// ImportJSON reads a JSON array of product rows and upserts them into the
// catalog table. Invalid rows are skipped with a warning; a fully invalid
// payload is an error.
func ImportJSON(db *gorm.DB, r io.Reader, batchSize int) (*ImportResult, error) {
	start := time.Now()
	if batchSize <= 0 {
		batchSize = 100
	}

	var rows []map[string]interface{}
	if err := json.NewDecoder(r).Decode(&rows); err != nil {
		return nil, fmt.Errorf("decode catalog JSON: %w", err)
	}

	res := &ImportResult{TotalRows: len(rows)}
	products := make([]catalogEntity.Product, 0, len(rows))
	for i, row := range rows {
		p, err := decodeProduct(row)
		if err != nil {
			res.Skipped++
			res.Warnings = append(res.Warnings, fmt.Sprintf("row %d: %v", i, err))
			continue
		}
		p.Position = i
		products = append(products, p)
	}

	if len(products) > 0 {
		err := db.Clauses(clause.OnConflict{UpdateAll: true}).
			CreateInBatches(products, batchSize).Error
		if err != nil {
			return nil, fmt.Errorf("upsert products: %w", err)
		}
		res.Imported = len(products)
	}

	res.TotalTime = time.Since(start)
	return res, nil
}

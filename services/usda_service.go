package services

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"
)

const usdaBaseURL = "https://api.nal.usda.gov/fdc/v1"

// USDAService talks to the USDA FoodData Central search endpoint. Searches
// are restricted to branded foods, which is where barcodes live.
type USDAService struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewUSDAService() *USDAService {
	return &USDAService{
		apiKey:  os.Getenv("USDA_API_KEY"),
		baseURL: usdaBaseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// FoodItem is a normalized catalog record. Nutrient values are per one
// serving: grams for the macros, kilocalories for energy.
type FoodItem struct {
	FdcID           string    `json:"fdcId"`
	Description     string    `json:"description"`
	BrandOwner      string    `json:"brandOwner,omitempty"`
	Ingredients     string    `json:"ingredients,omitempty"`
	ServingSize     float64   `json:"servingSize,omitempty"`
	ServingSizeUnit string    `json:"servingSizeUnit,omitempty"`
	Nutrients       Nutrients `json:"nutrients"`
}

type Nutrients struct {
	Protein       float64 `json:"protein"`
	Carbohydrates float64 `json:"carbohydrates"`
	Fat           float64 `json:"fat"`
	Calories      float64 `json:"calories"`
}

type usdaNutrient struct {
	NutrientNumber string  `json:"nutrientNumber"`
	Value          float64 `json:"value"`
}

type usdaFood struct {
	FdcID           json.Number    `json:"fdcId"`
	Description     string         `json:"description"`
	BrandOwner      string         `json:"brandOwner"`
	Ingredients     string         `json:"ingredients"`
	ServingSize     float64        `json:"servingSize"`
	ServingSizeUnit string         `json:"servingSizeUnit"`
	FoodNutrients   []usdaNutrient `json:"foodNutrients"`
}

type searchResponse struct {
	Foods []usdaFood `json:"foods"`
}

// Nutrient numbers as they appear in FDC responses. Each nutrient has a
// legacy number and a post-2019 one; a single response can mix both, so
// extraction checks the legacy number first.
var (
	proteinNumbers  = []string{"203", "1003"}
	carbsNumbers    = []string{"205", "1005"}
	fatNumbers      = []string{"204", "1004"}
	caloriesNumbers = []string{"208", "1008"}
)

// Search queries the catalog for branded foods matching free text, capped
// at 25 results. A provider response with no matches is an empty slice,
// not an error.
func (s *USDAService) Search(query string) ([]FoodItem, error) {
	u := fmt.Sprintf(
		"%s/foods/search?api_key=%s&query=%s&pageSize=25&dataType=Branded",
		s.baseURL, s.apiKey, url.QueryEscape(query),
	)

	sr, err := s.getSearch(u)
	if err != nil {
		return nil, err
	}

	results := make([]FoodItem, 0, len(sr.Foods))
	for _, f := range sr.Foods {
		results = append(results, parseFood(f))
	}
	return results, nil
}

// LookupBarcode runs the same branded-food search with the barcode as the
// query term. Returns nil (no error) when nothing matches.
func (s *USDAService) LookupBarcode(code string) (*FoodItem, error) {
	u := fmt.Sprintf(
		"%s/foods/search?api_key=%s&query=%s&dataType=Branded",
		s.baseURL, s.apiKey, url.QueryEscape(code),
	)

	sr, err := s.getSearch(u)
	if err != nil {
		return nil, err
	}
	if len(sr.Foods) == 0 {
		return nil, nil
	}

	item := parseFood(sr.Foods[0])
	return &item, nil
}

func (s *USDAService) getSearch(u string) (*searchResponse, error) {
	resp, err := s.client.Get(u)
	if err != nil {
		return nil, fmt.Errorf("%w: calling FDC search: %v", ErrLookup, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading FDC response: %v", ErrLookup, err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: FDC search error %d: %s", ErrLookup, resp.StatusCode, string(body))
	}

	var sr searchResponse
	if err := json.Unmarshal(body, &sr); err != nil {
		return nil, fmt.Errorf("%w: parsing FDC JSON: %v", ErrLookup, err)
	}
	return &sr, nil
}

// nutrientValue returns the first matching nutrient number's value, or 0
// when none of the numbers appear in the payload.
func nutrientValue(nutrients []usdaNutrient, numbers []string) float64 {
	for _, num := range numbers {
		for _, n := range nutrients {
			if n.NutrientNumber == num {
				return n.Value
			}
		}
	}
	return 0
}

func parseFood(f usdaFood) FoodItem {
	return FoodItem{
		FdcID:           f.FdcID.String(),
		Description:     f.Description,
		BrandOwner:      f.BrandOwner,
		Ingredients:     f.Ingredients,
		ServingSize:     f.ServingSize,
		ServingSizeUnit: f.ServingSizeUnit,
		Nutrients: Nutrients{
			Protein:       nutrientValue(f.FoodNutrients, proteinNumbers),
			Carbohydrates: nutrientValue(f.FoodNutrients, carbsNumbers),
			Fat:           nutrientValue(f.FoodNutrients, fatNumbers),
			Calories:      nutrientValue(f.FoodNutrients, caloriesNumbers),
		},
	}
}

package services

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUSDA(ts *httptest.Server) *USDAService {
	return &USDAService{
		apiKey:  "test-key",
		baseURL: ts.URL,
		client:  ts.Client(),
	}
}

func TestSearchParsesBrandedFoods(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "peanut butter", r.URL.Query().Get("query"))
		assert.Equal(t, "25", r.URL.Query().Get("pageSize"))
		assert.Equal(t, "Branded", r.URL.Query().Get("dataType"))

		w.Write([]byte(`{"foods":[{
			"fdcId": 123456,
			"description": "PEANUT BUTTER",
			"brandOwner": "Acme Foods",
			"ingredients": "PEANUTS, SALT",
			"servingSize": 32,
			"servingSizeUnit": "g",
			"foodNutrients": [
				{"nutrientNumber": "203", "value": 7.5},
				{"nutrientNumber": "205", "value": 6.0},
				{"nutrientNumber": "204", "value": 16.0},
				{"nutrientNumber": "208", "value": 190.0}
			]
		}]}`))
	}))
	defer ts.Close()

	foods, err := newTestUSDA(ts).Search("peanut butter")
	require.NoError(t, err)
	require.Len(t, foods, 1)

	f := foods[0]
	assert.Equal(t, "123456", f.FdcID)
	assert.Equal(t, "PEANUT BUTTER", f.Description)
	assert.Equal(t, "Acme Foods", f.BrandOwner)
	assert.Equal(t, 7.5, f.Nutrients.Protein)
	assert.Equal(t, 6.0, f.Nutrients.Carbohydrates)
	assert.Equal(t, 16.0, f.Nutrients.Fat)
	assert.Equal(t, 190.0, f.Nutrients.Calories)
}

func TestSearchNoMatchesIsEmptyNotError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"totalHits": 0}`))
	}))
	defer ts.Close()

	foods, err := newTestUSDA(ts).Search("zzzzz")
	require.NoError(t, err)
	assert.Empty(t, foods)
}

func TestSearchErrorStatusIsLookupError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "forbidden", http.StatusForbidden)
	}))
	defer ts.Close()

	_, err := newTestUSDA(ts).Search("apple")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrLookup)
}

func TestSearchMalformedJSONIsLookupError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"foods": "not an array"`))
	}))
	defer ts.Close()

	_, err := newTestUSDA(ts).Search("apple")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrLookup)
}

func TestSearchTransportFailureIsLookupError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	svc := newTestUSDA(ts)
	ts.Close()

	_, err := svc.Search("apple")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrLookup)
}

func TestLookupBarcodeReturnsFirstMatch(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "0123456789012", r.URL.Query().Get("query"))
		w.Write([]byte(`{"foods":[
			{"fdcId": 1, "description": "FIRST", "foodNutrients": []},
			{"fdcId": 2, "description": "SECOND", "foodNutrients": []}
		]}`))
	}))
	defer ts.Close()

	food, err := newTestUSDA(ts).LookupBarcode("0123456789012")
	require.NoError(t, err)
	require.NotNil(t, food)
	assert.Equal(t, "FIRST", food.Description)
}

func TestLookupBarcodeAbsentIsNilNotError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"foods":[]}`))
	}))
	defer ts.Close()

	food, err := newTestUSDA(ts).LookupBarcode("0000000000000")
	require.NoError(t, err)
	assert.Nil(t, food)
}

func TestNutrientValuePrefersLegacyCode(t *testing.T) {
	nutrients := []usdaNutrient{
		{NutrientNumber: "1003", Value: 99},
		{NutrientNumber: "203", Value: 10},
	}
	// legacy 203 wins even though 1003 appears first in the payload
	assert.Equal(t, 10.0, nutrientValue(nutrients, proteinNumbers))
}

func TestNutrientValueFallsBackToModernCode(t *testing.T) {
	nutrients := []usdaNutrient{
		{NutrientNumber: "1008", Value: 150},
	}
	assert.Equal(t, 150.0, nutrientValue(nutrients, caloriesNumbers))
}

func TestNutrientValueAbsentIsZero(t *testing.T) {
	nutrients := []usdaNutrient{
		{NutrientNumber: "301", Value: 42}, // calcium, not one we track
	}
	assert.Equal(t, 0.0, nutrientValue(nutrients, fatNumbers))
	assert.Equal(t, 0.0, nutrientValue(nil, fatNumbers))
}

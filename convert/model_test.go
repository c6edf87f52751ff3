package convert

import (
	"github.com/stretchr/testify/assert"
	"testing"
	"time"
)

func TestConversions(t *testing.T) {
	conversions := Conversions{
		"createdAt": TimeFromMillis,
		"rating":    Int,
	}

	t.Run("single record", func(t *testing.T) {
		record := map[string]interface{}{
			"createdAt": 1623758400000.0,
			"rating":    "1500",
			"name":      "x",
		}
		actual, err := conversions.Convert(record)
		assert.Nil(t, err)
		converted := actual.(map[string]interface{})
		assert.Equal(t, time.Date(2021, 6, 15, 12, 0, 0, 0, time.UTC), converted["createdAt"])
		assert.Equal(t, 1500, converted["rating"])
		assert.Equal(t, "x", converted["name"])
	})

	t.Run("record list", func(t *testing.T) {
		records := []interface{}{
			map[string]interface{}{"rating": 1200.0},
			map[string]interface{}{"name": "no rating"},
		}
		actual, err := conversions.Convert(records)
		assert.Nil(t, err)
		converted := actual.([]interface{})
		assert.Equal(t, 1200, converted[0].(map[string]interface{})["rating"])
		assert.Equal(t, "no rating", converted[1].(map[string]interface{})["name"])
	})

	t.Run("scalar is rejected", func(t *testing.T) {
		_, err := conversions.Convert("not a record")
		assert.NotNil(t, err)
	})

	t.Run("envelope values", func(t *testing.T) {
		envelope := map[string]interface{}{
			"blitz": map[string]interface{}{"rating": "1800"},
			"bullet": []interface{}{
				map[string]interface{}{"rating": 2000.0},
			},
		}
		actual, err := conversions.ConvertValues(envelope)
		assert.Nil(t, err)
		blitz := actual["blitz"].(map[string]interface{})
		assert.Equal(t, 1800, blitz["rating"])
		bullet := actual["bullet"].([]interface{})
		assert.Equal(t, 2000, bullet[0].(map[string]interface{})["rating"])
	})

	t.Run("conversion failure propagates", func(t *testing.T) {
		_, err := conversions.ConvertOne(map[string]interface{}{"rating": []interface{}{}})
		assert.NotNil(t, err)
	})
}

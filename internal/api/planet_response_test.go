package api

import (
	"encoding/json"
	"sort"
	"testing"

	"planetary-api/internal/model"

	"github.com/stretchr/testify/require"
)

func TestPlanetResponseFields(t *testing.T) {
	raw, err := json.Marshal(NewPlanetResponse(model.Planet{ID: 1, Name: "Mercury", Type: "Class D", HomeStar: "Sol", Mass: 3.258e23, Radius: 1516, Distance: 35.98e6}))
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(raw, &m))
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	require.Equal(t, []string{"distance", "home_star", "id", "mass", "name", "radius", "type"}, keys)
	require.Equal(t, 35.98e6, m["distance"])
}

func TestNewPlanetResponses(t *testing.T) {
	out := NewPlanetResponses([]model.Planet{{ID: 2, Name: "Venus"}, {ID: 1, Name: "Mercury"}})
	require.Len(t, out, 2)
	require.Equal(t, "Venus", out[0].Name)
	require.Equal(t, "Mercury", out[1].Name)

	empty := NewPlanetResponses(nil)
	require.NotNil(t, empty)
	raw, _ := json.Marshal(PlanetListResponse{Data: empty})
	require.JSONEq(t, `{"data":[]}`, string(raw))
}

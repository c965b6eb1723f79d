package apitest

import (
	"net/http"
	"testing"
)

func spyBody(scrollY float64) map[string]interface{} {
	return map[string]interface{}{
		"scroll_y": scrollY,
		"sections": []map[string]interface{}{
			{"id": "hero", "top": 0, "height": 600},
			{"id": "about", "top": 600, "height": 500},
			{"id": "showcase", "top": 1100, "height": 800},
			{"id": "contact", "top": 1900, "height": 400},
		},
	}
}

func TestScrollSpyAPI_ActiveSection(t *testing.T) {
	e, _ := newApp(t)

	// 700 + default offset 100 = 800, inside about [600, 1100).
	rec, resp := doJSON(t, e, http.MethodPost, "/api/scrollspy/active", "", spyBody(700))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if resp["active"] != "about" {
		t.Errorf("active = %v, want about", resp["active"])
	}
}

func TestScrollSpyAPI_NearTopFallsBackToFirst(t *testing.T) {
	e, _ := newApp(t)

	body := spyBody(0)
	offset := float64(0)
	body["offset"] = offset

	_, resp := doJSON(t, e, http.MethodPost, "/api/scrollspy/active", "", body)
	if resp["active"] != "hero" {
		t.Errorf("active = %v, want hero", resp["active"])
	}
}

func TestScrollSpyAPI_SectionOrderFromLocale(t *testing.T) {
	e, _ := newApp(t)

	_, resp := doJSON(t, e, http.MethodPost, "/api/scrollspy/active", "", spyBody(0))
	sections := resp["sections"].([]interface{})
	want := []string{"hero", "about", "showcase", "contact"}
	if len(sections) != len(want) {
		t.Fatalf("sections = %v", sections)
	}
	for i, s := range want {
		if sections[i] != s {
			t.Errorf("sections[%d] = %v, want %s", i, sections[i], s)
		}
	}
}

func TestScrollSpyAPI_MissingSectionsSkipped(t *testing.T) {
	e, _ := newApp(t)

	// Only contact reported; position far down the page lands inside it.
	body := map[string]interface{}{
		"scroll_y": 2000,
		"sections": []map[string]interface{}{
			{"id": "contact", "top": 1900, "height": 400},
		},
	}
	_, resp := doJSON(t, e, http.MethodPost, "/api/scrollspy/active", "", body)
	if resp["active"] != "contact" {
		t.Errorf("active = %v, want contact", resp["active"])
	}
}

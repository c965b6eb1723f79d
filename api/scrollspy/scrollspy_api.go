package scrollspy

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"storefront.GO/api"
	"storefront.GO/config"
	spy "storefront.GO/service/scrollspy"
)

func init() {
	api.RegisterModule(RegisterScrollSpyRoutes)
}

type sectionRect struct {
	ID     string  `json:"id"`
	Top    float64 `json:"top"`
	Height float64 `json:"height"`
}

// snapshot adapts one posted geometry reading to the tracker's view of
// the page.
type snapshot struct {
	scrollY float64
	rects   map[string]sectionRect
}

func (s snapshot) ScrollY() float64 { return s.scrollY }

func (s snapshot) SectionRect(id string) (top, height float64, ok bool) {
	r, ok := s.rects[id]
	if !ok {
		return 0, 0, false
	}
	return r.Top, r.Height, true
}

func RegisterScrollSpyRoutes(apiGroup *echo.Group, deps api.Deps) {
	// POST /api/scrollspy/active – resolve the active section for a
	// client-reported geometry snapshot.
	apiGroup.POST("/scrollspy/active", func(c echo.Context) error {
		var body struct {
			ScrollY  float64       `json:"scroll_y"`
			Sections []sectionRect `json:"sections"`
			Locale   string        `json:"locale"`
			Offset   *float64      `json:"offset"`
		}
		if err := c.Bind(&body); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}

		offset := float64(config.ScrollOffset)
		if body.Offset != nil {
			offset = *body.Offset
		}

		// Section order comes from the locale's landing page, not from
		// the posted rects.
		locale := body.Locale
		if !config.IsLocale(locale) {
			locale = config.DefaultLocale()
		}
		ids := config.LandingSections(locale)

		snap := snapshot{scrollY: body.ScrollY, rects: make(map[string]sectionRect, len(body.Sections))}
		for _, r := range body.Sections {
			snap.rects[r.ID] = r
		}

		return c.JSON(http.StatusOK, echo.Map{
			"active":   spy.Track(snap, ids, offset),
			"sections": ids,
		})
	})
}

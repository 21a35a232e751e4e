//go:build unit

package api_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"cozycup/internal/domain/menu"
	"cozycup/internal/domain/pool"
	"cozycup/internal/handler/api"
	resdto "cozycup/internal/handler/dto/response"
	"cozycup/internal/pkg/errs"
	"cozycup/internal/pkg/patch"
	"cozycup/internal/usecase/commands"
	"cozycup/internal/usecase/queries"
	"cozycup/tests/common/httptest"
	"cozycup/tests/common/testutil"
	commandsmock "cozycup/tests/mock/commands"
	queriesmock "cozycup/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CatalogHandlerTestSuite struct {
	suite.Suite
	router   *gin.Engine
	mockCtrl *gomock.Controller
	menuCmds *commandsmock.MockMenuCommands
	menuQ    *queriesmock.MockMenuQueries
	poolCmds *commandsmock.MockPoolCommands
	poolQ    *queriesmock.MockPoolQueries
}

func (s *CatalogHandlerTestSuite) SetupTest() {
	s.router = newTestRouter()
	s.mockCtrl = gomock.NewController(s.T())
	s.menuCmds = commandsmock.NewMockMenuCommands(s.mockCtrl)
	s.menuQ = queriesmock.NewMockMenuQueries(s.mockCtrl)
	s.poolCmds = commandsmock.NewMockPoolCommands(s.mockCtrl)
	s.poolQ = queriesmock.NewMockPoolQueries(s.mockCtrl)

	menuHandler := api.NewMenuHandler(s.menuCmds, s.menuQ)
	s.router.GET("/menu", menuHandler.List)
	s.router.POST("/menu", menuHandler.Create)
	s.router.PATCH("/menu/:id", menuHandler.Patch)

	poolHandler := api.NewPoolHandler(s.poolCmds, s.poolQ)
	s.router.GET("/slots", poolHandler.List(pool.KindSlot))
	s.router.POST("/slots", poolHandler.Create(pool.KindSlot))
	s.router.PATCH("/pickup-windows/:id", poolHandler.Patch(pool.KindPickupWindow))
}

func (s *CatalogHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCatalogHandlerSuite(t *testing.T) {
	suite.Run(t, new(CatalogHandlerTestSuite))
}

func menuView(name string) *queries.MenuItemView {
	return &queries.MenuItemView{ID: uuid.New(), Name: name, Category: "coffee", PriceCents: 350, Currency: "USD", IsActive: true}
}

func (s *CatalogHandlerTestSuite) TestMenuList() {
	s.Run("OK: forwards filters and sort", func() {
		want := queries.MenuFilter{
			Category: "coffee",
			Query:    "latte",
			Sort:     []queries.SortKey{{Field: "price_cents", Desc: true}},
			Limit:    10,
			Offset:   5,
		}
		s.menuQ.EXPECT().List(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, f queries.MenuFilter) (*queries.Page[*queries.MenuItemView], error) {
				s.Empty(cmp.Diff(want, f))
				return &queries.Page[*queries.MenuItemView]{
					Items: []*queries.MenuItemView{menuView("Latte")}, Total: 1, Limit: 10, Offset: 5,
				}, nil
			})

		rec := perform(s.T(), s.router, http.MethodGet, "/menu?category=coffee&q=latte&sort=priceCents:desc&limit=10&offset=5", nil, nil)

		var page resdto.Page[resdto.MenuItemResponse]
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &page)
		s.Require().Len(page.Items, 1)
		s.Equal("Latte", page.Items[0].Name)
		s.Equal(1, page.Total)
	})

	s.Run("OK: garbage paging falls back to defaults", func() {
		s.menuQ.EXPECT().List(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, f queries.MenuFilter) (*queries.Page[*queries.MenuItemView], error) {
				s.Equal(0, f.Limit)
				s.Equal(queries.MaxOffset, f.Offset)
				return &queries.Page[*queries.MenuItemView]{}, nil
			})

		rec := perform(s.T(), s.router, http.MethodGet, "/menu?limit=abc&offset=999999", nil, nil)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("NG: unknown sort field", func() {
		rec := perform(s.T(), s.router, http.MethodGet, "/menu?sort=calories", nil, nil)
		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, string(errs.KindValidation))
	})
}

func (s *CatalogHandlerTestSuite) TestMenuCreate() {
	caller := host()
	reqBody := map[string]any{"name": "Flat White", "category": "coffee", "priceCents": 420}

	s.Run("OK: 201 and isActive defaults to true", func() {
		s.menuCmds.EXPECT().Create(gomock.Any(), *caller, menu.Params{
			Name: "Flat White", Category: "coffee", PriceCents: 420, IsActive: true,
		}).Return(menuView("Flat White"), nil)

		rec := perform(s.T(), s.router, http.MethodPost, "/menu", reqBody, caller)

		var response resdto.MenuItemResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal("Flat White", response.Name)
	})

	s.Run("NG: validation", func() {
		cases := []struct {
			name   string
			mutate func(map[string]any)
		}{
			{name: "missing name", mutate: testutil.Field("name", nil)},
			{name: "zero price", mutate: testutil.Field("priceCents", 0)},
			{name: "bad currency", mutate: testutil.Field("currency", "DOLLARS")},
			{name: "bad image url", mutate: testutil.Field("imageUrl", "not a url")},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := perform(s.T(), s.router, http.MethodPost, "/menu", body, caller)
				httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, string(errs.KindValidation))
			})
		}
	})

	s.Run("NG: validation details name the json field", func() {
		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("priceCents", -1))
		rec := perform(s.T(), s.router, http.MethodPost, "/menu", body, caller)
		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, string(errs.KindValidation))
		s.Contains(rec.Body.String(), `"field":"priceCents"`)
	})
}

func (s *CatalogHandlerTestSuite) TestMenuPatch() {
	caller := host()
	id := uuid.New()

	s.Run("OK: only provided fields are forwarded", func() {
		s.menuCmds.EXPECT().Patch(gomock.Any(), *caller, id, menu.Patch{
			PriceCents: patch.Ptr(int64(500)),
			IsActive:   patch.Ptr(false),
		}).Return(menuView("Mocha"), nil)

		rec := perform(s.T(), s.router, http.MethodPatch, "/menu/"+id.String(),
			map[string]any{"priceCents": 500, "isActive": false}, caller)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("NG: malformed id", func() {
		rec := perform(s.T(), s.router, http.MethodPatch, "/menu/not-a-uuid", map[string]any{}, caller)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("NG: missing item", func() {
		s.menuCmds.EXPECT().Patch(gomock.Any(), gomock.Any(), id, gomock.Any()).Return(nil, errs.NotFound("Menu item not found"))

		rec := perform(s.T(), s.router, http.MethodPatch, "/menu/"+id.String(), map[string]any{"name": "x"}, caller)
		httptest.AssertErrorCode(s.T(), rec, http.StatusNotFound, string(errs.KindNotFound))
	})
}

func (s *CatalogHandlerTestSuite) TestPoolList() {
	s.Run("OK: binds kind and range", func() {
		from := time.Date(2026, 10, 1, 8, 0, 0, 0, time.UTC)
		s.poolQ.EXPECT().List(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, f queries.PoolFilter) (*queries.Page[*queries.PoolView], error) {
				s.Equal(pool.KindSlot, f.Kind)
				s.Require().NotNil(f.From)
				s.True(from.Equal(*f.From))
				s.Nil(f.To)
				s.True(f.IncludeClosed)
				return &queries.Page[*queries.PoolView]{
					Items: []*queries.PoolView{{ID: uuid.New(), Kind: "slot", Capacity: 4, Remaining: 4, Status: "open"}},
					Total: 1,
				}, nil
			})

		rec := perform(s.T(), s.router, http.MethodGet, "/slots?from=2026-10-01T08:00:00Z&includeClosed=true", nil, nil)

		var page resdto.Page[resdto.PoolResponse]
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &page)
		s.Require().Len(page.Items, 1)
		s.Equal(4, page.Items[0].Remaining)
	})

	s.Run("NG: unparseable date", func() {
		rec := perform(s.T(), s.router, http.MethodGet, "/slots?to=tomorrow", nil, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid to date")
	})
}

func (s *CatalogHandlerTestSuite) TestPoolCreate() {
	caller := host()
	start := time.Date(2026, 10, 20, 9, 0, 0, 0, time.UTC)
	reqBody := map[string]any{
		"startAt":  start.Format(time.RFC3339),
		"endAt":    start.Add(time.Hour).Format(time.RFC3339),
		"capacity": 0,
	}

	s.Run("OK: zero capacity is allowed", func() {
		s.poolCmds.EXPECT().Create(gomock.Any(), *caller, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ commands.Principal, p pool.Params) (*queries.PoolView, error) {
				s.Equal(pool.KindSlot, p.Kind)
				s.Equal(0, p.Capacity)
				s.True(p.IsActive)
				return &queries.PoolView{ID: uuid.New(), Kind: "slot", StartAt: p.StartAt, EndAt: p.EndAt}, nil
			})

		rec := perform(s.T(), s.router, http.MethodPost, "/slots", reqBody, caller)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("NG: validation", func() {
		cases := []struct {
			name   string
			mutate func(map[string]any)
		}{
			{name: "missing capacity", mutate: testutil.Field("capacity", nil)},
			{name: "negative capacity", mutate: testutil.Field("capacity", -1)},
			{name: "unknown status", mutate: testutil.Field("status", "paused")},
			{name: "missing startAt", mutate: testutil.Field("startAt", nil)},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := perform(s.T(), s.router, http.MethodPost, "/slots", body, caller)
				httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, string(errs.KindValidation))
			})
		}
	})
}

func (s *CatalogHandlerTestSuite) TestPoolPatch() {
	caller := host()
	id := uuid.New()

	s.Run("OK: status toggle", func() {
		s.poolCmds.EXPECT().Patch(gomock.Any(), *caller, pool.KindPickupWindow, id, pool.Patch{
			Status: patch.Ptr(pool.Status("closed")),
		}).Return(&queries.PoolView{ID: id, Status: "closed"}, nil)

		rec := perform(s.T(), s.router, http.MethodPatch, "/pickup-windows/"+id.String(), map[string]any{"status": "closed"}, caller)

		var response resdto.PoolResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("closed", response.Status)
	})

	s.Run("NG: capacity below booked count", func() {
		s.poolCmds.EXPECT().Patch(gomock.Any(), gomock.Any(), gomock.Any(), id, gomock.Any()).
			Return(nil, errs.Conflict("Capacity cannot be less than booked count"))

		rec := perform(s.T(), s.router, http.MethodPatch, "/pickup-windows/"+id.String(), map[string]any{"capacity": 1}, caller)
		httptest.AssertErrorCode(s.T(), rec, http.StatusConflict, string(errs.KindConflict))
	})
}

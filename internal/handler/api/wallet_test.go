//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"cozycup/internal/handler/api"
	resdto "cozycup/internal/handler/dto/response"
	"cozycup/internal/pkg/errs"
	"cozycup/internal/usecase/commands"
	"cozycup/internal/usecase/queries"
	"cozycup/tests/common/httptest"
	"cozycup/tests/common/testutil"
	commandsmock "cozycup/tests/mock/commands"
	queriesmock "cozycup/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type WalletHandlerTestSuite struct {
	suite.Suite
	router   *gin.Engine
	mockCtrl *gomock.Controller
	cmds     *commandsmock.MockWalletCommands
	q        *queriesmock.MockWalletQueries
	reportQ  *queriesmock.MockReportQueries
}

func (s *WalletHandlerTestSuite) SetupTest() {
	s.router = newTestRouter()
	s.mockCtrl = gomock.NewController(s.T())
	s.cmds = commandsmock.NewMockWalletCommands(s.mockCtrl)
	s.q = queriesmock.NewMockWalletQueries(s.mockCtrl)
	s.reportQ = queriesmock.NewMockReportQueries(s.mockCtrl)

	h := api.NewWalletHandler(s.cmds, s.q)
	s.router.GET("/packages", h.ListPackages)
	s.router.POST("/packages", h.CreatePackage)
	s.router.POST("/purchases", h.Purchase)
	s.router.GET("/purchases/me/wallet", h.MyWallet)
	s.router.POST("/redeem", h.Redeem)
	s.router.POST("/redeem/qr-token", h.MintRedeemToken)

	reports := api.NewReportHandler(s.reportQ)
	s.router.GET("/reports/day-summary", reports.DaySummary)
}

func (s *WalletHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestWalletHandlerSuite(t *testing.T) {
	suite.Run(t, new(WalletHandlerTestSuite))
}

func purchaseView(customerID uuid.UUID, left int) *queries.PurchaseView {
	return &queries.PurchaseView{
		ID:            uuid.New(),
		CustomerID:    customerID,
		PackageID:     uuid.New(),
		CreditsTotal:  10,
		CreditsLeft:   left,
		PaymentMethod: "MOCK",
	}
}

func (s *WalletHandlerTestSuite) TestPackages() {
	caller := host()

	s.Run("OK: list is public", func() {
		s.q.EXPECT().ListPackages(gomock.Any(), 5, 0).Return(&queries.Page[*queries.PackageView]{
			Items: []*queries.PackageView{{ID: uuid.New(), Name: "Ten Coffees", Credits: 10, PriceCents: 3000, IsActive: true}},
			Total: 1, Limit: 5,
		}, nil)

		rec := perform(s.T(), s.router, http.MethodGet, "/packages?limit=5", nil, nil)

		var page resdto.Page[resdto.PackageResponse]
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &page)
		s.Require().Len(page.Items, 1)
		s.Equal(10, page.Items[0].Credits)
	})

	s.Run("OK: create is 201", func() {
		s.cmds.EXPECT().CreatePackage(gomock.Any(), *caller, commands.CreatePackageInput{
			Name: "Five Teas", Credits: 5, PriceCents: 1500, IsActive: true,
		}).Return(&queries.PackageView{ID: uuid.New(), Name: "Five Teas", Credits: 5, PriceCents: 1500, IsActive: true}, nil)

		rec := perform(s.T(), s.router, http.MethodPost, "/packages",
			map[string]any{"name": "Five Teas", "credits": 5, "priceCents": 1500}, caller)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("NG: validation", func() {
		base := map[string]any{"name": "Five Teas", "credits": 5, "priceCents": 1500}
		cases := []struct {
			name   string
			mutate func(map[string]any)
		}{
			{name: "name 1 char", mutate: testutil.Field("name", "x")},
			{name: "zero credits", mutate: testutil.Field("credits", 0)},
			{name: "1001 credits", mutate: testutil.Field("credits", 1001)},
			{name: "free package", mutate: testutil.Field("priceCents", 0)},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				rec := perform(s.T(), s.router, http.MethodPost, "/packages", testutil.DtoMap(s.T(), base, tc.mutate), caller)
				httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, string(errs.KindValidation))
			})
		}
	})
}

func (s *WalletHandlerTestSuite) TestPurchase() {
	caller := customer()
	packageID := uuid.New()

	s.Run("OK: payment method defaults to MOCK", func() {
		s.cmds.EXPECT().Purchase(gomock.Any(), caller.UserID, commands.PurchaseInput{PackageID: packageID, PaymentMethod: "MOCK"}).
			Return(purchaseView(caller.UserID, 10), nil)

		rec := perform(s.T(), s.router, http.MethodPost, "/purchases", map[string]any{"packageId": packageID.String()}, caller)

		var response resdto.PurchaseResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(10, response.CreditsLeft)
	})

	s.Run("NG: unknown payment method", func() {
		rec := perform(s.T(), s.router, http.MethodPost, "/purchases",
			map[string]any{"packageId": packageID.String(), "paymentMethod": "BITCOIN"}, caller)
		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, string(errs.KindValidation))
	})

	s.Run("NG: inactive package", func() {
		s.cmds.EXPECT().Purchase(gomock.Any(), caller.UserID, gomock.Any()).Return(nil, errs.NotFound("Package not found"))

		rec := perform(s.T(), s.router, http.MethodPost, "/purchases", map[string]any{"packageId": packageID.String()}, caller)
		httptest.AssertErrorCode(s.T(), rec, http.StatusNotFound, string(errs.KindNotFound))
	})
}

func (s *WalletHandlerTestSuite) TestMyWallet() {
	caller := customer()

	s.Run("OK: purchases carry their package", func() {
		item := &queries.WalletItemView{
			PurchaseView: *purchaseView(caller.UserID, 3),
			Package:      &queries.PackageView{ID: uuid.New(), Name: "Ten Coffees", Credits: 10},
		}
		s.q.EXPECT().MyWallet(gomock.Any(), caller.UserID, 0, 0).Return(&queries.Page[*queries.WalletItemView]{
			Items: []*queries.WalletItemView{item}, Total: 1, Limit: 50,
		}, nil)

		rec := perform(s.T(), s.router, http.MethodGet, "/purchases/me/wallet", nil, caller)

		var page resdto.Page[resdto.WalletItemResponse]
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &page)
		s.Require().Len(page.Items, 1)
		s.Equal(3, page.Items[0].CreditsLeft)
		s.Require().NotNil(page.Items[0].Package)
		s.Equal("Ten Coffees", page.Items[0].Package.Name)
	})
}

func (s *WalletHandlerTestSuite) TestRedeem() {
	caller := customer()
	purchaseID := uuid.New()

	s.Run("OK: by purchase id", func() {
		redemption := &queries.RedemptionView{ID: uuid.New(), CustomerID: caller.UserID, PurchaseID: purchaseID, RedeemedAt: time.Now().UTC()}
		s.cmds.EXPECT().Redeem(gomock.Any(), caller.UserID, commands.RedeemInput{PurchaseID: &purchaseID}).
			Return(&commands.RedeemResult{PurchaseID: purchaseID, CreditsLeft: 4, RedemptionID: redemption.ID, Redemption: redemption}, nil)

		rec := perform(s.T(), s.router, http.MethodPost, "/redeem", map[string]any{"purchaseId": purchaseID.String()}, caller)

		var response resdto.RedeemResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(4, response.CreditsLeft)
		s.Require().NotNil(response.Redemption)
		s.Equal(redemption.ID, response.Redemption.ID)
	})

	s.Run("NG: no credits left", func() {
		s.cmds.EXPECT().Redeem(gomock.Any(), caller.UserID, gomock.Any()).Return(nil, errs.Conflict("No credits left"))

		rec := perform(s.T(), s.router, http.MethodPost, "/redeem", map[string]any{"purchaseId": purchaseID.String()}, caller)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "No credits left")
	})

	s.Run("NG: token too short", func() {
		rec := perform(s.T(), s.router, http.MethodPost, "/redeem", map[string]any{"token": "abc"}, caller)
		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, string(errs.KindValidation))
	})

	s.Run("OK: mint redeem token", func() {
		expires := time.Date(2026, 10, 15, 9, 5, 0, 0, time.UTC)
		s.cmds.EXPECT().MintRedeemToken(gomock.Any(), caller.UserID, purchaseID).
			Return(&commands.QRToken{Token: "redeem.jwt.token", ExpiresAt: expires}, nil)

		rec := perform(s.T(), s.router, http.MethodPost, "/redeem/qr-token", map[string]any{"purchaseId": purchaseID.String()}, caller)

		var response resdto.QRTokenResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal("redeem.jwt.token", response.Token)
	})
}

func (s *WalletHandlerTestSuite) TestDaySummary() {
	caller := host()

	s.Run("OK: passes the date through", func() {
		s.reportQ.EXPECT().DaySummary(gomock.Any(), "2026-10-14").Return(&queries.DaySummary{
			Date:     "2026-10-14",
			Bookings: map[string]int{"BOOKED": 2, "CHECKED_IN": 1},
			Slots:    queries.SlotTotals{TotalSlots: 3, TotalCapacity: 12, TotalBooked: 3},
		}, nil)

		rec := perform(s.T(), s.router, http.MethodGet, "/reports/day-summary?date=2026-10-14", nil, caller)

		var response resdto.DaySummaryResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(2, response.Bookings["BOOKED"])
		s.Equal(12, response.Slots.TotalCapacity)
	})

	s.Run("NG: bad date", func() {
		s.reportQ.EXPECT().DaySummary(gomock.Any(), "yesterday").Return(nil, errs.Validation("Invalid date, expected YYYY-MM-DD"))

		rec := perform(s.T(), s.router, http.MethodGet, "/reports/day-summary?date=yesterday", nil, caller)
		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, string(errs.KindValidation))
	})
}

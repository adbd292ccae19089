package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	goValidator "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"

	bCtx "github.com/mahtab89/hypixel-notifier/base/ctx"
	"github.com/mahtab89/hypixel-notifier/base/delivery"
	bValidator "github.com/mahtab89/hypixel-notifier/base/validator"
	"github.com/mahtab89/hypixel-notifier/domain"
	"github.com/mahtab89/hypixel-notifier/domain/auction"
	mockUseCase "github.com/mahtab89/hypixel-notifier/domain/auction/mocks"
)

type testsuite struct {
	suite.Suite
	e           *echo.Echo
	mockUseCase *mockUseCase.UseCase
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (ts *testsuite) SetupTest() {
	ts.e = echo.New()
	ts.e.Validator = bValidator.NewCustomValidator(goValidator.New())
	ts.e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("ctx", bCtx.Background())
			return next(c)
		}
	})
	ts.mockUseCase = &mockUseCase.UseCase{}
	New(ts.e, ts.mockUseCase, false)
}

func (ts *testsuite) do(path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	ts.e.ServeHTTP(rec, req)
	return rec
}

func (ts *testsuite) TestGetAuctions() {
	auctions := []*auction.Auction{{ID: "a1", ItemName: "Sword", SellerName: "Notch"}}
	ts.mockUseCase.On("GetPlayerAuctions", bCtx.Background(), "Notch").Return(auctions, nil)

	rec := ts.do("/api/auctions/Notch")
	ts.Equal(http.StatusOK, rec.Code)

	resp := delivery.JsonResponse{}
	ts.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	ts.Equal(delivery.JsonResponseStatusSuccess, resp.Status)

	data, err := json.Marshal(resp.Data)
	ts.NoError(err)
	got := []*auction.Auction{}
	ts.NoError(json.Unmarshal(data, &got))
	ts.Equal(auctions, got)
}

func (ts *testsuite) TestGetBids() {
	ts.mockUseCase.On("GetPlayerBids", bCtx.Background(), "Notch").
		Return([]*auction.Auction{}, nil)

	rec := ts.do("/api/bids/Notch")
	ts.Equal(http.StatusOK, rec.Code)
	ts.mockUseCase.AssertNotCalled(ts.T(), "GetPlayerAuctions")
}

func (ts *testsuite) TestNotFoundMapsTo404() {
	ts.mockUseCase.On("GetPlayerAuctions", bCtx.Background(), "zzz_nonexistent_zzz").
		Return(nil, domain.ErrNotFound)

	rec := ts.do("/api/auctions/zzz_nonexistent_zzz")
	ts.Equal(http.StatusNotFound, rec.Code)

	resp := delivery.JsonResponse{}
	ts.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	ts.Equal(delivery.JsonResponseStatusFail, resp.Status)
}

func (ts *testsuite) TestUpstreamErrorMapsTo500() {
	ts.mockUseCase.On("GetPlayerAuctions", bCtx.Background(), "Notch").
		Return(nil, domain.ErrUpstreamError)

	rec := ts.do("/api/auctions/Notch")
	ts.Equal(http.StatusInternalServerError, rec.Code)

	// outside debug mode the upstream detail is masked
	resp := delivery.JsonResponse{}
	ts.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	ts.Equal(domain.ErrInternalServerError.Error(), resp.Data)
}

func (ts *testsuite) TestInvalidUsernameRejectedBeforeLookup() {
	rec := ts.do("/api/auctions/%20%20")
	ts.Equal(http.StatusBadRequest, rec.Code)
	ts.mockUseCase.AssertNotCalled(ts.T(), "GetPlayerAuctions")
}

func (ts *testsuite) TestCheckUsername() {
	ts.mockUseCase.On("CheckUsername", bCtx.Background(), "Notch").Return(true, nil)

	rec := ts.do("/api/check-username/Notch")
	ts.Equal(http.StatusOK, rec.Code)

	resp := delivery.JsonResponse{}
	ts.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	data, err := json.Marshal(resp.Data)
	ts.NoError(err)
	got := map[string]bool{}
	ts.NoError(json.Unmarshal(data, &got))
	ts.True(got["exists"])
}

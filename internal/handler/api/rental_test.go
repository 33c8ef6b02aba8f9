//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"console-rental/internal/handler/api"
	resdto "console-rental/internal/handler/dto/response"
	"console-rental/internal/pkg/errs"
	"console-rental/internal/usecase/commands"
	"console-rental/internal/usecase/queries"
	"console-rental/tests/common/builder"
	"console-rental/tests/common/httptest"
	"console-rental/tests/common/testutil"
	commandsmock "console-rental/tests/mock/commands"
	queriesmock "console-rental/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RentalHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockRentalCommands
	mockQueries  *queriesmock.MockRentLogQueries
}

func (s *RentalHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockRentalCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockRentLogQueries(s.mockCtrl)
	h := api.NewRentalHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/rentals", h.Rent)
	s.router.POST("/playstations/:id/release", h.Release)
	s.router.GET("/rent-logs", h.ListLogs)
	s.router.GET("/rent-logs/:id", h.GetLog)
}

func (s *RentalHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRentalHandlerSuite(t *testing.T) {
	suite.Run(t, new(RentalHandlerTestSuite))
}

func (s *RentalHandlerTestSuite) TestRent() {
	b := builder.NewRentLogBuilder()
	reqBody := b.BuildRentRequestDTO()
	expected := commands.RentRequest{RenterID: b.RenterID, PlayStationID: b.PlayStationID}

	s.Run("success: returns 201 Created with the rent log", func() {
		s.mockCommands.EXPECT().Rent(gomock.Any(), expected).Return(b.BuildView(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/rentals", reqBody)

		var body resdto.RentLogResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(b.RenterID.String(), body.RenterID)
		s.Equal(b.PlayStationID.String(), body.PlayStationID)
		s.True(b.CreatedAt.Equal(body.CreatedAt))
		s.Contains(rec.Body.String(), `"createdAt"`)
	})

	s.Run("error: maps usecase errors", func() {
		testCases := []struct {
			name       string
			err        error
			wantStatus int
			wantKind   string
		}{
			{name: "renter missing", err: errs.NotFound(errs.MsgRenterNotFound), wantStatus: http.StatusNotFound, wantKind: "NotFound"},
			{name: "playstation missing", err: errs.NotFound(errs.MsgPlayStationNotFound), wantStatus: http.StatusNotFound, wantKind: "NotFound"},
			{name: "already rented", err: errs.PlayStationNotAvailable(errs.MsgPlayStationNotAvailable), wantStatus: http.StatusConflict, wantKind: "PlayStationNotAvailable"},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Rent(gomock.Any(), expected).Return(nil, tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/rentals", reqBody)
				httptest.AssertErrorKind(s.T(), rec, tc.wantStatus, tc.wantKind, "")
			})
		}
	})

	s.Run("error: 400 on missing or malformed ids", func() {
		for name, mutate := range map[string]func(map[string]any){
			"missing renterId":        testutil.Field("renterId", nil),
			"missing playstationId":   testutil.Field("playstationId", nil),
			"malformed playstationId": testutil.Field("playstationId", "abc"),
		} {
			s.Run(name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/rentals", requestMap)
				httptest.AssertErrorKind(s.T(), rec, http.StatusBadRequest, "InvalidPayload", "")
			})
		}
	})
}

func (s *RentalHandlerTestSuite) TestRelease() {
	ps := builder.NewPlayStationBuilder()

	s.mockCommands.EXPECT().Release(gomock.Any(), ps.ID).Return(ps.BuildView(), nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/playstations/"+ps.ID.String()+"/release", nil)

	var body resdto.PlayStationResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.True(body.Available)
}

func (s *RentalHandlerTestSuite) TestRentLogs() {
	b := builder.NewRentLogBuilder()

	s.Run("list", func() {
		s.mockQueries.EXPECT().List(gomock.Any()).Return([]*queries.RentLogView{b.BuildView()}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rent-logs", nil)

		var body []resdto.RentLogResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 1)
	})

	s.Run("get: 404", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), b.ID).Return(nil, errs.NotFound(errs.MsgRentLogNotFound)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rent-logs/"+b.ID.String(), nil)
		httptest.AssertErrorKind(s.T(), rec, http.StatusNotFound, "NotFound", errs.MsgRentLogNotFound)
	})
}

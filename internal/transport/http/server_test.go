package http

import (
	"bytes"
	"io"
	"math/big"
	"net/http"
	"net/http/httptest"
	"syscall"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/fleshka4/twindex-reader/internal/apperrors"
	"github.com/fleshka4/twindex-reader/internal/config"
	"github.com/fleshka4/twindex-reader/internal/infra/twindex"
	"github.com/fleshka4/twindex-reader/internal/registry"
	servicedto "github.com/fleshka4/twindex-reader/internal/service/dto"
	"github.com/fleshka4/twindex-reader/internal/service/mock"
	"github.com/fleshka4/twindex-reader/internal/transport/http/dto"
)

const (
	pairHex   = "0xbde3b88c4D5926d5236447D1b12a866f1a38B2B7"
	walletHex = "0x742d35Cc6634C0532925a3b844Bc454e4438f44e"
	tokenHex  = "0x17aCe02e5C8814BF2EE9eAAFF7902D52c15Fb0f4"
)

func newTestServer(t *testing.T) (*Server, *mock.MockService) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockService := mock.NewMockService(ctrl)

	server, err := NewServer(mockService, &config.Config{RequestTimeout: time.Second}, nil, zerolog.Nop())
	require.NoError(t, err)
	return server, mockService
}

func serve(t *testing.T, server *Server, method, target string) (int, []byte) {
	t.Helper()

	req := httptest.NewRequest(method, target, nil)
	w := httptest.NewRecorder()

	server.mux.ServeHTTP(w, req)

	resp := w.Result()
	defer func(Body io.ReadCloser) {
		require.NoError(t, Body.Close())
	}(resp.Body)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, body
}

func decode[T any](t *testing.T, body []byte) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(body, &out))
	return out
}

func TestNewServer(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	mockService := mock.NewMockService(ctrl)

	_, err := NewServer(mockService, nil, nil, zerolog.Nop())
	require.Error(t, err)

	_, err = NewServer(nil, &config.Config{}, nil, zerolog.Nop())
	require.Error(t, err)
}

func TestPingHandler(t *testing.T) {
	t.Parallel()

	server, _ := newTestServer(t)

	status, body := serve(t, server, http.MethodGet, "/ping")
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "pong", string(body))
}

func TestMetricsRoute(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	metrics := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("twindex_rpc_calls_total 1"))
	})

	server, err := NewServer(mock.NewMockService(ctrl), &config.Config{}, metrics, zerolog.Nop())
	require.NoError(t, err)

	status, body := serve(t, server, http.MethodGet, "/metrics")
	require.Equal(t, http.StatusOK, status)
	require.Contains(t, string(body), "twindex_rpc_calls_total")
}

func TestBlockHandler(t *testing.T) {
	t.Parallel()

	server, mockService := newTestServer(t)

	mockService.EXPECT().
		BlockCountdown(gomock.Any(), uint64(110)).
		Return(servicedto.BlockCountdown{Current: 100, Target: 110, Remaining: 30 * time.Second}, nil)

	status, body := serve(t, server, http.MethodGet, "/block?target=110")
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, dto.BlockResponse{Current: 100, Target: 110, RemainingMs: 30000}, decode[dto.BlockResponse](t, body))

	status, _ = serve(t, server, http.MethodGet, "/block?target=abc")
	require.Equal(t, http.StatusBadRequest, status)
}

func TestPoolsHandlers(t *testing.T) {
	t.Parallel()

	server, mockService := newTestServer(t)
	pair := common.HexToAddress(pairHex)

	t.Run("list", func(t *testing.T) {
		mockService.EXPECT().Pools().Return([]registry.Pair{
			{Name: "TSLA_DOLLY", Symbol: "TSLA", Pairing: registry.DOLLY, Address: pair, PoolID: 4},
		})

		status, body := serve(t, server, http.MethodGet, "/pools")
		require.Equal(t, http.StatusOK, status)

		pools := decode[[]dto.PoolResponse](t, body)
		require.Len(t, pools, 1)
		require.Equal(t, pair.Hex(), pools[0].Address)
		require.Equal(t, uint64(4), pools[0].PoolID)
	})

	t.Run("id", func(t *testing.T) {
		mockService.EXPECT().PoolID(pair).Return(uint64(4), nil)

		status, body := serve(t, server, http.MethodGet, "/pools/id?pair="+pairHex)
		require.Equal(t, http.StatusOK, status)
		require.Equal(t, dto.PoolIDResponse{Pair: pair.Hex(), PoolID: 4}, decode[dto.PoolIDResponse](t, body))
	})

	t.Run("id not found", func(t *testing.T) {
		mockService.EXPECT().PoolID(pair).Return(uint64(0), errors.Wrap(apperrors.ErrPoolNotFound, "pair"))

		status, _ := serve(t, server, http.MethodGet, "/pools/id?pair="+pairHex)
		require.Equal(t, http.StatusNotFound, status)
	})
}

func TestWalletHandlers(t *testing.T) {
	t.Parallel()

	server, mockService := newTestServer(t)
	wallet := common.HexToAddress(walletHex)

	t.Run("locked without wallet", func(t *testing.T) {
		mockService.EXPECT().LockedTwin(gomock.Any(), gomock.Nil()).Return(new(big.Int), nil)

		status, body := serve(t, server, http.MethodGet, "/wallet/locked")
		require.Equal(t, http.StatusOK, status)
		require.Equal(t, "0", decode[dto.AmountResponse](t, body).Amount)
	})

	t.Run("locked", func(t *testing.T) {
		mockService.EXPECT().LockedTwin(gomock.Any(), &wallet).Return(big.NewInt(12345), nil)

		status, body := serve(t, server, http.MethodGet, "/wallet/locked?wallet="+walletHex)
		require.Equal(t, http.StatusOK, status)
		require.Equal(t, "12345", decode[dto.AmountResponse](t, body).Amount)
	})

	t.Run("loans", func(t *testing.T) {
		mockService.EXPECT().UserLoans(gomock.Any(), wallet).Return([]twindex.Loan{
			{LoanId: [32]byte{1}, Principal: big.NewInt(500)},
		}, nil)

		status, body := serve(t, server, http.MethodGet, "/wallet/loans?wallet="+walletHex)
		require.Equal(t, http.StatusOK, status)

		loans := decode[[]dto.LoanResponse](t, body)
		require.Len(t, loans, 1)
		require.Equal(t, "500", loans[0].Principal)
		require.Equal(t, "0", loans[0].Collateral)
		require.Equal(t, "0x01", loans[0].LoanID[:4])
	})

	t.Run("loans empty", func(t *testing.T) {
		mockService.EXPECT().UserLoans(gomock.Any(), wallet).Return([]twindex.Loan{}, nil)

		status, body := serve(t, server, http.MethodGet, "/wallet/loans?wallet="+walletHex)
		require.Equal(t, http.StatusOK, status)
		require.JSONEq(t, "[]", string(body))
	})

	t.Run("loans remote failure", func(t *testing.T) {
		mockService.EXPECT().UserLoans(gomock.Any(), wallet).
			Return(nil, apperrors.Remote(errors.New("execution reverted")))

		status, _ := serve(t, server, http.MethodGet, "/wallet/loans?wallet="+walletHex)
		require.Equal(t, http.StatusBadGateway, status)
	})

	t.Run("loans require wallet", func(t *testing.T) {
		status, _ := serve(t, server, http.MethodGet, "/wallet/loans")
		require.Equal(t, http.StatusBadRequest, status)
	})

	t.Run("pending", func(t *testing.T) {
		mockService.EXPECT().PendingTwin(gomock.Any(), uint64(4), &wallet).Return(big.NewInt(7), nil)

		status, body := serve(t, server, http.MethodGet, "/wallet/pending?pool_id=4&wallet="+walletHex)
		require.Equal(t, http.StatusOK, status)
		require.Equal(t, "7", decode[dto.AmountResponse](t, body).Amount)
	})
}

func TestLPHandlers(t *testing.T) {
	t.Parallel()

	server, mockService := newTestServer(t)
	pair := common.HexToAddress(pairHex)
	wallet := common.HexToAddress(walletHex)

	t.Run("position", func(t *testing.T) {
		mockService.EXPECT().LPPosition(gomock.Any(), pair, &wallet).Return(servicedto.LPPosition{
			Pair:        pair,
			PoolID:      4,
			Reserve0:    big.NewInt(1000),
			Reserve1:    big.NewInt(2000),
			TotalSupply: big.NewInt(100),
			LPAmount:    big.NewInt(15),
			Underlying0: big.NewInt(150),
			Underlying1: big.NewInt(300),
		}, nil)

		status, body := serve(t, server, http.MethodGet, "/lp/position?pair="+pairHex+"&wallet="+walletHex)
		require.Equal(t, http.StatusOK, status)

		pos := decode[dto.LPPositionResponse](t, body)
		require.Equal(t, "15", pos.LPAmount)
		require.Equal(t, "150", pos.Underlying0)
		require.Equal(t, "300", pos.Underlying1)
	})

	t.Run("price", func(t *testing.T) {
		mockService.EXPECT().
			PairLPPrice(gomock.Any(), servicedto.LPPriceRequest{Pair: pair, Price0: big.NewInt(2), Price1: big.NewInt(3)}).
			Return(big.NewInt(5), nil)

		status, body := serve(t, server, http.MethodGet, "/lp/price?pair="+pairHex+"&price0=2&price1=3")
		require.Equal(t, http.StatusOK, status)
		require.Equal(t, "5", decode[dto.PriceResponse](t, body).Price)
	})
}

func TestPriceHandlers(t *testing.T) {
	t.Parallel()

	server, mockService := newTestServer(t)
	token := common.HexToAddress(tokenHex)

	t.Run("token via dop", func(t *testing.T) {
		mockService.EXPECT().
			TokenPrice(gomock.Any(), servicedto.TokenPriceRequest{Token: token, DollyPrice: big.NewInt(1), Route: servicedto.RouteDop}).
			Return(big.NewInt(690), nil)

		status, body := serve(t, server, http.MethodGet, "/price/token?token="+tokenHex+"&dolly_price=1&route=dop")
		require.Equal(t, http.StatusOK, status)
		require.Equal(t, "690", decode[dto.PriceResponse](t, body).Price)
	})

	t.Run("oracle stock", func(t *testing.T) {
		mockService.EXPECT().OracleStockPrice(gomock.Any(), token, big.NewInt(1)).Return(big.NewInt(150), nil)

		status, body := serve(t, server, http.MethodGet, "/price/oracle/stock?stock="+tokenHex+"&dolly_price=1")
		require.Equal(t, http.StatusOK, status)
		require.Equal(t, "150", decode[dto.PriceResponse](t, body).Price)
	})

	t.Run("oracle dolly", func(t *testing.T) {
		mockService.EXPECT().OracleDollyPrice(gomock.Any()).Return(big.NewInt(100_000_000), nil)

		status, body := serve(t, server, http.MethodGet, "/price/oracle/dolly")
		require.Equal(t, http.StatusOK, status)
		require.Equal(t, "100000000", decode[dto.PriceResponse](t, body).Price)
	})

	testServiceError := func(t *testing.T, serviceError error, expectedStatusCode int) {
		mockService.EXPECT().OracleDollyPrice(gomock.Any()).Return(nil, serviceError)

		status, body := serve(t, server, http.MethodGet, "/price/oracle/dolly")
		require.Equal(t, expectedStatusCode, status)
		require.NotEmpty(t, decode[dto.ErrorResponse](t, body).Error)
	}

	t.Run("service error - invalid argument", func(t *testing.T) {
		testServiceError(t, apperrors.ErrInvalidArgument, http.StatusBadRequest)
	})

	t.Run("service error - division by zero", func(t *testing.T) {
		testServiceError(t, errors.Wrap(apperrors.ErrDivisionByZero, "oracle precision"), http.StatusBadRequest)
	})

	t.Run("service error - remote call", func(t *testing.T) {
		testServiceError(t, apperrors.Remote(errors.New("timeout")), http.StatusBadGateway)
	})

	t.Run("service error - unknown error", func(t *testing.T) {
		testServiceError(t, errors.New("unknown error"), http.StatusInternalServerError)
	})

	t.Run("wrong http method", func(t *testing.T) {
		status, _ := serve(t, server, http.MethodPost, "/price/oracle/dolly")
		require.Equal(t, http.StatusMethodNotAllowed, status)
	})
}

func TestLogMiddleware(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	var logOutput bytes.Buffer

	server, err := NewServer(mock.NewMockService(ctrl), &config.Config{}, nil, zerolog.New(&logOutput))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/ping", nil)
	w := httptest.NewRecorder()

	handler := server.logMiddleware(server.mux)
	handler.ServeHTTP(w, req)

	logContent := logOutput.String()
	require.Contains(t, logContent, `"method":"POST"`)
	require.Contains(t, logContent, `"path":"/ping"`)
	require.Contains(t, logContent, `"status":200`)
}

func TestServer_ListenAndServe(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)

	server, err := NewServer(mock.NewMockService(ctrl), &config.Config{
		ReadHeaderTimeout: 5 * time.Second,
		GraceTimeout:      5 * time.Second,
	}, nil, zerolog.Nop())
	require.NoError(t, err)

	const addr = "localhost:0"

	errCh := make(chan error, 1)

	go func() {
		errCh <- server.ListenAndServe(addr)
	}()

	time.Sleep(100 * time.Millisecond)

	err = syscall.Kill(syscall.Getpid(), syscall.SIGTERM)
	require.NoError(t, err)

	select {
	case err := <-errCh:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not shut down in time")
	}
}

package service

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog"

	"github.com/fleshka4/twindex-reader/internal/infra/twindex"
	"github.com/fleshka4/twindex-reader/internal/registry"
	"github.com/fleshka4/twindex-reader/internal/service/dto"
)

//go:generate mockgen -destination=mock/service.go -package=mock . Service

// Service represents interface for dashboard reads and price derivation.
type Service interface {
	BlockCountdown(ctx context.Context, target uint64) (dto.BlockCountdown, error)

	Pools() []registry.Pair
	PoolID(pair common.Address) (uint64, error)

	LockedTwin(ctx context.Context, wallet *common.Address) (*big.Int, error)
	UserLoans(ctx context.Context, wallet common.Address) ([]twindex.Loan, error)
	PendingTwin(ctx context.Context, poolID uint64, wallet *common.Address) (*big.Int, error)

	WalletPlusStakedLPAmount(ctx context.Context, pair common.Address, wallet *common.Address) (*big.Int, error)
	LPPosition(ctx context.Context, pair common.Address, wallet *common.Address) (dto.LPPosition, error)
	PairLPPrice(ctx context.Context, req dto.LPPriceRequest) (*big.Int, error)

	TokenPrice(ctx context.Context, req dto.TokenPriceRequest) (*big.Int, error)
	TokenPriceViaDolly(ctx context.Context, token common.Address, dollyPrice *big.Int) (*big.Int, error)
	TokenPriceViaDop(ctx context.Context, token common.Address, dollyPrice *big.Int) (*big.Int, error)
	PriceFromRouter(ctx context.Context, path []common.Address, dollyPrice *big.Int) (*big.Int, error)
	OracleStockPrice(ctx context.Context, stock common.Address, dollyPrice *big.Int) (*big.Int, error)
	OracleDollyPrice(ctx context.Context) (*big.Int, error)
}

// DashboardService represents struct for business logic.
type DashboardService struct {
	cli twindex.Client
	reg *registry.Registry
	log zerolog.Logger
}

// NewDashboardService creates DashboardService.
func NewDashboardService(cli twindex.Client, reg *registry.Registry, log zerolog.Logger) *DashboardService {
	return &DashboardService{cli: cli, reg: reg, log: log}
}

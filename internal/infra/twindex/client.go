package twindex

import (
	"context"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/fleshka4/twindex-reader/internal/apperrors"
	"github.com/fleshka4/twindex-reader/internal/metrics"
	"github.com/fleshka4/twindex-reader/internal/registry"
)

//go:generate mockgen -destination=mock/client.go -package=mock . Client,EthCaller

// Client reads Twindex contract state. Every method issues read-only calls
// against the latest block.
type Client interface {
	// CurrentBlockNumber returns the latest block height.
	CurrentBlockNumber(ctx context.Context) (uint64, error)
	// VerifyNetwork fails with apperrors.ErrWrongNetwork when the endpoint serves another chain.
	VerifyNetwork(ctx context.Context, chainID uint64) error

	// LockedTwinAmount returns the locked TWIN of a wallet, zero without a wallet.
	LockedTwinAmount(ctx context.Context, wallet *common.Address) (*big.Int, error)
	// UserLoans returns the open loans of a wallet. Whether a failed read
	// surfaces as an error is decided by PolicyFor.
	UserLoans(ctx context.Context, wallet common.Address) ([]Loan, error)

	// TotalLPSupply returns the LP token supply of a pair.
	TotalLPSupply(ctx context.Context, pair common.Address) (*big.Int, error)
	// PairTokens returns the addresses of token0 and token1 of a pair.
	PairTokens(ctx context.Context, pair common.Address) (common.Address, common.Address, error)
	// Reserves returns the current reserves of a pair.
	Reserves(ctx context.Context, pair common.Address) (Reserves, error)
	// LPBalance returns the LP tokens a wallet holds directly.
	LPBalance(ctx context.Context, pair, wallet common.Address) (*big.Int, error)

	// PendingTwin returns unclaimed FairLaunch rewards, zero without a wallet.
	PendingTwin(ctx context.Context, poolID uint64, wallet *common.Address) (*big.Int, error)
	// UserInfo returns the FairLaunch position of a wallet in a pool.
	UserInfo(ctx context.Context, poolID uint64, wallet common.Address) (UserInfo, error)

	// AmountsOut quotes a swap of amountIn along path through the router.
	AmountsOut(ctx context.Context, amountIn *big.Int, path []common.Address) ([]*big.Int, error)
	// QueryRate returns the PriceFeeds rate between two tokens.
	QueryRate(ctx context.Context, src, dst common.Address) (OracleRate, error)
	// LatestAnswer returns the DOLLY reference price.
	LatestAnswer(ctx context.Context) (*big.Int, error)
}

// EthCaller represents the JSON-RPC methods the client needs.
type EthCaller interface {
	CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
	BlockNumber(ctx context.Context) (uint64, error)
	ChainID(ctx context.Context) (*big.Int, error)
}

// Options tunes a Client.
type Options struct {
	// CallTimeout bounds every remote call; zero leaves ctx untouched.
	CallTimeout time.Duration
	Metrics     *metrics.Metrics
	Logger      zerolog.Logger
}

type contractABIs struct {
	pair         abi.ABI
	twin         abi.ABI
	fairLaunch   abi.ABI
	router       abi.ABI
	priceFeeds   abi.ABI
	oracle       abi.ABI
	dfiProtocols abi.ABI
}

type ethClientImpl struct {
	caller EthCaller
	abis   contractABIs
	reg    *registry.Registry

	callTimeout time.Duration
	metrics     *metrics.Metrics
	log         zerolog.Logger
}

// NewClient creates a new Twindex Client backed by an Ethereum RPC connection.
func NewClient(rpcURL string, reg *registry.Registry, opts Options) (Client, error) {
	caller, err := ethclient.Dial(rpcURL)
	if err != nil {
		return nil, errors.Wrap(err, "ethclient.Dial")
	}

	return newClientWithCaller(caller, reg, opts)
}

func newClientWithCaller(caller EthCaller, reg *registry.Registry, opts Options) (Client, error) {
	if reg == nil {
		return nil, errors.Wrap(apperrors.ErrInvalidArgument, "registry is nil")
	}

	abis, err := parseABIs()
	if err != nil {
		return nil, err
	}

	return &ethClientImpl{
		caller: caller,
		abis:   abis,
		reg:    reg,

		callTimeout: opts.CallTimeout,
		metrics:     opts.Metrics,
		log:         opts.Logger,
	}, nil
}

func parseABIs() (contractABIs, error) {
	var (
		abis contractABIs
		err  error
	)
	for _, p := range []struct {
		name string
		json string
		dst  *abi.ABI
	}{
		{"pair", pairABIJSON, &abis.pair},
		{"twin", twinABIJSON, &abis.twin},
		{"fairlaunch", fairLaunchABIJSON, &abis.fairLaunch},
		{"router", routerABIJSON, &abis.router},
		{"price feeds", priceFeedsABIJSON, &abis.priceFeeds},
		{"oracle", oracleABIJSON, &abis.oracle},
		{"dfi protocols", dfiProtocolsABIJSON, &abis.dfiProtocols},
	} {
		*p.dst, err = abi.JSON(strings.NewReader(p.json))
		if err != nil {
			return contractABIs{}, errors.Wrapf(err, "abi.JSON: %s", p.name)
		}
	}
	return abis, nil
}

func (c *ethClientImpl) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.callTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, c.callTimeout)
}

// call packs method with args, runs eth_call against to and returns the raw
// result bytes.
func (c *ethClientImpl) call(
	ctx context.Context,
	contract abi.ABI,
	to common.Address,
	method string,
	args ...interface{},
) (res []byte, err error) {
	data, err := contract.Pack(method, args...)
	if err != nil {
		return nil, errors.Wrap(err, "contract.Pack")
	}

	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	start := time.Now()
	defer func() {
		elapsed := time.Since(start)
		c.metrics.RecordCall(method, elapsed, err)
		c.log.Debug().
			Str("method", method).
			Str("to", to.Hex()).
			Dur("elapsed", elapsed).
			Err(err).
			Msg("eth_call")
	}()

	res, err = c.caller.CallContract(
		ctx,
		ethereum.CallMsg{
			To:   &to,
			Data: data,
		},
		nil,
	)
	if err != nil {
		return nil, errors.Wrap(apperrors.Remote(err), "c.caller.CallContract")
	}

	return res, nil
}

// callValues runs call and decodes the outputs into a slice.
func (c *ethClientImpl) callValues(
	ctx context.Context,
	contract abi.ABI,
	to common.Address,
	method string,
	args ...interface{},
) ([]interface{}, error) {
	res, err := c.call(ctx, contract, to, method, args...)
	if err != nil {
		return nil, err
	}

	out, err := contract.Unpack(method, res)
	if err != nil {
		return nil, errors.Wrap(apperrors.Remote(err), "contract.Unpack")
	}

	return out, nil
}

// callInto runs call and decodes the outputs into the record pointed to by v.
func (c *ethClientImpl) callInto(
	ctx context.Context,
	contract abi.ABI,
	to common.Address,
	method string,
	v interface{},
	args ...interface{},
) error {
	res, err := c.call(ctx, contract, to, method, args...)
	if err != nil {
		return err
	}

	if err := contract.UnpackIntoInterface(v, method, res); err != nil {
		return errors.Wrap(apperrors.Remote(err), "contract.UnpackIntoInterface")
	}

	return nil
}

// callBigInt runs a call whose single output is a uint and unwraps it.
func (c *ethClientImpl) callBigInt(
	ctx context.Context,
	contract abi.ABI,
	to common.Address,
	method string,
	args ...interface{},
) (*big.Int, error) {
	out, err := c.callValues(ctx, contract, to, method, args...)
	if err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, errors.Wrapf(apperrors.ErrRemoteCall, "empty %s result", method)
	}

	v, ok := out[0].(*big.Int)
	if !ok {
		return nil, errors.Wrapf(apperrors.ErrRemoteCall, "failed to cast %s result to *big.Int", method)
	}
	return v, nil
}

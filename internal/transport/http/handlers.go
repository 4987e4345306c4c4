package http

import (
	"math/big"
	"net/http"

	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/fleshka4/twindex-reader/internal/infra/twindex"
	servicedto "github.com/fleshka4/twindex-reader/internal/service/dto"
	"github.com/fleshka4/twindex-reader/internal/transport/http/dto"
	"github.com/fleshka4/twindex-reader/internal/transport/http/validate"
)

func (s *Server) handleBlock(w http.ResponseWriter, r *http.Request) {
	req, code, err := validate.BlockRequestValidate(r)
	if err != nil {
		s.writeBadRequest(w, code, err)
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()

	out, err := s.svc.BlockCountdown(ctx, req.Target)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, dto.BlockResponse{
		Current:     out.Current,
		Target:      out.Target,
		RemainingMs: out.Remaining.Milliseconds(),
	})
}

func (s *Server) handlePools(w http.ResponseWriter, r *http.Request) {
	if code, err := validate.GetValidate(r); err != nil {
		s.writeBadRequest(w, code, err)
		return
	}

	pools := s.svc.Pools()
	out := make([]dto.PoolResponse, 0, len(pools))
	for _, p := range pools {
		out = append(out, dto.PoolResponse{
			Name:    p.Name,
			Symbol:  p.Symbol,
			Pairing: p.Pairing,
			Address: p.Address.Hex(),
			PoolID:  p.PoolID,
		})
	}
	s.writeJSON(w, http.StatusOK, out)
}

func (s *Server) handlePoolID(w http.ResponseWriter, r *http.Request) {
	req, code, err := validate.PairRequestValidate(r)
	if err != nil {
		s.writeBadRequest(w, code, err)
		return
	}

	id, err := s.svc.PoolID(req.Pair)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, dto.PoolIDResponse{Pair: req.Pair.Hex(), PoolID: id})
}

func (s *Server) handleLocked(w http.ResponseWriter, r *http.Request) {
	req, code, err := validate.WalletRequestValidate(r, false)
	if err != nil {
		s.writeBadRequest(w, code, err)
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()

	out, err := s.svc.LockedTwin(ctx, req.Wallet)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, dto.AmountResponse{Amount: out.String()})
}

func (s *Server) handleLoans(w http.ResponseWriter, r *http.Request) {
	req, code, err := validate.WalletRequestValidate(r, true)
	if err != nil {
		s.writeBadRequest(w, code, err)
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()

	loans, err := s.svc.UserLoans(ctx, *req.Wallet)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	out := make([]dto.LoanResponse, 0, len(loans))
	for _, l := range loans {
		out = append(out, loanResponse(l))
	}
	s.writeJSON(w, http.StatusOK, out)
}

func (s *Server) handlePending(w http.ResponseWriter, r *http.Request) {
	req, code, err := validate.PendingRequestValidate(r)
	if err != nil {
		s.writeBadRequest(w, code, err)
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()

	out, err := s.svc.PendingTwin(ctx, req.PoolID, req.Wallet)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, dto.AmountResponse{Amount: out.String()})
}

func (s *Server) handleLPPosition(w http.ResponseWriter, r *http.Request) {
	req, code, err := validate.LPPositionRequestValidate(r)
	if err != nil {
		s.writeBadRequest(w, code, err)
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()

	pos, err := s.svc.LPPosition(ctx, req.Pair, req.Wallet)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, dto.LPPositionResponse{
		Pair:               pos.Pair.Hex(),
		PoolID:             pos.PoolID,
		Token0:             pos.Token0.Hex(),
		Token1:             pos.Token1.Hex(),
		Reserve0:           decimal(pos.Reserve0),
		Reserve1:           decimal(pos.Reserve1),
		BlockTimestampLast: pos.BlockTimestampLast,
		TotalSupply:        decimal(pos.TotalSupply),
		LPAmount:           decimal(pos.LPAmount),
		Underlying0:        decimal(pos.Underlying0),
		Underlying1:        decimal(pos.Underlying1),
	})
}

func (s *Server) handleLPPrice(w http.ResponseWriter, r *http.Request) {
	req, code, err := validate.LPPriceRequestValidate(r)
	if err != nil {
		s.writeBadRequest(w, code, err)
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()

	out, err := s.svc.PairLPPrice(ctx, servicedto.LPPriceRequest{
		Pair:   req.Pair,
		Price0: req.Price0,
		Price1: req.Price1,
	})
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, dto.PriceResponse{Price: out.String()})
}

func (s *Server) handleTokenPrice(w http.ResponseWriter, r *http.Request) {
	req, code, err := validate.TokenPriceRequestValidate(r)
	if err != nil {
		s.writeBadRequest(w, code, err)
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()

	out, err := s.svc.TokenPrice(ctx, servicedto.TokenPriceRequest{
		Token:      req.Token,
		DollyPrice: req.DollyPrice,
		Route:      servicedto.Route(req.Route),
	})
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, dto.PriceResponse{Price: out.String()})
}

func (s *Server) handleOracleStock(w http.ResponseWriter, r *http.Request) {
	req, code, err := validate.OracleStockRequestValidate(r)
	if err != nil {
		s.writeBadRequest(w, code, err)
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()

	out, err := s.svc.OracleStockPrice(ctx, req.Stock, req.DollyPrice)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, dto.PriceResponse{Price: out.String()})
}

func (s *Server) handleOracleDolly(w http.ResponseWriter, r *http.Request) {
	if code, err := validate.GetValidate(r); err != nil {
		s.writeBadRequest(w, code, err)
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()

	out, err := s.svc.OracleDollyPrice(ctx)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, dto.PriceResponse{Price: out.String()})
}

func loanResponse(l twindex.Loan) dto.LoanResponse {
	return dto.LoanResponse{
		LoanID:                   hexutil.Encode(l.LoanId[:]),
		LoanToken:                l.LoanToken.Hex(),
		CollateralToken:          l.CollateralToken.Hex(),
		Principal:                decimal(l.Principal),
		Collateral:               decimal(l.Collateral),
		InterestOwedPerDay:       decimal(l.InterestOwedPerDay),
		InterestDepositRemaining: decimal(l.InterestDepositRemaining),
		StartRate:                decimal(l.StartRate),
		StartMargin:              decimal(l.StartMargin),
		MaintenanceMargin:        decimal(l.MaintenanceMargin),
		CurrentMargin:            decimal(l.CurrentMargin),
		MaxLoanTerm:              decimal(l.MaxLoanTerm),
		MaxLiquidatable:          decimal(l.MaxLiquidatable),
		MaxSeizable:              decimal(l.MaxSeizable),
		EndTimestamp:             decimal(l.EndTimestamp),
	}
}

// decimal renders a nil amount as zero.
func decimal(v *big.Int) string {
	if v == nil {
		return "0"
	}
	return v.String()
}

package main

import (
	"fmt"
	"strconv"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/fleshka4/twindex-reader/internal/apperrors"
	"github.com/fleshka4/twindex-reader/internal/registry"
	"github.com/fleshka4/twindex-reader/internal/service"
	"github.com/fleshka4/twindex-reader/internal/service/dto"
)

func newBlockCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "block [target]",
		Short: "Print the latest block and, given a target, the time until it",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var target uint64
			if len(args) == 1 {
				n, err := strconv.ParseUint(args[0], 10, 64)
				if err != nil {
					return errors.Wrapf(apperrors.ErrInvalidArgument, "bad target %q", args[0])
				}
				target = n
			}

			svc, err := dashboardFromCmd(cmd)
			if err != nil {
				return err
			}

			out, err := svc.BlockCountdown(cmd.Context(), target)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if len(args) == 0 {
				_, err = fmt.Fprintln(w, out.Current)
				return err
			}
			_, err = fmt.Fprintf(w, "current %d, target %d, remaining %s\n", out.Current, out.Target, out.Remaining)
			return err
		},
	}
}

func newPoolIDCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pool-id <pair>",
		Short: "Resolve the FairLaunch pool id of a pair address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pair, err := parseAddress(args[0])
			if err != nil {
				return err
			}

			id, ok := registry.Default().PoolIDFromPairAddress(pair)
			if !ok {
				return errors.Wrapf(apperrors.ErrPoolNotFound, "pair %s", pair.Hex())
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), id)
			return err
		},
	}
}

func newPoolsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pools",
		Short: "List the staked pairs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			for _, p := range registry.Default().Pairs() {
				if _, err := fmt.Fprintf(w, "%d\t%s\t%s\n", p.PoolID, p.Name, p.Address.Hex()); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func newPriceCmd() *cobra.Command {
	price := &cobra.Command{
		Use:   "price",
		Short: "Query prices",
	}

	price.AddCommand(&cobra.Command{
		Use:   "dolly",
		Short: "Print the DOLLY reference price from the oracle",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := dashboardFromCmd(cmd)
			if err != nil {
				return err
			}

			out, err := svc.OracleDollyPrice(cmd.Context())
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	})

	token := &cobra.Command{
		Use:   "token <address>",
		Short: "Price a token through the router, scaled by the oracle DOLLY price",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			addr, err := parseAddress(args[0])
			if err != nil {
				return err
			}
			route, _ := cmd.Flags().GetString("route")

			svc, err := dashboardFromCmd(cmd)
			if err != nil {
				return err
			}

			dollyPrice, err := svc.OracleDollyPrice(cmd.Context())
			if err != nil {
				return err
			}

			out, err := svc.TokenPrice(cmd.Context(), dto.TokenPriceRequest{
				Token:      addr,
				DollyPrice: dollyPrice,
				Route:      dto.Route(route),
			})
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}
	token.Flags().String("route", string(dto.RouteDolly), "swap route: dolly or dop")
	price.AddCommand(token)

	return price
}

func dashboardFromCmd(cmd *cobra.Command) (service.Service, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	logger := setupLogging(cfg.Log)

	return newDashboard(cmd.Context(), cfg, nil, logger)
}

func parseAddress(s string) (common.Address, error) {
	if !common.IsHexAddress(s) {
		return common.Address{}, errors.Wrapf(apperrors.ErrInvalidArgument, "bad address %q", s)
	}
	return common.HexToAddress(s), nil
}

package registry

import "github.com/ethereum/go-ethereum/common"

func bscTables() Tables {
	return Tables{
		Contracts: Contracts{
			Router:       common.HexToAddress("0x6B011d0d53b0Da6ace2a3F436Fd197A4E35f47EF"),
			FairLaunch:   common.HexToAddress("0xe6bE78800f25fFaE4D1db7CA6d3485629bD200Ed"),
			PriceFeeds:   common.HexToAddress("0xd4f061a6a276f8B0Ae83D210D838B45fCC7532B2"),
			DFIProtocols: common.HexToAddress("0x37f5a7D8bBB1cc0307985D00DE520fE30630790c"),
			DollyOracle:  common.HexToAddress("0xa442c34d88f4091880AEEE16500B088306562caa"),
		},
		Tokens: map[string]common.Address{
			"TSLA":  common.HexToAddress("0x17aCe02e5C8814BF2EE9eAAFF7902D52c15Fb0f4"),
			"GOOGL": common.HexToAddress("0x9C169647471C1C6a72773CfFc50F6Ba285684803"),
			"AMZN":  common.HexToAddress("0x1085B90544ff5C421D528aAF79Cc65aFc920aC79"),
			"AAPL":  common.HexToAddress("0xC10b2Ce6A2BCfdFDC8100Ba1602C1689997299D3"),
			DOLLY:   common.HexToAddress("0xfF54da7CAF3BC3D34664891fC8f3c9B6DeA6c7A5"),
			DOP:     common.HexToAddress("0x844FA82f1E54824655470970F7004Dd90546bB28"),
			TWIN:    common.HexToAddress("0x3806aae953a3a873D02595f76C7698a57d4C7A57"),
		},
		DollyPairs: map[string]common.Address{
			"TSLA":  common.HexToAddress("0xbde3b88c4D5926d5236447D1b12a866f1a38B2B7"),
			"GOOGL": common.HexToAddress("0xC38150a12D3C686f13D6e3A791d6301ed274B862"),
			"AMZN":  common.HexToAddress("0x15C53425bd0b9bfEd3d4cCf27F4c4f1f7bBC838B"),
			"AAPL":  common.HexToAddress("0xb91d34BCdF77E13f70AfF4d86129d13389dE0802"),
		},
		DopPairs: map[string]common.Address{
			"TSLA":  common.HexToAddress("0xb611aCe852f60F0ec039f851644a5bC5270AbF7b"),
			"GOOGL": common.HexToAddress("0x7A00B2BB049176C9C74E5d7bF617F84dB4763aec"),
			"AMZN":  common.HexToAddress("0x4a1135768C6ce4b2a2F20DAc80DE661949161627"),
			"AAPL":  common.HexToAddress("0x2D4980c63962d4B9156a8974AEA7C7fd3121913A"),
			TWIN:    common.HexToAddress("0x65A95C2BC5c12E8e30e24D322ff386249c29a072"),
		},
		PoolIDs: map[string]uint64{
			"TWIN_DOP":    0,
			"TSLA_DOP":    1,
			"DOP_AAPL":    2,
			"AMZN_DOP":    3,
			"TSLA_DOLLY":  4,
			"AMZN_DOLLY":  5,
			"AAPL_DOLLY":  6,
			"GOOGL_DOLLY": 7,
			"DOP_GOOGL":   8,
		},
	}
}

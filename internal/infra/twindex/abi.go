package twindex

// Contract method names.
const (
	methodToken0        = "token0"
	methodToken1        = "token1"
	methodGetReserves   = "getReserves"
	methodTotalSupply   = "totalSupply"
	methodBalanceOf     = "balanceOf"
	methodLockOf        = "lockOf"
	methodPendingTwin   = "pendingTwin"
	methodUserInfo      = "userInfo"
	methodGetAmountsOut = "getAmountsOut"
	methodQueryRate     = "queryRate"
	methodLatestAnswer  = "latestAnswer"
	methodGetUserLoans  = "getUserLoans"
)

// Minimal ABIs: only the view functions this client reads.
const (
	pairABIJSON = `[
	{"inputs":[],"name":"token0","outputs":[{"internalType":"address","name":"","type":"address"}],"stateMutability":"view","type":"function"},
	{"inputs":[],"name":"token1","outputs":[{"internalType":"address","name":"","type":"address"}],"stateMutability":"view","type":"function"},
	{"inputs":[],"name":"getReserves","outputs":[{"internalType":"uint112","name":"_reserve0","type":"uint112"},{"internalType":"uint112","name":"_reserve1","type":"uint112"},{"internalType":"uint32","name":"_blockTimestampLast","type":"uint32"}],"stateMutability":"view","type":"function"},
	{"inputs":[],"name":"totalSupply","outputs":[{"internalType":"uint256","name":"","type":"uint256"}],"stateMutability":"view","type":"function"},
	{"inputs":[{"internalType":"address","name":"owner","type":"address"}],"name":"balanceOf","outputs":[{"internalType":"uint256","name":"","type":"uint256"}],"stateMutability":"view","type":"function"}
]`

	twinABIJSON = `[
	{"inputs":[{"internalType":"address","name":"_holder","type":"address"}],"name":"lockOf","outputs":[{"internalType":"uint256","name":"lockedAmount","type":"uint256"}],"stateMutability":"view","type":"function"}
]`

	fairLaunchABIJSON = `[
	{"inputs":[{"internalType":"uint256","name":"_pid","type":"uint256"},{"internalType":"address","name":"_user","type":"address"}],"name":"pendingTwin","outputs":[{"internalType":"uint256","name":"","type":"uint256"}],"stateMutability":"view","type":"function"},
	{"inputs":[{"internalType":"uint256","name":"","type":"uint256"},{"internalType":"address","name":"","type":"address"}],"name":"userInfo","outputs":[{"internalType":"uint256","name":"amount","type":"uint256"},{"internalType":"uint256","name":"rewardDebt","type":"uint256"},{"internalType":"uint256","name":"bonusDebt","type":"uint256"},{"internalType":"address","name":"fundedBy","type":"address"}],"stateMutability":"view","type":"function"}
]`

	routerABIJSON = `[
	{"inputs":[{"internalType":"uint256","name":"amountIn","type":"uint256"},{"internalType":"address[]","name":"path","type":"address[]"}],"name":"getAmountsOut","outputs":[{"internalType":"uint256[]","name":"amounts","type":"uint256[]"}],"stateMutability":"view","type":"function"}
]`

	priceFeedsABIJSON = `[
	{"inputs":[{"internalType":"address","name":"sourceToken","type":"address"},{"internalType":"address","name":"destToken","type":"address"}],"name":"queryRate","outputs":[{"internalType":"uint256","name":"rate","type":"uint256"},{"internalType":"uint256","name":"precision","type":"uint256"}],"stateMutability":"view","type":"function"}
]`

	oracleABIJSON = `[
	{"inputs":[],"name":"latestAnswer","outputs":[{"internalType":"uint256","name":"price","type":"uint256"}],"stateMutability":"view","type":"function"}
]`

	dfiProtocolsABIJSON = `[
	{"inputs":[
		{"internalType":"address","name":"user","type":"address"},
		{"internalType":"uint256","name":"start","type":"uint256"},
		{"internalType":"uint256","name":"count","type":"uint256"},
		{"internalType":"uint256","name":"loanType","type":"uint256"},
		{"internalType":"bool","name":"isLender","type":"bool"},
		{"internalType":"bool","name":"unsafeOnly","type":"bool"}
	],"name":"getUserLoans","outputs":[{"components":[
		{"internalType":"bytes32","name":"loanId","type":"bytes32"},
		{"internalType":"uint96","name":"endTimestamp","type":"uint96"},
		{"internalType":"address","name":"loanToken","type":"address"},
		{"internalType":"address","name":"collateralToken","type":"address"},
		{"internalType":"uint256","name":"principal","type":"uint256"},
		{"internalType":"uint256","name":"collateral","type":"uint256"},
		{"internalType":"uint256","name":"interestOwedPerDay","type":"uint256"},
		{"internalType":"uint256","name":"interestDepositRemaining","type":"uint256"},
		{"internalType":"uint256","name":"startRate","type":"uint256"},
		{"internalType":"uint256","name":"startMargin","type":"uint256"},
		{"internalType":"uint256","name":"maintenanceMargin","type":"uint256"},
		{"internalType":"uint256","name":"currentMargin","type":"uint256"},
		{"internalType":"uint256","name":"maxLoanTerm","type":"uint256"},
		{"internalType":"uint256","name":"maxLiquidatable","type":"uint256"},
		{"internalType":"uint256","name":"maxSeizable","type":"uint256"}
	],"internalType":"struct LoanReturnData[]","name":"loansData","type":"tuple[]"}],"stateMutability":"view","type":"function"}
]`
)
